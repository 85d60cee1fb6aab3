package nfa

import "github.com/schutzenberger/starfree/ast"

// Construct builds a Thompson NFA from a regular expression AST, following
// the inductive rules of §4.2 of the specification. The builder is total
// on well-formed AST: there is no error return because every Expr value,
// by construction, denotes a well-formed regular expression.
func Construct(e *ast.Expr) *NFA {
	f := build(e)
	return &NFA{states: f.states, start: f.start, accept: f.accept}
}

// fragment is a self-contained NFA piece with its own locally-numbered
// states (0..len(states)-1). Constructing larger expressions means
// shifting a fragment's ids to make room and splicing fragments together,
// exactly as the original recursive construction does.
type fragment struct {
	states []State
	start  StateID
	accept StateID
}

func newState(id StateID, accept bool) State {
	return State{id: id, accept: accept, trans: make(map[byte][]StateID)}
}

func build(e *ast.Expr) fragment {
	switch e.Kind() {
	case ast.Empty:
		return buildEmpty()
	case ast.Epsilon:
		return buildEpsilon()
	case ast.Char:
		return buildChar(e.Char())
	case ast.Concat:
		return buildConcat(build(e.Left()), build(e.Right()))
	case ast.Union:
		return buildUnion(build(e.Left()), build(e.Right()))
	case ast.Kleene:
		return buildKleene(build(e.Left()))
	default:
		panic("nfa: unknown AST kind")
	}
}

// buildEmpty returns a two-state fragment with no connecting transition at
// all, so it accepts no word (not even ε). The surface grammar in §4.1
// cannot produce ast.Empty; this rule exists only so Construct remains
// total over the whole AST sum type.
func buildEmpty() fragment {
	return fragment{
		states: []State{newState(0, false), newState(1, true)},
		start:  0,
		accept: 1,
	}
}

// buildEpsilon: states {0,1}; ε(0)={1}; start=0, accept=1.
func buildEpsilon() fragment {
	states := []State{newState(0, false), newState(1, true)}
	states[0].eps = []StateID{1}
	return fragment{states: states, start: 0, accept: 1}
}

// buildChar: states {0,1}; δ(0,b)={1}; start=0, accept=1.
func buildChar(b byte) fragment {
	states := []State{newState(0, false), newState(1, true)}
	states[0].trans[b] = []StateID{1}
	return fragment{states: states, start: 0, accept: 1}
}

// shift renumbers every state id and every reference to it by delta, in
// place, and returns the same fragment value for convenience.
func shift(f fragment, delta int) fragment {
	for i := range f.states {
		f.states[i].id += StateID(delta)
		for c, targets := range f.states[i].trans {
			shifted := make([]StateID, len(targets))
			for j, t := range targets {
				shifted[j] = t + StateID(delta)
			}
			f.states[i].trans[c] = shifted
		}
		for j, t := range f.states[i].eps {
			f.states[i].eps[j] = t + StateID(delta)
		}
	}
	f.start += StateID(delta)
	f.accept += StateID(delta)
	return f
}

// buildConcat merges n1.accept and n2.start into a single state, per §4.2:
// shift n2's ids by |n1|-1 so that n2.start lands on n1.accept's id, then
// absorb n2.start's outgoing transitions/ε into that shared state and
// clear its acceptance (it is now an internal state, not the final one).
func buildConcat(n1, n2 fragment) fragment {
	shiftAmount := len(n1.states) - 1
	n2 = shift(n2, shiftAmount)

	merged := newState(n1.accept, false)
	n2Start := &n2.states[0] // n2's start state, now at id == n1.accept
	for c, targets := range n2Start.trans {
		merged.trans[c] = append(merged.trans[c], targets...)
	}
	merged.eps = append(merged.eps, n2Start.eps...)

	states := make([]State, 0, len(n1.states)+len(n2.states)-1)
	states = append(states, n1.states[:len(n1.states)-1]...)
	states = append(states, merged)
	states = append(states, n2.states[1:]...)

	return fragment{states: states, start: n1.start, accept: n2.accept}
}

// localIndex converts an absolute state id belonging to fragment f into a
// slice index into f.states. It relies on the invariant that build() always
// returns states in ascending, gap-free id order, which shift preserves.
func localIndex(f fragment, id StateID) int {
	return int(id) - int(f.states[0].id)
}

// buildUnion allocates a fresh start q0 and accept qf around shifted
// copies of n1 and n2, per §4.2.
func buildUnion(n1, n2 fragment) fragment {
	n1 = shift(n1, 1)
	n2 = shift(n2, 1+len(n1.states))

	total := 1 + len(n1.states) + len(n2.states) + 1
	qfID := StateID(total - 1)

	q0 := newState(0, false)
	q0.eps = []StateID{n1.start, n2.start}

	n1AcceptIdx := localIndex(n1, n1.accept)
	n1.states[n1AcceptIdx].eps = append(n1.states[n1AcceptIdx].eps, qfID)
	n1.states[n1AcceptIdx].accept = false

	n2AcceptIdx := localIndex(n2, n2.accept)
	n2.states[n2AcceptIdx].eps = append(n2.states[n2AcceptIdx].eps, qfID)
	n2.states[n2AcceptIdx].accept = false

	qf := newState(qfID, true)

	states := make([]State, 0, total)
	states = append(states, q0)
	states = append(states, n1.states...)
	states = append(states, n2.states...)
	states = append(states, qf)

	return fragment{states: states, start: 0, accept: qfID}
}

// buildKleene allocates q0 (skip/entry) and qf (sole accept) around a
// shifted copy of n, wiring the skip and loop-back ε edges of §4.2.
func buildKleene(n fragment) fragment {
	n = shift(n, 1)
	total := 1 + len(n.states) + 1
	qfID := StateID(total - 1)

	q0 := newState(0, false)
	q0.eps = []StateID{n.start}

	startIdx := localIndex(n, n.start)
	n.states[startIdx].eps = append(n.states[startIdx].eps, qfID) // skip

	acceptIdx := localIndex(n, n.accept)
	n.states[acceptIdx].eps = append(n.states[acceptIdx].eps, n.start) // loop
	n.states[acceptIdx].accept = false

	qf := newState(qfID, true)

	states := make([]State, 0, total)
	states = append(states, q0)
	states = append(states, n.states...)
	states = append(states, qf)

	return fragment{states: states, start: 0, accept: qfID}
}
