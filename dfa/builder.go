package dfa

import (
	"strconv"
	"strings"

	"github.com/schutzenberger/starfree/nfa"
)

// Build runs ε-closure subset construction over n, per §4.3: starting from
// U0 = ε-closure({start}), it BFS-enumerates reachable subsets in byte
// order (0..256), assigning DFA state ids in first-discovery order. Two
// NFAs that are structurally equal produce byte-identical DFAs.
//
// Build does not bound the number of states it will produce; callers
// operating under a resource ceiling (§5) should use BuildLimited.
func Build(n *nfa.NFA) *DFA {
	d, err := BuildLimited(n, 0)
	if err != nil {
		// err is only possible when maxStates > 0, so this is unreachable.
		panic(err)
	}
	return d
}

// BuildLimited is Build with an upper bound on the number of DFA states
// the subset construction may produce. maxStates <= 0 means unbounded.
// Exceeding the limit returns a *LimitError instead of continuing the
// exponential-worst-case enumeration warned about in §4.3.
func BuildLimited(n *nfa.NFA, maxStates int) (*DFA, error) {
	b := &subsetBuilder{n: n, index: make(map[string]StateID)}

	u0 := n.EpsilonClosure([]nfa.StateID{n.Start()})
	start, _ := b.idFor(u0)

	var states []State
	for i := 0; i < len(b.subsets); i++ {
		if maxStates > 0 && len(b.subsets) > maxStates {
			return nil, &LimitError{Limit: maxStates, Kind: "DFA states"}
		}
		states = append(states, b.transitionsFor(b.subsets[i]))
	}

	return &DFA{states: states, start: start}, nil
}

// subsetBuilder holds the ordered family F of subsets discovered so far,
// keyed by their canonical (sorted-id) encoding for O(1) membership tests.
type subsetBuilder struct {
	n       *nfa.NFA
	index   map[string]StateID
	subsets [][]nfa.StateID
}

// idFor returns the id assigned to subset, assigning a fresh one (and
// appending to the worklist) if this is the first time it is seen.
func (b *subsetBuilder) idFor(subset []nfa.StateID) (StateID, bool) {
	k := subsetKey(subset)
	if id, ok := b.index[k]; ok {
		return id, false
	}
	id := StateID(len(b.subsets))
	b.index[k] = id
	b.subsets = append(b.subsets, subset)
	return id, true
}

// subsetKey encodes a sorted subset of NFA state ids as a string, suitable
// as a canonical hash-map key. EpsilonClosure already returns ids sorted in
// ascending order, so equal subsets always encode identically.
func subsetKey(subset []nfa.StateID) string {
	var b strings.Builder
	for i, id := range subset {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return b.String()
}

// transitionsFor computes one DFA State's full 256-wide transition table
// and acceptance for the given NFA subset. Rather than probing all 256
// bytes against every member state, it only visits the union of each
// member's ByteSet() — the bytes that actually have a δ-transition
// somewhere in the subset — since every other byte is NoTransition by
// construction.
func (b *subsetBuilder) transitionsFor(subset []nfa.StateID) State {
	var st State
	for c := range st.trans {
		st.trans[c] = NoTransition
	}
	for _, q := range subset {
		if q == b.n.Accept() {
			st.accept = true
			break
		}
	}

	var relevant [256]bool
	for _, q := range subset {
		for _, by := range b.n.State(q).ByteSet() {
			relevant[by] = true
		}
	}

	for c := 0; c < 256; c++ {
		if !relevant[c] {
			continue
		}
		byteVal := byte(c)
		var targets []nfa.StateID
		for _, q := range subset {
			targets = append(targets, b.n.State(q).Trans(byteVal)...)
		}
		if len(targets) == 0 {
			continue
		}
		closure := b.n.EpsilonClosure(targets)
		if len(closure) == 0 {
			continue
		}
		id, _ := b.idFor(closure)
		st.trans[c] = id
	}

	return st
}
