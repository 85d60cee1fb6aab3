package monoid

import (
	"sort"

	"github.com/schutzenberger/starfree/dfa"
)

// Identity0 is the index of the identity element in every Monoid's table;
// element enumeration always seeds the BFS with I_n at index 0 (§4.5.1).
const Identity0 = 0

// Monoid is the syntactic monoid of the language recognized by a minimal
// DFA: a finite set of n×n {0,1} matrices closed under multiplication,
// together with the letter morphism χ and the accepting subset A.
type Monoid struct {
	dim    int
	table  []Matrix
	index  map[string]int
	chi    [256]int
	mu     [][]int
	accept map[int]bool
	start  int
}

// Construct enumerates the syntactic monoid of the language recognized by
// the minimal DFA d, following the BFS element-enumeration algorithm of
// §4.5.1 and the multiplication table / acceptance rules of §4.5.2.
//
// Construct does not bound the number of elements it will enumerate;
// callers operating under a resource ceiling (§5) should use
// ConstructLimited.
func Construct(d *dfa.DFA) *Monoid {
	mo, err := ConstructLimited(d, 0)
	if err != nil {
		// err is only possible when maxElements > 0, so this is unreachable.
		panic(err)
	}
	return mo
}

// ConstructLimited is Construct with an upper bound on the number of
// distinct monoid elements the BFS enumeration may discover. maxElements
// <= 0 means unbounded. Exceeding the limit returns a *LimitError instead
// of continuing the enumeration, which the specification notes is
// dominated by an O(|M|^2) multiplication table and O(|M|*n^2) element
// map (§5).
func ConstructLimited(d *dfa.DFA, maxElements int) (*Monoid, error) {
	n := d.States()
	letters := letterMatrices(d)

	table := []Matrix{Identity(n)}
	index := map[string]int{table[0].Key(): 0}
	var chi [256]int

	for i := 0; i < len(table); i++ {
		if maxElements > 0 && len(table) > maxElements {
			return nil, &LimitError{Limit: maxElements, Kind: "monoid elements"}
		}
		m := table[i]
		for c := 0; c < 256; c++ {
			prod := m.Mul(letters[c])
			key := prod.Key()
			id, ok := index[key]
			if !ok {
				id = len(table)
				index[key] = id
				table = append(table, prod)
			}
			if i == Identity0 {
				chi[c] = id
			}
		}
	}

	mo := &Monoid{
		dim:   n,
		table: table,
		index: index,
		chi:   chi,
		start: int(d.Start()),
	}
	mo.buildMultiplicationTable()
	mo.buildAcceptSet(d)
	return mo, nil
}

// letterMatrices builds, for every byte c, the n×n matrix T_c with
// T_c[j,k] = 1 iff the DFA transitions from state j to state k on c.
func letterMatrices(d *dfa.DFA) [256]Matrix {
	n := d.States()
	var letters [256]Matrix
	for c := 0; c < 256; c++ {
		m := NewMatrix(n)
		for j := 0; j < n; j++ {
			t := d.State(dfa.StateID(j)).Trans(byte(c))
			if t != dfa.NoTransition {
				m.Set(j, int(t), 1)
			}
		}
		letters[c] = m
	}
	return letters
}

// buildMultiplicationTable computes μ(a,b) for every pair of element ids,
// per §4.5.2. Every product is guaranteed (by construction of the table
// during enumeration) to already be present; a miss is a programmer-error
// invariant violation and is fatal per the error taxonomy of §7.
func (mo *Monoid) buildMultiplicationTable() {
	size := len(mo.table)
	mo.mu = make([][]int, size)
	for a := 0; a < size; a++ {
		mo.mu[a] = make([]int, size)
		for b := 0; b < size; b++ {
			prod := mo.table[a].Mul(mo.table[b])
			id, ok := mo.index[prod.Key()]
			if !ok {
				panic(&InvariantError{Message: "product matrix not found in monoid table"})
			}
			mo.mu[a][b] = id
		}
	}
}

// buildAcceptSet computes A = { m : ∃ j accepting with T_m[s0,j] != 0 },
// per §4.5.2.
func (mo *Monoid) buildAcceptSet(d *dfa.DFA) {
	mo.accept = make(map[int]bool)
	acceptStates := d.AcceptStates()
	for m := 0; m < len(mo.table); m++ {
		for _, j := range acceptStates {
			if mo.table[m].At(mo.start, int(j)) != 0 {
				mo.accept[m] = true
				break
			}
		}
	}
}

// Size returns |M|, the number of distinct monoid elements.
func (mo *Monoid) Size() int { return len(mo.table) }

// Chi returns χ(c), the image of byte c under the letter morphism.
func (mo *Monoid) Chi(c byte) int { return mo.chi[c] }

// Mul returns μ(a,b), the product of elements a and b.
func (mo *Monoid) Mul(a, b int) int { return mo.mu[a][b] }

// IsAccepting reports whether m ∈ A.
func (mo *Monoid) IsAccepting(m int) bool { return mo.accept[m] }

// AcceptingElements returns the sorted ids of every m ∈ A.
func (mo *Monoid) AcceptingElements() []int {
	out := make([]int, 0, len(mo.accept))
	for m := range mo.accept {
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}

// Morph computes the syntactic image morph(w) of word w: the identity for
// ε, χ(w[0]) for a single byte, and the left-to-right μ-composition of χ
// over w's bytes otherwise (§4.5.3).
func (mo *Monoid) Morph(w []byte) int {
	m := Identity0
	for _, b := range w {
		m = mo.Mul(m, mo.Chi(b))
	}
	return m
}

// Aperiodic tests whether M is aperiodic: for every element m, computing
// e = m and then iterating e ← μ(e,m) exactly |M| times must leave
// μ(e,m) = e (§4.5.4). Returns false on the first element that fails.
func (mo *Monoid) Aperiodic() bool {
	size := len(mo.table)
	for m := 0; m < size; m++ {
		e := m
		for i := 0; i < size; i++ {
			e = mo.Mul(e, m)
		}
		if mo.Mul(e, m) != e {
			return false
		}
	}
	return true
}

