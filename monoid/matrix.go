// Package monoid builds the syntactic monoid of a regular language from its
// minimal DFA (§4.5), tests it for aperiodicity, and — when aperiodic —
// synthesizes an equivalent star-free expression by Schützenberger's
// construction.
package monoid

// Matrix is an n×n {0,1} matrix over the minimal DFA's state set, used to
// represent monoid elements as described in §4.5.1. Entries are stored
// densely as bytes so a Matrix value's byte contents double as a stable,
// comparable hash key (see Key).
type Matrix struct {
	n    int
	data []byte
}

// NewMatrix returns the n×n zero matrix.
func NewMatrix(n int) Matrix {
	return Matrix{n: n, data: make([]byte, n*n)}
}

// Identity returns the n×n identity matrix I_n.
func Identity(n int) Matrix {
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// At returns the (i,j) entry.
func (m Matrix) At(i, j int) byte { return m.data[i*m.n+j] }

// Set assigns the (i,j) entry.
func (m Matrix) Set(i, j int, v byte) { m.data[i*m.n+j] = v }

// Mul computes the product of m and other under the 0/1 semiring. The
// specification's pseudocode accumulates with integer + and ×; since every
// seed matrix has 0/1 entries and composition proceeds along ε-free
// DFA-determined reachability, intermediate sums never leave {0,1}
// (§4.5.1, §9 open question 2), so accumulating with a boolean OR over
// products gives identical results without any overflow risk and is what
// this implementation does.
func (m Matrix) Mul(other Matrix) Matrix {
	out := NewMatrix(m.n)
	for i := 0; i < m.n; i++ {
		for k := 0; k < m.n; k++ {
			if m.At(i, k) == 0 {
				continue
			}
			for j := 0; j < m.n; j++ {
				if other.At(k, j) == 1 {
					out.Set(i, j, 1)
				}
			}
		}
	}
	return out
}

// Key returns a stable, comparable encoding of m suitable as a hash-map
// key (§9: "hashable matrices").
func (m Matrix) Key() string { return string(m.data) }
