package nfa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schutzenberger/starfree/ast"
	"github.com/schutzenberger/starfree/nfa"
)

// accepts simulates n directly via ε-closure/subset stepping, independent
// of the dfa package, so these tests exercise Construct in isolation.
func accepts(n *nfa.NFA, w []byte) bool {
	cur := n.EpsilonClosure([]nfa.StateID{n.Start()})
	for _, b := range w {
		var next []nfa.StateID
		for _, q := range cur {
			next = append(next, n.State(q).Trans(b)...)
		}
		if len(next) == 0 {
			return false
		}
		cur = n.EpsilonClosure(next)
	}
	for _, q := range cur {
		if n.State(q).ID() == n.Accept() {
			return true
		}
	}
	return false
}

func TestConstructLanguageEquivalence(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a", []string{"a"}, []string{"", "aa", "b"}},
		{"ab", []string{"ab"}, []string{"", "a", "b", "ba", "abc"}},
		{"a+b", []string{"a", "b"}, []string{"", "ab", "ba", "aa"}},
		{"a*", []string{"", "a", "aa", "aaaa"}, []string{"b", "ab"}},
		{"a*b", []string{"b", "ab", "aab"}, []string{"", "a", "ba", "abb"}},
		{"(a+b)*", []string{"", "a", "b", "ab", "ba", "aabb"}, []string{"c", "ac"}},
		{"(a+ba)*", []string{"", "a", "ba", "aba", "aa", "baa", "baba"}, []string{"b", "bb", "ab"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			e, err := ast.Parse(tt.pattern)
			require.NoError(t, err)
			n := nfa.Construct(e)
			for _, w := range tt.accept {
				require.True(t, accepts(n, []byte(w)), "expected %q accepted by %q", w, tt.pattern)
			}
			for _, w := range tt.reject {
				require.False(t, accepts(n, []byte(w)), "expected %q rejected by %q", w, tt.pattern)
			}
		})
	}
}

func TestConstructSingleAcceptState(t *testing.T) {
	e, err := ast.Parse("(a+ba)*")
	require.NoError(t, err)
	n := nfa.Construct(e)

	accepting := 0
	for i := 0; i < n.States(); i++ {
		if n.State(nfa.StateID(i)).IsAccept() {
			accepting++
		}
	}
	require.Equal(t, 1, accepting)
	require.Equal(t, n.Accept(), n.State(n.Accept()).ID())
}

func TestEpsilonClosureIsSortedAndDeterministic(t *testing.T) {
	e, err := ast.Parse("(a+ba)*")
	require.NoError(t, err)
	n := nfa.Construct(e)

	c1 := n.EpsilonClosure([]nfa.StateID{n.Start()})
	c2 := n.EpsilonClosure([]nfa.StateID{n.Start()})
	require.Equal(t, c1, c2)
	for i := 1; i < len(c1); i++ {
		require.Less(t, c1[i-1], c1[i])
	}
}
