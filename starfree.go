// Package starfree decides whether a regular language, given as a small
// regex-like source pattern, is star-free, and when it is, synthesizes an
// equivalent star-free expression.
//
// The decision follows Schützenberger's theorem: a regular language is
// star-free iff its syntactic monoid is finite (always true for regular
// languages) and aperiodic. The pipeline is: parse the pattern into an
// AST (ast), build a Thompson NFA (nfa), determinize and minimize it
// (dfa), then enumerate its syntactic monoid and test aperiodicity
// (monoid). Every stage is pure and the whole pipeline is deterministic:
// the same pattern always yields byte-identical output.
package starfree

import (
	"github.com/pkg/errors"

	"github.com/schutzenberger/starfree/ast"
	"github.com/schutzenberger/starfree/config"
	"github.com/schutzenberger/starfree/dfa"
	"github.com/schutzenberger/starfree/monoid"
	"github.com/schutzenberger/starfree/nfa"
)

// Result is the outcome of analyzing one pattern.
type Result struct {
	// Expr is the parsed AST, re-printed in its canonical concrete syntax.
	Expr *ast.Expr

	// DFA is the minimized automaton recognizing the pattern's language.
	DFA *dfa.DFA

	// Monoid is the syntactic monoid of the recognized language.
	Monoid *monoid.Monoid

	// StarFreeExpr holds the synthesized star-free expression and whether
	// one exists: it is absent (Aperiodic == false) iff Monoid is not
	// aperiodic.
	StarFreeExpr string
	Aperiodic    bool
}

// Analyze parses pattern, builds its minimal DFA and syntactic monoid,
// and — if the monoid is aperiodic — synthesizes a star-free expression
// for its language. A non-nil error indicates pattern failed to parse
// (§7: "parse error") or that the DFA or monoid grew past a ceiling in
// config.DefaultLimits; a nil error with Aperiodic == false indicates a
// successfully analyzed, non-star-free language (§7: not an error, the
// DFA is still useful output).
func Analyze(pattern string) (*Result, error) {
	return AnalyzeWithLimits(pattern, config.DefaultLimits())
}

// AnalyzeWithLimits is Analyze with explicit resource ceilings (§5).
func AnalyzeWithLimits(pattern string, limits config.Limits) (*Result, error) {
	expr, err := ast.Parse(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "parse error")
	}

	n := nfa.Construct(expr)

	d, err := dfa.BuildLimited(n, limits.MaxDFAStates)
	if err != nil {
		return nil, errors.Wrap(err, "building DFA")
	}
	d = dfa.Minimize(d)

	mo, err := monoid.ConstructLimited(d, limits.MaxMonoidElements)
	if err != nil {
		return nil, errors.Wrap(err, "building syntactic monoid")
	}

	result := &Result{Expr: expr, DFA: d, Monoid: mo}
	if sf, ok := mo.StarFree(); ok {
		result.StarFreeExpr = sf
		result.Aperiodic = true
	}
	return result, nil
}
