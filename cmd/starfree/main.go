// Command starfree decides whether a regular language is star-free and,
// when it is, prints an equivalent star-free expression, per §6 of the
// external interface: the canonical regex text, a Graphviz DOT block for
// the minimized DFA, and either the star-free expression or a diagnostic
// message, in that order.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/schutzenberger/starfree"
	"github.com/schutzenberger/starfree/config"
	"github.com/schutzenberger/starfree/dfa"
)

// defaultPattern is the example used when no pattern is given on the
// command line. The grammar's union operator is '+' (see ast.Parser); a
// "(a|ba)*"-spelled default would parse '|' as two literal bytes instead
// of alternation, so the default here uses '+' to match the semantics
// actually documented for it (every b immediately followed by a).
const defaultPattern = "(a+ba)*"

func main() {
	configPath := flag.String("config", "", "path to a YAML limits file (optional)")
	flag.Parse()

	limits := config.DefaultLimits()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		limits = loaded
	}

	pattern := defaultPattern
	if flag.NArg() >= 1 {
		pattern = flag.Arg(0)
	}

	result, err := starfree.AnalyzeWithLimits(pattern, limits)
	if err != nil {
		fmt.Println("parse error")
		os.Exit(1)
	}

	fmt.Println("regular expression:")
	fmt.Println(result.Expr.String())

	fmt.Println("minimized dfa:")
	if err := dfa.WriteDOT(os.Stdout, result.DFA); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if result.Aperiodic {
		fmt.Println("starfree expression:")
		fmt.Println(result.StarFreeExpr)
	} else {
		// The monoid is NOT aperiodic here; the wording is kept as emitted
		// by the source this CLI is modeled on (§9 open question 1).
		fmt.Println("the monoid is aperiodic")
	}
}
