package starfree_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/schutzenberger/starfree"
	"github.com/schutzenberger/starfree/monoid"
)

type scenario struct {
	Pattern    string   `yaml:"pattern"`
	DFAStates  int      `yaml:"dfa_states"`
	MonoidSize int      `yaml:"monoid_size"`
	Aperiodic  bool     `yaml:"aperiodic"`
	Accept     []string `yaml:"accept"`
	Reject     []string `yaml:"reject"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)
	var f scenarioFile
	require.NoError(t, yaml.Unmarshal(data, &f))
	return f.Scenarios
}

func TestEndToEndScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Pattern, func(t *testing.T) {
			result, err := starfree.Analyze(sc.Pattern)
			require.NoError(t, err)

			require.Equal(t, sc.Aperiodic, result.Aperiodic)

			if sc.DFAStates > 0 {
				require.Equal(t, sc.DFAStates, result.DFA.States())
			}
			if sc.MonoidSize > 0 {
				require.Equal(t, sc.MonoidSize, result.Monoid.Size())
			}

			for _, w := range sc.Accept {
				require.True(t, result.DFA.Accept([]byte(w)), "expected %q accepted", w)
			}
			for _, w := range sc.Reject {
				require.False(t, result.DFA.Accept([]byte(w)), "expected %q rejected", w)
			}

			if result.Aperiodic {
				for _, w := range sc.Accept {
					got, err := monoid.Evaluate(result.StarFreeExpr, []byte(w))
					require.NoError(t, err)
					require.True(t, got, "star-free expression should accept %q", w)
				}
				for _, w := range sc.Reject {
					got, err := monoid.Evaluate(result.StarFreeExpr, []byte(w))
					require.NoError(t, err)
					require.False(t, got, "star-free expression should reject %q", w)
				}
			}
		})
	}
}

func TestAnalyzeParseError(t *testing.T) {
	_, err := starfree.Analyze("(ab")
	require.Error(t, err)
}

func TestDeterminism(t *testing.T) {
	r1, err := starfree.Analyze("(a+ba)*")
	require.NoError(t, err)
	r2, err := starfree.Analyze("(a+ba)*")
	require.NoError(t, err)

	require.Equal(t, r1.DFA.String(), r2.DFA.String())
	require.Equal(t, r1.StarFreeExpr, r2.StarFreeExpr)
	require.Equal(t, r1.Aperiodic, r2.Aperiodic)
}
