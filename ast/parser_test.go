package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", "a"},
		{"ab", "ab"},
		{"a+b", "(a+b)"},
		{"a*", "a*"},
		{"a*b", "a*b"},
		{"(a+ba)*", "(a+ba)*"},
		{"aa*", "aa*"},
		{"((a+b)c)*", "((a+b)c)*"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			e, err := Parse(tt.pattern)
			require.NoError(t, err)
			require.Equal(t, tt.want, e.String())
		})
	}
}

func TestParseUnionLiteral(t *testing.T) {
	// '|' carries no special meaning in this grammar: union uses '+'.
	e, err := Parse("a|b")
	require.NoError(t, err)
	require.Equal(t, "a|b", e.String())
}

func TestParseDefaultExample(t *testing.T) {
	e, err := Parse("(a+ba)*")
	require.NoError(t, err)
	require.Equal(t, "(a+ba)*", e.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"empty pattern", "", ErrEmptyFactor},
		{"unterminated group", "(ab", ErrUnterminatedGroup},
		{"empty factor after plus", "a+", ErrEmptyFactor},
		{"empty group", "()", ErrEmptyFactor},
		{"trailing close paren", "a)", ErrTrailingInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			require.Error(t, err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			require.ErrorIs(t, err, tt.want)
		})
	}
}
