package ast

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		expr *Expr
		want string
	}{
		{"empty", NewEmpty(), "∅"},
		{"epsilon", NewEpsilon(), "ε"},
		{"char", NewChar('a'), "a"},
		{"concat", NewConcat(NewChar('a'), NewChar('b')), "ab"},
		{"union", NewUnion(NewChar('a'), NewChar('b')), "(a+b)"},
		{"kleene of char", NewKleene(NewChar('a')), "a*"},
		{
			"kleene of concat gets parens",
			NewKleene(NewConcat(NewChar('a'), NewChar('b'))),
			"(ab)*",
		},
		{
			"kleene of union does not get extra parens beyond union's own",
			NewKleene(NewUnion(NewChar('a'), NewChar('b'))),
			"(a+b)*",
		},
		{
			"default example pattern",
			NewKleene(NewUnion(NewChar('a'), NewConcat(NewChar('b'), NewChar('a')))),
			"(a+ba)*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	c := NewConcat(NewChar('x'), NewChar('y'))
	if c.Kind() != Concat {
		t.Fatalf("Kind() = %v, want Concat", c.Kind())
	}
	if c.Left().Char() != 'x' || c.Right().Char() != 'y' {
		t.Fatalf("Left/Right mismatch: %v %v", c.Left(), c.Right())
	}
}
