// Package ast defines the regular expression abstract syntax tree used by
// the rest of the pipeline (nfa, dfa, monoid) and its surface parser.
//
// The grammar is deliberately small: single bytes, concatenation, union,
// and Kleene closure over parenthesized groups. There is no character
// class, anchor, or capture-group syntax — the alphabet is raw bytes
// 0..255 and nothing more.
package ast

import "strings"

// Kind identifies the variant of an Expr node.
type Kind uint8

const (
	// Empty denotes the empty language ∅.
	Empty Kind = iota
	// Epsilon denotes the language containing only the empty word.
	Epsilon
	// Char denotes a single literal byte.
	Char
	// Concat denotes concatenation of two sub-expressions.
	Concat
	// Union denotes alternation of two sub-expressions.
	Union
	// Kleene denotes zero-or-more repetition of a sub-expression.
	Kleene
)

// Expr is a node of the regular expression AST. It is immutable once
// constructed: every Expr returned by the package-level constructors is
// safe to share and reuse across multiple NFA builds.
type Expr struct {
	kind        Kind
	char        byte
	left, right *Expr
}

// NewEmpty returns the empty-language expression ∅.
func NewEmpty() *Expr { return &Expr{kind: Empty} }

// NewEpsilon returns the expression matching only the empty word.
func NewEpsilon() *Expr { return &Expr{kind: Epsilon} }

// NewChar returns the expression matching exactly the single byte b.
func NewChar(b byte) *Expr { return &Expr{kind: Char, char: b} }

// NewConcat returns the expression matching L(left)·L(right).
func NewConcat(left, right *Expr) *Expr {
	return &Expr{kind: Concat, left: left, right: right}
}

// NewUnion returns the expression matching L(left) ∪ L(right).
func NewUnion(left, right *Expr) *Expr {
	return &Expr{kind: Union, left: left, right: right}
}

// NewKleene returns the expression matching L(e)*.
func NewKleene(e *Expr) *Expr { return &Expr{kind: Kleene, left: e} }

// Kind reports the node's variant.
func (e *Expr) Kind() Kind { return e.kind }

// Char returns the literal byte for a Char node. Behavior is undefined
// for other kinds.
func (e *Expr) Char() byte { return e.char }

// Left returns the first (or only) child. Nil for Empty, Epsilon, Char.
func (e *Expr) Left() *Expr { return e.left }

// Right returns the second child. Non-nil only for Concat and Union.
func (e *Expr) Right() *Expr { return e.right }

// String renders the expression using the grammar's own concrete syntax:
//
//	Empty   -> "∅"
//	Epsilon -> "ε"
//	Char(b) -> the byte as ASCII
//	Concat  -> e1·e2, no parentheses
//	Union   -> "(" e1 "+" e2 ")"
//	Kleene  -> e* unless e is a Concat, in which case "(" e ")*"
func (e *Expr) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Expr) write(b *strings.Builder) {
	switch e.kind {
	case Empty:
		b.WriteRune('∅')
	case Epsilon:
		b.WriteRune('ε')
	case Char:
		b.WriteByte(e.char)
	case Concat:
		e.left.write(b)
		e.right.write(b)
	case Union:
		b.WriteByte('(')
		e.left.write(b)
		b.WriteByte('+')
		e.right.write(b)
		b.WriteByte(')')
	case Kleene:
		if e.left.kind == Concat {
			b.WriteByte('(')
			e.left.write(b)
			b.WriteString(")*")
		} else {
			e.left.write(b)
			b.WriteByte('*')
		}
	}
}
