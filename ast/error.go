package ast

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel parse errors. Wrapped with position context by ParseError.
var (
	// ErrEmptyFactor indicates a factor position with no token to consume
	// (end of input, or an immediate closing paren).
	ErrEmptyFactor = errors.New("empty factor")

	// ErrUnterminatedGroup indicates a "(" with no matching ")".
	ErrUnterminatedGroup = errors.New("unterminated group")

	// ErrTrailingInput indicates characters remained after a complete parse.
	ErrTrailingInput = errors.New("trailing input after expression")
)

// ParseError wraps a parse failure with the byte offset at which it was
// detected, mirroring the context the teacher's nfa.CompileError attaches
// to compilation failures.
type ParseError struct {
	Pos int
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at byte %d: %v", e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
