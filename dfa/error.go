package dfa

import "fmt"

// LimitError reports that a configured resource ceiling (config.Limits)
// was exceeded during construction.
type LimitError struct {
	Limit int
	Kind  string
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	return fmt.Sprintf("dfa: exceeded %s limit of %d", e.Kind, e.Limit)
}
