package dfa

import (
	"fmt"
	"io"
)

// WriteDOT renders d as a Graphviz DOT digraph, per §6 of the external
// interfaces: rankdir=LR, doublecircle for accepting states, circle
// otherwise, edges labeled with the ASCII character consumed, and a
// plaintext "start" pseudo-node pointing at the start state.
//
// There is no Graphviz-producing library anywhere in the surveyed
// dependency set, so this builds the DOT text directly, in the same
// println-per-line style as the original renderer it is grounded on.
func WriteDOT(w io.Writer, d *DFA) error {
	if _, err := io.WriteString(w, "digraph DFA {\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " rankdir=LR;\n"); err != nil {
		return err
	}

	for i := 0; i < d.States(); i++ {
		s := d.State(StateID(i))
		shape := "circle"
		if s.IsAccept() {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, " %d [ shape=%s ];\n", i, shape); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, " start [ shape=plaintext ];\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, " start -> %d;\n", d.Start()); err != nil {
		return err
	}

	for i := 0; i < d.States(); i++ {
		s := d.State(StateID(i))
		for c := 0; c < 256; c++ {
			t := s.Trans(byte(c))
			if t == NoTransition {
				continue
			}
			if _, err := fmt.Fprintf(w, " %d -> %d [ label = %q ];\n", i, t, string(rune(c))); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}
