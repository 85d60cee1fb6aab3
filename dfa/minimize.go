package dfa

// Minimize collapses indistinguishable states to a fixed point by the
// iterative signature-coalescing scheme of §4.4: states are grouped by
// (full transition vector, acceptance), renumbered in group-discovery
// order, and the automaton rebuilt — repeated until the state count stops
// decreasing. This is Moore's algorithm up to iteration order, not
// Hopcroft's partition-refinement.
//
// Applying Minimize to an already-minimal DFA is a no-op: there is
// nothing left to coalesce, so the first pass leaves the state count
// unchanged and the loop exits immediately.
func Minimize(d *DFA) *DFA {
	cur := d
	for {
		next := coalesce(cur)
		if next.States() == cur.States() {
			return next
		}
		cur = next
	}
}

// coalesce performs one grouping pass over d. Two states collapse iff
// they carry byte-for-byte identical transition vectors (NoTransition
// entries compare equal to each other by construction) and the same
// acceptance. Because State is a plain comparable struct (a fixed-size
// array plus a bool), it can be used directly as a map key.
func coalesce(d *DFA) *DFA {
	n := d.States()
	groupOf := make(map[State]int, n)
	group := make([]int, n)
	var order []State

	for i := 0; i < n; i++ {
		s := *d.State(StateID(i))
		gid, ok := groupOf[s]
		if !ok {
			gid = len(order)
			groupOf[s] = gid
			order = append(order, s)
		}
		group[i] = gid
	}

	states := make([]State, len(order))
	for gid, s := range order {
		var ns State
		ns.accept = s.accept
		for c := range s.trans {
			t := s.trans[c]
			if t == NoTransition {
				ns.trans[c] = NoTransition
			} else {
				ns.trans[c] = StateID(group[t])
			}
		}
		states[gid] = ns
	}

	return &DFA{states: states, start: StateID(group[d.start])}
}
