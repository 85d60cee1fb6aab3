package nfa

// Builder assembles an NFA state by state, via always-append AddState plus
// explicit AddTrans/AddEpsilon wiring. construct.go does not use it: the
// Thompson concatenation rule there merges n1's accept state with n2's
// start state into one shared id (see buildConcat), which has no
// expression in Builder's model of always-distinct, separately-epsilon-
// linked states. Builder instead stands on its own as the low-level,
// general-purpose construction API — exercised directly by
// builder_test.go — mirroring the separation the teacher draws between
// its generic Builder and the regexp/syntax-specific compiler on top of
// it, even though here the two are not chained together.
type Builder struct {
	states []State
	start  StateID
	accept StateID
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{start: InvalidState, accept: InvalidState}
}

// AddState appends a fresh state (initially with no transitions) and
// returns its id.
func (b *Builder) AddState(accept bool) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{id: id, accept: accept, trans: make(map[byte][]StateID)})
	return id
}

// AddTrans adds a δ-transition from -> to on byte c.
func (b *Builder) AddTrans(from StateID, c byte, to StateID) error {
	if int(from) >= len(b.states) {
		return &BuildError{Message: "source state out of bounds", StateID: from}
	}
	if int(to) >= len(b.states) {
		return &BuildError{Message: "target state out of bounds", StateID: to}
	}
	b.states[from].trans[c] = append(b.states[from].trans[c], to)
	return nil
}

// AddEpsilon adds an ε-transition from -> to.
func (b *Builder) AddEpsilon(from, to StateID) error {
	if int(from) >= len(b.states) {
		return &BuildError{Message: "source state out of bounds", StateID: from}
	}
	if int(to) >= len(b.states) {
		return &BuildError{Message: "target state out of bounds", StateID: to}
	}
	b.states[from].eps = append(b.states[from].eps, to)
	return nil
}

// SetAccept marks id as accepting or not.
func (b *Builder) SetAccept(id StateID, accept bool) error {
	if int(id) >= len(b.states) {
		return &BuildError{Message: "state out of bounds", StateID: id}
	}
	b.states[id].accept = accept
	return nil
}

// SetStart designates id as the NFA's unique start state.
func (b *Builder) SetStart(id StateID) { b.start = id }

// SetAcceptState designates id as the NFA's unique accepting state.
func (b *Builder) SetAcceptState(id StateID) { b.accept = id }

// States returns the number of states added so far.
func (b *Builder) States() int { return len(b.states) }

// Validate checks that start/accept are set and every transition target is
// in range. Returns the first violation found.
func (b *Builder) Validate() error {
	if b.start == InvalidState {
		return &BuildError{Message: "start state not set"}
	}
	if b.accept == InvalidState {
		return &BuildError{Message: "accept state not set"}
	}
	for i := range b.states {
		s := &b.states[i]
		for _, targets := range s.trans {
			for _, t := range targets {
				if int(t) >= len(b.states) {
					return &BuildError{Message: "invalid transition target", StateID: t}
				}
			}
		}
		for _, t := range s.eps {
			if int(t) >= len(b.states) {
				return &BuildError{Message: "invalid epsilon target", StateID: t}
			}
		}
	}
	return nil
}

// Build finalizes and returns the constructed NFA.
func (b *Builder) Build() (*NFA, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &NFA{states: b.states, start: b.start, accept: b.accept}, nil
}
