package monoid

import (
	"sort"
	"strconv"
	"strings"
)

// StarFree synthesizes a star-free expression denoting the language
// recognized by mo, per §4.5.5. It returns ("", false) iff the monoid is
// not aperiodic — the only failure mode this operation has (§7: absent
// value, not an error).
func (mo *Monoid) StarFree() (string, bool) {
	if !mo.Aperiodic() {
		return "", false
	}

	s := &synthesizer{mo: mo, memo: make(map[int]string), visiting: make(map[int]bool)}

	accepting := mo.AcceptingElements()
	parts := make([]string, 0, len(accepting)+1)
	parts = append(parts, "@") // leading reserved slot, per §4.5.5
	for _, m := range accepting {
		parts = append(parts, s.rec(m))
	}
	return strings.Join(parts, "|"), true
}

// synthesizer carries the memoization cache and cycle-detection state for
// one run of the rec recursion of §4.5.5.
type synthesizer struct {
	mo       *Monoid
	memo     map[int]string
	visiting map[int]bool
}

// rec computes L_m in the output grammar, memoized on m. Termination
// relies on aperiodicity guaranteeing no cycles in the two-sided-ideal
// ordering of monoid elements (§4.5.5); a cycle surfacing here would be a
// programmer-error invariant violation, so it panics rather than looping.
func (s *synthesizer) rec(m int) string {
	if v, ok := s.memo[m]; ok {
		return v
	}
	if s.visiting[m] {
		panic(&InvariantError{Message: "cycle detected in star-free synthesis recursion"})
	}
	s.visiting[m] = true

	var out string
	if m == Identity0 {
		out = s.recIdentity()
	} else {
		out = s.recGeneral(m)
	}

	delete(s.visiting, m)
	s.memo[m] = out
	return out
}

// recIdentity implements the m = identity case of §4.5.5.
func (s *synthesizer) recIdentity() string {
	var preservers []byte
	for c := 0; c < 256; c++ {
		if s.mo.Chi(byte(c)) == Identity0 {
			preservers = append(preservers, byte(c))
		}
	}
	switch len(preservers) {
	case 0:
		return ""
	case 1:
		return string(preservers[0]) + "*"
	default:
		return "[" + string(preservers) + "]*"
	}
}

// recGeneral implements the m ≠ identity case of §4.5.5: build the U·A*,
// A*·V, and A*·W·A* components and combine them as !(!(UA)|!(AV)|AWA).
func (s *synthesizer) recGeneral(m int) string {
	ua := s.componentUA(m)
	av := s.componentAV(m)
	awa := s.componentAWA(m)
	return "!(" + "!(" + ua + ")|" + "!(" + av + ")|" + awa + ")"
}

// componentUA builds U·A*: words of the form rec(n)·a where n's right
// ideal differs from m's but μ(n,χ(a)) shares m's right ideal.
func (s *synthesizer) componentUA(m int) string {
	mo := s.mo
	mKey := mo.rightIdealKey(m)

	var parts []string
	for n := 0; n < mo.Size(); n++ {
		if mo.rightIdealKey(n) == mKey {
			continue
		}
		for a := 0; a < 256; a++ {
			prod := mo.Mul(n, mo.Chi(byte(a)))
			if mo.rightIdealKey(prod) == mKey {
				parts = append(parts, s.rec(n)+string(byte(a)))
			}
		}
	}
	if len(parts) == 0 {
		return "@"
	}
	return "(" + strings.Join(parts, "|") + ")!@"
}

// componentAV builds A*·V: words of the form a·rec(n) where n's left
// ideal differs from m's but μ(χ(a),n) shares m's left ideal.
func (s *synthesizer) componentAV(m int) string {
	mo := s.mo
	mKey := mo.leftIdealKey(m)

	var parts []string
	for n := 0; n < mo.Size(); n++ {
		if mo.leftIdealKey(n) == mKey {
			continue
		}
		for a := 0; a < 256; a++ {
			prod := mo.Mul(mo.Chi(byte(a)), n)
			if mo.leftIdealKey(prod) == mKey {
				parts = append(parts, string(byte(a))+s.rec(n))
			}
		}
	}
	if len(parts) == 0 {
		return "@"
	}
	return "!@(" + strings.Join(parts, "|") + ")"
}

// componentAWA builds A*·W·A*: a character class of letters that can
// never appear in any word mapping to m, unioned with triples a·rec(n)·b
// spliced around a middle element n, per §4.5.5.
//
// W' is always rendered as a literal character class listing its bytes,
// except ']': a class ends at the first ']', so that byte, when in W', is
// emitted as its own alternative next to the class. The specification also allows emitting W' as the complement of its
// (possibly smaller) complement set for compactness; this implementation
// always takes the direct form, since the complement form's interaction
// with the surrounding alternation group is not pinned down precisely
// enough to trust (see DESIGN.md).
func (s *synthesizer) componentAWA(m int) string {
	mo := s.mo

	var wPrime []byte
	closeBracket := false
	for c := 0; c < 256; c++ {
		if !mo.twoSidedContains(mo.Chi(byte(c)), m) {
			if c == ']' {
				closeBracket = true
				continue
			}
			wPrime = append(wPrime, byte(c))
		}
	}

	var parts []string
	if len(wPrime) > 0 {
		parts = append(parts, "["+string(wPrime)+"]")
	}
	if closeBracket {
		parts = append(parts, "]")
	}

	for a := 0; a < 256; a++ {
		ca := mo.Chi(byte(a))
		for n := 0; n < mo.Size(); n++ {
			can := mo.Mul(ca, n)
			if !mo.twoSidedContains(can, m) {
				continue
			}
			for b := 0; b < 256; b++ {
				ncb := mo.Mul(n, mo.Chi(byte(b)))
				if !mo.twoSidedContains(ncb, m) {
					continue
				}
				e := mo.Mul(ca, ncb)
				if mo.twoSidedContains(e, m) {
					continue
				}
				parts = append(parts, string(byte(a))+s.rec(n)+string(byte(b)))
			}
		}
	}

	if len(parts) == 0 {
		return "@"
	}
	return "!@(" + strings.Join(parts, "|") + ")!@"
}

// rightIdealKey returns a canonical key for the right ideal m·M = {m·x :
// x ∈ M}; equal ideals produce equal keys.
func (mo *Monoid) rightIdealKey(m int) string {
	set := make(map[int]bool, mo.Size())
	for x := 0; x < mo.Size(); x++ {
		set[mo.Mul(m, x)] = true
	}
	return setKey(set)
}

// leftIdealKey returns a canonical key for the left ideal M·m = {x·m :
// x ∈ M}; equal ideals produce equal keys.
func (mo *Monoid) leftIdealKey(m int) string {
	set := make(map[int]bool, mo.Size())
	for x := 0; x < mo.Size(); x++ {
		set[mo.Mul(x, m)] = true
	}
	return setKey(set)
}

// twoSidedContains reports whether target ∈ M·e·M for element e.
func (mo *Monoid) twoSidedContains(e, target int) bool {
	for x := 0; x < mo.Size(); x++ {
		left := mo.Mul(x, e)
		for y := 0; y < mo.Size(); y++ {
			if mo.Mul(left, y) == target {
				return true
			}
		}
	}
	return false
}

func setKey(set map[int]bool) string {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
