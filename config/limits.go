// Package config holds the tunable resource ceilings for the decision
// pipeline (nfa -> dfa -> monoid), mirroring how the teacher's meta
// package centralizes engine-wide knobs in a single Config value instead
// of scattering magic numbers across packages.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Limits bounds the size of intermediate structures the pipeline is
// willing to build, per §5's resource model: peak memory is dominated by
// the monoid's |M|x|M| multiplication table and its O(|M|*n^2) element
// map, both of which implementers are warned can blow up exponentially
// in the worst case (§4.3).
type Limits struct {
	// MaxDFAStates caps the number of states the subset-construction
	// builder may produce before it refuses to continue.
	MaxDFAStates int `yaml:"max_dfa_states"`

	// MaxMonoidElements caps the number of distinct matrices the
	// syntactic-monoid enumeration may discover.
	MaxMonoidElements int `yaml:"max_monoid_elements"`
}

// DefaultLimits returns the limits used when no configuration file is
// supplied: generous enough for the example patterns in §8, small enough
// to fail fast on a pathological input rather than exhaust memory.
func DefaultLimits() Limits {
	return Limits{
		MaxDFAStates:      4096,
		MaxMonoidElements: 16384,
	}
}

// Load reads Limits from a YAML file at path, falling back to
// DefaultLimits for any field the file leaves unset.
func Load(path string) (Limits, error) {
	limits := DefaultLimits()

	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, errors.Wrapf(err, "reading config file %q", path)
	}
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return Limits{}, errors.Wrapf(err, "parsing config file %q", path)
	}
	return limits, nil
}
