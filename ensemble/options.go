// SPDX-License-Identifier: MIT

// Package ensemble: functional construction options.
// Options only record intent; all validation happens in the constructors so
// every invalid combination maps to one sentinel error.

package ensemble

// Default construction parameters.
const (
	// DefaultCoupling is the interaction strength J when none is given.
	DefaultCoupling = 1.0

	// DefaultEnergyScale is the ground-state energy scale E0 for
	// direct-dimension ensembles when none is given. Many-body ensembles
	// derive E0 = N·J instead.
	DefaultEnergyScale = 1.0
)

// Option mutates construction settings. Safe to apply repeatedly.
type Option func(*settings)

// settings collects constructor inputs before validation.
type settings struct {
	seed    uint64
	seedSet bool
	j       float64
	e0      float64
	e0Set   bool
}

func defaultSettings() settings {
	return settings{j: DefaultCoupling, e0: DefaultEnergyScale}
}

// WithSeed fixes the RNG seed, making every draw sequence reproducible.
// Without it a seed is taken from the process-global source and recorded on
// the ensemble, so a run can still be replayed from its metadata.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seedSet = true
	}
}

// WithCoupling sets the interaction strength J (> 0, validated at
// construction). J feeds the many-body energy scale E0 = N·J and the SYK
// coupling deviation.
func WithCoupling(j float64) Option {
	return func(s *settings) { s.j = j }
}

// WithEnergyScale sets E0 for direct-dimension ensembles (> 0, validated at
// construction). Combining it with a many-body constructor returns
// ErrDerivedEnergyScale: there E0 = N·J by definition.
func WithEnergyScale(e0 float64) Option {
	return func(s *settings) {
		s.e0 = e0
		s.e0Set = true
	}
}
