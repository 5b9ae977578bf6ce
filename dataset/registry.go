// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// registry maps stable dataset names to empty-container factories. The
// table is explicit: adding a container means adding a line here.
var registry = map[string]func() Dataset{
	NameSpectralDensity:  func() Dataset { return &SpectralDensity{} },
	NameSpacingHistogram: func() Dataset { return &SpacingHistogram{} },
	NameFormFactors:      func() Dataset { return &FormFactors{} },
	NameCDODynamics:      func() Dataset { return &CDODynamics{} },
	NameEvolvedStates:    func() Dataset { return &EvolvedStates{} },
}

// New returns an empty container for the given registry name, ready for
// restore from an archive.
func New(name string) (Dataset, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownDataset)
	}
	return factory(), nil
}
