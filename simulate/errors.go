// SPDX-License-Identifier: MIT

package simulate

import "errors"

var (
	// ErrNilEnsemble is returned when a driver receives a nil ensemble.
	ErrNilEnsemble = errors.New("simulate: nil ensemble")

	// ErrBadRealizs signals a non-positive realization count.
	ErrBadRealizs = errors.New("simulate: realizations must be > 0")

	// ErrBadWorkers signals a non-positive requested worker count.
	ErrBadWorkers = errors.New("simulate: workers must be > 0")

	// ErrNotEnoughMemory is returned when the memory budget cannot hold even
	// a single worker's footprint.
	ErrNotEnoughMemory = errors.New("simulate: memory budget below single-worker footprint")

	// ErrNotManyBody is returned by CDOEvolve for ensembles without a
	// Majorana structure; the observable needs a fermion count.
	ErrNotManyBody = errors.New("simulate: ensemble has no Majorana structure")
)
