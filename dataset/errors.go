// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrBadGrid signals non-positive bin/time counts or an empty shape
	// parameter at container construction.
	ErrBadGrid = errors.New("dataset: grid parameters must be positive")

	// ErrUnknownDataset is returned when an archive names a dataset the
	// registry does not know.
	ErrUnknownDataset = errors.New("dataset: unknown dataset name")

	// ErrMissingArray is returned when an archive lacks an array entry the
	// dataset requires.
	ErrMissingArray = errors.New("dataset: missing array entry")

	// ErrShapeMismatch signals array lengths inconsistent with the
	// container's shape invariants.
	ErrShapeMismatch = errors.New("dataset: array shape mismatch")

	// ErrBadMetadata signals a missing or unparsable metadata.json entry.
	ErrBadMetadata = errors.New("dataset: bad archive metadata")
)
