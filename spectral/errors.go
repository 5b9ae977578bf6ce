// SPDX-License-Identifier: MIT

package spectral

import "errors"

var (
	// ErrNilEnsemble is returned when a nil ensemble reaches a constructor.
	ErrNilEnsemble = errors.New("spectral: nil ensemble")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("spectral: slice length mismatch")

	// ErrNoPeaks is returned by ThoulessTime when the form factor has fewer
	// than two local maxima, leaving nothing to interpolate an envelope
	// through.
	ErrNoPeaks = errors.New("spectral: too few form-factor peaks for an envelope")
)
