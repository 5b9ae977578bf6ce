// SPDX-License-Identifier: MIT

package visual

import "errors"

var (
	// ErrNilData reports a nil dataset container.
	ErrNilData = errors.New("visual: nil dataset")

	// ErrNilEnsemble reports a missing ensemble for a theory overlay.
	ErrNilEnsemble = errors.New("visual: nil ensemble")
)
