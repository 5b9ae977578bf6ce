// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// All kernels MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.

package linalg

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix operand where a value was required.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrShapeMismatch indicates incompatible dimensions between operands,
	// e.g. a destination buffer whose shape differs from the source.
	ErrShapeMismatch = errors.New("linalg: shape mismatch")

	// ErrBadDimension is returned when a requested dimension is non-positive.
	ErrBadDimension = errors.New("linalg: dimension must be > 0")

	// ErrEigenFailed indicates that the symmetric eigensolver failed to
	// converge on the embedded matrix.
	ErrEigenFailed = errors.New("linalg: eigen decomposition failed")

	// ErrNilRand indicates a nil random source where one was required.
	ErrNilRand = errors.New("linalg: nil random source")
)
