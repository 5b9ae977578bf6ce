// SPDX-License-Identifier: MIT
// Package linalg: central validators shared by every kernel.
// Kernels validate first, allocate second; no kernel may touch operand data
// before its validator has passed.

package linalg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// validateSquare checks that h is non-nil and square, returning its order.
func validateSquare(h *mat.CDense) (int, error) {
	if h == nil {
		return 0, ErrNilMatrix
	}
	r, c := h.Dims()
	if r != c {
		return 0, ErrNonSquare
	}
	return r, nil
}

// IsHermitian reports whether max_{i,j} |h[i,j] − conj(h[j,i])| ≤ tol.
// A nil or non-square matrix is never Hermitian.
func IsHermitian(h *mat.CDense, tol float64) bool {
	n, err := validateSquare(h)
	if err != nil {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(h.At(i, j)-cmplx.Conj(h.At(j, i))) > tol {
				return false
			}
		}
	}
	return true
}

// isReal reports whether every imaginary part of h is exactly zero.
// Generators that only ever write real parts (GOE) keep this exact, which
// lets the eigensolver take the n×n real path instead of the 2n embedding.
func isReal(h *mat.CDense) bool {
	raw := h.RawCMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for _, v := range row {
			if imag(v) != 0 {
				return false
			}
		}
	}
	return true
}

// maxAbs returns the largest |h[i,j]|, used to scale degeneracy tolerances.
func maxAbs(h *mat.CDense) float64 {
	raw := h.RawCMatrix()
	var m float64
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for _, v := range row {
			if a := cmplx.Abs(v); a > m {
				m = a
			}
		}
	}
	if m == 0 {
		return 1
	}
	return m
}

// almostEqual reports |a−b| ≤ tol with NaN never equal to anything.
func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
