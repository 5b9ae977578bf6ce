// SPDX-License-Identifier: MIT

package ensemble

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// fillGOE — Gaussian orthogonal ensemble draw.
//
// Real symmetric matrix: each upper-triangle entry receives an independent
// N(0, σ/√2) value mirrored to its transpose slot; the diagonal is hit by
// both the row and the column write, doubling its deviation — the standard
// real Gaussian-orthogonal convention under σ = E0/√(2·dim), which puts the
// semicircle support exactly on [−E0, E0].
func (e *Ensemble) fillGOE(dst *mat.CDense) {
	raw := dst.RawCMatrix()
	st := raw.Stride
	scale := e.sigma / math.Sqrt2
	for i := 0; i < e.dim; i++ {
		for j := i; j < e.dim; j++ {
			r := complex(e.rng.NormFloat64()*scale, 0)
			raw.Data[i*st+j] += r
			raw.Data[j*st+i] += r
		}
	}
}
