// SPDX-License-Identifier: MIT

package ensemble

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// fillBdGD — Bogoliubov–de Gennes class-D draw.
//
// Purely imaginary antisymmetric matrix H = iK with K real antisymmetric:
// the real part is identically zero, the diagonal stays empty (the first
// element of each row's range is skipped so it is never double-counted),
// and every off-diagonal imaginary part is N(0, σ/√2) mirrored with
// opposite sign.
func (e *Ensemble) fillBdGD(dst *mat.CDense) {
	raw := dst.RawCMatrix()
	st := raw.Stride
	scale := e.sigma / math.Sqrt2
	for i := 0; i < e.dim; i++ {
		for j := i + 1; j < e.dim; j++ {
			im := e.rng.NormFloat64() * scale
			raw.Data[i*st+j] += complex(0, im)
			raw.Data[j*st+i] -= complex(0, im)
		}
	}
}
