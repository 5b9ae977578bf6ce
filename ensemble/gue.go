// SPDX-License-Identifier: MIT

package ensemble

import "gonum.org/v1/gonum/mat"

// fillGUE — Gaussian unitary ensemble draw.
//
// Complex Hermitian matrix: each upper-triangle entry receives independent
// N(0, σ/2) real and imaginary parts, conjugate-reflected below the
// diagonal. The diagonal slot takes the row and column writes together, so
// its imaginary parts cancel and it stays real with doubled deviation.
func (e *Ensemble) fillGUE(dst *mat.CDense) {
	raw := dst.RawCMatrix()
	st := raw.Stride
	half := e.sigma / 2
	for i := 0; i < e.dim; i++ {
		for j := i; j < e.dim; j++ {
			re := e.rng.NormFloat64() * half
			im := e.rng.NormFloat64() * half
			raw.Data[i*st+j] += complex(re, im)
			raw.Data[j*st+i] += complex(re, -im)
		}
	}
}
