// SPDX-License-Identifier: MIT

package ensemble

import "gonum.org/v1/gonum/mat"

// fillGSE — Gaussian symplectic ensemble draw.
//
// Quaternionic self-dual structure over two dim/2 blocks:
//
//	H = ⎡ W   Z  ⎤   W Hermitian (GUE-like), Z complex antisymmetric,
//	    ⎣ −Z* W* ⎦
//
// The per-row loop carries the banded correlation between the blocks: each
// row draw fills a row of W, its conjugate in the bottom-right block, a row
// of Z (first element zero to keep the antisymmetric diagonal empty), and
// Z's reflections with the class's sign pattern. Every eigenvalue of the
// result is a Kramers doublet.
func (e *Ensemble) fillGSE(dst *mat.CDense) {
	raw := dst.RawCMatrix()
	st := raw.Stride
	half := e.sigma / 2
	bdim := e.dim / 2

	for i := 0; i < bdim; i++ {
		// Hermitian block W and its conjugate copy.
		for j := i; j < bdim; j++ {
			re := e.rng.NormFloat64() * half
			im := e.rng.NormFloat64() * half

			raw.Data[i*st+j] += complex(re, im)
			raw.Data[j*st+i] += complex(re, -im)

			raw.Data[(bdim+i)*st+bdim+j] += complex(re, -im)
			raw.Data[(bdim+j)*st+bdim+i] += complex(re, im)
		}
		// Antisymmetric block Z; the j == i element stays zero.
		for j := i; j < bdim; j++ {
			var re, im float64
			if j > i {
				re = e.rng.NormFloat64() * half
				im = e.rng.NormFloat64() * half
			}

			raw.Data[i*st+bdim+j] += complex(re, im)
			raw.Data[j*st+bdim+i] -= complex(re, im)

			raw.Data[(bdim+i)*st+j] += complex(-re, im)
			raw.Data[(bdim+j)*st+i] += complex(re, -im)
		}
	}
}
