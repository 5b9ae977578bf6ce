// SPDX-License-Identifier: MIT

package ensemble

import "gonum.org/v1/gonum/mat"

// fillBdGC — Bogoliubov–de Gennes class-C draw.
//
// Particle-hole symmetric structure over two dim/2 blocks:
//
//	H = ⎡ W    Δ  ⎤   W Hermitian (GUE-like), Δ complex symmetric,
//	    ⎣ Δ*  −W* ⎦
//
// the pairing block Δ carries its full diagonal (unlike the GSE
// antisymmetric block), and the bottom-right block is the negative
// conjugate of W.
func (e *Ensemble) fillBdGC(dst *mat.CDense) {
	raw := dst.RawCMatrix()
	st := raw.Stride
	half := e.sigma / 2
	bdim := e.dim / 2

	for i := 0; i < bdim; i++ {
		// Hermitian block W and its negative conjugate.
		for j := i; j < bdim; j++ {
			re := e.rng.NormFloat64() * half
			im := e.rng.NormFloat64() * half

			raw.Data[i*st+j] += complex(re, im)
			raw.Data[j*st+i] += complex(re, -im)

			raw.Data[(bdim+i)*st+bdim+j] += complex(-re, im)
			raw.Data[(bdim+j)*st+bdim+i] += complex(-re, -im)
		}
		// Complex-symmetric pairing block Δ and its conjugate.
		for j := i; j < bdim; j++ {
			re := e.rng.NormFloat64() * half
			im := e.rng.NormFloat64() * half

			raw.Data[i*st+bdim+j] += complex(re, im)
			raw.Data[j*st+bdim+i] += complex(re, im)

			raw.Data[(bdim+i)*st+j] += complex(re, -im)
			raw.Data[(bdim+j)*st+i] += complex(re, -im)
		}
	}
}
