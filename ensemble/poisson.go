// SPDX-License-Identifier: MIT

package ensemble

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmt/linalg"
)

// poissonNoiseFloor is the magnitude below which real/imaginary components
// of a Poisson draw are zeroed. The product U·D·U† leaves rounding residue
// that would otherwise read as a weak symmetry violation downstream.
const poissonNoiseFloor = 1e-7

// fillPoisson — Poisson (uncorrelated-level) draw.
//
// H = U·diag(u)·U† with U Haar-random (QR of a complex Ginibre matrix) and
// u i.i.d. uniform on [−E0, E0] (σ = 2·E0). Unlike the Gaussian fills this
// overwrites dst: the product determines every entry. The upper triangle is
// computed once and conjugate-mirrored, so the result is exactly Hermitian.
func (e *Ensemble) fillPoisson(dst *mat.CDense) error {
	u, err := linalg.HaarUnitary(e.dim, e.rng, nil)
	if err != nil {
		return err
	}
	levels := make([]float64, e.dim)
	for k := range levels {
		levels[k] = (e.rng.Float64() - 0.5) * e.sigma
	}

	raw := dst.RawCMatrix()
	st := raw.Stride
	ur := u.RawCMatrix()
	ust := ur.Stride
	for i := 0; i < e.dim; i++ {
		for j := i; j < e.dim; j++ {
			var s complex128
			for k := 0; k < e.dim; k++ {
				s += ur.Data[i*ust+k] * complex(levels[k], 0) * cmplx.Conj(ur.Data[j*ust+k])
			}
			s = denoise(s)
			raw.Data[i*st+j] = s
			if j > i {
				raw.Data[j*st+i] = cmplx.Conj(s)
			}
		}
	}
	return nil
}

// denoise zeroes sub-threshold components independently.
func denoise(z complex128) complex128 {
	re, im := real(z), imag(z)
	if math.Abs(re) < poissonNoiseFloor {
		re = 0
	}
	if math.Abs(im) < poissonNoiseFloor {
		im = 0
	}
	return complex(re, im)
}
