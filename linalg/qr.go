// SPDX-License-Identifier: MIT

package linalg

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// HaarUnitary — Haar-distributed random unitary matrix.
//
// Description:
//
//	Draws Z with independent (N(0,1) + i·N(0,1))/√2 entries (complex
//	Ginibre), computes the Householder QR factorization Z = QR in place,
//	and multiplies each column of Q by the phase of the matching R diagonal
//	entry. Without the phase fix the QR map is not measure-preserving; with
//	it Q is exactly Haar on U(n).
//
//	dst may be nil (a fresh n×n matrix is allocated) or an existing n×n
//	buffer to overwrite, which lets realization loops avoid reallocation.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(n²) scratch
//
// Errors:
//   - ErrBadDimension — n ≤ 0.
//   - ErrNilRand — rng is nil.
//   - ErrShapeMismatch — dst is non-nil but not n×n.
func HaarUnitary(n int, rng *rand.Rand, dst *mat.CDense) (*mat.CDense, error) {
	if n <= 0 {
		return nil, linalgErrorf(opHaar, ErrBadDimension)
	}
	if rng == nil {
		return nil, linalgErrorf(opHaar, ErrNilRand)
	}
	if dst == nil {
		dst = mat.NewCDense(n, n, nil)
	} else if r, c := dst.Dims(); r != n || c != n {
		return nil, linalgErrorf(opHaar, ErrShapeMismatch)
	}

	// Complex Ginibre draw, row-major scratch.
	a := make([]complex128, n*n)
	invSqrt2 := 1 / math.Sqrt2
	for i := range a {
		a[i] = complex(rng.NormFloat64()*invSqrt2, rng.NormFloat64()*invSqrt2)
	}

	// In-place Householder QR: after the loop, a holds R on and above the
	// diagonal and vs the unit reflectors.
	vs := make([][]complex128, n)
	for k := 0; k < n; k++ {
		var xnorm float64
		for i := k; i < n; i++ {
			xnorm += real(a[i*n+k])*real(a[i*n+k]) + imag(a[i*n+k])*imag(a[i*n+k])
		}
		xnorm = math.Sqrt(xnorm)
		if xnorm == 0 {
			continue
		}
		x0 := a[k*n+k]
		ph := complex(1, 0)
		if x0 != 0 {
			ph = x0 / complex(cmplx.Abs(x0), 0)
		}
		alpha := -ph * complex(xnorm, 0)

		v := make([]complex128, n-k)
		v[0] = x0 - alpha
		for i := k + 1; i < n; i++ {
			v[i-k] = a[i*n+k]
		}
		vn := vecNorm(v)
		if vn == 0 {
			a[k*n+k] = alpha
			continue
		}
		scaleVec(v, complex(1/vn, 0))
		vs[k] = v

		// Apply H = I − 2vv† to the trailing block.
		for j := k; j < n; j++ {
			var s complex128
			for i := 0; i < n-k; i++ {
				s += cmplx.Conj(v[i]) * a[(k+i)*n+j]
			}
			s *= 2
			for i := 0; i < n-k; i++ {
				a[(k+i)*n+j] -= s * v[i]
			}
		}
	}

	// Accumulate Q = H₀H₁⋯H_{n−1} applied to the identity, in reverse.
	q := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		q[i*n+i] = 1
	}
	for k := n - 1; k >= 0; k-- {
		v := vs[k]
		if v == nil {
			continue
		}
		for j := 0; j < n; j++ {
			var s complex128
			for i := 0; i < n-k; i++ {
				s += cmplx.Conj(v[i]) * q[(k+i)*n+j]
			}
			s *= 2
			for i := 0; i < n-k; i++ {
				q[(k+i)*n+j] -= s * v[i]
			}
		}
	}

	// Phase fix: Q ← Q·diag(r_jj/|r_jj|).
	for j := 0; j < n; j++ {
		d := a[j*n+j]
		ph := complex(1, 0)
		if d != 0 {
			ph = d / complex(cmplx.Abs(d), 0)
		}
		for i := 0; i < n; i++ {
			q[i*n+j] *= ph
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst.Set(i, j, q[i*n+j])
		}
	}
	return dst, nil
}
