// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opEigvals = "EigvalsHermitian"
	opEig     = "EigHermitian"
	opHaar    = "HaarUnitary"
)

// degenerateFloor is the residual norm below which a candidate eigenvector is
// treated as complex-collinear with an already accepted vector of the same
// degenerate cluster, forcing a fallback to the partner embedding column.
const degenerateFloor = 1e-6

// linalgErrorf wraps err with an operation tag, preserving the original
// sentinel for errors.Is at the caller.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// EigvalsHermitian — spectrum of a Hermitian matrix.
//
// Description:
//
//	Returns the eigenvalues of h in ascending order. A purely real h is
//	diagonalized directly as an n×n real symmetric matrix. A genuinely
//	complex H = A + iB is embedded into the real symmetric
//
//	    M = ⎡ A  −B ⎤
//	        ⎣ B   A ⎦
//
//	whose spectrum is that of H with every eigenvalue doubled; adjacent
//	pairs of the sorted embedded spectrum are averaged back into the n
//	eigenvalues of H.
//
// Complexity:
//
//	Time   = O(n³) (real path) or O((2n)³) (embedded path)
//	Memory = O(n²) or O(4n²)
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare — invalid operand.
//   - ErrEigenFailed — the symmetric eigensolver did not converge.
func EigvalsHermitian(h *mat.CDense) ([]float64, error) {
	n, err := validateSquare(h)
	if err != nil {
		return nil, linalgErrorf(opEigvals, err)
	}

	var es mat.EigenSym
	if isReal(h) {
		if !es.Factorize(realPart(h, n), false) {
			return nil, linalgErrorf(opEigvals, ErrEigenFailed)
		}
		return es.Values(nil), nil
	}

	if !es.Factorize(embed(h, n), false) {
		return nil, linalgErrorf(opEigvals, ErrEigenFailed)
	}
	return collapseDoubled(es.Values(nil), n), nil
}

// EigHermitian — spectrum and orthonormal eigenbasis of a Hermitian matrix.
//
// Eigenvalues are ascending; the k-th column of the returned matrix is a unit
// eigenvector for the k-th eigenvalue. On the embedded path each doubled
// eigenvalue pair spans a two-dimensional real subspace that maps onto a
// single complex ray; one column per pair is lifted to v = x + iy and
// re-orthonormalized (complex Gram–Schmidt) inside clusters of numerically
// equal eigenvalues, so Kramers-degenerate spectra (GSE) still yield an
// orthonormal basis.
//
// Errors: as EigvalsHermitian.
func EigHermitian(h *mat.CDense) ([]float64, *mat.CDense, error) {
	n, err := validateSquare(h)
	if err != nil {
		return nil, nil, linalgErrorf(opEig, err)
	}

	var es mat.EigenSym
	if isReal(h) {
		if !es.Factorize(realPart(h, n), true) {
			return nil, nil, linalgErrorf(opEig, ErrEigenFailed)
		}
		var u mat.Dense
		es.VectorsTo(&u)
		vecs := mat.NewCDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				vecs.Set(i, j, complex(u.At(i, j), 0))
			}
		}
		return es.Values(nil), vecs, nil
	}

	if !es.Factorize(embed(h, n), true) {
		return nil, nil, linalgErrorf(opEig, ErrEigenFailed)
	}
	vals := collapseDoubled(es.Values(nil), n)
	var u mat.Dense
	es.VectorsTo(&u)

	// Cluster tolerance scales with the spectral magnitude: eigenvalues
	// closer than this are treated as one degenerate subspace.
	clusterTol := 1e-10 * float64(2*n) * maxAbs(h)

	vecs := mat.NewCDense(n, n, nil)
	var cluster [][]complex128
	for k := 0; k < n; k++ {
		if k == 0 || !almostEqual(vals[k], vals[k-1], clusterTol) {
			cluster = cluster[:0]
		}
		v := liftColumn(&u, n, 2*k)
		projectOut(v, cluster)
		if vecNorm(v) < degenerateFloor {
			v = liftColumn(&u, n, 2*k+1)
			projectOut(v, cluster)
		}
		scaleVec(v, complex(1/vecNorm(v), 0))
		for i := 0; i < n; i++ {
			vecs.Set(i, k, v[i])
		}
		cluster = append(cluster, v)
	}
	return vals, vecs, nil
}

// realPart builds the n×n SymDense holding the real parts of h.
func realPart(h *mat.CDense, n int) *mat.SymDense {
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, real(h.At(i, j)))
		}
	}
	return s
}

// embed builds the 2n×2n real symmetric embedding [[A, −B], [B, A]]
// of H = A + iB. Only the upper triangle is written; symmetry of the
// embedding is guaranteed by A = Aᵀ and B = −Bᵀ for Hermitian H.
func embed(h *mat.CDense, n int) *mat.SymDense {
	s := mat.NewSymDense(2*n, nil)
	for p := 0; p < 2*n; p++ {
		for q := p; q < 2*n; q++ {
			var v float64
			switch {
			case p < n && q < n:
				v = real(h.At(p, q))
			case p < n && q >= n:
				v = -imag(h.At(p, q-n))
			default:
				v = real(h.At(p-n, q-n))
			}
			s.SetSym(p, q, v)
		}
	}
	return s
}

// collapseDoubled averages adjacent pairs of the sorted doubled spectrum.
func collapseDoubled(dbl []float64, n int) []float64 {
	vals := make([]float64, n)
	for k := 0; k < n; k++ {
		vals[k] = 0.5 * (dbl[2*k] + dbl[2*k+1])
	}
	return vals
}

// liftColumn maps embedding column c back to the complex vector x + iy.
func liftColumn(u *mat.Dense, n, c int) []complex128 {
	v := make([]complex128, n)
	for i := 0; i < n; i++ {
		v[i] = complex(u.At(i, c), u.At(n+i, c))
	}
	return v
}

// projectOut removes the components of v along each (unit) basis vector.
func projectOut(v []complex128, basis [][]complex128) {
	for _, b := range basis {
		var dot complex128
		for i := range b {
			dot += cmplx.Conj(b[i]) * v[i]
		}
		for i := range v {
			v[i] -= dot * b[i]
		}
	}
}

func vecNorm(v []complex128) float64 {
	var s float64
	for _, z := range v {
		s += real(z)*real(z) + imag(z)*imag(z)
	}
	return math.Sqrt(s)
}

func scaleVec(v []complex128, a complex128) {
	for i := range v {
		v[i] *= a
	}
}
