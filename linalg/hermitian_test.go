// SPDX-License-Identifier: MIT

package linalg_test

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmt/linalg"
)

const epsEig = 1e-10

// randHermitian fills an n×n Hermitian matrix with N(0,1)-scaled entries.
func randHermitian(n int, rng *rand.Rand) *mat.CDense {
	h := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		h.Set(i, i, complex(rng.NormFloat64(), 0))
		for j := i + 1; j < n; j++ {
			z := complex(rng.NormFloat64(), rng.NormFloat64())
			h.Set(i, j, z)
			h.Set(j, i, cmplx.Conj(z))
		}
	}
	return h
}

func TestEigvalsHermitian_PauliY(t *testing.T) {
	t.Parallel()

	// σ_y has spectrum {−1, +1}.
	h := mat.NewCDense(2, 2, []complex128{0, complex(0, -1), complex(0, 1), 0})
	vals, err := linalg.EigvalsHermitian(h)
	if err != nil {
		t.Fatalf("EigvalsHermitian: %v", err)
	}
	if len(vals) != 2 {
		t.Fatalf("want 2 eigenvalues, got %d", len(vals))
	}
	if math.Abs(vals[0]+1) > epsEig || math.Abs(vals[1]-1) > epsEig {
		t.Fatalf("spectrum = %v, want [-1, 1]", vals)
	}
}

func TestEigvalsHermitian_RealPath(t *testing.T) {
	t.Parallel()

	// Real symmetric [[2,1],[1,2]] has spectrum {1, 3}.
	h := mat.NewCDense(2, 2, []complex128{2, 1, 1, 2})
	vals, err := linalg.EigvalsHermitian(h)
	if err != nil {
		t.Fatalf("EigvalsHermitian: %v", err)
	}
	if math.Abs(vals[0]-1) > epsEig || math.Abs(vals[1]-3) > epsEig {
		t.Fatalf("spectrum = %v, want [1, 3]", vals)
	}
}

func TestEigvalsHermitian_TraceAndOrder(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	h := randHermitian(12, rng)

	vals, err := linalg.EigvalsHermitian(h)
	if err != nil {
		t.Fatalf("EigvalsHermitian: %v", err)
	}

	var trace, sum float64
	for i := 0; i < 12; i++ {
		trace += real(h.At(i, i))
		sum += vals[i]
	}
	if math.Abs(trace-sum) > 1e-9 {
		t.Fatalf("eigenvalue sum %g does not match trace %g", sum, trace)
	}
	for k := 1; k < len(vals); k++ {
		if vals[k] < vals[k-1] {
			t.Fatalf("eigenvalues not ascending at %d: %v", k, vals)
		}
	}
}

func TestEigHermitian_Residuals(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	n := 10
	h := randHermitian(n, rng)

	vals, vecs, err := linalg.EigHermitian(h)
	if err != nil {
		t.Fatalf("EigHermitian: %v", err)
	}

	// ‖Hv − λv‖ small and columns orthonormal.
	for k := 0; k < n; k++ {
		var resid, norm float64
		for i := 0; i < n; i++ {
			var hv complex128
			for j := 0; j < n; j++ {
				hv += h.At(i, j) * vecs.At(j, k)
			}
			d := hv - complex(vals[k], 0)*vecs.At(i, k)
			resid += real(d)*real(d) + imag(d)*imag(d)
			norm += real(vecs.At(i, k))*real(vecs.At(i, k)) + imag(vecs.At(i, k))*imag(vecs.At(i, k))
		}
		if math.Sqrt(resid) > 1e-8 {
			t.Fatalf("column %d residual %g too large", k, math.Sqrt(resid))
		}
		if math.Abs(math.Sqrt(norm)-1) > 1e-8 {
			t.Fatalf("column %d norm %g, want 1", k, math.Sqrt(norm))
		}
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			var dot complex128
			for i := 0; i < n; i++ {
				dot += cmplx.Conj(vecs.At(i, a)) * vecs.At(i, b)
			}
			if cmplx.Abs(dot) > 1e-8 {
				t.Fatalf("columns %d,%d not orthogonal: |dot|=%g", a, b, cmplx.Abs(dot))
			}
		}
	}
}

func TestEigvalsHermitian_Sentinels(t *testing.T) {
	t.Parallel()

	if _, err := linalg.EigvalsHermitian(nil); !errors.Is(err, linalg.ErrNilMatrix) {
		t.Fatalf("nil operand: got %v, want ErrNilMatrix", err)
	}
	rect := mat.NewCDense(2, 3, nil)
	if _, err := linalg.EigvalsHermitian(rect); !errors.Is(err, linalg.ErrNonSquare) {
		t.Fatalf("rectangular operand: got %v, want ErrNonSquare", err)
	}
}

func TestIsHermitian(t *testing.T) {
	t.Parallel()

	h := mat.NewCDense(2, 2, []complex128{1, complex(0, 1), complex(0, -1), 2})
	if !linalg.IsHermitian(h, 0) {
		t.Fatal("exact Hermitian matrix rejected")
	}
	h.Set(0, 1, complex(0, 1.001))
	if linalg.IsHermitian(h, 1e-6) {
		t.Fatal("non-Hermitian matrix accepted")
	}
	if linalg.IsHermitian(mat.NewCDense(2, 3, nil), 1) {
		t.Fatal("rectangular matrix accepted")
	}
}
