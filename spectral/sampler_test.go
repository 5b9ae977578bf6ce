// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/spectral"
)

func TestSamplerEigvalsStream(t *testing.T) {
	e, err := ensemble.NewGOE(16, ensemble.WithSeed(11))
	if err != nil {
		t.Fatal(err)
	}
	s, err := spectral.NewSampler(e)
	if err != nil {
		t.Fatal(err)
	}

	a, err := s.NextEigvals()
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.NextEigvals()
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("spectrum lengths %d, %d; want 16", len(a), len(b))
	}
	if !sort.Float64sAreSorted(a) || !sort.Float64sAreSorted(b) {
		t.Error("spectra must be sorted ascending")
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("consecutive realizations must differ")
	}
}

func TestSamplerEigensystem(t *testing.T) {
	e, err := ensemble.NewGUE(12, ensemble.WithSeed(11))
	if err != nil {
		t.Fatal(err)
	}
	s, err := spectral.NewSampler(e)
	if err != nil {
		t.Fatal(err)
	}

	vals, vecs, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if !sort.Float64sAreSorted(vals) {
		t.Error("eigenvalues must be sorted")
	}
	requireUnitaryColumns(t, vecs, 1e-10)
}

func TestSamplerPoissonFastPath(t *testing.T) {
	e, err := ensemble.NewPoisson(24, ensemble.WithSeed(11), ensemble.WithEnergyScale(1.5))
	if err != nil {
		t.Fatal(err)
	}
	s, err := spectral.NewSampler(e)
	if err != nil {
		t.Fatal(err)
	}

	vals, err := s.NextEigvals()
	if err != nil {
		t.Fatal(err)
	}
	if !sort.Float64sAreSorted(vals) {
		t.Error("Poisson spectrum must be sorted")
	}
	for _, v := range vals {
		if math.Abs(v) > 1.5 {
			t.Errorf("level %g outside [-E0, E0]", v)
		}
	}

	vals, vecs, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if !sort.Float64sAreSorted(vals) {
		t.Error("Poisson eigensystem spectrum must be sorted")
	}
	requireUnitaryColumns(t, vecs, 1e-10)
}

// requireUnitaryColumns asserts v†v ≈ I.
func requireUnitaryColumns(t *testing.T, v *mat.CDense, tol float64) {
	t.Helper()
	n, _ := v.Dims()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var dot complex128
			for r := 0; r < n; r++ {
				dot += cmplx.Conj(v.At(r, i)) * v.At(r, j)
			}
			want := complex128(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(dot-want) > tol {
				t.Fatalf("column inner product (%d,%d) = %v, want %v", i, j, dot, want)
			}
		}
	}
}
