// SPDX-License-Identifier: MIT

package spectral_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/spectral"
)

func TestWignerSurmiseClosedForms(t *testing.T) {
	poisson, err := ensemble.NewPoisson(16)
	if err != nil {
		t.Fatal(err)
	}
	goe, err := ensemble.NewGOE(16)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []float64{0, 0.5, 1, 2.5} {
		if got, want := spectral.WignerSurmise(poisson, s), math.Exp(-s); math.Abs(got-want) > 1e-14 {
			t.Errorf("Poisson surmise(%g) = %g, want %g", s, got, want)
		}
		want := math.Pi / 2 * s * math.Exp(-math.Pi*s*s/4)
		if got := spectral.WignerSurmise(goe, s); math.Abs(got-want) > 1e-12 {
			t.Errorf("GOE surmise(%g) = %g, want %g", s, got, want)
		}
	}
}

func TestWignerSurmiseNormalization(t *testing.T) {
	mk := func(f func() (*ensemble.Ensemble, error)) *ensemble.Ensemble {
		e, err := f()
		if err != nil {
			t.Fatal(err)
		}
		return e
	}
	cases := []struct {
		name     string
		e        *ensemble.Ensemble
		wantMean float64
	}{
		{"goe", mk(func() (*ensemble.Ensemble, error) { return ensemble.NewGOE(16) }), 1},
		{"gue", mk(func() (*ensemble.Ensemble, error) { return ensemble.NewGUE(16) }), 1},
		// Kramers rescaling doubles the mean spacing of the doubled count.
		{"gse", mk(func() (*ensemble.Ensemble, error) { return ensemble.NewGSE(16) }), 2},
	}
	xs := make([]float64, 8001)
	floats.Span(xs, 0, 20)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ys := make([]float64, len(xs))
			ms := make([]float64, len(xs))
			for i, x := range xs {
				ys[i] = spectral.WignerSurmise(tc.e, x)
				ms[i] = x * ys[i]
			}
			if got := integrate.Trapezoidal(xs, ys); math.Abs(got-1) > 1e-3 {
				t.Errorf("surmise integrates to %g", got)
			}
			if got := integrate.Trapezoidal(xs, ms); math.Abs(got-tc.wantMean) > 1e-3 {
				t.Errorf("surmise mean = %g, want %g", got, tc.wantMean)
			}
		})
	}
}

func TestUnivCSFF(t *testing.T) {
	gue, err := ensemble.NewGUE(64)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := spectral.UnivCSFF(gue, math.Pi), 0.5/64; math.Abs(got-want) > 1e-15 {
		t.Errorf("GUE ramp value = %g, want %g", got, want)
	}
	if got, want := spectral.UnivCSFF(gue, 100*math.Pi), 1.0/64; got != want {
		t.Errorf("GUE plateau = %g, want %g", got, want)
	}

	goe, err := ensemble.NewGOE(64)
	if err != nil {
		t.Fatal(err)
	}
	below := spectral.UnivCSFF(goe, 2*math.Pi*(1-1e-9))
	above := spectral.UnivCSFF(goe, 2*math.Pi*(1+1e-9))
	if math.Abs(below-above) > 1e-6 {
		t.Errorf("GOE curve discontinuous at Heisenberg time: %g vs %g", below, above)
	}
	if got, want := spectral.UnivCSFF(goe, 1e9), 1.0/64; math.Abs(got-want) > 1e-6 {
		t.Errorf("GOE plateau = %g, want %g", got, want)
	}

	gse, err := ensemble.NewGSE(64)
	if err != nil {
		t.Fatal(err)
	}
	if got := spectral.UnivCSFF(gse, math.Pi); !math.IsNaN(got) {
		t.Errorf("GSE log singularity not flagged: %g", got)
	}
	if got, want := spectral.UnivCSFF(gse, 10*math.Pi), 2.0/64; got != want {
		t.Errorf("GSE plateau = %g, want %g", got, want)
	}

	poisson, err := ensemble.NewPoisson(64)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := spectral.UnivCSFF(poisson, 3), 1.0/64; got != want {
		t.Errorf("Poisson csff = %g, want %g", got, want)
	}
}

func TestThoulessTime(t *testing.T) {
	const n = 101
	times := make([]float64, n)
	sff := make([]float64, n)
	for i := range times {
		times[i] = float64(i)
		if i%4 == 2 {
			// peak envelope: parabola with its minimum at t = 50
			d := (times[i] - 50) / 50
			sff[i] = 0.1 + d*d
		} else {
			sff[i] = 0.01
		}
	}
	got, err := spectral.ThoulessTime(times, sff)
	if err != nil {
		t.Fatal(err)
	}
	if got != 50 {
		t.Errorf("ThoulessTime = %g, want 50", got)
	}
}

func TestThoulessTimeErrors(t *testing.T) {
	monotone := []float64{1, 2, 3, 4, 5}
	if _, err := spectral.ThoulessTime(monotone, monotone); !errors.Is(err, spectral.ErrNoPeaks) {
		t.Errorf("want ErrNoPeaks, got %v", err)
	}
	if _, err := spectral.ThoulessTime([]float64{1, 2}, []float64{1}); !errors.Is(err, spectral.ErrLengthMismatch) {
		t.Errorf("want ErrLengthMismatch, got %v", err)
	}
}
