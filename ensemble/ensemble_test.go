// SPDX-License-Identifier: MIT

package ensemble_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/linalg"
)

const testSeed = 0x5eed

// requireHermitian asserts h == h† entrywise.
func requireHermitian(t *testing.T, h *mat.CDense, tol float64) {
	t.Helper()
	n, _ := h.Dims()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			require.LessOrEqual(t, cmplx.Abs(h.At(i, j)-cmplx.Conj(h.At(j, i))), tol,
				"entry (%d,%d) breaks Hermiticity", i, j)
		}
	}
}

func TestGenerateHermitianAllClasses(t *testing.T) {
	cases := []struct {
		name string
		make func() (*ensemble.Ensemble, error)
	}{
		{"goe", func() (*ensemble.Ensemble, error) { return ensemble.NewGOE(16, ensemble.WithSeed(testSeed)) }},
		{"gue", func() (*ensemble.Ensemble, error) { return ensemble.NewGUE(16, ensemble.WithSeed(testSeed)) }},
		{"gse", func() (*ensemble.Ensemble, error) { return ensemble.NewGSE(16, ensemble.WithSeed(testSeed)) }},
		{"bdg_c", func() (*ensemble.Ensemble, error) { return ensemble.NewBdGC(16, ensemble.WithSeed(testSeed)) }},
		{"bdg_d", func() (*ensemble.Ensemble, error) { return ensemble.NewBdGD(16, ensemble.WithSeed(testSeed)) }},
		{"poisson", func() (*ensemble.Ensemble, error) { return ensemble.NewPoisson(16, ensemble.WithSeed(testSeed)) }},
		{"syk", func() (*ensemble.Ensemble, error) { return ensemble.NewSYK(8, 4, ensemble.WithSeed(testSeed)) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := tc.make()
			require.NoError(t, err)
			h, err := e.Generate(nil)
			require.NoError(t, err)
			requireHermitian(t, h, 1e-12)
		})
	}
}

func TestGOEIsRealSymmetric(t *testing.T) {
	e, err := ensemble.NewGOE(12, ensemble.WithSeed(testSeed))
	require.NoError(t, err)
	h, err := e.Generate(nil)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			require.Zero(t, imag(h.At(i, j)), "GOE entry (%d,%d) has imaginary part", i, j)
			require.Equal(t, h.At(i, j), h.At(j, i))
		}
	}
}

func TestBdGDIsImaginaryAntisymmetric(t *testing.T) {
	e, err := ensemble.NewBdGD(10, ensemble.WithSeed(testSeed))
	require.NoError(t, err)
	h, err := e.Generate(nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.Zero(t, h.At(i, i), "BdG(D) diagonal entry %d", i)
		for j := 0; j < 10; j++ {
			require.Zero(t, real(h.At(i, j)), "BdG(D) entry (%d,%d) has real part", i, j)
			require.Equal(t, h.At(i, j), -h.At(j, i))
		}
	}
}

func TestGSEKramersDoublets(t *testing.T) {
	e, err := ensemble.NewGSE(12, ensemble.WithSeed(testSeed))
	require.NoError(t, err)
	require.Equal(t, 2, e.Degeneracy())

	h, err := e.Generate(nil)
	require.NoError(t, err)
	vals, err := linalg.EigvalsHermitian(h)
	require.NoError(t, err)
	require.Len(t, vals, 12)
	scale := 1e-9 * e.E0()
	for i := 0; i < 12; i += 2 {
		require.InDelta(t, vals[i], vals[i+1], scale, "eigenvalues %d,%d are not a doublet", i, i+1)
	}
}

func TestBdGCSpectrumSymmetricAboutZero(t *testing.T) {
	e, err := ensemble.NewBdGC(12, ensemble.WithSeed(testSeed))
	require.NoError(t, err)
	h, err := e.Generate(nil)
	require.NoError(t, err)
	vals, err := linalg.EigvalsHermitian(h)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		require.InDelta(t, vals[i], -vals[11-i], 1e-9, "particle-hole pair %d", i)
	}
}

func TestGenerateBufferContract(t *testing.T) {
	e, err := ensemble.NewGUE(8, ensemble.WithSeed(testSeed))
	require.NoError(t, err)

	dst := mat.NewCDense(8, 8, nil)
	got, err := e.Generate(dst)
	require.NoError(t, err)
	require.Same(t, dst, got)

	_, err = e.Generate(mat.NewCDense(7, 7, nil))
	require.ErrorIs(t, err, ensemble.ErrShapeMismatch)
}

func TestCloneStreamsAreDisjointAndReproducible(t *testing.T) {
	e, err := ensemble.NewGOE(8, ensemble.WithSeed(testSeed))
	require.NoError(t, err)

	a1, err := e.Clone(1).Generate(nil)
	require.NoError(t, err)
	a2, err := e.Clone(1).Generate(nil)
	require.NoError(t, err)
	b, err := e.Clone(2).Generate(nil)
	require.NoError(t, err)

	require.True(t, mat.CEqual(a1, a2), "same stream must reproduce the draw")
	require.False(t, mat.CEqual(a1, b), "distinct streams must decorrelate")
}

func TestPoissonLevels(t *testing.T) {
	e, err := ensemble.NewPoisson(64, ensemble.WithSeed(testSeed), ensemble.WithEnergyScale(2))
	require.NoError(t, err)
	levels, err := e.PoissonLevels(nil)
	require.NoError(t, err)
	require.Len(t, levels, 64)
	for _, v := range levels {
		require.LessOrEqual(t, math.Abs(v), 2.0)
	}

	g, err := ensemble.NewGOE(8)
	require.NoError(t, err)
	_, err = g.PoissonLevels(nil)
	require.ErrorIs(t, err, ensemble.ErrClassMismatch)
}

func TestConstructorValidation(t *testing.T) {
	cases := []struct {
		name string
		call func() (*ensemble.Ensemble, error)
		want error
	}{
		{"zero dim", func() (*ensemble.Ensemble, error) { return ensemble.NewGOE(0) }, ensemble.ErrBadDim},
		{"odd gse", func() (*ensemble.Ensemble, error) { return ensemble.NewGSE(7) }, ensemble.ErrOddBlockDim},
		{"odd bdgc", func() (*ensemble.Ensemble, error) { return ensemble.NewBdGC(5) }, ensemble.ErrOddBlockDim},
		{"syk via New", func() (*ensemble.Ensemble, error) { return ensemble.New(ensemble.SYK, 8) }, ensemble.ErrClassMismatch},
		{"odd majoranas", func() (*ensemble.Ensemble, error) { return ensemble.FromMajoranas(ensemble.GOE, 7) }, ensemble.ErrBadMajoranaCount},
		{"tiny majoranas", func() (*ensemble.Ensemble, error) { return ensemble.FromMajoranas(ensemble.GOE, 2) }, ensemble.ErrBadMajoranaCount},
		{"odd q", func() (*ensemble.Ensemble, error) { return ensemble.NewSYK(8, 3) }, ensemble.ErrBadQ},
		{"q too large", func() (*ensemble.Ensemble, error) { return ensemble.NewSYK(4, 4) }, ensemble.ErrQTooLarge},
		{"bad coupling", func() (*ensemble.Ensemble, error) {
			return ensemble.NewSYK(8, 4, ensemble.WithCoupling(-1))
		}, ensemble.ErrBadCoupling},
		{"bad energy scale", func() (*ensemble.Ensemble, error) {
			return ensemble.NewGOE(8, ensemble.WithEnergyScale(0))
		}, ensemble.ErrBadEnergyScale},
		{"derived energy scale", func() (*ensemble.Ensemble, error) {
			return ensemble.NewSYK(8, 4, ensemble.WithEnergyScale(1))
		}, ensemble.ErrDerivedEnergyScale},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.call()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSYKEightfoldWay(t *testing.T) {
	cases := []struct {
		n, q int
		beta float64
	}{
		{16, 4, 1}, // q ≡ 0 mod 4, N ≡ 0 mod 8
		{12, 4, 4}, // q ≡ 0 mod 4, N ≡ 4 mod 8
		{14, 4, 2},
		{10, 4, 2},
		{12, 6, 2},
		{8, 2, 0}, // quadratic model is integrable
	}
	for _, tc := range cases {
		e, err := ensemble.NewSYK(tc.n, tc.q)
		require.NoError(t, err)
		require.Equal(t, tc.beta, e.Beta(), "beta for N=%d q=%d", tc.n, tc.q)
	}
}

func TestDerivedScales(t *testing.T) {
	g, err := ensemble.NewGOE(50, ensemble.WithEnergyScale(1))
	require.NoError(t, err)
	require.InDelta(t, 1/math.Sqrt(100), g.Sigma(), 1e-15)

	p, err := ensemble.NewPoisson(50, ensemble.WithEnergyScale(1.5))
	require.NoError(t, err)
	require.InDelta(t, 3.0, p.Sigma(), 1e-15)

	s, err := ensemble.NewSYK(16, 4, ensemble.WithCoupling(1))
	require.NoError(t, err)
	require.Equal(t, 1<<7, s.Dim())
	require.InDelta(t, 16.0, s.E0(), 1e-15)
	// alternating sum: (495-880+396-48+1)/1820; negative but bounded by 1
	require.InDelta(t, -36.0/1820, s.Eta(), 1e-15)
	require.Less(t, math.Abs(s.Eta()), 1.0)
	want := 16 * math.Sqrt((1-s.Eta())/1820) / 2
	require.InDelta(t, want, s.Sigma(), 1e-15)
}

func TestDirPathAndLabels(t *testing.T) {
	s, err := ensemble.NewSYK(16, 4)
	require.NoError(t, err)
	require.Equal(t, "syk/q_4/N_16/J_1p0", s.DirPath())
	require.Equal(t, `$\textrm{SYK}_4\ N=16$`, s.LaTeX())
	require.Equal(t, "SYK(N=16, q=4, J=1)", s.String())

	g, err := ensemble.NewGOE(50, ensemble.WithEnergyScale(1.5))
	require.NoError(t, err)
	require.Equal(t, "goe/D_50/E0_1p5", g.DirPath())
	require.Equal(t, `$\textrm{GOE}\ D=50$`, g.LaTeX())
}

func TestSpecRoundTrip(t *testing.T) {
	orig, err := ensemble.NewSYK(12, 4, ensemble.WithSeed(testSeed), ensemble.WithCoupling(0.5))
	require.NoError(t, err)

	back, err := ensemble.FromSpec(orig.Spec())
	require.NoError(t, err)
	require.Equal(t, orig.Class(), back.Class())
	require.Equal(t, orig.Dim(), back.Dim())
	require.Equal(t, orig.Seed(), back.Seed())
	require.Equal(t, orig.Sigma(), back.Sigma())

	h1, err := orig.Clone(1).Generate(nil)
	require.NoError(t, err)
	h2, err := back.Clone(1).Generate(nil)
	require.NoError(t, err)
	require.True(t, mat.CEqual(h1, h2))
}

func TestParseClass(t *testing.T) {
	for name, want := range map[string]ensemble.Class{
		"goe": ensemble.GOE, "GUE": ensemble.GUE, "bdg_c": ensemble.BdGC,
		"BdGD": ensemble.BdGD, " syk ": ensemble.SYK,
	} {
		got, err := ensemble.ParseClass(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ensemble.ParseClass("gpe")
	require.ErrorIs(t, err, ensemble.ErrUnknownClass)
}

func TestObservableHermitian(t *testing.T) {
	obs, err := ensemble.Observable(8, 4)
	require.NoError(t, err)
	r, c := obs.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 8, c)
	requireHermitian(t, obs, 1e-12)

	_, err = ensemble.Observable(8, 3)
	require.ErrorIs(t, err, ensemble.ErrBadQ)
	_, err = ensemble.Observable(4, 4)
	require.ErrorIs(t, err, ensemble.ErrQTooLarge)
}

func BenchmarkGenerateGUE(b *testing.B) {
	e, err := ensemble.NewGUE(128, ensemble.WithSeed(testSeed))
	if err != nil {
		b.Fatal(err)
	}
	dst := mat.NewCDense(128, 128, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Generate(dst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateSYK(b *testing.B) {
	e, err := ensemble.NewSYK(12, 4, ensemble.WithSeed(testSeed))
	if err != nil {
		b.Fatal(err)
	}
	dst := mat.NewCDense(e.Dim(), e.Dim(), nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst.Zero()
		if _, err := e.Generate(dst); err != nil {
			b.Fatal(err)
		}
	}
}
