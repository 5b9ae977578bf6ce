// SPDX-License-Identifier: MIT

package spectral

import (
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rmt/ensemble"
)

// Numeric cumulative grid: 2^12 points over 1.1·[−E0, E0].
const (
	cdfGridPts    = 1 << 12
	cdfGridFactor = 1.1

	// sykPDFTerms truncates the SYK spectral-density product formula.
	sykPDFTerms = 100
)

// Spectrum bundles the average level density of an ensemble with its
// cumulative function. The cumulative is closed-form for the semicircle and
// uniform densities; for SYK it is integrated once on first use and cached,
// so a Spectrum should be reused across realizations. Safe for concurrent
// readers.
type Spectrum struct {
	ens *ensemble.Ensemble

	once sync.Once
	grid []float64
	cum  []float64
}

// NewSpectrum wraps an ensemble with its analytic spectral distribution.
func NewSpectrum(e *ensemble.Ensemble) (*Spectrum, error) {
	if e == nil {
		return nil, ErrNilEnsemble
	}
	return &Spectrum{ens: e}, nil
}

// Ensemble returns the wrapped ensemble.
func (s *Spectrum) Ensemble() *ensemble.Ensemble { return s.ens }

// PDF evaluates the average density of states at energy x.
func (s *Spectrum) PDF(x float64) float64 {
	e0 := s.ens.E0()
	switch s.ens.Class() {
	case ensemble.SYK:
		return s.sykPDF(x)
	case ensemble.Poisson:
		if math.Abs(x) < e0 {
			return 1 / (2 * e0)
		}
		return 0
	default:
		u := x / e0
		if math.Abs(u) >= 1 {
			return 0
		}
		return 2 / math.Pi / e0 * math.Sqrt(1-u*u)
	}
}

// sykPDF evaluates the SYK average spectral density via the truncated
// product formula. The √(1−η) prefactor of the closed form cancels against
// √C(N,q)·σ = E0·√(1−η)/2 in the normalization, leaving 2/(π·E0).
func (s *Spectrum) sykPDF(x float64) float64 {
	e0 := s.ens.E0()
	if math.Abs(x) >= e0 {
		return 0
	}
	eta := s.ens.Eta()
	u := x / e0
	var logP float64
	for k := 1; k <= sykPDFTerms; k++ {
		ek := math.Pow(eta, float64(k))
		term1 := 1 - 4*u*u*ek/((1+ek)*(1+ek))
		term2 := (1 - math.Pow(eta, float64(2*k))) / (1 - math.Pow(eta, float64(2*k-1)))
		logP += math.Log(term1) + math.Log(term2)
	}
	return 2 / (math.Pi * e0) * math.Exp(logP) * math.Sqrt(1-u*u)
}

// CDF evaluates the cumulative density of states at energy x, clamped to
// [0, 1] outside the support.
func (s *Spectrum) CDF(x float64) float64 {
	e0 := s.ens.E0()
	switch s.ens.Class() {
	case ensemble.SYK:
		return s.numericCDF(x)
	case ensemble.Poisson:
		switch {
		case x <= -e0:
			return 0
		case x >= e0:
			return 1
		default:
			return x/(2*e0) + 0.5
		}
	default:
		u := x / e0
		if u < -1 {
			u = -1
		} else if u > 1 {
			u = 1
		}
		return (u*math.Sqrt(1-u*u)+math.Asin(u))/math.Pi + 0.5
	}
}

// numericCDF linearly interpolates the cached cumulative-trapezoid grid.
func (s *Spectrum) numericCDF(x float64) float64 {
	s.once.Do(s.buildCDF)
	i := sort.SearchFloat64s(s.grid, x)
	switch {
	case i == 0:
		return 0
	case i == len(s.grid):
		return 1
	}
	x0, x1 := s.grid[i-1], s.grid[i]
	c0, c1 := s.cum[i-1], s.cum[i]
	return c0 + (c1-c0)*(x-x0)/(x1-x0)
}

func (s *Spectrum) buildCDF() {
	e0 := s.ens.E0()
	s.grid = make([]float64, cdfGridPts)
	floats.Span(s.grid, -cdfGridFactor*e0, cdfGridFactor*e0)
	s.cum = make([]float64, cdfGridPts)
	prev := s.PDF(s.grid[0])
	for i := 1; i < cdfGridPts; i++ {
		cur := s.PDF(s.grid[i])
		s.cum[i] = s.cum[i-1] + 0.5*(prev+cur)*(s.grid[i]-s.grid[i-1])
		prev = cur
	}
}

// Unfold maps eigenvalues onto the scale where the mean level spacing is
// one: u = dim·(cdf(E) − cdf(0)). dst must hold len(eigvals) entries; nil
// allocates.
func (s *Spectrum) Unfold(dst, eigvals []float64) ([]float64, error) {
	if dst == nil {
		dst = make([]float64, len(eigvals))
	} else if len(dst) != len(eigvals) {
		return nil, ErrLengthMismatch
	}
	dim := float64(s.ens.Dim())
	c0 := s.CDF(0)
	for i, e := range eigvals {
		dst[i] = dim * (s.CDF(e) - c0)
	}
	return dst, nil
}
