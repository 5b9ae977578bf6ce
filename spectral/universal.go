// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/rmt/ensemble"
)

// WignerSurmise evaluates the nearest-neighbour spacing density of the
// ensemble's universality class at spacing s (in units of the mean spacing),
//
//	p(s) = 2a·s^β·exp(−b·s²),  a = Γ(β/2+1)^(β+1)/Γ((β+1)/2)^(β+2),
//	                            b = (Γ(β/2+1)/Γ((β+1)/2))²,
//
// with Kramers doublets rescaled through the degeneracy. β = 0 gives the
// Poisson law exp(−s).
func WignerSurmise(e *ensemble.Ensemble, s float64) float64 {
	beta := e.Beta()
	if beta == 0 {
		return math.Exp(-s)
	}
	degen := float64(e.Degeneracy())
	s /= degen
	ga := math.Gamma((beta + 2) / 2)
	gb := math.Gamma((beta + 1) / 2)
	a := math.Pow(ga, beta+1) / math.Pow(gb, beta+2)
	b := (ga / gb) * (ga / gb)
	return 2 * a * math.Pow(s, beta) * math.Exp(-b*s*s) / degen
}

// UnivCSFF evaluates the universal connected spectral form factor of the
// ensemble's universality class at unfolded time tau. The Heisenberg time is
// 2π on the unfolded scale. For symplectic universality the curve has a log
// singularity at degen·tau/2π = 1, where NaN is returned.
func UnivCSFF(e *ensemble.Ensemble, tau float64) float64 {
	dim := float64(e.Dim())
	degen := float64(e.Degeneracy())
	tau /= 2 * math.Pi

	switch e.Beta() {
	case 1:
		if tau <= 1 {
			return tau * (2 - math.Log(2*tau+1)) / dim
		}
		return (2 - tau*math.Log((2*tau+1)/(2*tau-1))) / dim
	case 2:
		if tau <= 1 {
			return tau / dim
		}
		return 1 / dim
	case 4:
		st := degen * tau
		switch {
		case st == 1:
			return math.NaN()
		case st < 2:
			return degen * (tau - tau/2*math.Log(math.Abs(st-1))) / dim
		default:
			return degen / dim
		}
	default:
		return 1 / dim
	}
}

// ThoulessTime estimates the time where the spectral form factor joins its
// universal ramp: the local maxima of sff are interpolated with a monotone
// cubic (Fritsch–Butland) envelope and the grid time of the envelope's
// global minimum between the first and last peak is returned.
func ThoulessTime(times, sff []float64) (float64, error) {
	if len(times) != len(sff) {
		return 0, ErrLengthMismatch
	}

	var peakT, peakV []float64
	first, last := -1, -1
	for i := 1; i < len(sff)-1; i++ {
		if sff[i] > sff[i-1] && sff[i] > sff[i+1] {
			if first < 0 {
				first = i
			}
			last = i
			peakT = append(peakT, times[i])
			peakV = append(peakV, sff[i])
		}
	}
	if len(peakT) < 2 {
		return 0, ErrNoPeaks
	}

	var env interp.FritschButland
	if err := env.Fit(peakT, peakV); err != nil {
		return 0, fmt.Errorf("ThoulessTime: envelope fit: %w", err)
	}
	best, bestVal := first, math.Inf(1)
	for i := first; i <= last; i++ {
		if v := env.Predict(times[i]); v < bestVal {
			best, bestVal = i, v
		}
	}
	return times[best], nil
}
