// SPDX-License-Identifier: MIT

package visual

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/rmt/dataset"
	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/spectral"
)

// theoryPoints is the sampling resolution of overlay curves.
const theoryPoints = 1000

// DensityPlot draws the level-density histogram with the ensemble's
// spectral density overlaid. With unfold the unfolded axis is drawn
// instead; its theory curve is the flat 1/dim density.
func DensityPlot(e *ensemble.Ensemble, d *dataset.SpectralDensity, unfold bool) (*plot.Plot, error) {
	if d == nil {
		return nil, ErrNilData
	}
	if e == nil {
		return nil, ErrNilEnsemble
	}

	p := newPlot(e.String(), "E", "density")
	edges, counts := d.Bins, d.Hist
	if unfold {
		edges, counts = d.UnfBins, d.UnfHist
		p.X.Label.Text = "unfolded E"
	}
	if err := histLine(p, edges, counts, "simulation"); err != nil {
		return nil, err
	}

	xs := make([]float64, theoryPoints)
	ys := make([]float64, theoryPoints)
	floats.Span(xs, edges[0], edges[len(edges)-1])
	if unfold {
		inv := 1 / float64(e.Dim())
		half := float64(e.Dim()) / 2
		for i, x := range xs {
			if math.Abs(x) <= half {
				ys[i] = inv
			}
		}
	} else {
		spec, err := spectral.NewSpectrum(e)
		if err != nil {
			return nil, err
		}
		for i, x := range xs {
			ys[i] = spec.PDF(x)
		}
	}
	if err := curve(p, xs, ys, "theory", theoryColor); err != nil {
		return nil, err
	}
	return p, nil
}

// SpacingPlot draws the nearest-neighbour spacing histogram with the
// Wigner surmise of the ensemble's universality class overlaid. The raw
// axis rescales the surmise by the global mean spacing.
func SpacingPlot(e *ensemble.Ensemble, d *dataset.SpacingHistogram, unfold bool) (*plot.Plot, error) {
	if d == nil {
		return nil, ErrNilData
	}
	if e == nil {
		return nil, ErrNilEnsemble
	}

	p := newPlot(e.String(), "s", "p(s)")
	edges, counts := d.Bins, d.Hist
	mean := d.Mean
	if unfold {
		edges, counts = d.UnfBins, d.UnfHist
		mean = 1
	}
	if err := histLine(p, edges, counts, "simulation"); err != nil {
		return nil, err
	}

	xs := make([]float64, theoryPoints)
	ys := make([]float64, theoryPoints)
	floats.Span(xs, edges[0], edges[len(edges)-1])
	for i, x := range xs {
		ys[i] = spectral.WignerSurmise(e, x/mean) / mean
	}
	if err := curve(p, xs, ys, "theory", theoryColor); err != nil {
		return nil, err
	}
	return p, nil
}

// FormFactorsPlot draws the spectral form factor and its connected part on
// log-log axes. On the unfolded axis the universal connected curve is
// overlaid.
func FormFactorsPlot(e *ensemble.Ensemble, d *dataset.FormFactors, unfold bool) (*plot.Plot, error) {
	if d == nil {
		return nil, ErrNilData
	}
	if e == nil {
		return nil, ErrNilEnsemble
	}

	p := newPlot(e.String(), "t", "K(t)")
	logAxis(&p.X)
	logAxis(&p.Y)

	times, sff, csff := d.Times, d.SFF, d.CSFF
	if unfold {
		times, sff, csff = d.UnfTimes, d.UnfSFF, d.UnfCSFF
	}
	xs, ys := positivePairs(times, sff)
	if err := curve(p, xs, ys, "sff", histColor); err != nil {
		return nil, err
	}
	xs, ys = positivePairs(times, csff)
	if err := curve(p, xs, ys, "csff", altColor); err != nil {
		return nil, err
	}

	if unfold {
		var txs, tys []float64
		for _, t := range times {
			k := spectral.UnivCSFF(e, t)
			if t > 0 && k > 0 && !math.IsNaN(k) {
				txs = append(txs, t)
				tys = append(tys, k)
			}
		}
		if err := curve(p, txs, tys, "universal", theoryColor); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// positivePairs filters series down to the points a log-log plot can show.
func positivePairs(xs, ys []float64) ([]float64, []float64) {
	fx := make([]float64, 0, len(xs))
	fy := make([]float64, 0, len(ys))
	for i, x := range xs {
		if x > 0 && ys[i] > 0 {
			fx = append(fx, x)
			fy = append(fy, ys[i])
		}
	}
	return fx, fy
}

// DynamicsPlot draws the purities and normalized entropy of a
// chaotic-density-operator run over log time. The t = 0 point cannot sit
// on a log axis and is dropped.
func DynamicsPlot(d *dataset.CDODynamics) (*plot.Plot, error) {
	if d == nil {
		return nil, ErrNilData
	}

	p := newPlot("chaotic density operator", "t", "")
	logAxis(&p.X)

	maxEnt := math.Log(float64(d.Dim))
	series := []struct {
		name string
		vals []float64
		div  float64
	}{
		{"classical purity", d.ClassicalPurity, 1},
		{"quantum purity", d.QuantumPurity, 1},
		{"entropy / ln(dim)", d.Entropy, maxEnt},
	}
	colors := []color.Color{histColor, altColor, theoryColor}
	for si, s := range series {
		xys := make(plotter.XYs, 0, len(d.Times)-1)
		for i := 1; i < len(d.Times); i++ {
			xys = append(xys, plotter.XY{X: d.Times[i], Y: s.vals[i] / s.div})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = colors[si]
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	if d.ThoulessTime > 0 {
		marker, err := plotter.NewLine(plotter.XYs{
			{X: d.ThoulessTime, Y: 0}, {X: d.ThoulessTime, Y: 1},
		})
		if err != nil {
			return nil, err
		}
		marker.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		marker.Color = theoryColor
		p.Add(marker)
		p.Legend.Add("thouless time", marker)
	}
	return p, nil
}
