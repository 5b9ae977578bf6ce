// SPDX-License-Identifier: MIT

package visual

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Figure dimensions in inches.
const (
	figWidth  = 6
	figHeight = 4
)

// Figure colors, matching the simulation/theory palette of the reference
// figures.
var (
	histColor   = color.RGBA{R: 65, G: 105, B: 225, A: 128} // royal blue
	theoryColor = color.RGBA{A: 255}
	altColor    = color.RGBA{R: 220, G: 20, B: 60, A: 255} // crimson
)

// newPlot builds a titled plot with labeled axes.
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	return p
}

// logAxis switches an axis to log scale with log ticks.
func logAxis(a *plot.Axis) {
	a.Scale = plot.LogScale{}
	a.Tick.Marker = plot.LogTicks{Prec: -1}
}

// histSteps converts a precomputed histogram into the step outline of its
// bars.
func histSteps(edges, counts []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, 2*len(counts)+2)
	xys = append(xys, plotter.XY{X: edges[0], Y: 0})
	for i, c := range counts {
		xys = append(xys,
			plotter.XY{X: edges[i], Y: c},
			plotter.XY{X: edges[i+1], Y: c})
	}
	xys = append(xys, plotter.XY{X: edges[len(edges)-1], Y: 0})
	return xys
}

// histLine adds a histogram outline to p under the given legend name.
func histLine(p *plot.Plot, edges, counts []float64, name string) error {
	line, err := plotter.NewLine(histSteps(edges, counts))
	if err != nil {
		return fmt.Errorf("visual: histogram line: %w", err)
	}
	line.Color = histColor
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

// curve adds a sampled theory curve to p.
func curve(p *plot.Plot, xs, ys []float64, name string, c color.Color) error {
	xys := make(plotter.XYs, 0, len(xs))
	for i, x := range xs {
		xys = append(xys, plotter.XY{X: x, Y: ys[i]})
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("visual: curve %s: %w", name, err)
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

// SavePNG writes the plot to path at the standard figure size.
func SavePNG(p *plot.Plot, path string) error {
	if err := p.Save(figWidth*vg.Inch, figHeight*vg.Inch, path); err != nil {
		return fmt.Errorf("visual: save %s: %w", path, err)
	}
	return nil
}
