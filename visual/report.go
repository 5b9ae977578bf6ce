// SPDX-License-Identifier: MIT

package visual

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/katalvlaran/rmt/dataset"
)

// RunCharts collects the containers of a run into one interactive HTML
// page. Nil containers are skipped.
type RunCharts struct {
	Title       string
	Density     *dataset.SpectralDensity
	Spacings    *dataset.SpacingHistogram
	FormFactors *dataset.FormFactors
	Dynamics    *dataset.CDODynamics
}

// Render writes the page to w.
func (c *RunCharts) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = c.Title

	if c.Density != nil {
		page.AddCharts(histChart("spectral density", c.Density.Bins, c.Density.Hist))
		page.AddCharts(histChart("unfolded spectral density", c.Density.UnfBins, c.Density.UnfHist))
	}
	if c.Spacings != nil {
		page.AddCharts(histChart("spacing distribution", c.Spacings.Bins, c.Spacings.Hist))
		page.AddCharts(histChart("unfolded spacing distribution", c.Spacings.UnfBins, c.Spacings.UnfHist))
	}
	if c.FormFactors != nil {
		page.AddCharts(seriesChart("form factors", c.FormFactors.Times, map[string][]float64{
			"sff":  c.FormFactors.SFF,
			"csff": c.FormFactors.CSFF,
		}))
		page.AddCharts(seriesChart("unfolded form factors", c.FormFactors.UnfTimes, map[string][]float64{
			"sff":  c.FormFactors.UnfSFF,
			"csff": c.FormFactors.UnfCSFF,
		}))
	}
	if c.Dynamics != nil {
		page.AddCharts(seriesChart("chaotic density operator", c.Dynamics.Times, map[string][]float64{
			"classical purity": c.Dynamics.ClassicalPurity,
			"quantum purity":   c.Dynamics.QuantumPurity,
			"entropy":          c.Dynamics.Entropy,
			"kl divergence":    c.Dynamics.KLDiv,
		}))
		page.AddCharts(seriesChart("observable dynamics", c.Dynamics.Times, map[string][]float64{
			"expectation": c.Dynamics.ObsExpect,
			"variance":    c.Dynamics.ObsVar,
		}))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("visual: render page: %w", err)
	}
	return nil
}

// histChart draws one normalized histogram as a line over the bin centers.
func histChart(title string, edges, counts []float64) *charts.Line {
	centers := dataset.BinCenters(edges)
	return seriesChart(title, centers, map[string][]float64{"simulation": counts})
}

// seriesChart draws named series over a shared x grid.
func seriesChart(title string, xs []float64, series map[string][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
	)

	labels := make([]string, len(xs))
	for i, x := range xs {
		labels[i] = fmt.Sprintf("%.4g", x)
	}
	line.SetXAxis(labels)
	for _, name := range sortedNames(series) {
		vals := series[name]
		items := make([]opts.LineData, len(vals))
		for i, v := range vals {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(name, items)
	}
	return line
}

// sortedNames keeps the series order deterministic.
func sortedNames(series map[string][]float64) []string {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
