// SPDX-License-Identifier: MIT

// Package visual renders the dataset containers into figures.
//
//   - 📊 DensityPlot / SpacingPlot — histogram steps with the theoretical
//     curve overlaid (semicircle, uniform or SYK density; Wigner surmise).
//   - 📈 FormFactorsPlot — log-log spectral form factors with the
//     universal connected curve on the unfolded axis.
//   - 🌀 DynamicsPlot — purities, entropy and observable moments of a
//     chaotic-density-operator run over log time.
//   - 🌐 RunCharts — an interactive HTML page of the same series.
//
// Static figures use gonum/plot and save through SavePNG; the HTML page
// uses go-echarts and renders to any io.Writer.
package visual
