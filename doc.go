// Package rmt is a Monte Carlo laboratory for random-matrix-theory
// ensembles — from single-matrix symmetry classes to many-body SYK
// Hamiltonians, spectral statistics and chaotic-state dynamics.
//
// 🚀 What is rmt?
//
//	A simulation library that brings together:
//		• Ensembles: GOE, GUE, GSE, BdG(C), BdG(D), Poisson and SYK generators
//		• Kernels: Hermitian eigensolver, Haar-random unitaries (complex QR)
//		• Spectral toolkit: semicircle/uniform/SYK densities, unfolding,
//		  Wigner surmise, universal connected spectral form factor
//		• Drivers: streaming spectral statistics & chaotic-density-operator
//		  evolution under bounded memory, with parallel workers
//		• Datasets: typed accumulators with crash-safe archive round-trips
//		• Plots: PNG charts and an HTML run report
//
// ✨ Why choose rmt?
//
//   - Streaming accumulation – billions of levels, O(dim²) memory
//   - Exact symmetry statistics – generators reproduce each class's
//     correlation pattern entry by entry
//   - Reproducible – explicit seeds, deterministic worker splits
//   - Extensible – capability-style Class enum, explicit dataset registry
//
// Under the hood, everything is organized under six subpackages:
//
//	linalg/   — Hermitian eigendecomposition & Haar unitaries on gonum buffers
//	ensemble/ — symmetry classes, matrix generators, Majorana operators
//	spectral/ — analytic densities, unfolding, surmise, form factors, sampling
//	dataset/  — accumulator containers + compressed archive round-trips
//	simulate/ — Monte Carlo drivers (spectral statistics, CDO evolution)
//	visual/   — gonum/plot PNGs and go-echarts HTML reports
//
// Quick sketch of a run:
//
//	ens, _ := ensemble.NewGOE(50, ensemble.WithSeed(7))
//	res, _ := simulate.SpectralStatistics(ens, simulate.DefaultOptions())
//
// which draws realizations, diagonalizes them on the fly and leaves a
// normalized spectral histogram, spacing histogram and form factors in res.
//
//	go get github.com/katalvlaran/rmt
package rmt
