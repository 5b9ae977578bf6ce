// SPDX-License-Identifier: MIT

// Package dataset defines the typed result containers of Monte Carlo runs
// and their archive format.
//
// Containers:
//
//   - 📊 SpectralDensity — raw and unfolded level-density histograms.
//   - 📏 SpacingHistogram — nearest-neighbour spacing histograms.
//   - 🌊 FormFactors — spectral form factor moments on log time grids.
//   - 🌀 CDODynamics — chaotic-density-operator observables over time.
//   - 🗂️ EvolvedStates — per-realization evolved state vectors.
//
// Every container fixes its array shapes at construction and re-checks them
// with Validate. Archives are zip files holding a metadata.json document
// plus one raw little-endian entry per array (.f64 for float64, .c128 for
// complex128); Save writes a temporary file, syncs it to disk and renames,
// so a crash never leaves a torn archive. Load dispatches through an
// explicit registry keyed by stable dataset names.
package dataset
