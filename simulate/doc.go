// SPDX-License-Identifier: MIT

// Package simulate runs the Monte Carlo drivers over random-matrix
// ensembles.
//
//   - 🎲 SpectralStatistics — streams spectrum realizations and accumulates
//     level-density histograms, nearest-neighbour spacing histograms and
//     spectral form factors, raw and unfolded.
//   - 🌀 CDOEvolve — evolves an initial state under every realization and
//     derives the chaotic density operator's populations, purities, entropy
//     and observable dynamics.
//
// Realizations are partitioned across workers; every worker draws from its
// own RNG stream of the shared seed, so a run is reproducible for a fixed
// seed and worker count. The effective worker count is clamped to the
// physical CPU count and to the memory budget divided by the per-worker
// footprint. Results land in typed dataset containers and,
// when an output directory is configured, in archives under
// <out>/<simulation>/<ensemble>/realizs_<R>/<timestamp>-<id>/.
package simulate
