// SPDX-License-Identifier: MIT

// Package spectral provides the analytic statistics of random-matrix
// ensembles and a buffer-reusing realization stream.
//
// What it offers:
//
//   - 📈 Spectrum — cached density/cumulative functions per ensemble:
//     Wigner semicircle (Gaussian classes), uniform (Poisson) and the SYK
//     product formula, with a numeric cumulative fallback where no closed
//     form exists, plus Unfold for mapping spectra to unit mean spacing.
//   - 📏 WignerSurmise — nearest-neighbour spacing density per Dyson index,
//     with Kramers-degeneracy rescaling.
//   - 🌊 UnivCSFF — universal connected spectral form factor per
//     universality class.
//   - ⏱️ ThoulessTime — envelope-minimum estimate over form-factor peaks.
//   - ♻️ Sampler — streams eigenvalue/eigensystem realizations while
//     holding memory at one dim×dim scratch matrix, with Poisson fast paths.
//
// All functions are pure; Sampler advances its ensemble's RNG and is not
// safe for concurrent use (clone the ensemble per goroutine instead).
package spectral
