// Package linalg provides the dense complex kernels the rmt module is built
// on: Hermitian eigendecomposition and Haar-random unitary matrices.
//
// The linalg package provides:
//
//   - EigvalsHermitian / EigHermitian — spectra (and eigenbases) of complex
//     Hermitian matrices, computed through the real symmetric embedding
//     [[A, −B], [B, A]] of H = A + iB and gonum's symmetric eigensolver.
//   - HaarUnitary — Haar-distributed random unitaries from the QR
//     decomposition of a complex Ginibre matrix (Householder reflections
//     with the R-diagonal phase fix).
//   - IsHermitian — tolerance-based Hermiticity check used by callers
//     and tests.
//
// gonum carries no complex Hermitian eigensolver, complex QR, or complex
// sparse types, so these kernels are implemented here against gonum's
// CDense/SymDense buffers. All functions perform strict fail-fast validation
// and return sentinel errors on shape violations.
package linalg
