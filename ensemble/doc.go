// Package ensemble implements the random-matrix symmetry classes and their
// matrix generators.
//
// The ensemble package provides:
//
//   - Class — an explicit symmetry-class enum (Poisson, GOE, GUE, GSE,
//     BdG(C), BdG(D), SYK) carrying Dyson index, eigenvalue degeneracy and
//     stable display/directory/LaTeX labels. No name mangling, no global
//     registries: the class is data, not reflection.
//   - Ensemble — one composition-based value type for every class, created
//     by NewGOE/NewGUE/… (direct dimension), FromMajoranas (many-body
//     dimension 2^(N/2−1)) or NewSYK. Immutable after construction except
//     for the internal RNG state, which advances on each draw.
//   - Generate — one Hermitian realization per call, written into an
//     optional caller-provided buffer so realization loops reuse memory.
//     Each generator reproduces its class's entry correlations exactly:
//     per-row Gaussian fills, quaternionic GSE blocks, particle-hole BdG
//     blocks, Haar-conjugated Poisson spectra, sparse q-body SYK sums.
//   - Majorana operators — sparse Kronecker-recursion construction of the N
//     Majorana fermions, their pair products (cached per SYK ensemble) and
//     the q-body observable used by the dynamics driver.
//
// Structural parameters are validated at construction and never at
// generation time: an Ensemble that exists can always draw.
package ensemble
