// SPDX-License-Identifier: MIT

package ensemble

import "gonum.org/v1/gonum/mat"

// fillSYK — Sachdev–Ye–Kitaev draw.
//
//	H = i^(q(q−1)/2) · Σ J_{j1..jq} ψ_{j1}···ψ_{jq},  J ~ N(0, σ²),
//
// one independent Gaussian coupling per ascending q-tuple of Majorana
// indices. The pair products ψ_jψ_k are built once per ensemble and cached;
// each term is their chain, restricted to the 2^(N/2−1) parity sector that
// dst spans. The phase prefactor makes every term Hermitian.
func (e *Ensemble) fillSYK(dst *mat.CDense) {
	pairs := e.cache.get(e.n)

	raw := dst.RawCMatrix()
	st := raw.Stride
	phase := iPower(e.q * (e.q - 1) / 2)

	combinations(e.n, e.q, func(idx []int) {
		coeff := phase * complex(e.rng.NormFloat64()*e.sigma, 0)
		op := qBody(pairs, idx)
		for i := 0; i < e.dim; i++ {
			for p := op.rowPtr[i]; p < op.rowPtr[i+1]; p++ {
				if j := op.colIdx[p]; j < e.dim {
					raw.Data[i*st+j] += coeff * op.vals[p]
				}
			}
		}
	})
}
