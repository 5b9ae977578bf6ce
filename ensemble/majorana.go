// SPDX-License-Identifier: MIT

package ensemble

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Pauli matrices as 2×2 sparse blocks; the seeds of the Majorana recursion.
func pauliX() *csrMatrix {
	return &csrMatrix{rows: 2, cols: 2, rowPtr: []int{0, 1, 2}, colIdx: []int{1, 0}, vals: []complex128{1, 1}}
}

func pauliY() *csrMatrix {
	return &csrMatrix{rows: 2, cols: 2, rowPtr: []int{0, 1, 2}, colIdx: []int{1, 0}, vals: []complex128{complex(0, -1), complex(0, 1)}}
}

func pauliZ() *csrMatrix {
	return &csrMatrix{rows: 2, cols: 2, rowPtr: []int{0, 1, 2}, colIdx: []int{0, 1}, vals: []complex128{1, -1}}
}

// majoranas builds the N Majorana operators ψ_1..ψ_N on the full 2^(N/2)
// Hilbert space by Kronecker recursion: at each doubling the previous
// operators are promoted with σx, two new operators σx⊗chain and σy⊗1
// are appended, and the Jordan–Wigner chain grows by σz⊗1. The operators
// satisfy {ψ_j, ψ_k} = 2δ_jk. N must be even and greater than 2.
func majoranas(n int) []*csrMatrix {
	px, py, pz := pauliX(), pauliY(), pauliZ()
	maj := []*csrMatrix{px, py}
	chain := pz
	for i := 0; i < n/2-1; i++ {
		eye := identityCSR(1 << (i + 1))
		next := make([]*csrMatrix, len(maj)+2)
		for j := range maj {
			next[j] = kronCSR(px, maj[j])
		}
		next[len(next)-2] = kronCSR(px, chain)
		next[len(next)-1] = kronCSR(py, eye)
		maj = next
		chain = kronCSR(pz, eye)
	}
	return maj
}

// majoranaPairs caches the upper-triangle products ψ_j·ψ_k for j < k; every
// even-body interaction term is a chain of these.
func majoranaPairs(n int) [][]*csrMatrix {
	m := majoranas(n)
	pairs := make([][]*csrMatrix, n)
	for j := range pairs {
		pairs[j] = make([]*csrMatrix, n)
	}
	for j := 0; j < n; j++ {
		for k := j + 1; k < n; k++ {
			pairs[j][k] = mulCSR(m[j], m[k])
		}
	}
	return pairs
}

// qBody multiplies the q/2 pair products selected by the ascending index
// tuple idx (len q) into one interaction term.
func qBody(pairs [][]*csrMatrix, idx []int) *csrMatrix {
	op := pairs[idx[0]][idx[1]]
	for k := 2; k < len(idx); k += 2 {
		op = mulCSR(op, pairs[idx[k]][idx[k+1]])
	}
	return op
}

// combinations visits every ascending k-tuple from {0..n−1} in lexicographic
// order. The slice passed to fn is reused between calls.
func combinations(n, k int, fn func(idx []int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for p := i + 1; p < k; p++ {
			idx[p] = idx[p-1] + 1
		}
	}
}

// binomial returns C(n, k) as a float64, exact for every count this package
// can reach.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}

// sykEta returns the combinatorial suppression factor of the SYK bandwidth,
//
//	η = Σ_k (−1)^(q−k) C(q,k)·C(N−q, q−k) / C(N,q),
//
// the normalized anticommutator overlap of two random q-body terms.
func sykEta(n, q int) float64 {
	var s float64
	sign := 1.0
	if q%2 != 0 {
		sign = -1
	}
	for k := 0; k <= q; k++ {
		s += sign * binomial(q, k) * binomial(n-q, q-k)
		sign = -sign
	}
	return s / binomial(n, q)
}

// iPower returns i^m.
func iPower(m int) complex128 {
	switch ((m % 4) + 4) % 4 {
	case 0:
		return 1
	case 1:
		return complex(0, 1)
	case 2:
		return -1
	default:
		return complex(0, -1)
	}
}

// Observable builds the normalized sum of all q-body Majorana terms on the
// dim = 2^(N/2−1) sector,
//
//	A = i^(q(q−1)/2) · √(N/C(N,q))/ln 2 · Σ ψ_{j1}···ψ_{jq},
//
// the Hermitian probe operator whose top eigenvector seeds chaotic
// density-operator evolution. N must be even and greater than q; q must be
// positive and even.
func Observable(n, q int) (*mat.CDense, error) {
	if q <= 0 || q%2 != 0 {
		return nil, fmt.Errorf("Observable: %w", ErrBadQ)
	}
	if n <= 2 || n%2 != 0 {
		return nil, fmt.Errorf("Observable: %w", ErrBadMajoranaCount)
	}
	if n <= q {
		return nil, fmt.Errorf("Observable: %w", ErrQTooLarge)
	}

	dim := 1 << (n/2 - 1)
	obs := mat.NewCDense(dim, dim, nil)
	raw := obs.RawCMatrix()
	st := raw.Stride

	pairs := majoranaPairs(n)
	combinations(n, q, func(idx []int) {
		op := qBody(pairs, idx)
		for i := 0; i < dim; i++ {
			for p := op.rowPtr[i]; p < op.rowPtr[i+1]; p++ {
				if j := op.colIdx[p]; j < dim {
					raw.Data[i*st+j] += op.vals[p]
				}
			}
		}
	})

	scale := iPower(q*(q-1)/2) * complex(math.Sqrt(float64(n)/binomial(n, q))/math.Ln2, 0)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			raw.Data[i*st+j] *= scale
		}
	}
	return obs, nil
}
