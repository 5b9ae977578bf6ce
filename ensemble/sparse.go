// SPDX-License-Identifier: MIT

// Package ensemble: minimal complex CSR kernel for Majorana operators.
// gonum has no complex sparse type; the three operations the Kronecker
// recursion needs (kron, multiply, scatter) are implemented here directly.

package ensemble

import "sort"

// csrMatrix is a compressed-sparse-row complex matrix. Column indices are
// strictly ascending within each row.
type csrMatrix struct {
	rows, cols int
	rowPtr     []int // len rows+1
	colIdx     []int
	vals       []complex128
}

// nnz returns the number of stored entries.
func (m *csrMatrix) nnz() int { return len(m.vals) }

// kronCSR returns the Kronecker product a ⊗ b: blocks a[i,j]·b.
// Iterating a-entries outer and b-entries inner keeps columns sorted.
func kronCSR(a, b *csrMatrix) *csrMatrix {
	out := &csrMatrix{
		rows:   a.rows * b.rows,
		cols:   a.cols * b.cols,
		rowPtr: make([]int, a.rows*b.rows+1),
		colIdx: make([]int, 0, a.nnz()*b.nnz()),
		vals:   make([]complex128, 0, a.nnz()*b.nnz()),
	}
	for ia := 0; ia < a.rows; ia++ {
		for ib := 0; ib < b.rows; ib++ {
			for pa := a.rowPtr[ia]; pa < a.rowPtr[ia+1]; pa++ {
				for pb := b.rowPtr[ib]; pb < b.rowPtr[ib+1]; pb++ {
					out.colIdx = append(out.colIdx, a.colIdx[pa]*b.cols+b.colIdx[pb])
					out.vals = append(out.vals, a.vals[pa]*b.vals[pb])
				}
			}
			out.rowPtr[ia*b.rows+ib+1] = len(out.vals)
		}
	}
	return out
}

// mulCSR returns the product a·b using a dense per-row accumulator.
func mulCSR(a, b *csrMatrix) *csrMatrix {
	out := &csrMatrix{rows: a.rows, cols: b.cols, rowPtr: make([]int, a.rows+1)}
	acc := make([]complex128, b.cols)
	touched := make([]int, 0, b.cols)
	seen := make([]bool, b.cols)

	for i := 0; i < a.rows; i++ {
		touched = touched[:0]
		for pa := a.rowPtr[i]; pa < a.rowPtr[i+1]; pa++ {
			k := a.colIdx[pa]
			va := a.vals[pa]
			for pb := b.rowPtr[k]; pb < b.rowPtr[k+1]; pb++ {
				j := b.colIdx[pb]
				if !seen[j] {
					seen[j] = true
					touched = append(touched, j)
				}
				acc[j] += va * b.vals[pb]
			}
		}
		sort.Ints(touched)
		for _, j := range touched {
			if acc[j] != 0 {
				out.colIdx = append(out.colIdx, j)
				out.vals = append(out.vals, acc[j])
			}
			acc[j] = 0
			seen[j] = false
		}
		out.rowPtr[i+1] = len(out.vals)
	}
	return out
}

// identityCSR returns the n×n identity.
func identityCSR(n int) *csrMatrix {
	m := &csrMatrix{rows: n, cols: n, rowPtr: make([]int, n+1), colIdx: make([]int, n), vals: make([]complex128, n)}
	for i := 0; i < n; i++ {
		m.rowPtr[i+1] = i + 1
		m.colIdx[i] = i
		m.vals[i] = 1
	}
	return m
}
