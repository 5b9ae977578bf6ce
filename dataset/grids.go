// SPDX-License-Identifier: MIT

package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BinEdges returns numBins+1 evenly spaced edges over [lo, hi].
func BinEdges(lo, hi float64, numBins int) []float64 {
	edges := make([]float64, numBins+1)
	floats.Span(edges, lo, hi)
	return edges
}

// BinCenters returns the midpoints of consecutive edges.
func BinCenters(edges []float64) []float64 {
	centers := make([]float64, len(edges)-1)
	for i := range centers {
		centers[i] = 0.5 * (edges[i] + edges[i+1])
	}
	return centers
}

// LogSpace returns n points base^e with exponents evenly spaced over
// [expLo, expHi].
func LogSpace(expLo, expHi float64, n int, base float64) []float64 {
	exps := make([]float64, n)
	floats.Span(exps, expLo, expHi)
	lb := math.Log(base)
	for i, e := range exps {
		exps[i] = math.Exp(e * lb)
	}
	return exps
}

// Histogram accumulates values into counts over the given edges. Values
// outside [edges[0], edges[len-1]] are dropped; the top edge lands in the
// last bin. Edges must be evenly spaced ascending, counts must hold
// len(edges)-1 entries.
func Histogram(counts []float64, edges, values []float64) {
	lo, hi := edges[0], edges[len(edges)-1]
	width := (hi - lo) / float64(len(edges)-1)
	for _, v := range values {
		if v < lo || v > hi {
			continue
		}
		i := int((v - lo) / width)
		if i >= len(counts) {
			i = len(counts) - 1
		}
		counts[i]++
	}
}

// NormalizeHistogram rescales counts in place to unit integral over the
// bin widths. All-zero counts are left unchanged.
func NormalizeHistogram(counts, edges []float64) {
	var total float64
	for i, c := range counts {
		total += c * (edges[i+1] - edges[i])
	}
	if total == 0 {
		return
	}
	for i := range counts {
		counts[i] /= total
	}
}
