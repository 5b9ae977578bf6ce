// SPDX-License-Identifier: MIT

package dataset

import (
	"math"
	"testing"
)

func TestBinEdges(t *testing.T) {
	edges := BinEdges(-1, 1, 4)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	if len(edges) != len(want) {
		t.Fatalf("got %d edges, want %d", len(edges), len(want))
	}
	for i := range want {
		if math.Abs(edges[i]-want[i]) > 1e-15 {
			t.Errorf("edge[%d] = %g, want %g", i, edges[i], want[i])
		}
	}
}

func TestBinCenters(t *testing.T) {
	centers := BinCenters([]float64{0, 1, 2, 4})
	want := []float64{0.5, 1.5, 3}
	for i := range want {
		if centers[i] != want[i] {
			t.Errorf("center[%d] = %g, want %g", i, centers[i], want[i])
		}
	}
}

func TestLogSpace(t *testing.T) {
	ts := LogSpace(-1, 1, 3, 10)
	want := []float64{0.1, 1, 10}
	for i := range want {
		if math.Abs(ts[i]-want[i]) > 1e-12 {
			t.Errorf("LogSpace[%d] = %g, want %g", i, ts[i], want[i])
		}
	}
	// non-decimal base
	ts = LogSpace(0.5, 2, 2, 64)
	if math.Abs(ts[0]-8) > 1e-12 || math.Abs(ts[1]-4096) > 1e-9 {
		t.Errorf("base-64 LogSpace = %v, want [8 4096]", ts)
	}
}

func TestHistogram(t *testing.T) {
	edges := BinEdges(0, 4, 4)
	counts := make([]float64, 4)
	Histogram(counts, edges, []float64{-0.5, 0, 0.5, 1.5, 2.5, 3.5, 4, 4.5})
	want := []float64{2, 1, 1, 2} // top edge lands in the last bin, outliers dropped
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %g, want %g", i, counts[i], want[i])
		}
	}
}

func TestNormalizeHistogram(t *testing.T) {
	edges := BinEdges(0, 2, 4)
	counts := []float64{1, 3, 4, 2}
	NormalizeHistogram(counts, edges)
	var total float64
	for i, c := range counts {
		total += c * (edges[i+1] - edges[i])
	}
	if math.Abs(total-1) > 1e-14 {
		t.Errorf("normalized integral = %g, want 1", total)
	}

	zeros := []float64{0, 0}
	NormalizeHistogram(zeros, BinEdges(0, 1, 2))
	if zeros[0] != 0 || zeros[1] != 0 {
		t.Error("all-zero histogram must stay zero")
	}
}
