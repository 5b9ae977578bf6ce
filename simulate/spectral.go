// SPDX-License-Identifier: MIT

package simulate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rmt/dataset"
	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/spectral"
)

// SpectralResult bundles the containers of one spectral-statistics run.
type SpectralResult struct {
	Density     *dataset.SpectralDensity
	Spacings    *dataset.SpacingHistogram
	FormFactors *dataset.FormFactors

	// ThoulessTime is the envelope-minimum estimate from the raw form
	// factor, 0 when no estimate was possible.
	ThoulessTime float64

	// RunDir is the directory archives were written to, empty when
	// persistence is disabled.
	RunDir string
}

// SpectralStatistics streams Realizs spectrum realizations of e and
// accumulates level-density histograms, nearest-neighbour spacing
// histograms and spectral form factor moments, each on a raw and an
// unfolded axis. Histograms are normalized to unit integral; moment sums
// are averaged over R and reduced to sff = μ₂ and csff = sff − |μ₁|².
func SpectralStatistics(e *ensemble.Ensemble, opts Options) (*SpectralResult, error) {
	if e == nil {
		return nil, ErrNilEnsemble
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	spec, err := spectral.NewSpectrum(e)
	if err != nil {
		return nil, err
	}
	spec.CDF(0) // build any numeric cumulative before the fan-out

	dim, e0 := e.Dim(), e.E0()
	res := &SpectralResult{}
	if res.Density, err = dataset.NewSpectralDensity(opts.NumBins, e0, float64(dim)/2); err != nil {
		return nil, err
	}
	if res.Spacings, err = dataset.NewSpacingHistogram(opts.NumBins, 2*e0/float64(dim)); err != nil {
		return nil, err
	}
	if res.FormFactors, err = dataset.NewFormFactors(opts.NumTimes, float64(dim), besselJ1Zero1/e0, 2*math.Pi); err != nil {
		return nil, err
	}

	workers, err := opts.effectiveWorkers(spectralWorkerBytes(dim, opts.NumTimes))
	if err != nil {
		return nil, err
	}
	if res.RunDir, err = runDir(opts.OutDir, simSpectralStatistics, e, opts.Realizs); err != nil {
		return nil, err
	}

	log := opts.Log.WithFields(logrus.Fields{
		"simulation": simSpectralStatistics,
		"ensemble":   e.String(),
		"realizs":    opts.Realizs,
		"workers":    workers,
	})
	log.Info("spectral statistics started")

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(context.Background())
	for i, count := range partition(opts.Realizs, workers) {
		clone := e.Clone(uint64(i) + 1)
		n := count
		g.Go(func() error {
			return spectralWorker(ctx, clone, spec, n, res, &mu)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("SpectralStatistics: %w", err)
	}

	dataset.NormalizeHistogram(res.Density.Hist, res.Density.Bins)
	dataset.NormalizeHistogram(res.Density.UnfHist, res.Density.UnfBins)
	dataset.NormalizeHistogram(res.Spacings.Hist, res.Spacings.Bins)
	dataset.NormalizeHistogram(res.Spacings.UnfHist, res.Spacings.UnfBins)
	res.FormFactors.Finalize(opts.Realizs)

	if t, err := spectral.ThoulessTime(res.FormFactors.Times, res.FormFactors.SFF); err == nil {
		res.ThoulessTime = t
	} else if !errors.Is(err, spectral.ErrNoPeaks) {
		log.WithError(err).Warn("thouless estimate failed")
	}

	if res.RunDir != "" {
		if err := persistSpectral(res, e, opts); err != nil {
			return nil, err
		}
		log.WithField("dir", res.RunDir).Info("archives written")
	}
	log.Info("spectral statistics finished")
	return res, nil
}

// spectralWorker accumulates count realizations into local buffers and
// merges them into res under mu.
func spectralWorker(ctx context.Context, e *ensemble.Ensemble, spec *spectral.Spectrum, count int, res *SpectralResult, mu *sync.Mutex) error {
	smp, err := spectral.NewSampler(e)
	if err != nil {
		return err
	}

	bins := len(res.Density.Hist)
	times := len(res.FormFactors.Times)
	hist := make([]float64, bins)
	unfHist := make([]float64, bins)
	spacHist := make([]float64, bins)
	unfSpacHist := make([]float64, bins)
	mu1 := make([]complex128, times)
	mu2 := make([]float64, times)
	unfMu1 := make([]complex128, times)
	unfMu2 := make([]float64, times)

	degen := e.Degeneracy()
	var unfolded, spacings []float64

	for r := 0; r < count; r++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		vals, err := smp.NextEigvals()
		if err != nil {
			return err
		}

		dataset.Histogram(hist, res.Density.Bins, vals)
		spacings = spacingSamples(vals, degen, spacings)
		dataset.Histogram(spacHist, res.Spacings.Bins, spacings)
		formFactorMoments(mu1, mu2, vals, res.FormFactors.Times)

		if unfolded, err = spec.Unfold(unfolded, vals); err != nil {
			return err
		}
		dataset.Histogram(unfHist, res.Density.UnfBins, unfolded)
		spacings = spacingSamples(unfolded, degen, spacings)
		dataset.Histogram(unfSpacHist, res.Spacings.UnfBins, spacings)
		formFactorMoments(unfMu1, unfMu2, unfolded, res.FormFactors.UnfTimes)
	}

	mu.Lock()
	defer mu.Unlock()
	addF64(res.Density.Hist, hist)
	addF64(res.Density.UnfHist, unfHist)
	addF64(res.Spacings.Hist, spacHist)
	addF64(res.Spacings.UnfHist, unfSpacHist)
	addC128(res.FormFactors.Mu1, mu1)
	addF64(res.FormFactors.Mu2, mu2)
	addC128(res.FormFactors.UnfMu1, unfMu1)
	addF64(res.FormFactors.UnfMu2, unfMu2)
	return nil
}

// formFactorMoments accumulates μ₁(t) += Σ_k e^{−iE_k t}/dim and
// μ₂(t) += |Σ_k e^{−iE_k t}/dim|².
func formFactorMoments(mu1 []complex128, mu2 []float64, levels, times []float64) {
	inv := 1 / float64(len(levels))
	for ti, t := range times {
		var re, im float64
		for _, e := range levels {
			s, c := math.Sincos(e * t)
			re += c
			im -= s
		}
		re *= inv
		im *= inv
		mu1[ti] += complex(re, im)
		mu2[ti] += re*re + im*im
	}
}

// spacingSamples writes the nearest-neighbour spacings of a sorted spectrum
// into dst. Kramers-degenerate spectra keep every degen-th spacing starting
// at index 1 (the inter-doublet gaps) and weight each one degen times.
func spacingSamples(levels []float64, degen int, dst []float64) []float64 {
	dst = dst[:0]
	if degen <= 1 {
		for i := 1; i < len(levels); i++ {
			dst = append(dst, levels[i]-levels[i-1])
		}
		return dst
	}
	for i := degen; i < len(levels); i += degen {
		s := levels[i] - levels[i-1]
		for k := 0; k < degen; k++ {
			dst = append(dst, s)
		}
	}
	return dst
}

// spectralWorkerBytes estimates one worker's footprint: the dim×dim complex
// scratch, the 2dim×2dim real embedding with solver workspace, and the
// moment accumulators.
func spectralWorkerBytes(dim, numTimes int) uint64 {
	d := uint64(dim)
	matrix := 16 * d * d
	embed := 8 * (2 * d) * (2 * d) * 2
	grids := uint64(numTimes) * (16 + 8) * 2
	return matrix + embed + grids
}

func persistSpectral(res *SpectralResult, e *ensemble.Ensemble, opts Options) error {
	spec := e.Spec()
	args := map[string]string{
		"realizs": strconv.Itoa(opts.Realizs),
	}
	saves := []struct {
		file string
		ds   dataset.Dataset
	}{
		{"spectrum.zip", res.Density},
		{"spacings.zip", res.Spacings},
		{"form_factors.zip", res.FormFactors},
	}
	for _, s := range saves {
		if err := dataset.Save(filepath.Join(res.RunDir, s.file), s.ds, &spec, args); err != nil {
			return err
		}
	}
	return nil
}

// addF64 adds src into dst elementwise.
func addF64(dst, src []float64) {
	for i, v := range src {
		dst[i] += v
	}
}

func addC128(dst, src []complex128) {
	for i, v := range src {
		dst[i] += v
	}
}
