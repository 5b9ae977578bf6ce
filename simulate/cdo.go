// SPDX-License-Identifier: MIT

package simulate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmt/dataset"
	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/linalg"
	"github.com/katalvlaran/rmt/spectral"
)

// DefaultObsQ is the observable q-parameter when none is given.
const DefaultObsQ = 2

// probFloor filters density-operator eigenvalues and populations before
// logarithms.
const probFloor = 1e-10

// CDOOptions configures a chaotic-density-operator run on top of the
// common Options.
type CDOOptions struct {
	// ObsQ is the q-parameter of the probe observable (default 2).
	ObsQ int

	// Unfold evolves on the unfolded energy axis (times scaled by 2π)
	// instead of the physical one.
	Unfold bool

	// KeepStates retains and archives every evolved state vector.
	KeepStates bool

	// FormFactors optionally supplies a finished form-factor container of
	// the same ensemble; when set, the Thouless time is estimated from it.
	FormFactors *dataset.FormFactors
}

// CDOResult bundles the containers of one evolution run.
type CDOResult struct {
	Dynamics *dataset.CDODynamics
	States   *dataset.EvolvedStates // nil unless KeepStates
	RunDir   string
}

// CDOEvolve prepares the top eigenvector of the q-body probe observable as
// the initial state, evolves it under Realizs realizations of e across a
// log time grid, and averages the projectors into the chaotic density
// operator ρ(t) = Σ_r |ψ_r(t)⟩⟨ψ_r(t)|/R. Populations, classical and
// quantum purity, von Neumann entropy, divergence from the maximally mixed
// state and observable moments are derived per time.
//
// Only many-body (Majorana-built) ensembles qualify: the observable needs
// the fermion count.
func CDOEvolve(e *ensemble.Ensemble, opts Options, copts CDOOptions) (*CDOResult, error) {
	if e == nil {
		return nil, ErrNilEnsemble
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if e.N() == 0 {
		return nil, ErrNotManyBody
	}
	if copts.ObsQ == 0 {
		copts.ObsQ = DefaultObsQ
	}

	dim := e.Dim()
	times, err := cdoTimes(e, opts.NumTimes, copts.Unfold)
	if err != nil {
		return nil, err
	}
	res := &CDOResult{}
	if res.Dynamics, err = dataset.NewCDODynamicsWithTimes(times, dim); err != nil {
		return nil, err
	}

	obs, err := ensemble.Observable(e.N(), copts.ObsQ)
	if err != nil {
		return nil, fmt.Errorf("CDOEvolve: %w", err)
	}
	psi0, err := topEigvec(obs)
	if err != nil {
		return nil, fmt.Errorf("CDOEvolve: %w", err)
	}

	spec, err := spectral.NewSpectrum(e)
	if err != nil {
		return nil, err
	}
	if copts.Unfold {
		spec.CDF(0)
	}

	states, err := dataset.NewEvolvedStates(opts.Realizs, len(times), dim)
	if err != nil {
		return nil, err
	}

	workers, err := opts.effectiveWorkers(cdoWorkerBytes(dim, opts.Realizs, len(times)))
	if err != nil {
		return nil, err
	}
	if res.RunDir, err = runDir(opts.OutDir, simCDOEvolve, e, opts.Realizs); err != nil {
		return nil, err
	}

	log := opts.Log.WithFields(logrus.Fields{
		"simulation": simCDOEvolve,
		"ensemble":   e.String(),
		"realizs":    opts.Realizs,
		"workers":    workers,
		"obs_q":      copts.ObsQ,
		"unfold":     copts.Unfold,
	})
	log.Info("cdo evolution started")

	g, ctx := errgroup.WithContext(context.Background())
	start := 0
	for i, count := range partition(opts.Realizs, workers) {
		clone := e.Clone(uint64(i) + 1)
		lo, hi := start, start+count
		start = hi
		g.Go(func() error {
			return evolveWorker(ctx, clone, spec, copts.Unfold, psi0, times, states, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("CDOEvolve: %w", err)
	}

	if err := cdoStatistics(res.Dynamics, states, obs); err != nil {
		return nil, fmt.Errorf("CDOEvolve: %w", err)
	}
	if copts.FormFactors != nil {
		t, err := spectral.ThoulessTime(copts.FormFactors.Times, copts.FormFactors.SFF)
		if err == nil {
			res.Dynamics.ThoulessTime = t
		} else if !errors.Is(err, spectral.ErrNoPeaks) {
			log.WithError(err).Warn("thouless estimate failed")
		}
	}
	if copts.KeepStates {
		res.States = states
	}

	if res.RunDir != "" {
		if err := persistCDO(res, e, opts, copts); err != nil {
			return nil, err
		}
		log.WithField("dir", res.RunDir).Info("archives written")
	}
	log.Info("cdo evolution finished")
	return res, nil
}

// cdoTimes builds the evolution grid: t = 0 followed by numTimes−1
// log-spaced times with base dim, scaled by j₁,₁/E0 (physical axis) or 2π
// (unfolded axis).
func cdoTimes(e *ensemble.Ensemble, numTimes int, unfold bool) ([]float64, error) {
	if numTimes <= 1 {
		return nil, dataset.ErrBadGrid
	}
	var grid []float64
	var scale float64
	if unfold {
		grid = dataset.LogSpace(dataset.UnfLogTimeLo, dataset.UnfLogTimeHi, numTimes-1, float64(e.Dim()))
		scale = 2 * math.Pi
	} else {
		grid = dataset.LogSpace(dataset.CDOLogTimeLo, dataset.CDOLogTimeHi, numTimes-1, float64(e.Dim()))
		scale = besselJ1Zero1 / e.E0()
	}
	times := make([]float64, numTimes)
	for i, t := range grid {
		times[i+1] = t * scale
	}
	return times, nil
}

// topEigvec returns the eigenvector of the largest eigenvalue.
func topEigvec(h *mat.CDense) ([]complex128, error) {
	_, vecs, err := linalg.EigHermitian(h)
	if err != nil {
		return nil, err
	}
	n, _ := vecs.Dims()
	psi := make([]complex128, n)
	for i := 0; i < n; i++ {
		psi[i] = vecs.At(i, n-1)
	}
	return psi, nil
}

// evolveWorker fills states rows lo..hi-1. Each realization is rotated into
// its eigenbasis once; evolution is then a phase multiply per time.
func evolveWorker(ctx context.Context, e *ensemble.Ensemble, spec *spectral.Spectrum, unfold bool, psi0 []complex128, times []float64, states *dataset.EvolvedStates, lo, hi int) error {
	smp, err := spectral.NewSampler(e)
	if err != nil {
		return err
	}

	dim := e.Dim()
	rotated := make([]complex128, dim)
	phased := make([]complex128, dim)
	var unfolded []float64

	for r := lo; r < hi; r++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		vals, vecs, err := smp.Next()
		if err != nil {
			return err
		}
		if unfold {
			if unfolded, err = spec.Unfold(unfolded, vals); err != nil {
				return err
			}
			vals = unfolded
		}

		matVecAdjoint(vecs, psi0, rotated)
		for ti, t := range times {
			for k, ev := range vals {
				s, c := math.Sincos(ev * t)
				phased[k] = complex(c, -s) * rotated[k]
			}
			matVec(vecs, phased, states.At(r, ti))
		}
	}
	return nil
}

// cdoStatistics reduces the evolved states into the dynamics container.
func cdoStatistics(dyn *dataset.CDODynamics, states *dataset.EvolvedStates, obs *mat.CDense) error {
	dim := states.Dim
	realizs := float64(states.Realizs)
	obs2 := matMul(obs, obs)

	rho := mat.NewCDense(dim, dim, nil)
	raw := rho.RawCMatrix()

	for t := range dyn.Times {
		// ρ(t) as the realization average of the evolved projectors
		for i := range raw.Data {
			raw.Data[i] = 0
		}
		var expect, second float64
		for r := 0; r < states.Realizs; r++ {
			psi := states.At(r, t)
			for i := 0; i < dim; i++ {
				row := raw.Data[i*raw.Stride:]
				pi := psi[i]
				for j := 0; j < dim; j++ {
					row[j] += pi * cmplx.Conj(psi[j])
				}
			}
			expect += quadForm(obs, psi)
			second += quadForm(obs2, psi)
		}
		for i := range raw.Data {
			raw.Data[i] /= complex(realizs, 0)
		}
		expect /= realizs
		second /= realizs
		dyn.ObsExpect[t] = expect
		dyn.ObsVar[t] = second - expect*expect

		probs := dyn.ProbsAt(t)
		var cPurity, klDiv float64
		for i := 0; i < dim; i++ {
			p := real(raw.Data[i*raw.Stride+i])
			probs[i] = p
			cPurity += p * p
			if p > probFloor {
				klDiv += p * math.Log(p*float64(dim))
			}
		}
		dyn.ClassicalPurity[t] = cPurity
		dyn.KLDiv[t] = klDiv

		eig, err := linalg.EigvalsHermitian(rho)
		if err != nil {
			return err
		}
		var qPurity, entropy float64
		for _, lam := range eig {
			if lam <= probFloor {
				continue
			}
			qPurity += lam * lam
			entropy -= lam * math.Log(lam)
		}
		dyn.QuantumPurity[t] = qPurity
		dyn.Entropy[t] = entropy
	}
	return nil
}

// cdoWorkerBytes estimates the run footprint per worker: the shared state
// block amortized over workers is dominated by the realization count, so
// the full block is charged once plus the per-worker eigensolver scratch.
func cdoWorkerBytes(dim, realizs, numTimes int) uint64 {
	d := uint64(dim)
	stateBlock := uint64(realizs) * uint64(numTimes) * d * 16
	solver := 16*d*d + 8*(2*d)*(2*d)*2
	return stateBlock + solver
}

func persistCDO(res *CDOResult, e *ensemble.Ensemble, opts Options, copts CDOOptions) error {
	spec := e.Spec()
	args := map[string]string{
		"realizs": strconv.Itoa(opts.Realizs),
		"obs_q":   strconv.Itoa(copts.ObsQ),
		"unfold":  strconv.FormatBool(copts.Unfold),
	}
	if err := dataset.Save(filepath.Join(res.RunDir, "cdo_dynamics.zip"), res.Dynamics, &spec, args); err != nil {
		return err
	}
	if res.States != nil {
		if err := dataset.Save(filepath.Join(res.RunDir, "evolved_states.zip"), res.States, &spec, args); err != nil {
			return err
		}
	}
	return nil
}

// matVec computes dst = m·x.
func matVec(m *mat.CDense, x, dst []complex128) {
	raw := m.RawCMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		var s complex128
		for j, v := range row {
			s += v * x[j]
		}
		dst[i] = s
	}
}

// matVecAdjoint computes dst = m†·x.
func matVecAdjoint(m *mat.CDense, x, dst []complex128) {
	raw := m.RawCMatrix()
	for j := 0; j < raw.Cols; j++ {
		dst[j] = 0
	}
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		xi := x[i]
		for j, v := range row {
			dst[j] += cmplx.Conj(v) * xi
		}
	}
}

// quadForm returns Re(x†·m·x), exact for Hermitian m.
func quadForm(m *mat.CDense, x []complex128) float64 {
	raw := m.RawCMatrix()
	var s complex128
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		var mi complex128
		for j, v := range row {
			mi += v * x[j]
		}
		s += cmplx.Conj(x[i]) * mi
	}
	return real(s)
}

// matMul returns a·b as a fresh matrix.
func matMul(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	_, cb := b.Dims()
	out := mat.NewCDense(ra, cb, nil)
	araw, braw, oraw := a.RawCMatrix(), b.RawCMatrix(), out.RawCMatrix()
	for i := 0; i < ra; i++ {
		arow := araw.Data[i*araw.Stride:]
		orow := oraw.Data[i*oraw.Stride:]
		for k := 0; k < ca; k++ {
			av := arow[k]
			if av == 0 {
				continue
			}
			brow := braw.Data[k*braw.Stride:]
			for j := 0; j < cb; j++ {
				orow[j] += av * brow[j]
			}
		}
	}
	return out
}
