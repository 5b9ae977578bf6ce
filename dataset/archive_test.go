// SPDX-License-Identifier: MIT

package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmt/dataset"
	"github.com/katalvlaran/rmt/ensemble"
)

func TestSaveLoadSpectralDensity(t *testing.T) {
	d, err := dataset.NewSpectralDensity(10, 1.0, 25)
	require.NoError(t, err)
	for i := range d.Hist {
		d.Hist[i] = float64(i)
		d.UnfHist[i] = float64(2 * i)
	}

	e, err := ensemble.NewGOE(50, ensemble.WithSeed(3))
	require.NoError(t, err)
	spec := e.Spec()

	path := filepath.Join(t.TempDir(), "spectrum.zip")
	require.NoError(t, dataset.Save(path, d, &spec, map[string]string{"realizs": "100"}))

	got, meta, err := dataset.Load(path)
	require.NoError(t, err)
	require.Equal(t, dataset.NameSpectralDensity, meta.Name)
	require.Equal(t, "100", meta.Args["realizs"])
	require.NotNil(t, meta.Ensemble)
	require.Equal(t, "goe", meta.Ensemble.Class)

	back, ok := got.(*dataset.SpectralDensity)
	require.True(t, ok)
	require.Equal(t, d.Bins, back.Bins)
	require.Equal(t, d.Hist, back.Hist)
	require.Equal(t, d.UnfBins, back.UnfBins)
	require.Equal(t, d.UnfHist, back.UnfHist)
}

func TestSaveLoadFormFactors(t *testing.T) {
	d, err := dataset.NewFormFactors(16, 64, 0.5, 6.28)
	require.NoError(t, err)
	for i := range d.Mu1 {
		d.Mu1[i] = complex(float64(i), -float64(i))
		d.Mu2[i] = float64(i * i)
		d.UnfMu1[i] = complex(-float64(i), float64(i))
	}
	d.Finalize(4)

	path := filepath.Join(t.TempDir(), "form_factors.zip")
	require.NoError(t, dataset.Save(path, d, nil, nil))

	got, meta, err := dataset.Load(path)
	require.NoError(t, err)
	require.Nil(t, meta.Ensemble)

	back, ok := got.(*dataset.FormFactors)
	require.True(t, ok)
	require.Equal(t, d.Times, back.Times)
	require.Equal(t, d.Mu1, back.Mu1)
	require.Equal(t, d.SFF, back.SFF)
	require.Equal(t, d.CSFF, back.CSFF)
	require.Equal(t, d.UnfTimes, back.UnfTimes)
	require.Equal(t, d.UnfCSFF, back.UnfCSFF)
}

func TestFormFactorsFinalizeAverages(t *testing.T) {
	d, err := dataset.NewFormFactors(4, 8, 1, 1)
	require.NoError(t, err)
	for i := range d.Mu1 {
		d.Mu1[i] = complex(4, -8)
		d.Mu2[i] = 12
		d.UnfMu1[i] = complex(-8, 4)
		d.UnfMu2[i] = 20
	}
	d.Finalize(4)

	// archived moments are per-realization averages, not accumulated sums
	for i := range d.Mu1 {
		require.Equal(t, complex(1, -2), d.Mu1[i])
		require.Equal(t, 3.0, d.Mu2[i])
		require.Equal(t, complex(-2, 1), d.UnfMu1[i])
		require.Equal(t, 5.0, d.UnfMu2[i])

		require.Equal(t, 3.0, d.SFF[i])
		require.InDelta(t, 3.0-5.0, d.CSFF[i], 1e-15)
		require.Equal(t, 5.0, d.UnfSFF[i])
		require.InDelta(t, 5.0-5.0, d.UnfCSFF[i], 1e-15)
	}
}

func TestSaveLoadCDODynamics(t *testing.T) {
	d, err := dataset.NewCDODynamics(8, 4, 16, 1.0)
	require.NoError(t, err)
	require.Zero(t, d.Times[0], "first time must be zero")
	for i := range d.Entropy {
		d.Entropy[i] = float64(i)
	}
	copy(d.ProbsAt(3), []float64{0.4, 0.3, 0.2, 0.1})
	d.ThoulessTime = 2.5

	path := filepath.Join(t.TempDir(), "cdo_dynamics.zip")
	require.NoError(t, dataset.Save(path, d, nil, nil))

	got, _, err := dataset.Load(path)
	require.NoError(t, err)
	back, ok := got.(*dataset.CDODynamics)
	require.True(t, ok)
	require.Equal(t, 4, back.Dim)
	require.Equal(t, 2.5, back.ThoulessTime)
	require.Equal(t, d.Probs, back.Probs)
	require.Equal(t, []float64{0.4, 0.3, 0.2, 0.1}, back.ProbsAt(3))
}

func TestSaveLoadEvolvedStates(t *testing.T) {
	d, err := dataset.NewEvolvedStates(2, 3, 4)
	require.NoError(t, err)
	copy(d.At(1, 2), []complex128{1, 2i, -3, complex(0.5, -0.5)})

	path := filepath.Join(t.TempDir(), "states.zip")
	require.NoError(t, dataset.Save(path, d, nil, nil))

	got, _, err := dataset.Load(path)
	require.NoError(t, err)
	back, ok := got.(*dataset.EvolvedStates)
	require.True(t, ok)
	require.Equal(t, d.States, back.States)
	require.Equal(t, []complex128{1, 2i, -3, complex(0.5, -0.5)}, back.At(1, 2))
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	d, err := dataset.NewSpacingHistogram(4, 0.5)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "spacings.zip")
	require.NoError(t, dataset.Save(path, d, nil, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "spacings.zip", entries[0].Name())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.zip")
	_, _, err := dataset.Load(missing)
	require.Error(t, err)

	garbage := filepath.Join(dir, "garbage.zip")
	require.NoError(t, os.WriteFile(garbage, []byte("not a zip"), 0o644))
	_, _, err = dataset.Load(garbage)
	require.Error(t, err)
}

func TestRegistryUnknownName(t *testing.T) {
	_, err := dataset.New("histogram_of_nothing")
	require.ErrorIs(t, err, dataset.ErrUnknownDataset)
}

func TestValidateShapeInvariants(t *testing.T) {
	d, err := dataset.NewSpectralDensity(10, 1, 25)
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	d.Hist = d.Hist[:5]
	require.ErrorIs(t, d.Validate(), dataset.ErrShapeMismatch)

	f, err := dataset.NewFormFactors(8, 64, 1, 1)
	require.NoError(t, err)
	require.NoError(t, f.Validate())
	f.UnfMu1 = nil
	require.ErrorIs(t, f.Validate(), dataset.ErrShapeMismatch)

	_, err = dataset.NewSpacingHistogram(0, 1)
	require.ErrorIs(t, err, dataset.ErrBadGrid)
	_, err = dataset.NewCDODynamics(1, 4, 16, 1)
	require.ErrorIs(t, err, dataset.ErrBadGrid)
	_, err = dataset.NewEvolvedStates(0, 1, 1)
	require.ErrorIs(t, err, dataset.ErrBadGrid)
}
