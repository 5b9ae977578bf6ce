// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rmt/ensemble"
	"github.com/katalvlaran/rmt/linalg"
)

// Sampler streams realizations of an ensemble. One dim×dim scratch matrix
// is zeroed and refilled per draw, so memory stays constant over arbitrarily
// many realizations. Returned eigenvalue slices and eigenvector matrices are
// fresh and owned by the caller.
//
// The Poisson class never diagonalizes: NextEigvals draws the uniform
// spectrum directly and Next adds Haar-random eigenvectors.
type Sampler struct {
	ens *ensemble.Ensemble

	h      *mat.CDense // Hamiltonian scratch
	u      *mat.CDense // Haar scratch (Poisson Next)
	levels []float64   // level scratch (Poisson)
	perm   []int
}

// NewSampler streams realizations of e, advancing e's RNG on every draw.
func NewSampler(e *ensemble.Ensemble) (*Sampler, error) {
	if e == nil {
		return nil, ErrNilEnsemble
	}
	return &Sampler{ens: e}, nil
}

// Ensemble returns the sampled ensemble.
func (s *Sampler) Ensemble() *ensemble.Ensemble { return s.ens }

// NextEigvals draws one realization and returns its sorted spectrum.
func (s *Sampler) NextEigvals() ([]float64, error) {
	if s.ens.Class() == ensemble.Poisson {
		if err := s.drawLevels(); err != nil {
			return nil, err
		}
		vals := make([]float64, len(s.levels))
		copy(vals, s.levels)
		sort.Float64s(vals)
		return vals, nil
	}

	h, err := s.draw()
	if err != nil {
		return nil, err
	}
	vals, err := linalg.EigvalsHermitian(h)
	if err != nil {
		return nil, fmt.Errorf("NextEigvals: %w", err)
	}
	return vals, nil
}

// Next draws one realization and returns its sorted spectrum together with
// the matching orthonormal eigenvector columns.
func (s *Sampler) Next() ([]float64, *mat.CDense, error) {
	if s.ens.Class() == ensemble.Poisson {
		return s.nextPoisson()
	}

	h, err := s.draw()
	if err != nil {
		return nil, nil, err
	}
	vals, vecs, err := linalg.EigHermitian(h)
	if err != nil {
		return nil, nil, fmt.Errorf("Next: %w", err)
	}
	return vals, vecs, nil
}

// draw zeroes the scratch matrix and fills it with a fresh realization.
func (s *Sampler) draw() (*mat.CDense, error) {
	if s.h == nil {
		s.h = mat.NewCDense(s.ens.Dim(), s.ens.Dim(), nil)
	} else {
		s.h.Zero()
	}
	return s.ens.Generate(s.h)
}

func (s *Sampler) drawLevels() error {
	lv, err := s.ens.PoissonLevels(s.levels)
	if err != nil {
		return err
	}
	s.levels = lv
	return nil
}

// nextPoisson pairs a sorted uniform spectrum with the columns of a Haar
// unitary, permuted into eigenvalue order.
func (s *Sampler) nextPoisson() ([]float64, *mat.CDense, error) {
	dim := s.ens.Dim()
	if err := s.drawLevels(); err != nil {
		return nil, nil, err
	}
	u, err := linalg.HaarUnitary(dim, s.ens.Rand(), s.u)
	if err != nil {
		return nil, nil, fmt.Errorf("Next: %w", err)
	}
	s.u = u

	if s.perm == nil {
		s.perm = make([]int, dim)
	}
	for i := range s.perm {
		s.perm[i] = i
	}
	sort.Slice(s.perm, func(a, b int) bool { return s.levels[s.perm[a]] < s.levels[s.perm[b]] })

	vals := make([]float64, dim)
	vecs := mat.NewCDense(dim, dim, nil)
	for c, p := range s.perm {
		vals[c] = s.levels[p]
		for r := 0; r < dim; r++ {
			vecs.Set(r, c, u.At(r, p))
		}
	}
	return vals, vecs, nil
}
