// SPDX-License-Identifier: MIT

package ensemble

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// rngStream is the fixed PCG stream selector for a freshly constructed
// ensemble; worker clones select disjoint streams of the same seed.
const rngStream = 0x14057b7ef767814f

// Ensemble is one random-matrix symmetry class with fixed structural
// parameters. It is immutable after construction except for the internal
// RNG, whose state advances on every draw. Always handle by pointer.
type Ensemble struct {
	class Class
	dim   int
	n     int     // Majorana count; 0 for direct-dimension construction
	q     int     // SYK q-parameter; 0 otherwise
	j     float64 // interaction strength J
	e0    float64 // ground-state energy scale
	sigma float64 // entry standard deviation (class-specific meaning)
	beta  float64 // Dyson index of this instance
	eta   float64 // SYK suppression factor; 0 otherwise
	seed  uint64
	rng   *rand.Rand

	cache *pairCache // lazily built Majorana pair products (SYK)
}

// pairCache is shared between an ensemble and its clones so a worker pool
// builds the pair products exactly once.
type pairCache struct {
	once  sync.Once
	pairs [][]*csrMatrix
}

func (c *pairCache) get(n int) [][]*csrMatrix {
	c.once.Do(func() { c.pairs = majoranaPairs(n) })
	return c.pairs
}

// New constructs a direct-dimension ensemble of the given class.
// SYK cannot be built this way (its dimension is always 2^(N/2−1));
// use NewSYK. Defaults: E0 = 1 (override with WithEnergyScale).
func New(class Class, dim int, opts ...Option) (*Ensemble, error) {
	if !class.valid() || class == SYK {
		return nil, ErrClassMismatch
	}
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if dim <= 0 {
		return nil, ErrBadDim
	}
	if (class == GSE || class == BdGC) && dim%2 != 0 {
		return nil, ErrOddBlockDim
	}
	if s.e0 <= 0 || math.IsNaN(s.e0) || math.IsInf(s.e0, 0) {
		return nil, ErrBadEnergyScale
	}
	e := &Ensemble{class: class, dim: dim, j: s.j, e0: s.e0, beta: class.Beta()}
	e.finish(&s)
	return e, nil
}

// NewGOE constructs a Gaussian orthogonal ensemble of the given dimension.
func NewGOE(dim int, opts ...Option) (*Ensemble, error) { return New(GOE, dim, opts...) }

// NewGUE constructs a Gaussian unitary ensemble of the given dimension.
func NewGUE(dim int, opts ...Option) (*Ensemble, error) { return New(GUE, dim, opts...) }

// NewGSE constructs a Gaussian symplectic ensemble; dim must be even.
func NewGSE(dim int, opts ...Option) (*Ensemble, error) { return New(GSE, dim, opts...) }

// NewBdGC constructs a Bogoliubov–de Gennes class-C ensemble; dim must be even.
func NewBdGC(dim int, opts ...Option) (*Ensemble, error) { return New(BdGC, dim, opts...) }

// NewBdGD constructs a Bogoliubov–de Gennes class-D ensemble.
func NewBdGD(dim int, opts ...Option) (*Ensemble, error) { return New(BdGD, dim, opts...) }

// NewPoisson constructs a Poisson (uncorrelated-level) ensemble.
func NewPoisson(dim int, opts ...Option) (*Ensemble, error) { return New(Poisson, dim, opts...) }

// FromMajoranas constructs a many-body ensemble of the given class from N
// Majorana fermions: dim = 2^(N/2−1) (one disconnected parity sector) and
// E0 = N·J. N must be even and greater than 2.
func FromMajoranas(class Class, n int, opts ...Option) (*Ensemble, error) {
	if !class.valid() || class == SYK {
		return nil, ErrClassMismatch
	}
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if err := validateManyBody(n, &s); err != nil {
		return nil, err
	}
	e := &Ensemble{
		class: class,
		dim:   1 << (n/2 - 1),
		n:     n,
		j:     s.j,
		e0:    float64(n) * s.j,
		beta:  class.Beta(),
	}
	e.finish(&s)
	return e, nil
}

// NewSYK constructs a Sachdev–Ye–Kitaev ensemble of N Majorana fermions with
// q-body interactions. dim = 2^(N/2−1), E0 = N·J. The Dyson index follows
// the (q mod 4, N mod 8) eightfold way: (0,0) → 1, (0,4) → 4, else 2;
// q ≤ 2 collapses to β = 0 (the model is then integrable).
func NewSYK(n, q int, opts ...Option) (*Ensemble, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if q <= 0 || q%2 != 0 {
		return nil, ErrBadQ
	}
	if err := validateManyBody(n, &s); err != nil {
		return nil, err
	}
	if n <= q {
		return nil, ErrQTooLarge
	}

	beta := 2.0
	switch [2]int{q % 4, n % 8} {
	case [2]int{0, 0}:
		beta = 1
	case [2]int{0, 4}:
		beta = 4
	}
	if q <= 2 {
		beta = 0
	}

	eta := sykEta(n, q)
	e := &Ensemble{
		class: SYK,
		dim:   1 << (n/2 - 1),
		n:     n,
		q:     q,
		j:     s.j,
		e0:    float64(n) * s.j,
		beta:  beta,
		eta:   eta,
		cache: &pairCache{},
	}
	e.finish(&s)
	// Coupling deviation replaces the Gaussian sigma convention.
	e.sigma = float64(n) * s.j * math.Sqrt((1-eta)/binomial(n, q)) / 2
	return e, nil
}

// validateManyBody checks the shared Majorana-family constraints.
func validateManyBody(n int, s *settings) error {
	if n <= 2 || n%2 != 0 {
		return ErrBadMajoranaCount
	}
	if s.j <= 0 || math.IsNaN(s.j) || math.IsInf(s.j, 0) {
		return ErrBadCoupling
	}
	if s.e0Set {
		return ErrDerivedEnergyScale
	}
	return nil
}

// finish seeds the RNG and derives the class sigma.
func (e *Ensemble) finish(s *settings) {
	if !s.seedSet {
		s.seed = rand.Uint64()
	}
	e.seed = s.seed
	e.rng = rand.New(rand.NewPCG(s.seed, rngStream))
	switch e.class {
	case Poisson:
		e.sigma = 2 * e.e0
	default:
		e.sigma = e.e0 / math.Sqrt(2*float64(e.dim))
	}
}

// Class returns the symmetry class.
func (e *Ensemble) Class() Class { return e.class }

// Dim returns the Hilbert-space dimension of generated matrices.
func (e *Ensemble) Dim() int { return e.dim }

// N returns the Majorana fermion count, or 0 for direct-dimension ensembles.
func (e *Ensemble) N() int { return e.n }

// Q returns the SYK q-parameter, or 0 for other classes.
func (e *Ensemble) Q() int { return e.q }

// Coupling returns the interaction strength J.
func (e *Ensemble) Coupling() float64 { return e.j }

// E0 returns the ground-state energy scale: the spectrum is supported on
// [−E0, E0] in the large-dim limit.
func (e *Ensemble) E0() float64 { return e.e0 }

// Sigma returns the entry (or, for SYK, coupling) standard deviation.
func (e *Ensemble) Sigma() float64 { return e.sigma }

// Beta returns the Dyson index of this instance.
func (e *Ensemble) Beta() float64 { return e.beta }

// Eta returns the SYK combinatorial suppression factor. The alternating sum
// keeps it in (−1, 1); it can go negative (e.g. N=16, q=4), which only
// widens the 1−η bandwidth factor.
func (e *Ensemble) Eta() float64 { return e.eta }

// Universality returns the class whose universal statistics (spacing,
// form factor) this instance follows, determined by its Dyson index.
func (e *Ensemble) Universality() Class { return universality(e.beta) }

// Degeneracy returns the exact eigenvalue degeneracy: 2 for symplectic
// (Kramers) universality, 1 otherwise.
func (e *Ensemble) Degeneracy() int {
	if e.Universality() == GSE {
		return 2
	}
	return 1
}

// Seed returns the recorded RNG seed.
func (e *Ensemble) Seed() uint64 { return e.seed }

// Rand exposes the ensemble's random source. Draws advance the ensemble
// state; use Clone for independent streams.
func (e *Ensemble) Rand() *rand.Rand { return e.rng }

// Clone returns an ensemble with identical structural parameters whose RNG
// follows a disjoint stream of the same seed, selected by stream ≥ 1.
// Worker pools give each worker its own clone and merge results.
func (e *Ensemble) Clone(stream uint64) *Ensemble {
	c := &Ensemble{
		class: e.class, dim: e.dim, n: e.n, q: e.q,
		j: e.j, e0: e.e0, sigma: e.sigma, beta: e.beta, eta: e.eta,
		seed: e.seed, cache: e.cache,
	}
	c.rng = rand.New(rand.NewPCG(e.seed, rngStream+stream))
	return c
}

// Generate draws one realization of the ensemble into dst.
//
// A nil dst allocates a fresh zeroed dim×dim buffer; a non-nil dst must be
// dim×dim. Gaussian and SYK generators accumulate into dst (callers
// streaming realizations zero the buffer between draws); the Poisson
// generator overwrites it. The result is Hermitian up to rounding.
func (e *Ensemble) Generate(dst *mat.CDense) (*mat.CDense, error) {
	if dst == nil {
		dst = mat.NewCDense(e.dim, e.dim, nil)
	} else if r, c := dst.Dims(); r != e.dim || c != e.dim {
		return nil, fmt.Errorf("Generate: %w", ErrShapeMismatch)
	}
	switch e.class {
	case GOE:
		e.fillGOE(dst)
	case GUE:
		e.fillGUE(dst)
	case GSE:
		e.fillGSE(dst)
	case BdGC:
		e.fillBdGC(dst)
	case BdGD:
		e.fillBdGD(dst)
	case Poisson:
		if err := e.fillPoisson(dst); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	case SYK:
		e.fillSYK(dst)
	}
	return dst, nil
}

// PoissonLevels draws dim i.i.d. levels uniform on [−E0, E0] into dst,
// the eigenvalue fast path for the Poisson class (no diagonalization
// needed when only the spectrum matters). dst must hold dim entries;
// nil allocates. Returns ErrClassMismatch for other classes.
func (e *Ensemble) PoissonLevels(dst []float64) ([]float64, error) {
	if e.class != Poisson {
		return nil, ErrClassMismatch
	}
	if dst == nil {
		dst = make([]float64, e.dim)
	} else if len(dst) != e.dim {
		return nil, ErrShapeMismatch
	}
	for i := range dst {
		dst[i] = (e.rng.Float64() - 0.5) * e.sigma
	}
	return dst, nil
}

// DirPath returns the parameter directory path of the ensemble, e.g.
// "syk/q_4/N_16/J_1p0" or "goe/D_50/E0_1p0". Decimal points become 'p'
// so every segment stays filesystem-safe.
func (e *Ensemble) DirPath() string {
	segs := []string{e.class.DirName()}
	if e.class == SYK {
		segs = append(segs, fmt.Sprintf("q_%d", e.q))
	}
	if e.n > 0 {
		segs = append(segs, fmt.Sprintf("N_%d", e.n), "J_"+pathFloat(e.j))
	} else {
		segs = append(segs, fmt.Sprintf("D_%d", e.dim), "E0_"+pathFloat(e.e0))
	}
	return strings.Join(segs, "/")
}

// LaTeX returns the display label of the instance, e.g.
// "$\textrm{SYK}_4\ N=16$" or "$\textrm{GOE}\ D=50$".
func (e *Ensemble) LaTeX() string {
	var b strings.Builder
	b.WriteString("$")
	b.WriteString(e.class.LaTeX())
	if e.class == SYK {
		fmt.Fprintf(&b, "_%d", e.q)
	}
	if e.n > 0 {
		fmt.Fprintf(&b, `\ N=%d`, e.n)
	} else {
		fmt.Fprintf(&b, `\ D=%d`, e.dim)
	}
	b.WriteString("$")
	return b.String()
}

// String implements fmt.Stringer with a compact parameter summary.
func (e *Ensemble) String() string {
	if e.class == SYK {
		return fmt.Sprintf("SYK(N=%d, q=%d, J=%g)", e.n, e.q, e.j)
	}
	if e.n > 0 {
		return fmt.Sprintf("%s(N=%d, J=%g)", e.class, e.n, e.j)
	}
	return fmt.Sprintf("%s(dim=%d, E0=%g)", e.class, e.dim, e.e0)
}

// pathFloat renders a float for a directory segment: 1.5 → "1p5", 1 → "1p0".
func pathFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%dp0", int64(v))
	}
	return strings.ReplaceAll(fmt.Sprintf("%g", v), ".", "p")
}
