// SPDX-License-Identifier: MIT

package dataset

// Grid defaults, expressed as dimensionless factors the drivers scale:
// density edges by E0 (raw) and dim/2 (unfolded), spacing edges by the
// global mean spacing, time exponents by log(dim).
const (
	DefaultBins  = 100
	DefaultTimes = 1000

	DensityLo, DensityHi = -1.2, 1.2
	SpacingLo, SpacingHi = 0.0, 4.0

	LogTimeLo, LogTimeHi       = -0.5, 1.5
	UnfLogTimeLo, UnfLogTimeHi = -1.5, 0.5
	CDOLogTimeLo, CDOLogTimeHi = -1.0, 1.5
)

// Stable dataset names, the registry and archive keys.
const (
	NameSpectralDensity  = "spectral_density"
	NameSpacingHistogram = "spacing_histogram"
	NameFormFactors      = "form_factors"
	NameCDODynamics      = "cdo_dynamics"
	NameEvolvedStates    = "evolved_states"
)

// Dataset is a typed result container that can be archived and restored.
type Dataset interface {
	// Name returns the stable registry key of the container.
	Name() string
	// Validate re-checks the shape invariants fixed at construction.
	Validate() error

	scalars() map[string]float64
	arrays() (map[string][]float64, map[string][]complex128)
	restore(sc map[string]float64, f64 map[string][]float64, c128 map[string][]complex128) error
}

// SpectralDensity holds the raw and unfolded level-density histograms.
// Bin edges carry their physical scale; counts are normalized to unit
// integral by the driver at the end of a run.
type SpectralDensity struct {
	Bins    []float64
	Hist    []float64
	UnfBins []float64
	UnfHist []float64
}

// NewSpectralDensity builds zeroed histograms with numBins bins over
// DensityLo..DensityHi scaled by energyScale (raw axis, E0) and unfScale
// (unfolded axis, dim/2).
func NewSpectralDensity(numBins int, energyScale, unfScale float64) (*SpectralDensity, error) {
	if numBins <= 0 {
		return nil, ErrBadGrid
	}
	return &SpectralDensity{
		Bins:    BinEdges(DensityLo*energyScale, DensityHi*energyScale, numBins),
		Hist:    make([]float64, numBins),
		UnfBins: BinEdges(DensityLo*unfScale, DensityHi*unfScale, numBins),
		UnfHist: make([]float64, numBins),
	}, nil
}

func (d *SpectralDensity) Name() string { return NameSpectralDensity }

func (d *SpectralDensity) Validate() error {
	if len(d.Bins) < 2 || len(d.Hist) != len(d.Bins)-1 ||
		len(d.UnfBins) != len(d.Bins) || len(d.UnfHist) != len(d.Hist) {
		return ErrShapeMismatch
	}
	return nil
}

func (d *SpectralDensity) scalars() map[string]float64 { return nil }

func (d *SpectralDensity) arrays() (map[string][]float64, map[string][]complex128) {
	return map[string][]float64{
		"bins": d.Bins, "hist": d.Hist, "unf_bins": d.UnfBins, "unf_hist": d.UnfHist,
	}, nil
}

func (d *SpectralDensity) restore(_ map[string]float64, f64 map[string][]float64, _ map[string][]complex128) error {
	return assignF64(f64, map[string]*[]float64{
		"bins": &d.Bins, "hist": &d.Hist, "unf_bins": &d.UnfBins, "unf_hist": &d.UnfHist,
	})
}

// SpacingHistogram holds nearest-neighbour spacing histograms. The raw axis
// is scaled by the global mean spacing 2·E0/dim; the unfolded axis is
// dimensionless with unit mean.
type SpacingHistogram struct {
	Mean    float64 // global mean level spacing of the raw axis
	Bins    []float64
	Hist    []float64
	UnfBins []float64
	UnfHist []float64
}

// NewSpacingHistogram builds zeroed spacing histograms with numBins bins
// over SpacingLo..SpacingHi in units of meanSpacing.
func NewSpacingHistogram(numBins int, meanSpacing float64) (*SpacingHistogram, error) {
	if numBins <= 0 || meanSpacing <= 0 {
		return nil, ErrBadGrid
	}
	return &SpacingHistogram{
		Mean:    meanSpacing,
		Bins:    BinEdges(SpacingLo*meanSpacing, SpacingHi*meanSpacing, numBins),
		Hist:    make([]float64, numBins),
		UnfBins: BinEdges(SpacingLo, SpacingHi, numBins),
		UnfHist: make([]float64, numBins),
	}, nil
}

func (d *SpacingHistogram) Name() string { return NameSpacingHistogram }

func (d *SpacingHistogram) Validate() error {
	if d.Mean <= 0 {
		return ErrShapeMismatch
	}
	if len(d.Bins) < 2 || len(d.Hist) != len(d.Bins)-1 ||
		len(d.UnfBins) != len(d.Bins) || len(d.UnfHist) != len(d.Hist) {
		return ErrShapeMismatch
	}
	return nil
}

func (d *SpacingHistogram) scalars() map[string]float64 {
	return map[string]float64{"mean": d.Mean}
}

func (d *SpacingHistogram) arrays() (map[string][]float64, map[string][]complex128) {
	return map[string][]float64{
		"bins": d.Bins, "hist": d.Hist, "unf_bins": d.UnfBins, "unf_hist": d.UnfHist,
	}, nil
}

func (d *SpacingHistogram) restore(sc map[string]float64, f64 map[string][]float64, _ map[string][]complex128) error {
	mean, ok := sc["mean"]
	if !ok {
		return ErrBadMetadata
	}
	d.Mean = mean
	return assignF64(f64, map[string]*[]float64{
		"bins": &d.Bins, "hist": &d.Hist, "unf_bins": &d.UnfBins, "unf_hist": &d.UnfHist,
	})
}

// FormFactors accumulates spectral form factor moments on raw and unfolded
// log time grids:
//
//	μ₁(t) = Σ_r Σ_k e^{−iE_k t}/dim,  μ₂(t) = Σ_r |Σ_k e^{−iE_k t}/dim|²,
//
// over realizations r. Finalize turns the sums into per-realization
// averages (the form the archive stores) and derives sff = μ₂ and the
// connected csff = sff − |μ₁|² from them.
type FormFactors struct {
	Times []float64
	Mu1   []complex128
	Mu2   []float64
	SFF   []float64
	CSFF  []float64

	UnfTimes []float64
	UnfMu1   []complex128
	UnfMu2   []float64
	UnfSFF   []float64
	UnfCSFF  []float64
}

// NewFormFactors builds zeroed moment arrays over numTimes log-spaced times
// with the given base (dim), scaled by timeScale (j₁,₁/E0) on the raw axis
// and unfTimeScale (2π) on the unfolded axis.
func NewFormFactors(numTimes int, base, timeScale, unfTimeScale float64) (*FormFactors, error) {
	if numTimes <= 0 || base <= 1 {
		return nil, ErrBadGrid
	}
	times := LogSpace(LogTimeLo, LogTimeHi, numTimes, base)
	unfTimes := LogSpace(UnfLogTimeLo, UnfLogTimeHi, numTimes, base)
	for i := range times {
		times[i] *= timeScale
		unfTimes[i] *= unfTimeScale
	}
	return &FormFactors{
		Times: times,
		Mu1:   make([]complex128, numTimes),
		Mu2:   make([]float64, numTimes),
		SFF:   make([]float64, numTimes),
		CSFF:  make([]float64, numTimes),

		UnfTimes: unfTimes,
		UnfMu1:   make([]complex128, numTimes),
		UnfMu2:   make([]float64, numTimes),
		UnfSFF:   make([]float64, numTimes),
		UnfCSFF:  make([]float64, numTimes),
	}, nil
}

func (d *FormFactors) Name() string { return NameFormFactors }

func (d *FormFactors) Validate() error {
	n := len(d.Times)
	if n == 0 ||
		len(d.Mu1) != n || len(d.Mu2) != n || len(d.SFF) != n || len(d.CSFF) != n ||
		len(d.UnfTimes) != n || len(d.UnfMu1) != n || len(d.UnfMu2) != n ||
		len(d.UnfSFF) != n || len(d.UnfCSFF) != n {
		return ErrShapeMismatch
	}
	return nil
}

// Finalize reduces the accumulated moment sums to per-realization averages
// in place and derives the form factors from them. Call exactly once per
// run.
func (d *FormFactors) Finalize(realizs int) {
	r := float64(realizs)
	for i := range d.SFF {
		d.Mu1[i] /= complex(r, 0)
		d.Mu2[i] /= r
		d.SFF[i] = d.Mu2[i]
		m := d.Mu1[i]
		d.CSFF[i] = d.SFF[i] - (real(m)*real(m) + imag(m)*imag(m))

		d.UnfMu1[i] /= complex(r, 0)
		d.UnfMu2[i] /= r
		d.UnfSFF[i] = d.UnfMu2[i]
		m = d.UnfMu1[i]
		d.UnfCSFF[i] = d.UnfSFF[i] - (real(m)*real(m) + imag(m)*imag(m))
	}
}

func (d *FormFactors) scalars() map[string]float64 { return nil }

func (d *FormFactors) arrays() (map[string][]float64, map[string][]complex128) {
	return map[string][]float64{
			"times": d.Times, "mu_2": d.Mu2, "sff": d.SFF, "csff": d.CSFF,
			"unf_times": d.UnfTimes, "unf_mu_2": d.UnfMu2, "unf_sff": d.UnfSFF, "unf_csff": d.UnfCSFF,
		}, map[string][]complex128{
			"mu_1": d.Mu1, "unf_mu_1": d.UnfMu1,
		}
}

func (d *FormFactors) restore(_ map[string]float64, f64 map[string][]float64, c128 map[string][]complex128) error {
	if err := assignF64(f64, map[string]*[]float64{
		"times": &d.Times, "mu_2": &d.Mu2, "sff": &d.SFF, "csff": &d.CSFF,
		"unf_times": &d.UnfTimes, "unf_mu_2": &d.UnfMu2, "unf_sff": &d.UnfSFF, "unf_csff": &d.UnfCSFF,
	}); err != nil {
		return err
	}
	return assignC128(c128, map[string]*[]complex128{
		"mu_1": &d.Mu1, "unf_mu_1": &d.UnfMu1,
	})
}

// CDODynamics holds the time series of a chaotic-density-operator run:
// eigenstate populations, purities, von Neumann entropy, Kullback–Leibler
// divergence from the stationary ensemble, observable moments and the
// Thouless-time estimate.
type CDODynamics struct {
	Dim   int
	Times []float64 // t = 0 followed by len-1 log-spaced times

	Probs           []float64 // row-major len(Times)×Dim populations
	ClassicalPurity []float64
	QuantumPurity   []float64
	Entropy         []float64
	KLDiv           []float64
	ObsExpect       []float64
	ObsVar          []float64

	ThoulessTime float64
}

// NewCDODynamics builds zeroed dynamics arrays over numTimes points: t = 0
// plus numTimes−1 log-spaced times with the given base (dim), scaled by
// timeScale.
func NewCDODynamics(numTimes, dim int, base, timeScale float64) (*CDODynamics, error) {
	if numTimes <= 1 || dim <= 0 || base <= 1 {
		return nil, ErrBadGrid
	}
	logTimes := LogSpace(CDOLogTimeLo, CDOLogTimeHi, numTimes-1, base)
	times := make([]float64, numTimes)
	for i, t := range logTimes {
		times[i+1] = t * timeScale
	}
	return &CDODynamics{
		Dim:             dim,
		Times:           times,
		Probs:           make([]float64, numTimes*dim),
		ClassicalPurity: make([]float64, numTimes),
		QuantumPurity:   make([]float64, numTimes),
		Entropy:         make([]float64, numTimes),
		KLDiv:           make([]float64, numTimes),
		ObsExpect:       make([]float64, numTimes),
		ObsVar:          make([]float64, numTimes),
	}, nil
}

// NewCDODynamicsWithTimes builds zeroed dynamics arrays over a caller-built
// time grid, for drivers that evolve on the unfolded axis.
func NewCDODynamicsWithTimes(times []float64, dim int) (*CDODynamics, error) {
	if len(times) == 0 || dim <= 0 {
		return nil, ErrBadGrid
	}
	n := len(times)
	return &CDODynamics{
		Dim:             dim,
		Times:           times,
		Probs:           make([]float64, n*dim),
		ClassicalPurity: make([]float64, n),
		QuantumPurity:   make([]float64, n),
		Entropy:         make([]float64, n),
		KLDiv:           make([]float64, n),
		ObsExpect:       make([]float64, n),
		ObsVar:          make([]float64, n),
	}, nil
}

func (d *CDODynamics) Name() string { return NameCDODynamics }

func (d *CDODynamics) Validate() error {
	n := len(d.Times)
	if n == 0 || d.Dim <= 0 || len(d.Probs) != n*d.Dim ||
		len(d.ClassicalPurity) != n || len(d.QuantumPurity) != n ||
		len(d.Entropy) != n || len(d.KLDiv) != n ||
		len(d.ObsExpect) != n || len(d.ObsVar) != n {
		return ErrShapeMismatch
	}
	return nil
}

// ProbsAt returns the population row at time index t.
func (d *CDODynamics) ProbsAt(t int) []float64 {
	return d.Probs[t*d.Dim : (t+1)*d.Dim]
}

func (d *CDODynamics) scalars() map[string]float64 {
	return map[string]float64{
		"dim":           float64(d.Dim),
		"thouless_time": d.ThoulessTime,
	}
}

func (d *CDODynamics) arrays() (map[string][]float64, map[string][]complex128) {
	return map[string][]float64{
		"times": d.Times, "probs": d.Probs,
		"c_purity": d.ClassicalPurity, "q_purity": d.QuantumPurity,
		"entropy": d.Entropy, "kl_div": d.KLDiv,
		"obs_expect": d.ObsExpect, "obs_var": d.ObsVar,
	}, nil
}

func (d *CDODynamics) restore(sc map[string]float64, f64 map[string][]float64, _ map[string][]complex128) error {
	dim, ok := sc["dim"]
	if !ok {
		return ErrBadMetadata
	}
	d.Dim = int(dim)
	d.ThoulessTime = sc["thouless_time"]
	return assignF64(f64, map[string]*[]float64{
		"times": &d.Times, "probs": &d.Probs,
		"c_purity": &d.ClassicalPurity, "q_purity": &d.QuantumPurity,
		"entropy": &d.Entropy, "kl_div": &d.KLDiv,
		"obs_expect": &d.ObsExpect, "obs_var": &d.ObsVar,
	})
}

// EvolvedStates stores every evolved state vector of a run, the optional
// intermediate artifact between evolution and statistics.
type EvolvedStates struct {
	Realizs  int
	NumTimes int
	Dim      int
	States   []complex128 // row-major Realizs×NumTimes×Dim
}

// NewEvolvedStates allocates a zeroed state block.
func NewEvolvedStates(realizs, numTimes, dim int) (*EvolvedStates, error) {
	if realizs <= 0 || numTimes <= 0 || dim <= 0 {
		return nil, ErrBadGrid
	}
	return &EvolvedStates{
		Realizs:  realizs,
		NumTimes: numTimes,
		Dim:      dim,
		States:   make([]complex128, realizs*numTimes*dim),
	}, nil
}

func (d *EvolvedStates) Name() string { return NameEvolvedStates }

func (d *EvolvedStates) Validate() error {
	if d.Realizs <= 0 || d.NumTimes <= 0 || d.Dim <= 0 ||
		len(d.States) != d.Realizs*d.NumTimes*d.Dim {
		return ErrShapeMismatch
	}
	return nil
}

// At returns the state vector of realization r at time index t.
func (d *EvolvedStates) At(r, t int) []complex128 {
	off := (r*d.NumTimes + t) * d.Dim
	return d.States[off : off+d.Dim]
}

func (d *EvolvedStates) scalars() map[string]float64 {
	return map[string]float64{
		"realizs":   float64(d.Realizs),
		"num_times": float64(d.NumTimes),
		"dim":       float64(d.Dim),
	}
}

func (d *EvolvedStates) arrays() (map[string][]float64, map[string][]complex128) {
	return nil, map[string][]complex128{"states": d.States}
}

func (d *EvolvedStates) restore(sc map[string]float64, _ map[string][]float64, c128 map[string][]complex128) error {
	for _, k := range []string{"realizs", "num_times", "dim"} {
		if _, ok := sc[k]; !ok {
			return ErrBadMetadata
		}
	}
	d.Realizs = int(sc["realizs"])
	d.NumTimes = int(sc["num_times"])
	d.Dim = int(sc["dim"])
	return assignC128(c128, map[string]*[]complex128{"states": &d.States})
}

// assignF64 moves named arrays into their fields, failing on absence.
func assignF64(src map[string][]float64, dst map[string]*[]float64) error {
	for name, field := range dst {
		arr, ok := src[name]
		if !ok {
			return ErrMissingArray
		}
		*field = arr
	}
	return nil
}

func assignC128(src map[string][]complex128, dst map[string]*[]complex128) error {
	for name, field := range dst {
		arr, ok := src[name]
		if !ok {
			return ErrMissingArray
		}
		*field = arr
	}
	return nil
}
