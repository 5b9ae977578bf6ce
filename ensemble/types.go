// SPDX-License-Identifier: MIT

// Package ensemble: symmetry-class enum and its attached labels.
// Identity is explicit data here — directory names, LaTeX names and Dyson
// indices are stored per class, never re-derived from Go type names.

package ensemble

// Class identifies a random-matrix symmetry class.
type Class int

const (
	// Poisson — uncorrelated levels, Haar-conjugated uniform spectrum (β = 0).
	Poisson Class = iota
	// GOE — Gaussian orthogonal ensemble, real symmetric (β = 1).
	GOE
	// GUE — Gaussian unitary ensemble, complex Hermitian (β = 2).
	GUE
	// GSE — Gaussian symplectic ensemble, quaternionic self-dual (β = 4).
	GSE
	// BdGC — Bogoliubov–de Gennes class C, particle-hole symmetric.
	BdGC
	// BdGD — Bogoliubov–de Gennes class D, purely imaginary antisymmetric.
	BdGD
	// SYK — Sachdev–Ye–Kitaev q-body Majorana model; its Dyson index
	// depends on (q mod 4, N mod 8) and lives on the Ensemble instance.
	SYK
)

// classLabel bundles the stable identifiers of a class.
type classLabel struct {
	name  string // display name
	dir   string // directory segment (filesystem-safe)
	latex string // LaTeX display name (without surrounding $)
	beta  float64
}

// classLabels is the single source of truth for class identity.
var classLabels = map[Class]classLabel{
	Poisson: {name: "Poisson", dir: "poisson", latex: `\textrm{Poisson}`, beta: 0},
	GOE:     {name: "GOE", dir: "goe", latex: `\textrm{GOE}`, beta: 1},
	GUE:     {name: "GUE", dir: "gue", latex: `\textrm{GUE}`, beta: 2},
	GSE:     {name: "GSE", dir: "gse", latex: `\textrm{GSE}`, beta: 4},
	BdGC:    {name: "BdG(C)", dir: "bdg_c", latex: `\textrm{BdG(C)}`, beta: 2},
	BdGD:    {name: "BdG(D)", dir: "bdg_d", latex: `\textrm{BdG(D)}`, beta: 2},
	SYK:     {name: "SYK", dir: "syk", latex: `\textrm{SYK}`, beta: 2},
}

// classNames maps Spec names (and common aliases) back to classes.
var classNames = map[string]Class{
	"poisson": Poisson,
	"goe":     GOE,
	"gue":     GUE,
	"gse":     GSE,
	"bdg_c":   BdGC,
	"bdgc":    BdGC,
	"bdg_d":   BdGD,
	"bdgd":    BdGD,
	"syk":     SYK,
}

// String returns the display name of the class.
func (c Class) String() string { return classLabels[c].name }

// DirName returns the filesystem-safe directory segment of the class.
func (c Class) DirName() string { return classLabels[c].dir }

// LaTeX returns the LaTeX name of the class, without surrounding $.
func (c Class) LaTeX() string { return classLabels[c].latex }

// Beta returns the baseline Dyson index of the class. For SYK the baseline
// is 2; the instance value depends on (q mod 4, N mod 8) — use Ensemble.Beta.
func (c Class) Beta() float64 { return classLabels[c].beta }

// valid reports whether c is a known class.
func (c Class) valid() bool {
	_, ok := classLabels[c]
	return ok
}

// universality maps a Dyson index onto the universality class whose spacing
// and form-factor statistics apply.
func universality(beta float64) Class {
	switch beta {
	case 1:
		return GOE
	case 2:
		return GUE
	case 4:
		return GSE
	default:
		return Poisson
	}
}
