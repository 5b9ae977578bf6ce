// SPDX-License-Identifier: MIT

package ensemble

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Spec is the JSON description of an ensemble, the exchange format between
// the command line, archived run metadata and reconstruction. Zero-valued
// optional fields fall back to the constructor defaults.
type Spec struct {
	Class string  `json:"class"`
	Dim   int     `json:"dim,omitempty"`
	N     int     `json:"N,omitempty"`
	Q     int     `json:"q,omitempty"`
	J     float64 `json:"J,omitempty"`
	E0    float64 `json:"E0,omitempty"`
	Seed  *uint64 `json:"seed,omitempty"`
}

// ParseClass resolves a class name, case-insensitively and accepting the
// directory aliases ("bdg_c", "bdgc", ...).
func ParseClass(name string) (Class, error) {
	c, ok := classNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownClass)
	}
	return c, nil
}

// FromSpec reconstructs an ensemble from its Spec. SYK requires N and q;
// other classes take either N (many-body sizing) or Dim, with Dim winning
// when both are absent only by failing construction.
func FromSpec(s Spec) (*Ensemble, error) {
	class, err := ParseClass(s.Class)
	if err != nil {
		return nil, err
	}
	var opts []Option
	if s.J != 0 {
		opts = append(opts, WithCoupling(s.J))
	}
	if s.E0 != 0 {
		opts = append(opts, WithEnergyScale(s.E0))
	}
	if s.Seed != nil {
		opts = append(opts, WithSeed(*s.Seed))
	}
	switch {
	case class == SYK:
		return NewSYK(s.N, s.Q, opts...)
	case s.N > 0:
		return FromMajoranas(class, s.N, opts...)
	default:
		return New(class, s.Dim, opts...)
	}
}

// UnmarshalSpec parses a JSON Spec and constructs its ensemble.
func UnmarshalSpec(data []byte) (*Ensemble, error) {
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("ensemble: parse spec: %w", err)
	}
	return FromSpec(s)
}

// Spec returns the serializable description of the ensemble. Derived fields
// (E0 of many-body ensembles) are omitted so FromSpec round-trips.
func (e *Ensemble) Spec() Spec {
	seed := e.seed
	s := Spec{Class: e.class.DirName(), Seed: &seed}
	if e.n > 0 {
		s.N = e.n
		s.J = e.j
	} else {
		s.Dim = e.dim
		s.E0 = e.e0
	}
	if e.class == SYK {
		s.Q = e.q
	}
	return s
}
