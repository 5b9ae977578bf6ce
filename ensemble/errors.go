// SPDX-License-Identifier: MIT
// Package ensemble: sentinel error set.
// Constructors MUST return these sentinels for invalid structural
// parameters; generation never validates (fail fast at construction).

package ensemble

import "errors"

var (
	// ErrBadDim is returned when a requested matrix dimension is not positive.
	ErrBadDim = errors.New("ensemble: dimension must be > 0")

	// ErrOddBlockDim signals an odd dimension for a two-block class
	// (GSE, BdG(C)), whose construction needs dim/2 sub-blocks.
	ErrOddBlockDim = errors.New("ensemble: block class requires even dimension")

	// ErrBadMajoranaCount signals an invalid Majorana fermion count:
	// N must be an even integer greater than 2.
	ErrBadMajoranaCount = errors.New("ensemble: Majorana count must be an even integer > 2")

	// ErrBadQ signals an invalid SYK q-parameter: q must be a positive even integer.
	ErrBadQ = errors.New("ensemble: SYK q-parameter must be a positive even integer")

	// ErrQTooLarge signals q ≥ N, which leaves no q-body interaction terms.
	ErrQTooLarge = errors.New("ensemble: Majorana count must exceed the q-parameter")

	// ErrBadCoupling signals a non-positive interaction strength J.
	ErrBadCoupling = errors.New("ensemble: coupling must be > 0")

	// ErrBadEnergyScale signals a non-positive ground-state energy scale E0.
	ErrBadEnergyScale = errors.New("ensemble: energy scale must be > 0")

	// ErrDerivedEnergyScale is returned when WithEnergyScale is combined with
	// a many-body constructor, where E0 = N·J is derived, not chosen.
	ErrDerivedEnergyScale = errors.New("ensemble: energy scale is derived for many-body ensembles")

	// ErrShapeMismatch indicates a destination buffer whose shape differs
	// from dim×dim.
	ErrShapeMismatch = errors.New("ensemble: buffer shape mismatch")

	// ErrUnknownClass indicates an unrecognized class name in a Spec.
	ErrUnknownClass = errors.New("ensemble: unknown ensemble class")

	// ErrClassMismatch indicates an operation invoked on the wrong class,
	// e.g. PoissonLevels on a Gaussian ensemble or NewSYK via New.
	ErrClassMismatch = errors.New("ensemble: operation not defined for this class")
)
