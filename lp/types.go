// SPDX-License-Identifier: MIT

// Package lp defines the relation/direction vocabulary, sentinel errors and
// construction options for linear programs.
package lp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by model construction and the rewrites.
var (
	// ErrNilModel indicates that a nil *Model was passed in.
	ErrNilModel = errors.New("lp: model is nil")

	// ErrEmptyModel indicates a model without variables or without constraints.
	ErrEmptyModel = errors.New("lp: model has no variables or no constraints")

	// ErrShapeMismatch indicates inconsistent objective, constraint, relation or RHS sizes.
	ErrShapeMismatch = errors.New("lp: shape mismatch")

	// ErrInvalidRelation indicates a relation outside {<=, >=, =}.
	ErrInvalidRelation = errors.New("lp: invalid relation")

	// ErrInvalidDirection indicates a direction outside {max, min}.
	ErrInvalidDirection = errors.New("lp: invalid direction")

	// ErrBadUnrestricted indicates an unrestricted variable index outside 1..n.
	ErrBadUnrestricted = errors.New("lp: unrestricted variable index out of range")

	// ErrNaNInf indicates a NaN or ±Inf coefficient.
	ErrNaNInf = errors.New("lp: NaN or Inf coefficient")
)

// Relation is the comparison operator of a constraint row.
type Relation string

const (
	// LE is "less than or equal".
	LE Relation = "<="
	// GE is "greater than or equal".
	GE Relation = ">="
	// EQ is equality.
	EQ Relation = "="
)

// Valid reports whether r is one of LE, GE, EQ.
func (r Relation) Valid() bool {
	return r == LE || r == GE || r == EQ
}

// String implements fmt.Stringer.
func (r Relation) String() string { return string(r) }

// ParseRelation maps user text onto a Relation.
// Accepted spellings: "<=", "≤", ">=", "≥", "=", "==".
func ParseRelation(s string) (Relation, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤":
		return LE, nil
	case ">=", "≥":
		return GE, nil
	case "=", "==":
		return EQ, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidRelation, s)
}

// Direction is the optimization sense of the objective.
type Direction string

const (
	// Max maximizes the objective.
	Max Direction = "max"
	// Min minimizes the objective.
	Min Direction = "min"
)

// Valid reports whether d is Max or Min.
func (d Direction) Valid() bool { return d == Max || d == Min }

// String implements fmt.Stringer.
func (d Direction) String() string { return string(d) }

// Opposite returns Min for Max and Max for Min.
func (d Direction) Opposite() Direction {
	if d == Min {
		return Max
	}

	return Min
}

// ParseDirection maps user text onto a Direction (case-insensitive;
// "maximize"/"minimize" are accepted too).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Max, nil
	case "min", "minimize", "minimise":
		return Min, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Option configures New.
type Option func(*Options)

// Options holds optional construction parameters.
type Options struct {
	Unrestricted []int // 1-based indices of free variables
}

// WithUnrestricted marks the given 1-based variable indices as free
// (not constrained to be non-negative). Repeated calls accumulate.
func WithUnrestricted(idx ...int) Option {
	return func(o *Options) {
		o.Unrestricted = append(o.Unrestricted, idx...)
	}
}
