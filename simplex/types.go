// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
)

// Sentinel errors returned by tableau construction and Solve.
var (
	// ErrNotStandard indicates that the model is not max-form, all <=, x ≥ 0.
	ErrNotStandard = errors.New("simplex: model is not in standard form")

	// ErrBadMaxIterations indicates MaxIterations < 1.
	ErrBadMaxIterations = errors.New("simplex: MaxIterations must be positive")

	// ErrBadTolerance indicates a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("simplex: Tolerance must be a finite value >= 0")

	// ErrColumnOutOfRange indicates a column index outside the tableau.
	ErrColumnOutOfRange = errors.New("simplex: column index out of range")
)

// Status is the terminal state of a dual simplex run.
type Status int

const (
	// StatusOptimal: every constraint RHS is non-negative.
	StatusOptimal Status = iota
	// StatusInfeasible: the ratio test found no eligible pivot column.
	StatusInfeasible
	// StatusIterationLimit: the pivot loop hit MaxIterations.
	StatusIterationLimit
	// StatusSkipped: the dual simplex was not applied (set by callers that
	// short-circuit an already primal-feasible tableau).
	StatusSkipped
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusIterationLimit:
		return "IterationLimitExceeded"
	case StatusSkipped:
		return "Skipped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the terminal outcome of Solve.
//
// Objective and Values are meaningful only for StatusOptimal. Objective is
// always the max-form value; sign correction for upstream min→max flips is
// the caller's job.
type Result struct {
	Status     Status
	Objective  float64   // −(cost-row RHS)
	Values     []float64 // decision variables, unit-column rule
	Duals      []float64 // −(cost-row slack entries), one per constraint
	Basis      []string  // final basic-variable labels, one per constraint row
	Iterations int       // pivots performed

	// Certified is set for StatusOptimal when the final cost row is also
	// dual feasible (no entry > tol). Without it the RHS is non-negative
	// but the basis is not proven optimal: the method assumes a dual
	// feasible start and never checks it.
	Certified bool
}

// DefaultMaxIterations bounds the pivot loop when no cap is configured.
const DefaultMaxIterations = 1000

// Options configures Solve.
//
// MaxIterations – pivot cap; reaching it yields StatusIterationLimit.
// Tolerance     – values in (−Tolerance, Tolerance) count as zero.
//
//	Default 0: strictly-negative and exact-unit comparisons.
//
// Observer      – optional trace receiver (init, each pivot, terminal).
// Ctx           – cancellation checked once per iteration.
// Logger        – V(1) summary of the run; logr.Discard() by default.
type Options struct {
	MaxIterations int
	Tolerance     float64
	Observer      Observer
	Ctx           context.Context
	Logger        logr.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the exact-arithmetic configuration with a
// DefaultMaxIterations cap, no observer and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Ctx:           context.Background(),
		Logger:        logr.Discard(),
	}
}

// WithMaxIterations sets the pivot cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithTolerance sets the zero tolerance used by every sign and unit test.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithObserver installs a trace observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithLogger sets the run logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
