// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/dualplex/lp"
	"github.com/katalvlaran/dualplex/simplex"
)

// Sentinel errors returned by Solve.
var (
	// ErrUnknownForm indicates a Form other than Primal or Dual.
	ErrUnknownForm = errors.New("solver: unknown input form")
)

// Form tells Solve whether the input model is a primal to be dualized or
// an already-dual model to be solved directly.
type Form int

const (
	// Primal input: Split → Standardize → Dual → Standardize → simplex.
	Primal Form = iota
	// Dual input: Split → Standardize → simplex.
	Dual
)

// String implements fmt.Stringer.
func (f Form) String() string {
	switch f {
	case Primal:
		return "primal"
	case Dual:
		return "dual"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// ParseForm maps "primal"/"dual" (case-insensitive) onto a Form.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primal", "p":
		return Primal, nil
	case "dual", "d":
		return Dual, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownForm, s)
}

// Stage identifies a model emitted during the pipeline.
type Stage int

const (
	// StageStandardPrimal is the split and standardized primal.
	StageStandardPrimal Stage = iota
	// StageDual is the raw dual of the standardized primal.
	StageDual
	// StageStandardDual is the model handed to the tableau.
	StageStandardDual
)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageStandardPrimal:
		return "Standard Primal"
	case StageDual:
		return "Dual"
	case StageStandardDual:
		return "Standard Dual"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Flip records one min→max objective negation.
type Flip struct {
	Stage Stage // stage whose standardization negated the objective
}

// StageObserver receives each intermediate model in pipeline order.
// Models are owned by the Report; observers must not mutate them.
type StageObserver interface {
	OnStage(s Stage, m *lp.Model)
}

// StageFunc adapts a function to StageObserver.
type StageFunc func(s Stage, m *lp.Model)

// OnStage implements StageObserver.
func (f StageFunc) OnStage(s Stage, m *lp.Model) { f(s, m) }

// Report is the full outcome of Solve.
//
// For Primal input:
//
//	StandardPrimal, Dual, StandardDual are all set.
//	DualValues   = the dual variables y (Result.Values).
//	PrimalValues = the original variables, recovered from the tableau's
//	               shadow prices through Split.
//
// For Dual input:
//
//	StandardPrimal and Dual are nil.
//	DualValues   = the input variables, recovered through Split.
//	PrimalValues = the shadow prices, one per standardized row.
//
// Values are set only when Result.Status is StatusOptimal. The dual
// simplex assumes the standardized dual starts dual feasible and does not
// check it; an Optimal report is a proven optimum only when
// Result.Certified is true.
type Report struct {
	Form           Form
	StandardPrimal *lp.Model
	Dual           *lp.Model
	StandardDual   *lp.Model
	Split          lp.SplitMap

	Result    simplex.Result
	Objective float64 // Result.Objective·(−1)^len(Flips)
	Flips     []Flip

	PrimalValues []float64
	DualValues   []float64

	// Skipped is set when the standardized dual had no negative RHS and
	// the dual simplex was not applied.
	Skipped bool
}

// Status returns Result.Status.
func (r *Report) Status() simplex.Status { return r.Result.Status }

// Options configures Solve.
//
// Simplex – options forwarded to simplex.Solve (after the solver's own).
// Stages  – optional observer of the intermediate models.
// Logger  – V(1) stage records; also handed to the simplex run.
type Options struct {
	Simplex []simplex.Option
	Stages  StageObserver
	Logger  logr.Logger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns no simplex overrides, no observer and a
// discarding logger.
func DefaultOptions() Options {
	return Options{Logger: logr.Discard()}
}

// WithSimplexOptions appends options for the dual simplex run.
func WithSimplexOptions(opts ...simplex.Option) Option {
	return func(o *Options) {
		o.Simplex = append(o.Simplex, opts...)
	}
}

// WithStageObserver installs a stage observer.
func WithStageObserver(obs StageObserver) Option {
	return func(o *Options) {
		o.Stages = obs
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
