// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/dualplex/lp"
)

// Solve builds the tableau of the standardized model std and runs the
// dual simplex method on it. See Tableau.Solve.
func Solve(std *lp.Model, opts ...Option) (Result, error) {
	t, err := NewTableau(std)
	if err != nil {
		return Result{}, err
	}

	return t.Solve(opts...)
}

// Solve runs the dual simplex method on t in place.
//
// Loop:
//  1. r = LeavingRow(); if RHS[r] ≥ −tol → StatusOptimal (Certified when
//     the cost row is dual feasible too).
//  2. Iterations == MaxIterations → StatusIterationLimit.
//  3. ratios = Ratios(r); c = EnteringColumn(ratios); c < 0 → StatusInfeasible
//     (the tableau is not modified).
//  4. Pivot(r, c), Iterations++.
//
// The observer, if any, sees a snapshot at init, before every pivot and at
// termination.
//
// Errors: ErrBadMaxIterations, ErrBadTolerance, context cancellation,
// numeric failures from Pivot. Terminal outcomes are reported via
// Result.Status with a nil error.
//
// Complexity: O(k·(m+1)·(n+m)) for k pivots.
func (t *Tableau) Solve(opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}
	ctx := o.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	obs, tol := o.Observer, o.Tolerance

	if obs != nil {
		obs.OnInit(t.Clone())
	}

	var (
		res   Result
		iters int
		r, c  int
	)
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("simplex: after %d iterations: %w", iters, err)
		}

		r = t.LeavingRow()
		if t.RHS[r] >= -tol {
			res = t.result(StatusOptimal, iters, tol)
			break
		}
		if iters >= o.MaxIterations {
			res = t.result(StatusIterationLimit, iters, tol)
			break
		}

		ratios := t.Ratios(r, tol)
		c = EnteringColumn(ratios)
		if c < 0 {
			res = t.result(StatusInfeasible, iters, tol)
			break
		}

		if obs != nil {
			obs.OnPivot(t.Clone(), Step{
				Iteration: iters + 1,
				Row:       r,
				Col:       c,
				Pivot:     t.Coef(r, c),
				Ratios:    ratios,
				Leaving:   t.Basis[r],
				Entering:  t.ColumnLabel(c),
			})
		}
		if err := t.Pivot(r, c); err != nil {
			return Result{}, err
		}
		iters++
	}

	if obs != nil {
		obs.OnTerminal(t.Clone(), res)
	}
	logResult(o.Logger, res)

	return res, nil
}

// result assembles the terminal Result for status s.
func (t *Tableau) result(s Status, iters int, tol float64) Result {
	res := Result{
		Status:     s,
		Basis:      append([]string(nil), t.Basis...),
		Iterations: iters,
	}
	if s == StatusOptimal {
		res.Objective = t.Objective()
		res.Values = t.Values(tol)
		res.Duals = t.Duals()
		res.Certified = t.DualFeasible(tol)
	}

	return res
}

func (o Options) validate() error {
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIterations, o.MaxIterations)
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return fmt.Errorf("%w: got %g", ErrBadTolerance, o.Tolerance)
	}

	return nil
}

func logResult(l logr.Logger, r Result) {
	if r.Status == StatusOptimal {
		l.V(1).Info("Dual simplex converged", "iterations", r.Iterations, "objective", r.Objective)
		if !r.Certified {
			l.V(1).Info("Optimum not certified: cost row has positive entries", "duals", r.Duals)
		}
		return
	}
	l.V(1).Info("Dual simplex stopped", "status", r.Status.String(), "iterations", r.Iterations)
}
