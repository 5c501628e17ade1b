// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/dualplex/lp"
	"github.com/katalvlaran/dualplex/simplex"
)

// Solve runs the pipeline selected by form on m.
//
// Implementation:
//   - Stage 1: validate m and build every intermediate model; any error
//     aborts before an observer sees anything.
//   - Stage 2: emit the models to the StageObserver in pipeline order.
//   - Stage 3: skip when the standardized dual has no negative RHS,
//     otherwise run simplex.Solve on it.
//   - Stage 4: sign-correct the objective from the recorded flips and map
//     the tableau values back onto the input variables.
//
// Errors: lp validation sentinels, ErrUnknownForm, simplex option errors,
// context cancellation. Terminal outcomes are reported in the Report.
//
// Complexity: O(m·n) for the rewrites plus the simplex run.
func Solve(m *lp.Model, form Form, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var (
		rep *Report
		err error
	)
	switch form {
	case Primal:
		rep, err = primalStages(m)
	case Dual:
		rep, err = dualStages(m)
	default:
		return nil, fmt.Errorf("Solve: %w: %d", ErrUnknownForm, int(form))
	}
	if err != nil {
		return nil, err
	}
	log := o.Logger.WithValues("form", form.String())

	for _, st := range rep.stages() {
		log.V(1).Info("Stage ready", "stage", st.stage.String(),
			"variables", st.model.NumVariables(), "constraints", st.model.NumConstraints())
		if o.Stages != nil {
			o.Stages.OnStage(st.stage, st.model)
		}
	}

	if !rep.StandardDual.HasNegativeRHS() {
		rep.Skipped = true
		rep.Result = simplex.Result{Status: simplex.StatusSkipped}
		log.V(1).Info("All right-hand sides are non-negative, dual simplex not applied")
		return rep, nil
	}

	sopts := append([]simplex.Option{simplex.WithLogger(o.Logger)}, o.Simplex...)
	res, err := simplex.Solve(rep.StandardDual, sopts...)
	if err != nil {
		return nil, err
	}
	rep.Result = res
	rep.Objective = res.Objective
	if len(rep.Flips)%2 == 1 {
		rep.Objective = 0 - res.Objective
	}
	if res.Status != simplex.StatusOptimal {
		log.V(1).Info("No optimum", "status", res.Status.String())
		return rep, nil
	}

	if err = rep.mapValues(); err != nil {
		return nil, err
	}
	log.V(1).Info("Optimum found", "objective", rep.Objective, "flips", len(rep.Flips))

	return rep, nil
}

// primalStages builds Split → Standardize → Dual → Standardize.
func primalStages(m *lp.Model) (*Report, error) {
	split, plan, err := lp.Split(m)
	if err != nil {
		return nil, err
	}
	rep := &Report{Form: Primal, Split: plan}

	std, flipped, err := lp.Standardize(split)
	if err != nil {
		return nil, err
	}
	rep.StandardPrimal = std
	if flipped {
		rep.Flips = append(rep.Flips, Flip{Stage: StageStandardPrimal})
	}

	if rep.Dual, err = lp.Dual(std); err != nil {
		return nil, err
	}

	stdDual, flipped, err := lp.Standardize(rep.Dual)
	if err != nil {
		return nil, err
	}
	rep.StandardDual = stdDual
	if flipped {
		rep.Flips = append(rep.Flips, Flip{Stage: StageStandardDual})
	}

	return rep, nil
}

// dualStages builds Split → Standardize.
func dualStages(m *lp.Model) (*Report, error) {
	split, plan, err := lp.Split(m)
	if err != nil {
		return nil, err
	}
	rep := &Report{Form: Dual, Split: plan}

	stdDual, flipped, err := lp.Standardize(split)
	if err != nil {
		return nil, err
	}
	rep.StandardDual = stdDual
	if flipped {
		rep.Flips = append(rep.Flips, Flip{Stage: StageStandardDual})
	}

	return rep, nil
}

// mapValues fills PrimalValues and DualValues from an optimal Result.
func (r *Report) mapValues() error {
	var err error
	switch r.Form {
	case Primal:
		r.DualValues = append([]float64(nil), r.Result.Values...)
		r.PrimalValues, err = r.Split.Recover(r.Result.Duals)
	case Dual:
		r.DualValues, err = r.Split.Recover(r.Result.Values)
		r.PrimalValues = append([]float64(nil), r.Result.Duals...)
	}
	if err != nil {
		return fmt.Errorf("Solve: %w", err)
	}

	return nil
}

type stagedModel struct {
	stage Stage
	model *lp.Model
}

// stages lists the models of r in emission order.
func (r *Report) stages() []stagedModel {
	var out []stagedModel
	if r.StandardPrimal != nil {
		out = append(out, stagedModel{StageStandardPrimal, r.StandardPrimal})
	}
	if r.Dual != nil {
		out = append(out, stagedModel{StageDual, r.Dual})
	}

	return append(out, stagedModel{StageStandardDual, r.StandardDual})
}
