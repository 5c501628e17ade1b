// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dualplex/lp"
	"github.com/katalvlaran/dualplex/lpfile"
	"github.com/katalvlaran/dualplex/simplex"
	"github.com/katalvlaran/dualplex/solver"
)

const rule = "===================="

// render prints every stage as a YAML document followed by a plain
// summary of the outcome. Each stage document is a valid problem file.
func render(w io.Writer, rep *solver.Report) error {
	stages := []struct {
		stage solver.Stage
		model *lp.Model
		form  solver.Form
	}{
		{solver.StageStandardPrimal, rep.StandardPrimal, solver.Primal},
		{solver.StageDual, rep.Dual, solver.Dual},
		{solver.StageStandardDual, rep.StandardDual, solver.Dual},
	}
	for _, st := range stages {
		if st.model == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", rule, st.stage, rule); err != nil {
			return err
		}
		if err := lpfile.FromModel(st.model, st.form).Encode(w); err != nil {
			return err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Result %s\n", rule, rule)
	fmt.Fprintf(&b, "Status: %s\n", rep.Status())
	switch rep.Status() {
	case simplex.StatusSkipped:
		b.WriteString("All right-hand sides of the standard dual are non-negative; dual simplex not applied.\n")
	case simplex.StatusInfeasible:
		b.WriteString("No feasible solution exists.\n")
	case simplex.StatusIterationLimit:
		fmt.Fprintf(&b, "Stopped after %d iterations (possible cycling).\n", rep.Result.Iterations)
	case simplex.StatusOptimal:
		fmt.Fprintf(&b, "Iterations: %d\n", rep.Result.Iterations)
		fmt.Fprintf(&b, "Basis: %s\n", strings.Join(rep.Result.Basis, " "))
		writeValues(&b, "y", rep.DualValues)
		writeValues(&b, "x", rep.PrimalValues)
		label := "Optimal Primal Z"
		if rep.Form == solver.Dual {
			label = "Optimal Standard Dual Z"
		}
		fmt.Fprintf(&b, "%s = %.3f\n", label, rep.Objective)
		if !rep.Result.Certified {
			b.WriteString("Warning: the final cost row is not dual feasible; this optimum is not certified.\n")
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func writeValues(b *strings.Builder, name string, vals []float64) {
	for i, v := range vals {
		fmt.Fprintf(b, "%s%d = %.3f\n", name, i+1, v+0) // +0 folds -0
	}
}
