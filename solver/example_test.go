// Package solver_test provides runnable examples for the full pipeline.
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/dualplex/lp"
	"github.com/katalvlaran/dualplex/solver"
)

// ExampleSolve solves a primal through its standardized dual.
func ExampleSolve() {
	// 1) max 3x1 + 2x2  s.t.  x1 + x2 <= 4,  x1 - x2 >= 1,  x >= 0
	m, err := lp.New(
		[]float64{3, 2},
		[][]float64{{1, 1}, {1, -1}},
		[]lp.Relation{lp.LE, lp.GE},
		[]float64{4, 1},
		lp.Max,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Print each intermediate model as it is produced.
	stages := solver.StageFunc(func(s solver.Stage, m *lp.Model) {
		fmt.Printf("%s: %s %v\n", s, m.Direction, m.Objective)
	})

	rep, err := solver.Solve(m, solver.Primal, solver.WithStageObserver(stages))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(rep.Status(), rep.Objective, rep.PrimalValues, len(rep.Flips))
	// Output:
	// Standard Primal: max [3 2]
	// Dual: min [4 -1]
	// Standard Dual: max [-4 1]
	// Optimal 12 [4 0] 1
}
