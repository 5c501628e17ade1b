// Package simplex_test provides runnable examples for the dual simplex.
package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/dualplex/lp"
	"github.com/katalvlaran/dualplex/simplex"
)

// ExampleSolve runs the dual simplex on a standardized dual with negative RHS.
func ExampleSolve() {
	// 1) max -4y1 + y2  s.t.  -y1 + y2 <= -3,  -y1 - y2 <= -2
	std, err := lp.New(
		[]float64{-4, 1},
		[][]float64{{-1, 1}, {-1, -1}},
		[]lp.Relation{lp.LE, lp.LE},
		[]float64{-3, -2},
		lp.Max,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Print every pivot as it happens.
	trace := simplex.ObserverFuncs{
		Pivot: func(_ *simplex.Tableau, s simplex.Step) {
			fmt.Printf("pivot %d: %s leaves, %s enters\n", s.Iteration, s.Leaving, s.Entering)
		},
	}

	res, err := simplex.Solve(std, simplex.WithObserver(trace))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Status, res.Objective, res.Values, res.Duals)
	// Output:
	// pivot 1: S_1 leaves, X_1 enters
	// Optimal -12 [3 0] [4 0]
}
