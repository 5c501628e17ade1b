// Package lp_test provides runnable examples for the LP rewrites.
package lp_test

import (
	"fmt"

	"github.com/katalvlaran/dualplex/lp"
)

// ExampleStandardize shows '=' and '>=' rows becoming '<=' rows.
func ExampleStandardize() {
	// 1) min x1 + x2  s.t.  x1 + 2x2 = 5,  x1 >= 1
	m, err := lp.New(
		[]float64{1, 1},
		[][]float64{{1, 2}, {1, 0}},
		[]lp.Relation{lp.EQ, lp.GE},
		[]float64{5, 1},
		lp.Min,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Standardize: the equality yields two rows, the objective is negated.
	std, flipped, err := lp.Standardize(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(std.Direction, std.Objective, flipped)
	fmt.Println(std.Rows())
	fmt.Println(std.RHS)
	// Output:
	// max [-1 -1] true
	// [[1 2] [-1 -2] [-1 0]]
	// [5 -5 -1]
}

// ExampleDual builds the dual of a standardized primal.
func ExampleDual() {
	std, err := lp.New(
		[]float64{3, 2},
		[][]float64{{1, 1}, {-1, 1}},
		[]lp.Relation{lp.LE, lp.LE},
		[]float64{4, -1},
		lp.Max,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := lp.Dual(std)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(d.Direction, d.Objective, d.Relations, d.RHS)
	fmt.Println(d.Rows())
	// Output:
	// min [4 -1] [>= >=] [3 2]
	// [[1 -1] [1 1]]
}

// ExampleSplit rewrites a free variable as the difference of two.
func ExampleSplit() {
	m, err := lp.New(
		[]float64{2, 5},
		[][]float64{{1, 3}},
		[]lp.Relation{lp.LE},
		[]float64{7},
		lp.Max,
		lp.WithUnrestricted(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s, plan, err := lp.Split(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	x, _ := plan.Recover([]float64{0, 2, 3})

	fmt.Println(s.Objective, s.Rows(), x)
	// Output:
	// [2 -2 5] [[1 -1 3]] [-2 3]
}
