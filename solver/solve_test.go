// Package solver_test contains end-to-end tests of the primal and dual
// pipelines, including an independent strong-duality check.
package solver_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dualplex/lp"
	"github.com/katalvlaran/dualplex/simplex"
	"github.com/katalvlaran/dualplex/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	golp "gonum.org/v1/gonum/optimize/convex/lp"
)

const eps = 1e-9

func mustModel(t *testing.T, c []float64, rows [][]float64, rel []lp.Relation, rhs []float64, dir lp.Direction, opts ...lp.Option) *lp.Model {
	t.Helper()
	m, err := lp.New(c, rows, rel, rhs, dir, opts...)
	require.NoError(t, err)

	return m
}

// textbook is max 3x1+2x2 s.t. x1+x2<=4, x1-x2>=1 (optimum x=(4,0), Z=12).
func textbook(t *testing.T) *lp.Model {
	t.Helper()

	return mustModel(t, []float64{3, 2}, [][]float64{{1, 1}, {1, -1}},
		[]lp.Relation{lp.LE, lp.GE}, []float64{4, 1}, lp.Max)
}

// ------------------------------------------------------------------------
// 1. Primal pipeline
// ------------------------------------------------------------------------

func TestSolve_TextbookPrimal(t *testing.T) {
	rep, err := solver.Solve(textbook(t), solver.Primal)
	require.NoError(t, err)

	// Stages
	require.Equal(t, 2, rep.StandardPrimal.NumConstraints())
	require.True(t, rep.StandardPrimal.IsStandard())
	require.Equal(t, []float64{4, -1}, rep.StandardPrimal.RHS)

	require.Equal(t, 2, rep.Dual.NumVariables())
	require.Equal(t, 2, rep.Dual.NumConstraints())
	require.Equal(t, []lp.Relation{lp.GE, lp.GE}, rep.Dual.Relations)
	require.Equal(t, lp.Min, rep.Dual.Direction)

	require.Equal(t, []float64{-4, 1}, rep.StandardDual.Objective)
	require.Equal(t, []float64{-3, -2}, rep.StandardDual.RHS)

	// Outcome
	require.False(t, rep.Skipped)
	require.Equal(t, simplex.StatusOptimal, rep.Status())
	require.Equal(t, []solver.Flip{{Stage: solver.StageStandardDual}}, rep.Flips)
	require.Equal(t, 12.0, rep.Objective)
	require.Equal(t, []float64{4, 0}, rep.PrimalValues)
	require.Equal(t, []float64{3, 0}, rep.DualValues)
	require.True(t, rep.Result.Certified)

	z, err := textbook(t).Evaluate(rep.PrimalValues)
	require.NoError(t, err)
	require.Equal(t, rep.Objective, z)
}

func TestSolve_MinPrimalTwoFlips(t *testing.T) {
	// min x1 - x2 s.t. x1 + x2 <= 3 → x = (0, 3), value -3.
	m := mustModel(t, []float64{1, -1}, [][]float64{{1, 1}}, []lp.Relation{lp.LE}, []float64{3}, lp.Min)

	rep, err := solver.Solve(m, solver.Primal)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, rep.Status())
	require.Len(t, rep.Flips, 2)
	require.Equal(t, solver.StageStandardPrimal, rep.Flips[0].Stage)
	require.Equal(t, -3.0, rep.Result.Objective) // max-form value of the standardized dual
	require.Equal(t, -3.0, rep.Objective)
	require.Equal(t, []float64{0, 3}, rep.PrimalValues)
}

func TestSolve_Equality(t *testing.T) {
	// max 2x1 + x2 s.t. x1 + x2 = 4, x1 <= 3 → x = (3, 1), Z = 7.
	m := mustModel(t, []float64{2, 1}, [][]float64{{1, 1}, {1, 0}},
		[]lp.Relation{lp.EQ, lp.LE}, []float64{4, 3}, lp.Max)

	rep, err := solver.Solve(m, solver.Primal)
	require.NoError(t, err)
	require.Equal(t, []float64{4, -4, 3}, rep.StandardPrimal.RHS) // '=' doubled
	require.Equal(t, simplex.StatusOptimal, rep.Status())
	require.Equal(t, 2, rep.Result.Iterations)
	require.Equal(t, 7.0, rep.Objective)
	require.Equal(t, []float64{3, 1}, rep.PrimalValues)
}

func TestSolve_FreeVariable(t *testing.T) {
	// max x1 s.t. x1 + x2 <= 2, x1 - x2 <= 4, x2 free → x = (3, -1), Z = 3.
	m := mustModel(t, []float64{1, 0}, [][]float64{{1, 1}, {1, -1}},
		[]lp.Relation{lp.LE, lp.LE}, []float64{2, 4}, lp.Max, lp.WithUnrestricted(2))

	rep, err := solver.Solve(m, solver.Primal)
	require.NoError(t, err)
	require.Equal(t, 3, rep.StandardPrimal.NumVariables()) // x1, x2', x2''
	require.Equal(t, [][]int{{0}, {1, 2}}, rep.Split.Columns)
	require.Equal(t, simplex.StatusOptimal, rep.Status())
	require.Equal(t, 3.0, rep.Objective)
	require.Equal(t, []float64{3, -1}, rep.PrimalValues)

	ok, err := m.Feasible(rep.PrimalValues, eps)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSolve_UncertifiedWhenDualStartInfeasible(t *testing.T) {
	// min 2x1+3x2-x3 s.t. x1+x2+x3 = 6, x1-x2 >= -2, x2+x3 <= 5, x3 free.
	// The standardized dual has positive costs, so the run ends with a
	// non-negative RHS that does not prove optimality (true optimum is -3).
	m := mustModel(t, []float64{2, 3, -1},
		[][]float64{{1, 1, 1}, {1, -1, 0}, {0, 1, 1}},
		[]lp.Relation{lp.EQ, lp.GE, lp.LE}, []float64{6, -2, 5}, lp.Min, lp.WithUnrestricted(3))

	rep, err := solver.Solve(m, solver.Primal)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusOptimal, rep.Status())
	require.False(t, rep.Result.Certified)

	ok, err := m.Feasible(rep.PrimalValues, eps)
	require.NoError(t, err)
	require.False(t, ok, "x = %v", rep.PrimalValues)
}

func TestSolve_SkippedWhenDualFeasibleRHS(t *testing.T) {
	// min x1 + x2 with >= rows: the standardized dual has RHS (1, 1).
	m := mustModel(t, []float64{1, 1}, [][]float64{{1, 2}, {3, 1}},
		[]lp.Relation{lp.GE, lp.GE}, []float64{4, 6}, lp.Min)

	rep, err := solver.Solve(m, solver.Primal)
	require.NoError(t, err)
	require.True(t, rep.Skipped)
	require.Equal(t, simplex.StatusSkipped, rep.Status())
	require.Nil(t, rep.PrimalValues)
	require.NotNil(t, rep.StandardDual) // stages are still reported
}

func TestSolve_InfeasibleDual(t *testing.T) {
	// max x1 s.t. -x1 <= 1 is unbounded, so its dual has no feasible point.
	m := mustModel(t, []float64{1}, [][]float64{{-1}}, []lp.Relation{lp.LE}, []float64{1}, lp.Max)

	rep, err := solver.Solve(m, solver.Primal)
	require.NoError(t, err)
	require.Equal(t, simplex.StatusInfeasible, rep.Status())
	require.Nil(t, rep.PrimalValues)
	require.Nil(t, rep.DualValues)
}

func TestSolve_IterationLimitForwarded(t *testing.T) {
	m := mustModel(t, []float64{2, 1}, [][]float64{{1, 1}, {1, 0}},
		[]lp.Relation{lp.EQ, lp.LE}, []float64{4, 3}, lp.Max)

	rep, err := solver.Solve(m, solver.Primal,
		solver.WithSimplexOptions(simplex.WithMaxIterations(1)))
	require.NoError(t, err)
	require.Equal(t, simplex.StatusIterationLimit, rep.Status())
	require.Equal(t, "IterationLimitExceeded", rep.Status().String())
}

// ------------------------------------------------------------------------
// 2. Dual pipeline
// ------------------------------------------------------------------------

func TestSolve_DualFormInput(t *testing.T) {
	// The dual of the textbook problem: min 4y1 - y2 s.t. y1-y2>=3, y1+y2>=2.
	m := mustModel(t, []float64{4, -1}, [][]float64{{1, -1}, {1, 1}},
		[]lp.Relation{lp.GE, lp.GE}, []float64{3, 2}, lp.Min)

	var seen []solver.Stage
	rep, err := solver.Solve(m, solver.Dual, solver.WithStageObserver(
		solver.StageFunc(func(s solver.Stage, _ *lp.Model) { seen = append(seen, s) })))
	require.NoError(t, err)

	require.Equal(t, []solver.Stage{solver.StageStandardDual}, seen)
	require.Nil(t, rep.StandardPrimal)
	require.Nil(t, rep.Dual)
	require.Len(t, rep.Flips, 1)
	require.Equal(t, simplex.StatusOptimal, rep.Status())
	require.Equal(t, 12.0, rep.Objective) // same value as the primal, by strong duality
	require.Equal(t, []float64{3, 0}, rep.DualValues)
	require.Equal(t, []float64{4, 0}, rep.PrimalValues)
}

func TestSolve_DualFormMaxNoFlip(t *testing.T) {
	// max -4y1 + y2 in '<=' form is already standard: no flip, value -12.
	m := mustModel(t, []float64{-4, 1}, [][]float64{{-1, 1}, {-1, -1}},
		[]lp.Relation{lp.LE, lp.LE}, []float64{-3, -2}, lp.Max)

	rep, err := solver.Solve(m, solver.Dual)
	require.NoError(t, err)
	require.Empty(t, rep.Flips)
	require.Equal(t, -12.0, rep.Objective)
}

// ------------------------------------------------------------------------
// 3. Errors and observers
// ------------------------------------------------------------------------

func TestSolve_StructuralErrorsEmitNothing(t *testing.T) {
	bad := textbook(t)
	bad.RHS = []float64{4} // shape mismatch after construction

	var calls int
	obs := solver.StageFunc(func(solver.Stage, *lp.Model) { calls++ })
	_, err := solver.Solve(bad, solver.Primal, solver.WithStageObserver(obs))
	require.ErrorIs(t, err, lp.ErrShapeMismatch)
	require.Zero(t, calls)

	bad = textbook(t)
	bad.Relations[1] = "=>"
	_, err = solver.Solve(bad, solver.Primal, solver.WithStageObserver(obs))
	require.ErrorIs(t, err, lp.ErrInvalidRelation)
	require.Zero(t, calls)

	_, err = solver.Solve(textbook(t), solver.Form(7))
	require.ErrorIs(t, err, solver.ErrUnknownForm)

	_, err = solver.Solve(nil, solver.Primal)
	require.ErrorIs(t, err, lp.ErrNilModel)
}

func TestSolve_StageOrder(t *testing.T) {
	var seen []string
	obs := solver.StageFunc(func(s solver.Stage, m *lp.Model) {
		seen = append(seen, fmt.Sprintf("%s/%s", s, m.Direction))
	})
	_, err := solver.Solve(textbook(t), solver.Primal, solver.WithStageObserver(obs))
	require.NoError(t, err)
	require.Equal(t, []string{"Standard Primal/max", "Dual/min", "Standard Dual/max"}, seen)
}

func TestSolve_SimplexObserverForwarded(t *testing.T) {
	var pivots int
	obs := simplex.ObserverFuncs{Pivot: func(*simplex.Tableau, simplex.Step) { pivots++ }}
	_, err := solver.Solve(textbook(t), solver.Primal,
		solver.WithSimplexOptions(simplex.WithObserver(obs)))
	require.NoError(t, err)
	require.Equal(t, 1, pivots)
}

func TestParseForm(t *testing.T) {
	f, err := solver.ParseForm(" Primal ")
	require.NoError(t, err)
	assert.Equal(t, solver.Primal, f)

	f, err = solver.ParseForm("DUAL")
	require.NoError(t, err)
	assert.Equal(t, solver.Dual, f)

	_, err = solver.ParseForm("both")
	require.ErrorIs(t, err, solver.ErrUnknownForm)

	assert.Equal(t, "primal", solver.Primal.String())
	assert.Equal(t, "Form(9)", solver.Form(9).String())
	assert.Equal(t, "Standard Dual", solver.StageStandardDual.String())
}

// ------------------------------------------------------------------------
// 4. Strong duality against an independent solver
// ------------------------------------------------------------------------

// oracle solves max c·x s.t. Ax <= b (b >= 0), x >= 0 with gonum's primal
// simplex on the slack-augmented equality form and returns the maximum.
func oracle(t *testing.T, c []float64, rows [][]float64, b []float64) float64 {
	t.Helper()
	m, n := len(rows), len(c)
	a := mat.NewDense(m, n+m, nil)
	for i, row := range rows {
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, n+i, 1)
	}
	cost := make([]float64, n+m)
	for j, v := range c {
		cost[j] = -v // gonum minimizes
	}
	opt, _, err := golp.Simplex(cost, a, b, 0, nil)
	require.NoError(t, err)

	return -opt
}

func TestSolve_StrongDualityOracle(t *testing.T) {
	cases := []struct {
		name string
		c    []float64
		rows [][]float64
		b    []float64
	}{
		{"product mix", []float64{3, 5}, [][]float64{{1, 0}, {0, 2}, {3, 2}}, []float64{4, 12, 18}},
		{"cover dual", []float64{1, 1}, [][]float64{{1, 2}, {3, 1}}, []float64{4, 6}},
		{"three vars", []float64{5, 4, 3}, [][]float64{{2, 3, 1}, {4, 1, 2}, {3, 4, 2}}, []float64{5, 11, 8}},
		{"two rows", []float64{2, 3, 4}, [][]float64{{3, 2, 1}, {2, 5, 3}}, []float64{10, 15}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rel := make([]lp.Relation, len(tc.rows))
			for i := range rel {
				rel[i] = lp.LE
			}
			m := mustModel(t, tc.c, tc.rows, rel, tc.b, lp.Max)

			rep, err := solver.Solve(m, solver.Primal)
			require.NoError(t, err)
			require.Equal(t, simplex.StatusOptimal, rep.Status())
			require.True(t, rep.Result.Certified) // b >= 0: the dual starts dual feasible

			want := oracle(t, tc.c, tc.rows, tc.b)
			require.InDelta(t, want, rep.Objective, 1e-6)

			// The recovered primal point is feasible and attains the dual value.
			ok, err := m.Feasible(rep.PrimalValues, 1e-6)
			require.NoError(t, err)
			require.True(t, ok, "x = %v", rep.PrimalValues)
			z, err := m.Evaluate(rep.PrimalValues)
			require.NoError(t, err)
			require.InDelta(t, rep.Objective, z, 1e-6)

			// The dual point is feasible for the raw dual and attains the same value.
			ok, err = rep.Dual.Feasible(rep.DualValues, 1e-6)
			require.NoError(t, err)
			require.True(t, ok, "y = %v", rep.DualValues)
			w, err := rep.Dual.Evaluate(rep.DualValues)
			require.NoError(t, err)
			require.True(t, scalar.EqualWithinAbs(w, z, 1e-6), "dual %g primal %g", w, z)
		})
	}
}
