// Package lp_test contains unit tests for variable splitting.
package lp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/dualplex/lp"
	"github.com/stretchr/testify/require"
)

func TestSplit_NoUnrestrictedIsClone(t *testing.T) {
	m := textbook(t)
	s, plan, err := lp.Split(m)
	require.NoError(t, err)
	require.NotSame(t, m, s)
	require.Equal(t, m.Objective, s.Objective)
	require.Equal(t, m.Rows(), s.Rows())
	require.Equal(t, [][]int{{0}, {1}}, plan.Columns)
	require.Equal(t, 2, plan.Width())
}

func TestSplit_AdjacentColumns(t *testing.T) {
	// max 1x1 + 2x2 + 3x3, x2 free.
	m, err := lp.New(
		[]float64{1, 2, 3},
		[][]float64{{4, 5, 6}, {7, -8, 9}},
		[]lp.Relation{lp.LE, lp.EQ},
		[]float64{10, 11},
		lp.Min,
		lp.WithUnrestricted(2),
	)
	require.NoError(t, err)

	s, plan, err := lp.Split(m)
	require.NoError(t, err)

	require.Equal(t, []float64{1, 2, -2, 3}, s.Objective)
	want := [][]float64{{4, 5, -5, 6}, {7, -8, 8, 9}}
	if diff := cmp.Diff(want, s.Rows()); diff != "" {
		t.Fatalf("split rows mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, m.Relations, s.Relations)
	require.Equal(t, m.RHS, s.RHS)
	require.Equal(t, lp.Min, s.Direction)
	require.Empty(t, s.Unrestricted)
	require.Equal(t, [][]int{{0}, {1, 2}, {3}}, plan.Columns)

	// input untouched
	require.Equal(t, []float64{1, 2, 3}, m.Objective)
	require.Equal(t, []int{2}, m.Unrestricted)
}

func TestSplitMap_Recover(t *testing.T) {
	plan := lp.SplitMap{Columns: [][]int{{0, 1}, {2}}}

	x, err := plan.Recover([]float64{0, 3, 5}) // x1' = 0, x1'' = 3
	require.NoError(t, err)
	require.Equal(t, []float64{-3, 5}, x)

	_, err = plan.Recover([]float64{1, 2})
	require.ErrorIs(t, err, lp.ErrShapeMismatch)
}

// TestSplit_PreservesFeasibleRegion: any split point maps to a feasible point
// of the original model, and vice versa with the positive/negative parts.
func TestSplit_PreservesFeasibleRegion(t *testing.T) {
	m, err := lp.New(
		[]float64{1, 1},
		[][]float64{{1, 1}, {1, -1}},
		[]lp.Relation{lp.LE, lp.GE},
		[]float64{2, -5},
		lp.Max,
		lp.WithUnrestricted(1),
	)
	require.NoError(t, err)
	s, plan, err := lp.Split(m)
	require.NoError(t, err)

	split := []float64{0, 3, 1} // x1 = -3, x2 = 1
	ok, err := s.Feasible(split, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	x, err := plan.Recover(split)
	require.NoError(t, err)
	ok, err = m.Feasible(x, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)

	zs, _ := s.Evaluate(split)
	zx, _ := m.Evaluate(x)
	require.Equal(t, zx, zs)
}
