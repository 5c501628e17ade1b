// Package lp_test contains unit tests for the primal→dual conversion.
package lp_test

import (
	"testing"

	"github.com/katalvlaran/dualplex/lp"
	"github.com/stretchr/testify/require"
)

func TestDual_Textbook(t *testing.T) {
	std, _, err := lp.Standardize(textbook(t))
	require.NoError(t, err)

	d, err := lp.Dual(std)
	require.NoError(t, err)

	require.Equal(t, lp.Min, d.Direction)
	require.Equal(t, 2, d.NumVariables())   // one dual variable per primal row
	require.Equal(t, 2, d.NumConstraints()) // one dual row per primal variable
	require.Equal(t, []float64{4, -1}, d.Objective)
	require.Equal(t, []float64{3, 2}, d.RHS)
	require.Equal(t, []lp.Relation{lp.GE, lp.GE}, d.Relations)
	require.Equal(t, [][]float64{{1, -1}, {1, 1}}, d.Rows())
}

func TestDual_RectangularShape(t *testing.T) {
	m, err := lp.New(
		[]float64{1, 2, 3},
		[][]float64{{1, 0, 2}, {0, 1, 1}},
		[]lp.Relation{lp.LE, lp.LE},
		[]float64{5, 6},
		lp.Max,
	)
	require.NoError(t, err)

	d, err := lp.Dual(m)
	require.NoError(t, err)
	require.Equal(t, 2, d.NumVariables())
	require.Equal(t, 3, d.NumConstraints())
	require.Equal(t, [][]float64{{1, 0}, {0, 1}, {2, 1}}, d.Rows())
}

// TestDual_Involution: standardizing a dual and dualizing again gives back
// the standardized primal.
func TestDual_Involution(t *testing.T) {
	std, _, err := lp.Standardize(textbook(t))
	require.NoError(t, err)
	d, err := lp.Dual(std)
	require.NoError(t, err)
	sd, _, err := lp.Standardize(d)
	require.NoError(t, err)
	dd, err := lp.Dual(sd)
	require.NoError(t, err)

	// dd: min −c·x s.t. −A x ≥ −b, which standardizes back to max c·x s.t. A x ≤ b.
	back, flipped, err := lp.Standardize(dd)
	require.NoError(t, err)
	require.True(t, flipped)
	require.Equal(t, std.Rows(), back.Rows())
	require.Equal(t, std.RHS, back.RHS)
	require.Equal(t, std.Objective, back.Objective)
}

func TestDual_Nil(t *testing.T) {
	_, err := lp.Dual(nil)
	require.ErrorIs(t, err, lp.ErrNilModel)
}
