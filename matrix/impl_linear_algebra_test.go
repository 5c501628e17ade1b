// Package matrix_test contains unit tests for the non-mutating kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/dualplex/matrix"
	"github.com/stretchr/testify/require"
)

// TestTranspose checks shape flip, values and input immutability.
func TestTranspose(t *testing.T) {
	a, err := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at.ToRows())
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a.ToRows()) // operand untouched

	att, err := matrix.Transpose(at) // involution
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), att.ToRows())
}

// TestTransposeNil ensures nil operands are rejected.
func TestTransposeNil(t *testing.T) {
	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var d *matrix.Dense // typed nil inside the interface
	_, err = matrix.Transpose(d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScale covers negation, the identity factor and immutability.
func TestScale(t *testing.T) {
	a, err := matrix.NewDenseFrom([][]float64{{1, -2}, {0, 4}})
	require.NoError(t, err)

	neg, err := matrix.Scale(a, -1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1, 2}, {0, -4}}, neg.ToRows())
	require.Equal(t, [][]float64{{1, -2}, {0, 4}}, a.ToRows())

	same, err := matrix.Scale(a, 1)
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), same.ToRows())

	_, err = matrix.Scale(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec covers the product and its length contract.
func TestMatVec(t *testing.T) {
	a, err := matrix.NewDenseFrom([][]float64{{1, 1}, {1, -1}})
	require.NoError(t, err)

	y, err := matrix.MatVec(a, []float64{4, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
