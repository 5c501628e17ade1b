// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"

	"github.com/katalvlaran/dualplex/matrix"
)

// SplitMap records where each original variable lives in a split model.
// Columns[j] holds the 0-based split column(s) of original variable j+1:
// one entry for a restricted variable, two (x', x'') for a free one.
type SplitMap struct {
	Columns [][]int
}

// Width returns the number of columns of the split model.
func (s SplitMap) Width() int {
	var w int
	for _, cols := range s.Columns {
		w += len(cols)
	}

	return w
}

// Recover maps values of the split variables back onto the original ones:
// x_j = x_j' − x_j'' for free variables, x_j unchanged otherwise.
// Errors: ErrShapeMismatch when len(values) ≠ Width().
func (s SplitMap) Recover(values []float64) ([]float64, error) {
	if len(values) != s.Width() {
		return nil, fmt.Errorf("%w: %d split values, want %d", ErrShapeMismatch, len(values), s.Width())
	}
	out := make([]float64, len(s.Columns))
	for j, cols := range s.Columns {
		out[j] = values[cols[0]]
		if len(cols) == 2 {
			out[j] -= values[cols[1]]
		}
	}

	return out, nil
}

// Split replaces every unrestricted variable x_i by x_i' − x_i'' with
// x_i', x_i'' ≥ 0.
//
// Implementation:
//   - Stage 1: validate m.
//   - Stage 2: walk variables in order; a restricted variable keeps one
//     column, a free one emits two adjacent columns with coefficients +a, −a
//     in the objective and in every constraint row.
//   - Stage 3: build the new model (Unrestricted is empty afterwards).
//
// Behavior highlights:
//   - No-op clone when there are no free variables.
//   - Relations, RHS and direction are copied unchanged.
//
// Returns:
//   - the split model and the SplitMap needed to reconstruct x.
//
// Complexity: O(m·n').
func Split(m *Model) (*Model, SplitMap, error) {
	if err := m.Validate(); err != nil {
		return nil, SplitMap{}, err
	}
	n := m.NumVariables()

	// Stage 2: column plan.
	plan := SplitMap{Columns: make([][]int, n)}
	var next int
	for j := 0; j < n; j++ {
		if m.IsUnrestricted(j + 1) {
			plan.Columns[j] = []int{next, next + 1}
			next += 2
			continue
		}
		plan.Columns[j] = []int{next}
		next++
	}
	if next == n {
		out := m.Clone()
		out.Unrestricted = nil
		return out, plan, nil
	}

	objective := make([]float64, next)
	for j, cols := range plan.Columns {
		objective[cols[0]] = m.Objective[j]
		if len(cols) == 2 {
			objective[cols[1]] = neg(m.Objective[j])
		}
	}

	rows := m.NumConstraints()
	a, err := matrix.NewDense(rows, next)
	if err != nil {
		return nil, SplitMap{}, wrapMatrixErr("Split", err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j, cols := range plan.Columns {
			v, _ = m.Constraints.At(i, j) // in range by construction
			_ = a.Set(i, cols[0], v)
			if len(cols) == 2 {
				_ = a.Set(i, cols[1], neg(v))
			}
		}
	}

	return &Model{
		Objective:   objective,
		Constraints: a,
		Relations:   append([]Relation(nil), m.Relations...),
		RHS:         cloneVec(m.RHS),
		Direction:   m.Direction,
	}, plan, nil
}
