// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/dualplex/matrix"
)

// Model is a linear program
//
//	opt  Objective·x
//	s.t. Constraints[i]·x  Relations[i]  RHS[i]   for every row i
//	     x_j ≥ 0                                   for j ∉ Unrestricted
//
// Invariant (checked by Validate):
//
//	len(Objective) == Constraints.Cols()
//	len(Relations) == len(RHS) == Constraints.Rows()
//
// Models are treated as values: the rewrites in this package never mutate
// their input and always return a fresh *Model.
type Model struct {
	Objective    []float64     // c, one coefficient per variable
	Constraints  *matrix.Dense // A, rows = constraints, cols = variables
	Relations    []Relation    // one per row
	RHS          []float64     // b, one per row
	Direction    Direction     // Max or Min
	Unrestricted []int         // sorted, de-duplicated 1-based indices
}

// New builds and validates a Model from literal slices.
//
// Implementation:
//   - Stage 1: materialize A via matrix.NewDenseFrom (ragged rows → ErrShapeMismatch).
//   - Stage 2: copy c, relations, b so the caller's slices are not retained.
//   - Stage 3: normalize the unrestricted set (sort, de-duplicate).
//   - Stage 4: Validate.
//
// Complexity: O(m·n).
func New(objective []float64, rows [][]float64, relations []Relation, rhs []float64, dir Direction, opts ...Option) (*Model, error) {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	if len(objective) == 0 || len(rows) == 0 {
		return nil, ErrEmptyModel
	}
	a, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, wrapMatrixErr("New", err)
	}

	m := &Model{
		Objective:    cloneVec(objective),
		Constraints:  a,
		Relations:    append([]Relation(nil), relations...),
		RHS:          cloneVec(rhs),
		Direction:    dir,
		Unrestricted: normalizeIndices(o.Unrestricted),
	}
	if err = m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks the structural invariants of m.
//
// Order (first failure wins):
//  1. m non-nil and A non-nil (ErrNilModel).
//  2. at least one variable and one constraint (ErrEmptyModel).
//  3. sizes consistent (ErrShapeMismatch).
//  4. every relation valid (ErrInvalidRelation).
//  5. direction valid (ErrInvalidDirection).
//  6. unrestricted indices within 1..n (ErrBadUnrestricted).
//  7. every coefficient finite (ErrNaNInf).
//
// Complexity: O(m·n).
func (m *Model) Validate() error {
	if m == nil || m.Constraints == nil {
		return ErrNilModel
	}
	rows, cols := m.Constraints.Shape()
	if len(m.Objective) == 0 || rows == 0 || cols == 0 {
		return ErrEmptyModel
	}
	if len(m.Objective) != cols {
		return fmt.Errorf("%w: objective has %d coefficients, constraints have %d columns", ErrShapeMismatch, len(m.Objective), cols)
	}
	if len(m.Relations) != rows {
		return fmt.Errorf("%w: %d relations for %d constraint rows", ErrShapeMismatch, len(m.Relations), rows)
	}
	if len(m.RHS) != rows {
		return fmt.Errorf("%w: %d right-hand sides for %d constraint rows", ErrShapeMismatch, len(m.RHS), rows)
	}
	for i, r := range m.Relations {
		if !r.Valid() {
			return fmt.Errorf("%w: row %d has %q", ErrInvalidRelation, i+1, string(r))
		}
	}
	if !m.Direction.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, string(m.Direction))
	}
	for _, idx := range m.Unrestricted {
		if idx < 1 || idx > cols {
			return fmt.Errorf("%w: %d not in 1..%d", ErrBadUnrestricted, idx, cols)
		}
	}
	if err := matrix.ValidateFiniteVec(m.Objective); err != nil {
		return fmt.Errorf("objective: %w: %w", ErrNaNInf, err)
	}
	if err := matrix.ValidateFiniteVec(m.RHS); err != nil {
		return fmt.Errorf("rhs: %w: %w", ErrNaNInf, err)
	}
	var finite = true
	m.Constraints.Do(func(_, _ int, v float64) bool {
		finite = !math.IsNaN(v) && !math.IsInf(v, 0)
		return finite
	})
	if !finite {
		return fmt.Errorf("constraints: %w", ErrNaNInf)
	}

	return nil
}

// NumVariables returns n, the number of decision variables.
func (m *Model) NumVariables() int { return len(m.Objective) }

// NumConstraints returns m, the number of constraint rows.
func (m *Model) NumConstraints() int { return len(m.RHS) }

// IsUnrestricted reports whether the 1-based variable j is free.
func (m *Model) IsUnrestricted(j int) bool {
	for _, u := range m.Unrestricted {
		if u == j {
			return true
		}
	}

	return false
}

// IsStandard reports whether m is in canonical form: max, every row <=,
// no free variables.
func (m *Model) IsStandard() bool {
	if m.Direction != Max || len(m.Unrestricted) > 0 {
		return false
	}
	for _, r := range m.Relations {
		if r != LE {
			return false
		}
	}

	return true
}

// HasNegativeRHS reports whether some b_i < 0, i.e. whether the all-slack
// basis is primal infeasible and the dual simplex has work to do.
func (m *Model) HasNegativeRHS() bool {
	for _, v := range m.RHS {
		if v < 0 {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of m.
// Complexity: O(m·n).
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	var a *matrix.Dense
	if m.Constraints != nil {
		a = m.Constraints.CloneDense()
	}

	return &Model{
		Objective:    cloneVec(m.Objective),
		Constraints:  a,
		Relations:    append([]Relation(nil), m.Relations...),
		RHS:          cloneVec(m.RHS),
		Direction:    m.Direction,
		Unrestricted: append([]int(nil), m.Unrestricted...),
	}
}

// Evaluate returns Objective·x.
// Errors: ErrShapeMismatch when len(x) ≠ n.
func (m *Model) Evaluate(x []float64) (float64, error) {
	if len(x) != len(m.Objective) {
		return 0, fmt.Errorf("%w: %d values for %d variables", ErrShapeMismatch, len(x), len(m.Objective))
	}
	var z float64
	for j, c := range m.Objective {
		z += c * x[j]
	}

	return z, nil
}

// Feasible reports whether x satisfies every constraint and every
// non-negativity bound of m within tol.
//
// Complexity: O(m·n).
func (m *Model) Feasible(x []float64, tol float64) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	act, err := matrix.MatVec(m.Constraints, x)
	if err != nil {
		return false, wrapMatrixErr("Feasible", err)
	}
	for j, v := range x {
		if v < -tol && !m.IsUnrestricted(j+1) {
			return false, nil
		}
	}
	for i, lhs := range act {
		switch m.Relations[i] {
		case LE:
			if lhs > m.RHS[i]+tol {
				return false, nil
			}
		case GE:
			if lhs < m.RHS[i]-tol {
				return false, nil
			}
		case EQ:
			if math.Abs(lhs-m.RHS[i]) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

// Rows returns A as freshly allocated row slices.
func (m *Model) Rows() [][]float64 { return m.Constraints.ToRows() }

// wrapMatrixErr maps matrix shape sentinels onto ErrShapeMismatch while
// keeping the original cause reachable through errors.Is.
func wrapMatrixErr(op string, err error) error {
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%s: %w: %w", op, ErrNaNInf, err)
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return fmt.Errorf("%s: %w: %w", op, ErrEmptyModel, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrShapeMismatch, err)
	}
}

// cloneVec copies a float slice (nil stays nil).
func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// negateVec returns −v as a new slice.
func negateVec(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = neg(x)
	}

	return out
}

// neg returns −x without producing a negative zero.
func neg(x float64) float64 { return 0 - x }

// normalizeIndices sorts and de-duplicates idx.
func normalizeIndices(idx []int) []int {
	if len(idx) == 0 {
		return nil
	}
	out := append([]int(nil), idx...)
	sort.Ints(out)
	w := 1
	for r := 1; r < len(out); r++ {
		if out[r] != out[w-1] {
			out[w] = out[r]
			w++
		}
	}

	return out[:w]
}
