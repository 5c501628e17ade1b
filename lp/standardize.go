// SPDX-License-Identifier: MIT

package lp

import (
	"github.com/katalvlaran/dualplex/matrix"
)

// Standardize rewrites m into max-form with every constraint <=.
//
// Row rules, applied in original row order:
//
//	<=  copied unchanged
//	=   emitted unchanged as <=, immediately followed by its negation (−a, −b)
//	>=  negated (−a, −b) and emitted as <=
//
// A min objective is negated and the output direction is Max; flipped
// reports that this happened, so the caller can sign-correct the final
// objective value. The row count of the result is m.NumConstraints()
// plus the number of '=' rows.
//
// The same function standardizes a dual: a min dual with '>=' rows comes
// out with negated objective, negated rows and negated RHS, all <=.
//
// Free variables are carried over untouched; split them first when the
// result feeds the tableau.
//
// Errors: structural errors from Validate; nothing else.
// Complexity: O(m·n).
func Standardize(m *Model) (std *Model, flipped bool, err error) {
	if err = m.Validate(); err != nil {
		return nil, false, err
	}

	// 1) Count '=' and '>=' rows to size the output.
	rows, cols := m.Constraints.Shape()
	out, ge := rows, 0
	for _, r := range m.Relations {
		switch r {
		case EQ:
			out++
		case GE:
			ge++
		}
	}

	objective := cloneVec(m.Objective)
	if m.Direction == Min {
		objective = negateVec(m.Objective)
		flipped = true
	}

	// 2) All rows '>=' (the shape of every dual): negate the whole block.
	if ge == rows {
		negA, err := matrix.Scale(m.Constraints, -1)
		if err != nil {
			return nil, false, wrapMatrixErr("Standardize", err)
		}
		rel := make([]Relation, rows)
		for i := range rel {
			rel[i] = LE
		}

		return &Model{
			Objective:    objective,
			Constraints:  negA,
			Relations:    rel,
			RHS:          negateVec(m.RHS),
			Direction:    Max,
			Unrestricted: append([]int(nil), m.Unrestricted...),
		}, flipped, nil
	}

	a, err := matrix.NewDense(out, cols)
	if err != nil {
		return nil, false, wrapMatrixErr("Standardize", err)
	}
	rhs := make([]float64, out)
	rel := make([]Relation, out)

	// 3) Mixed rows: emit one by one.
	var src []float64
	k := 0
	for i := 0; i < rows; i++ {
		src, _ = m.Constraints.Row(i) // in range by construction
		switch m.Relations[i] {
		case LE:
			putRow(a, k, src, false)
			rhs[k] = m.RHS[i]
		case EQ:
			putRow(a, k, src, false)
			rhs[k] = m.RHS[i]
			rel[k] = LE
			k++
			putRow(a, k, src, true)
			rhs[k] = neg(m.RHS[i])
		case GE:
			putRow(a, k, src, true)
			rhs[k] = neg(m.RHS[i])
		}
		rel[k] = LE
		k++
	}

	return &Model{
		Objective:    objective,
		Constraints:  a,
		Relations:    rel,
		RHS:          rhs,
		Direction:    Max,
		Unrestricted: append([]int(nil), m.Unrestricted...),
	}, flipped, nil
}

// putRow writes src (or −src when negate is set) into row k of a.
func putRow(a *matrix.Dense, k int, src []float64, negate bool) {
	for j, v := range src {
		if negate {
			v = neg(v)
		}
		_ = a.Set(k, j, v) // finite in, finite out
	}
}
