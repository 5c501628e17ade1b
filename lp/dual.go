// SPDX-License-Identifier: MIT

package lp

import (
	"github.com/katalvlaran/dualplex/matrix"
)

// Dual builds the dual of a standardized primal
//
//	max cᵀx  s.t. Ax ≤ b, x ≥ 0      →      min bᵀy  s.t. Aᵀy ≥ c, y ≥ 0
//
// i.e. dual objective = b, dual matrix = Aᵀ, dual RHS = c, one '>=' row per
// primal variable and direction Min.
//
// Precondition: m is standardized (see Standardize). Dual only validates
// the shape; feeding it a non-standard model yields a mathematically wrong
// dual rather than an error.
//
// Complexity: O(m·n).
func Dual(m *Model) (*Model, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	at, err := matrix.Transpose(m.Constraints)
	if err != nil {
		return nil, wrapMatrixErr("Dual", err)
	}

	rel := make([]Relation, m.NumVariables())
	for i := range rel {
		rel[i] = GE
	}

	return &Model{
		Objective:   cloneVec(m.RHS),
		Constraints: at,
		Relations:   rel,
		RHS:         cloneVec(m.Objective),
		Direction:   Min,
	}, nil
}
