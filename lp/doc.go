// SPDX-License-Identifier: MIT

// Package lp models linear programs and the algebraic rewrites that bring
// an arbitrary LP into the canonical form consumed by the dual simplex.
//
// A Model holds
//
//	Objective    c ∈ ℝⁿ
//	Constraints  A ∈ ℝ^{m×n}  (*matrix.Dense)
//	Relations    one of <=, >=, = per row
//	RHS          b ∈ ℝᵐ
//	Direction    max | min
//	Unrestricted 1-based indices of free variables (all others are ≥ 0)
//
// and every rewrite returns a NEW Model, leaving its input untouched so
// that each intermediate form stays inspectable on its own:
//
//   - Split:       every free x_i becomes x_i' − x_i'' (two adjacent columns).
//   - Standardize: max-form with every row <= ; '=' rows expand into a row
//     and its negation, '>=' rows are negated, a min objective is negated.
//   - Dual:        (c, A, b) → (b, Aᵀ, c), relations '>=', direction min.
//     The input must already be standardized; this is a caller contract.
//
// # Errors
//
//	ErrNilModel          – nil *Model.
//	ErrEmptyModel        – no variables or no constraints.
//	ErrShapeMismatch     – len(c) ≠ cols(A), len(relations) or len(b) ≠ rows(A), ragged rows.
//	ErrInvalidRelation   – relation outside {<=, >=, =}.
//	ErrInvalidDirection  – direction outside {max, min}.
//	ErrBadUnrestricted   – unrestricted index outside 1..n.
//	ErrNaNInf            – non-finite coefficient.
//
// Structural errors are detected before any rewrite runs, so a failing
// pipeline never yields partial output.
//
// # Example
//
//	m, err := lp.New(
//	    []float64{3, 2},
//	    [][]float64{{1, 1}, {1, -1}},
//	    []lp.Relation{lp.LE, lp.GE},
//	    []float64{4, 1},
//	    lp.Max,
//	)
//	std, flipped, err := lp.Standardize(m) // rows: x1+x2<=4, -x1+x2<=-1
//	dual, err := lp.Dual(std)              // min 4y1-y2, y1-y2>=3, y1+y2>=2
package lp
