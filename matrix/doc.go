// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major storage shared by the LP
// model and the simplex tableau.
//
// The matrix package provides:
//
//   - Dense: a bounds-checked r×c float64 buffer with a finite-only numeric
//     policy (NaN/±Inf rejected on Set and the row operations).
//   - Construction helpers: NewDense (zeros), NewDenseFrom (row slices).
//   - Kernels that never mutate their inputs: Transpose (primal→dual
//     coefficient matrix), Scale (row/objective negation), MatVec
//     (constraint activity Ax).
//   - Elementary row operations that DO mutate in place: DivideRow and
//     AddScaledRow, the two building blocks of a Gauss-Jordan pivot.
//
// Every failure is reported through the sentinels in errors.go and can be
// matched with errors.Is; nothing in the public surface panics on user input.
//
// Matrices here are small and dense: an LP with m constraints and n
// variables lives in O(m·n) memory, which is the intended scale.
package matrix
