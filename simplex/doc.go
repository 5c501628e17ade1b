// SPDX-License-Identifier: MIT

// Package simplex implements the dual simplex method on a dense tableau
// built from a standardized LP (max cᵀx, Ax ≤ b, x ≥ 0).
//
// The tableau starts from the all-slack basis S_1..S_m. While some
// constraint RHS is negative, the row with the most negative RHS leaves
// the basis and the ratio test
//
//	ratio_j = |cost_j / a_rj|   for a_rj < 0,   +Inf otherwise
//
// picks the entering column (minimum ratio, first occurrence). When every
// ratio is +Inf the problem is infeasible and the tableau is left as is.
// A pivot is a Gauss-Jordan step over every row, the cost row included.
//
// Layout (m constraints, n decision variables):
//
//	        Price | X_1 .. X_n  S_1 .. S_m | RHS
//	row 0   CB_0  |    A          I        | b_0
//	...
//	row m-1 CB_m  |                        | b_m
//	cost     -    |    c          0        | −z
//
// Price (the CB column) is kept outside Body, so no row operation ever
// touches it and it can never be chosen as a pivot column.
//
// Outcomes are Status values, not errors: Optimal, Infeasible,
// IterationLimitExceeded. Errors are reserved for malformed input and for
// cancellation through Options.Ctx.
//
// The method is only correct from a dual feasible start (every cost-row
// entry ≤ 0). That is not checked up front; instead an Optimal result
// carries Certified, which is false when the final cost row still has a
// positive entry. An uncertified optimum may be infeasible or suboptimal
// for the original problem.
//
// Numeric policy: with the default zero tolerance a value is negative
// only if < 0 and a column is a unit column only if it has exactly one
// non-zero entry equal to 1. WithTolerance relaxes both tests.
//
// Tracing: an Observer receives a snapshot at initialization, one per
// pivot (pre-pivot tableau, chosen row/column and the ratios) and one at
// termination. NewLogObserver adapts a logr.Logger.
package simplex
