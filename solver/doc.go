// SPDX-License-Identifier: MIT

// Package solver chains the LP rewrites and the dual simplex into one
// call.
//
// Primal input:
//
//	Split → Standardize → Dual → Standardize → simplex
//
// Dual input (the model already is the problem to run the tableau on):
//
//	Split → Standardize → simplex
//
// Each standardization that turns a min objective into a max objective is
// recorded as a Flip. The tableau always reports a max-form value, so the
// final objective is Result.Objective·(−1)^len(Flips) in both branches.
//
// When the standardized dual has no negative RHS there is nothing for the
// dual simplex to do; Solve then returns a report with Skipped set and
// Status StatusSkipped instead of running the tableau.
//
// Structural problems (shape mismatch, invalid relation, ...) abort the
// pipeline with an error before any stage is emitted; Infeasible and
// IterationLimitExceeded are normal Report statuses.
package solver
