// Package dualplex solves small dense linear programs by way of their
// duals: a primal is split, standardized, dualized, standardized again and
// handed to a dual simplex tableau.
//
// 🚀 What is dualplex?
//
//	A pure-Go toolkit that brings together:
//		• LP models: objective, constraint rows, relations, free variables
//		• Rewrites: variable splitting, standardization, primal→dual
//		• Dual simplex: dense tableau, observable pivot trace, typed status
//		• Pipeline: one call from a primal (or dual) model to an optimum
//		• Problem files: YAML in, YAML out
//
// ✨ Why dualplex?
//
//   - Every stage is a plain value you can print, diff or feed back in
//   - Outcomes are statuses (Optimal, Infeasible, IterationLimitExceeded),
//     never panics
//   - The pivot trace is an observer, not printing mixed into the math
//
// Packages:
//
//	matrix/  dense row-major storage, transpose/scale kernels, row ops
//	lp/      Model, Split, Standardize, Dual
//	simplex/ Tableau, Solve, Observer, LogObserver
//	solver/  primal/dual pipelines with sign bookkeeping
//	lpfile/  YAML problem documents
//	cmd/dualsimplex command-line front end
//
// Quick example (max 3x1+2x2, x1+x2<=4, x1-x2>=1):
//
//	standard primal  max [3 2]   rows <=
//	dual             min [4 -1]  rows >=
//	standard dual    max [-4 1]  rhs [-3 -2]  → one pivot → Z = 12
//
//	go install github.com/katalvlaran/dualplex/cmd/dualsimplex@latest
package dualplex
