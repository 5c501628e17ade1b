// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/dualplex/lp"
	"github.com/katalvlaran/dualplex/matrix"
)

// Label prefixes for decision and slack columns.
const (
	DecisionPrefix = "X_"
	SlackPrefix    = "S_"
)

// Tableau is the dense dual simplex tableau of a standardized LP.
//
// Body holds the decision and slack columns for the m constraint rows plus
// the cost row (index m). Price and Basis are per constraint row; RHS has
// one extra entry for the cost row.
type Tableau struct {
	Price []float64     // CB: objective coefficient of each row's basic variable
	Body  *matrix.Dense // (m+1) x (n+m), last row = cost row
	RHS   []float64     // m+1 entries, last = cost-row RHS (−z)
	Basis []string      // basic-variable label of each constraint row

	objective []float64 // c, source of Price on entering decision columns
	n, m      int
}

// NewTableau builds the initial all-slack tableau of std.
//
// Implementation:
//   - Stage 1: validate std; it must satisfy lp.Model.IsStandard.
//   - Stage 2: Body = [A I; c 0], RHS = [b; 0], Price = 0, Basis = S_1..S_m.
//
// Errors: lp validation sentinels, ErrNotStandard.
// Complexity: O(m·(n+m)).
func NewTableau(std *lp.Model) (*Tableau, error) {
	if err := std.Validate(); err != nil {
		return nil, err
	}
	if !std.IsStandard() {
		return nil, fmt.Errorf("%w: direction %s, relations %v, unrestricted %v",
			ErrNotStandard, std.Direction, std.Relations, std.Unrestricted)
	}
	m, n := std.NumConstraints(), std.NumVariables()

	body, err := matrix.NewDense(m+1, n+m)
	if err != nil {
		return nil, fmt.Errorf("NewTableau: %w", err)
	}
	var v float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v, _ = std.Constraints.At(i, j) // in range by Validate
			_ = body.Set(i, j, v)
		}
		_ = body.Set(i, n+i, 1) // slack identity
	}
	for j, c := range std.Objective {
		_ = body.Set(m, j, c)
	}

	rhs := make([]float64, m+1)
	copy(rhs, std.RHS)
	basis := make([]string, m)
	for i := range basis {
		basis[i] = SlackPrefix + strconv.Itoa(i+1)
	}

	return &Tableau{
		Price:     make([]float64, m),
		Body:      body,
		RHS:       rhs,
		Basis:     basis,
		objective: append([]float64(nil), std.Objective...),
		n:         n,
		m:         m,
	}, nil
}

// NumVariables returns n, the number of decision columns.
func (t *Tableau) NumVariables() int { return t.n }

// NumConstraints returns m, the number of constraint rows.
func (t *Tableau) NumConstraints() int { return t.m }

// NumColumns returns n+m, the number of selectable columns.
func (t *Tableau) NumColumns() int { return t.n + t.m }

// CostRow returns the Body/RHS index of the cost row.
func (t *Tableau) CostRow() int { return t.m }

// SlackColumn returns the Body column of slack S_{i+1} (0-based row i).
func (t *Tableau) SlackColumn(i int) int { return t.n + i }

// ColumnLabel names column j: X_{j+1} for decision columns, S_{j-n+1} for slacks.
func (t *Tableau) ColumnLabel(j int) string {
	if j < t.n {
		return DecisionPrefix + strconv.Itoa(j+1)
	}

	return SlackPrefix + strconv.Itoa(j-t.n+1)
}

// Coef returns Body[i][j]; out-of-range reads yield NaN.
func (t *Tableau) Coef(i, j int) float64 {
	v, err := t.Body.At(i, j)
	if err != nil {
		return math.NaN()
	}

	return v
}

// Cost returns the cost-row entry of column j.
func (t *Tableau) Cost(j int) float64 { return t.Coef(t.m, j) }

// Objective returns the max-form objective value −RHS[cost].
func (t *Tableau) Objective() float64 { return 0 - t.RHS[t.m] }

// Clone returns an independent deep copy of t.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{
		Price:     append([]float64(nil), t.Price...),
		Body:      t.Body.CloneDense(),
		RHS:       append([]float64(nil), t.RHS...),
		Basis:     append([]string(nil), t.Basis...),
		objective: t.objective,
		n:         t.n,
		m:         t.m,
	}
}

// LeavingRow returns the constraint row with the most negative RHS,
// first occurrence on ties. The caller decides whether that RHS is
// actually negative.
func (t *Tableau) LeavingRow() int {
	row := 0
	for i := 1; i < t.m; i++ {
		if t.RHS[i] < t.RHS[row] {
			row = i
		}
	}

	return row
}

// Ratios runs the ratio test on constraint row r:
// |cost_j / a_rj| when a_rj < −tol, +Inf otherwise. The result has one
// entry per Body column; the Price column is not part of Body and is
// therefore never selectable.
func (t *Tableau) Ratios(r int, tol float64) []float64 {
	out := make([]float64, t.NumColumns())
	var a float64
	for j := range out {
		a = t.Coef(r, j)
		if a < -tol {
			out[j] = math.Abs(t.Cost(j) / a)
			continue
		}
		out[j] = math.Inf(1)
	}

	return out
}

// EnteringColumn returns the index of the smallest finite ratio (first
// occurrence on ties), or -1 when every ratio is +Inf.
func EnteringColumn(ratios []float64) int {
	col := -1
	best := math.Inf(1)
	for j, r := range ratios {
		if r < best {
			best, col = r, j
		}
	}

	return col
}

// Pivot performs a Gauss-Jordan step on element (r, c).
//
// Implementation:
//   - Stage 1: divide row r (Body and RHS) by the pivot element.
//   - Stage 2: for every other row i, cost row included, subtract
//     Body[i][c] times the normalized row r.
//   - Stage 3: Price[r] = c_c for a decision column, 0 for a slack;
//     Basis[r] = ColumnLabel(c).
//
// After a successful Pivot column c is the unit vector e_r, cost entry
// included.
//
// Errors: ErrColumnOutOfRange, matrix.ErrOutOfRange, matrix.ErrZeroPivot,
// matrix.ErrNaNInf (overflow).
// Complexity: O((m+1)·(n+m)).
func (t *Tableau) Pivot(r, c int) error {
	if c < 0 || c >= t.NumColumns() {
		return fmt.Errorf("Pivot(%d,%d): %w", r, c, ErrColumnOutOfRange)
	}
	if r < 0 || r >= t.m {
		return fmt.Errorf("Pivot(%d,%d): %w", r, c, matrix.ErrOutOfRange)
	}
	p := t.Coef(r, c)
	if err := t.Body.DivideRow(r, p); err != nil {
		return fmt.Errorf("Pivot(%d,%d): %w", r, c, err)
	}
	t.RHS[r] /= p

	var f float64
	for i := 0; i <= t.m; i++ {
		if i == r {
			continue
		}
		f = t.Coef(i, c)
		if f == 0 {
			continue
		}
		if err := t.Body.AddScaledRow(i, r, -f); err != nil {
			return fmt.Errorf("Pivot(%d,%d): %w", r, c, err)
		}
		t.RHS[i] -= f * t.RHS[r]
	}

	t.Price[r] = 0
	if c < t.n {
		t.Price[r] = t.objective[c]
	}
	t.Basis[r] = t.ColumnLabel(c)

	return nil
}

// Feasible reports whether every constraint RHS is ≥ −tol.
func (t *Tableau) Feasible(tol float64) bool {
	for i := 0; i < t.m; i++ {
		if t.RHS[i] < -tol {
			return false
		}
	}

	return true
}

// DualFeasible reports whether every cost-row entry is ≤ tol. Together
// with Feasible it proves the current basis optimal.
func (t *Tableau) DualFeasible(tol float64) bool {
	for j := 0; j < t.n+t.m; j++ {
		if t.Cost(j) > tol {
			return false
		}
	}

	return true
}

// Values extracts the decision variables by the unit-column rule: a
// column whose constraint part has exactly one entry with |v| > tol, and
// whose entries sum to 1 within tol, takes the RHS of that row; every
// other variable is 0.
func (t *Tableau) Values(tol float64) []float64 {
	out := make([]float64, t.n)
	var (
		v, sum  float64
		nonzero int
		at      int
	)
	for j := 0; j < t.n; j++ {
		sum, nonzero, at = 0, 0, -1
		for i := 0; i < t.m; i++ {
			v = t.Coef(i, j)
			if math.Abs(v) > tol {
				nonzero++
				at = i
			}
			sum += v
		}
		if nonzero == 1 && math.Abs(sum-1) <= tol {
			out[j] = t.RHS[at]
		}
	}

	return out
}

// Duals returns −cost[S_i] for every constraint row: the shadow prices
// of the tableau's constraints.
func (t *Tableau) Duals() []float64 {
	out := make([]float64, t.m)
	for i := range out {
		out[i] = 0 - t.Cost(t.SlackColumn(i))
	}

	return out
}

// String renders the tableau as a plain text grid.
func (t *Tableau) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-6s %8s", "basis", "CB"))
	for j := 0; j < t.NumColumns(); j++ {
		b.WriteString(fmt.Sprintf(" %8s", t.ColumnLabel(j)))
	}
	b.WriteString(fmt.Sprintf(" %8s\n", "RHS"))
	for i := 0; i <= t.m; i++ {
		if i < t.m {
			b.WriteString(fmt.Sprintf("%-6s %8.4g", t.Basis[i], t.Price[i]))
		} else {
			b.WriteString(fmt.Sprintf("%-6s %8s", "cost", ""))
		}
		for j := 0; j < t.NumColumns(); j++ {
			b.WriteString(fmt.Sprintf(" %8.4g", t.Coef(i, j)))
		}
		b.WriteString(fmt.Sprintf(" %8.4g\n", t.RHS[i]))
	}

	return b.String()
}
