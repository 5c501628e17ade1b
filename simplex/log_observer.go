// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/go-logr/logr"
)

// LogObserver writes the run trace as structured V(1) records.
type LogObserver struct {
	log logr.Logger
}

var _ Observer = (*LogObserver)(nil)

// NewLogObserver returns an Observer that logs through l.
func NewLogObserver(l logr.Logger) *LogObserver {
	return &LogObserver{log: l.WithName("simplex")}
}

// OnInit implements Observer.
func (o *LogObserver) OnInit(t *Tableau) {
	o.log.V(1).Info("Tableau initialized",
		"constraints", t.NumConstraints(),
		"variables", t.NumVariables(),
		"basis", t.Basis,
		"rhs", t.RHS)
}

// OnPivot implements Observer.
func (o *LogObserver) OnPivot(_ *Tableau, s Step) {
	o.log.V(1).Info("Pivot",
		"iteration", s.Iteration,
		"row", s.Row,
		"column", s.Col,
		"pivot", s.Pivot,
		"leaving", s.Leaving,
		"entering", s.Entering,
		"ratios", s.Ratios)
}

// OnTerminal implements Observer.
func (o *LogObserver) OnTerminal(t *Tableau, r Result) {
	kv := []any{
		"status", r.Status.String(),
		"iterations", r.Iterations,
		"basis", t.Basis,
	}
	if r.Status == StatusOptimal {
		kv = append(kv, "objective", r.Objective, "values", r.Values)
	}
	o.log.V(1).Info("Dual simplex finished", kv...)
}
