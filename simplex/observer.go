// SPDX-License-Identifier: MIT

package simplex

// Step describes one pivot as seen by an Observer.
type Step struct {
	Iteration int       // 1-based pivot number
	Row       int       // 0-based leaving constraint row
	Col       int       // 0-based entering Body column
	Pivot     float64   // Body[Row][Col] before the step
	Ratios    []float64 // ratio test of Row, one per Body column
	Leaving   string    // basic label leaving the basis
	Entering  string    // column label entering the basis
}

// Observer receives the trace of a run. Every *Tableau handed to an
// Observer is a private snapshot; it may be retained.
type Observer interface {
	// OnInit is called once with the initial tableau.
	OnInit(t *Tableau)
	// OnPivot is called before each pivot with the pre-pivot tableau.
	OnPivot(t *Tableau, s Step)
	// OnTerminal is called once with the final tableau and result.
	OnTerminal(t *Tableau, r Result)
}

// ObserverFuncs adapts plain functions to Observer; nil fields are skipped.
type ObserverFuncs struct {
	Init     func(t *Tableau)
	Pivot    func(t *Tableau, s Step)
	Terminal func(t *Tableau, r Result)
}

// OnInit implements Observer.
func (f ObserverFuncs) OnInit(t *Tableau) {
	if f.Init != nil {
		f.Init(t)
	}
}

// OnPivot implements Observer.
func (f ObserverFuncs) OnPivot(t *Tableau, s Step) {
	if f.Pivot != nil {
		f.Pivot(t, s)
	}
}

// OnTerminal implements Observer.
func (f ObserverFuncs) OnTerminal(t *Tableau, r Result) {
	if f.Terminal != nil {
		f.Terminal(t, r)
	}
}

// Observers fans every callback out to each non-nil observer in order.
// It returns nil when none remain.
func Observers(obs ...Observer) Observer {
	var out multiObserver
	for _, o := range obs {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}

	return out
}

type multiObserver []Observer

func (mo multiObserver) OnInit(t *Tableau) {
	for _, o := range mo {
		o.OnInit(t)
	}
}

func (mo multiObserver) OnPivot(t *Tableau, s Step) {
	for _, o := range mo {
		o.OnPivot(t, s)
	}
}

func (mo multiObserver) OnTerminal(t *Tableau, r Result) {
	for _, o := range mo {
		o.OnTerminal(t, r)
	}
}
