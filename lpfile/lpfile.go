// SPDX-License-Identifier: MIT

// Package lpfile reads and writes linear programs as YAML documents:
//
//	form: primal            # or dual; default primal
//	direction: max          # or min
//	objective: [3, 2]
//	constraints:
//	  - {coefficients: [1, 1], relation: "<=", rhs: 4}
//	  - {coefficients: [1, -1], relation: ">=", rhs: 1}
//	unrestricted: [2]       # 1-based, optional
//
// Unknown keys are rejected.
package lpfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dualplex/lp"
	"github.com/katalvlaran/dualplex/solver"
)

// Sentinel errors returned by Decode and Problem methods.
var (
	// ErrEmptyDocument indicates an input without any YAML document.
	ErrEmptyDocument = errors.New("lpfile: empty document")

	// ErrUnknownForm indicates a form other than primal or dual.
	ErrUnknownForm = solver.ErrUnknownForm
)

// Constraint is one row of a problem file.
type Constraint struct {
	Coefficients []float64 `yaml:"coefficients,flow"`
	Relation     string    `yaml:"relation"`
	RHS          float64   `yaml:"rhs"`
}

// Problem is the document form of an LP.
type Problem struct {
	Kind         string       `yaml:"form,omitempty"`
	Direction    string       `yaml:"direction"`
	Objective    []float64    `yaml:"objective,flow"`
	Constraints  []Constraint `yaml:"constraints"`
	Unrestricted []int        `yaml:"unrestricted,flow,omitempty"`
}

// Decode reads one YAML problem document from r.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("lpfile: decode: %w", err)
	}

	return &p, nil
}

// Load decodes the problem file at path.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lpfile: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Form returns the declared input form; an empty form means primal.
func (p *Problem) Form() (solver.Form, error) {
	if strings.TrimSpace(p.Kind) == "" {
		return solver.Primal, nil
	}

	return solver.ParseForm(p.Kind)
}

// Model converts p into a validated *lp.Model.
// Errors: lp.ErrInvalidDirection, lp.ErrInvalidRelation (with the row
// number), and every lp.New validation sentinel.
func (p *Problem) Model() (*lp.Model, error) {
	dir, err := lp.ParseDirection(p.Direction)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, len(p.Constraints))
	rel := make([]lp.Relation, len(p.Constraints))
	rhs := make([]float64, len(p.Constraints))
	for i, c := range p.Constraints {
		if rel[i], err = lp.ParseRelation(c.Relation); err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i+1, err)
		}
		rows[i] = c.Coefficients
		rhs[i] = c.RHS
	}

	return lp.New(p.Objective, rows, rel, rhs, dir, lp.WithUnrestricted(p.Unrestricted...))
}

// FromModel builds the document form of m, tagged with form.
func FromModel(m *lp.Model, form solver.Form) *Problem {
	p := &Problem{
		Kind:         form.String(),
		Direction:    m.Direction.String(),
		Objective:    append([]float64(nil), m.Objective...),
		Constraints:  make([]Constraint, m.NumConstraints()),
		Unrestricted: append([]int(nil), m.Unrestricted...),
	}
	for i, row := range m.Rows() {
		p.Constraints[i] = Constraint{
			Coefficients: row,
			Relation:     m.Relations[i].String(),
			RHS:          m.RHS[i],
		}
	}

	return p
}

// Encode writes p to w as one YAML document.
func (p *Problem) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("lpfile: encode: %w", err)
	}

	return enc.Close()
}
