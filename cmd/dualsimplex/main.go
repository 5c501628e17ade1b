// SPDX-License-Identifier: MIT

// dualsimplex reads a linear program from a YAML file, prints its
// standardized primal, dual and standardized dual, and solves the
// standardized dual with the dual simplex method.
//
// Usage:
//
//	dualsimplex [flags] [problem.yaml]
//
// Every flag can also be set through a DUALPLEX_* environment variable,
// e.g. DUALPLEX_MAX_ITERATIONS=50.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/dualplex/lpfile"
	"github.com/katalvlaran/dualplex/simplex"
	"github.com/katalvlaran/dualplex/solver"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "dualsimplex:", err)
		return exitUsage
	}

	zl, err := newZapLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "dualsimplex:", err)
		return exitUsage
	}
	defer func() { _ = zl.Sync() }()
	log := zapr.NewLogger(zl)

	p, err := readProblem(cfg.Problem, stdin)
	if err != nil {
		log.Error(err, "Failed to read problem", "problem", cfg.Problem)
		return exitError
	}
	form, err := p.Form()
	if cfg.Form != "" {
		form, err = solver.ParseForm(cfg.Form)
	}
	if err != nil {
		log.Error(err, "Invalid form")
		return exitError
	}
	m, err := p.Model()
	if err != nil {
		log.Error(err, "Invalid problem", "problem", cfg.Problem)
		return exitError
	}

	sopts := []simplex.Option{
		simplex.WithMaxIterations(cfg.MaxIterations),
		simplex.WithTolerance(cfg.Tolerance),
	}
	if cfg.Trace {
		sopts = append(sopts, simplex.WithObserver(simplex.NewLogObserver(log)))
	}
	log.V(1).Info("Solving", "problem", cfg.Problem, "form", form.String(),
		"maxIterations", cfg.MaxIterations, "tolerance", cfg.Tolerance)

	rep, err := solver.Solve(m, form,
		solver.WithLogger(log),
		solver.WithSimplexOptions(sopts...),
	)
	if err != nil {
		log.Error(err, "Solve failed")
		return exitError
	}
	if err = render(stdout, rep); err != nil {
		log.Error(err, "Failed to write report")
		return exitError
	}

	return exitOK
}

func readProblem(path string, stdin io.Reader) (*lpfile.Problem, error) {
	if path == stdinPath {
		return lpfile.Decode(stdin)
	}

	return lpfile.Load(path)
}
