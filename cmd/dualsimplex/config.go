// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/dualplex/simplex"
)

// Configuration keys; each is a flag and a DUALPLEX_* environment variable.
const (
	keyProblem       = "problem"
	keyForm          = "form"
	keyMaxIterations = "max-iterations"
	keyTolerance     = "tolerance"
	keyLogLevel      = "log-level"
	keyTrace         = "trace"

	envPrefix = "DUALPLEX"
	stdinPath = "-"
)

type config struct {
	Problem       string
	Form          string // empty: take the form from the file
	MaxIterations int
	Tolerance     float64
	LogLevel      string
	Trace         bool
}

// loadConfig resolves flags over environment over defaults. A single
// positional argument is taken as the problem path; it cannot be combined
// with --problem.
func loadConfig(args []string, stderr io.Writer) (config, error) {
	fs := pflag.NewFlagSet("dualsimplex", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringP(keyProblem, "p", stdinPath, "Problem file (YAML); '-' means stdin")
	fs.StringP(keyForm, "f", "", "Override the input form: primal or dual")
	fs.Int(keyMaxIterations, simplex.DefaultMaxIterations, "Pivot cap of the dual simplex")
	fs.Float64(keyTolerance, 0, "Values within this distance of zero count as zero")
	fs.String(keyLogLevel, "info", "Log level: debug, info, warn, error")
	fs.Bool(keyTrace, false, "Log the tableau trace (implies debug logging)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}
	switch fs.NArg() {
	case 0:
	case 1:
		if fs.Changed(keyProblem) {
			return config{}, fmt.Errorf("problem given both as --%s and as argument %q", keyProblem, fs.Arg(0))
		}
		v.Set(keyProblem, fs.Arg(0))
	default:
		return config{}, fmt.Errorf("expected at most one problem file, got %d", fs.NArg())
	}

	return config{
		Problem:       v.GetString(keyProblem),
		Form:          v.GetString(keyForm),
		MaxIterations: v.GetInt(keyMaxIterations),
		Tolerance:     v.GetFloat64(keyTolerance),
		LogLevel:      v.GetString(keyLogLevel),
		Trace:         v.GetBool(keyTrace),
	}, nil
}

// newZapLogger builds a console logger on w. Trace lowers the level to
// debug so that logr V(1) records are kept.
func newZapLogger(cfg config, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", keyLogLevel, err)
	}
	if cfg.Trace && level > zapcore.DebugLevel {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)

	return zap.New(core), nil
}
