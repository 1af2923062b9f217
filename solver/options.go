// SPDX-License-Identifier: MIT

package solver

import (
	"io"
	"math"

	"golang.org/x/exp/slog"
)

const (
	// DefaultMaxSteps bounds the number of steps taken by Solve.
	DefaultMaxSteps = 20

	// DefaultTolerance is the absolute residual-norm target.
	DefaultTolerance = 1e-8

	// DefaultReduction disables the relative target.
	DefaultReduction = 0.0

	// DefaultTrackError leaves Record.Error unset; computing it allocates
	// one field per step.
	DefaultTrackError = false
)

const (
	panicMaxSteps  = "solver: WithMaxSteps: steps must be ≥ 1"
	panicTolerance = "solver: WithTolerance: tolerance must be finite and ≥ 0"
	panicReduction = "solver: WithReduction: reduction must lie in [0, 1)"
	panicNilLogger = "solver: WithLogger: logger must not be nil"
)

// Option configures Solve.
type Option func(*Options)

// Options is the resolved configuration of one Solve call.
type Options struct {
	maxSteps   int
	tolerance  float64
	reduction  float64
	trackError bool
	logger     *slog.Logger
	observer   func(Record)
}

// WithMaxSteps caps the number of steps. Panics if steps < 1.
func WithMaxSteps(steps int) Option {
	if steps < 1 {
		panic(panicMaxSteps)
	}

	return func(o *Options) { o.maxSteps = steps }
}

// WithTolerance sets the absolute residual-norm target; 0 disables it.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicTolerance)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithReduction stops once the residual norm has dropped by the given
// factor relative to the initial one; 0 disables it.
func WithReduction(factor float64) Option {
	if factor < 0 || factor >= 1 || math.IsNaN(factor) {
		panic(panicReduction)
	}

	return func(o *Options) { o.reduction = factor }
}

// WithTrackError records Problem.Error after every step.
func WithTrackError(on bool) Option {
	return func(o *Options) { o.trackError = on }
}

// WithLogger routes per-step debug records and the final summary to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithObserver calls fn with every record as soon as it is taken, the
// initial one included. fn runs on the solving goroutine.
func WithObserver(fn func(Record)) Option {
	return func(o *Options) { o.observer = fn }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxSteps:   DefaultMaxSteps,
		tolerance:  DefaultTolerance,
		reduction:  DefaultReduction,
		trackError: DefaultTrackError,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
