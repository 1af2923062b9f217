// SPDX-License-Identifier: MIT

package multigrid

import (
	"io"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mgpoisson/smoother"
)

// Defaults used when no Option overrides them.
const (
	// DefaultPreSweeps is the number of smoothing sweeps before restriction.
	DefaultPreSweeps = 1

	// DefaultPostSweeps is the number of smoothing sweeps after prolongation.
	DefaultPostSweeps = 1

	// DefaultBaseCase is the coarsest-level constant.
	DefaultBaseCase = ReferenceBaseCase
)

const (
	panicNilSmoother = "multigrid: WithSmoother: smoother must not be nil"
	panicSweeps      = "multigrid: WithSweeps: sweep counts must be ≥ 1"
	panicNilLogger   = "multigrid: WithLogger: logger must not be nil"
)

// Option configures a Multigrid driver.
type Option func(*Options)

// Options is the resolved driver configuration. Fields are unexported;
// callers configure through Option values.
type Options struct {
	smoother smoother.Smoother // DefaultSmoother()
	pre      int               // DefaultPreSweeps
	post     int               // DefaultPostSweeps
	base     BaseCase          // DefaultBaseCase
	logger   *slog.Logger      // discards by default
}

// DefaultSmoother returns the smoother used when WithSmoother is not given:
// natural-order Gauss-Seidel.
func DefaultSmoother() smoother.Smoother {
	return smoother.GaussSeidel{}
}

// WithSmoother selects the relaxation scheme. Panics on nil.
func WithSmoother(s smoother.Smoother) Option {
	if s == nil {
		panic(panicNilSmoother)
	}

	return func(o *Options) { o.smoother = s }
}

// WithSweeps sets the number of pre- and post-smoothing sweeps per level.
// Panics if either is below 1.
func WithSweeps(pre, post int) Option {
	if pre < 1 || post < 1 {
		panic(panicSweeps)
	}

	return func(o *Options) {
		o.pre = pre
		o.post = post
	}
}

// WithBaseCase sets the coarsest-level constant.
func WithBaseCase(b BaseCase) Option {
	return func(o *Options) { o.base = b }
}

// WithLogger routes driver diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{
		smoother: DefaultSmoother(),
		pre:      DefaultPreSweeps,
		post:     DefaultPostSweeps,
		base:     DefaultBaseCase,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// cycle builds the Cycle value described by o.
func (o Options) cycle() Cycle {
	return Cycle{
		Pre:  smoother.Repeat(o.smoother, o.pre),
		Post: smoother.Repeat(o.smoother, o.post),
		Base: o.base,
	}
}
