// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mgpoisson/grid"
	"github.com/katalvlaran/mgpoisson/multigrid"
	"github.com/katalvlaran/mgpoisson/poisson"
	"github.com/katalvlaran/mgpoisson/smoother"
	"github.com/katalvlaran/mgpoisson/solver"
)

var errUnknownMethod = errors.New("unknown method")

// config is the problem and solver setup shared by every subcommand.
type config struct {
	level      int
	extent     float64
	mode       float64
	method     string
	smoother   string
	parallel   bool
	baseCase   string
	pre, post  int
	maxSteps   int
	tolerance  float64
	reduction  float64
	trackError bool
}

func defaultConfig() config {
	return config{
		level:     5,
		extent:    1,
		mode:      1,
		method:    "multigrid",
		smoother:  smoother.RedBlackOrder.String(),
		baseCase:  multigrid.DefaultBaseCase.String(),
		pre:       multigrid.DefaultPreSweeps,
		post:      multigrid.DefaultPostSweeps,
		maxSteps:  solver.DefaultMaxSteps,
		tolerance: solver.DefaultTolerance,
		reduction: solver.DefaultReduction,
	}
}

func (c *config) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&c.extent, "extent", c.extent, "side length of the square domain")
	f.Float64Var(&c.mode, "mode", c.mode, "wavenumber of the manufactured solution")
	f.StringVarP(&c.method, "method", "m", c.method, "method (multigrid, relax, direct)")
	f.StringVarP(&c.smoother, "smoother", "s", c.smoother,
		"relaxation scheme (gauss-seidel, red-black, red-black-parallel)")
	f.BoolVar(&c.parallel, "parallel", c.parallel, "run red-black colour passes in parallel")
	f.StringVar(&c.baseCase, "base-case", c.baseCase, "coarsest-level constant (reference, exact)")
	f.IntVar(&c.pre, "pre", c.pre, "pre-smoothing sweeps per level")
	f.IntVar(&c.post, "post", c.post, "post-smoothing sweeps per level")
	f.IntVarP(&c.maxSteps, "max-steps", "n", c.maxSteps, "maximum number of cycles or sweeps")
	f.Float64Var(&c.tolerance, "tolerance", c.tolerance, "absolute residual target (0 disables)")
	f.Float64Var(&c.reduction, "reduction", c.reduction, "relative residual target (0 disables)")
	f.BoolVar(&c.trackError, "track-error", c.trackError, "record the error against the analytic solution")
}

// validate catches values the option constructors would panic on.
func (c config) validate() error {
	switch {
	case c.pre < 1 || c.post < 1:
		return errors.Newf("--pre and --post must be ≥ 1, got %d and %d", c.pre, c.post)
	case c.maxSteps < 1:
		return errors.Newf("--max-steps must be ≥ 1, got %d", c.maxSteps)
	case c.tolerance < 0:
		return errors.Newf("--tolerance must be ≥ 0, got %g", c.tolerance)
	case c.reduction < 0 || c.reduction >= 1:
		return errors.Newf("--reduction must lie in [0, 1), got %g", c.reduction)
	}

	return nil
}

// problem builds the manufactured problem for level l.
func (c config) problem(l int) (*poisson.Problem, error) {
	if err := grid.ValidateLevel(l); err != nil {
		return nil, err
	}

	return poisson.NewProblem(l, grid.Spacing(l, c.extent), c.mode)
}

func (c config) smootherFor() (smoother.Smoother, error) {
	kind, err := smoother.ParseKind(c.smoother)
	if err != nil {
		return nil, err
	}
	if c.parallel {
		if kind == smoother.NaturalOrder {
			return nil, errors.New("--parallel requires a red-black smoother")
		}
		kind = smoother.ParallelRedBlack
	}

	return smoother.New(kind)
}

// methodFor builds the configured method for p.
func (c config) methodFor(p *poisson.Problem, logger *slog.Logger) (solver.Method, error) {
	s, err := c.smootherFor()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(c.method) {
	case "multigrid", "mg":
		base, err := multigrid.ParseBaseCase(c.baseCase)
		if err != nil {
			return nil, err
		}
		m, err := multigrid.NewFor(p,
			multigrid.WithSmoother(s),
			multigrid.WithSweeps(c.pre, c.post),
			multigrid.WithBaseCase(base),
			multigrid.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return m, nil
	case "relax", "relaxation":
		return solver.Relaxation{Smoother: s}, nil
	case "direct":
		return &solver.Direct{}, nil
	default:
		return nil, errors.Wrapf(errUnknownMethod, "%q", c.method)
	}
}

func (c config) solveOptions(logger *slog.Logger) []solver.Option {
	return []solver.Option{
		solver.WithMaxSteps(c.maxSteps),
		solver.WithTolerance(c.tolerance),
		solver.WithReduction(c.reduction),
		solver.WithTrackError(c.trackError),
		solver.WithLogger(logger),
	}
}

// newLogger returns a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "--log-level %q", level)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
