// SPDX-License-Identifier: MIT

package multigrid

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mgpoisson/arena"
	"github.com/katalvlaran/mgpoisson/poisson"
	"github.com/katalvlaran/mgpoisson/smoother"
)

// Multigrid drives V-cycles for problems of one fixed finest level. It owns
// the scratch arenas; the Problem owns u, f and r. A Multigrid is not safe
// for concurrent use: create one per goroutine.
type Multigrid struct {
	arena    *arena.Arena
	cycle    Cycle
	smoother smoother.Smoother
	name     string
	logger   *slog.Logger
}

// New returns a driver for problems of finest level l.
// Stage 1 (Validate): level range, via arena.New.
// Stage 2 (Prepare): allocate both arenas and the residual scratch once.
// Complexity: O(TotalSize(l)) memory, allocated here and never again.
func New(l int, opts ...Option) (*Multigrid, error) {
	o := gatherOptions(opts...)
	a, err := arena.New(l)
	if err != nil {
		return nil, errors.Wrap(err, "multigrid.New")
	}

	m := &Multigrid{
		arena:    a,
		cycle:    o.cycle(),
		smoother: o.smoother,
		name:     "Multi-Grid<" + o.smoother.Name() + ">",
		logger:   o.logger,
	}
	m.logger.Debug("multigrid driver ready",
		slog.Int("level", l),
		slog.Int("arena_len", a.Len()),
		slog.Int("bytes", a.Bytes()),
		slog.String("smoother", o.smoother.Name()),
		slog.Int("pre", o.pre),
		slog.Int("post", o.post),
		slog.String("base_case", o.base.String()),
	)

	return m, nil
}

// NewFor returns a driver sized for p's level.
func NewFor(p *poisson.Problem, opts ...Option) (*Multigrid, error) {
	if p == nil {
		return nil, errors.Wrap(ErrNilProblem, "multigrid.NewFor")
	}

	return New(p.Level(), opts...)
}

// VCycle runs one V-cycle on p, updating p.U() in place. Both arenas are
// zero-filled first so every level's correction starts at zero. p.R() is
// not touched; call p.Residual to refresh it.
func (m *Multigrid) VCycle(p *poisson.Problem) error {
	if p == nil {
		return errors.Wrap(ErrNilProblem, "multigrid.VCycle")
	}
	if p.Level() != m.arena.Level() {
		return errors.Wrapf(ErrLevelMismatch, "multigrid.VCycle: problem level %d, driver level %d",
			p.Level(), m.arena.Level())
	}

	m.arena.Reset()
	v, w := m.arena.Views()
	m.cycle.Run(p.Level(), p.U().Data(), p.F().Data(), m.arena.Scratch(), v, w, p.H())

	return nil
}

// Step runs one V-cycle. It lets the driver serve as an iterative method.
func (m *Multigrid) Step(p *poisson.Problem) error {
	return m.VCycle(p)
}

// Name identifies the method and its smoother, e.g.
// "Multi-Grid<Gauss-Seidel (red-black)>".
func (m *Multigrid) Name() string {
	return m.name
}

// Level returns the finest level the driver was sized for.
func (m *Multigrid) Level() int {
	return m.arena.Level()
}

// Smoother returns the single-sweep smoother the driver was configured with.
func (m *Multigrid) Smoother() smoother.Smoother {
	return m.smoother
}

// BaseCase returns the coarsest-level constant in use.
func (m *Multigrid) BaseCase() BaseCase {
	return m.cycle.Base
}

// Bytes returns the scratch storage held by the driver.
func (m *Multigrid) Bytes() int {
	return m.arena.Bytes()
}
