// SPDX-License-Identifier: MIT

package poisson

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/mgpoisson/grid"
)

// Problem owns the finest-level fields of one Poisson solve: the
// approximate solution u, the right-hand side f and the residual r, all
// n×n with n = 2^l + 1. Boundary entries of u are zero (homogeneous
// Dirichlet) and no solver writes them.
type Problem struct {
	l    int
	n    int
	h    float64
	mode float64

	u, f, r *grid.Field
}

// NewProblem allocates a level-l problem with spacing h. u and r start at
// zero; f is the manufactured right-hand side for mode.
// Stage 1 (Validate): level, spacing and mode.
// Stage 2 (Prepare): allocate the three fields.
// Stage 3 (Finalize): fill f with Forcing.
// Complexity: O(n²) time and memory.
func NewProblem(l int, h, mode float64) (*Problem, error) {
	if err := grid.ValidateLevel(l); err != nil {
		return nil, errors.Wrap(err, "poisson.NewProblem")
	}
	if err := grid.ValidateSpacing(h); err != nil {
		return nil, errors.Wrap(err, "poisson.NewProblem")
	}
	if math.IsNaN(mode) || math.IsInf(mode, 0) {
		return nil, errors.Wrapf(ErrBadMode, "poisson.NewProblem(mode=%g)", mode)
	}

	p := &Problem{l: l, n: grid.Size(l), h: h, mode: mode}
	var err error
	if p.u, err = grid.NewLevelField(l); err != nil {
		return nil, err
	}
	if p.f, err = grid.NewLevelField(l); err != nil {
		return nil, err
	}
	if p.r, err = grid.NewLevelField(l); err != nil {
		return nil, err
	}
	Forcing(p.f.Data(), p.n, h, mode)

	return p, nil
}

// Level returns l.
func (p *Problem) Level() int { return p.l }

// N returns the linear dimension 2^l + 1.
func (p *Problem) N() int { return p.n }

// H returns the grid spacing.
func (p *Problem) H() float64 { return p.h }

// Mode returns the manufactured-solution wavenumber parameter.
func (p *Problem) Mode() float64 { return p.mode }

// U returns the approximate solution field, updated in place by solvers.
func (p *Problem) U() *grid.Field { return p.u }

// F returns the right-hand side field.
func (p *Problem) F() *grid.Field { return p.f }

// R returns the residual field last computed by Residual.
func (p *Problem) R() *grid.Field { return p.r }

// Residual recomputes r = f - Lu in place.
func (p *Problem) Residual() {
	Residual(p.r.Data(), p.u.Data(), p.f.Data(), p.n, p.h)
}

// Norm returns the L1 norm of r weighted by the cell area h².
// It reports the residual as of the last Residual call.
func (p *Problem) Norm() float64 {
	return grid.L1Norm(p.r.Data(), p.n, p.n, p.h, p.h)
}

// Error returns the h²-weighted L1 norm of u minus the analytic solution.
// It allocates one temporary field and leaves u, f and r untouched.
func (p *Problem) Error() float64 {
	v := make([]float64, p.n*p.n)
	Exact(v, p.n, p.h, p.mode)
	grid.Subtract(v, p.u.Data(), v, p.n, p.n)

	return grid.L1Norm(v, p.n, p.n, p.h, p.h)
}

// Reset zeroes u and r so the same problem can be solved again.
func (p *Problem) Reset() {
	p.u.Zero()
	p.r.Zero()
}
