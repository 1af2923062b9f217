// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/mgpoisson/poisson"
	"github.com/katalvlaran/mgpoisson/smoother"
)

// Method advances an approximate solution by one step. *multigrid.Multigrid
// satisfies it.
type Method interface {
	Name() string
	Step(p *poisson.Problem) error
}

// Relaxation uses a smoother on its own, one sweep per step, as a
// single-grid baseline.
type Relaxation struct {
	Smoother smoother.Smoother
}

// Name returns the smoother's name.
func (r Relaxation) Name() string {
	if r.Smoother == nil {
		return "<nil>"
	}

	return r.Smoother.Name()
}

// Step performs one sweep on p.U().
func (r Relaxation) Step(p *poisson.Problem) error {
	if r.Smoother == nil {
		return errors.Wrap(ErrNilSmoother, "Relaxation.Step")
	}
	if p == nil {
		return errors.Wrap(ErrNilProblem, "Relaxation.Step")
	}
	r.Smoother.Relax(p.U().Data(), p.F().Data(), p.N(), p.H())

	return nil
}
