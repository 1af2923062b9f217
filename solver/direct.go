// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mgpoisson/poisson"
)

// DirectMaxLevel is the finest level Direct accepts. The dense factor of a
// level-l system holds (2^l-1)⁴ values; level 5 needs about 7 MiB.
const DirectMaxLevel = 5

var (
	// ErrTooLarge is returned by Direct for levels above DirectMaxLevel.
	ErrTooLarge = errors.New("solver: level too large for a direct solve")

	// ErrNotPositiveDefinite is returned when the factorization fails.
	ErrNotPositiveDefinite = errors.New("solver: system matrix is not positive definite")
)

// stencil holds the four neighbour offsets of the five-point Laplacian.
var stencil = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Direct solves the discrete system L_h u = f exactly (to rounding) in one
// step with a dense Cholesky factorization of -L_h over the interior
// unknowns. Boundary values of u enter the right-hand side. It is a
// reference method for small grids, not a competitor to multigrid.
//
// The factorization is computed on the first Step and reused while the
// level and spacing stay the same. A Direct is not safe for concurrent use.
type Direct struct {
	level int
	h     float64
	chol  *mat.Cholesky
}

// Name implements Method.
func (d *Direct) Name() string { return "Direct<Cholesky>" }

// Step overwrites the interior of p.U() with the discrete solution.
func (d *Direct) Step(p *poisson.Problem) error {
	if p == nil {
		return errors.Wrap(ErrNilProblem, "Direct.Step")
	}
	if p.Level() > DirectMaxLevel {
		return errors.Wrapf(ErrTooLarge, "Direct.Step: level %d, max %d", p.Level(), DirectMaxLevel)
	}
	if d.chol == nil || d.level != p.Level() || d.h != p.H() {
		if err := d.factorize(p.N(), p.H()); err != nil {
			return err
		}
		d.level, d.h = p.Level(), p.H()
	}

	n, h2 := p.N(), p.H()*p.H()
	m := n - 2
	u, f := p.U().Data(), p.F().Data()

	// -L_h u = -f, with known boundary neighbours moved to the right.
	b := mat.NewVecDense(m*m, nil)
	for i := 1; i < n-1; i++ {
		for j := 1; j < n-1; j++ {
			v := -f[j+i*n]
			for _, o := range stencil {
				ii, jj := i+o[0], j+o[1]
				if ii == 0 || jj == 0 || ii == n-1 || jj == n-1 {
					v += u[jj+ii*n] / h2
				}
			}
			b.SetVec(unknown(i, j, m), v)
		}
	}

	var x mat.VecDense
	if err := d.chol.SolveVecTo(&x, b); err != nil {
		return errors.Wrap(err, "Direct.Step")
	}
	for i := 1; i < n-1; i++ {
		for j := 1; j < n-1; j++ {
			u[j+i*n] = x.AtVec(unknown(i, j, m))
		}
	}

	return nil
}

// factorize assembles -L_h on the (n-2)² interior unknowns and factors it.
func (d *Direct) factorize(n int, h float64) error {
	m := n - 2
	size := m * m
	a := mat.NewSymDense(size, nil)
	diag, off := 4/(h*h), -1/(h*h)
	for i := 1; i < n-1; i++ {
		for j := 1; j < n-1; j++ {
			k := unknown(i, j, m)
			a.SetSym(k, k, diag)
			for _, o := range stencil {
				ii, jj := i+o[0], j+o[1]
				if ii < 1 || jj < 1 || ii > m || jj > m {
					continue
				}
				a.SetSym(k, unknown(ii, jj, m), off)
			}
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return errors.Wrapf(ErrNotPositiveDefinite, "Direct: n=%d h=%g", n, h)
	}
	d.chol = &chol

	return nil
}

// unknown maps interior point (i, j) to its row in the interior system.
func unknown(i, j, m int) int {
	return (j - 1) + (i-1)*m
}
