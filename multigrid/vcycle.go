// SPDX-License-Identifier: MIT

package multigrid

import (
	"github.com/katalvlaran/mgpoisson/arena"
	"github.com/katalvlaran/mgpoisson/grid"
	"github.com/katalvlaran/mgpoisson/poisson"
	"github.com/katalvlaran/mgpoisson/smoother"
)

// Cycle bundles what one V-cycle needs besides its fields: the pre- and
// post-smoothers and the coarsest-level solve. It is a plain value and is
// passed down the recursion unchanged.
type Cycle struct {
	Pre  smoother.Smoother
	Post smoother.Smoother
	Base BaseCase
}

// Run performs one V-cycle at level l, improving u in place.
//
//   - u, f: solution and right-hand side of level l, n(l)² values each.
//   - r: residual scratch of at least n(l)² values, shared by every level.
//   - v, w: correction and restricted-residual views; each level below l
//     carves its n² fields from them and passes the advanced views on.
//   - h: spacing of level l; level l-1 is visited with 2h.
//
// On every level below the caller's, u is an additive correction and must
// arrive zeroed; the driver guarantees this by resetting the arenas. Run
// never allocates and never writes boundary entries of u.
func (c Cycle) Run(l int, u, f, r []float64, v, w arena.View, h float64) {
	if invariantsEnabled {
		checkCycle(l, u, f, r, v, w, h)
	}
	if l == 1 {
		c.Base.Solve(u, f, h)
		return
	}

	nu, nv := grid.Size(l), grid.Size(l-1)
	e, vNext := v.Carve(nv * nv)  // coarse correction e^(l-1)
	rc, wNext := w.Carve(nv * nv) // coarse right-hand side r^(l-1)

	c.Pre.Relax(u, f, nu, h)

	// r^l := f - Lu^l
	poisson.Residual(r, u, f, nu, h)

	// r^(l-1) := R r^l
	grid.Restrict(rc, nv, nv, r, nu, nu, 0, 1)

	// A^(l-1) e^(l-1) = r^(l-1), approximately
	c.Run(l-1, e, rc, r, vNext, wNext, 2*h)

	// u^l := u^l + P e^(l-1)
	grid.Prolongate(u, nu, nu, e, nv, nv, 1, 1)

	c.Post.Relax(u, f, nu, h)
}
