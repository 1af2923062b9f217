// SPDX-License-Identifier: MIT

package multigrid

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/mgpoisson/arena"
	"github.com/katalvlaran/mgpoisson/grid"
)

// checkCycle asserts the V-cycle preconditions. It runs only in builds
// tagged "invariants" or "race"; violations are programmer errors and panic.
func checkCycle(l int, u, f, r []float64, v, w arena.View, h float64) {
	if l < 1 || l > grid.MaxLevel {
		panic(errors.AssertionFailedf("multigrid: level %d out of range", l))
	}
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		panic(errors.AssertionFailedf("multigrid: level %d spacing %g", l, h))
	}
	size := grid.Points(l)
	if len(u) < size || len(f) < size || len(r) < size {
		panic(errors.AssertionFailedf(
			"multigrid: level %d needs %d values, have u=%d f=%d r=%d", l, size, len(u), len(f), len(r)))
	}
	if l > 1 {
		nu, nv := grid.Size(l), grid.Size(l-1)
		if err := grid.ValidateTransfer(nv, nv, nu, nu); err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "multigrid: level %d transfer", l))
		}
	}
	need := 0
	for k := 1; k < l; k++ {
		need += grid.Points(k)
	}
	if v.Remaining() < need || w.Remaining() < need {
		panic(errors.AssertionFailedf(
			"multigrid: level %d needs %d arena values, have %d and %d", l, need, v.Remaining(), w.Remaining()))
	}
}
