// SPDX-License-Identifier: MIT

package smoother

import (
	"fmt"

	"github.com/exascience/pargo/parallel"
)

// Smoother performs one in-place relaxation sweep over the interior of the
// n×n field u for right-hand side f and spacing h.
type Smoother interface {
	Relax(u, f []float64, n int, h float64)
	Name() string
}

// minParallelRows is the interior row count below which RedBlack runs its
// passes sequentially even when Parallel is set; smaller grids finish faster
// than the goroutines can be scheduled.
const minParallelRows = 64

// GaussSeidel relaxes in natural row-major order (i outer, j inner).
type GaussSeidel struct{}

// Relax performs one lexicographic Gauss-Seidel sweep.
func (GaussSeidel) Relax(u, f []float64, n int, h float64) {
	h2 := h * h
	for i := 1; i < n-1; i++ {
		for j := 1; j < n-1; j++ {
			k := j + i*n
			u[k] = -0.25 * (h2*f[k] - u[k+1] - u[k-1] - u[k+n] - u[k-n])
		}
	}
}

// Name identifies the variant in diagnostics.
func (GaussSeidel) Name() string {
	return "Gauss-Seidel"
}

// RedBlack relaxes the red points (i+j even) first, then the black points
// (i+j odd). Setting Parallel splits each colour pass across row ranges;
// the result is bit-identical to the sequential sweep.
type RedBlack struct {
	Parallel bool
}

// Relax performs one red pass followed by one black pass.
func (rb RedBlack) Relax(u, f []float64, n int, h float64) {
	h2 := h * h
	for color := 0; color < 2; color++ {
		if !rb.Parallel || n-2 < minParallelRows {
			relaxColor(u, f, n, h2, color, 1, n-1)
			continue
		}
		c := color
		parallel.Range(1, n-1, 0, func(low, high int) {
			relaxColor(u, f, n, h2, c, low, high)
		})
	}
}

// Name identifies the variant in diagnostics.
func (rb RedBlack) Name() string {
	if rb.Parallel {
		return "Gauss-Seidel (red-black, parallel)"
	}

	return "Gauss-Seidel (red-black)"
}

// relaxColor updates the points of one colour ((i+j)%2 == color) in rows
// [low, high). Rows of one colour pass never read each other's updates.
func relaxColor(u, f []float64, n int, h2 float64, color, low, high int) {
	for i := low; i < high; i++ {
		for j := 1 + (i+1+color)%2; j < n-1; j += 2 {
			k := j + i*n
			u[k] = -0.25 * (h2*f[k] - u[k+1] - u[k-1] - u[k+n] - u[k-n])
		}
	}
}

// Repeat returns a smoother that applies s k times per Relax call.
// Repeat(s, 1) returns s itself. Panics on k < 1 (programmer error).
func Repeat(s Smoother, k int) Smoother {
	if k < 1 {
		panic(fmt.Sprintf("smoother: Repeat: sweep count %d must be >= 1", k))
	}
	if k == 1 {
		return s
	}

	return repeated{s: s, k: k}
}

type repeated struct {
	s Smoother
	k int
}

func (r repeated) Relax(u, f []float64, n int, h float64) {
	for i := 0; i < r.k; i++ {
		r.s.Relax(u, f, n, h)
	}
}

func (r repeated) Name() string {
	return fmt.Sprintf("%s x%d", r.s.Name(), r.k)
}
