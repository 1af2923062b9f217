// SPDX-License-Identifier: MIT

// Package arena owns the scratch storage of one multigrid hierarchy.
//
// A V-cycle descends a strict chain of levels L, L-1, ..., 1 and visits each
// of them once on the way down, so per-level storage never needs to be
// freed or reused inside one cycle. Two flat arenas are sized once for the
// whole chain and handed to the recursion as View values; each recursive
// step carves the fields it needs for the next coarser level and passes the
// advanced View down. A single residual scratch field sized for the finest
// level is shared by every level, one after another.
//
// The package only does bookkeeping; it performs no numerical work.
package arena

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/mgpoisson/grid"
)

// ErrOverrun indicates a carve request that does not fit the remaining arena.
// The V-cycle never triggers it for an arena sized by New; it exists so that
// a mis-sized view fails loudly instead of aliasing neighbouring storage.
var ErrOverrun = errors.New("arena: carve exceeds remaining capacity")

// TotalSize returns Σ_{i=0}^{L} (2^i+1)², the element count of one arena
// sized for finest level L.
// Complexity: O(L).
func TotalSize(l int) int {
	size := 0
	for i := 0; i <= l; i++ {
		size += grid.Points(i)
	}

	return size
}

// Arena holds the correction arena, the restricted-residual arena and the
// shared residual scratch field for a hierarchy with finest level L.
type Arena struct {
	level       int
	corrections []float64 // per-level additive corrections e
	residuals   []float64 // per-level restricted residuals (coarse right-hand sides)
	scratch     []float64 // residual of the level being processed, n(L)² values
}

// New allocates the storage for finest level l.
// Stage 1 (Validate): 1 ≤ l ≤ grid.MaxLevel; out-of-range levels are refused
// before any allocation happens.
// Stage 2 (Prepare): two arenas of TotalSize(l) values and one n(l)² field,
// all zeroed.
// Complexity: O(TotalSize(l)) time and memory.
func New(l int) (*Arena, error) {
	if err := grid.ValidateLevel(l); err != nil {
		return nil, errors.Wrap(err, "arena.New")
	}
	size := TotalSize(l)

	return &Arena{
		level:       l,
		corrections: make([]float64, size),
		residuals:   make([]float64, size),
		scratch:     make([]float64, grid.Points(l)),
	}, nil
}

// Level returns the finest level the arena was sized for.
func (a *Arena) Level() int {
	return a.level
}

// Len returns the element count of each of the two arenas.
func (a *Arena) Len() int {
	return len(a.corrections)
}

// Bytes returns the total storage held, in bytes.
func (a *Arena) Bytes() int {
	return 8 * (len(a.corrections) + len(a.residuals) + len(a.scratch))
}

// Reset zero-fills both arenas. Corrections must start from zero on every
// V-cycle; the scratch field is overwritten before it is read and is left
// alone.
func (a *Arena) Reset() {
	clear(a.corrections)
	clear(a.residuals)
}

// Views returns fresh views over the correction and residual arenas, both
// positioned at offset 0.
func (a *Arena) Views() (corrections, residuals View) {
	return NewView(a.corrections), NewView(a.residuals)
}

// Scratch returns the shared residual field of n(L)² values.
func (a *Arena) Scratch() []float64 {
	return a.scratch
}
