// SPDX-License-Identifier: MIT

package arena

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/mgpoisson/grid"
)

// View is a bump-allocation cursor into one arena. It is a small value: the
// recursion passes it by value, and carving returns the advanced copy, so no
// level can observe or disturb the cursor of another.
type View struct {
	buf []float64
	off int
}

// NewView returns a view over caller-owned storage, positioned at offset 0.
func NewView(buf []float64) View {
	return View{buf: buf}
}

// Offset returns the number of elements already carved from the arena.
func (v View) Offset() int {
	return v.off
}

// Remaining returns the number of elements still available.
func (v View) Remaining() int {
	return len(v.buf) - v.off
}

// Carve returns the next size elements and the view advanced past them.
// The returned slice has its capacity clipped to size, so an append or an
// out-of-range write on it can never reach storage owned by another level.
// Carving past the end of the arena panics through the slice bounds check.
// Complexity: O(1), no allocation.
func (v View) Carve(size int) ([]float64, View) {
	end := v.off + size
	field := v.buf[v.off:end:end]

	return field, View{buf: v.buf, off: end}
}

// TryCarve is Carve with an explicit capacity check instead of a panic.
func (v View) TryCarve(size int) ([]float64, View, error) {
	if size < 0 || size > v.Remaining() {
		return nil, v, errors.Wrapf(ErrOverrun, "carve %d at offset %d of %d", size, v.off, len(v.buf))
	}
	field, next := v.Carve(size)

	return field, next, nil
}

// Region describes the slice of an arena used by one level of a V-cycle.
type Region struct {
	Level  int // coarse level the fields belong to
	Offset int // first element
	Size   int // n(Level)² elements
}

// End returns the first element past the region.
func (r Region) End() int {
	return r.Offset + r.Size
}

// Layout returns, from finest to coarsest, the regions a V-cycle at finest
// level l carves from each arena: one n(k)² region for every coarse level
// k = l-1, ..., 1, laid out back to back from offset 0. Both arenas share
// this layout.
// Complexity: O(l).
func Layout(l int) []Region {
	if l < 2 {
		return nil
	}
	regions := make([]Region, 0, l-1)
	off := 0
	for k := l - 1; k >= 1; k-- {
		size := grid.Points(k)
		regions = append(regions, Region{Level: k, Offset: off, Size: size})
		off += size
	}

	return regions
}
