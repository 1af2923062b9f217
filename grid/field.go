// SPDX-License-Identifier: MIT

package grid

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/zeebo/xxh3"
	"gonum.org/v1/gonum/floats"
)

// fieldErrorf wraps an underlying error with Field method context.
func fieldErrorf(method string, i, j int, err error) error {
	return errors.Wrapf(err, "Field.%s(%d,%d)", method, i, j)
}

// Field is an n×n scalar field stored row-major in a flat slice.
// The value at grid point (i, j) lives at data[j+i*n].
type Field struct {
	n    int       // linear dimension, 2^l+1
	data []float64 // flat backing storage, length == n*n
}

// NewField allocates a zeroed field of linear dimension n.
// Stage 1 (Validate): n must be 2^l+1 with 1 ≤ l ≤ MaxLevel.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(n²) time and memory.
func NewField(n int) (*Field, error) {
	if _, err := LevelOf(n); err != nil {
		return nil, errors.Wrap(err, "NewField")
	}

	return &Field{n: n, data: make([]float64, n*n)}, nil
}

// NewLevelField allocates a zeroed field for level l.
func NewLevelField(l int) (*Field, error) {
	if err := ValidateLevel(l); err != nil {
		return nil, errors.Wrap(err, "NewLevelField")
	}

	return NewField(Size(l))
}

// N returns the linear dimension of the field.
func (f *Field) N() int {
	return f.n
}

// Data exposes the flat row-major backing slice. Kernels operate on it
// directly; the slice aliases the field's storage.
func (f *Field) Data() []float64 {
	return f.data
}

// Index maps (i, j) to the row-major offset j + i·n. No bounds check.
// Complexity: O(1).
func (f *Field) Index(i, j int) int {
	return j + i*f.n
}

// Coordinate converts a row-major offset back to (i, j).
// Complexity: O(1).
func (f *Field) Coordinate(idx int) (i, j int) {
	return idx / f.n, idx % f.n
}

// InBounds reports whether (i, j) lies within the field.
func (f *Field) InBounds(i, j int) bool {
	return i >= 0 && i < f.n && j >= 0 && j < f.n
}

// IsBoundary reports whether (i, j) is a Dirichlet boundary point.
func (f *Field) IsBoundary(i, j int) bool {
	return i == 0 || j == 0 || i == f.n-1 || j == f.n-1
}

// At returns the value at (i, j) or ErrOutOfRange.
func (f *Field) At(i, j int) (float64, error) {
	if !f.InBounds(i, j) {
		return 0, fieldErrorf("At", i, j, ErrOutOfRange)
	}

	return f.data[f.Index(i, j)], nil
}

// Set assigns v at (i, j) or returns ErrOutOfRange.
func (f *Field) Set(i, j int, v float64) error {
	if !f.InBounds(i, j) {
		return fieldErrorf("Set", i, j, ErrOutOfRange)
	}
	f.data[f.Index(i, j)] = v

	return nil
}

// Fill evaluates fn at every grid point and stores the result.
func (f *Field) Fill(fn func(i, j int) float64) {
	for i := 0; i < f.n; i++ {
		row := f.data[i*f.n : (i+1)*f.n]
		for j := range row {
			row[j] = fn(i, j)
		}
	}
}

// Zero resets every value, boundary included, to 0.
func (f *Field) Zero() {
	clear(f.data)
}

// Clone returns a deep copy of the field.
// Complexity: O(n²) time and memory.
func (f *Field) Clone() *Field {
	data := make([]float64, len(f.data))
	copy(data, f.data)

	return &Field{n: f.n, data: data}
}

// CopyFrom overwrites f with the contents of src.
// Returns ErrShapeMismatch when the dimensions differ.
func (f *Field) CopyFrom(src *Field) error {
	if src.n != f.n {
		return errors.Wrapf(ErrShapeMismatch, "Field.CopyFrom: %d vs %d", f.n, src.n)
	}
	copy(f.data, src.data)

	return nil
}

// MaxNorm returns max |f[i,j]| over the whole field.
func (f *Field) MaxNorm() float64 {
	return floats.Norm(f.data, math.Inf(1))
}

// Checksum fingerprints the full field bit pattern with xxh3.
// Two fields with equal checksums hold (with overwhelming probability)
// bit-identical values, which makes it cheap to assert that a kernel left
// a field untouched.
func (f *Field) Checksum() uint64 {
	if len(f.data) == 0 {
		return xxh3.Hash(nil)
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(f.data))), len(f.data)*8)

	return xxh3.Hash(raw)
}

// BoundaryChecksum fingerprints only the Dirichlet boundary values, visited
// in a fixed order: top row, bottom row, then the left and right columns of
// every interior row.
func (f *Field) BoundaryChecksum() uint64 {
	h := xxh3.New()
	var buf [8]byte
	put := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	last := f.n - 1
	for j := 0; j < f.n; j++ {
		put(f.data[f.Index(0, j)])
		put(f.data[f.Index(last, j)])
	}
	for i := 1; i < last; i++ {
		put(f.data[f.Index(i, 0)])
		put(f.data[f.Index(i, last)])
	}

	return h.Sum64()
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(n²).
func (f *Field) String() string {
	var sb strings.Builder
	for i := 0; i < f.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < f.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", f.data[f.Index(i, j)])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
