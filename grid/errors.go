// SPDX-License-Identifier: MIT

package grid

import "github.com/cockroachdb/errors"

// Sentinel errors for grid construction and validation. Hot kernels never
// return errors; these surface only from constructors and validators.
var (
	// ErrBadLevel is returned when a level is below 1 or above MaxLevel.
	ErrBadLevel = errors.New("grid: level out of range")

	// ErrBadSpacing is returned when a grid spacing is not finite and positive.
	ErrBadSpacing = errors.New("grid: spacing must be finite and > 0")

	// ErrBadSize is returned when a dimension is not of the form 2^l + 1.
	ErrBadSize = errors.New("grid: dimension must be 2^l+1")

	// ErrOutOfRange indicates that a point (i, j) lies outside the field.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrShapeMismatch indicates two fields (or a fine/coarse pair) with
	// incompatible dimensions.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
)
