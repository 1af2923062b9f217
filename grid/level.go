// SPDX-License-Identifier: MIT

package grid

import (
	"math"

	"github.com/cockroachdb/errors"
)

// MaxLevel is the finest level a hierarchy may use. A level-14 field already
// holds 16385² values (about 2 GiB of float64), and the arena needs two more
// hierarchies of that order; anything above is refused up front instead of
// failing half-way through allocation.
const MaxLevel = 14

// Size returns the linear dimension n(l) = 2^l + 1 of level l.
// Size(0) == 2 is admitted so arena sizing can sum from level 0.
// Complexity: O(1).
func Size(l int) int {
	return 1<<l + 1
}

// Points returns n(l)², the number of values in one field of level l.
// Complexity: O(1).
func Points(l int) int {
	n := Size(l)
	return n * n
}

// Spacing returns h(l) = extent / 2^l, so that h(l)·(n(l)-1) == extent on
// every level of the hierarchy.
// Complexity: O(1).
func Spacing(l int, extent float64) float64 {
	return extent / float64(int(1)<<l)
}

// Extent returns the domain extent h·(n-1) covered by a grid of dimension n.
func Extent(n int, h float64) float64 {
	return h * float64(n-1)
}

// LevelOf inverts Size: it returns l such that Size(l) == n.
// Returns ErrBadSize when n is not of the form 2^l + 1 with 1 ≤ l ≤ MaxLevel.
func LevelOf(n int) (int, error) {
	for l := 1; l <= MaxLevel; l++ {
		if Size(l) == n {
			return l, nil
		}
	}

	return 0, errors.Wrapf(ErrBadSize, "grid.LevelOf(%d)", n)
}

// ValidateLevel checks 1 ≤ l ≤ MaxLevel.
// Complexity: O(1).
func ValidateLevel(l int) error {
	if l < 1 || l > MaxLevel {
		return errors.Wrapf(ErrBadLevel, "ValidateLevel(%d): want 1..%d", l, MaxLevel)
	}

	return nil
}

// ValidateSpacing checks that h is finite and strictly positive.
// Complexity: O(1).
func ValidateSpacing(h float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return errors.Wrapf(ErrBadSpacing, "ValidateSpacing(%g)", h)
	}

	return nil
}

// ValidateTransfer checks that a coarse dn×dm grid and a fine sn×sm grid are
// one level apart: sn == 2·dn-1 and sm == 2·dm-1.
func ValidateTransfer(dn, dm, sn, sm int) error {
	if dn < 2 || dm < 2 {
		return errors.Wrapf(ErrShapeMismatch, "ValidateTransfer: coarse %dx%d", dn, dm)
	}
	if sn != 2*dn-1 || sm != 2*dm-1 {
		return errors.Wrapf(ErrShapeMismatch, "ValidateTransfer: coarse %dx%d, fine %dx%d", dn, dm, sn, sm)
	}

	return nil
}
