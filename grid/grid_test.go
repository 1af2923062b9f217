// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mgpoisson/grid"
)

// TestSize_SpacingInvariant checks n(l) = 2^l+1 and that h(l)·(n(l)-1) stays
// equal to the extent while h doubles on every coarsening step.
func TestSize_SpacingInvariant(t *testing.T) {
	const extent = 1.0
	for l := 1; l <= 12; l++ {
		n := grid.Size(l)
		assert.Equal(t, (1<<l)+1, n, "Size(%d)", l)
		assert.Equal(t, 1, n%2, "Size(%d) must be odd", l)
		assert.Equal(t, n*n, grid.Points(l))

		h := grid.Spacing(l, extent)
		assert.Equal(t, extent, grid.Extent(n, h), "extent at level %d", l)
		if l > 1 {
			assert.Equal(t, 2*h, grid.Spacing(l-1, extent), "coarser spacing at level %d", l-1)
		}
	}
	assert.Equal(t, 2, grid.Size(0))
}

// TestLevelOf verifies the Size inverse and its rejection of other sizes.
func TestLevelOf(t *testing.T) {
	for l := 1; l <= grid.MaxLevel; l++ {
		got, err := grid.LevelOf(grid.Size(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	for _, n := range []int{0, 1, 2, 4, 6, 32, 34} {
		_, err := grid.LevelOf(n)
		assert.ErrorIs(t, err, grid.ErrBadSize, "LevelOf(%d)", n)
	}
}

// TestValidators covers the level, spacing and transfer-shape guards.
func TestValidators(t *testing.T) {
	assert.NoError(t, grid.ValidateLevel(1))
	assert.NoError(t, grid.ValidateLevel(grid.MaxLevel))
	assert.ErrorIs(t, grid.ValidateLevel(0), grid.ErrBadLevel)
	assert.ErrorIs(t, grid.ValidateLevel(-3), grid.ErrBadLevel)
	assert.ErrorIs(t, grid.ValidateLevel(grid.MaxLevel+1), grid.ErrBadLevel)

	assert.NoError(t, grid.ValidateSpacing(0.25))
	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, grid.ValidateSpacing(h), grid.ErrBadSpacing, "h=%v", h)
	}

	assert.NoError(t, grid.ValidateTransfer(3, 3, 5, 5))
	assert.NoError(t, grid.ValidateTransfer(17, 17, 33, 33))
	assert.ErrorIs(t, grid.ValidateTransfer(3, 3, 9, 9), grid.ErrShapeMismatch)
	assert.ErrorIs(t, grid.ValidateTransfer(1, 1, 1, 1), grid.ErrShapeMismatch)
}

// TestRestrict_Constant checks that full weighting reproduces a constant on
// interior coarse points and zeroes the coarse boundary.
func TestRestrict_Constant(t *testing.T) {
	const sn, dn = 9, 5
	src := make([]float64, sn*sn)
	for k := range src {
		src[k] = 3
	}
	dst := make([]float64, dn*dn)
	for k := range dst {
		dst[k] = math.NaN() // a == 0 must discard previous contents
	}

	grid.Restrict(dst, dn, dn, src, sn, sn, 0, 1)

	for I := 0; I < dn; I++ {
		for J := 0; J < dn; J++ {
			want := 3.0
			if I == 0 || J == 0 || I == dn-1 || J == dn-1 {
				want = 0
			}
			assert.Equal(t, want, dst[J+I*dn], "dst[%d,%d]", I, J)
		}
	}
}

// TestRestrict_Linear checks that full weighting is exact on linear data and
// ignores the fine boundary.
func TestRestrict_Linear(t *testing.T) {
	const sn, dn = 17, 9
	src := make([]float64, sn*sn)
	for i := 0; i < sn; i++ {
		for j := 0; j < sn; j++ {
			v := float64(i + 2*j)
			if i == 0 || j == 0 || i == sn-1 || j == sn-1 {
				v = 1e9 // garbage on the boundary must not be read
			}
			src[j+i*sn] = v
		}
	}
	dst := make([]float64, dn*dn)
	grid.Restrict(dst, dn, dn, src, sn, sn, 0, 1)

	for I := 1; I < dn-1; I++ {
		for J := 1; J < dn-1; J++ {
			want := float64(2*I + 4*J)
			assert.Equal(t, want, dst[J+I*dn], "dst[%d,%d]", I, J)
		}
	}
}

// TestRestrict_Weights checks dst ← a·dst + b·R(src).
func TestRestrict_Weights(t *testing.T) {
	const sn, dn = 5, 3
	src := make([]float64, sn*sn)
	for k := range src {
		src[k] = 1
	}
	dst := []float64{
		9, 9, 9,
		9, 2, 9,
		9, 9, 9,
	}
	grid.Restrict(dst, dn, dn, src, sn, sn, 0.5, 3)
	assert.Equal(t, 0.5*2+3*1, dst[4])
	assert.Equal(t, 4.5, dst[0], "boundary keeps a·dst")
}

// TestProlongate_Linear checks bilinear interpolation of linear data and that
// the fine boundary is never written.
func TestProlongate_Linear(t *testing.T) {
	const sn, dn = 5, 9
	src := make([]float64, sn*sn)
	for I := 0; I < sn; I++ {
		for J := 0; J < sn; J++ {
			src[J+I*sn] = float64(I + 2*J)
		}
	}
	dst := make([]float64, dn*dn)
	for k := range dst {
		dst[k] = 1
	}
	for j := 0; j < dn; j++ {
		dst[j] = 7
		dst[j+(dn-1)*dn] = 7
	}

	grid.Prolongate(dst, dn, dn, src, sn, sn, 1, 1)

	for i := 0; i < dn; i++ {
		for j := 0; j < dn; j++ {
			got := dst[j+i*dn]
			switch {
			case i == 0 || i == dn-1:
				assert.Equal(t, 7.0, got, "boundary row (%d,%d)", i, j)
			case j == 0 || j == dn-1:
				assert.Equal(t, 1.0, got, "boundary column (%d,%d)", i, j)
			default:
				assert.Equal(t, 1+float64(i)/2+float64(j), got, "interior (%d,%d)", i, j)
			}
		}
	}
}

// TestSubtractAndL1Norm checks the elementwise difference and the
// cell-area-weighted L1 norm.
func TestSubtractAndL1Norm(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}
	dst := make([]float64, 9)
	grid.Subtract(dst, a, b, 3, 3)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, dst)

	dst[0] = -4
	assert.InDelta(t, 40*0.5*0.25, grid.L1Norm(dst, 3, 3, 0.5, 0.25), 1e-15)
}
