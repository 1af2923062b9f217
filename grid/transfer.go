// SPDX-License-Identifier: MIT

package grid

import "gonum.org/v1/gonum/floats"

// Restrict maps the fine sn×sm field src onto the coarse dn×dm field dst:
//
//	dst ← a·dst + b·R(src)
//
// R is full weighting, the 9-point (1 2 1; 2 4 2; 1 2 1)/16 stencil centred
// on fine point (2I, 2J). Only coarse interior points receive R(src); coarse
// boundary points become a·dst, since the restricted quantity is a residual
// or correction that vanishes on the Dirichlet boundary.
//
// Preconditions (unchecked, see ValidateTransfer): sn == 2·dn-1 and
// sm == 2·dm-1. Only fine interior points are read, so src boundary entries
// may hold anything.
//
// When a == 0 the previous dst contents are ignored rather than multiplied,
// so an uninitialised destination cannot leak NaN into the result.
// Complexity: O(dn·dm), no allocation.
func Restrict(dst []float64, dn, dm int, src []float64, sn, sm int, a, b float64) {
	for I := 0; I < dn; I++ {
		for J := 0; J < dm; J++ {
			k := J + I*dm
			if I == 0 || J == 0 || I == dn-1 || J == dm-1 {
				dst[k] = scaled(dst[k], a)
				continue
			}
			c := 2*J + 2*I*sm // centre (2I, 2J)
			up, down := c-sm, c+sm
			r := (4*src[c] +
				2*(src[up]+src[down]+src[c-1]+src[c+1]) +
				src[up-1] + src[up+1] + src[down-1] + src[down+1]) / 16
			dst[k] = scaled(dst[k], a) + b*r
		}
	}
}

// Prolongate interpolates the coarse sn×sm field src onto the fine dn×dm
// field dst:
//
//	dst ← a·dst + b·P(src)
//
// P is bilinear interpolation: fine points that coincide with coarse points
// copy them, edge midpoints average two coarse neighbours, cell centres
// average four. Fine boundary points are never written.
//
// Preconditions (unchecked, see ValidateTransfer): dn == 2·sn-1 and
// dm == 2·sm-1.
// Complexity: O(dn·dm), no allocation.
func Prolongate(dst []float64, dn, dm int, src []float64, sn, sm int, a, b float64) {
	for i := 1; i < dn-1; i++ {
		I, oddRow := i/2, i%2 == 1
		for j := 1; j < dm-1; j++ {
			J, oddCol := j/2, j%2 == 1
			c := J + I*sm
			var p float64
			switch {
			case !oddRow && !oddCol:
				p = src[c]
			case !oddRow && oddCol:
				p = 0.5 * (src[c] + src[c+1])
			case oddRow && !oddCol:
				p = 0.5 * (src[c] + src[c+sm])
			default:
				p = 0.25 * (src[c] + src[c+1] + src[c+sm] + src[c+sm+1])
			}
			k := j + i*dm
			dst[k] = scaled(dst[k], a) + b*p
		}
	}
}

// Subtract computes dst = a - b elementwise over an n×m field.
// Complexity: O(n·m).
func Subtract(dst, a, b []float64, n, m int) {
	size := n * m
	floats.SubTo(dst[:size], a[:size], b[:size])
}

// L1Norm returns the discrete L1 norm hx·hy·Σ|x| of an n×m field.
// Complexity: O(n·m).
func L1Norm(x []float64, n, m int, hx, hy float64) float64 {
	return floats.Norm(x[:n*m], 1) * hx * hy
}

// scaled returns a·v, treating a == 0 as "discard v".
func scaled(v, a float64) float64 {
	switch a {
	case 0:
		return 0
	case 1:
		return v
	default:
		return a * v
	}
}
