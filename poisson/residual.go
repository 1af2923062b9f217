// SPDX-License-Identifier: MIT

package poisson

// Residual writes r = f - Lu on the interior of an n×n grid with spacing h,
//
//	r[i,j] = f[i,j] - (u[i,j+1] + u[i,j-1] - 4·u[i,j] + u[i+1,j] + u[i-1,j]) / h²
//
// Boundary entries of r are not written; callers must not rely on them.
// u and f are only read.
// Complexity: O(n²), no allocation.
func Residual(r, u, f []float64, n int, h float64) {
	hi2 := 1 / (h * h)
	for i := 1; i < n-1; i++ {
		for j := 1; j < n-1; j++ {
			k := j + i*n
			r[k] = f[k] - (u[k+1]+u[k-1]-4*u[k]+u[k+n]+u[k-n])*hi2
		}
	}
}
