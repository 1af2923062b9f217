// SPDX-License-Identifier: MIT

package poisson

import "math"

// wavenumber returns s = 2π·mode / (h·(n-1)).
func wavenumber(n int, h, mode float64) float64 {
	return 2 * math.Pi * mode / (h * float64(n-1))
}

// Forcing fills the n×n field f with the right-hand side matching Exact,
//
//	f[i,j] = -2·s²·sin(s·h·i)·sin(s·h·j)
//
// every point included. For integer and half-integer modes the boundary
// values vanish up to rounding.
// Complexity: O(n²).
func Forcing(f []float64, n int, h, mode float64) {
	s := wavenumber(n, h, mode)
	for i := 0; i < n; i++ {
		si := math.Sin(s * h * float64(i))
		for j := 0; j < n; j++ {
			f[j+i*n] = -2 * s * s * si * math.Sin(s*h*float64(j))
		}
	}
}

// Exact fills u with the analytic solution u[i,j] = sin(s·h·j)·sin(s·h·i).
// Complexity: O(n²).
func Exact(u []float64, n int, h, mode float64) {
	s := wavenumber(n, h, mode)
	for i := 0; i < n; i++ {
		si := math.Sin(s * h * float64(i))
		for j := 0; j < n; j++ {
			u[j+i*n] = math.Sin(s*h*float64(j)) * si
		}
	}
}
