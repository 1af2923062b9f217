// SPDX-License-Identifier: MIT

// Package grid holds the square-grid hierarchy used by the multigrid solver:
// level arithmetic, the row-major Field container and the inter-grid
// transfer kernels (restriction, prolongation, subtraction, L1 norm).
//
// What:
//
//   - Level l has linear dimension n(l) = 2^l + 1 and spacing h(l) = extent / 2^l.
//   - A field of dimension n is a flat []float64 of n·n values, index j + i·n.
//   - Restrict maps an n(l)×n(l) field onto n(l-1)×n(l-1) by full weighting.
//   - Prolongate maps it back by bilinear interpolation.
//
// Boundary rows and columns (i or j equal to 0 or n-1) carry the Dirichlet
// data. The transfer kernels read and write interior points only, so a
// boundary initialised once stays bit-for-bit identical for a whole solve.
//
// Complexity:
//
//   - Restrict:   O(n²/4) time, no allocation.
//   - Prolongate: O(n²) time, no allocation.
//   - L1Norm:     O(n²) time, no allocation.
package grid
