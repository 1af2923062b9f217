// SPDX-License-Identifier: MIT

// Package smoother provides the relaxation sweeps used by the multigrid
// V-cycle on the five-point discretisation of Lu = f, L = ∂²/∂x² + ∂²/∂y².
//
// Every smoother updates interior points (1 ≤ i, j ≤ n-2) in place with
//
//	u[i,j] ← -0.25·(h²·f[i,j] - u[i,j+1] - u[i,j-1] - u[i+1,j] - u[i-1,j])
//
// and never writes boundary points. Smoothers carry no state between calls;
// they are plain values that the V-cycle and the driver hold by copy.
//
// Variants:
//
//   - GaussSeidel: natural row-major order. Each update sees the already
//     relaxed neighbours (i, j-1) and (i-1, j): true Gauss-Seidel.
//   - RedBlack: a red pass over points with even i+j, then a black pass over
//     points with odd i+j. Updates inside one pass only read the other
//     colour, so they are mutually independent; with Parallel set, each pass
//     is split into row ranges and run concurrently.
//
// Complexity: O(n²) per sweep, no allocation.
package smoother
