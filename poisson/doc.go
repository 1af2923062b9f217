// SPDX-License-Identifier: MIT

// Package poisson holds the discrete 2-D Poisson problem Lu = f with
// homogeneous Dirichlet boundary conditions on a square grid of level l:
//
//   - Residual computes r = f - Lu on interior points with the five-point
//     Laplacian.
//   - Forcing and Exact generate a manufactured right-hand side and its
//     analytic solution, u = sin(s·x)·sin(s·y) with s = 2π·mode/extent.
//   - Problem owns the finest-level fields u, f and r and reports the
//     residual and error norms used to monitor convergence.
//
// Solvers (smoothers, the multigrid driver) mutate Problem.U in place; the
// Problem itself never runs a solver.
package poisson
