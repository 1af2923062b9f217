// SPDX-License-Identifier: MIT

// Package mgpoisson solves the two-dimensional Poisson equation
//
//	∆u = f on a square, u = 0 on its boundary
//
// with geometric multigrid.
//
// What is in the box?
//
//	A small, allocation-free V-cycle engine and the pieces around it:
//		• Grid levels n = 2^l+1, row-major fields, full-weighting restriction
//		  and bilinear prolongation
//		• Pre-sized scratch arenas carved per level by a bump allocator
//		• Gauss-Seidel smoothers: natural order, red-black, parallel red-black
//		• The five-point residual operator and manufactured test problems
//		• An outer solve loop with stopping rules, reports and logging
//		• A command-line tool for single solves and level sweeps
//
// Layout:
//
//	grid/      : levels, fields, restriction, prolongation, norms
//	arena/     : scratch sizing, views and the per-level layout
//	smoother/  : the Smoother interface and its Gauss-Seidel variants
//	poisson/   : residual operator, manufactured solutions, Problem
//	multigrid/ : the recursive V-cycle and the Multigrid driver
//	solver/    : Method, Solve, Report, Relaxation and Direct
//	cmd/mgpoisson : the CLI (solve, sweep)
//
// Quick start:
//
//	p, _ := poisson.NewProblem(7, grid.Spacing(7, 1), 1)
//	m, _ := multigrid.NewFor(p, multigrid.WithSmoother(smoother.RedBlack{}))
//	rep, _ := solver.Solve(ctx, p, m, solver.WithTolerance(1e-8))
//	fmt.Println(rep.Steps(), rep.Final().Residual)
//
// Every level costs O(n²) per cycle and the residual falls by roughly an
// order of magnitude per V-cycle regardless of n, so a solve to rounding
// takes a handful of cycles at any size.
package mgpoisson
