// SPDX-License-Identifier: MIT

// Package solver runs an iterative method on a poisson.Problem until it
// converges, and records how it got there.
//
// A Method performs one step in place on the problem's solution field: one
// V-cycle for *multigrid.Multigrid, one relaxation sweep for Relaxation, an
// exact solve of the discrete system for Direct.
// Solve repeats steps, measuring the residual norm after each, and stops on
// the first of:
//
//   - residual norm ≤ tolerance (ReasonTolerance);
//   - residual norm ≤ reduction × initial norm (ReasonReduction);
//   - MaxSteps steps taken (ReasonMaxSteps);
//   - the context is done (an error wrapping ctx.Err()).
//
// Cancellation is observed between steps only; a started step always runs
// to completion.
package solver
