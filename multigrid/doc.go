// SPDX-License-Identifier: MIT

// Package multigrid implements the geometric multigrid V-cycle for the 2-D
// Poisson problem and the driver object that owns its scratch storage.
//
// One V-cycle at level l:
//
//  1. pre-smooth u on level l;
//  2. r ← f - Lu into the shared residual scratch;
//  3. restrict r onto level l-1 as the coarse right-hand side;
//  4. solve for the coarse correction e (starting at zero) by one V-cycle
//     at level l-1 with spacing 2h;
//  5. u ← u + P·e;
//  6. post-smooth u.
//
// Level 1 (a 3×3 grid with one unknown) is solved in closed form by a
// BaseCase. The recursion is a strict chain, so the correction and
// restricted-residual fields of every level are carved once from two
// pre-sized arenas (package arena) and no allocation happens per cycle.
//
// The Multigrid driver sizes the arenas for a fixed finest level, zeroes
// them before each cycle and exposes VCycle / Step for outer iteration
// loops (package solver).
package multigrid
