// SPDX-License-Identifier: MIT

//go:build invariants || race

package multigrid

const invariantsEnabled = true
