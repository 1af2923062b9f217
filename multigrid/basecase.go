// SPDX-License-Identifier: MIT

package multigrid

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// BaseCase is the closed-form solve on the coarsest grid (level 1, n = 3).
// Its single unknown u[1,1] is set to c·f[1,1]·h², where c is the BaseCase
// value.
type BaseCase float64

const (
	// ReferenceBaseCase is the constant used by the reference solver.
	ReferenceBaseCase BaseCase = -0.5

	// ExactBaseCase follows from the five-point stencil with all four
	// neighbours on the zero Dirichlet boundary: -4u/h² = f.
	ExactBaseCase BaseCase = -0.25
)

// Solve writes the coarsest-level solution into u. Only u[1,1] is written.
func (b BaseCase) Solve(u, f []float64, h float64) {
	const centre = 1 + 3*1
	u[centre] = float64(b) * f[centre] * h * h
}

// String names the well-known constants and prints any other value.
func (b BaseCase) String() string {
	switch b {
	case ReferenceBaseCase:
		return "reference"
	case ExactBaseCase:
		return "exact"
	default:
		return fmt.Sprintf("%g", float64(b))
	}
}

// ParseBaseCase maps "reference" or "exact" to its constant.
func ParseBaseCase(s string) (BaseCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reference":
		return ReferenceBaseCase, nil
	case "exact":
		return ExactBaseCase, nil
	default:
		return 0, errors.Wrapf(ErrUnknownBaseCase, "ParseBaseCase(%q)", s)
	}
}
