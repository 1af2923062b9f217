// SPDX-License-Identifier: MIT

package solver

import "github.com/cockroachdb/errors"

var (
	// ErrNilProblem is returned when Solve or a Method receives a nil problem.
	ErrNilProblem = errors.New("solver: nil problem")

	// ErrNilMethod is returned when Solve receives a nil method.
	ErrNilMethod = errors.New("solver: nil method")

	// ErrNilSmoother is returned by a Relaxation without a smoother.
	ErrNilSmoother = errors.New("solver: relaxation has no smoother")

	// ErrDiverged is returned when the residual norm stops being finite.
	ErrDiverged = errors.New("solver: residual is not finite")
)
