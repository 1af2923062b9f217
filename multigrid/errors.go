// SPDX-License-Identifier: MIT

package multigrid

import "github.com/cockroachdb/errors"

var (
	// ErrLevelMismatch is returned when a driver sized for one level is asked
	// to cycle a problem of another level.
	ErrLevelMismatch = errors.New("multigrid: problem level does not match driver level")

	// ErrNilProblem is returned when a nil problem is passed to the driver.
	ErrNilProblem = errors.New("multigrid: nil problem")

	// ErrUnknownBaseCase is returned by ParseBaseCase for unrecognised names.
	ErrUnknownBaseCase = errors.New("multigrid: unknown base case")
)
