// SPDX-License-Identifier: MIT

package poisson

import "github.com/cockroachdb/errors"

// ErrBadMode is returned when the manufactured-solution mode is not finite.
var ErrBadMode = errors.New("poisson: mode must be finite")
