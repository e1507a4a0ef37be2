// SPDX-License-Identifier: MIT

package xsect

import "github.com/cockroachdb/errors"

var (
	// ErrBadConstants is returned by Constants.Validate for a non-positive or
	// non-finite coupling or conversion factor.
	ErrBadConstants = errors.New("xsect: physical constants must be finite and positive")

	// ErrBadLegs is returned for a leg count outside [0, MaxLegs] or an SDM
	// list that does not match the legs of an amplitude.
	ErrBadLegs = errors.New("xsect: bad amplitude leg count")

	// ErrBadState is returned when an amplitude entry is addressed with the
	// wrong number of labels or a label other than 0 or 1.
	ErrBadState = errors.New("xsect: invalid amplitude state label")
)
