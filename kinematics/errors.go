// SPDX-License-Identifier: MIT

package kinematics

import "github.com/cockroachdb/errors"

// ErrUnphysical is returned when the requested configuration has no real
// solution: an energy below the mass, a non-positive photon energy or a
// closure without a positive root.
var ErrUnphysical = errors.New("kinematics: unphysical configuration")
