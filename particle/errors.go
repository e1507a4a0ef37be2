// SPDX-License-Identifier: MIT

package particle

import "github.com/cockroachdb/errors"

var (
	// ErrBadPolarizationIndex indicates a polarization index outside {1, 2}.
	ErrBadPolarizationIndex = errors.New("particle: polarization index must be 1 or 2")

	// ErrOffShell is reported by Validate when p² differs from m².
	ErrOffShell = errors.New("particle: momentum is off the mass shell")

	// ErrBadSDM is reported by Validate for a non-Hermitian density matrix or
	// one whose trace is neither 1 nor 2.
	ErrBadSDM = errors.New("particle: invalid spin-density matrix")
)
