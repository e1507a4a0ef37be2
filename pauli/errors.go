// SPDX-License-Identifier: MIT

package pauli

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfRange indicates an index outside the valid bounds.
	ErrOutOfRange = errors.New("pauli: index out of range")

	// ErrBadHelicity indicates a helicity other than +1/2 or −1/2.
	ErrBadHelicity = errors.New("pauli: helicity must be +1/2 or -1/2")

	// ErrBadPolarization indicates a polarization vector longer than one or a
	// state that cannot be normalized.
	ErrBadPolarization = errors.New("pauli: invalid polarization")
)
