// SPDX-License-Identifier: MIT

package dirac

import (
	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/pauli"
)

var (
	// ErrOutOfRange indicates a matrix, spinor or Lorentz index outside its bounds.
	ErrOutOfRange = errors.New("dirac: index out of range")

	// ErrBadHelicity is shared with pauli so that either sentinel matches.
	ErrBadHelicity = pauli.ErrBadHelicity
)
