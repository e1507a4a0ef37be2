// SPDX-License-Identifier: MIT

package particle

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/lorentz"
	"github.com/rjones30/diracxx/pauli"
)

// Lepton is a charged spin-½ leg. SDM is indexed by helicity state,
// index 0 for +½ and 1 for −½.
type Lepton struct {
	Mom  lorentz.FourVector
	Mass float64
	SDM  pauli.Matrix
}

// NewLepton returns a lepton with the given momentum, mass and density matrix.
func NewLepton(mom lorentz.FourVector, mass float64, sdm pauli.Matrix) Lepton {
	return Lepton{Mom: mom, Mass: mass, SDM: sdm}
}

// Validate checks that the lepton is on shell and that its SDM is usable.
// Reaction functions never call it; it is offered to callers assembling
// kinematics by hand.
//
// Errors: ErrOffShell, ErrBadSDM.
func (l Lepton) Validate(tol float64) error {
	m2 := l.Mom.InvariantSqr()
	scale := math.Max(1, l.Mom.Time()*l.Mom.Time())
	if math.Abs(m2-l.Mass*l.Mass) > tol*scale {
		return errors.Wrapf(ErrOffShell, "Lepton: p² = %g, m² = %g", m2, l.Mass*l.Mass)
	}
	return validateSDM(l.SDM, tol)
}

// validateSDM accepts Hermitian matrices with trace 1 (prepared state) or
// 2 (inclusive sum).
func validateSDM(rho pauli.Matrix, tol float64) error {
	if !rho.IsHermitian(tol) {
		return errors.Wrapf(ErrBadSDM, "not Hermitian: %s", rho)
	}
	tr := real(rho.Trace())
	if math.Abs(tr-1) > tol && math.Abs(tr-2) > tol {
		return errors.Wrapf(ErrBadSDM, "trace %g", tr)
	}
	return nil
}
