// SPDX-License-Identifier: MIT

package particle

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/lorentz"
	"github.com/rjones30/diracxx/pauli"
)

// PolarizationBasis selects the pair of transverse vectors a photon SDM
// refers to.
type PolarizationBasis int

const (
	// Linear is the (θ̂, φ̂) basis.
	Linear PolarizationBasis = iota
	// Helicity is the circular basis, h = +1 first.
	Helicity
)

// String implements fmt.Stringer.
func (b PolarizationBasis) String() string {
	switch b {
	case Linear:
		return "linear"
	case Helicity:
		return "helicity"
	default:
		return "unknown"
	}
}

// Photon is a real or virtual photon leg.
type Photon struct {
	Mom   lorentz.FourVector
	SDM   pauli.Matrix
	Basis PolarizationBasis
}

// NewPhoton returns a photon whose SDM refers to the linear basis.
func NewPhoton(mom lorentz.FourVector, sdm pauli.Matrix) Photon {
	return Photon{Mom: mom, SDM: sdm, Basis: Linear}
}

// NewPhotonInBasis returns a photon whose SDM refers to basis.
func NewPhotonInBasis(mom lorentz.FourVector, sdm pauli.Matrix, basis PolarizationBasis) Photon {
	return Photon{Mom: mom, SDM: sdm, Basis: basis}
}

// Eps returns the polarization four-vector ε_j, j ∈ {1, 2}. Both vectors
// have zero time component and are transverse to the photon momentum.
// For j outside {1, 2} it returns ε₁ and ErrBadPolarizationIndex.
func (g Photon) Eps(j int) (lorentz.FourVectorComplex, error) {
	theta, phi := g.Mom.Space().Theta(), g.Mom.Space().Phi()
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	thetaHat := lorentz.NewThreeVector(ct*cp, ct*sp, -st).Complex()
	phiHat := lorentz.NewThreeVector(-sp, cp, 0).Complex()

	var e [2]lorentz.ThreeVectorComplex
	switch g.Basis {
	case Helicity:
		r := complex(1/math.Sqrt2, 0)
		e[0] = thetaHat.Add(phiHat.Scale(1i)).Scale(-r)
		e[1] = thetaHat.Sub(phiHat.Scale(1i)).Scale(r)
	default:
		e[0], e[1] = thetaHat, phiHat
	}
	if j != 1 && j != 2 {
		return lorentz.NewFourVectorComplex(0, e[0]), errors.Wrapf(ErrBadPolarizationIndex, "Photon.Eps(%d)", j)
	}
	return lorentz.NewFourVectorComplex(0, e[j-1]), nil
}

// EpsStar returns the complex conjugate of Eps(j).
func (g Photon) EpsStar(j int) (lorentz.FourVectorComplex, error) {
	e, err := g.Eps(j)
	return e.Conj(), err
}

// Validate checks that the photon is lightlike within tol (relative to E²)
// and that its SDM is usable.
//
// Errors: ErrOffShell, ErrBadSDM.
func (g Photon) Validate(tol float64) error {
	k2 := g.Mom.InvariantSqr()
	if math.Abs(k2) > tol*math.Max(1, g.Mom.Time()*g.Mom.Time()) {
		return errors.Wrapf(ErrOffShell, "Photon: k² = %g", k2)
	}
	return validateSDM(g.SDM, tol)
}
