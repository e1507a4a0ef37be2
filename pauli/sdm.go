// SPDX-License-Identifier: MIT

package pauli

import (
	"math/cmplx"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/lorentz"
)

// Unpolarized returns I/2, the density matrix of an unpolarized prepared state.
func Unpolarized() Matrix {
	return Identity().Scale(0.5)
}

// Inclusive returns I, which sums over the states of an unobserved particle.
func Inclusive() Matrix {
	return Identity()
}

// FromPolarization returns (I + P·σ)/2.
// Errors: ErrBadPolarization when |P| > 1 (beyond rounding) or P is not finite.
func FromPolarization(p lorentz.ThreeVector) (Matrix, error) {
	l := p.Length()
	if !(l <= 1+1e-12) {
		return Unpolarized(), errors.Wrapf(ErrBadPolarization, "FromPolarization%s: |P| = %g", p, l)
	}
	return Identity().Add(SigmaDot(p)).Scale(0.5), nil
}

// Pure returns the normalized projector |χ⟩⟨χ|/⟨χ|χ⟩.
// Errors: ErrBadPolarization for a zero spinor.
func Pure(chi Spinor) (Matrix, error) {
	n := real(chi.Dot(chi))
	if n == 0 {
		return Unpolarized(), errors.Wrapf(ErrBadPolarization, "Pure%s: zero spinor", chi)
	}
	var m Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] = chi[i] * cmplx.Conj(chi[j]) / complex(n, 0)
		}
	}
	return m, nil
}

// Polarization returns P with Pᵢ = Re Tr(ρσⁱ)/Re Tr(ρ), the inverse of
// FromPolarization; it is zero for both Unpolarized and Inclusive.
func Polarization(rho Matrix) lorentz.ThreeVector {
	tr := real(rho.Trace())
	if tr == 0 {
		return lorentz.ThreeVector{}
	}
	var p lorentz.ThreeVector
	for i := range sigma {
		p[i] = real(rho.Mul(sigma[i]).Trace()) / tr
	}
	return p
}
