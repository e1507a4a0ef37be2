// SPDX-License-Identifier: MIT

package dirac

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/lorentz"
	"github.com/rjones30/diracxx/pauli"
)

// Spinor is a four-component Dirac spinor.
type Spinor [4]complex128

// join stacks two Pauli spinors into (upper; lower).
func join(upper, lower pauli.Spinor) Spinor {
	return Spinor{upper[0], upper[1], lower[0], lower[1]}
}

// U returns the positive-energy spinor of four-momentum p and helicity ±1/2:
//
//	u = ( √(E+m) χ_h ; 2h |p|/√(E+m) χ_h ),  ūu = 2m.
//
// The mass is the invariant of p itself, so an off-shell p defines its own
// mass. |p|/√(E+m) replaces √(E−m) to stay accurate near rest.
//
// Errors:
//   - ErrBadHelicity for any helicity other than ±1/2.
//   - lorentz.ErrInvalidInvariant when p is spacelike beyond resolution.
func U(p lorentz.FourVector, helicity float64) (Spinor, error) {
	a, b, chi, err := spinorParts(p, helicity)
	if err != nil {
		return Spinor{}, errors.Wrap(err, "dirac.U")
	}
	return join(chi.Scale(complex(a, 0)), chi.Scale(complex(2*helicity*b, 0))), nil
}

// V returns the negative-energy (antiparticle) spinor of four-momentum p and
// helicity ±1/2, built on the opposite two-component state:
//
//	v = ( −2h |p|/√(E+m) χ₋h ; √(E+m) χ₋h ),  v̄v = −2m.
//
// Errors: as for U.
func V(p lorentz.FourVector, helicity float64) (Spinor, error) {
	a, b, chi, err := spinorParts(p, -helicity)
	if err != nil {
		return Spinor{}, errors.Wrap(err, "dirac.V")
	}
	return join(chi.Scale(complex(-2*helicity*b, 0)), chi.Scale(complex(a, 0))), nil
}

// spinorParts returns √(E+m), |p|/√(E+m) and the helicity state χ_h.
func spinorParts(p lorentz.FourVector, helicity float64) (float64, float64, pauli.Spinor, error) {
	chi, err := pauli.HelicityState(p.Space(), helicity)
	if err != nil {
		return 0, 0, chi, err
	}
	m, err := p.Invariant()
	if err != nil {
		return 0, 0, chi, err
	}
	a := math.Sqrt(p.Time() + m)
	var b float64
	if a > 0 {
		b = p.Length() / a
	}
	return a, b, chi, nil
}

// At returns component i, or the first component and ErrOutOfRange.
func (s Spinor) At(i int) (complex128, error) {
	if i < 0 || i > 3 {
		return s[0], errors.Wrapf(ErrOutOfRange, "Spinor.At(%d)", i)
	}
	return s[i], nil
}

// Add returns s + t.
func (s Spinor) Add(t Spinor) Spinor {
	return Spinor{s[0] + t[0], s[1] + t[1], s[2] + t[2], s[3] + t[3]}
}

// Scale returns f·s.
func (s Spinor) Scale(f complex128) Spinor {
	return Spinor{f * s[0], f * s[1], f * s[2], f * s[3]}
}

// Bar returns the components of the Dirac adjoint s̄ = s†γ⁰ as a row.
func (s Spinor) Bar() Spinor {
	return Spinor{cmplx.Conj(s[0]), cmplx.Conj(s[1]), -cmplx.Conj(s[2]), -cmplx.Conj(s[3])}
}

// ScalarProd returns s̄·t = s†γ⁰t.
func (s Spinor) ScalarProd(t Spinor) complex128 {
	b := s.Bar()
	return b[0]*t[0] + b[1]*t[1] + b[2]*t[2] + b[3]*t[3]
}

// Outer returns the matrix s t̄ (column s times row t̄).
func (s Spinor) Outer(t Spinor) Matrix {
	b := t.Bar()
	var m Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = s[i] * b[j]
		}
	}
	return m
}

// String implements fmt.Stringer.
func (s Spinor) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", s[0], s[1], s[2], s[3])
}
