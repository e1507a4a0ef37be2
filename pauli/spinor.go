// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/lorentz"
)

// Spinor is a two-component complex spinor.
type Spinor [2]complex128

// HelicityState returns the eigenstate of σ·n̂ with eigenvalue 2h for the
// direction n̂ of dir, in the phase convention
//
//	χ₊ = (cos θ/2, e^{iφ} sin θ/2),  χ₋ = (−e^{−iφ} sin θ/2, cos θ/2).
//
// A zero direction is read as +z.
// Errors: ErrBadHelicity unless helicity is ±1/2.
func HelicityState(dir lorentz.ThreeVector, helicity float64) (Spinor, error) {
	if helicity != 0.5 && helicity != -0.5 {
		return Spinor{}, errors.Wrapf(ErrBadHelicity, "HelicityState(%g)", helicity)
	}
	s, c := math.Sincos(dir.Theta() / 2)
	phase := cmplx.Exp(complex(0, dir.Phi()))
	if helicity > 0 {
		return Spinor{complex(c, 0), phase * complex(s, 0)}, nil
	}
	return Spinor{-cmplx.Conj(phase) * complex(s, 0), complex(c, 0)}, nil
}

// At returns component i, or the first component and ErrOutOfRange.
func (s Spinor) At(i int) (complex128, error) {
	if i < 0 || i > 1 {
		return s[0], errors.Wrapf(ErrOutOfRange, "Spinor.At(%d)", i)
	}
	return s[i], nil
}

// Add returns s + t.
func (s Spinor) Add(t Spinor) Spinor {
	return Spinor{s[0] + t[0], s[1] + t[1]}
}

// Scale returns f·s.
func (s Spinor) Scale(f complex128) Spinor {
	return Spinor{f * s[0], f * s[1]}
}

// Dot returns ⟨s|t⟩ = s†t.
func (s Spinor) Dot(t Spinor) complex128 {
	return cmplx.Conj(s[0])*t[0] + cmplx.Conj(s[1])*t[1]
}

// Norm returns sqrt(⟨s|s⟩).
func (s Spinor) Norm() float64 {
	return math.Sqrt(real(s.Dot(s)))
}

// String implements fmt.Stringer.
func (s Spinor) String() string {
	return fmt.Sprintf("(%v, %v)", s[0], s[1])
}
