// SPDX-License-Identifier: MIT

package lorentz

import (
	"fmt"
	"math/cmplx"

	"github.com/cockroachdb/errors"
)

// ThreeVectorComplex is a complex spatial vector, used for polarization
// vectors of photons.
type ThreeVectorComplex [3]complex128

// At returns component i, or the first component and ErrOutOfRange.
func (v ThreeVectorComplex) At(i int) (complex128, error) {
	if i < 0 || i > 2 {
		return v[0], errors.Wrapf(ErrOutOfRange, "ThreeVectorComplex.At(%d)", i)
	}
	return v[i], nil
}

// Add returns v + w.
func (v ThreeVectorComplex) Add(w ThreeVectorComplex) ThreeVectorComplex {
	return ThreeVectorComplex{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v − w.
func (v ThreeVectorComplex) Sub(w ThreeVectorComplex) ThreeVectorComplex {
	return ThreeVectorComplex{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns f·v.
func (v ThreeVectorComplex) Scale(f complex128) ThreeVectorComplex {
	return ThreeVectorComplex{f * v[0], f * v[1], f * v[2]}
}

// Conj returns the component-wise complex conjugate.
func (v ThreeVectorComplex) Conj() ThreeVectorComplex {
	return ThreeVectorComplex{cmplx.Conj(v[0]), cmplx.Conj(v[1]), cmplx.Conj(v[2])}
}

// Real returns the real part of each component.
func (v ThreeVectorComplex) Real() ThreeVector {
	return ThreeVector{real(v[0]), real(v[1]), real(v[2])}
}

// Imag returns the imaginary part of each component.
func (v ThreeVectorComplex) Imag() ThreeVector {
	return ThreeVector{imag(v[0]), imag(v[1]), imag(v[2])}
}

// Dot is the bilinear product Σ vᵢwᵢ (no conjugation).
func (v ThreeVectorComplex) Dot(w ThreeVectorComplex) complex128 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Rotate applies the rotation r to v.
func (v ThreeVectorComplex) Rotate(r Rotation) ThreeVectorComplex {
	return r.RotateComplex(v)
}

// String implements fmt.Stringer.
func (v ThreeVectorComplex) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
