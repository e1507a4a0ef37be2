// SPDX-License-Identifier: MIT

package lorentz

import (
	"fmt"
	"math/cmplx"

	"github.com/cockroachdb/errors"
)

// FourVectorComplex is a complex Minkowski vector. Photon polarization
// vectors in a circular basis are the main client.
type FourVectorComplex [4]complex128

// NewFourVectorComplex builds a complex four-vector from a time part and a
// complex spatial part.
func NewFourVectorComplex(t complex128, r ThreeVectorComplex) FourVectorComplex {
	return FourVectorComplex{t, r[0], r[1], r[2]}
}

// At returns component i, or the time component and ErrOutOfRange.
func (v FourVectorComplex) At(i int) (complex128, error) {
	if i < 0 || i > 3 {
		return v[0], errors.Wrapf(ErrOutOfRange, "FourVectorComplex.At(%d)", i)
	}
	return v[i], nil
}

// Time returns the time component.
func (v FourVectorComplex) Time() complex128 { return v[0] }

// Space returns the spatial part.
func (v FourVectorComplex) Space() ThreeVectorComplex {
	return ThreeVectorComplex{v[1], v[2], v[3]}
}

// Add returns v + w.
func (v FourVectorComplex) Add(w FourVectorComplex) FourVectorComplex {
	return FourVectorComplex{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v − w.
func (v FourVectorComplex) Sub(w FourVectorComplex) FourVectorComplex {
	return FourVectorComplex{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Scale returns f·v.
func (v FourVectorComplex) Scale(f complex128) FourVectorComplex {
	return FourVectorComplex{f * v[0], f * v[1], f * v[2], f * v[3]}
}

// Conj returns the component-wise complex conjugate.
func (v FourVectorComplex) Conj() FourVectorComplex {
	return FourVectorComplex{cmplx.Conj(v[0]), cmplx.Conj(v[1]), cmplx.Conj(v[2]), cmplx.Conj(v[3])}
}

// Real returns the real part of each component.
func (v FourVectorComplex) Real() FourVector {
	return FourVector{real(v[0]), real(v[1]), real(v[2]), real(v[3])}
}

// Imag returns the imaginary part of each component.
func (v FourVectorComplex) Imag() FourVector {
	return FourVector{imag(v[0]), imag(v[1]), imag(v[2]), imag(v[3])}
}

// ScalarProd is the bilinear Minkowski product (no conjugation).
func (v FourVectorComplex) ScalarProd(w FourVectorComplex) complex128 {
	return v[0]*w[0] - v[1]*w[1] - v[2]*w[2] - v[3]*w[3]
}

// ScalarProdReal contracts v with a real four-vector.
func (v FourVectorComplex) ScalarProdReal(w FourVector) complex128 {
	return v.ScalarProd(w.Complex())
}

// Transform applies a real Lorentz transform to both real and imaginary parts.
func (v FourVectorComplex) Transform(t Transform) FourVectorComplex {
	return t.ApplyComplex(v)
}

// Rotate applies a spatial rotation.
func (v FourVectorComplex) Rotate(r Rotation) FourVectorComplex {
	return r.Transform().ApplyComplex(v)
}

// String implements fmt.Stringer.
func (v FourVectorComplex) String() string {
	return fmt.Sprintf("(%g; %g, %g, %g)", v[0], v[1], v[2], v[3])
}
