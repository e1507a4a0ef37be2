// SPDX-License-Identifier: MIT

package lorentz

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// ThreeVector is a real spatial vector (x, y, z).
// The array itself is the serialized form; there is no hidden state.
type ThreeVector [3]float64

// NewThreeVector builds a ThreeVector from its components.
func NewThreeVector(x, y, z float64) ThreeVector {
	return ThreeVector{x, y, z}
}

// threeFromVec converts a gonum r3.Vec into a ThreeVector.
func threeFromVec(v r3.Vec) ThreeVector {
	return ThreeVector{v.X, v.Y, v.Z}
}

// Vec returns the vector as a gonum r3.Vec.
func (v ThreeVector) Vec() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// At returns component i. Outside [0,2] it returns the first component and
// a wrapped ErrOutOfRange so that the caller can continue.
func (v ThreeVector) At(i int) (float64, error) {
	if i < 0 || i > 2 {
		return v[0], errors.Wrapf(ErrOutOfRange, "ThreeVector.At(%d)", i)
	}
	return v[i], nil
}

// Set assigns component i in place; an invalid index leaves v untouched.
func (v *ThreeVector) Set(i int, x float64) error {
	if i < 0 || i > 2 {
		return errors.Wrapf(ErrOutOfRange, "ThreeVector.Set(%d)", i)
	}
	v[i] = x
	return nil
}

// Add returns v + w.
func (v ThreeVector) Add(w ThreeVector) ThreeVector {
	return threeFromVec(r3.Add(v.Vec(), w.Vec()))
}

// Sub returns v − w.
func (v ThreeVector) Sub(w ThreeVector) ThreeVector {
	return threeFromVec(r3.Sub(v.Vec(), w.Vec()))
}

// Scale returns f·v.
func (v ThreeVector) Scale(f float64) ThreeVector {
	return threeFromVec(r3.Scale(f, v.Vec()))
}

// Div returns v/f. No check is made for f == 0.
func (v ThreeVector) Div(f float64) ThreeVector {
	return ThreeVector{v[0] / f, v[1] / f, v[2] / f}
}

// Neg returns −v.
func (v ThreeVector) Neg() ThreeVector {
	return ThreeVector{-v[0], -v[1], -v[2]}
}

// Dot returns the Euclidean scalar product v·w.
func (v ThreeVector) Dot(w ThreeVector) float64 {
	return r3.Dot(v.Vec(), w.Vec())
}

// Cross returns the vector product v×w.
func (v ThreeVector) Cross(w ThreeVector) ThreeVector {
	return threeFromVec(r3.Cross(v.Vec(), w.Vec()))
}

// Length returns |v|.
func (v ThreeVector) Length() float64 {
	return r3.Norm(v.Vec())
}

// LengthSqr returns |v|².
func (v ThreeVector) LengthSqr() float64 {
	return r3.Norm2(v.Vec())
}

// DistanceTo returns |v − w|.
func (v ThreeVector) DistanceTo(w ThreeVector) float64 {
	return v.Sub(w).Length()
}

// Unit returns the direction of v, or ErrZeroVector when |v| = 0.
func (v ThreeVector) Unit() (UnitVector, error) {
	return NewUnitVector(v)
}

// Theta returns the polar angle of v with respect to +z (0 for a zero vector).
func (v ThreeVector) Theta() float64 {
	return math.Atan2(math.Hypot(v[0], v[1]), v[2])
}

// Phi returns the azimuthal angle of v in (−π, π].
func (v ThreeVector) Phi() float64 {
	return math.Atan2(v[1], v[0])
}

// Rotate applies the rotation r to v.
func (v ThreeVector) Rotate(r Rotation) ThreeVector {
	return r.Rotate(v)
}

// Complex promotes v to a complex three-vector with zero imaginary part.
func (v ThreeVector) Complex() ThreeVectorComplex {
	return ThreeVectorComplex{complex(v[0], 0), complex(v[1], 0), complex(v[2], 0)}
}

// String implements fmt.Stringer.
func (v ThreeVector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

// UnitVector is a ThreeVector of unit length. The zero value is not a valid
// unit vector; build one with NewUnitVector or one of the axis helpers.
type UnitVector struct {
	v ThreeVector // normalized components
}

// NewUnitVector normalizes v. A zero vector yields ErrZeroVector.
func NewUnitVector(v ThreeVector) (UnitVector, error) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return UnitVector{}, errors.Wrapf(ErrZeroVector, "NewUnitVector%s", v)
	}
	return UnitVector{v: v.Div(l)}, nil
}

// XAxis, YAxis and ZAxis return the Cartesian basis directions.
func XAxis() UnitVector { return UnitVector{v: ThreeVector{1, 0, 0}} }
func YAxis() UnitVector { return UnitVector{v: ThreeVector{0, 1, 0}} }
func ZAxis() UnitVector { return UnitVector{v: ThreeVector{0, 0, 1}} }

// Direction returns the unit vector with polar angle theta and azimuth phi.
func Direction(theta, phi float64) UnitVector {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return UnitVector{v: ThreeVector{st * cp, st * sp, ct}}
}

// Vector returns the components of u.
func (u UnitVector) Vector() ThreeVector {
	return u.v
}

// Scale returns f·u as a plain ThreeVector.
func (u UnitVector) Scale(f float64) ThreeVector {
	return u.v.Scale(f)
}

// String implements fmt.Stringer.
func (u UnitVector) String() string {
	return u.v.String()
}
