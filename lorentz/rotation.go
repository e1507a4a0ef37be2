// SPDX-License-Identifier: MIT

// Package lorentz - spatial rotations.
//
// Conventions:
//   - Active, right-handed: NewRotation(n, α) turns a vector by α about n.
//   - Euler angles are z-y-z: R = Rz(φ)·Ry(θ)·Rz(ψ), θ ∈ [0, π].
//   - At gimbal lock (sin θ = 0) the split between φ and ψ is ambiguous;
//     Euler() puts the whole angle into φ and returns ψ = 0.

package lorentz

import (
	"math"

	"github.com/cockroachdb/errors"
)

// gimbalEps is the |sin θ| below which Euler() treats the rotation as locked.
const gimbalEps = 1e-12

// Rotation is a proper spatial rotation embedded in a 4×4 transform
// (M00 = 1, no time-space mixing).
type Rotation struct {
	t Transform
}

// rotationFrom3 embeds a 3×3 matrix.
func rotationFrom3(r [3][3]float64) Rotation {
	t := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.m[i+1][j+1] = r[i][j]
		}
	}
	return Rotation{t: t}
}

// IdentityRotation returns the rotation by zero angle.
func IdentityRotation() Rotation {
	return Rotation{t: Identity()}
}

// NewRotation returns the rotation by angle (radians) about axis
// (Rodrigues: R = cos α·I + sin α·[n]× + (1−cos α)·n nᵀ).
func NewRotation(axis UnitVector, angle float64) Rotation {
	n := axis.Vector()
	s, c := math.Sincos(angle)
	k := 1 - c
	return rotationFrom3([3][3]float64{
		{c + k*n[0]*n[0], k*n[0]*n[1] - s*n[2], k*n[0]*n[2] + s*n[1]},
		{k*n[1]*n[0] + s*n[2], c + k*n[1]*n[1], k*n[1]*n[2] - s*n[0]},
		{k*n[2]*n[0] - s*n[1], k*n[2]*n[1] + s*n[0], c + k*n[2]*n[2]},
	})
}

// NewRotationAxis returns the rotation by |axis| about axis/|axis|; a zero
// vector gives the identity.
func NewRotationAxis(axis ThreeVector) Rotation {
	angle := axis.Length()
	if angle == 0 {
		return Rotation{t: Identity()}
	}
	return NewRotation(UnitVector{v: axis.Div(angle)}, angle)
}

// NewRotationEuler returns Rz(phi)·Ry(theta)·Rz(psi).
func NewRotationEuler(phi, theta, psi float64) Rotation {
	return NewRotation(ZAxis(), phi).
		Mul(NewRotation(YAxis(), theta)).
		Mul(NewRotation(ZAxis(), psi))
}

// Matrix3 returns the spatial 3×3 block.
func (r Rotation) Matrix3() [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r.t.m[i+1][j+1]
		}
	}
	return out
}

// AxisAngle returns the rotation axis and the angle in [0, π].
// For the identity the axis is +z.
//
// Stage 1: angle from cos α (trace) and sin α (antisymmetric part 2 sin α·n).
// Stage 2: below π/2 the axis is the antisymmetric part itself.
// Stage 3: otherwise the axis comes from the symmetric part
// n nᵀ = (R + Rᵀ − 2c·I)/(2(1−c)) through its largest diagonal entry, which
// stays valid up to and including α = π, and is oriented with Stage 1.
func (r Rotation) AxisAngle() (UnitVector, float64) {
	m := r.Matrix3()
	c := (m[0][0] + m[1][1] + m[2][2] - 1) / 2
	c = math.Max(-1, math.Min(1, c))
	anti := ThreeVector{m[2][1] - m[1][2], m[0][2] - m[2][0], m[1][0] - m[0][1]}
	angle := math.Atan2(anti.Length()/2, c)
	if angle < math.Pi/2 {
		u, err := NewUnitVector(anti)
		if err != nil {
			return ZAxis(), 0
		}
		return u, angle
	}
	k := 0
	for i := 1; i < 3; i++ {
		if m[i][i] > m[k][k] {
			k = i
		}
	}
	var n ThreeVector
	n[k] = math.Sqrt(math.Max(0, (m[k][k]-c)/(1-c)))
	for j := 0; j < 3; j++ {
		if j != k {
			n[j] = (m[k][j] + m[j][k]) / (2 * (1 - c) * n[k])
		}
	}
	if n.Dot(anti) < 0 {
		n = n.Neg()
	}
	u, err := NewUnitVector(n)
	if err != nil {
		return ZAxis(), angle
	}
	return u, angle
}

// Axis returns angle·n, the inverse of NewRotationAxis.
func (r Rotation) Axis() ThreeVector {
	u, a := r.AxisAngle()
	return u.Scale(a)
}

// Euler returns (phi, theta, psi) with r = Rz(phi)·Ry(theta)·Rz(psi).
func (r Rotation) Euler() (phi, theta, psi float64) {
	m := r.Matrix3()
	s := math.Hypot(m[0][2], m[1][2])
	theta = math.Atan2(s, m[2][2])
	if s < gimbalEps {
		if m[2][2] > 0 {
			return math.Atan2(m[1][0], m[0][0]), 0, 0
		}
		return math.Atan2(-m[1][0], -m[0][0]), math.Pi, 0
	}
	phi = math.Atan2(m[1][2], m[0][2])
	psi = math.Atan2(m[2][1], -m[2][0])
	return phi, theta, psi
}

// Mul returns r·o (o applied first); rotations are closed under composition.
func (r Rotation) Mul(o Rotation) Rotation {
	return Rotation{t: r.t.Mul(o.t)}
}

// Inverse returns the inverse rotation, which is the transpose.
func (r Rotation) Inverse() Rotation {
	return r.Transpose()
}

// Transpose returns Rᵀ.
func (r Rotation) Transpose() Rotation {
	return Rotation{t: r.t.Transpose()}
}

// Rotate applies the rotation to a real three-vector.
func (r Rotation) Rotate(v ThreeVector) ThreeVector {
	var out ThreeVector
	for i := 0; i < 3; i++ {
		out[i] = r.t.m[i+1][1]*v[0] + r.t.m[i+1][2]*v[1] + r.t.m[i+1][3]*v[2]
	}
	return out
}

// RotateComplex applies the rotation to a complex three-vector.
func (r Rotation) RotateComplex(v ThreeVectorComplex) ThreeVectorComplex {
	var out ThreeVectorComplex
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i] += complex(r.t.m[i+1][j+1], 0) * v[j]
		}
	}
	return out
}

// RotateUnit applies the rotation to a direction; the result stays normalized.
func (r Rotation) RotateUnit(u UnitVector) UnitVector {
	return UnitVector{v: r.Rotate(u.v)}
}

// Apply rotates the spatial part of a four-vector.
func (r Rotation) Apply(v FourVector) FourVector {
	return r.t.Apply(v)
}

// Transform returns the rotation as a general transform.
func (r Rotation) Transform() Transform {
	return r.t
}

// String renders the rotation matrix.
func (r Rotation) String() string {
	return r.t.String()
}

// AsRotation checks that t is a proper rotation and returns it as one.
// Checks (within tol): M00 = 1, no time-space mixing, RᵀR = I, det R = +1.
// Errors: ErrNotRotation.
func AsRotation(t Transform, tol float64) (Rotation, error) {
	if math.Abs(t.m[0][0]-1) > tol {
		return Rotation{t: Identity()}, errors.Wrapf(ErrNotRotation, "AsRotation: M00 = %g", t.m[0][0])
	}
	for i := 1; i < 4; i++ {
		if math.Abs(t.m[0][i]) > tol || math.Abs(t.m[i][0]) > tol {
			return Rotation{t: Identity()}, errors.Wrapf(ErrNotRotation, "AsRotation: time-space element (%d)", i)
		}
	}
	r := Rotation{t: t}
	m := r.Matrix3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[k][i] * m[k][j]
			}
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(s-want) > tol {
				return Rotation{t: Identity()}, errors.Wrapf(ErrNotRotation, "AsRotation: not orthogonal")
			}
		}
	}
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if math.Abs(det-1) > tol {
		return Rotation{t: Identity()}, errors.Wrapf(ErrNotRotation, "AsRotation: det = %g", det)
	}
	return r, nil
}
