// SPDX-License-Identifier: MIT

// Package lorentz - pure boosts.
//
// A Boost is stored as its 4×4 matrix, built from the spatial part of the
// four-velocity u = γβ and γ itself:
//
//	M00 = γ,  M0i = Mi0 = −uᵢ,  Mij = δij + uᵢuⱼ/(γ+1)
//
// which equals δij + (γ−1)βᵢβⱼ/β² without dividing by β² and stays accurate
// for ultra-relativistic velocities where 1−β² underflows.

package lorentz

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Boost is a pure Lorentz boost. NewBoost(β) maps four-vectors into the
// frame moving with velocity β relative to the current one.
type Boost struct {
	t Transform
}

// newBoostU builds the boost matrix from u = γβ and γ.
func newBoostU(u ThreeVector, gamma float64) Boost {
	t := Identity()
	t.m[0][0] = gamma
	for i := 0; i < 3; i++ {
		t.m[0][i+1] = -u[i]
		t.m[i+1][0] = -u[i]
		for j := 0; j < 3; j++ {
			t.m[i+1][j+1] += u[i] * u[j] / (gamma + 1)
		}
	}
	return Boost{t: t}
}

// NewBoost builds the boost with velocity beta (in units of c).
// A zero velocity gives the identity.
// Errors: ErrSuperluminal when |beta| ≥ 1.
func NewBoost(beta ThreeVector) (Boost, error) {
	b2 := beta.LengthSqr()
	if !(b2 < 1) {
		return Boost{t: Identity()}, errors.Wrapf(ErrSuperluminal, "NewBoost%s: |beta|² = %g", beta, b2)
	}
	gamma := 1 / math.Sqrt(1-b2)
	return newBoostU(beta.Scale(gamma), gamma), nil
}

// NewBoostAxis builds the boost of speed beta along axis. A negative beta
// boosts against the axis.
// Errors: ErrSuperluminal when |beta| ≥ 1.
func NewBoostAxis(axis UnitVector, beta float64) (Boost, error) {
	return NewBoost(axis.Scale(beta))
}

// NewBoostRapidity builds the boost of rapidity eta along axis. Every real
// rapidity is physical, so no error is possible.
func NewBoostRapidity(axis UnitVector, eta float64) Boost {
	return newBoostU(axis.Scale(math.Sinh(eta)), math.Cosh(eta))
}

// NewBoostGamma builds the boost with Lorentz factor gamma along axis.
// Errors: ErrSuperluminal when gamma < 1 (or NaN).
func NewBoostGamma(axis UnitVector, gamma float64) (Boost, error) {
	if !(gamma >= 1) || math.IsInf(gamma, 0) {
		return Boost{t: Identity()}, errors.Wrapf(ErrSuperluminal, "NewBoostGamma(%g)", gamma)
	}
	return newBoostU(axis.Scale(math.Sqrt((gamma-1)*(gamma+1))), gamma), nil
}

// BoostOf returns the boost into the rest frame of the four-momentum p,
// i.e. the boost with β = p/E.
// Errors: ErrSuperluminal unless p is strictly timelike with E > 0.
func BoostOf(p FourVector) (Boost, error) {
	m2 := p.InvariantSqr()
	if !(p[0] > 0) || !(m2 > 0) {
		return Boost{t: Identity()}, errors.Wrapf(ErrSuperluminal, "BoostOf%s: mass² = %g", p, m2)
	}
	m := math.Sqrt(m2)
	return newBoostU(p.Space().Div(m), p[0]/m), nil
}

// Beta returns the boost velocity, −M0i/M00.
func (b Boost) Beta() ThreeVector {
	g := b.t.m[0][0]
	return ThreeVector{-b.t.m[0][1] / g, -b.t.m[0][2] / g, -b.t.m[0][3] / g}
}

// Gamma returns the Lorentz factor M00.
func (b Boost) Gamma() float64 {
	return b.t.m[0][0]
}

// Rapidity returns the (non-negative) rapidity asinh(γ|β|).
func (b Boost) Rapidity() float64 {
	u := ThreeVector{b.t.m[0][1], b.t.m[0][2], b.t.m[0][3]}
	return math.Asinh(u.Length())
}

// Inverse returns the boost with the opposite velocity.
func (b Boost) Inverse() Boost {
	t := b.t
	for i := 1; i < 4; i++ {
		t.m[0][i] = -t.m[0][i]
		t.m[i][0] = -t.m[i][0]
	}
	return Boost{t: t}
}

// Transform returns the boost as a general transform.
func (b Boost) Transform() Transform {
	return b.t
}

// Apply boosts v.
func (b Boost) Apply(v FourVector) FourVector {
	return b.t.Apply(v)
}

// ApplyComplex boosts a complex four-vector.
func (b Boost) ApplyComplex(v FourVectorComplex) FourVectorComplex {
	return b.t.ApplyComplex(v)
}

// String renders the boost matrix.
func (b Boost) String() string {
	return b.t.String()
}

// AsBoost checks that t is a pure boost and returns it as one.
//
// Checks, each within tol:
//  1. t is a Lorentz transform (MᵀGM = G);
//  2. M00 ≥ 1 (orthochronous);
//  3. t equals the boost rebuilt from its own first row, which rules out
//     symmetric matrices hiding a rotation by π.
//
// Errors: ErrNotBoost.
func AsBoost(t Transform, tol float64) (Boost, error) {
	if !t.IsLorentz(tol) {
		return Boost{t: Identity()}, errors.Wrapf(ErrNotBoost, "AsBoost: not a Lorentz transform")
	}
	gamma := t.m[0][0]
	if gamma < 1-tol {
		return Boost{t: Identity()}, errors.Wrapf(ErrNotBoost, "AsBoost: M00 = %g", gamma)
	}
	u := ThreeVector{-t.m[0][1], -t.m[0][2], -t.m[0][3]}
	b := newBoostU(u, math.Max(gamma, 1))
	if !b.t.Equal(t, tol) {
		return Boost{t: Identity()}, errors.Wrapf(ErrNotBoost, "AsBoost: matrix is not symmetric boost form")
	}
	return b, nil
}
