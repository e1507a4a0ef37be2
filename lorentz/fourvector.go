// SPDX-License-Identifier: MIT

// Package lorentz - Minkowski four-vectors (t, x, y, z).
//
// Purpose:
//   - Value-type four-vector with the (+,−,−,−) invariant norm.
//   - Tolerant equality and lightlike clamping driven by a relative resolution.
//   - Boost helpers that build the Boost on the fly.
//
// Complexity quicksheet:
//   - every method is O(1); boosts allocate nothing beyond the returned value.

package lorentz

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// FourVector is a real Minkowski vector with components (t, x, y, z).
// For a four-momentum t is the energy.
type FourVector [4]float64

// NewFourVector builds a FourVector from its components.
func NewFourVector(t, x, y, z float64) FourVector {
	return FourVector{t, x, y, z}
}

// FourVectorFrom builds a FourVector from a time part and a spatial part.
func FourVectorFrom(t float64, r ThreeVector) FourVector {
	return FourVector{t, r[0], r[1], r[2]}
}

// FourVectorFromSlice copies exactly four components from s.
// Errors: ErrBadLength when len(s) != 4.
func FourVectorFromSlice(s []float64) (FourVector, error) {
	if len(s) != 4 {
		return FourVector{}, errors.Wrapf(ErrBadLength, "FourVectorFromSlice: got %d", len(s))
	}
	return FourVector{s[0], s[1], s[2], s[3]}, nil
}

// At returns component i. Outside [0,3] it returns the time component and a
// wrapped ErrOutOfRange instead of faulting.
func (v FourVector) At(i int) (float64, error) {
	if i < 0 || i > 3 {
		return v[0], errors.Wrapf(ErrOutOfRange, "FourVector.At(%d)", i)
	}
	return v[i], nil
}

// Set assigns component i in place; an invalid index leaves v untouched.
func (v *FourVector) Set(i int, x float64) error {
	if i < 0 || i > 3 {
		return errors.Wrapf(ErrOutOfRange, "FourVector.Set(%d)", i)
	}
	v[i] = x
	return nil
}

// Time returns the time (energy) component.
func (v FourVector) Time() float64 { return v[0] }

// Space returns the spatial part.
func (v FourVector) Space() ThreeVector { return ThreeVector{v[1], v[2], v[3]} }

// Length returns the Euclidean length of the spatial part.
func (v FourVector) Length() float64 { return v.Space().Length() }

// Add returns v + w.
func (v FourVector) Add(w FourVector) FourVector {
	return FourVector{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns v − w.
func (v FourVector) Sub(w FourVector) FourVector {
	return FourVector{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}

// Scale returns f·v.
func (v FourVector) Scale(f float64) FourVector {
	return FourVector{f * v[0], f * v[1], f * v[2], f * v[3]}
}

// Div returns v/f. No check is made for f == 0.
func (v FourVector) Div(f float64) FourVector {
	return FourVector{v[0] / f, v[1] / f, v[2] / f, v[3] / f}
}

// Neg returns −v.
func (v FourVector) Neg() FourVector {
	return FourVector{-v[0], -v[1], -v[2], -v[3]}
}

// ScalarProd returns the Minkowski product v·w = v⁰w⁰ − v·w.
func (v FourVector) ScalarProd(w FourVector) float64 {
	return v[0]*w[0] - v[1]*w[1] - v[2]*w[2] - v[3]*w[3]
}

// InvariantSqr returns t² − |r|².
func (v FourVector) InvariantSqr() float64 {
	return v[0]*v[0] - v.Space().LengthSqr()
}

// magnitude is the Euclidean norm of all four components.
func (v FourVector) magnitude() float64 {
	return math.Sqrt(v[0]*v[0] + v.Space().LengthSqr())
}

// Resolution returns the absolute resolution of v: DefaultResolution scaled
// by the Euclidean magnitude of v, or DefaultResolution itself for v = 0.
func (v FourVector) Resolution() float64 {
	scale := v.magnitude()
	if scale > 0 {
		return DefaultResolution * scale
	}
	return DefaultResolution
}

// Invariant returns sqrt(t² − |r|²).
//
// Behavior highlights:
//   - inv² ≥ 0: the square root.
//   - inv² < 0 but within Resolution() of zero: 0 (noise around a
//     lightlike vector is treated as exactly lightlike).
//   - otherwise: ErrInvalidInvariant (wrapped with the offending value).
func (v FourVector) Invariant() (float64, error) {
	inv2 := v.InvariantSqr()
	if inv2 >= 0 {
		return math.Sqrt(inv2), nil
	}
	if inv2 > -v.Resolution() {
		return 0, nil
	}
	return 0, errors.Wrapf(ErrInvalidInvariant, "FourVector%s: invariant² = %g", v, inv2)
}

// DistanceTo returns the Euclidean distance over all four components.
func (v FourVector) DistanceTo(w FourVector) float64 {
	return v.Sub(w).magnitude()
}

// Equal reports whether w lies within the resolution of v.
func (v FourVector) Equal(w FourVector) bool {
	return v.DistanceTo(w) < v.Resolution()
}

// Transform applies an arbitrary Lorentz transform.
func (v FourVector) Transform(t Transform) FourVector {
	return t.Apply(v)
}

// Boost applies a precomputed boost.
func (v FourVector) Boost(b Boost) FourVector {
	return b.Apply(v)
}

// BoostBeta boosts v into the frame moving with velocity beta.
// Errors: ErrSuperluminal when |beta| ≥ 1.
func (v FourVector) BoostBeta(beta ThreeVector) (FourVector, error) {
	b, err := NewBoost(beta)
	if err != nil {
		return v, err
	}
	return b.Apply(v), nil
}

// BoostAxis boosts v along the axis u by rapidity eta.
func (v FourVector) BoostAxis(u UnitVector, eta float64) FourVector {
	return NewBoostRapidity(u, eta).Apply(v)
}

// BoostToRest boosts v into the rest frame of the four-momentum p.
// Errors: ErrSuperluminal when p is not strictly timelike.
func (v FourVector) BoostToRest(p FourVector) (FourVector, error) {
	b, err := BoostOf(p)
	if err != nil {
		return v, err
	}
	return b.Apply(v), nil
}

// BoostFromRest is the inverse of BoostToRest: it takes v, given in the
// rest frame of p, back to the frame in which p was specified.
func (v FourVector) BoostFromRest(p FourVector) (FourVector, error) {
	b, err := BoostOf(p)
	if err != nil {
		return v, err
	}
	return b.Inverse().Apply(v), nil
}

// Complex promotes v to a complex four-vector.
func (v FourVector) Complex() FourVectorComplex {
	return FourVectorComplex{complex(v[0], 0), complex(v[1], 0), complex(v[2], 0), complex(v[3], 0)}
}

// String implements fmt.Stringer.
func (v FourVector) String() string {
	return fmt.Sprintf("(%g; %g, %g, %g)", v[0], v[1], v[2], v[3])
}
