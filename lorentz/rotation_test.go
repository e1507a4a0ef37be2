package lorentz_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rjones30/diracxx/lorentz"
	"github.com/stretchr/testify/require"
)

func TestRotateBasis(t *testing.T) {
	r := lorentz.NewRotation(lorentz.ZAxis(), math.Pi/2)
	got := r.Rotate(lorentz.NewThreeVector(1, 0, 0))
	require.InDelta(t, 0, got.DistanceTo(lorentz.NewThreeVector(0, 1, 0)), tol) // active, right-handed

	v := lorentz.NewFourVector(2, 1, 0, 0)
	require.True(t, lorentz.NewFourVector(2, 0, 1, 0).Equal(r.Apply(v))) // time untouched

	c := r.RotateComplex(lorentz.ThreeVectorComplex{1i, 0, 3})
	require.InDelta(t, 0, real(c[0]), tol)
	require.InDelta(t, 1, imag(c[1]), tol)
	require.Equal(t, complex(3, 0), c[2])
}

// TestAxisAngleRoundTrip rebuilds axis and angle, including the angle π.
func TestAxisAngleRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		axis  lorentz.ThreeVector
		angle float64
	}{
		{"small", lorentz.NewThreeVector(1, 2, 3), 1e-7},
		{"generic", lorentz.NewThreeVector(-1, 0.5, 2), 1.2},
		{"obtuse", lorentz.NewThreeVector(0.3, -0.4, 0.1), 2.9},
		{"half-turn", lorentz.NewThreeVector(1, 1, 0), math.Pi},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := lorentz.NewUnitVector(tc.axis)
			require.NoError(t, err)
			r := lorentz.NewRotation(u, tc.angle)

			gotAxis, gotAngle := r.AxisAngle()
			require.InDelta(t, tc.angle, gotAngle, 1e-9)
			rebuilt := lorentz.NewRotation(gotAxis, gotAngle)
			require.True(t, rebuilt.Transform().Equal(r.Transform(), 1e-9))

			viaVec := lorentz.NewRotationAxis(r.Axis())
			require.True(t, viaVec.Transform().Equal(r.Transform(), 1e-9))
		})
	}

	u, a := lorentz.IdentityRotation().AxisAngle()
	require.Equal(t, 0.0, a)
	require.Equal(t, lorentz.ZAxis(), u)
}

// TestEulerRoundTrip checks the z-y-z decomposition and its gimbal lock.
func TestEulerRoundTrip(t *testing.T) {
	r := lorentz.NewRotationEuler(0.3, 1.1, -0.7)
	phi, theta, psi := r.Euler()
	require.InDelta(t, 0.3, phi, tol)
	require.InDelta(t, 1.1, theta, tol)
	require.InDelta(t, -0.7, psi, tol)

	// the third Euler axis ends up along (θ, φ)
	z := r.Rotate(lorentz.NewThreeVector(0, 0, 1))
	require.InDelta(t, 0, z.DistanceTo(lorentz.Direction(1.1, 0.3).Vector()), tol)

	phi, theta, psi = lorentz.NewRotationEuler(0.4, 0, 0.3).Euler()
	require.InDelta(t, 0.7, phi, tol) // all of the angle lands in φ
	require.Equal(t, 0.0, theta)
	require.Equal(t, 0.0, psi)

	phi, theta, psi = lorentz.NewRotationEuler(0.4, math.Pi, 0).Euler()
	require.InDelta(t, 0.4, phi, tol)
	require.InDelta(t, math.Pi, theta, tol)
	require.Equal(t, 0.0, psi)
}

func TestRotationAlgebra(t *testing.T) {
	a := lorentz.NewRotation(lorentz.ZAxis(), 0.5)
	b := lorentz.NewRotation(lorentz.XAxis(), 0.5)
	require.False(t, a.Mul(b).Transform().Equal(b.Mul(a).Transform(), 1e-6)) // order matters
	require.True(t, a.Mul(a.Inverse()).Transform().Equal(lorentz.Identity(), tol))
	require.True(t, a.Transpose().Transform().Equal(a.Inverse().Transform(), 0))

	_, err := lorentz.AsRotation(a.Mul(b).Transform(), lorentz.DefaultTolerance)
	require.NoError(t, err) // closed under composition

	v := lorentz.NewThreeVector(0.2, -1.3, 0.8)
	require.InDelta(t, v.Length(), v.Rotate(a.Mul(b)).Length(), tol)
	u := a.RotateUnit(lorentz.XAxis())
	require.InDelta(t, 1, u.Vector().Length(), tol)
}

// randomEuler draws z-y-z angles away from the gimbal-lock poles.
func randomEuler(rng *rand.Rand) (phi, theta, psi float64) {
	phi = math.Pi * (2*rng.Float64() - 1)
	theta = 0.01 + (math.Pi-0.02)*rng.Float64()
	psi = math.Pi * (2*rng.Float64() - 1)
	return phi, theta, psi
}

// TestRotationComposition checks that rotating by R1 then R2 equals one
// rotation by R2·R1.
func TestRotationComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		r1 := lorentz.NewRotationEuler(randomEuler(rng))
		r2 := lorentz.NewRotationEuler(randomEuler(rng))
		v := lorentz.NewThreeVector(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())

		stepwise := r2.Rotate(r1.Rotate(v))
		composed := r2.Mul(r1).Rotate(v)
		require.InDelta(t, 0, stepwise.DistanceTo(composed), 1e-12*(1+v.Length()))

		w := lorentz.NewFourVector(rng.Float64(), v[0], v[1], v[2])
		require.True(t, r2.Apply(r1.Apply(w)).Equal(r2.Mul(r1).Apply(w)))
	}
}

// TestEulerAxisAngleRoundTrip builds rotations from Euler angles, extracts
// axis and angle, and rebuilds the same matrix.
func TestEulerAxisAngleRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		phi, theta, psi := randomEuler(rng)
		r := lorentz.NewRotationEuler(phi, theta, psi)

		axis, angle := r.AxisAngle()
		require.GreaterOrEqual(t, angle, 0.0)
		require.LessOrEqual(t, angle, math.Pi+1e-12)
		rebuilt := lorentz.NewRotation(axis, angle)
		require.True(t, rebuilt.Transform().Equal(r.Transform(), 1e-9), "euler (%g, %g, %g)", phi, theta, psi)
	}
}

func TestUnitVector(t *testing.T) {
	_, err := lorentz.NewUnitVector(lorentz.ThreeVector{})
	require.ErrorIs(t, err, lorentz.ErrZeroVector)

	u, err := lorentz.NewThreeVector(0, 3, 4).Unit()
	require.NoError(t, err)
	require.InDelta(t, 0.6, u.Vector()[1], tol)
	require.InDelta(t, math.Atan2(3, 4), u.Vector().Theta(), tol)
	require.InDelta(t, math.Pi/2, u.Vector().Phi(), tol)
}
