package lorentz_test

import (
	"math"
	"testing"

	"github.com/rjones30/diracxx/lorentz"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestBoostIdentity covers zero velocity and boost·inverse.
func TestBoostIdentity(t *testing.T) {
	b, err := lorentz.NewBoost(lorentz.ThreeVector{})
	require.NoError(t, err)
	require.True(t, b.Transform().Equal(lorentz.Identity(), 0)) // exactly the identity

	beta := lorentz.NewThreeVector(0.2, -0.4, 0.5)
	fwd, err := lorentz.NewBoost(beta)
	require.NoError(t, err)
	bwd, err := lorentz.NewBoost(beta.Neg())
	require.NoError(t, err)
	require.True(t, fwd.Transform().Mul(bwd.Transform()).Equal(lorentz.Identity(), tol))
	require.True(t, fwd.Inverse().Transform().Equal(bwd.Transform(), tol))
}

func TestBoostErrors(t *testing.T) {
	_, err := lorentz.NewBoost(lorentz.NewThreeVector(0, 0, 1))
	require.ErrorIs(t, err, lorentz.ErrSuperluminal) // |β| = 1
	_, err = lorentz.NewBoostAxis(lorentz.XAxis(), -1.5)
	require.ErrorIs(t, err, lorentz.ErrSuperluminal) // |β| > 1
	_, err = lorentz.NewBoostGamma(lorentz.ZAxis(), 0.5)
	require.ErrorIs(t, err, lorentz.ErrSuperluminal) // γ < 1
	_, err = lorentz.BoostOf(lorentz.NewFourVector(-5, 0, 0, 3))
	require.ErrorIs(t, err, lorentz.ErrSuperluminal) // negative energy
}

// TestBoostAccessors checks Beta, Gamma and Rapidity against each constructor.
func TestBoostAccessors(t *testing.T) {
	beta := lorentz.NewThreeVector(0.1, 0.2, 0.3)
	b, err := lorentz.NewBoost(beta)
	require.NoError(t, err)
	require.InDelta(t, 0, b.Beta().DistanceTo(beta), tol)
	require.InDelta(t, 1/math.Sqrt(1-0.14), b.Gamma(), tol)
	require.True(t, b.Transform().IsLorentz(tol))

	g, err := lorentz.NewBoostGamma(lorentz.YAxis(), 2)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(3)/2, g.Beta()[1], tol)
	require.InDelta(t, math.Acosh(2), g.Rapidity(), tol)

	r := lorentz.NewBoostRapidity(lorentz.ZAxis(), 0.7)
	require.InDelta(t, 0.7, r.Rapidity(), tol)
	require.InDelta(t, math.Tanh(0.7), r.Beta()[2], tol)

	p := lorentz.NewFourVector(5, 0, 3, 0)
	bp, err := lorentz.BoostOf(p)
	require.NoError(t, err)
	require.InDelta(t, 0.6, bp.Beta()[1], tol)
	require.InDelta(t, 1.25, bp.Gamma(), tol)
}

// TestRapidityAdds verifies that collinear boosts compose by adding rapidities.
func TestRapidityAdds(t *testing.T) {
	a := lorentz.NewBoostRapidity(lorentz.ZAxis(), 0.3)
	b := lorentz.NewBoostRapidity(lorentz.ZAxis(), 0.5)
	c := lorentz.NewBoostRapidity(lorentz.ZAxis(), 0.8)
	require.True(t, a.Transform().Mul(b.Transform()).Equal(c.Transform(), tol))
}

// TestNonCollinearBoosts shows that boost∘boost leaves the boost set.
func TestNonCollinearBoosts(t *testing.T) {
	a, err := lorentz.NewBoostAxis(lorentz.XAxis(), 0.6)
	require.NoError(t, err)
	b, err := lorentz.NewBoostAxis(lorentz.YAxis(), 0.6)
	require.NoError(t, err)
	ab := a.Transform().Mul(b.Transform())
	require.True(t, ab.IsLorentz(tol))
	_, err = lorentz.AsBoost(ab, 1e-9) // Wigner rotation present
	require.ErrorIs(t, err, lorentz.ErrNotBoost)
	ba := b.Transform().Mul(a.Transform())
	require.False(t, ab.Equal(ba, 1e-9)) // not commutative
}

func TestCapabilityChecks(t *testing.T) {
	b, err := lorentz.NewBoost(lorentz.NewThreeVector(0.3, 0, -0.4))
	require.NoError(t, err)
	got, err := lorentz.AsBoost(b.Transform(), lorentz.DefaultTolerance)
	require.NoError(t, err)
	require.True(t, got.Transform().Equal(b.Transform(), tol))
	_, err = lorentz.AsRotation(b.Transform(), lorentz.DefaultTolerance)
	require.ErrorIs(t, err, lorentz.ErrNotRotation)

	r := lorentz.NewRotation(lorentz.ZAxis(), math.Pi) // diag(1,−1,−1,1): symmetric, yet a rotation
	_, err = lorentz.AsBoost(r.Transform(), lorentz.DefaultTolerance)
	require.ErrorIs(t, err, lorentz.ErrNotBoost)
	_, err = lorentz.AsRotation(r.Transform(), lorentz.DefaultTolerance)
	require.NoError(t, err)

	parity := lorentz.NewTransform([4][4]float64{{1, 0, 0, 0}, {0, -1, 0, 0}, {0, 0, -1, 0}, {0, 0, 0, -1}})
	require.True(t, parity.IsLorentz(tol))
	_, err = lorentz.AsRotation(parity, lorentz.DefaultTolerance) // det = −1
	require.ErrorIs(t, err, lorentz.ErrNotRotation)
}

// TestTransformInverse uses the LU inverse for a boost and a singular matrix.
func TestTransformInverse(t *testing.T) {
	b, err := lorentz.NewBoost(lorentz.NewThreeVector(-0.7, 0.1, 0.2))
	require.NoError(t, err)
	inv, err := b.Transform().Inverse()
	require.NoError(t, err)
	require.True(t, inv.Equal(b.Inverse().Transform(), 1e-10))

	_, err = lorentz.NewTransform([4][4]float64{}).Inverse()
	require.ErrorIs(t, err, lorentz.ErrSingular)

	_, err = lorentz.Identity().At(4, 0)
	require.ErrorIs(t, err, lorentz.ErrOutOfRange)
	x, err := lorentz.Identity().At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)
}

func TestTranspose(t *testing.T) {
	m := lorentz.NewTransform([4][4]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}})
	tr := m.Transpose().Matrix()
	require.Equal(t, 5.0, tr[0][1])
	require.Equal(t, 4.0, tr[3][0])
	require.True(t, m.Transpose().Transpose().Equal(m, 0))
}
