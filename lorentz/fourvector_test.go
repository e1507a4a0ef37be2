package lorentz_test

import (
	"math"
	"testing"

	"github.com/rjones30/diracxx/lorentz"
	"github.com/stretchr/testify/require"
)

// TestAtOutOfRange ensures checked accessors fall back to the first component.
func TestAtOutOfRange(t *testing.T) {
	v := lorentz.NewFourVector(1, 2, 3, 4)
	x, err := v.At(4)                              // one past the end
	require.ErrorIs(t, err, lorentz.ErrOutOfRange) // expect ErrOutOfRange
	require.Equal(t, 1.0, x)                       // fallback to time component
	_, err = v.At(-1)                              // negative index
	require.ErrorIs(t, err, lorentz.ErrOutOfRange) // expect ErrOutOfRange
	require.ErrorIs(t, v.Set(7, 0), lorentz.ErrOutOfRange)
	require.Equal(t, lorentz.NewFourVector(1, 2, 3, 4), v) // Set left v untouched

	r := lorentz.NewThreeVector(5, 6, 7)
	y, err := r.At(3)
	require.ErrorIs(t, err, lorentz.ErrOutOfRange)
	require.Equal(t, 5.0, y)

	c := lorentz.FourVectorComplex{1i, 2, 3, 4}
	z, err := c.At(9)
	require.ErrorIs(t, err, lorentz.ErrOutOfRange)
	require.Equal(t, 1i, z)
}

// TestFromSlice checks the length guard of FourVectorFromSlice.
func TestFromSlice(t *testing.T) {
	_, err := lorentz.FourVectorFromSlice([]float64{1, 2, 3})
	require.ErrorIs(t, err, lorentz.ErrBadLength)

	v, err := lorentz.FourVectorFromSlice([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, lorentz.FourVector{1, 2, 3, 4}, v)
}

func TestArithmetic(t *testing.T) {
	a := lorentz.NewFourVector(4, 1, 2, 3)
	b := lorentz.FourVectorFrom(1, lorentz.NewThreeVector(1, 1, 1))

	require.Equal(t, lorentz.FourVector{5, 2, 3, 4}, a.Add(b))
	require.Equal(t, lorentz.FourVector{3, 0, 1, 2}, a.Sub(b))
	require.Equal(t, lorentz.FourVector{8, 2, 4, 6}, a.Scale(2))
	require.Equal(t, lorentz.FourVector{2, 0.5, 1, 1.5}, a.Div(2))
	require.Equal(t, lorentz.FourVector{-4, -1, -2, -3}, a.Neg())
	require.Equal(t, 4.0-6.0, a.ScalarProd(b)) // 4·1 − (1+2+3)
	require.Equal(t, lorentz.NewThreeVector(1, 2, 3), a.Space())
	require.InDelta(t, math.Sqrt(14), a.Length(), 1e-14)
}

// TestInvariant covers the three branches of Invariant.
func TestInvariant(t *testing.T) {
	m, err := lorentz.NewFourVector(5, 0, 0, 3).Invariant() // timelike, mass 4
	require.NoError(t, err)
	require.InDelta(t, 4.0, m, 1e-15)

	_, err = lorentz.NewFourVector(1, 0, 0, 2).Invariant() // clearly spacelike
	require.ErrorIs(t, err, lorentz.ErrInvalidInvariant)

	// lightlike up to noise far below the resolution of the vector
	k := 1e-3
	v := lorentz.NewFourVector(k, 0, 0, k*(1+1e-13))
	require.Less(t, v.InvariantSqr(), 0.0)
	m, err = v.Invariant()
	require.NoError(t, err)
	require.Equal(t, 0.0, m)
}

// TestInvariantClampSmallVectors checks that inv² = −1e-20 is clamped for
// vectors whose resolution still exceeds it, down to sub-keV energies.
func TestInvariantClampSmallVectors(t *testing.T) {
	for _, e := range []float64{1, 1e-3, 1e-5, 1e-6} {
		v := lorentz.NewFourVector(e, 0, 0, math.Sqrt(e*e+1e-20))
		require.Greater(t, v.Resolution(), 1e-20)
		m, err := v.Invariant()
		require.NoError(t, err, "E = %g", e)
		require.Equal(t, 0.0, m)
	}

	// beyond the resolution of a tiny vector: spacelike
	v := lorentz.NewFourVector(1e-5, 0, 0, math.Sqrt(1e-10+1e-15))
	require.Less(t, v.InvariantSqr(), -v.Resolution())
	_, err := v.Invariant()
	require.ErrorIs(t, err, lorentz.ErrInvalidInvariant)
}

// TestEqualResolution checks that equality is relative to the receiver.
func TestEqualResolution(t *testing.T) {
	a := lorentz.NewFourVector(1e3, 0, 0, 1e3)
	require.True(t, a.Equal(a.Add(lorentz.NewFourVector(0, 1e-10, 0, 0)))) // 1e-10 < 1e-12·1414
	require.False(t, a.Equal(a.Add(lorentz.NewFourVector(0, 1e-8, 0, 0)))) // 1e-8 > 1.4e-9
	require.Equal(t, lorentz.DefaultResolution, lorentz.FourVector{}.Resolution())
}

// TestBoostToRest brings a momentum to rest and back.
func TestBoostToRest(t *testing.T) {
	p := lorentz.NewFourVector(5, 0, 0, 3)
	rest, err := p.BoostToRest(p)
	require.NoError(t, err)
	require.True(t, lorentz.NewFourVector(4, 0, 0, 0).Equal(rest), rest.String())

	back, err := rest.BoostFromRest(p)
	require.NoError(t, err)
	require.True(t, p.Equal(back), back.String())

	_, err = p.BoostToRest(lorentz.NewFourVector(1, 0, 0, 1)) // lightlike: no rest frame
	require.ErrorIs(t, err, lorentz.ErrSuperluminal)
}

// TestBoostPreservesProducts checks invariance of the Minkowski product.
func TestBoostPreservesProducts(t *testing.T) {
	a := lorentz.NewFourVector(3.2, 0.4, -1.1, 2.0)
	b := lorentz.NewFourVector(7.5, -2.2, 0.3, 5.1)
	want := a.ScalarProd(b)

	ba, err := a.BoostBeta(lorentz.NewThreeVector(0.3, -0.5, 0.6))
	require.NoError(t, err)
	bb, err := b.BoostBeta(lorentz.NewThreeVector(0.3, -0.5, 0.6))
	require.NoError(t, err)
	require.InDelta(t, want, ba.ScalarProd(bb), 1e-12)

	u, err := lorentz.NewUnitVector(lorentz.NewThreeVector(1, 1, 0))
	require.NoError(t, err)
	ra := a.BoostAxis(u, 2.5)
	rb := b.BoostAxis(u, 2.5)
	require.InDelta(t, want, ra.ScalarProd(rb), 1e-10)
	require.InDelta(t, a.InvariantSqr(), ra.InvariantSqr(), 1e-10)
}

func TestComplexFourVector(t *testing.T) {
	e := lorentz.NewFourVectorComplex(0, lorentz.ThreeVectorComplex{1, 1i, 0})
	require.Equal(t, complex(0, 0), e.ScalarProd(e))         // circular vector: e·e = 0
	require.Equal(t, complex(-2, 0), e.ScalarProd(e.Conj())) // −|e|²
	require.Equal(t, lorentz.FourVector{0, 1, 0, 0}, e.Real())
	require.Equal(t, lorentz.FourVector{0, 0, 1, 0}, e.Imag())

	k := lorentz.NewFourVector(1, 0, 0, 1)
	require.Equal(t, complex(0, 0), e.ScalarProdReal(k)) // transverse to k
}

// TestFmomRoundTrip converts through the go-hep representation.
func TestFmomRoundTrip(t *testing.T) {
	v := lorentz.NewFourVector(10, 1, -2, 3)
	p := v.PxPyPzE()
	require.Equal(t, 10.0, p.E())
	require.Equal(t, -2.0, p.Py())
	require.Equal(t, v, lorentz.FromP4(&p))
}
