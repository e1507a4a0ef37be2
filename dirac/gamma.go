// SPDX-License-Identifier: MIT

package dirac

import (
	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/lorentz"
	"github.com/rjones30/diracxx/pauli"
)

// gammaBasis holds γ⁰…γ³ in the Dirac representation; gamma5 is iγ⁰γ¹γ²γ³.
var (
	gammaBasis = buildGammaBasis()
	gamma5     = buildGamma5()
)

func buildGammaBasis() [4]Matrix {
	var zero pauli.Matrix
	one := pauli.Identity()
	g := [4]Matrix{blocks(one, zero, zero, one.Scale(-1))}
	for i := 1; i <= 3; i++ {
		s, _ := pauli.Sigma(i)
		g[i] = blocks(zero, s, s.Scale(-1), zero)
	}
	return g
}

func buildGamma5() Matrix {
	g := gammaBasis
	return g[0].Mul(g[1]).Mul(g[2]).Mul(g[3]).Scale(1i)
}

// Gamma returns γ^mu for mu ∈ [0,3]. Outside that range it returns γ⁰ and
// ErrOutOfRange.
func Gamma(mu int) (Matrix, error) {
	if mu < 0 || mu > 3 {
		return gammaBasis[0], errors.Wrapf(ErrOutOfRange, "Gamma(%d)", mu)
	}
	return gammaBasis[mu], nil
}

// GammaBasis returns a copy of γ⁰…γ³.
func GammaBasis() [4]Matrix {
	return gammaBasis
}

// Gamma5 returns γ⁵ = iγ⁰γ¹γ²γ³ = [[0, I], [I, 0]].
func Gamma5() Matrix {
	return gamma5
}

// Slash returns p̸ = γ⁰p⁰ − γ¹p¹ − γ²p² − γ³p³.
func Slash(p lorentz.FourVector) Matrix {
	return SlashComplex(p.Complex())
}

// SlashComplex returns ε̸ for a complex four-vector such as a polarization.
func SlashComplex(e lorentz.FourVectorComplex) Matrix {
	var m Matrix
	for mu := 0; mu < 4; mu++ {
		c := e[mu] * complex(lorentz.Metric(mu), 0)
		if c == 0 {
			continue
		}
		m = m.Add(gammaBasis[mu].Scale(c))
	}
	return m
}

// Propagator returns (p̸ + mass)/denom. The denominator is not checked.
func Propagator(p lorentz.FourVector, mass, denom float64) Matrix {
	return Slash(p).AddScalar(mass).Div(denom)
}
