// SPDX-License-Identifier: MIT

package xsect

import (
	"github.com/rjones30/diracxx/dirac"
	"github.com/rjones30/diracxx/lorentz"
	"github.com/rjones30/diracxx/particle"
)

// helicity maps a state label to its helicity: 0 → +½, 1 → −½.
var helicity = [2]float64{+0.5, -0.5}

// uSpinors returns u(p, +½), u(p, −½).
func uSpinors(p lorentz.FourVector) ([2]dirac.Spinor, error) {
	var s [2]dirac.Spinor
	for h := range s {
		u, err := dirac.U(p, helicity[h])
		if err != nil {
			return s, err
		}
		s[h] = u
	}
	return s, nil
}

// vSpinors returns v(p, +½), v(p, −½).
func vSpinors(p lorentz.FourVector) ([2]dirac.Spinor, error) {
	var s [2]dirac.Spinor
	for h := range s {
		v, err := dirac.V(p, helicity[h])
		if err != nil {
			return s, err
		}
		s[h] = v
	}
	return s, nil
}

// slashEps returns ε̸_j for state label j ∈ {0, 1}.
func slashEps(g particle.Photon, j int) dirac.Matrix {
	e, _ := g.Eps(j + 1) // j+1 is always 1 or 2
	return dirac.SlashComplex(e)
}

// slashEpsStar returns ε̸*_j for state label j ∈ {0, 1}.
func slashEpsStar(g particle.Photon, j int) dirac.Matrix {
	e, _ := g.EpsStar(j + 1)
	return dirac.SlashComplex(e)
}

// sandwich returns ā·M·b.
func sandwich(a dirac.Spinor, m dirac.Matrix, b dirac.Spinor) complex128 {
	return a.ScalarProd(m.Apply(b))
}
