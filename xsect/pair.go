// SPDX-License-Identifier: MIT

package xsect

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/dirac"
	"github.com/rjones30/diracxx/particle"
	"github.com/rjones30/diracxx/pauli"
)

// PairProduction returns the cross section for a photon converting into an
// e⁻e⁺ pair in the static Coulomb field of a target, dσ/(dE dφ d³q) in
// μb/GeV⁴/sr, at recoil momentum q = k − p₋ − p₊, laboratory frame.
//
//	ū(p₋) [ ε̸ (p̸₋−k̸+m) γ⁰ / (−2k·p₋)  +  γ⁰ (k̸−p̸₊+m) ε̸ / (−2k·p₊) ] v(p₊)
//
// Kinematic factor 1/(2πk)² · 1/q⁴.
//
// Errors: lorentz.ErrInvalidInvariant from a spacelike lepton momentum.
func (e *Engine) PairProduction(gIn particle.Photon, eOut, pOut particle.Lepton) (float64, error) {
	uF, err := uSpinors(eOut.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "PairProduction: electron")
	}
	vF, err := vSpinors(pOut.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "PairProduction: positron")
	}

	m := eOut.Mass
	q := gIn.Mom.Sub(eOut.Mom).Sub(pOut.Mom)
	prop1 := dirac.Propagator(eOut.Mom.Sub(gIn.Mom), m, -2*gIn.Mom.ScalarProd(eOut.Mom))
	prop2 := dirac.Propagator(gIn.Mom.Sub(pOut.Mom), m, -2*gIn.Mom.ScalarProd(pOut.Mom))
	gamma0, _ := dirac.Gamma(0)

	// legs: pOut, eOut, gIn
	amp := newAmplitude(3)
	for gi := 0; gi < 2; gi++ {
		epsI := slashEps(gIn, gi)
		d := epsI.Mul(prop1).Mul(gamma0).Add(gamma0.Mul(prop2).Mul(epsI))
		for hp := 0; hp < 2; hp++ {
			for he := 0; he < 2; he++ {
				amp.add(sandwich(uF[he], d, vF[hp]), hp, he, gi)
			}
		}
	}

	sum, partial, err := amp.Contract([]pauli.Matrix{
		Incoming(pOut.SDM), Outgoing(eOut.SDM), Incoming(gIn.SDM),
	}, 2)
	if err != nil {
		return 0, err
	}
	e.checkSpinSum("pair", sum, partial)

	c := e.consts
	kin := 1 / sqr(2*math.Pi*gIn.Mom.Time())
	return c.HbarcSqr * math.Pow(c.Alpha, 3) * real(sum) * kin / sqr(q.InvariantSqr()), nil
}

// PairProduction evaluates Default().PairProduction.
func PairProduction(gIn particle.Photon, eOut, pOut particle.Lepton) (float64, error) {
	return Default().PairProduction(gIn, eOut, pOut)
}
