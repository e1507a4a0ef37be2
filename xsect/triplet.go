// SPDX-License-Identifier: MIT

package xsect

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/dirac"
	"github.com/rjones30/diracxx/lorentz"
	"github.com/rjones30/diracxx/particle"
	"github.com/rjones30/diracxx/pauli"
)

// TripletProduction returns the cross section for γ e⁻ → e⁺ e⁻ e⁻ on a free
// electron, dσ/(dE₊ dφ₊ d³q) in μb/GeV⁴/sr, φ₊ being the positron azimuth
// about p₊ + p₂. Legs: photon k, target electron p₀, positron p₁, final
// electrons p₂ and p₃. Any frame with k and p₀ collinear may be used.
//
// Eight diagrams in four pairs, each pair a chain through the photon
// vertex times a current of the other fermion line:
//
//	CD(2): pair p₁p₃ from a Compton-like line p₀ → p₂    (1/(p₁+p₃)²)
//	BH(2): pair line p₁ → p₃ scattering off p₀ → p₂       (1/(p₀−p₂)²)
//	CD(3), BH(3): the same with p₂ ↔ p₃, entering with a minus sign.
//
// Kinematic factors: flux 4k(|p₀|+E₀), density 1/(8E₃|p₁+p₂|) and
// (2π)⁻⁵(4π)³.
//
// Errors: lorentz.ErrInvalidInvariant from a spacelike lepton momentum.
func (e *Engine) TripletProduction(gIn particle.Photon, eIn, pOut, eOut2, eOut3 particle.Lepton) (float64, error) {
	u0, err := uSpinors(eIn.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "TripletProduction: target electron")
	}
	v1, err := vSpinors(pOut.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "TripletProduction: positron")
	}
	u2, err := uSpinors(eOut2.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "TripletProduction: electron 2")
	}
	u3, err := uSpinors(eOut3.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "TripletProduction: electron 3")
	}

	m := eIn.Mass
	k, p0, p1, p2, p3 := gIn.Mom, eIn.Mom, pOut.Mom, eOut2.Mom, eOut3.Mom

	propCDa := dirac.Propagator(k.Add(p0), m, 2*k.ScalarProd(p0))
	propCDb := dirac.Propagator(p2.Sub(k), m, -2*k.ScalarProd(p2))
	propBHa := dirac.Propagator(k.Sub(p1), m, -2*k.ScalarProd(p1))
	propBHb := dirac.Propagator(p3.Sub(k), m, -2*k.ScalarProd(p3))

	gpropCD2 := 1 / p1.Add(p3).InvariantSqr()
	gpropBH2 := 1 / p0.Sub(p2).InvariantSqr()
	gpropCD3 := 1 / p1.Add(p2).InvariantSqr()
	gpropBH3 := 1 / p0.Sub(p3).InvariantSqr()

	gamma := dirac.GammaBasis()

	// legs: p0, p1, p2, p3, k
	amp := newAmplitude(5)
	for gi := 0; gi < 2; gi++ {
		epsI := slashEps(gIn, gi)
		for mu := 0; mu < 4; mu++ {
			g := gamma[mu]
			chain := func(pa, pb dirac.Matrix, gprop float64) dirac.Matrix {
				return g.Mul(pa).Mul(epsI).Add(epsI.Mul(pb).Mul(g)).ScaleReal(gprop)
			}
			cd2 := chain(propCDa, propCDb, gpropCD2)
			bh2 := chain(propBHa, propBHb, gpropBH2)
			cd3 := chain(propCDa, propBHb, gpropCD3)
			bh3 := chain(propBHa, propCDb, gpropBH3)
			sign := complex(lorentz.Metric(mu), 0)

			for h0 := 0; h0 < 2; h0++ {
				for h1 := 0; h1 < 2; h1++ {
					gv1 := g.Apply(v1[h1])
					gu0 := g.Apply(u0[h0])
					cd2u0, cd3u0 := cd2.Apply(u0[h0]), cd3.Apply(u0[h0])
					bh2v1, bh3v1 := bh2.Apply(v1[h1]), bh3.Apply(v1[h1])
					for h2 := 0; h2 < 2; h2++ {
						for h3 := 0; h3 < 2; h3++ {
							a := u3[h3].ScalarProd(gv1)*u2[h2].ScalarProd(cd2u0) -
								u2[h2].ScalarProd(gv1)*u3[h3].ScalarProd(cd3u0) +
								u2[h2].ScalarProd(gu0)*u3[h3].ScalarProd(bh2v1) -
								u3[h3].ScalarProd(gu0)*u2[h2].ScalarProd(bh3v1)
							amp.add(sign*a, h0, h1, h2, h3, gi)
						}
					}
				}
			}
		}
	}

	sum, partial, err := amp.Contract([]pauli.Matrix{
		Incoming(eIn.SDM), Incoming(pOut.SDM), Outgoing(eOut2.SDM), Outgoing(eOut3.SDM), Incoming(gIn.SDM),
	}, 4)
	if err != nil {
		return 0, err
	}
	e.checkSpinSum("triplet", sum, partial)

	c := e.consts
	flux := 4 * k.Time() * (p0.Length() + p0.Time())
	rho := 1 / (8 * p3.Time() * p1.Add(p2).Length())
	piFactor := math.Pow(2*math.Pi, -5) * math.Pow(4*math.Pi, 3)
	return c.HbarcSqr * math.Pow(c.Alpha, 3) * real(sum) / flux * rho * piFactor, nil
}

// TripletProduction evaluates Default().TripletProduction.
func TripletProduction(gIn particle.Photon, eIn, pOut, eOut2, eOut3 particle.Lepton) (float64, error) {
	return Default().TripletProduction(gIn, eIn, pOut, eOut2, eOut3)
}
