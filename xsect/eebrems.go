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

// EEBremsstrahlung returns the cross section for e⁻ e⁻ → e⁻ e⁻ γ on a free
// target electron, dσ/(dk dφ d³q) in μb/GeV⁴/sr, laboratory frame. Legs:
// beam p₀, target p₁, final electrons p₂ (on the beam line) and p₃, photon k.
//
// Diagrams, each radiating before or after the exchanged photon:
//
//	A: radiation on p₀ → p₂, exchange 1/(p₁−p₃)²
//	B: radiation on p₁ → p₃, exchange 1/(p₀−p₂)²
//	C, D: A and B with p₂ ↔ p₃, entering with a minus sign.
//
// Kinematic factor 1/(2πE₀)² / (4E₁E₃).
//
// Errors: lorentz.ErrInvalidInvariant from a spacelike lepton momentum.
func (e *Engine) EEBremsstrahlung(eIn0, eIn1, eOut2, eOut3 particle.Lepton, gOut particle.Photon) (float64, error) {
	var u [4][2]dirac.Spinor
	for i, l := range []particle.Lepton{eIn0, eIn1, eOut2, eOut3} {
		s, err := uSpinors(l.Mom)
		if err != nil {
			return 0, errors.Wrapf(err, "EEBremsstrahlung: lepton %d", i)
		}
		u[i] = s
	}
	u0, u1, u2, u3 := u[0], u[1], u[2], u[3]

	m := eIn0.Mass
	k, p0, p1, p2, p3 := gOut.Mom, eIn0.Mom, eIn1.Mom, eOut2.Mom, eOut3.Mom

	propA1 := dirac.Propagator(p0.Sub(k), m, -2*k.ScalarProd(p0))
	propA2 := dirac.Propagator(p2.Add(k), m, 2*k.ScalarProd(p2))
	propB1 := dirac.Propagator(p1.Sub(k), m, -2*k.ScalarProd(p1))
	propB2 := dirac.Propagator(p3.Add(k), m, 2*k.ScalarProd(p3))

	gpropA := 1 / p1.Sub(p3).InvariantSqr()
	gpropB := 1 / p0.Sub(p2).InvariantSqr()
	gpropC := 1 / p1.Sub(p2).InvariantSqr()
	gpropD := 1 / p0.Sub(p3).InvariantSqr()

	gamma := dirac.GammaBasis()

	// legs: p0, p1, p2, p3, k
	amp := newAmplitude(5)
	for gf := 0; gf < 2; gf++ {
		epsF := slashEpsStar(gOut, gf)
		for mu := 0; mu < 4; mu++ {
			g := gamma[mu]
			chain := func(p1st, p2nd dirac.Matrix, gprop float64) dirac.Matrix {
				return g.Mul(p1st).Mul(epsF).Add(epsF.Mul(p2nd).Mul(g)).ScaleReal(gprop)
			}
			a := chain(propA1, propA2, gpropA)
			b := chain(propB1, propB2, gpropB)
			c := chain(propA1, propB2, gpropC)
			d := chain(propB1, propA2, gpropD)
			sign := complex(lorentz.Metric(mu), 0)

			for h0 := 0; h0 < 2; h0++ {
				for h1 := 0; h1 < 2; h1++ {
					gu0, gu1 := g.Apply(u0[h0]), g.Apply(u1[h1])
					au0, cu0 := a.Apply(u0[h0]), c.Apply(u0[h0])
					bu1, du1 := b.Apply(u1[h1]), d.Apply(u1[h1])
					for h2 := 0; h2 < 2; h2++ {
						for h3 := 0; h3 < 2; h3++ {
							x := u3[h3].ScalarProd(gu1)*u2[h2].ScalarProd(au0) +
								u2[h2].ScalarProd(gu0)*u3[h3].ScalarProd(bu1) -
								u2[h2].ScalarProd(gu1)*u3[h3].ScalarProd(cu0) -
								u3[h3].ScalarProd(gu0)*u2[h2].ScalarProd(du1)
							amp.add(sign*x, h0, h1, h2, h3, gf)
						}
					}
				}
			}
		}
	}

	sum, partial, err := amp.Contract([]pauli.Matrix{
		Incoming(eIn0.SDM), Incoming(eIn1.SDM), Outgoing(eOut2.SDM), Outgoing(eOut3.SDM), Outgoing(gOut.SDM),
	}, 4)
	if err != nil {
		return 0, err
	}
	e.checkSpinSum("ee-bremsstrahlung", sum, partial)

	consts := e.consts
	kin := 1 / sqr(2*math.Pi*p0.Time()) / (4 * p1.Time() * p3.Time())
	return consts.HbarcSqr * math.Pow(consts.Alpha, 3) * real(sum) * kin, nil
}

// EEBremsstrahlung evaluates Default().EEBremsstrahlung.
func EEBremsstrahlung(eIn0, eIn1, eOut2, eOut3 particle.Lepton, gOut particle.Photon) (float64, error) {
	return Default().EEBremsstrahlung(eIn0, eIn1, eOut2, eOut3, gOut)
}
