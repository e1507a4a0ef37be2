// SPDX-License-Identifier: MIT

package xsect

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/dirac"
	"github.com/rjones30/diracxx/particle"
	"github.com/rjones30/diracxx/pauli"
)

// Bremsstrahlung returns the cross section for a lepton radiating a photon
// in the static Coulomb field of a target, dσ/(dk dφ d³q) in μb/GeV⁴/sr,
// at recoil momentum q = p − p' − k. The recoil energy is taken to vanish
// in the laboratory frame, which is the frame of the given momenta; the
// integral over the target form factor is left to the caller.
//
// The target couples through γ⁰ with photon propagator 1/q²:
//
//	ū' [ ε̸* (p̸−q̸+m) γ⁰ / (q²−2q·p)  +  γ⁰ (p̸'+q̸+m) ε̸* / (q²+2q·p') ] u
//
// Kinematic factor 1/(2πE)² · 1/q⁴.
//
// Errors: lorentz.ErrInvalidInvariant from a spacelike lepton momentum.
func (e *Engine) Bremsstrahlung(eIn, eOut particle.Lepton, gOut particle.Photon) (float64, error) {
	uI, err := uSpinors(eIn.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "Bremsstrahlung: initial lepton")
	}
	uF, err := uSpinors(eOut.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "Bremsstrahlung: final lepton")
	}

	m := eIn.Mass
	q := eIn.Mom.Sub(eOut.Mom).Sub(gOut.Mom)
	q2 := q.InvariantSqr()
	prop1 := dirac.Propagator(eIn.Mom.Sub(q), m, q2-2*q.ScalarProd(eIn.Mom))
	prop2 := dirac.Propagator(eOut.Mom.Add(q), m, q2+2*q.ScalarProd(eOut.Mom))
	gamma0, _ := dirac.Gamma(0)

	// legs: eIn, eOut, gOut
	amp := newAmplitude(3)
	for gf := 0; gf < 2; gf++ {
		epsF := slashEpsStar(gOut, gf)
		d := epsF.Mul(prop1).Mul(gamma0).Add(gamma0.Mul(prop2).Mul(epsF))
		for hi := 0; hi < 2; hi++ {
			for hf := 0; hf < 2; hf++ {
				amp.add(sandwich(uF[hf], d, uI[hi]), hi, hf, gf)
			}
		}
	}

	sum, partial, err := amp.Contract([]pauli.Matrix{
		Incoming(eIn.SDM), Outgoing(eOut.SDM), Outgoing(gOut.SDM),
	}, 2)
	if err != nil {
		return 0, err
	}
	e.checkSpinSum("bremsstrahlung", sum, partial)

	c := e.consts
	kin := 1 / sqr(2*math.Pi*eIn.Mom.Time())
	return c.HbarcSqr * math.Pow(c.Alpha, 3) * real(sum) * kin / sqr(q2), nil
}

// Bremsstrahlung evaluates Default().Bremsstrahlung.
func Bremsstrahlung(eIn, eOut particle.Lepton, gOut particle.Photon) (float64, error) {
	return Default().Bremsstrahlung(eIn, eOut, gOut)
}

func sqr(x float64) float64 { return x * x }
