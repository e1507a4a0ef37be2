// SPDX-License-Identifier: MIT

package xsect

import (
	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/dirac"
	"github.com/rjones30/diracxx/particle"
	"github.com/rjones30/diracxx/pauli"
)

// Compton returns dσ/dΩ for γ e → γ e in μb/sr, Ω being the solid angle of
// the scattered photon in the frame of the given momenta. The frame must
// have the initial photon and lepton collinear (head-on or lepton at rest).
//
// Diagrams (direct and crossed):
//
//	ū' [ ε̸'* (p̸+k̸+m) ε̸ / 2p·k  +  ε̸ (p̸−k̸'+m) ε̸'* / (−2p·k') ] u
//
// Kinematic factor 4ρ/F with F = 4k(|p|+E) and ρ = k'²/(4 p'·k').
//
// Errors: lorentz.ErrInvalidInvariant from a spacelike lepton momentum.
func (e *Engine) Compton(gIn particle.Photon, eIn particle.Lepton, gOut particle.Photon, eOut particle.Lepton) (float64, error) {
	uI, err := uSpinors(eIn.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "Compton: initial lepton")
	}
	uF, err := uSpinors(eOut.Mom)
	if err != nil {
		return 0, errors.Wrap(err, "Compton: final lepton")
	}

	m := eIn.Mass // final lepton assumed to share it
	prop1 := dirac.Propagator(eIn.Mom.Add(gIn.Mom), m, 2*eIn.Mom.ScalarProd(gIn.Mom))
	prop2 := dirac.Propagator(eIn.Mom.Sub(gOut.Mom), m, -2*eIn.Mom.ScalarProd(gOut.Mom))

	// legs: eIn, eOut, gIn, gOut
	amp := newAmplitude(4)
	for gi := 0; gi < 2; gi++ {
		epsI := slashEps(gIn, gi)
		for gf := 0; gf < 2; gf++ {
			epsF := slashEpsStar(gOut, gf)
			d := epsF.Mul(prop1).Mul(epsI).Add(epsI.Mul(prop2).Mul(epsF))
			for hi := 0; hi < 2; hi++ {
				for hf := 0; hf < 2; hf++ {
					amp.add(sandwich(uF[hf], d, uI[hi]), hi, hf, gi, gf)
				}
			}
		}
	}

	sum, partial, err := amp.Contract([]pauli.Matrix{
		Incoming(eIn.SDM), Outgoing(eOut.SDM), Incoming(gIn.SDM), Outgoing(gOut.SDM),
	}, 3)
	if err != nil {
		return 0, err
	}
	e.checkSpinSum("compton", sum, partial)

	flux := 4 * gIn.Mom.Time() * (eIn.Mom.Length() + eIn.Mom.Time())
	rho := gOut.Mom.Time() * gOut.Mom.Time() / eOut.Mom.ScalarProd(gOut.Mom) / 4
	c := e.consts
	return c.HbarcSqr * c.Alpha * c.Alpha * real(sum) * 4 * rho / flux, nil
}

// Compton evaluates Default().Compton.
func Compton(gIn particle.Photon, eIn particle.Lepton, gOut particle.Photon, eOut particle.Lepton) (float64, error) {
	return Default().Compton(gIn, eIn, gOut, eOut)
}
