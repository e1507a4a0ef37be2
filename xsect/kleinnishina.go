// SPDX-License-Identifier: MIT

package xsect

import "github.com/rjones30/diracxx/particle"

// KleinNishina returns the unpolarized Compton cross section dσ/dΩ in μb/sr
// from the closed-form Klein–Nishina formula,
//
//	α²/(2m²) · (k'/k)² · (k'/k + k/k' − sin²θ),
//
// θ being the angle between the photon directions. It is exact only in the
// rest frame of the initial lepton and serves to verify Compton.
func (e *Engine) KleinNishina(gIn, gOut particle.Photon, mass float64) float64 {
	k, kp := gIn.Mom.Time(), gOut.Mom.Time()
	a, b := gIn.Mom.Space(), gOut.Mom.Space()
	cos := a.Dot(b) / (a.Length() * b.Length())
	sin2 := 1 - cos*cos
	r := kp / k
	c := e.consts
	return c.HbarcSqr * sqr(c.Alpha/mass) / 2 * r * r * (r + 1/r - sin2)
}

// KleinNishina evaluates Default().KleinNishina.
func KleinNishina(gIn, gOut particle.Photon, mass float64) float64 {
	return Default().KleinNishina(gIn, gOut, mass)
}
