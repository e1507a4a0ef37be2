// SPDX-License-Identifier: MIT

package kinematics

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/lorentz"
)

// ComptonPoint is a γ e → γ e configuration.
type ComptonPoint struct {
	GammaIn   lorentz.FourVector `json:"gamma_in" yaml:"gamma_in"`
	LeptonIn  lorentz.FourVector `json:"lepton_in" yaml:"lepton_in"`
	GammaOut  lorentz.FourVector `json:"gamma_out" yaml:"gamma_out"`
	LeptonOut lorentz.FourVector `json:"lepton_out" yaml:"lepton_out"`
}

// PairPoint is a γ → e⁻ e⁺ configuration in a static field with recoil Q.
type PairPoint struct {
	Gamma    lorentz.FourVector `json:"gamma" yaml:"gamma"`
	Electron lorentz.FourVector `json:"electron" yaml:"electron"`
	Positron lorentz.FourVector `json:"positron" yaml:"positron"`
	Recoil   lorentz.FourVector `json:"recoil" yaml:"recoil"`
}

// BremsPoint is an e → e γ configuration in a static field with recoil Q.
type BremsPoint struct {
	LeptonIn  lorentz.FourVector `json:"lepton_in" yaml:"lepton_in"`
	LeptonOut lorentz.FourVector `json:"lepton_out" yaml:"lepton_out"`
	Gamma     lorentz.FourVector `json:"gamma" yaml:"gamma"`
	Recoil    lorentz.FourVector `json:"recoil" yaml:"recoil"`
}

// ComptonKPrime returns the scattered photon energy k/(1 + k(1−cosθ)/m).
func ComptonKPrime(k, m, cosTheta float64) float64 {
	return k / (1 + k/m*(1-cosTheta))
}

// Compton returns the rest-frame point for a photon of energy k along +z
// scattering to polar angle theta and azimuth phi off a lepton of mass m.
// Errors: ErrUnphysical unless k > 0 and m > 0.
func Compton(k, m, theta, phi float64) (ComptonPoint, error) {
	if !(k > 0) || !(m > 0) {
		return ComptonPoint{}, errors.Wrapf(ErrUnphysical, "Compton(k=%g, m=%g)", k, m)
	}
	kp := ComptonKPrime(k, m, math.Cos(theta))
	pt := ComptonPoint{
		GammaIn:  lorentz.NewFourVector(k, 0, 0, k),
		LeptonIn: lorentz.NewFourVector(m, 0, 0, 0),
		GammaOut: lightlike(kp, lorentz.Direction(theta, phi)),
	}
	pt.LeptonOut = pt.GammaIn.Add(pt.LeptonIn).Sub(pt.GammaOut)
	return pt, nil
}

// PairLab returns a pair-production point for a photon of energy k along
// +z: the electron takes the fraction x of k at polar angle thetaMinus and
// azimuth phi, the positron the rest at thetaPlus and azimuth phi+π.
// Errors: ErrUnphysical when either lepton energy is below m.
func PairLab(k, m, x, thetaMinus, thetaPlus, phi float64) (PairPoint, error) {
	eMinus, ePlus := x*k, (1-x)*k
	if !(eMinus >= m) || !(ePlus >= m) {
		return PairPoint{}, errors.Wrapf(ErrUnphysical, "PairLab(k=%g, x=%g)", k, x)
	}
	pt := PairPoint{
		Gamma:    lorentz.NewFourVector(k, 0, 0, k),
		Electron: massive(eMinus, m, lorentz.Direction(thetaMinus, phi)),
		Positron: massive(ePlus, m, lorentz.Direction(thetaPlus, phi+math.Pi)),
	}
	pt.Recoil = pt.Gamma.Sub(pt.Electron).Sub(pt.Positron)
	return pt, nil
}

// BremsstrahlungLab returns a bremsstrahlung point for a lepton of energy e
// along +z radiating a photon of energy k at (thetaK, phi); the lepton
// leaves with energy e−k at polar angle thetaE and azimuth phi+π.
// Errors: ErrUnphysical unless e−k ≥ m and k > 0.
func BremsstrahlungLab(e, m, k, thetaK, thetaE, phi float64) (BremsPoint, error) {
	if !(k > 0) || !(e-k >= m) {
		return BremsPoint{}, errors.Wrapf(ErrUnphysical, "BremsstrahlungLab(E=%g, k=%g)", e, k)
	}
	pt := BremsPoint{
		LeptonIn:  massive(e, m, lorentz.ZAxis()),
		LeptonOut: massive(e-k, m, lorentz.Direction(thetaE, phi+math.Pi)),
		Gamma:     lightlike(k, lorentz.Direction(thetaK, phi)),
	}
	pt.Recoil = pt.LeptonIn.Sub(pt.LeptonOut).Sub(pt.Gamma)
	return pt, nil
}

// SolvePhotonEnergy returns the photon energy k > 0 along n for which
// Q − k·(1, n) has invariant mass m, i.e. k = (Q² − m²)/(2 Q·(1, n)).
// It closes three-body final states: with Q the four-momentum left after
// the other particles, Q − k(1, n) is the last lepton (or, when Q is minus
// that remainder, its negative).
// Errors: ErrUnphysical when no positive finite root exists.
func SolvePhotonEnergy(q lorentz.FourVector, n lorentz.UnitVector, m float64) (float64, error) {
	dir := lorentz.FourVectorFrom(1, n.Vector())
	k := (q.InvariantSqr() - m*m) / (2 * q.ScalarProd(dir))
	if !(k > 0) || math.IsInf(k, 0) {
		return 0, errors.Wrapf(ErrUnphysical, "SolvePhotonEnergy: k = %g", k)
	}
	return k, nil
}

// massive returns the four-momentum of energy e and mass m along u.
func massive(e, m float64, u lorentz.UnitVector) lorentz.FourVector {
	return lorentz.FourVectorFrom(e, u.Scale(math.Sqrt((e-m)*(e+m))))
}

// lightlike returns k·(1, u).
func lightlike(k float64, u lorentz.UnitVector) lorentz.FourVector {
	return lorentz.FourVectorFrom(k, u.Scale(k))
}
