// SPDX-License-Identifier: MIT

package lorentz

import "go-hep.org/x/hep/fmom"

// FromP4 converts any go-hep four-momentum into a FourVector (E; px, py, pz).
func FromP4(p fmom.P4) FourVector {
	return FourVector{p.E(), p.Px(), p.Py(), p.Pz()}
}

// PxPyPzE converts v, read as a four-momentum, into its go-hep form.
func (v FourVector) PxPyPzE() fmom.PxPyPzE {
	return fmom.NewPxPyPzE(v[1], v[2], v[3], v[0])
}
