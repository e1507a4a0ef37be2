// Package diracxx computes leading-order QED cross sections from explicit
// helicity amplitudes, on top of a small relativistic vector and spinor
// algebra.
//
// What is in the box?
//
//   - Minkowski four-vectors, boosts and rotations with tolerant equality
//     and lightlike clamping
//   - Pauli and Dirac matrices, helicity spinors and spin density matrices
//   - Polarized photon and lepton legs, in a linear or a helicity basis
//   - Cross sections: Compton scattering, bremsstrahlung and pair
//     production in a Coulomb field, triplet production and e e
//     bremsstrahlung, with a closed-form Klein–Nishina cross-check
//
// Layout:
//
//	lorentz/     ThreeVector, FourVector (real and complex), Transform, Boost, Rotation
//	pauli/       2×2 matrices, two-component spinors, density matrices
//	dirac/       4×4 matrices, γ^μ and γ⁵, slash, propagators, u and v spinors
//	particle/    Lepton and Photon legs with polarization vectors
//	xsect/       the Engine and the reaction functions
//	kinematics/  builders for on-shell configurations
//	cmd/qedxs/   command-line scans with table, JSON and YAML output
//
// Units: energies and momenta in GeV, cross sections in μb per unit of the
// stated phase-space measure. The metric is (+,−,−,−) and γ matrices are in
// the Dirac representation.
//
// Quick start:
//
//	pt, _ := kinematics.Compton(0.001, 0.000511, math.Pi/2, 0)
//	sigma, err := xsect.Compton(
//		particle.NewPhoton(pt.GammaIn, pauli.Unpolarized()),
//		particle.NewLepton(pt.LeptonIn, 0.000511, pauli.Unpolarized()),
//		particle.NewPhoton(pt.GammaOut, pauli.Inclusive()),
//		particle.NewLepton(pt.LeptonOut, 0.000511, pauli.Inclusive()),
//	)
package diracxx
