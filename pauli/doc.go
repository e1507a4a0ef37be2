// Package pauli provides 2×2 complex matrices and two-component spinors:
// the Pauli matrices σ¹, σ², σ³, the helicity eigenstates used to build
// Dirac spinors, and the spin-density matrices (SDMs) that describe the
// polarization of every external particle.
//
// SDM conventions:
//
//   - Unpolarized() = I/2 describes an unpolarized prepared (incoming)
//     state: its trace is one, so summing against it averages.
//   - Inclusive() = I describes an outgoing state that is not analysed:
//     summing against it adds all final polarizations.
//   - FromPolarization(P) = (I + P·σ)/2 for a polarization vector |P| ≤ 1.
//
// Errors: ErrOutOfRange, ErrBadHelicity, ErrBadPolarization.
package pauli
