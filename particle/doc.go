// Package particle describes the external legs of a QED process: leptons
// (four-momentum, mass, spin-density matrix) and photons (four-momentum,
// spin-density matrix over two transverse polarization states).
//
// Photon polarization bases:
//
//   - Linear (default): ε₁ = (0, θ̂), ε₂ = (0, φ̂), with θ̂ and φ̂ the polar
//     and azimuthal unit vectors at the photon direction.
//   - Helicity: ε₁ = −(θ̂ + iφ̂)/√2 (h = +1), ε₂ = (θ̂ − iφ̂)/√2 (h = −1).
//
// The photon SDM is expressed in the chosen basis; its index 0 refers to ε₁.
package particle
