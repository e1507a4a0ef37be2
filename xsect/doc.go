// Package xsect computes leading-order QED differential cross sections by
// explicit summation of Feynman amplitudes over helicity and polarization
// states.
//
// Reactions:
//
//   - Compton(γ e → γ e)                      μb/sr
//   - Bremsstrahlung(e → e γ, Coulomb field)  μb/GeV⁴/sr
//   - PairProduction(γ → e⁻ e⁺, Coulomb)      μb/GeV⁴/sr
//   - TripletProduction(γ e → e⁺ e⁻ e⁻)       μb/GeV⁴/sr
//   - EEBremsstrahlung(e e → e e γ)           μb/GeV⁴/sr
//
// Every external leg carries a 2×2 spin-density matrix (SDM). The squared
// amplitude is Σ A(s) A*(s̄) Π ρ, where an incoming leg contributes ρ[s][s̄]
// and an outgoing leg ρ[s̄][s]. An incoming SDM of trace one averages over
// initial states; an outgoing SDM equal to the identity sums over final
// states, and a pure-state projector selects one final polarization.
//
// Kinematics are taken as given: momentum conservation, on-shell masses and
// equal lepton masses are assumed and never checked. Propagator poles are
// not guarded, so a degenerate configuration produces a non-finite result.
//
// The only error a reaction returns is lorentz.ErrInvalidInvariant, raised
// while building a spinor from a spacelike momentum. A spin sum that is
// negative or complex beyond tolerance is reported as a Warn entry on the
// Engine's logger and does not stop the calculation.
//
// Package-level functions evaluate with Default(), an Engine built from
// DefaultAlpha and DefaultHbarcSqr with a no-op logger. Engines are
// immutable and safe for concurrent use.
package xsect
