// Package dirac implements 4×4 Dirac matrices and four-component spinors in
// the Dirac representation:
//
//	γ⁰ = [[I, 0], [0, −I]],  γⁱ = [[0, σⁱ], [−σⁱ, 0]],  γ⁵ = iγ⁰γ¹γ²γ³.
//
// Slash(p) = γ^μ p_μ = γ⁰p⁰ − γ·p contracts a four-vector with the basis,
// and Propagator(p, m, d) = (p̸ + m)/d is the fermion line between two
// vertices. U and V build the free-particle and antiparticle spinors in the
// helicity basis, normalized to ūu = 2m and v̄v = −2m.
//
// Matrix arithmetic never checks for degenerate denominators: Div by zero
// produces Inf/NaN entries that propagate into the amplitude, which is the
// documented behavior at kinematic poles.
package dirac
