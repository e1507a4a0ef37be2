// Package lorentz implements the relativistic vector algebra used by the
// amplitude code: real and complex three-vectors, Minkowski four-vectors
// under the (+,−,−,−) metric, and the Lorentz transformations acting on
// them (general transforms, pure boosts and spatial rotations).
//
// Overview:
//
//   - ThreeVector / ThreeVectorComplex: plain [3] arrays with dot/cross
//     products, length, unit extraction and rotation.
//   - FourVector / FourVectorComplex: plain [4] arrays (t, x, y, z) with the
//     invariant norm, Minkowski scalar product and boost helpers.
//   - Transform: a 4×4 real matrix; composition, transpose, inversion.
//   - Boost, Rotation: value types that own a Transform and can only be
//     built by constructors that guarantee their structure.
//
// Numeric policy:
//
//   - Equality of four-vectors is tolerant: two vectors are equal when
//     their Euclidean distance is below the resolution of the receiver,
//     DefaultResolution scaled by the receiver's own magnitude.
//   - Invariant() clamps numerical noise around a lightlike vector to zero
//     and reports a genuinely negative norm as ErrInvalidInvariant.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrOutOfRange        component index outside the vector/matrix bounds.
//   - ErrInvalidInvariant  timelike operation on a spacelike vector.
//   - ErrSuperluminal      boost velocity with |β| ≥ 1.
//   - ErrZeroVector        unit vector requested from a zero vector.
//   - ErrSingular          inverse of a singular transform.
//   - ErrNotBoost, ErrNotRotation  capability checks failed.
//
// Boost convention: NewBoost(β) maps a four-vector into the frame moving
// with velocity β, so BoostOf(p) brings p to rest.
package lorentz
