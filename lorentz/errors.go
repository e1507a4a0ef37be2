// SPDX-License-Identifier: MIT
// Package lorentz: sentinel error set.
// All constructors and checked accessors return these sentinels (possibly
// wrapped with call-site context); callers match them with errors.Is.

package lorentz

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfRange indicates a component index outside the valid bounds.
	// Checked accessors return the first component together with this error.
	ErrOutOfRange = errors.New("lorentz: index out of range")

	// ErrInvalidInvariant signals a timelike operation on a vector whose
	// invariant-squared is negative beyond resolution.
	ErrInvalidInvariant = errors.New("lorentz: invariant of a spacelike vector")

	// ErrSuperluminal signals a boost velocity with |β| ≥ 1 or γ < 1.
	ErrSuperluminal = errors.New("lorentz: boost velocity must satisfy |beta| < 1")

	// ErrZeroVector signals that a direction was requested from a zero vector.
	ErrZeroVector = errors.New("lorentz: zero-length vector has no direction")

	// ErrSingular is returned when a transform has no inverse.
	ErrSingular = errors.New("lorentz: singular transform")

	// ErrNotBoost is returned by AsBoost when a transform is not a pure boost.
	ErrNotBoost = errors.New("lorentz: transform is not a pure boost")

	// ErrNotRotation is returned by AsRotation when a transform is not a pure rotation.
	ErrNotRotation = errors.New("lorentz: transform is not a pure rotation")

	// ErrBadLength is returned when a component slice has the wrong length.
	ErrBadLength = errors.New("lorentz: wrong number of components")
)
