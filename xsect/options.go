// SPDX-License-Identifier: MIT

// Package xsect: functional configuration of an Engine.
//
// Option constructors validate eagerly and panic on nonsensical values
// (programmer error); callers holding untrusted input, such as a config
// file, run Constants.Validate first.

package xsect

import (
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultConsistencyCheck enables the advisory spin-sum check.
	DefaultConsistencyCheck = true

	// DefaultCheckTolerance is the relative size of a negative real part or
	// of an imaginary part that the advisory check tolerates.
	DefaultCheckTolerance = 1e-8
)

const (
	panicConstantsInvalid = "xsect: WithConstants: alpha and hbarc² must be finite and positive"
	panicToleranceInvalid = "xsect: WithCheckTolerance: tol must be finite, non-negative"
)

// Option configures an Engine at construction.
type Option func(*Engine)

// WithConstants replaces the physical constants.
// Panics when c.Validate fails.
func WithConstants(c Constants) Option {
	if err := c.Validate(); err != nil {
		panic(panicConstantsInvalid)
	}
	return func(e *Engine) { e.consts = c }
}

// WithLogger sets the logger used for advisory diagnostics. A nil logger
// restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l == nil {
			l = zap.NewNop()
		}
		e.log = l
	}
}

// WithConsistencyCheck switches the advisory spin-sum check on or off.
func WithConsistencyCheck(on bool) Option {
	return func(e *Engine) { e.check = on }
}

// WithCheckTolerance sets the relative tolerance of the advisory check.
// Panics when tol is negative or not finite.
func WithCheckTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}
	return func(e *Engine) { e.checkTol = tol }
}
