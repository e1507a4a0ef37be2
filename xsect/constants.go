// SPDX-License-Identifier: MIT

package xsect

import (
	"math"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultAlpha is the fine-structure constant (CODATA 2018).
	DefaultAlpha = 7.2973525693e-3

	// DefaultHbarcSqr is (ħc)² in μb·GeV².
	DefaultHbarcSqr = 389.3793721
)

// Constants are the physical inputs of every cross section.
type Constants struct {
	Alpha    float64 `json:"alpha" yaml:"alpha"`
	HbarcSqr float64 `json:"hbarc_sqr" yaml:"hbarc_sqr"`
}

// DefaultConstants returns {DefaultAlpha, DefaultHbarcSqr}.
func DefaultConstants() Constants {
	return Constants{Alpha: DefaultAlpha, HbarcSqr: DefaultHbarcSqr}
}

// Validate rejects non-positive, NaN or infinite values.
func (c Constants) Validate() error {
	if !(c.Alpha > 0) || math.IsInf(c.Alpha, 0) {
		return errors.Wrapf(ErrBadConstants, "alpha = %g", c.Alpha)
	}
	if !(c.HbarcSqr > 0) || math.IsInf(c.HbarcSqr, 0) {
		return errors.Wrapf(ErrBadConstants, "hbarc² = %g", c.HbarcSqr)
	}
	return nil
}
