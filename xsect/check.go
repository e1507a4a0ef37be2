// SPDX-License-Identifier: MIT

package xsect

import (
	"math"
	"math/cmplx"

	"go.uber.org/zap"
)

// Log field names of the advisory spin-sum check.
const (
	fieldReaction = "reaction"
	fieldReal     = "real"
	fieldImag     = "imag"
	fieldDiagonal = "diagonal"
	fieldOffDiag  = "off_diagonal"
)

const msgBadSpinSum = "spin sum is not real and non-negative"

// checkSpinSum reports a squared amplitude that should be real and
// non-negative but is not, within the engine tolerance. partial is the sum
// resolved on one leg: its diagonal should be real and non-negative, its
// off-diagonal entries a conjugate pair. It never fails the calculation.
func (e *Engine) checkSpinSum(reaction string, sum complex128, partial [2][2]complex128) bool {
	if !e.check {
		return true
	}
	scale := cmplx.Abs(sum)
	if real(sum) >= -e.checkTol*scale && math.Abs(imag(sum)) <= e.checkTol*scale {
		return true
	}
	e.log.Warn(msgBadSpinSum,
		zap.String(fieldReaction, reaction),
		zap.Float64(fieldReal, real(sum)),
		zap.Float64(fieldImag, imag(sum)),
		zap.Complex128s(fieldDiagonal, []complex128{partial[0][0], partial[1][1]}),
		zap.Complex128s(fieldOffDiag, []complex128{partial[0][1], partial[1][0]}),
	)
	return false
}
