// SPDX-License-Identifier: MIT

package lorentz

// Numeric policy (single source of truth).
const (
	// DefaultResolution is the relative tolerance of a four-vector. The
	// absolute resolution of a vector v is DefaultResolution·|v|, with |v|
	// the Euclidean norm of all four components.
	DefaultResolution = 1e-12

	// DefaultTolerance is the absolute tolerance used by the structural
	// checks on transforms (IsLorentz, AsBoost, AsRotation).
	DefaultTolerance = 1e-9
)

// metric is the diagonal of the Minkowski metric, signature (+,−,−,−).
var metric = [4]float64{1, -1, -1, -1}

// Metric returns g^{μμ} for μ in [0,3] and 0 otherwise.
func Metric(mu int) float64 {
	if mu < 0 || mu > 3 {
		return 0
	}
	return metric[mu]
}
