// SPDX-License-Identifier: MIT

// Package lorentz - general Lorentz transformations.
//
// Purpose:
//   - Transform is a 4×4 real matrix acting on column four-vectors.
//   - Boost and Rotation wrap a Transform; composing either with anything
//     else yields a plain Transform, never a hidden subtype.
//
// Complexity:
//   - Mul: O(64) flops; Inverse: LU through gonum, O(n³) with n = 4.

package lorentz

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Transform is a real 4×4 matrix M acting as v' = M·v.
// The zero value is the zero matrix; use Identity for the unit transform.
type Transform struct {
	m [4][4]float64
}

// Identity returns the unit transform.
func Identity() Transform {
	var t Transform
	for i := 0; i < 4; i++ {
		t.m[i][i] = 1
	}
	return t
}

// NewTransform wraps a raw matrix. No Lorentz condition is enforced; use
// IsLorentz, AsBoost or AsRotation to check one.
func NewTransform(m [4][4]float64) Transform {
	return Transform{m: m}
}

// Matrix returns a copy of the raw matrix.
func (t Transform) Matrix() [4][4]float64 {
	return t.m
}

// At returns element (i, j). Outside [0,3]² it returns M[0][0] and ErrOutOfRange.
func (t Transform) At(i, j int) (float64, error) {
	if i < 0 || i > 3 || j < 0 || j > 3 {
		return t.m[0][0], errors.Wrapf(ErrOutOfRange, "Transform.At(%d,%d)", i, j)
	}
	return t.m[i][j], nil
}

// Mul returns the composition t·o: o is applied first, then t.
func (t Transform) Mul(o Transform) Transform {
	var r Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += t.m[i][k] * o.m[k][j]
			}
			r.m[i][j] = s
		}
	}
	return r
}

// Transpose returns Mᵀ.
func (t Transform) Transpose() Transform {
	var r Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.m[i][j] = t.m[j][i]
		}
	}
	return r
}

// Inverse returns M⁻¹.
//
// Stage 1: copy into a gonum Dense.
// Stage 2: invert through LU; a singular or ill-conditioned matrix is
// reported as ErrSingular.
// Stage 3: copy back into a value Transform.
func (t Transform) Inverse() (Transform, error) {
	a := mat.NewDense(4, 4, t.flat())
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return Identity(), errors.Wrapf(ErrSingular, "Transform.Inverse: %v", err)
	}
	var r Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.m[i][j] = inv.At(i, j)
		}
	}
	return r, nil
}

// flat returns the matrix in row-major order.
func (t Transform) flat() []float64 {
	out := make([]float64, 0, 16)
	for i := 0; i < 4; i++ {
		out = append(out, t.m[i][:]...)
	}
	return out
}

// Apply returns M·v.
func (t Transform) Apply(v FourVector) FourVector {
	var r FourVector
	for i := 0; i < 4; i++ {
		r[i] = t.m[i][0]*v[0] + t.m[i][1]*v[1] + t.m[i][2]*v[2] + t.m[i][3]*v[3]
	}
	return r
}

// ApplyComplex returns M·v for a complex four-vector.
func (t Transform) ApplyComplex(v FourVectorComplex) FourVectorComplex {
	var r FourVectorComplex
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			r[i] += complex(t.m[i][k], 0) * v[k]
		}
	}
	return r
}

// IsLorentz reports whether MᵀGM = G within tol, G = diag(1,−1,−1,−1).
func (t Transform) IsLorentz(tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += t.m[k][i] * metric[k] * t.m[k][j]
			}
			want := 0.0
			if i == j {
				want = metric[i]
			}
			if math.Abs(s-want) > tol {
				return false
			}
		}
	}
	return true
}

// Equal reports element-wise agreement within tol (absolute or relative).
func (t Transform) Equal(o Transform, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !scalar.EqualWithinAbsOrRel(t.m[i][j], o.m[i][j], tol, tol) {
				return false
			}
		}
	}
	return true
}

// String renders the matrix row by row.
func (t Transform) String() string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&b, "[%g %g %g %g]", t.m[i][0], t.m[i][1], t.m[i][2], t.m[i][3])
		if i < 3 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
