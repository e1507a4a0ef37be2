// SPDX-License-Identifier: MIT

// Package dirac - 4×4 complex matrix algebra.
//
// Complexity: Mul is O(64) complex multiply-adds; everything else is O(16).

package dirac

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/pauli"
)

// Matrix is a 4×4 complex matrix in row-major order.
type Matrix [4][4]complex128

// Identity returns the 4×4 unit matrix.
func Identity() Matrix {
	var m Matrix
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// blocks assembles [[a, b], [c, d]] from 2×2 blocks.
func blocks(a, b, c, d pauli.Matrix) Matrix {
	var m Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] = a[i][j]
			m[i][j+2] = b[i][j]
			m[i+2][j] = c[i][j]
			m[i+2][j+2] = d[i][j]
		}
	}
	return m
}

// At returns element (i, j), or element (0, 0) and ErrOutOfRange.
func (m Matrix) At(i, j int) (complex128, error) {
	if i < 0 || i > 3 || j < 0 || j > 3 {
		return m[0][0], errors.Wrapf(ErrOutOfRange, "Matrix.At(%d,%d)", i, j)
	}
	return m[i][j], nil
}

// Add returns m + o.
func (m Matrix) Add(o Matrix) Matrix {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] += o[i][j]
		}
	}
	return m
}

// Sub returns m − o.
func (m Matrix) Sub(o Matrix) Matrix {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

// Mul returns the matrix product m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			a := m[i][k]
			for j := 0; j < 4; j++ {
				r[i][j] += a * o[k][j]
			}
		}
	}
	return r
}

// Scale returns f·m.
func (m Matrix) Scale(f complex128) Matrix {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] *= f
		}
	}
	return m
}

// ScaleReal returns f·m for a real factor.
func (m Matrix) ScaleReal(f float64) Matrix {
	return m.Scale(complex(f, 0))
}

// Div returns m/d. A zero d is not trapped: the entries become Inf or NaN.
func (m Matrix) Div(d float64) Matrix {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = complex(real(m[i][j])/d, imag(m[i][j])/d)
		}
	}
	return m
}

// AddScalar returns m + x·I.
func (m Matrix) AddScalar(x float64) Matrix {
	for i := 0; i < 4; i++ {
		m[i][i] += complex(x, 0)
	}
	return m
}

// Dagger returns the conjugate transpose m†.
func (m Matrix) Dagger() Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = cmplx.Conj(m[j][i])
		}
	}
	return r
}

// Bar returns the Dirac adjoint γ⁰m†γ⁰.
func (m Matrix) Bar() Matrix {
	r := m.Dagger()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if (i < 2) != (j < 2) {
				r[i][j] = -r[i][j]
			}
		}
	}
	return r
}

// Trace returns the sum of the diagonal.
func (m Matrix) Trace() complex128 {
	return m[0][0] + m[1][1] + m[2][2] + m[3][3]
}

// Apply returns m·s.
func (m Matrix) Apply(s Spinor) Spinor {
	var r Spinor
	for i := 0; i < 4; i++ {
		r[i] = m[i][0]*s[0] + m[i][1]*s[1] + m[i][2]*s[2] + m[i][3]*s[3]
	}
	return r
}

// Anticommutator returns {a, b} = ab + ba.
func Anticommutator(a, b Matrix) Matrix {
	return a.Mul(b).Add(b.Mul(a))
}

// Equal reports element-wise agreement within the absolute tolerance tol.
func (m Matrix) Equal(o Matrix, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if cmplx.Abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// String renders the matrix row by row.
func (m Matrix) String() string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&b, "%v", m[i])
		if i < 3 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
