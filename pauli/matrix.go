// SPDX-License-Identifier: MIT

package pauli

import (
	"fmt"
	"math/cmplx"

	"github.com/cockroachdb/errors"
)

// Matrix is a 2×2 complex matrix in row-major order.
type Matrix [2][2]complex128

var sigma = [3]Matrix{
	{{0, 1}, {1, 0}},
	{{0, -1i}, {1i, 0}},
	{{1, 0}, {0, -1}},
}

// Identity returns the 2×2 unit matrix.
func Identity() Matrix {
	return Matrix{{1, 0}, {0, 1}}
}

// Sigma returns the Pauli matrix σⁱ for i ∈ {1, 2, 3}. Any other index yields
// the identity and ErrOutOfRange.
func Sigma(i int) (Matrix, error) {
	if i < 1 || i > 3 {
		return Identity(), errors.Wrapf(ErrOutOfRange, "Sigma(%d)", i)
	}
	return sigma[i-1], nil
}

// SigmaDot returns n·σ for a real three-component vector n.
func SigmaDot(n [3]float64) Matrix {
	return Matrix{
		{complex(n[2], 0), complex(n[0], -n[1])},
		{complex(n[0], n[1]), complex(-n[2], 0)},
	}
}

// At returns element (i, j), or element (0, 0) and ErrOutOfRange.
func (m Matrix) At(i, j int) (complex128, error) {
	if i < 0 || i > 1 || j < 0 || j > 1 {
		return m[0][0], errors.Wrapf(ErrOutOfRange, "Matrix.At(%d,%d)", i, j)
	}
	return m[i][j], nil
}

// Add returns m + o.
func (m Matrix) Add(o Matrix) Matrix {
	return Matrix{
		{m[0][0] + o[0][0], m[0][1] + o[0][1]},
		{m[1][0] + o[1][0], m[1][1] + o[1][1]},
	}
}

// Sub returns m − o.
func (m Matrix) Sub(o Matrix) Matrix {
	return m.Add(o.Scale(-1))
}

// Mul returns the matrix product m·o.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		{m[0][0]*o[0][0] + m[0][1]*o[1][0], m[0][0]*o[0][1] + m[0][1]*o[1][1]},
		{m[1][0]*o[0][0] + m[1][1]*o[1][0], m[1][0]*o[0][1] + m[1][1]*o[1][1]},
	}
}

// Scale returns f·m.
func (m Matrix) Scale(f complex128) Matrix {
	return Matrix{{f * m[0][0], f * m[0][1]}, {f * m[1][0], f * m[1][1]}}
}

// Dagger returns the conjugate transpose.
func (m Matrix) Dagger() Matrix {
	return Matrix{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix {
	return Matrix{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// Trace returns m₀₀ + m₁₁.
func (m Matrix) Trace() complex128 {
	return m[0][0] + m[1][1]
}

// Det returns the determinant.
func (m Matrix) Det() complex128 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Apply returns m·s.
func (m Matrix) Apply(s Spinor) Spinor {
	return Spinor{m[0][0]*s[0] + m[0][1]*s[1], m[1][0]*s[0] + m[1][1]*s[1]}
}

// Equal reports element-wise agreement within the absolute tolerance tol.
func (m Matrix) Equal(o Matrix, tol float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// IsHermitian reports whether m = m† within tol.
func (m Matrix) IsHermitian(tol float64) bool {
	return m.Equal(m.Dagger(), tol)
}

// String implements fmt.Stringer.
func (m Matrix) String() string {
	return fmt.Sprintf("[%v %v; %v %v]", m[0][0], m[0][1], m[1][0], m[1][1])
}
