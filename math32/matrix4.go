// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"strconv"
	"strings"
)

// decomposeEpsilon is the tolerance used by [Matrix4.Decompose]
// for zero scale and for non-orthogonal basis rows.
const decomposeEpsilon = 1e-4

// Matrix4 is a 4x4 matrix of float32 values stored in row-major order:
// M<row><column>. Points are row vectors transformed as p × M, so the
// translation is held in M41, M42 and M43. Its memory layout is exactly
// 16 packed float32 values, row 1 first.
type Matrix4 struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{M11: 1, M22: 1, M33: 1, M44: 1}
}

// array returns the 16 components in row-major order.
func (m Matrix4) array() [16]float32 {
	return [16]float32{
		m.M11, m.M12, m.M13, m.M14,
		m.M21, m.M22, m.M23, m.M24,
		m.M31, m.M32, m.M33, m.M34,
		m.M41, m.M42, m.M43, m.M44,
	}
}

// matrix4FromArray returns the matrix with the given row-major components.
func matrix4FromArray(a [16]float32) Matrix4 {
	return Matrix4{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Identity4()
}

// IsIdentity returns whether this matrix is exactly the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}

// IsEqual returns whether this matrix is exactly equal to other,
// component by component with no tolerance.
func (m Matrix4) IsEqual(other Matrix4) bool {
	return m == other
}

// FromSlice sets this matrix from the 16 row-major values of array,
// starting at offset.
func (m *Matrix4) FromSlice(array []float32, offset int) {
	var a [16]float32
	copy(a[:], array[offset:offset+16])
	*m = matrix4FromArray(a)
}

// ToSlice copies this matrix's 16 row-major values to array,
// starting at offset.
func (m Matrix4) ToSlice(array []float32, offset int) {
	a := m.array()
	copy(array[offset:offset+16], a[:])
}

// Row returns row i (0 to 3) of this matrix.
func (m Matrix4) Row(i int) Vector4 {
	switch i {
	case 0:
		return Vector4{m.M11, m.M12, m.M13, m.M14}
	case 1:
		return Vector4{m.M21, m.M22, m.M23, m.M24}
	case 2:
		return Vector4{m.M31, m.M32, m.M33, m.M34}
	case 3:
		return Vector4{m.M41, m.M42, m.M43, m.M44}
	}
	panic("math32: Matrix4 row index out of range: " + strconv.Itoa(i))
}

// SetRow sets row i (0 to 3) of this matrix.
func (m *Matrix4) SetRow(i int, v Vector4) {
	switch i {
	case 0:
		m.M11, m.M12, m.M13, m.M14 = v.X, v.Y, v.Z, v.W
	case 1:
		m.M21, m.M22, m.M23, m.M24 = v.X, v.Y, v.Z, v.W
	case 2:
		m.M31, m.M32, m.M33, m.M34 = v.X, v.Y, v.Z, v.W
	case 3:
		m.M41, m.M42, m.M43, m.M44 = v.X, v.Y, v.Z, v.W
	default:
		panic("math32: Matrix4 row index out of range: " + strconv.Itoa(i))
	}
}

// Column returns column j (0 to 3) of this matrix.
func (m Matrix4) Column(j int) Vector4 {
	return m.Transpose().Row(j)
}

// Elem returns the element at the given row and column (both 0 to 3).
func (m Matrix4) Elem(row, col int) float32 {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		panic("math32: Matrix4 element index out of range")
	}
	return m.array()[row*4+col]
}

// Translation returns the translation held in the fourth row.
func (m Matrix4) Translation() Vector3 {
	return Vector3{m.M41, m.M42, m.M43}
}

// Element-wise arithmetic:

// Add returns the element-wise sum of m and other.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	a, b := m.array(), other.array()
	for i := range a {
		a[i] += b[i]
	}
	return matrix4FromArray(a)
}

// Sub returns the element-wise difference of m and other.
func (m Matrix4) Sub(other Matrix4) Matrix4 {
	a, b := m.array(), other.array()
	for i := range a {
		a[i] -= b[i]
	}
	return matrix4FromArray(a)
}

// Negate returns m with every element negated.
func (m Matrix4) Negate() Matrix4 {
	a := m.array()
	for i := range a {
		a[i] = -a[i]
	}
	return matrix4FromArray(a)
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	a := m.array()
	for i := range a {
		a[i] *= s
	}
	return matrix4FromArray(a)
}

// DivScalar returns m with every element multiplied by 1/s.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	return m.MulScalar(1 / s)
}

// Div returns the element-wise quotient of m and other.
func (m Matrix4) Div(other Matrix4) Matrix4 {
	a, b := m.array(), other.array()
	for i := range a {
		a[i] /= b[i]
	}
	return matrix4FromArray(a)
}

// Lerp returns the element-wise linear interpolation from m to other.
func (m Matrix4) Lerp(other Matrix4, amount float32) Matrix4 {
	a, b := m.array(), other.array()
	for i := range a {
		a[i] = Lerp(a[i], b[i], amount)
	}
	return matrix4FromArray(a)
}

// Composition:

// Mul returns the matrix product m × other: the transform m followed
// by the transform other. It is not commutative.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	return Matrix4{
		M11: m.M11*other.M11 + m.M12*other.M21 + m.M13*other.M31 + m.M14*other.M41,
		M12: m.M11*other.M12 + m.M12*other.M22 + m.M13*other.M32 + m.M14*other.M42,
		M13: m.M11*other.M13 + m.M12*other.M23 + m.M13*other.M33 + m.M14*other.M43,
		M14: m.M11*other.M14 + m.M12*other.M24 + m.M13*other.M34 + m.M14*other.M44,

		M21: m.M21*other.M11 + m.M22*other.M21 + m.M23*other.M31 + m.M24*other.M41,
		M22: m.M21*other.M12 + m.M22*other.M22 + m.M23*other.M32 + m.M24*other.M42,
		M23: m.M21*other.M13 + m.M22*other.M23 + m.M23*other.M33 + m.M24*other.M43,
		M24: m.M21*other.M14 + m.M22*other.M24 + m.M23*other.M34 + m.M24*other.M44,

		M31: m.M31*other.M11 + m.M32*other.M21 + m.M33*other.M31 + m.M34*other.M41,
		M32: m.M31*other.M12 + m.M32*other.M22 + m.M33*other.M32 + m.M34*other.M42,
		M33: m.M31*other.M13 + m.M32*other.M23 + m.M33*other.M33 + m.M34*other.M43,
		M34: m.M31*other.M14 + m.M32*other.M24 + m.M33*other.M34 + m.M34*other.M44,

		M41: m.M41*other.M11 + m.M42*other.M21 + m.M43*other.M31 + m.M44*other.M41,
		M42: m.M41*other.M12 + m.M42*other.M22 + m.M43*other.M32 + m.M44*other.M42,
		M43: m.M41*other.M13 + m.M42*other.M23 + m.M43*other.M33 + m.M44*other.M43,
		M44: m.M41*other.M14 + m.M42*other.M24 + m.M43*other.M34 + m.M44*other.M44,
	}
}

// SetMul sets this matrix to m × other.
func (m *Matrix4) SetMul(other Matrix4) {
	*m = m.Mul(other)
}

// SetMulMatrices sets this matrix to a × b.
func (m *Matrix4) SetMulMatrices(a, b Matrix4) {
	*m = a.Mul(b)
}

// Determinant returns the determinant of this matrix, expanded along
// the first row using the 2x2 sub-determinants of rows 3 and 4.
func (m Matrix4) Determinant() float32 {
	t1 := m.M33*m.M44 - m.M34*m.M43
	t2 := m.M32*m.M44 - m.M34*m.M42
	t3 := m.M32*m.M43 - m.M33*m.M42
	t4 := m.M31*m.M44 - m.M34*m.M41
	t5 := m.M31*m.M43 - m.M33*m.M41
	t6 := m.M31*m.M42 - m.M32*m.M41

	return m.M11*(m.M22*t1-m.M23*t2+m.M24*t3) -
		m.M12*(m.M21*t1-m.M23*t4+m.M24*t5) +
		m.M13*(m.M21*t2-m.M22*t4+m.M24*t6) -
		m.M14*(m.M21*t3-m.M22*t5+m.M23*t6)
}

// Inverse returns the inverse of this matrix. If the determinant is
// zero, it returns the identity matrix and [ErrSingularMatrix].
func (m Matrix4) Inverse() (Matrix4, error) {
	b0 := m.M31*m.M42 - m.M32*m.M41
	b1 := m.M31*m.M43 - m.M33*m.M41
	b2 := m.M34*m.M41 - m.M31*m.M44
	b3 := m.M32*m.M43 - m.M33*m.M42
	b4 := m.M34*m.M42 - m.M32*m.M44
	b5 := m.M33*m.M44 - m.M34*m.M43

	d11 := m.M22*b5 + m.M23*b4 + m.M24*b3
	d12 := m.M21*b5 + m.M23*b2 + m.M24*b1
	d13 := -m.M21*b4 + m.M22*b2 + m.M24*b0
	d14 := m.M21*b3 - m.M22*b1 + m.M23*b0

	det := m.M11*d11 - m.M12*d12 + m.M13*d13 - m.M14*d14
	if det == 0 {
		return Identity4(), ErrSingularMatrix
	}
	inv := 1 / det

	a0 := m.M11*m.M22 - m.M12*m.M21
	a1 := m.M11*m.M23 - m.M13*m.M21
	a2 := m.M14*m.M21 - m.M11*m.M24
	a3 := m.M12*m.M23 - m.M13*m.M22
	a4 := m.M14*m.M22 - m.M12*m.M24
	a5 := m.M13*m.M24 - m.M14*m.M23

	d21 := m.M12*b5 + m.M13*b4 + m.M14*b3
	d22 := m.M11*b5 + m.M13*b2 + m.M14*b1
	d23 := -m.M11*b4 + m.M12*b2 + m.M14*b0
	d24 := m.M11*b3 - m.M12*b1 + m.M13*b0

	d31 := m.M42*a5 + m.M43*a4 + m.M44*a3
	d32 := m.M41*a5 + m.M43*a2 + m.M44*a1
	d33 := -m.M41*a4 + m.M42*a2 + m.M44*a0
	d34 := m.M41*a3 - m.M42*a1 + m.M43*a0

	d41 := m.M32*a5 + m.M33*a4 + m.M34*a3
	d42 := m.M31*a5 + m.M33*a2 + m.M34*a1
	d43 := -m.M31*a4 + m.M32*a2 + m.M34*a0
	d44 := m.M31*a3 - m.M32*a1 + m.M33*a0

	return Matrix4{
		M11: d11 * inv, M12: -d21 * inv, M13: d31 * inv, M14: -d41 * inv,
		M21: -d12 * inv, M22: d22 * inv, M23: -d32 * inv, M24: d42 * inv,
		M31: d13 * inv, M32: -d23 * inv, M33: d33 * inv, M34: -d43 * inv,
		M41: -d14 * inv, M42: d24 * inv, M43: -d34 * inv, M44: d44 * inv,
	}, nil
}

// SetInverse sets this matrix to its inverse. On [ErrSingularMatrix]
// the matrix is left unchanged.
func (m *Matrix4) SetInverse() error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	*m = inv
	return nil
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m.M11, m.M21, m.M31, m.M41,
		m.M12, m.M22, m.M32, m.M42,
		m.M13, m.M23, m.M33, m.M43,
		m.M14, m.M24, m.M34, m.M44,
	}
}

// SetTranspose transposes this matrix.
func (m *Matrix4) SetTranspose() {
	*m = m.Transpose()
}

// Decompose factors this matrix into scale, rotation and translation
// such that m = Scaling(scale) × RotationQuat(rot) × Translation(trans).
// It returns ok = false when any axis has zero scale or the basis
// is skewed, in which case rot is the identity.
func (m Matrix4) Decompose() (scale Vector3, rot Quat, trans Vector3, ok bool) {
	trans = Vector3{m.M41, m.M42, m.M43}
	rot = QuatIdentity()

	r1 := Vector3{m.M11, m.M12, m.M13}
	r2 := Vector3{m.M21, m.M22, m.M23}
	r3 := Vector3{m.M31, m.M32, m.M33}
	scale = Vector3{r1.Length(), r2.Length(), r3.Length()}
	if scale.X < decomposeEpsilon || scale.Y < decomposeEpsilon || scale.Z < decomposeEpsilon {
		return scale, rot, trans, false
	}
	r1 = r1.DivScalar(scale.X)
	r2 = r2.DivScalar(scale.Y)
	r3 = r3.DivScalar(scale.Z)
	if Abs(r1.Dot(r2)) > decomposeEpsilon || Abs(r1.Dot(r3)) > decomposeEpsilon || Abs(r2.Dot(r3)) > decomposeEpsilon {
		return scale, rot, trans, false
	}
	if r1.Cross(r2).Dot(r3) < 0 {
		scale.X = -scale.X
		r1 = r1.Negate()
	}
	basis := Matrix4{
		M11: r1.X, M12: r1.Y, M13: r1.Z,
		M21: r2.X, M22: r2.Y, M23: r2.Z,
		M31: r3.X, M32: r3.Y, M33: r3.Z,
		M44: 1,
	}
	rot = QuatRotationMatrix(basis)
	return scale, rot, trans, true
}

// Hash returns the sum of the IEEE 754 bit patterns of the 16 components,
// with both zeros contributing 0. Equal matrices have equal hashes.
func (m Matrix4) Hash() uint32 {
	var h uint32
	for _, v := range m.array() {
		if v == 0 {
			continue
		}
		h += Float32bits(v)
	}
	return h
}

// String returns the matrix as four bracketed rows, each element
// labelled by its position, with locale-independent number formatting:
//
//	[[M11:1 M12:0 M13:0 M14:0] [M21:0 ...] ...]
func (m Matrix4) String() string {
	a := m.array()
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for c := 0; c < 4; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('M')
			sb.WriteByte(byte('1' + r))
			sb.WriteByte(byte('1' + c))
			sb.WriteByte(':')
			sb.WriteString(strconv.FormatFloat(float64(a[r*4+c]), 'g', -1, 32))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
