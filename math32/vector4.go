// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar(scalar float32) Vector4 {
	return Vector4{X: scalar, Y: scalar, Z: scalar, W: scalar}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector4) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
	v.W = scalar
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Vector3 returns the X, Y, Z components as a [Vector3].
func (v Vector4) Vector3() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
	v.W = array[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector4) SetAdd(other Vector4) {
	*v = v.Add(other)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector4) SetSub(other Vector4) {
	*v = v.Sub(other)
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector4) SetMulScalar(s float32) {
	*v = v.MulScalar(s)
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// Division by zero follows IEEE rules.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Min returns min of this vector components vs. other vector.
func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z), Min(v.W, other.W)}
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector4) SetMin(other Vector4) {
	*v = v.Min(other)
}

// Max returns max of this vector components vs. other vector.
func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z), Max(v.W, other.W)}
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector4) SetMax(other Vector4) {
	*v = v.Max(other)
}

// Clamp returns this vector with each component clamped between
// the corresponding components of min and max.
// Assumes min < max; if this assumption isn't true, it will not operate correctly.
func (v Vector4) Clamp(min, max Vector4) Vector4 {
	return Vector4{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y),
		Clamp(v.Z, min.Z, max.Z), Clamp(v.W, min.W, max.W)}
}

// Negate returns the vector with each component negated.
func (v Vector4) Negate() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

// IsEqual returns if this vector is exactly equal to other.
func (v Vector4) IsEqual(other Vector4) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Length returns the length (magnitude) of this vector.
func (v Vector4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector4) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Distance returns the distance between this vector and other.
func (v Vector4) Distance(other Vector4) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between this vector and other.
func (v Vector4) DistanceSquared(other Vector4) float32 {
	return v.Sub(other).LengthSquared()
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector is returned unchanged.
func (v Vector4) Normal() Vector4 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MulScalar(1 / l)
}

// SetNormal normalizes this vector so its length will be 1.
func (v *Vector4) SetNormal() {
	*v = v.Normal()
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector4) Lerp(other Vector4, alpha float32) Vector4 {
	return Vector4{Lerp(v.X, other.X, alpha), Lerp(v.Y, other.Y, alpha),
		Lerp(v.Z, other.Z, alpha), Lerp(v.W, other.W, alpha)}
}

// SmoothStep returns the cubic interpolation between v and other.
func (v Vector4) SmoothStep(other Vector4, amount float32) Vector4 {
	return Vector4{SmoothStep(v.X, other.X, amount), SmoothStep(v.Y, other.Y, amount),
		SmoothStep(v.Z, other.Z, amount), SmoothStep(v.W, other.W, amount)}
}

// Barycentric returns the point at barycentric coordinates (f, g)
// of the triangle v, v2, v3.
func (v Vector4) Barycentric(v2, v3 Vector4, f, g float32) Vector4 {
	return v.Add(v2.Sub(v).MulScalar(f)).Add(v3.Sub(v).MulScalar(g))
}

// CatmullRom returns the Catmull-Rom interpolation between v2 and v3,
// using v and v4 as the outer control points.
func (v Vector4) CatmullRom(v2, v3, v4 Vector4, amount float32) Vector4 {
	return Vector4{catmullRom(v.X, v2.X, v3.X, v4.X, amount),
		catmullRom(v.Y, v2.Y, v3.Y, v4.Y, amount),
		catmullRom(v.Z, v2.Z, v3.Z, v4.Z, amount),
		catmullRom(v.W, v2.W, v3.W, v4.W, amount)}
}

// Hermite returns the Hermite spline interpolation from v with
// tangent t1 to v2 with tangent t2.
func (v Vector4) Hermite(t1, v2, t2 Vector4, amount float32) Vector4 {
	h1, h2, h3, h4 := hermite(amount)
	return v.MulScalar(h1).Add(v2.MulScalar(h2)).Add(t1.MulScalar(h3)).Add(t2.MulScalar(h4))
}

// Matrix operations:

// Transform returns this row vector multiplied by the given matrix (v × m).
func (v Vector4) Transform(m Matrix4) Vector4 {
	return Vector4{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// PerspDiv returns the 3-vector of normalized display coordinates (NDC) from given 4-vector
// By dividing by the 4th W component
func (v Vector4) PerspDiv() Vector3 {
	return Vec3(v.X/v.W, v.Y/v.W, v.Z/v.W)
}
