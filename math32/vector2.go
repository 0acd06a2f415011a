// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{X: scalar, Y: scalar}
}

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector2) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector2) SetAdd(other Vector2) {
	*v = v.Add(other)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector2) SetSub(other Vector2) {
	*v = v.Sub(other)
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector2) SetMulScalar(s float32) {
	*v = v.MulScalar(s)
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v.X / other.X, v.Y / other.Y}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// Division by zero follows IEEE rules.
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vector2{v.X / s, v.Y / s}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Min returns min of this vector components vs. other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector2) SetMin(other Vector2) {
	*v = v.Min(other)
}

// Max returns max of this vector components vs. other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector2) SetMax(other Vector2) {
	*v = v.Max(other)
}

// Clamp returns this vector with each component clamped between
// the corresponding components of min and max.
func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vector2{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y)}
}

// IsEqual returns if this vector is exactly equal to other.
func (v Vector2) IsEqual(other Vector2) bool {
	return v.X == other.X && v.Y == other.Y
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between this vector and other.
func (v Vector2) Distance(other Vector2) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between this vector and other.
func (v Vector2) DistanceSquared(other Vector2) float32 {
	return v.Sub(other).LengthSquared()
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector is returned unchanged.
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MulScalar(1 / l)
}

// SetNormal normalizes this vector so its length will be 1.
func (v *Vector2) SetNormal() {
	*v = v.Normal()
}

// Interpolation:

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector2) Lerp(other Vector2, alpha float32) Vector2 {
	return Vector2{Lerp(v.X, other.X, alpha), Lerp(v.Y, other.Y, alpha)}
}

// SmoothStep returns the cubic interpolation between v and other.
func (v Vector2) SmoothStep(other Vector2, amount float32) Vector2 {
	return Vector2{SmoothStep(v.X, other.X, amount), SmoothStep(v.Y, other.Y, amount)}
}

// Barycentric returns the point at barycentric coordinates (f, g)
// of the triangle v, v2, v3: v + f*(v2-v) + g*(v3-v).
func (v Vector2) Barycentric(v2, v3 Vector2, f, g float32) Vector2 {
	return v.Add(v2.Sub(v).MulScalar(f)).Add(v3.Sub(v).MulScalar(g))
}

// CatmullRom returns the Catmull-Rom interpolation between v2 and v3,
// using v and v4 as the outer control points.
func (v Vector2) CatmullRom(v2, v3, v4 Vector2, amount float32) Vector2 {
	return Vector2{catmullRom(v.X, v2.X, v3.X, v4.X, amount),
		catmullRom(v.Y, v2.Y, v3.Y, v4.Y, amount)}
}

// Hermite returns the Hermite spline interpolation from v with
// tangent t1 to v2 with tangent t2.
func (v Vector2) Hermite(t1, v2, t2 Vector2, amount float32) Vector2 {
	h1, h2, h3, h4 := hermite(amount)
	return v.MulScalar(h1).Add(v2.MulScalar(h2)).Add(t1.MulScalar(h3)).Add(t2.MulScalar(h4))
}

// Matrix operations:

// Transform returns this vector, taken as a point (z = 0, w = 1),
// multiplied by the given matrix.
func (v Vector2) Transform(m Matrix4) Vector4 {
	return Vector4{
		v.X*m.M11 + v.Y*m.M21 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + m.M42,
		v.X*m.M13 + v.Y*m.M23 + m.M43,
		v.X*m.M14 + v.Y*m.M24 + m.M44,
	}
}

// TransformCoordinate returns this point transformed by m, projected
// back to w = 1.
func (v Vector2) TransformCoordinate(m Matrix4) Vector2 {
	r := v.Transform(m)
	return Vector2{r.X / r.W, r.Y / r.W}
}

// TransformNormal returns this direction transformed by m, ignoring
// the translation.
func (v Vector2) TransformNormal(m Matrix4) Vector2 {
	return Vector2{
		v.X*m.M11 + v.Y*m.M21,
		v.X*m.M12 + v.Y*m.M22,
	}
}

func catmullRom(p1, p2, p3, p4, amount float32) float32 {
	sq := amount * amount
	cube := amount * sq
	return 0.5 * ((2 * p2) + (-p1+p3)*amount +
		(2*p1-5*p2+4*p3-p4)*sq +
		(-p1+3*p2-3*p3+p4)*cube)
}
