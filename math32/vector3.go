// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

var (
	Vector3X = Vector3{1, 0, 0}
	Vector3Y = Vector3{0, 1, 0}
	Vector3Z = Vector3{0, 0, 1}
)

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{X: scalar, Y: scalar, Z: scalar}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// IsNil returns true if all values are 0 (uninitialized).
func (v Vector3) IsNil() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{v.X + s, v.Y + s, v.Z + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3) SetAdd(other Vector3) {
	*v = v.Add(other)
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector3) SetAddScalar(s float32) {
	*v = v.AddScalar(s)
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{v.X - s, v.Y - s, v.Z - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3) SetSub(other Vector3) {
	*v = v.Sub(other)
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector3) SetSubScalar(s float32) {
	*v = v.SubScalar(s)
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3) SetMulScalar(s float32) {
	*v = v.MulScalar(s)
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// DivScalar divides each component of this vector by the scalar s and returns resulting vector.
// Division by zero follows IEEE rules.
func (v Vector3) DivScalar(s float32) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Abs returns the vector with [Abs] applied to each component.
func (v Vector3) Abs() Vector3 {
	return Vector3{Abs(v.X), Abs(v.Y), Abs(v.Z)}
}

// Min returns min of this vector components vs. other vector.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z)}
}

// SetMin sets this vector components to the minimum values of itself and other vector.
func (v *Vector3) SetMin(other Vector3) {
	*v = v.Min(other)
}

// Max returns max of this vector components vs. other vector.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z)}
}

// SetMax sets this vector components to the maximum value of itself and other vector.
func (v *Vector3) SetMax(other Vector3) {
	*v = v.Max(other)
}

// Clamp returns this vector with each component clamped between
// the corresponding components of min and max.
func (v Vector3) Clamp(min, max Vector3) Vector3 {
	return Vector3{Clamp(v.X, min.X, max.X), Clamp(v.Y, min.Y, max.Y), Clamp(v.Z, min.Z, max.Z)}
}

// IsEqual returns if this vector is exactly equal to other.
func (v Vector3) IsEqual(other Vector3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector with other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the length (magnitude) of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between this vector and other.
func (v Vector3) Distance(other Vector3) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between this vector and other.
func (v Vector3) DistanceSquared(other Vector3) float32 {
	return v.Sub(other).LengthSquared()
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector is returned unchanged.
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.MulScalar(1 / l)
}

// SetNormal normalizes this vector so its length will be 1.
func (v *Vector3) SetNormal() {
	*v = v.Normal()
}

// Reflect returns the reflection of this direction off a surface
// with the given unit normal.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Interpolation:

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector3) Lerp(other Vector3, alpha float32) Vector3 {
	return Vector3{Lerp(v.X, other.X, alpha), Lerp(v.Y, other.Y, alpha), Lerp(v.Z, other.Z, alpha)}
}

// SmoothStep returns the cubic interpolation between v and other.
func (v Vector3) SmoothStep(other Vector3, amount float32) Vector3 {
	return Vector3{SmoothStep(v.X, other.X, amount), SmoothStep(v.Y, other.Y, amount),
		SmoothStep(v.Z, other.Z, amount)}
}

// Barycentric returns the point at barycentric coordinates (f, g)
// of the triangle v, v2, v3: v + f*(v2-v) + g*(v3-v).
func (v Vector3) Barycentric(v2, v3 Vector3, f, g float32) Vector3 {
	return v.Add(v2.Sub(v).MulScalar(f)).Add(v3.Sub(v).MulScalar(g))
}

// CatmullRom returns the Catmull-Rom interpolation between v2 and v3,
// using v and v4 as the outer control points.
func (v Vector3) CatmullRom(v2, v3, v4 Vector3, amount float32) Vector3 {
	return Vector3{catmullRom(v.X, v2.X, v3.X, v4.X, amount),
		catmullRom(v.Y, v2.Y, v3.Y, v4.Y, amount),
		catmullRom(v.Z, v2.Z, v3.Z, v4.Z, amount)}
}

// Hermite returns the Hermite spline interpolation from v with
// tangent t1 to v2 with tangent t2.
func (v Vector3) Hermite(t1, v2, t2 Vector3, amount float32) Vector3 {
	h1, h2, h3, h4 := hermite(amount)
	return v.MulScalar(h1).Add(v2.MulScalar(h2)).Add(t1.MulScalar(h3)).Add(t2.MulScalar(h4))
}

// Matrix operations:

// Transform returns this vector, taken as a point (w = 1),
// multiplied by the given matrix.
func (v Vector3) Transform(m Matrix4) Vector4 {
	return Vector4{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + m.M44,
	}
}

// TransformCoordinate returns this point transformed by m, projected
// back to w = 1 (the perspective divide).
func (v Vector3) TransformCoordinate(m Matrix4) Vector3 {
	return v.Transform(m).PerspDiv()
}

// TransformNormal returns this direction transformed by m, ignoring
// the translation (w = 0).
func (v Vector3) TransformNormal(m Matrix4) Vector3 {
	return Vector3{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// MulQuat returns this vector rotated by the given unit quaternion.
func (v Vector3) MulQuat(q Quat) Vector3 {
	// t = 2 * cross(q.xyz, v); v' = v + w*t + cross(q.xyz, t)
	u := Vector3{q.X, q.Y, q.Z}
	t := u.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q.W)).Add(u.Cross(t))
}

// Viewport is the rectangle of the render target that clip space maps
// onto, with the depth range it maps to.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinZ, MaxZ    float32
}

// Project returns the viewport-space position of this object-space point,
// transformed by the given world-view-projection matrix.
func (v Vector3) Project(vp Viewport, worldViewProj Matrix4) Vector3 {
	c := v.TransformCoordinate(worldViewProj)
	return Vector3{
		vp.X + (1+c.X)*0.5*vp.Width,
		vp.Y + (1-c.Y)*0.5*vp.Height,
		vp.MinZ + c.Z*(vp.MaxZ-vp.MinZ),
	}
}

// Unproject returns the object-space position of this viewport-space point.
// It returns [ErrSingularMatrix] if worldViewProj cannot be inverted.
func (v Vector3) Unproject(vp Viewport, worldViewProj Matrix4) (Vector3, error) {
	inv, err := worldViewProj.Inverse()
	if err != nil {
		return Vector3{}, err
	}
	c := Vector3{
		(v.X-vp.X)/vp.Width*2 - 1,
		-((v.Y-vp.Y)/vp.Height*2 - 1),
		(v.Z - vp.MinZ) / (vp.MaxZ - vp.MinZ),
	}
	return c.TransformCoordinate(inv), nil
}
