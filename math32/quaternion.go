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

// slerpLinearThreshold is the |dot| above which [Quat.Slerp]
// falls back to linear weights, since sin(theta) is too close to 0.
const slerpLinearThreshold = 0.999999

// Quat is quaternion with X,Y,Z and W components.
// It represents a rotation only when its length is 1; other values
// are valid intermediate results (for example, before [Quat.Normal]).
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatRotationAxis returns the quaternion rotating by angle (radians)
// about the given axis. The axis is normalized if it is not unit length.
func QuatRotationAxis(axis Vector3, angle float32) Quat {
	if axis.LengthSquared() != 1 {
		axis = axis.Normal()
	}
	s, c := Sincos(angle * 0.5)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuatRotationYawPitchRoll returns the quaternion for the given yaw
// (about Y), pitch (about X) and roll (about Z), in radians.
// Roll is applied first, then pitch, then yaw, so the result equals
//
//	QuatRotationAxis(Z, roll).Mul(QuatRotationAxis(X, pitch)).Mul(QuatRotationAxis(Y, yaw))
func QuatRotationYawPitchRoll(yaw, pitch, roll float32) Quat {
	sr, cr := Sincos(roll * 0.5)
	sp, cp := Sincos(pitch * 0.5)
	sy, cy := Sincos(yaw * 0.5)
	return Quat{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// QuatRotationMatrix returns the quaternion for the rotation held in
// the upper-left 3x3 of m, which must be orthonormal.
// The branch is chosen on the largest of the trace, M11, M22 and M33
// to avoid cancellation.
func QuatRotationMatrix(m Matrix4) Quat {
	var q Quat
	trace := m.M11 + m.M22 + m.M33
	switch {
	case trace > 0:
		s := Sqrt(trace + 1)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m.M23 - m.M32) * s
		q.Y = (m.M31 - m.M13) * s
		q.Z = (m.M12 - m.M21) * s
	case m.M11 >= m.M22 && m.M11 >= m.M33:
		s := Sqrt(1 + m.M11 - m.M22 - m.M33)
		h := 0.5 / s
		q.X = 0.5 * s
		q.Y = (m.M12 + m.M21) * h
		q.Z = (m.M13 + m.M31) * h
		q.W = (m.M23 - m.M32) * h
	case m.M22 > m.M33:
		s := Sqrt(1 + m.M22 - m.M11 - m.M33)
		h := 0.5 / s
		q.X = (m.M21 + m.M12) * h
		q.Y = 0.5 * s
		q.Z = (m.M32 + m.M23) * h
		q.W = (m.M31 - m.M13) * h
	default:
		s := Sqrt(1 + m.M33 - m.M11 - m.M22)
		h := 0.5 / s
		q.X = (m.M31 + m.M13) * h
		q.Y = (m.M32 + m.M23) * h
		q.Z = 0.5 * s
		q.W = (m.M12 - m.M21) * h
	}
	return q
}

// Set sets this quaternion's components.
func (q *Quat) Set(x, y, z, w float32) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

func (q Quat) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
}

// FromSlice sets this quaternion's components from array starting at offset.
func (q *Quat) FromSlice(array []float32, offset int) {
	q.X = array[offset]
	q.Y = array[offset+1]
	q.Z = array[offset+2]
	q.W = array[offset+3]
}

// ToSlice copies this quaternions's components to array starting at offset.
func (q Quat) ToSlice(array []float32, offset int) {
	array[offset] = q.X
	array[offset+1] = q.Y
	array[offset+2] = q.Z
	array[offset+3] = q.W
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// IsEqual returns if this quaternion is exactly equal to other.
func (q Quat) IsEqual(other Quat) bool {
	return (other.X == q.X) && (other.Y == q.Y) && (other.Z == q.Z) && (other.W == q.W)
}

// Component-wise operations:

// Add returns the component-wise sum of q and other.
func (q Quat) Add(other Quat) Quat {
	return Quat{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Sub returns the component-wise difference of q and other.
func (q Quat) Sub(other Quat) Quat {
	return Quat{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// MulScalar returns q with each component multiplied by s.
func (q Quat) MulScalar(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Div returns the component-wise quotient of q and other.
func (q Quat) Div(other Quat) Quat {
	return Quat{q.X / other.X, q.Y / other.Y, q.Z / other.Z, q.W / other.W}
}

// Negate returns q with each component negated. It represents
// the same rotation as q.
func (q Quat) Negate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

// Dot returns the dot products of this quaternion with other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSquared returns this quanternion's length squared
func (q Quat) LengthSquared() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.LengthSquared())
}

// Normal returns this quaternion scaled to unit length.
// The zero quaternion is returned unchanged.
func (q Quat) Normal() Quat {
	l := q.Length()
	if l == 0 {
		return q
	}
	return q.MulScalar(1 / l)
}

// SetNormal normalizes this quaternion.
func (q *Quat) SetNormal() {
	*q = q.Normal()
}

// Conjugate returns the conjugate of this quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the inverse of this quaternion: its conjugate
// divided by its squared length. The zero quaternion is returned unchanged.
func (q Quat) Inverse() Quat {
	lsq := q.LengthSquared()
	if lsq == 0 {
		return q
	}
	inv := 1 / lsq
	return Quat{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

// Composition:

// mulHamilton returns the Hamilton product a*b.
func mulHamilton(a, b Quat) Quat {
	// from http://www.euclideanspace.com/maths/algebra/realNormedAlgebra/quaternions/code/index.htm
	return Quat{
		X: a.X*b.W + a.W*b.X + a.Y*b.Z - a.Z*b.Y,
		Y: a.Y*b.W + a.W*b.Y + a.Z*b.X - a.X*b.Z,
		Z: a.Z*b.W + a.W*b.Z + a.X*b.Y - a.Y*b.X,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Mul returns the rotation q followed by the rotation other.
// This is the Hamilton product other*q, and matches matrix composition:
// Matrix4RotationQuat(q.Mul(other)) equals
// Matrix4RotationQuat(q).Mul(Matrix4RotationQuat(other)).
func (q Quat) Mul(other Quat) Quat {
	return mulHamilton(other, q)
}

// SetMul sets this quaternion to the rotation q followed by other.
func (q *Quat) SetMul(other Quat) {
	*q = q.Mul(other)
}

// Axis / angle:

// Angle returns the rotation angle of this unit quaternion, in radians.
func (q Quat) Angle() float32 {
	if q.X*q.X+q.Y*q.Y+q.Z*q.Z == 0 {
		return 0
	}
	return 2 * Acos(Clamp(q.W, -1, 1))
}

// Axis returns the unit rotation axis of this quaternion.
// The identity rotation has no axis; [Vector3X] is returned for it.
func (q Quat) Axis() Vector3 {
	lsq := q.X*q.X + q.Y*q.Y + q.Z*q.Z
	if lsq == 0 {
		return Vector3X
	}
	return Vector3{q.X, q.Y, q.Z}.MulScalar(1 / Sqrt(lsq))
}

// Exp returns the exponential of the pure quaternion (X, Y, Z, 0).
func (q Quat) Exp() Quat {
	angle := Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	s, c := Sincos(angle)
	r := q
	if Abs(s) >= 1e-6 {
		coeff := s / angle
		r.X *= coeff
		r.Y *= coeff
		r.Z *= coeff
	}
	r.W = c
	return r
}

// Ln returns the natural logarithm of this unit quaternion,
// a pure quaternion with W = 0.
func (q Quat) Ln() Quat {
	r := q
	if Abs(q.W) < 1 {
		angle := Acos(q.W)
		s := Sin(angle)
		if Abs(s) >= 1e-6 {
			coeff := angle / s
			r.X *= coeff
			r.Y *= coeff
			r.Z *= coeff
		}
	}
	r.W = 0
	return r
}

// Interpolation:

// Lerp returns the normalized linear interpolation from q to other,
// taking the short path when the two are more than 90 degrees apart.
func (q Quat) Lerp(other Quat, amount float32) Quat {
	inv := 1 - amount
	if q.Dot(other) < 0 {
		amount = -amount
	}
	return Quat{
		inv*q.X + amount*other.X,
		inv*q.Y + amount*other.Y,
		inv*q.Z + amount*other.Z,
		inv*q.W + amount*other.W,
	}.Normal()
}

// Slerp returns the spherical linear interpolation from q to other
// by amount, along the shortest arc.
func (q Quat) Slerp(other Quat, amount float32) Quat {
	dot := q.Dot(other)
	flip := false
	if dot < 0 {
		flip = true
		dot = -dot
	}
	var inv, opp float32
	if dot > slerpLinearThreshold {
		inv = 1 - amount
		opp = amount
	} else {
		theta := Acos(dot)
		invSin := 1 / Sin(theta)
		inv = Sin((1-amount)*theta) * invSin
		opp = Sin(amount*theta) * invSin
	}
	if flip {
		opp = -opp
	}
	return Quat{
		inv*q.X + opp*other.X,
		inv*q.Y + opp*other.Y,
		inv*q.Z + opp*other.Z,
		inv*q.W + opp*other.W,
	}
}

// SetSlerp sets this quaternion to the spherical interpolation toward other.
func (q *Quat) SetSlerp(other Quat, amount float32) {
	*q = q.Slerp(other, amount)
}

// Barycentric returns the spherical barycentric interpolation at (f, g)
// of the triangle q, q2, q3.
func (q Quat) Barycentric(q2, q3 Quat, f, g float32) Quat {
	fg := f + g
	if fg == 0 {
		return q
	}
	start := q.Slerp(q2, fg)
	end := q.Slerp(q3, fg)
	return start.Slerp(end, g/fg)
}

// Squad returns the spherical quadrangle interpolation between q and c,
// using a and b as the inner control points.
func (q Quat) Squad(a, b, c Quat, amount float32) Quat {
	start := q.Slerp(c, amount)
	end := a.Slerp(b, amount)
	return start.Slerp(end, 2*amount*(1-amount))
}
