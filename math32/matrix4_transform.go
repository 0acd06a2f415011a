// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// billboardEpsilon is the squared distance below which
// [Matrix4Billboard] treats the object and camera as coincident.
const billboardEpsilon = 1e-4

// Matrix4RotationX returns a matrix rotating by angle (radians)
// about the X axis.
func Matrix4RotationX(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		M11: 1,
		M22: c, M23: s,
		M32: -s, M33: c,
		M44: 1,
	}
}

// Matrix4RotationY returns a matrix rotating by angle (radians)
// about the Y axis.
func Matrix4RotationY(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		M11: c, M13: -s,
		M22: 1,
		M31: s, M33: c,
		M44: 1,
	}
}

// Matrix4RotationZ returns a matrix rotating by angle (radians)
// about the Z axis.
func Matrix4RotationZ(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		M11: c, M12: s,
		M21: -s, M22: c,
		M33: 1,
		M44: 1,
	}
}

// Matrix4RotationAxis returns a matrix rotating by angle (radians)
// about the given axis, which is normalized if it is not unit length.
func Matrix4RotationAxis(axis Vector3, angle float32) Matrix4 {
	if axis.LengthSquared() != 1 {
		axis = axis.Normal()
	}
	x, y, z := axis.X, axis.Y, axis.Z
	s, c := Sincos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	return Matrix4{
		M11: xx + c*(1-xx), M12: xy - c*xy + s*z, M13: xz - c*xz - s*y,
		M21: xy - c*xy - s*z, M22: yy + c*(1-yy), M23: yz - c*yz + s*x,
		M31: xz - c*xz + s*y, M32: yz - c*yz - s*x, M33: zz + c*(1-zz),
		M44: 1,
	}
}

// Matrix4RotationQuat returns the rotation matrix of the unit quaternion q.
func Matrix4RotationQuat(q Quat) Matrix4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, zw := q.X*q.Y, q.Z*q.W
	zx, yw := q.Z*q.X, q.Y*q.W
	yz, xw := q.Y*q.Z, q.X*q.W
	return Matrix4{
		M11: 1 - 2*(yy+zz), M12: 2 * (xy + zw), M13: 2 * (zx - yw),
		M21: 2 * (xy - zw), M22: 1 - 2*(zz+xx), M23: 2 * (yz + xw),
		M31: 2 * (zx + yw), M32: 2 * (yz - xw), M33: 1 - 2*(yy+xx),
		M44: 1,
	}
}

// Matrix4RotationYawPitchRoll returns the matrix rotating by roll about Z,
// then pitch about X, then yaw about Y (radians). It is built through
// [QuatRotationYawPitchRoll].
func Matrix4RotationYawPitchRoll(yaw, pitch, roll float32) Matrix4 {
	return Matrix4RotationQuat(QuatRotationYawPitchRoll(yaw, pitch, roll))
}

// Matrix4Translation returns a matrix translating by (x, y, z).
func Matrix4Translation(x, y, z float32) Matrix4 {
	m := Identity4()
	m.M41 = x
	m.M42 = y
	m.M43 = z
	return m
}

// Matrix4TranslationVector returns a matrix translating by v.
func Matrix4TranslationVector(v Vector3) Matrix4 {
	return Matrix4Translation(v.X, v.Y, v.Z)
}

// Matrix4Scaling returns a matrix scaling by (x, y, z).
func Matrix4Scaling(x, y, z float32) Matrix4 {
	return Matrix4{M11: x, M22: y, M33: z, M44: 1}
}

// Matrix4ScalingVector returns a matrix scaling by v.
func Matrix4ScalingVector(v Vector3) Matrix4 {
	return Matrix4Scaling(v.X, v.Y, v.Z)
}

// Matrix4AffineTransformation returns the matrix that scales uniformly,
// rotates about rotationCenter, and then translates.
func Matrix4AffineTransformation(scaling float32, rotationCenter Vector3, rotation Quat, translation Vector3) Matrix4 {
	return Matrix4Scaling(scaling, scaling, scaling).
		Mul(Matrix4TranslationVector(rotationCenter.Negate())).
		Mul(Matrix4RotationQuat(rotation)).
		Mul(Matrix4TranslationVector(rotationCenter)).
		Mul(Matrix4TranslationVector(translation))
}

// Matrix4AffineTransformation2D returns the matrix that scales X and Y
// uniformly, rotates by rotation (radians) in the XY plane about
// rotationCenter, and then translates.
func Matrix4AffineTransformation2D(scaling float32, rotationCenter Vector2, rotation float32, translation Vector2) Matrix4 {
	return Matrix4Scaling(scaling, scaling, 1).
		Mul(Matrix4Translation(-rotationCenter.X, -rotationCenter.Y, 0)).
		Mul(Matrix4RotationZ(rotation)).
		Mul(Matrix4Translation(rotationCenter.X, rotationCenter.Y, 0)).
		Mul(Matrix4Translation(translation.X, translation.Y, 0))
}

// Matrix4Transformation returns the matrix that scales about scalingCenter
// along the axes oriented by scalingRotation, rotates about
// rotationCenter, and then translates.
func Matrix4Transformation(scalingCenter Vector3, scalingRotation Quat, scaling Vector3, rotationCenter Vector3, rotation Quat, translation Vector3) Matrix4 {
	sr := Matrix4RotationQuat(scalingRotation)
	return Matrix4TranslationVector(scalingCenter.Negate()).
		Mul(sr.Transpose()).
		Mul(Matrix4ScalingVector(scaling)).
		Mul(sr).
		Mul(Matrix4TranslationVector(scalingCenter)).
		Mul(Matrix4TranslationVector(rotationCenter.Negate())).
		Mul(Matrix4RotationQuat(rotation)).
		Mul(Matrix4TranslationVector(rotationCenter)).
		Mul(Matrix4TranslationVector(translation))
}

// Matrix4Transformation2D is [Matrix4Transformation] restricted to the
// XY plane, with rotations given as angles in radians.
func Matrix4Transformation2D(scalingCenter Vector2, scalingRotation float32, scaling Vector2, rotationCenter Vector2, rotation float32, translation Vector2) Matrix4 {
	sr := Matrix4RotationZ(scalingRotation)
	return Matrix4Translation(-scalingCenter.X, -scalingCenter.Y, 0).
		Mul(sr.Transpose()).
		Mul(Matrix4Scaling(scaling.X, scaling.Y, 1)).
		Mul(sr).
		Mul(Matrix4Translation(scalingCenter.X, scalingCenter.Y, 0)).
		Mul(Matrix4Translation(-rotationCenter.X, -rotationCenter.Y, 0)).
		Mul(Matrix4RotationZ(rotation)).
		Mul(Matrix4Translation(rotationCenter.X, rotationCenter.Y, 0)).
		Mul(Matrix4Translation(translation.X, translation.Y, 0))
}

// Matrix4Billboard returns the world matrix of an object at objectPos
// whose Z axis points away from the camera at cameraPos.
// When the object and camera are within sqrt(1e-4) of each other,
// -cameraForward is used as the Z axis.
func Matrix4Billboard(objectPos, cameraPos, cameraUp, cameraForward Vector3) Matrix4 {
	diff := objectPos.Sub(cameraPos)
	lsq := diff.LengthSquared()
	if lsq < billboardEpsilon {
		diff = cameraForward.Negate()
	} else {
		diff = diff.MulScalar(1 / Sqrt(lsq))
	}
	crossed := cameraUp.Cross(diff).Normal()
	final := diff.Cross(crossed)
	return Matrix4{
		M11: final.X, M12: final.Y, M13: final.Z,
		M21: crossed.X, M22: crossed.Y, M23: crossed.Z,
		M31: diff.X, M32: diff.Y, M33: diff.Z,
		M41: objectPos.X, M42: objectPos.Y, M43: objectPos.Z, M44: 1,
	}
}

// Matrix4Reflection returns the matrix reflecting points about the
// given plane. The plane is normalized first.
func Matrix4Reflection(plane Plane) Matrix4 {
	plane = plane.Normalized()
	x, y, z := plane.Normal.X, plane.Normal.Y, plane.Normal.Z
	x2, y2, z2 := -2*x, -2*y, -2*z
	return Matrix4{
		M11: x2*x + 1, M12: y2 * x, M13: z2 * x,
		M21: x2 * y, M22: y2*y + 1, M23: z2 * y,
		M31: x2 * z, M32: y2 * z, M33: z2*z + 1,
		M41: x2 * plane.D, M42: y2 * plane.D, M43: z2 * plane.D, M44: 1,
	}
}

// Matrix4Shadow returns the matrix flattening geometry onto plane as lit
// by light. A light with W = 0 is directional (X, Y, Z point toward the
// light); W = 1 is a point light at (X, Y, Z). The plane is normalized first.
func Matrix4Shadow(light Vector4, plane Plane) Matrix4 {
	plane = plane.Normalized()
	dot := plane.Normal.X*light.X + plane.Normal.Y*light.Y + plane.Normal.Z*light.Z + plane.D*light.W
	x, y, z, d := -plane.Normal.X, -plane.Normal.Y, -plane.Normal.Z, -plane.D
	return Matrix4{
		M11: x*light.X + dot, M12: x * light.Y, M13: x * light.Z, M14: x * light.W,
		M21: y * light.X, M22: y*light.Y + dot, M23: y * light.Z, M24: y * light.W,
		M31: z * light.X, M32: z * light.Y, M33: z*light.Z + dot, M34: z * light.W,
		M41: d * light.X, M42: d * light.Y, M43: d * light.Z, M44: d*light.W + dot,
	}
}
