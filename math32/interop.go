// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// F32 returns this matrix as an [f32.Mat4], in the same row-major order.
func (m Matrix4) F32() f32.Mat4 {
	return f32.Mat4(m.array())
}

// Matrix4FromF32 returns the matrix with the row-major values of a.
func Matrix4FromF32(a f32.Mat4) Matrix4 {
	return matrix4FromArray(a)
}

// F32 returns this vector as an [f32.Vec2].
func (v Vector2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Vector2FromF32 returns a new [Vector2] from an [f32.Vec2].
func Vector2FromF32(a f32.Vec2) Vector2 {
	return Vector2{a[0], a[1]}
}

// F32 returns this vector as an [f32.Vec3].
func (v Vector3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// Vector3FromF32 returns a new [Vector3] from an [f32.Vec3].
func Vector3FromF32(a f32.Vec3) Vector3 {
	return Vector3{a[0], a[1], a[2]}
}

// F32 returns this vector as an [f32.Vec4].
func (v Vector4) F32() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// Vector4FromF32 returns a new [Vector4] from an [f32.Vec4].
func Vector4FromF32(a f32.Vec4) Vector4 {
	return Vector4{a[0], a[1], a[2], a[3]}
}

// ToFixed converts a float32 value to a fixed.Int26_6
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// FromFixed converts a fixed.Int26_6 to a float32
func FromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// Vector2FromFixed returns a new [Vector2] from the given fixed.Point26_6.
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vector2{FromFixed(pt.X), FromFixed(pt.Y)}
}

// ToFixed returns this vector as a fixed.Point26_6.
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(v.X), Y: ToFixed(v.Y)}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

// ToPoint returns this vector as an [image.Point], truncating
// toward zero.
func (v Vector2) ToPoint() image.Point {
	return image.Point{int(v.X), int(v.Y)}
}

// ToPointRound returns this vector as an [image.Point], rounding
// to the nearest integer.
func (v Vector2) ToPointRound() image.Point {
	return image.Point{int(Round(v.X)), int(Round(v.Y))}
}
