// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"cogentcore.org/dxmath/base/tolassert"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func tolAssertEqualVector2(t *testing.T, tol float32, vt, va Vector2) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	a, b := Vec2(1, 2), Vec2(4, -6)
	assert.Equal(t, Vec2(5, -4), a.Add(b))
	assert.Equal(t, Vec2(-3, 8), a.Sub(b))
	assert.Equal(t, Vec2(4, -12), a.Mul(b))
	assert.Equal(t, Vec2(0.25, -2.0/6), a.Div(b))
	assert.Equal(t, Vec2(0.5, 1), a.DivScalar(2))
	assert.Equal(t, Vec2(-1, -2), a.Negate())
	assert.Equal(t, Vec2(1, -6), a.Min(b))
	assert.Equal(t, Vec2(4, 2), a.Max(b))
	assert.Equal(t, Vec2(1, 0), Vec2(-3, 0).Clamp(Vec2(1, -1), Vec2(2, 1)))
	assert.Equal(t, float32(-8), a.Dot(b))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, float32(25), Vec2(3, 4).LengthSquared())
	assert.Equal(t, float32(10), a.Distance(Vec2(7, 10)))
	assert.Equal(t, float32(100), a.DistanceSquared(Vec2(7, 10)))

	tolAssertEqualVector2(t, standardTol, Vec2(0.6, 0.8), Vec2(3, 4).Normal())
	assert.Equal(t, Vector2{}, Vector2{}.Normal())

	v = a
	v.SetAdd(b)
	assert.Equal(t, a.Add(b), v)
	v.SetSub(b)
	assert.Equal(t, a, v)
	v.SetMulScalar(3)
	assert.Equal(t, a.MulScalar(3), v)
	v.SetNormal()
	assert.Equal(t, a.MulScalar(3).Normal(), v)
	v = a
	v.SetMin(b)
	assert.Equal(t, a.Min(b), v)
	v.SetMax(a)
	assert.Equal(t, a, v)

	s := make([]float32, 3)
	a.ToSlice(s, 1)
	assert.Equal(t, []float32{0, 1, 2}, s)
	v = Vector2{}
	v.FromSlice(s, 1)
	assert.Equal(t, a, v)

	assert.Equal(t, "(1, 2)", a.String())
}

func TestVector2Transform(t *testing.T) {
	tr := Matrix4Translation(10, 20, 30)
	assert.Equal(t, Vec4(11, 22, 30, 1), Vec2(1, 2).Transform(tr))
	assert.Equal(t, Vec2(11, 22), Vec2(1, 2).TransformCoordinate(tr))
	assert.Equal(t, Vec2(1, 2), Vec2(1, 2).TransformNormal(tr))

	// row vectors: +X rotates toward +Y about Z
	tolAssertEqualVector2(t, standardTol, Vec2(0, 1), Vec2(1, 0).TransformNormal(Matrix4RotationZ(Pi/2)))

	m := Identity4()
	m.M44 = 2
	assert.Equal(t, Vec2(0.5, 1), Vec2(1, 2).TransformCoordinate(m))
}

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{1, 2, 3}, Vec3(1, 2, 3))
	assert.Equal(t, Vector3{4, 4, 4}, Vector3Scalar(4))
	assert.True(t, Vector3{}.IsNil())

	a, b := Vec3(1, 2, 3), Vec3(4, 5, 6)
	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(2, 3, 4), a.AddScalar(1))
	assert.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, Vec3(0, 1, 2), a.SubScalar(1))
	assert.Equal(t, Vec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, Vec3(4, 2.5, 2), b.Div(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(2, 2.5, 3), b.DivScalar(2))
	assert.Equal(t, Vec3(1, 2, 3), Vec3(-1, 2, -3).Abs())
	assert.Equal(t, Vec3(1, 2, 0), a.Min(Vec3(4, 5, 0)))
	assert.Equal(t, Vec3(4, 5, 3), a.Max(Vec3(4, 5, 0)))
	assert.Equal(t, Vec3(1, 2, 2), a.Clamp(Vec3(1, 1, 1), Vec3(2, 2, 2)))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3(-3, 6, -3), a.Cross(b))
	assert.Equal(t, Vec3(0, 0, 1), Vector3X.Cross(Vector3Y))
	assert.Equal(t, float32(5), Vec3(3, 0, 4).Length())
	assert.Equal(t, float32(25), Vec3(3, 0, 4).LengthSquared())
	assert.Equal(t, float32(5), Vec3(1, 1, 1).Distance(Vec3(1, 4, 5)))
	assert.Equal(t, float32(25), Vec3(1, 1, 1).DistanceSquared(Vec3(1, 4, 5)))

	tolAssertEqualVector3(t, standardTol, Vec3(0.6, 0, 0.8), Vec3(3, 0, 4).Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())

	assert.Equal(t, Vec3(1, 1, 0), Vec3(1, -1, 0).Reflect(Vector3Y))

	v := a
	v.SetAdd(b)
	assert.Equal(t, a.Add(b), v)
	v.SetSub(b)
	assert.Equal(t, a, v)
	v.SetAddScalar(2)
	assert.Equal(t, a.AddScalar(2), v)
	v.SetSubScalar(2)
	assert.Equal(t, a, v)
	v.SetMulScalar(2)
	assert.Equal(t, a.MulScalar(2), v)
	v.SetMin(b)
	assert.Equal(t, a.MulScalar(2).Min(b), v)
	v.SetMax(Vector3Scalar(5))
	assert.Equal(t, Vec3(5, 5, 6), v)
	v.Set(0, 3, 4)
	v.SetNormal()
	tolAssertEqualVector3(t, standardTol, Vec3(0, 0.6, 0.8), v)

	s := make([]float32, 4)
	a.ToSlice(s, 1)
	assert.Equal(t, []float32{0, 1, 2, 3}, s)
	v = Vector3{}
	v.FromSlice(s, 1)
	assert.Equal(t, a, v)

	assert.True(t, a.IsEqual(Vec3(1, 2, 3)))
	assert.False(t, a.IsEqual(b))
	assert.Equal(t, "(1, 2, 3)", a.String())
}

func TestVector3Interpolation(t *testing.T) {
	a, b := Vec3(0, 0, 0), Vec3(10, 20, 30)
	assert.Equal(t, Vec3(5, 10, 15), a.Lerp(b, 0.5))
	assert.Equal(t, Vec3(5, 10, 15), a.SmoothStep(b, 0.5))
	assert.Equal(t, b, a.SmoothStep(b, 2))
	assert.Equal(t, a, a.SmoothStep(b, -1))

	assert.Equal(t, Vec3(0.25, 0.5, 0), a.Barycentric(Vec3(1, 0, 0), Vec3(0, 1, 0), 0.25, 0.5))

	p1, p2, p3, p4 := Vec3(-1, 0, 2), Vec3(0, 1, 0), Vec3(3, 1, -2), Vec3(4, 0, 0)
	assert.Equal(t, p2, p1.CatmullRom(p2, p3, p4, 0))
	assert.Equal(t, p3, p1.CatmullRom(p2, p3, p4, 1))

	t1, t2 := Vec3(1, 1, 0), Vec3(0, -1, 2)
	assert.Equal(t, p1, p1.Hermite(t1, p2, t2, 0))
	assert.Equal(t, p2, p1.Hermite(t1, p2, t2, 1))

	assert.Equal(t, float32(2.5), Lerp(0, 10, 0.25))
	assert.Equal(t, float32(10), SmoothStep(0, 10, 3))
	assert.Equal(t, float32(1), Clamp[float32](3, 0, 1))
	tolassert.EqualTol(t, Pi, DegToRad(180), standardTol)
	tolassert.EqualTol(t, 90, RadToDeg(Pi/2), 1e-5)
}

func TestVector3Transform(t *testing.T) {
	tr := Matrix4Translation(10, 20, 30)
	assert.Equal(t, Vec4(11, 22, 33, 1), Vec3(1, 2, 3).Transform(tr))
	assert.Equal(t, Vec3(11, 22, 33), Vec3(1, 2, 3).TransformCoordinate(tr))
	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).TransformNormal(tr))

	m := Identity4()
	m.M44 = 2
	assert.Equal(t, Vec3(0.5, 1, 1.5), Vec3(1, 2, 3).TransformCoordinate(m))

	// a point followed through A then B equals the point through A·B
	a := Matrix4RotationY(0.7).Mul(Matrix4Translation(1, -2, 3))
	b := Matrix4Scaling(2, 1, 0.5).Mul(Matrix4RotationX(-1.1))
	p := Vec3(0.5, 4, -2)
	tolAssertEqualVector3(t, 1e-5, p.TransformCoordinate(a).TransformCoordinate(b), p.TransformCoordinate(a.Mul(b)))

	q := QuatRotationAxis(Vec3(1, 1, 0), 0.9)
	tolAssertEqualVector3(t, 1e-5, p.TransformNormal(Matrix4RotationQuat(q)), p.MulQuat(q))
}

func TestVector3Project(t *testing.T) {
	vp := Viewport{Width: 640, Height: 480, MaxZ: 1}
	view := LookAtLH(Vec3(0, 0, -5), Vector3{}, Vector3Y)
	proj, err := PerspectiveFovLH(Pi/3, 640.0/480, 1, 100)
	assert.NoError(t, err)
	wvp := view.Mul(proj)

	c := Vector3{}.Project(vp, wvp)
	tolassert.EqualTol(t, 320, c.X, 1e-3)
	tolassert.EqualTol(t, 240, c.Y, 1e-3)
	assert.True(t, c.Z > 0 && c.Z < 1)

	// +Y in the world is up on screen, which is -Y in viewport space
	up := Vec3(0, 1, 0).Project(vp, wvp)
	assert.Less(t, up.Y, c.Y)

	for _, p := range []Vector3{{}, Vec3(1, 2, 3), Vec3(-2, 0.5, 10)} {
		s := p.Project(vp, wvp)
		back, err := s.Unproject(vp, wvp)
		assert.NoError(t, err)
		tolAssertEqualVector3(t, 1e-3, p, back)
	}

	_, err = c.Unproject(vp, Matrix4{})
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestVector4(t *testing.T) {
	assert.Equal(t, Vector4{1, 2, 3, 4}, Vec4(1, 2, 3, 4))
	assert.Equal(t, Vector4{2, 2, 2, 2}, Vector4Scalar(2))
	assert.Equal(t, Vec4(1, 2, 3, 1), Vector4FromVector3(Vec3(1, 2, 3), 1))
	assert.Equal(t, Vec3(1, 2, 3), Vec4(1, 2, 3, 4).Vector3())
	assert.Equal(t, Vec3(0.5, 1, 1.5), Vec4(1, 2, 3, 2).PerspDiv())

	a, b := Vec4(1, 2, 3, 4), Vec4(2, 2, 2, 2)
	assert.Equal(t, Vec4(3, 4, 5, 6), a.Add(b))
	assert.Equal(t, Vec4(-1, 0, 1, 2), a.Sub(b))
	assert.Equal(t, Vec4(2, 4, 6, 8), a.Mul(b))
	assert.Equal(t, Vec4(0.5, 1, 1.5, 2), a.Div(b))
	assert.Equal(t, Vec4(0.5, 1, 1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vec4(1, 2, 2, 2), a.Min(b))
	assert.Equal(t, Vec4(2, 2, 3, 4), a.Max(b))
	assert.Equal(t, Vec4(2, 2, 3, 3), a.Clamp(b, Vector4Scalar(3)))
	assert.Equal(t, Vec4(-1, -2, -3, -4), a.Negate())
	assert.Equal(t, float32(20), a.Dot(b))
	assert.Equal(t, float32(4), b.Length())
	assert.Equal(t, float32(16), b.LengthSquared())
	assert.Equal(t, float32(4), Vec4(1, 1, 1, 1).Distance(Vec4(3, 3, 3, 3)))
	assert.Equal(t, float32(16), Vec4(1, 1, 1, 1).DistanceSquared(Vec4(3, 3, 3, 3)))
	assert.Equal(t, Vector4Scalar(0.5), b.Normal())
	assert.Equal(t, Vector4{}, Vector4{}.Normal())

	v := a
	v.SetAdd(b)
	assert.Equal(t, a.Add(b), v)
	v.SetSub(b)
	assert.Equal(t, a, v)
	v.SetMulScalar(2)
	assert.Equal(t, a.MulScalar(2), v)
	v.SetNormal()
	assert.Equal(t, a.MulScalar(2).Normal(), v)
	v.Set(4, 3, 2, 1)
	assert.Equal(t, Vec4(4, 3, 2, 1), v)
	v.SetMin(b)
	assert.Equal(t, Vec4(2, 2, 2, 1), v)
	v.SetMax(a)
	assert.Equal(t, Vec4(2, 2, 3, 4), v)
	v.SetScalar(7)
	assert.Equal(t, Vector4Scalar(7), v)

	assert.Equal(t, Vec4(1.5, 2, 2.5, 3), a.Lerp(b, 0.5))
	assert.Equal(t, b, a.SmoothStep(b, 1))
	assert.Equal(t, a, a.Barycentric(b, b, 0, 0))
	assert.Equal(t, b, a.CatmullRom(b, b, a, 0))
	assert.Equal(t, b, a.Hermite(a, b, a, 1))

	// a 4-vector with w = 1 transforms like the point
	m := Matrix4RotationZ(0.3).Mul(Matrix4Translation(1, 2, 3))
	assert.Equal(t, Vec3(1, 2, 3).Transform(m), Vec4(1, 2, 3, 1).Transform(m))

	s := make([]float32, 4)
	a.ToSlice(s, 0)
	assert.Equal(t, []float32{1, 2, 3, 4}, s)
	v = Vector4{}
	v.FromSlice(s, 0)
	assert.Equal(t, a, v)
	assert.Equal(t, "(1, 2, 3, 4)", a.String())
}
