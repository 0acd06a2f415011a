// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/dxmath/base/tolassert"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func tolAssertEqualQuat(t *testing.T, tol float32, qt, qa Quat) {
	t.Helper()
	tolassert.EqualTol(t, qt.X, qa.X, tol)
	tolassert.EqualTol(t, qt.Y, qa.Y, tol)
	tolassert.EqualTol(t, qt.Z, qa.Z, tol)
	tolassert.EqualTol(t, qt.W, qa.W, tol)
}

// tolAssertSameRotation asserts qt and qa are equal up to sign,
// as both represent the same rotation.
func tolAssertSameRotation(t *testing.T, tol float32, qt, qa Quat) {
	t.Helper()
	if qt.Dot(qa) < 0 {
		qa = qa.Negate()
	}
	tolAssertEqualQuat(t, tol, qt, qa)
}

func fromMglQuat(q mgl32.Quat) Quat {
	return Quat{q.V[0], q.V[1], q.V[2], q.W}
}

func mglQuatRotate(axis Vector3, angle float32) mgl32.Quat {
	n := axis.Normal()
	return mgl32.QuatRotate(angle, mgl32.Vec3{n.X, n.Y, n.Z})
}

var (
	quatA = QuatRotationAxis(Vec3(1, 2, 3), 0.8)
	quatB = QuatRotationAxis(Vec3(-2, 0.5, 1), 1.9)
	quatC = QuatRotationAxis(Vec3(0, 1, -1), -0.6)
)

func TestQuatBasics(t *testing.T) {
	id := QuatIdentity()
	assert.True(t, id.IsIdentity())
	assert.False(t, quatA.IsIdentity())
	assert.True(t, Quat{}.IsNil())
	assert.Equal(t, Quat{1, 2, 3, 4}, NewQuat(1, 2, 3, 4))

	q := NewQuat(1, 2, 3, 4)
	assert.Equal(t, Quat{2, 4, 6, 8}, q.Add(q))
	assert.Equal(t, Quat{}, q.Sub(q))
	assert.Equal(t, Quat{0.5, 1, 1.5, 2}, q.MulScalar(0.5))
	assert.Equal(t, Quat{1, 1, 1, 1}, q.Div(q))
	assert.Equal(t, Quat{-1, -2, -3, -4}, q.Negate())
	assert.Equal(t, Quat{-1, -2, -3, 4}, q.Conjugate())
	assert.Equal(t, float32(30), q.LengthSquared())
	assert.Equal(t, float32(30), q.Dot(q))
	tolassert.EqualTol(t, 1, quatA.Length(), standardTol)

	assert.True(t, q.IsEqual(q))
	assert.False(t, q.IsEqual(q.Conjugate()))

	a := make([]float32, 5)
	q.ToSlice(a, 1)
	assert.Equal(t, []float32{0, 1, 2, 3, 4}, a)
	var r Quat
	r.FromSlice(a, 1)
	assert.Equal(t, q, r)
}

func TestQuatNormal(t *testing.T) {
	q := NewQuat(0, 0, 3, 4)
	tolAssertEqualQuat(t, standardTol, Quat{0, 0, 0.6, 0.8}, q.Normal())
	q.SetNormal()
	tolassert.EqualTol(t, 1, q.Length(), standardTol)

	assert.Equal(t, Quat{}, Quat{}.Normal())
}

func TestQuatInverse(t *testing.T) {
	tolAssertEqualQuat(t, standardTol, QuatIdentity(), quatA.Mul(quatA.Inverse()))
	tolAssertEqualQuat(t, standardTol, QuatIdentity(), quatA.Inverse().Mul(quatA))
	tolAssertEqualQuat(t, standardTol, quatA.Conjugate(), quatA.Inverse())

	// non-unit: conjugate over squared length
	q := NewQuat(0, 0, 0, 2)
	assert.Equal(t, Quat{0, 0, 0, 0.5}, q.Inverse())
	q = NewQuat(1, 2, 3, 4)
	assert.Equal(t, q.Conjugate().MulScalar(1.0/30), q.Inverse())

	assert.Equal(t, Quat{}, Quat{}.Inverse())
}

func TestQuatRotationAxis(t *testing.T) {
	q := QuatRotationAxis(Vec3(0, 0, 1), Pi/2)
	tolAssertEqualVector3(t, standardTol, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(q))

	// axis is normalized when needed
	tolAssertEqualQuat(t, standardTol, q, QuatRotationAxis(Vec3(0, 0, 7), Pi/2))

	for _, axis := range []Vector3{Vec3(1, 2, 3), Vec3(-1, 0, 0.5)} {
		tolAssertEqualQuat(t, standardTol, fromMglQuat(mglQuatRotate(axis, 1.1)), QuatRotationAxis(axis, 1.1))
	}

	tolassert.EqualTol(t, 0.8, quatA.Angle(), 1e-5)
	tolAssertEqualVector3(t, 1e-5, Vec3(1, 2, 3).Normal(), quatA.Axis())
	assert.Equal(t, float32(0), QuatIdentity().Angle())
	assert.Equal(t, Vector3X, QuatIdentity().Axis())
}

func TestQuatMul(t *testing.T) {
	// a.Mul(b) is a then b, matching matrix composition
	for _, pair := range [][2]Quat{{quatA, quatB}, {quatB, quatC}, {quatC, quatA}} {
		a, b := pair[0], pair[1]
		tolAssertEqualMatrix(t, 1e-5, Matrix4RotationQuat(a).Mul(Matrix4RotationQuat(b)), Matrix4RotationQuat(a.Mul(b)))

		v := Vec3(0.3, -2, 5)
		tolAssertEqualVector3(t, 1e-5, v.MulQuat(a).MulQuat(b), v.MulQuat(a.Mul(b)))
	}

	// mgl32 uses the Hamilton product with the opposite operand order
	ma := mglQuatRotate(Vec3(1, 2, 3), 0.8)
	mb := mglQuatRotate(Vec3(-2, 0.5, 1), 1.9)
	tolAssertEqualQuat(t, 1e-5, fromMglQuat(mb.Mul(ma)), quatA.Mul(quatB))

	assert.Equal(t, quatA, quatA.Mul(QuatIdentity()))
	assert.Equal(t, quatA, QuatIdentity().Mul(quatA))

	q := quatA
	q.SetMul(quatB)
	assert.Equal(t, quatA.Mul(quatB), q)
}

func TestQuatMatrix(t *testing.T) {
	for _, q := range []Quat{quatA, quatB, quatC} {
		mq := mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
		tolAssertEqualMatrix(t, 1e-5, fromMgl(mq.Mat4()), Matrix4RotationQuat(q))

		v := Vec3(1, -4, 2)
		tolAssertEqualVector3(t, 1e-5, v.TransformCoordinate(Matrix4RotationQuat(q)), v.MulQuat(q))
	}

	// each branch of the extraction
	for _, q := range []Quat{
		quatA, quatB, quatC,
		QuatRotationAxis(Vec3(1, 0, 0), Pi),
		QuatRotationAxis(Vec3(0, 1, 0), Pi),
		QuatRotationAxis(Vec3(0, 0, 1), Pi),
		QuatRotationAxis(Vec3(1, 0.1, 0.2), 3),
		QuatRotationAxis(Vec3(0.1, 1, 0.2), 3),
		QuatRotationAxis(Vec3(0.1, 0.2, 1), 3),
	} {
		tolAssertSameRotation(t, 1e-5, q, QuatRotationMatrix(Matrix4RotationQuat(q)))
	}
}

func TestQuatYawPitchRoll(t *testing.T) {
	assert.True(t, QuatRotationYawPitchRoll(0, 0, 0).IsIdentity())

	yaw, pitch, roll := float32(0.5), float32(-0.4), float32(1.2)
	want := QuatRotationAxis(Vec3(0, 0, 1), roll).
		Mul(QuatRotationAxis(Vec3(1, 0, 0), pitch)).
		Mul(QuatRotationAxis(Vec3(0, 1, 0), yaw))
	tolAssertEqualQuat(t, 1e-6, want, QuatRotationYawPitchRoll(yaw, pitch, roll))

	tolAssertEqualQuat(t, standardTol, QuatRotationAxis(Vec3(0, 1, 0), yaw), QuatRotationYawPitchRoll(yaw, 0, 0))
	tolAssertEqualQuat(t, standardTol, QuatRotationAxis(Vec3(1, 0, 0), pitch), QuatRotationYawPitchRoll(0, pitch, 0))
	tolAssertEqualQuat(t, standardTol, QuatRotationAxis(Vec3(0, 0, 1), roll), QuatRotationYawPitchRoll(0, 0, roll))
}

func TestQuatSlerp(t *testing.T) {
	id := QuatIdentity()
	z90 := QuatRotationAxis(Vec3(0, 0, 1), Pi/2)
	z45 := QuatRotationAxis(Vec3(0, 0, 1), Pi/4)

	tolAssertEqualQuat(t, standardTol, id, id.Slerp(z90, 0))
	tolAssertEqualQuat(t, standardTol, z90, id.Slerp(z90, 1))
	tolAssertEqualQuat(t, standardTol, z45, id.Slerp(z90, 0.5))

	// takes the short arc to the negated target
	tolAssertEqualQuat(t, standardTol, z45, id.Slerp(z90.Negate(), 0.5))

	// nearly equal inputs fall back to linear weights without NaN
	tiny := QuatRotationAxis(Vec3(0, 0, 1), 1e-4)
	r := id.Slerp(tiny, 0.5)
	assert.False(t, IsNaN(r.W))
	tolAssertEqualQuat(t, standardTol, QuatRotationAxis(Vec3(0, 0, 1), 5e-5), r)
	tolAssertEqualQuat(t, standardTol, id, id.Slerp(id, 0.3))

	q := id
	q.SetSlerp(z90, 0.5)
	assert.Equal(t, id.Slerp(z90, 0.5), q)
}

func TestQuatLerp(t *testing.T) {
	id := QuatIdentity()
	z90 := QuatRotationAxis(Vec3(0, 0, 1), Pi/2)
	z45 := QuatRotationAxis(Vec3(0, 0, 1), Pi/4)

	tolAssertEqualQuat(t, standardTol, z45, id.Lerp(z90, 0.5))
	tolAssertEqualQuat(t, standardTol, z45, id.Lerp(z90.Negate(), 0.5))
	tolassert.EqualTol(t, 1, quatA.Lerp(quatB, 0.3).Length(), standardTol)
}

func TestQuatExpLn(t *testing.T) {
	for _, q := range []Quat{quatA, quatB, quatC} {
		ln := q.Ln()
		assert.Equal(t, float32(0), ln.W)
		tolAssertEqualQuat(t, 1e-5, q, ln.Exp())
	}
	assert.Equal(t, Quat{}, QuatIdentity().Ln())
	assert.Equal(t, QuatIdentity(), Quat{}.Exp())

	// Ln of a rotation is half the angle along the axis
	ln := QuatRotationAxis(Vec3(0, 1, 0), 1).Ln()
	tolAssertEqualQuat(t, 1e-6, Quat{0, 0.5, 0, 0}, ln)
}

func TestQuatBarycentricSquad(t *testing.T) {
	assert.Equal(t, quatA, quatA.Barycentric(quatB, quatC, 0, 0))
	tolAssertSameRotation(t, 1e-5, quatB, quatA.Barycentric(quatB, quatC, 1, 0))
	tolAssertSameRotation(t, 1e-5, quatC, quatA.Barycentric(quatB, quatC, 0, 1))
	tolassert.EqualTol(t, 1, quatA.Barycentric(quatB, quatC, 0.3, 0.3).Length(), 1e-5)

	tolAssertSameRotation(t, 1e-5, quatA, quatA.Squad(quatB, quatC, quatB, 0))
	tolAssertSameRotation(t, 1e-5, quatB, quatA.Squad(quatC, quatC, quatB, 1))
	tolassert.EqualTol(t, 1, quatA.Squad(quatB, quatC, quatA, 0.4).Length(), 1e-5)
}

func TestQuatText(t *testing.T) {
	b, err := quatA.MarshalText()
	assert.NoError(t, err)
	var q Quat
	assert.NoError(t, q.UnmarshalText(b))
	assert.Equal(t, quatA, q)

	assert.NoError(t, q.UnmarshalText([]byte("(0, 0, 0, 1)")))
	assert.True(t, q.IsIdentity())
	assert.ErrorIs(t, q.UnmarshalText([]byte("1 2 3")), ErrParse)
}
