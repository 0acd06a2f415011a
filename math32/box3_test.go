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

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec3(1, 2, 3))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B3(1, 2, 3, 1, 2, 3), b)

	b.SetFromPoints([]Vector3{{0, 0, 0}, {2, -1, 4}, {1, 3, 1}})
	assert.Equal(t, B3(0, -1, 0, 2, 3, 4), b)
	assert.Equal(t, Vec3(1, 1, 2), b.Center())
	assert.Equal(t, Vec3(2, 4, 4), b.Size())

	var c Box3
	c.SetFromCenterAndSize(Vec3(1, 1, 2), Vec3(2, 4, 4))
	assert.Equal(t, b, c)
	c.Set(Vec3(0, 0, 0), Vec3(1, 1, 1))
	assert.Equal(t, B3(0, 0, 0, 1, 1, 1), c)

	assert.True(t, b.ContainsPoint(Vec3(1, 0, 1)))
	assert.False(t, b.ContainsPoint(Vec3(1, 0, 5)))
	assert.True(t, b.ContainsBox(c))
	assert.False(t, c.ContainsBox(b))
	assert.True(t, b.IntersectsBox(B3(1, 1, 1, 9, 9, 9)))
	assert.False(t, b.IntersectsBox(B3(3, 0, 0, 4, 1, 1)))

	assert.Equal(t, Vec3(2, 0, 4), b.ClampPoint(Vec3(5, 0, 9)))
	assert.Equal(t, float32(5), b.DistanceToPoint(Vec3(5, 0, 8)))
	assert.Equal(t, float32(0), b.DistanceToPoint(Vec3(1, 1, 1)))

	assert.Equal(t, B3(1, 1, 1, 2, 3, 4), b.Intersect(B3(1, 1, 1, 9, 9, 9)))
	assert.Equal(t, B3(0, -1, 0, 9, 9, 9), b.Union(B3(1, 1, 1, 9, 9, 9)))
	assert.Equal(t, B3(1, 0, 1, 3, 4, 5), b.Translate(Vec3(1, 1, 1)))

	c.ExpandByScalar(1)
	assert.Equal(t, B3(-1, -1, -1, 2, 2, 2), c)
	c.ExpandByVector(Vec3(1, 0, 0))
	assert.Equal(t, B3(-2, -1, -1, 3, 2, 2), c)
	c.ExpandByBox(B3(0, 0, 0, 0, 0, 7))
	assert.Equal(t, B3(-2, -1, -1, 3, 2, 7), c)

	corners := b.Corners()
	var cb Box3
	cb.SetFromPoints(corners[:])
	assert.Equal(t, b, cb)
}

func TestBox3Transform(t *testing.T) {
	b := B3(0, 0, 0, 1, 2, 3)

	// the transformed box spans the transformed corners
	for _, m := range []Matrix4{
		Matrix4Translation(1, 2, 3),
		Matrix4RotationZ(Pi / 2).Mul(Matrix4Translation(5, 0, 0)),
		trsMatrix(),
	} {
		want := B3Empty()
		for _, c := range b.Corners() {
			want.ExpandByPoint(c.TransformCoordinate(m))
		}
		got := b.MulMatrix4(m)
		tolAssertEqualVector3(t, 1e-5, want.Min, got.Min)
		tolAssertEqualVector3(t, 1e-5, want.Max, got.Max)
	}

	// projective matrices go through the perspective divide
	sh := Matrix4Shadow(Vec4(0, 10, 0, 1), NewPlane(Vector3Y, 0))
	want := B3Empty()
	for _, c := range b.Corners() {
		want.ExpandByPoint(c.TransformCoordinate(sh))
	}
	assert.Equal(t, want, b.TransformCoordinate(sh))
	tolassert.EqualTol(t, 0, want.Max.Y, 1e-5)

	got := b.MulQuat(QuatRotationAxis(Vector3Z, Pi/2))
	tolAssertEqualVector3(t, 1e-5, Vec3(-2, 0, 0), got.Min)
	tolAssertEqualVector3(t, 1e-5, Vec3(0, 1, 3), got.Max)

	proj, err := PerspectiveFovLH(Pi/2, 1, 1, 100)
	assert.NoError(t, err)
	ndc := B3(-1, -1, 1, 1, 1, 100).MVProjToNDC(proj)
	tolAssertEqualVector3(t, 1e-5, Vec3(-1, -1, 0), ndc.Min)
	tolAssertEqualVector3(t, 1e-5, Vec3(1, 1, 1), ndc.Max)
}

func TestBox3IntersectsPlane(t *testing.T) {
	b := B3(0, 0, 0, 1, 1, 1)
	assert.Equal(t, Intersecting, b.IntersectsPlane(NewPlane(Vector3Y, -0.5)))
	assert.Equal(t, Front, b.IntersectsPlane(NewPlane(Vector3Y, 1)))
	assert.Equal(t, Back, b.IntersectsPlane(NewPlane(Vector3Y, -2)))
	// touching counts as intersecting
	assert.Equal(t, Intersecting, b.IntersectsPlane(NewPlane(Vector3Y, -1)))
}

func TestTriangle(t *testing.T) {
	tr := NewTriangle(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0))
	assert.Equal(t, Vec3(0, 0, 1), tr.Normal())
	assert.Equal(t, NewPlane(Vec3(0, 0, 1), 0), tr.Plane())
	assert.Equal(t, float32(0.5), tr.Area())
	tolAssertEqualVector3(t, standardTol, Vec3(1.0/3, 1.0/3, 0), tr.Midpoint())

	w, ok := tr.Barycentric(Vec3(0.25, 0.25, 0))
	assert.True(t, ok)
	assert.Equal(t, Vec3(0.5, 0.25, 0.25), w)
	assert.True(t, tr.ContainsPoint(Vec3(0.25, 0.25, 0)))
	assert.True(t, tr.ContainsPoint(Vec3(0.5, 0, 0)))
	assert.False(t, tr.ContainsPoint(Vec3(1, 1, 0)))

	// every vertex lies on the triangle's plane
	tr = NewTriangle(Vec3(1, 2, 3), Vec3(-2, 0, 1), Vec3(4, -1, 0))
	p := tr.Plane()
	for _, v := range []Vector3{tr.A, tr.B, tr.C} {
		tolassert.EqualTol(t, 0, p.DotCoordinate(v), 1e-5)
	}
	tolAssertEqualVector3(t, standardTol, tr.Normal(), p.Normal)

	// collinear points have no normal and contain nothing
	line := NewTriangle(Vec3(0, 0, 0), Vec3(1, 1, 1), Vec3(2, 2, 2))
	assert.True(t, line.IsDegenerate())
	assert.Equal(t, Vector3{}, line.Normal())
	_, ok = line.Barycentric(Vec3(1, 1, 1))
	assert.False(t, ok)
	assert.False(t, line.ContainsPoint(Vec3(1, 1, 1)))
}

func TestTriangleIntersectRay(t *testing.T) {
	tr := NewTriangle(Vec3(0, 0, 5), Vec3(2, 0, 5), Vec3(0, 2, 5))
	tests := []struct {
		origin, dir Vector3
		dist        float32
		ok          bool
	}{
		{Vec3(0.5, 0.5, 0), Vec3(0, 0, 1), 5, true},
		{Vec3(0.5, 0.5, 0), Vec3(0, 0, 2), 2.5, true},
		{Vec3(0.5, 0.5, 10), Vec3(0, 0, -1), 5, true},
		{Vec3(1.5, 1.5, 0), Vec3(0, 0, 1), 0, false},
		{Vec3(0.5, 0.5, 0), Vec3(0, 0, -1), 0, false},
		{Vec3(0.5, 0.5, 0), Vec3(1, 0, 0), 0, false},
	}
	for i, test := range tests {
		d, ok := tr.IntersectRay(test.origin, test.dir)
		assert.Equal(t, test.ok, ok, i)
		tolassert.EqualTol(t, test.dist, d, 1e-5)
	}
	_, ok := NewTriangle(Vec3(0, 0, 5), Vec3(1, 0, 5), Vec3(2, 0, 5)).IntersectRay(Vector3{}, Vec3(0, 0, 1))
	assert.False(t, ok)

	moved := tr.TransformCoordinate(Matrix4Translation(0, 0, 5))
	assert.Equal(t, Vec3(2, 0, 10), moved.B)
	d, ok := moved.IntersectRay(Vec3(0.5, 0.5, 0), Vec3(0, 0, 1))
	assert.True(t, ok)
	tolassert.EqualTol(t, 10, d, 1e-5)
}

func TestBox3Faces(t *testing.T) {
	b := B3(-1, -2, -3, 1, 2, 3)
	var area float32
	for _, f := range b.Faces() {
		assert.False(t, f.IsDegenerate())
		tolassert.EqualTol(t, 1, f.Normal().Length(), 1e-6)
		area += f.Area()
	}
	tolassert.EqualTol(t, 2*(2*4+2*6+4*6), area, 1e-4)

	hits := 0
	for _, f := range b.Faces() {
		if _, ok := f.IntersectRay(Vec3(0.5, 0.5, -10), Vec3(0, 0, 1)); ok {
			hits++
		}
	}
	assert.Equal(t, 2, hits)
}

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	b.SetFromPoints([]Vector2{{1, 2}, {-1, 5}, {0, 0}})
	assert.Equal(t, B2(-1, 0, 1, 5), b)
	assert.Equal(t, Vec2(0, 2.5), b.Center())
	assert.Equal(t, Vec2(2, 5), b.Size())
	assert.True(t, b.ContainsPoint(Vec2(0, 1)))
	assert.False(t, b.ContainsPoint(Vec2(2, 1)))
	assert.True(t, b.ContainsBox(B2(0, 0, 1, 1)))
	assert.True(t, b.IntersectsBox(B2(0, 4, 9, 9)))
	assert.False(t, b.IntersectsBox(B2(2, 0, 3, 1)))
	assert.Equal(t, B2(0, 4, 1, 5), b.Intersect(B2(0, 4, 9, 9)))
	assert.Equal(t, B2(-1, 0, 9, 9), b.Union(B2(0, 4, 9, 9)))
	assert.Equal(t, B2(-1, 0, 1, 5), B2(1, 5, -1, 0).Canon())

	b.ExpandByBox(B2(3, 3, 4, 4))
	assert.Equal(t, B2(-1, 0, 4, 5), b)

	assert.Equal(t, image.Rect(0, -1, 3, 3), B2(0.5, -0.5, 2.1, 3).ToRect())
	assert.Equal(t, B2(1, 2, 3, 4), B2FromRect(image.Rect(1, 2, 3, 4)))
	fr := B2(1, 2, 3.5, 4).ToFixed()
	assert.Equal(t, fixed.R(1, 2, 3, 4).Min, fr.Min)
	assert.Equal(t, fixed.Int26_6(3*64+32), fr.Max.X)
	assert.Equal(t, B2(1, 2, 3.5, 4), B2FromFixed(fr))

	rb := B2(0, 0, 1, 2).MulMatrix4(Matrix4RotationZ(Pi / 2))
	tolAssertEqualVector2(t, 1e-6, Vec2(-2, 0), rb.Min)
	tolAssertEqualVector2(t, 1e-6, Vec2(0, 1), rb.Max)
}

func TestBox3Project(t *testing.T) {
	vp := Viewport{X: 10, Y: 20, Width: 200, Height: 100, MaxZ: 1}
	assert.Equal(t, B2(10, 20, 210, 120), vp.Box2())

	view := LookAtLH(Vec3(0, 0, -10), Vector3{}, Vector3Y)
	proj, err := PerspectiveFovLH(Pi/2, 2, 1, 100)
	assert.NoError(t, err)
	wvp := view.Mul(proj)

	rect, minZ, maxZ, ok := B3(-1, -1, -1, 1, 1, 1).Project(vp, wvp)
	assert.True(t, ok)
	assert.True(t, vp.Box2().ContainsBox(rect))
	tolAssertEqualVector2(t, 1e-3, vp.Box2().Center(), rect.Center())
	assert.Less(t, minZ, maxZ)
	assert.True(t, minZ > 0 && maxZ < 1)

	// a box straddling the camera cannot be projected
	_, _, _, ok = B3(-1, -1, -20, 1, 1, 1).Project(vp, wvp)
	assert.False(t, ok)
}
