// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Triangle is a triangle with vertices A, B and C. Its front face is
// the one from which A, B, C appear in the winding order used by
// [PlaneFromPoints].
type Triangle struct {
	A, B, C Vector3
}

// NewTriangle returns the triangle with the given vertices.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle, or the zero vector
// if its vertices are collinear.
func (t Triangle) Normal() Vector3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normal()
}

// Area returns the area of the triangle.
func (t Triangle) Area() float32 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() * 0.5
}

// Midpoint returns the centroid of the triangle.
func (t Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).DivScalar(3)
}

// Plane returns the plane through the vertices, with the same normal
// as [Triangle.Normal].
func (t Triangle) Plane() Plane {
	return PlaneFromPoints(t.A, t.B, t.C)
}

// IsDegenerate returns whether the vertices are collinear.
func (t Triangle) IsDegenerate() bool {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).LengthSquared() == 0
}

// Barycentric returns the weights of A, B and C whose weighted sum is the
// projection of point onto the plane of the triangle. It returns false
// for a degenerate triangle.
func (t Triangle) Barycentric(point Vector3) (Vector3, bool) {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := point.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return Vector3{}, false
	}
	inv := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return Vector3{1 - u - v, v, u}, true
}

// ContainsPoint returns whether the projection of point onto the plane
// of the triangle lies inside it or on an edge.
func (t Triangle) ContainsPoint(point Vector3) bool {
	w, ok := t.Barycentric(point)
	return ok && w.X >= 0 && w.Y >= 0 && w.Z >= 0
}

// IntersectRay returns the distance, in units of direction, from the ray
// origin to the point where it hits the triangle, from either side.
// It returns false if the ray misses, runs parallel to the triangle,
// or the triangle is degenerate.
func (t Triangle) IntersectRay(origin, direction Vector3) (float32, bool) {
	if t.IsDegenerate() {
		return 0, false
	}
	dist, ok := t.Plane().IntersectRay(origin, direction)
	if !ok {
		return 0, false
	}
	if !t.ContainsPoint(origin.Add(direction.MulScalar(dist))) {
		return 0, false
	}
	return dist, true
}

// TransformCoordinate returns the triangle with each vertex transformed
// by m, including the perspective divide.
func (t Triangle) TransformCoordinate(m Matrix4) Triangle {
	return Triangle{t.A.TransformCoordinate(m), t.B.TransformCoordinate(m), t.C.TransformCoordinate(m)}
}

// boxFaces lists the [Box3.Corners] indexes of the two triangles of each
// face, in the order -X, +X, -Y, +Y, -Z, +Z.
var boxFaces = [12][3]int{
	{0, 1, 7}, {0, 7, 2},
	{3, 5, 4}, {3, 4, 6},
	{0, 3, 6}, {0, 6, 1},
	{2, 7, 4}, {2, 4, 5},
	{0, 2, 5}, {0, 5, 3},
	{1, 6, 4}, {1, 4, 7},
}

// Faces returns the six faces of the box as twelve triangles.
func (b Box3) Faces() [12]Triangle {
	c := b.Corners()
	var tris [12]Triangle
	for i, f := range boxFaces {
		tris[i] = Triangle{c[f[0]], c[f[1]], c[f[2]]}
	}
	return tris
}
