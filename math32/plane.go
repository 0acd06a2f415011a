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

// intersectEpsilon is the smallest |Normal·direction| for which a
// line or ray is not treated as parallel to a plane.
const intersectEpsilon = 1e-6

// Plane represents a plane in 3D space by its normal vector and a constant D.
// A point P lies on the plane when Normal·P + D = 0.
// Many operations need a unit-length Normal; use [Plane.Normalized] first.
type Plane struct {
	Normal Vector3
	D      float32
}

// NewPlane creates and returns a new plane from a normal vector and a constant.
func NewPlane(normal Vector3, d float32) Plane {
	return Plane{normal, d}
}

// PlaneFromPoints returns the plane through the three non-collinear
// points, with a unit normal following the winding p1, p2, p3.
func PlaneFromPoints(p1, p2, p3 Vector3) Plane {
	normal := p2.Sub(p1).Cross(p3.Sub(p1)).Normal()
	return Plane{normal, -normal.Dot(p1)}
}

// PlaneFromPointNormal returns the plane through point with the given normal.
func PlaneFromPointNormal(point, normal Vector3) Plane {
	return Plane{normal, -point.Dot(normal)}
}

// Set sets this plane normal vector and constant.
func (p *Plane) Set(normal Vector3, d float32) {
	p.Normal = normal
	p.D = d
}

func (p Plane) String() string {
	return fmt.Sprintf("{Normal:%v D:%v}", p.Normal, p.D)
}

// IsEqual returns if this plane is exactly equal to other.
func (p Plane) IsEqual(other Plane) bool {
	return p.Normal.IsEqual(other.Normal) && p.D == other.D
}

// Vector4 returns the plane as the homogeneous vector (Normal, D).
func (p Plane) Vector4() Vector4 {
	return Vector4FromVector3(p.Normal, p.D)
}

// Normalized returns this plane with Normal scaled to unit length and
// D scaled by the same factor. A plane with a zero normal is returned unchanged.
func (p Plane) Normalized() Plane {
	l := p.Normal.Length()
	if l == 0 {
		return p
	}
	inv := 1 / l
	return Plane{p.Normal.MulScalar(inv), p.D * inv}
}

// SetNormalized normalizes this plane.
func (p *Plane) SetNormalized() {
	*p = p.Normalized()
}

// MulScalar returns the plane with Normal and D multiplied by s.
func (p Plane) MulScalar(s float32) Plane {
	return Plane{p.Normal.MulScalar(s), p.D * s}
}

// Dot returns the 4-component dot product of the plane with the
// homogeneous vector v.
func (p Plane) Dot(v Vector4) float32 {
	return p.Normal.X*v.X + p.Normal.Y*v.Y + p.Normal.Z*v.Z + p.D*v.W
}

// DotCoordinate returns Normal·point + D: the signed distance of the
// point from a normalized plane.
func (p Plane) DotCoordinate(point Vector3) float32 {
	return p.Normal.Dot(point) + p.D
}

// DotNormal returns Normal·v, treating v as a direction.
func (p Plane) DotNormal(v Vector3) float32 {
	return p.Normal.Dot(v)
}

// Negate returns the plane facing the opposite way.
func (p Plane) Negate() Plane {
	return Plane{p.Normal.Negate(), -p.D}
}

// Transform returns this plane transformed by m, the matrix that
// transforms points. It returns [ErrSingularMatrix] if m cannot be inverted.
func (p Plane) Transform(m Matrix4) (Plane, error) {
	inv, err := m.Inverse()
	if err != nil {
		return p, err
	}
	return p.TransformInverseTranspose(inv.Transpose()), nil
}

// TransformInverseTranspose returns this plane transformed by the given
// inverse-transpose of a point transform. Use it when transforming
// many planes by the same matrix.
func (p Plane) TransformInverseTranspose(it Matrix4) Plane {
	v := p.Vector4().Transform(it)
	return Plane{Vector3{v.X, v.Y, v.Z}, v.W}
}

// PlaneIntersection classifies a point or volume against a plane.
type PlaneIntersection int32

const (
	// Front is the side of the plane the normal points to.
	Front PlaneIntersection = iota

	// Back is the side opposite the normal.
	Back

	// Intersecting means lying on, or crossing, the plane.
	Intersecting
)

func (pi PlaneIntersection) String() string {
	switch pi {
	case Front:
		return "Front"
	case Back:
		return "Back"
	case Intersecting:
		return "Intersecting"
	}
	return fmt.Sprintf("PlaneIntersection(%d)", int32(pi))
}

// IntersectsPoint classifies point against this plane.
func (p Plane) IntersectsPoint(point Vector3) PlaneIntersection {
	d := p.DotCoordinate(point)
	switch {
	case d > 0:
		return Front
	case d < 0:
		return Back
	}
	return Intersecting
}

// IntersectLine returns the point where the infinite line through start
// and end crosses this plane. It returns false if the line is parallel
// to the plane.
func (p Plane) IntersectLine(start, end Vector3) (Vector3, bool) {
	dir := end.Sub(start)
	denom := p.Normal.Dot(dir)
	if Abs(denom) < intersectEpsilon {
		return Vector3{}, false
	}
	t := -p.DotCoordinate(start) / denom
	return start.Add(dir.MulScalar(t)), true
}

// IntersectRay returns the distance, in units of direction, from the
// ray origin to this plane. It returns false if the ray is parallel to
// the plane or points away from it.
func (p Plane) IntersectRay(origin, direction Vector3) (float32, bool) {
	denom := p.Normal.Dot(direction)
	if Abs(denom) < intersectEpsilon {
		return 0, false
	}
	dist := -p.DotCoordinate(origin) / denom
	if dist < 0 {
		if dist < -intersectEpsilon {
			return 0, false
		}
		dist = 0
	}
	return dist, true
}

// ProjectPoint returns the projection of point onto this normalized plane.
func (p Plane) ProjectPoint(point Vector3) Vector3 {
	return point.Sub(p.Normal.MulScalar(p.DotCoordinate(point)))
}
