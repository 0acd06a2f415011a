// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
// It is mostly used for rectangles in viewport (screen) space.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	return Box2{Vector2FromFixed(rect.Min), Vector2FromFixed(rect.Max)}
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// SetFromPoints set this bounding box from the specified array of points.
func (b *Box2) SetFromPoints(points []Vector2) {
	b.SetEmpty()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ToRect returns image.Rectangle version of this bbox, using floor for min
// and Ceil for max.
func (b Box2) ToRect() image.Rectangle {
	return image.Rect(int(Floor(b.Min.X)), int(Floor(b.Min.Y)), int(Ceil(b.Max.X)), int(Ceil(b.Max.Y)))
}

// ToFixed returns fixed.Rectangle26_6 version of this bbox.
func (b Box2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.Min.ToFixed(), Max: b.Max.ToFixed()}
}

// Canon returns the canonical version of the box.
// The returned rectangle has minimum and maximum coordinates swapped
// if necessary so that it is well-formed.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// ExpandByBox may expand this bounding box to include the specified box
func (b *Box2) ExpandByBox(box Box2) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Corners returns the four corners of this box.
func (b Box2) Corners() [4]Vector2 {
	return [4]Vector2{
		{b.Min.X, b.Min.Y},
		{b.Min.X, b.Max.Y},
		{b.Max.X, b.Min.Y},
		{b.Max.X, b.Max.Y},
	}
}

// MulMatrix4 transforms the corners of this box by m, as points in
// the z = 0 plane, and returns the box spanning the transformed corners.
func (b Box2) MulMatrix4(m Matrix4) Box2 {
	nb := B2Empty()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(c.TransformCoordinate(m))
	}
	return nb
}

// Center calculates the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box2) ContainsPoint(point Vector2) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y {
		return false
	}
	return true
}

// ContainsBox returns if this bounding box contains other box.
func (b Box2) ContainsBox(box Box2) bool {
	return (b.Min.X <= box.Min.X) && (box.Max.X <= b.Max.X) && (b.Min.Y <= box.Min.Y) && (box.Max.Y <= b.Max.Y)
}

// IntersectsBox returns if other box intersects this one.
func (b Box2) IntersectsBox(other Box2) bool {
	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y {
		return false
	}
	return true
}

// Intersect returns the intersection with other box.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{b.Min.Max(other.Min), b.Max.Min(other.Max)}
}

// Union returns the union with other box.
func (b Box2) Union(other Box2) Box2 {
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Box2 returns the rectangle covered by this viewport.
func (vp Viewport) Box2() Box2 {
	return B2(vp.X, vp.Y, vp.X+vp.Width, vp.Y+vp.Height)
}

// Project returns the viewport-space rectangle spanned by the corners of
// this box after projection by worldViewProj, together with the depth
// range they cover. A box with a corner behind the camera (w <= 0) has
// no meaningful projection and returns ok = false.
func (b Box3) Project(vp Viewport, worldViewProj Matrix4) (rect Box2, minZ, maxZ float32, ok bool) {
	rect = B2Empty()
	minZ, maxZ = Infinity, -Infinity
	for _, c := range b.Corners() {
		if c.Transform(worldViewProj).W <= 0 {
			return Box2{}, 0, 0, false
		}
		p := c.Project(vp, worldViewProj)
		rect.ExpandByPoint(Vec2(p.X, p.Y))
		minZ = Min(minZ, p.Z)
		maxZ = Max(maxZ, p.Z)
	}
	return rect, minZ, maxZ, true
}
