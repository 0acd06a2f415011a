// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/dxmath/math32"
)

// Hit is the object found under a viewport point by [Scene.Pick].
type Hit struct {

	// Name is the name of the object.
	Name string `toml:"name" yaml:"name"`

	// Copy is which copy of the object was hit.
	Copy Copy `toml:"copy" yaml:"copy"`

	// Point is where the pick ray first meets the object bounds, in world space.
	Point math32.Vector3 `toml:"point" yaml:"point"`

	// Distance is the distance from the camera eye to Point.
	Distance float32 `toml:"distance" yaml:"distance"`
}

// Pick casts a ray from the camera through the given viewport point and
// returns the nearest object whose world-space bounds it hits between the
// near and far planes. Objects with empty bounds cannot be picked.
// It returns false if nothing is hit.
func (sc *Scene) Pick(pt math32.Vector2) (Hit, bool, error) {
	if sc.Viewport.Width == 0 || sc.Viewport.Height == 0 {
		return Hit{}, false, ErrNoViewport
	}
	vp, err := sc.Camera.ViewProjection()
	if err != nil {
		return Hit{}, false, fmt.Errorf("scene: camera: %w", err)
	}
	// unproject at clip depths 0 and 1 whatever the viewport depth range
	view := sc.Viewport
	view.MinZ, view.MaxZ = 0, 1
	near, err := math32.Vec3(pt.X, pt.Y, 0).Unproject(view, vp)
	if err != nil {
		return Hit{}, false, fmt.Errorf("scene: pick: %w", err)
	}
	far, _ := math32.Vec3(pt.X, pt.Y, 1).Unproject(view, vp)
	dir := far.Sub(near)

	copies, extra := sc.copies()
	var hit Hit
	best := math32.Infinity
	try := func(ob *Object, c Copy, world math32.Matrix4) {
		for _, f := range ob.Bounds.Faces() {
			d, ok := f.TransformCoordinate(world).IntersectRay(near, dir)
			if ok && d <= 1 && d < best {
				best = d
				hit.Name, hit.Copy = ob.Name, c
			}
		}
	}
	for i := range sc.Objects {
		ob := &sc.Objects[i]
		if ob.Bounds.IsEmpty() {
			continue
		}
		world := ob.World(&sc.Camera)
		try(ob, Original, world)
		for j, c := range copies {
			try(ob, c, world.Mul(extra[j]))
		}
	}
	if best == math32.Infinity {
		slog.Debug("picked nothing", "point", pt)
		return Hit{}, false, nil
	}
	hit.Point = near.Add(dir.MulScalar(best))
	hit.Distance = hit.Point.Distance(sc.Camera.Eye)
	slog.Debug("picked object", "name", hit.Name, "copy", hit.Copy, "distance", hit.Distance)
	return hit, true, nil
}
