// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a declarative description of a camera and a set
// of objects, evaluated into world, view and projection matrices.
package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/dxmath/base/errors"
	"cogentcore.org/dxmath/math32"
)

var (
	// ErrUnknownProjection is returned for a camera projection kind
	// other than [Perspective] or [Ortho].
	ErrUnknownProjection = errors.New("scene: unknown projection")

	// ErrUnknownFormat is returned when a scene filename has an
	// extension other than .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("scene: unknown file format")

	// ErrNoViewport is returned when picking in a scene whose viewport
	// has no size.
	ErrNoViewport = errors.New("scene: no viewport")
)

// Shadow is a planar shadow cast by a light.
type Shadow struct {

	// Light is a directional light (W = 0, pointing toward the light)
	// or a point light (W = 1).
	Light math32.Vector4 `toml:"light" yaml:"light"`

	// Plane is the plane the shadow falls on.
	Plane math32.Plane `toml:"plane" yaml:"plane"`
}

// Scene is a camera and the objects it sees, with optional mirrored
// and shadow copies of every object.
type Scene struct {

	// Camera is the camera the scene is viewed from.
	Camera Camera `toml:"camera" yaml:"camera"`

	// Viewport is the render target rectangle. When its size is zero,
	// results have no screen bounds.
	Viewport math32.Viewport `toml:"viewport" yaml:"viewport"`

	// Mirror adds a copy of every object reflected in this plane.
	Mirror *math32.Plane `toml:"mirror,omitempty" yaml:"mirror,omitempty"`

	// Shadow adds a copy of every object flattened into a shadow.
	Shadow *Shadow `toml:"shadow,omitempty" yaml:"shadow,omitempty"`

	// Objects are the objects in the scene.
	Objects []Object `toml:"objects" yaml:"objects"`
}

// New returns a new empty scene with the default camera.
func New() *Scene {
	sc := &Scene{}
	sc.Camera.Defaults()
	return sc
}

// Copy is the kind of copy of an object a [Result] is for.
type Copy string

const (
	// Original is the object itself.
	Original Copy = "object"

	// Mirrored is the object reflected in the mirror plane.
	Mirrored Copy = "mirror"

	// Shadowed is the shadow of the object.
	Shadowed Copy = "shadow"
)

// Result is the evaluation of one object, or of its mirrored or
// shadow copy.
type Result struct {
	Name string `toml:"name" yaml:"name"`
	Copy Copy   `toml:"copy" yaml:"copy"`

	// World is the world matrix.
	World math32.Matrix4 `toml:"world" yaml:"world"`

	// WorldViewProj is the world matrix followed by the camera view and projection.
	WorldViewProj math32.Matrix4 `toml:"world_view_proj" yaml:"world_view_proj"`

	// Scale, Rotation and Translation are World decomposed; they are
	// only valid when Decomposed is true.
	Scale       math32.Vector3 `toml:"scale" yaml:"scale"`
	Rotation    math32.Quat    `toml:"rotation" yaml:"rotation"`
	Translation math32.Vector3 `toml:"translation" yaml:"translation"`
	Decomposed  bool           `toml:"decomposed" yaml:"decomposed"`

	// Bounds is the object bounding box in world space.
	Bounds math32.Box3 `toml:"bounds" yaml:"bounds"`

	// NDC is the object bounding box in normalized device coordinates.
	NDC math32.Box3 `toml:"ndc" yaml:"ndc"`

	// Screen is the object bounding box in viewport space. It is empty
	// when the scene has no viewport or the box reaches behind the camera.
	Screen math32.Box2 `toml:"screen" yaml:"screen"`

	// OnScreen is whether Screen overlaps the viewport.
	OnScreen bool `toml:"on_screen" yaml:"on_screen"`

	// InFront is whether the object origin is in front of the camera.
	InFront bool `toml:"in_front" yaml:"in_front"`
}

// Evaluate returns the results for every object in the scene, in
// order, each followed by its mirrored and shadow copies when the
// scene has them.
func (sc *Scene) Evaluate() ([]Result, error) {
	vp, err := sc.Camera.ViewProjection()
	if err != nil {
		return nil, fmt.Errorf("scene: camera: %w", err)
	}
	copies, extra := sc.copies()
	res := make([]Result, 0, len(sc.Objects)*(1+len(copies)))
	for i := range sc.Objects {
		ob := &sc.Objects[i]
		world := ob.World(&sc.Camera)
		res = append(res, sc.result(ob, Original, world, vp))
		for j, c := range copies {
			res = append(res, sc.result(ob, c, world.Mul(extra[j]), vp))
		}
	}
	return res, nil
}

// copies returns the kinds of copy made of every object, other than
// [Original], with the matrix applied after the object's world matrix
// for each.
func (sc *Scene) copies() ([]Copy, []math32.Matrix4) {
	var copies []Copy
	var extra []math32.Matrix4
	if sc.Mirror != nil {
		copies = append(copies, Mirrored)
		extra = append(extra, math32.Matrix4Reflection(sc.Mirror.Normalized()))
	}
	if sc.Shadow != nil {
		copies = append(copies, Shadowed)
		extra = append(extra, math32.Matrix4Shadow(sc.Shadow.Light, sc.Shadow.Plane))
	}
	return copies, extra
}

func (sc *Scene) result(ob *Object, c Copy, world, viewProj math32.Matrix4) Result {
	r := Result{Name: ob.Name, Copy: c, World: world}
	r.WorldViewProj = world.Mul(viewProj)
	r.Scale, r.Rotation, r.Translation, r.Decomposed = world.Decompose()
	r.Bounds = ob.Bounds.TransformCoordinate(world)
	r.NDC = ob.Bounds.MVProjToNDC(r.WorldViewProj)
	r.Screen = math32.B2Empty()
	if sc.Viewport.Width != 0 && sc.Viewport.Height != 0 {
		if rect, _, _, ok := ob.Bounds.Project(sc.Viewport, r.WorldViewProj); ok {
			r.Screen = rect
			r.OnScreen = sc.Viewport.Box2().IntersectsBox(rect)
		}
	}
	r.InFront = sc.Camera.InFront(math32.Vector3{}.TransformCoordinate(world))
	slog.Debug("evaluated object", "name", r.Name, "copy", r.Copy, "decomposed", r.Decomposed, "inFront", r.InFront)
	return r
}
