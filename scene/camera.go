// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/dxmath/math32"
)

// Kind is the kind of projection a [Camera] uses.
type Kind string

const (
	// Perspective is a perspective projection from the vertical field of view.
	Perspective Kind = "perspective"

	// Ortho is an orthographic projection.
	Ortho Kind = "ortho"
)

// Camera defines the view and projection of a [Scene].
type Camera struct {

	// Eye is the position of the camera.
	Eye math32.Vector3 `toml:"eye" yaml:"eye"`

	// Target is where the camera is pointing.
	Target math32.Vector3 `toml:"target" yaml:"target"`

	// Up is the up direction of the camera; +Y when zero.
	Up math32.Vector3 `toml:"up" yaml:"up"`

	// Handedness is the coordinate system convention of the view and projection.
	Handedness math32.Handedness `toml:"handedness" yaml:"handedness"`

	// Kind is the projection kind; perspective when empty.
	Kind Kind `toml:"projection" yaml:"projection"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `toml:"fov" yaml:"fov"`

	// Aspect is the aspect ratio (width / height).
	Aspect float32 `toml:"aspect" yaml:"aspect"`

	// Near is the distance to the near clipping plane.
	Near float32 `toml:"near" yaml:"near"`

	// Far is the distance to the far clipping plane.
	Far float32 `toml:"far" yaml:"far"`

	// Width is the width of an orthographic view volume. When Width or
	// Height is zero, the volume is the one the field of view covers at
	// the target distance.
	Width float32 `toml:"width,omitempty" yaml:"width,omitempty"`

	// Height is the height of an orthographic view volume.
	Height float32 `toml:"height,omitempty" yaml:"height,omitempty"`
}

// Defaults sets the default camera: looking at the origin from
// (0, 0, -10) with +Y up, left-handed, with a 45 degree perspective.
func (cm *Camera) Defaults() {
	cm.Eye = math32.Vec3(0, 0, -10)
	cm.Target = math32.Vector3{}
	cm.Up = math32.Vector3Y
	cm.Handedness = math32.LeftHanded
	cm.Kind = Perspective
	cm.FOV = 45
	cm.Aspect = 1.5
	cm.Near = 0.1
	cm.Far = 1000
	cm.Width = 0
	cm.Height = 0
}

func (cm *Camera) up() math32.Vector3 {
	if cm.Up.IsNil() {
		return math32.Vector3Y
	}
	return cm.Up
}

// Forward returns the unit direction the camera is looking in. When Eye
// and Target coincide it is +Z for a left-handed camera and -Z for a
// right-handed one.
func (cm *Camera) Forward() math32.Vector3 {
	fwd := cm.Target.Sub(cm.Eye).Normal()
	if fwd.IsNil() {
		if cm.Handedness == math32.RightHanded {
			return math32.Vec3(0, 0, -1)
		}
		return math32.Vec3(0, 0, 1)
	}
	return fwd
}

// View returns the view matrix of the camera.
func (cm *Camera) View() math32.Matrix4 {
	return cm.Handedness.LookAt(cm.Eye, cm.Target, cm.up())
}

// Projection returns the projection matrix of the camera.
func (cm *Camera) Projection() (math32.Matrix4, error) {
	switch cm.Kind {
	case Perspective, "":
		return cm.Handedness.PerspectiveFov(math32.DegToRad(cm.FOV), cm.Aspect, cm.Near, cm.Far)
	case Ortho:
		width, height := cm.Width, cm.Height
		if width == 0 || height == 0 {
			height = 2 * cm.Eye.Distance(cm.Target) * math32.Tan(math32.DegToRad(cm.FOV*0.5))
			width = cm.Aspect * height
		}
		return cm.Handedness.Ortho(width, height, cm.Near, cm.Far)
	}
	return math32.Identity4(), fmt.Errorf("%w %q", ErrUnknownProjection, cm.Kind)
}

// ViewProjection returns the view matrix followed by the projection.
func (cm *Camera) ViewProjection() (math32.Matrix4, error) {
	proj, err := cm.Projection()
	if err != nil {
		return proj, err
	}
	return cm.View().Mul(proj), nil
}

// InFront returns whether the given world position is in front of the camera.
func (cm *Camera) InFront(pos math32.Vector3) bool {
	z := pos.TransformCoordinate(cm.View()).Z
	if cm.Handedness == math32.RightHanded {
		z = -z
	}
	return z > 0
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down), keeping the same distance
// from the Target and rotating the Up direction so that the camera
// keeps looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.Eye.Sub(cm.Target)
	if ctdir.IsNil() {
		ctdir.Set(0, 0, -1)
	}
	dir := ctdir.Normal()
	up := cm.up()
	right := up.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.QuatRotationAxis(up, math32.DegToRad(delX))
	// delY rotates around the right vector
	dyq := math32.QuatRotationAxis(right, math32.DegToRad(delY))

	cm.Eye = cm.Target.Add(ctdir.MulQuat(dxq.Mul(dyq)))
	cm.Up = up.MulQuat(dyq) // only delY affects up
}
