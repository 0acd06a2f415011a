// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/dxmath/math32"
)

// Object is a named object in a [Scene], placed by its scale, rotation
// and translation.
type Object struct {

	// Name identifies the object in the results.
	Name string `toml:"name" yaml:"name"`

	// Scale is the scale along each axis; (1, 1, 1) when zero.
	Scale math32.Vector3 `toml:"scale" yaml:"scale"`

	// Rotation is the rotation in degrees about each axis:
	// X is the pitch, Y the yaw and Z the roll.
	Rotation math32.Vector3 `toml:"rotation" yaml:"rotation"`

	// Translation is the position of the object.
	Translation math32.Vector3 `toml:"translation" yaml:"translation"`

	// Billboard makes the object always face the camera, replacing Rotation.
	Billboard bool `toml:"billboard,omitempty" yaml:"billboard,omitempty"`

	// Bounds is the bounding box of the object in object space.
	Bounds math32.Box3 `toml:"bounds" yaml:"bounds"`
}

func (ob *Object) scale() math32.Vector3 {
	if ob.Scale.IsNil() {
		return math32.Vector3Scalar(1)
	}
	return ob.Scale
}

// Quat returns the rotation of the object as a quaternion.
func (ob *Object) Quat() math32.Quat {
	r := ob.Rotation
	return math32.QuatRotationYawPitchRoll(math32.DegToRad(r.Y), math32.DegToRad(r.X), math32.DegToRad(r.Z))
}

// World returns the world matrix of the object: its scaling, then its
// rotation, then its translation. A billboard object is instead
// scaled and then oriented to face the camera at its translation.
func (ob *Object) World(cam *Camera) math32.Matrix4 {
	s := math32.Matrix4ScalingVector(ob.scale())
	if ob.Billboard {
		return s.Mul(math32.Matrix4Billboard(ob.Translation, cam.Eye, cam.up(), cam.Forward()))
	}
	r := ob.Rotation
	rot := math32.Matrix4RotationYawPitchRoll(math32.DegToRad(r.Y), math32.DegToRad(r.X), math32.DegToRad(r.Z))
	return s.Mul(rot).Mul(math32.Matrix4TranslationVector(ob.Translation))
}
