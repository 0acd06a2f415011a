// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Handedness is the coordinate system convention used by the view and
// projection matrices. In a left-handed system the camera looks down +Z;
// in a right-handed system it looks down -Z.
type Handedness int32

const (
	// LeftHanded is the Direct3D convention: +Z points into the screen.
	LeftHanded Handedness = iota

	// RightHanded is the OpenGL convention: +Z points out of the screen.
	RightHanded
)

// sign returns +1 for [LeftHanded] and -1 for [RightHanded].
func (h Handedness) sign() float32 {
	if h == RightHanded {
		return -1
	}
	return 1
}

// LookAt returns a view matrix for a camera at eye looking at target,
// with the given up direction, in the given handedness.
func (h Handedness) LookAt(eye, target, up Vector3) Matrix4 {
	var z Vector3
	if h == RightHanded {
		z = eye.Sub(target).Normal()
	} else {
		z = target.Sub(eye).Normal()
	}
	x := up.Cross(z).Normal()
	y := z.Cross(x)
	return Matrix4{
		M11: x.X, M12: y.X, M13: z.X,
		M21: x.Y, M22: y.Y, M23: z.Y,
		M31: x.Z, M32: y.Z, M33: z.Z,
		M41: -x.Dot(eye), M42: -y.Dot(eye), M43: -z.Dot(eye), M44: 1,
	}
}

// OrthoOffCenter returns an orthographic projection of the given view
// volume, mapping znear to depth 0 and zfar to depth 1.
func (h Handedness) OrthoOffCenter(left, right, bottom, top, znear, zfar float32) (Matrix4, error) {
	switch {
	case left == right:
		return Identity4(), fmt.Errorf("%w: zero width (left = right = %v)", ErrDegenerateProjection, left)
	case bottom == top:
		return Identity4(), fmt.Errorf("%w: zero height (bottom = top = %v)", ErrDegenerateProjection, bottom)
	case znear == zfar:
		return Identity4(), fmt.Errorf("%w: znear = zfar = %v", ErrDegenerateProjection, znear)
	}
	return Matrix4{
		M11: 2 / (right - left),
		M22: 2 / (top - bottom),
		M33: h.sign() / (zfar - znear),
		M41: (left + right) / (left - right),
		M42: (top + bottom) / (bottom - top),
		M43: znear / (znear - zfar),
		M44: 1,
	}, nil
}

// Ortho returns an orthographic projection of a view volume of the
// given width and height centered on the view axis.
func (h Handedness) Ortho(width, height, znear, zfar float32) (Matrix4, error) {
	hw, hh := width*0.5, height*0.5
	return h.OrthoOffCenter(-hw, hw, -hh, hh, znear, zfar)
}

// perspective returns the perspective projection with the given scales
// and off-center offsets, after validating the clip planes.
func (h Handedness) perspective(xScale, yScale, offX, offY, znear, zfar float32) (Matrix4, error) {
	switch {
	case znear <= 0 || zfar <= 0:
		return Identity4(), fmt.Errorf("%w: clip planes must be positive (znear = %v, zfar = %v)", ErrDegenerateProjection, znear, zfar)
	case znear == zfar:
		return Identity4(), fmt.Errorf("%w: znear = zfar = %v", ErrDegenerateProjection, znear)
	}
	s := h.sign()
	return Matrix4{
		M11: xScale,
		M22: yScale,
		M31: offX, M32: offY, M33: s * zfar / (zfar - znear), M34: s,
		M43: znear * zfar / (znear - zfar),
	}, nil
}

// PerspectiveOffCenter returns a perspective projection of the view
// volume whose near plane spans the given rectangle.
func (h Handedness) PerspectiveOffCenter(left, right, bottom, top, znear, zfar float32) (Matrix4, error) {
	switch {
	case left == right:
		return Identity4(), fmt.Errorf("%w: zero width (left = right = %v)", ErrDegenerateProjection, left)
	case bottom == top:
		return Identity4(), fmt.Errorf("%w: zero height (bottom = top = %v)", ErrDegenerateProjection, bottom)
	}
	s := h.sign()
	return h.perspective(2*znear/(right-left), 2*znear/(top-bottom),
		s*(left+right)/(left-right), s*(top+bottom)/(bottom-top), znear, zfar)
}

// Perspective returns a perspective projection whose near plane has
// the given width and height.
func (h Handedness) Perspective(width, height, znear, zfar float32) (Matrix4, error) {
	if width == 0 || height == 0 {
		return Identity4(), fmt.Errorf("%w: zero size near plane (%v x %v)", ErrDegenerateProjection, width, height)
	}
	return h.perspective(2*znear/width, 2*znear/height, 0, 0, znear, zfar)
}

// PerspectiveFov returns a perspective projection with the given vertical
// field of view (radians) and aspect ratio (width / height).
func (h Handedness) PerspectiveFov(fov, aspect, znear, zfar float32) (Matrix4, error) {
	if fov <= 0 || fov >= Pi {
		return Identity4(), fmt.Errorf("%w: field of view %v out of range (0, pi)", ErrDegenerateProjection, fov)
	}
	if aspect == 0 {
		return Identity4(), fmt.Errorf("%w: zero aspect ratio", ErrDegenerateProjection)
	}
	yScale := 1 / Tan(fov*0.5)
	return h.perspective(yScale/aspect, yScale, 0, 0, znear, zfar)
}

// LookAtLH returns a left-handed view matrix.
func LookAtLH(eye, target, up Vector3) Matrix4 {
	return LeftHanded.LookAt(eye, target, up)
}

// LookAtRH returns a right-handed view matrix.
func LookAtRH(eye, target, up Vector3) Matrix4 {
	return RightHanded.LookAt(eye, target, up)
}

// OrthoLH returns a left-handed orthographic projection.
func OrthoLH(width, height, znear, zfar float32) (Matrix4, error) {
	return LeftHanded.Ortho(width, height, znear, zfar)
}

// OrthoRH returns a right-handed orthographic projection.
func OrthoRH(width, height, znear, zfar float32) (Matrix4, error) {
	return RightHanded.Ortho(width, height, znear, zfar)
}

// OrthoOffCenterLH returns a left-handed off-center orthographic projection.
func OrthoOffCenterLH(left, right, bottom, top, znear, zfar float32) (Matrix4, error) {
	return LeftHanded.OrthoOffCenter(left, right, bottom, top, znear, zfar)
}

// OrthoOffCenterRH returns a right-handed off-center orthographic projection.
func OrthoOffCenterRH(left, right, bottom, top, znear, zfar float32) (Matrix4, error) {
	return RightHanded.OrthoOffCenter(left, right, bottom, top, znear, zfar)
}

// PerspectiveLH returns a left-handed perspective projection.
func PerspectiveLH(width, height, znear, zfar float32) (Matrix4, error) {
	return LeftHanded.Perspective(width, height, znear, zfar)
}

// PerspectiveRH returns a right-handed perspective projection.
func PerspectiveRH(width, height, znear, zfar float32) (Matrix4, error) {
	return RightHanded.Perspective(width, height, znear, zfar)
}

// PerspectiveFovLH returns a left-handed field of view perspective projection.
func PerspectiveFovLH(fov, aspect, znear, zfar float32) (Matrix4, error) {
	return LeftHanded.PerspectiveFov(fov, aspect, znear, zfar)
}

// PerspectiveFovRH returns a right-handed field of view perspective projection.
func PerspectiveFovRH(fov, aspect, znear, zfar float32) (Matrix4, error) {
	return RightHanded.PerspectiveFov(fov, aspect, znear, zfar)
}

// PerspectiveOffCenterLH returns a left-handed off-center perspective projection.
func PerspectiveOffCenterLH(left, right, bottom, top, znear, zfar float32) (Matrix4, error) {
	return LeftHanded.PerspectiveOffCenter(left, right, bottom, top, znear, zfar)
}

// PerspectiveOffCenterRH returns a right-handed off-center perspective projection.
func PerspectiveOffCenterRH(left, right, bottom, top, znear, zfar float32) (Matrix4, error) {
	return RightHanded.PerspectiveOffCenter(left, right, bottom, top, znear, zfar)
}
