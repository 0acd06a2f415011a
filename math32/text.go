// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// appendFloats appends the values separated by single spaces.
func appendFloats(b []byte, vals ...float32) []byte {
	for i, v := range vals {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendFloat(b, float64(v), 'g', -1, 32)
	}
	return b
}

// parseFloats parses exactly len(dst) numbers from text, which may be
// separated by commas and/or white space and wrapped in parentheses
// or square brackets.
func parseFloats(text []byte, dst ...*float32) error {
	s := strings.TrimSpace(string(text))
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != len(dst) {
		return fmt.Errorf("%w: expected %d numbers in %q, got %d", ErrParse, len(dst), text, len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrParse, f, err)
		}
		*dst[i] = float32(v)
	}
	return nil
}

// MarshalText encodes the vector as "x y".
func (v Vector2) MarshalText() ([]byte, error) {
	return appendFloats(nil, v.X, v.Y), nil
}

// UnmarshalText decodes the vector from two numbers.
func (v *Vector2) UnmarshalText(text []byte) error {
	return parseFloats(text, &v.X, &v.Y)
}

// MarshalText encodes the vector as "x y z".
func (v Vector3) MarshalText() ([]byte, error) {
	return appendFloats(nil, v.X, v.Y, v.Z), nil
}

// UnmarshalText decodes the vector from three numbers.
func (v *Vector3) UnmarshalText(text []byte) error {
	return parseFloats(text, &v.X, &v.Y, &v.Z)
}

// MarshalText encodes the vector as "x y z w".
func (v Vector4) MarshalText() ([]byte, error) {
	return appendFloats(nil, v.X, v.Y, v.Z, v.W), nil
}

// UnmarshalText decodes the vector from four numbers.
func (v *Vector4) UnmarshalText(text []byte) error {
	return parseFloats(text, &v.X, &v.Y, &v.Z, &v.W)
}

// MarshalText encodes the quaternion as "x y z w".
func (q Quat) MarshalText() ([]byte, error) {
	return appendFloats(nil, q.X, q.Y, q.Z, q.W), nil
}

// UnmarshalText decodes the quaternion from four numbers.
func (q *Quat) UnmarshalText(text []byte) error {
	return parseFloats(text, &q.X, &q.Y, &q.Z, &q.W)
}

// MarshalText encodes the plane as "nx ny nz d".
func (p Plane) MarshalText() ([]byte, error) {
	return appendFloats(nil, p.Normal.X, p.Normal.Y, p.Normal.Z, p.D), nil
}

// UnmarshalText decodes the plane from four numbers: the normal then D.
func (p *Plane) UnmarshalText(text []byte) error {
	return parseFloats(text, &p.Normal.X, &p.Normal.Y, &p.Normal.Z, &p.D)
}

// MarshalText encodes the matrix as its 16 elements in row-major order.
func (m Matrix4) MarshalText() ([]byte, error) {
	a := m.array()
	return appendFloats(nil, a[:]...), nil
}

// UnmarshalText decodes the matrix from 16 numbers in row-major order.
func (m *Matrix4) UnmarshalText(text []byte) error {
	var a [16]float32
	dst := make([]*float32, len(a))
	for i := range a {
		dst[i] = &a[i]
	}
	if err := parseFloats(text, dst...); err != nil {
		return err
	}
	*m = matrix4FromArray(a)
	return nil
}

func (h Handedness) String() string {
	switch h {
	case LeftHanded:
		return "lh"
	case RightHanded:
		return "rh"
	}
	return "Handedness(" + strconv.Itoa(int(h)) + ")"
}

// MarshalText encodes the handedness as "lh" or "rh".
func (h Handedness) MarshalText() ([]byte, error) {
	if h != LeftHanded && h != RightHanded {
		return nil, fmt.Errorf("%w: invalid %v", ErrParse, h)
	}
	return []byte(h.String()), nil
}

// UnmarshalText decodes "lh" or "rh" (case insensitive, with the long
// forms "left" and "right" also accepted).
func (h *Handedness) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "lh", "left":
		*h = LeftHanded
	case "rh", "right":
		*h = RightHanded
	default:
		return fmt.Errorf("%w: unknown handedness %q", ErrParse, text)
	}
	return nil
}
