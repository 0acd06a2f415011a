// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorText(t *testing.T) {
	b, err := Vec2(1.5, -2).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "1.5 -2", string(b))

	b, err = Vec3(0.1, 2, 3e10).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "0.1 2 3e+10", string(b))
	var v3 Vector3
	assert.NoError(t, v3.UnmarshalText(b))
	assert.Equal(t, Vec3(0.1, 2, 3e10), v3)

	// commas, brackets and parentheses are all accepted
	for _, s := range []string{"1 2 3", "1,2,3", "(1, 2, 3)", "[1 2 3]", "  1,\t2 ,3  "} {
		v3 = Vector3{}
		assert.NoError(t, v3.UnmarshalText([]byte(s)), s)
		assert.Equal(t, Vec3(1, 2, 3), v3, s)
	}

	assert.ErrorIs(t, v3.UnmarshalText([]byte("1 2")), ErrParse)
	assert.ErrorIs(t, v3.UnmarshalText([]byte("1 2 x")), ErrParse)
	assert.ErrorIs(t, v3.UnmarshalText(nil), ErrParse)

	var v2 Vector2
	assert.NoError(t, v2.UnmarshalText([]byte("(3, 4)")))
	assert.Equal(t, Vec2(3, 4), v2)

	b, err = Vec4(1, 2, 3, 4).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "1 2 3 4", string(b))
	var v4 Vector4
	assert.NoError(t, v4.UnmarshalText(b))
	assert.Equal(t, Vec4(1, 2, 3, 4), v4)
	assert.ErrorIs(t, v4.UnmarshalText([]byte("1 2 3 4 5")), ErrParse)
}

func TestPlaneText(t *testing.T) {
	p := NewPlane(Vec3(0, 1, 0), -2.5)
	b, err := p.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "0 1 0 -2.5", string(b))

	var q Plane
	assert.NoError(t, q.UnmarshalText(b))
	assert.Equal(t, p, q)
	assert.ErrorIs(t, q.UnmarshalText([]byte("0 1 0")), ErrParse)
}

func TestMatrix4Text(t *testing.T) {
	b, err := seqMatrix.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16", string(b))

	m := trsMatrix()
	b, err = m.MarshalText()
	assert.NoError(t, err)
	var r Matrix4
	assert.NoError(t, r.UnmarshalText(b))
	assert.Equal(t, m, r)
	assert.ErrorIs(t, r.UnmarshalText([]byte("1 2 3")), ErrParse)
}
