// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "errors"

var (
	// ErrSingularMatrix is returned when inverting a matrix whose
	// determinant is zero.
	ErrSingularMatrix = errors.New("math32: singular matrix")

	// ErrDegenerateProjection is returned by the projection factories
	// when the view volume has zero extent or invalid clip planes.
	ErrDegenerateProjection = errors.New("math32: degenerate projection")

	// ErrParse is returned when text cannot be decoded into a value.
	ErrParse = errors.New("math32: parse error")
)
