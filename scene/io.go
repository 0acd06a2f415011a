// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/dxmath/base/iox/tomlx"
	"cogentcore.org/dxmath/base/iox/yamlx"
)

// Format is a file format for scenes and results.
type Format string

const (
	// TOML is the TOML format.
	TOML Format = "toml"

	// YAML is the YAML format.
	YAML Format = "yaml"
)

// FormatOf returns the format of the given filename from its extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

// Open reads a scene from the given TOML or YAML file. Values missing
// from the file keep the defaults of [New].
func Open(filename string) (*Scene, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	sc := New()
	switch f {
	case TOML:
		err = tomlx.Open(sc, filename)
	case YAML:
		err = yamlx.Open(sc, filename)
	}
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// Save writes the scene to the given TOML or YAML file.
func (sc *Scene) Save(filename string) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	if f == YAML {
		return yamlx.Save(sc, filename)
	}
	return tomlx.Save(sc, filename)
}

// Read reads a scene in the given format. Values missing from the
// input keep the defaults of [New].
func Read(r io.Reader, f Format) (*Scene, error) {
	sc := New()
	var err error
	switch f {
	case TOML:
		err = tomlx.Read(sc, r)
	case YAML:
		err = yamlx.Read(sc, r)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// Write writes v, typically a [Scene] or its results, in the given format.
func Write(v any, w io.Writer, f Format) error {
	switch f {
	case TOML:
		return tomlx.Write(v, w)
	case YAML:
		return yamlx.Write(v, w)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, f)
}
