// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
}

func TestSetDefault(t *testing.T) {
	prev := slog.Default()
	prevLevel := UserLevel
	defer func() {
		slog.SetDefault(prev)
		UserLevel = prevLevel
	}()

	var b bytes.Buffer
	SetDefaultTo(&b, slog.LevelWarn)
	assert.Equal(t, slog.LevelWarn, UserLevel)

	slog.Info("hidden")
	slog.Warn("shown")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "shown")
}

func TestPrint(t *testing.T) {
	prevOut, prevColor, prevLevel := Output, UseColor, UserLevel
	defer func() {
		Output, UseColor, UserLevel = prevOut, prevColor, prevLevel
	}()

	var b bytes.Buffer
	Output = &b
	UseColor = false
	UserLevel = slog.LevelWarn

	PrintlnInfo("info")
	PrintlnWarn("warn")
	PrintlnError("error")
	Printf(slog.LevelError, "%d items", 3)
	assert.Equal(t, "warn\nerror\n3 items", b.String())
}

func TestLevelColor(t *testing.T) {
	prev := UseColor
	defer func() { UseColor = prev }()

	UseColor = false
	assert.Equal(t, "plain", LevelColor(slog.LevelError, "plain"))
	UseColor = true
	assert.Contains(t, LevelColor(slog.LevelError, "colored"), "colored")
}
