// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in printed messages.
// It is on by default.
var UseColor = true

// Output is where the Print functions write. It is stdout by default.
var Output io.Writer = os.Stdout

// colorProfile is the termenv color profile of the terminal, detected
// once from stdout.
var colorProfile = termenv.ColorProfile()

// ANSI color codes used for each level.
const (
	debugColor = "4" // blue
	infoColor  = "2" // green
	warnColor  = "3" // yellow
	errorColor = "1" // red
)

// colorize returns s in the given ANSI color when [UseColor] is on.
func colorize(s, color string) string {
	if !UseColor {
		return s
	}
	return termenv.String(s).Foreground(colorProfile.Color(color)).String()
}

// LevelColor returns s colored for the given level.
func LevelColor(level slog.Level, s string) string {
	switch {
	case level >= slog.LevelError:
		return colorize(s, errorColor)
	case level >= slog.LevelWarn:
		return colorize(s, warnColor)
	case level >= slog.LevelInfo:
		return colorize(s, infoColor)
	}
	return colorize(s, debugColor)
}

// Print is equivalent to [fmt.Fprint] to [Output], but with color
// based on the given level. It only prints if [UserLevel] allows it.
func Print(level slog.Level, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Fprint(Output, LevelColor(level, fmt.Sprint(a...)))
}

// Println is equivalent to [fmt.Fprintln] to [Output], but with color
// based on the given level. It only prints if [UserLevel] allows it.
func Println(level slog.Level, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Fprintln(Output, LevelColor(level, fmt.Sprint(a...)))
}

// Printf is equivalent to [fmt.Fprintf] to [Output], but with color
// based on the given level. It only prints if [UserLevel] allows it.
func Printf(level slog.Level, format string, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Fprint(Output, LevelColor(level, fmt.Sprintf(format, a...)))
}

// PrintlnDebug prints a debug message.
func PrintlnDebug(a ...any) { Println(slog.LevelDebug, a...) }

// PrintlnInfo prints an info message.
func PrintlnInfo(a ...any) { Println(slog.LevelInfo, a...) }

// PrintlnWarn prints a warning message.
func PrintlnWarn(a ...any) { Println(slog.LevelWarn, a...) }

// PrintlnError prints an error message.
func PrintlnError(a ...any) { Println(slog.LevelError, a...) }
