// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xform loads a scene file, evaluates it and prints the
// world, view and projection matrices of every object.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/dxmath/base/errors"
	"cogentcore.org/dxmath/logx"
	"cogentcore.org/dxmath/math32"
	"cogentcore.org/dxmath/scene"
)

func main() {
	if errors.Log(run(os.Args[1:], os.Stdout, os.Stderr)) != nil {
		os.Exit(1)
	}
}

// run runs the command with the given arguments, writing the results to w
// and all messages to msgs.
func run(args []string, w, msgs io.Writer) error {
	fs := flag.NewFlagSet("xform", flag.ContinueOnError)
	fs.SetOutput(msgs)
	fs.Usage = func() { usage(fs) }
	vv := fs.Bool("vv", false, "print debug messages")
	v := fs.Bool("v", false, "print informational messages")
	q := fs.Bool("q", false, "only print errors")
	format := fs.String("format", "text", "output format: text, toml or yaml")
	pickAt := fs.String("pick", "", "report the object under the viewport point \"x y\"")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logx.SetDefaultTo(msgs, logx.LevelFromFlags(*vv, *v, *q))
	logx.Output = msgs
	if fs.NArg() != 1 {
		usage(fs)
		return errors.New("xform: expected exactly one scene file")
	}

	filename := fs.Arg(0)
	sc, err := scene.Open(filename)
	if err != nil {
		return err
	}
	logx.PrintlnInfo("loaded", filename, "with", len(sc.Objects), "objects")
	res, err := sc.Evaluate()
	if err != nil {
		return err
	}
	for _, r := range res {
		if !r.InFront {
			logx.Printf(slog.LevelWarn, "%s (%s) is behind the camera\n", r.Name, r.Copy)
		}
	}
	var hit *scene.Hit
	if *pickAt != "" {
		if hit, err = pick(sc, *pickAt); err != nil {
			return err
		}
	}

	switch *format {
	case "text":
		return writeText(w, sc, res, hit)
	case "toml", "yaml":
		return scene.Write(struct {
			Results []scene.Result `toml:"results" yaml:"results"`
			Pick    *scene.Hit     `toml:"pick,omitempty" yaml:"pick,omitempty"`
		}{res, hit}, w, scene.Format(*format))
	}
	return fmt.Errorf("xform: unknown output format %q", *format)
}

// pick returns the object under the viewport point given as text,
// or nil if there is none.
func pick(sc *scene.Scene, at string) (*scene.Hit, error) {
	var pt math32.Vector2
	if err := pt.UnmarshalText([]byte(at)); err != nil {
		return nil, fmt.Errorf("xform: -pick: %w", err)
	}
	hit, ok, err := sc.Pick(pt)
	if err != nil {
		return nil, err
	}
	if !ok {
		logx.PrintlnInfo("nothing at", pt)
		return nil, nil
	}
	return &hit, nil
}

// writeText writes the results in a human readable form.
func writeText(w io.Writer, sc *scene.Scene, res []scene.Result, hit *scene.Hit) error {
	view := sc.Camera.View()
	proj, err := sc.Camera.Projection()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "view: %v\n", view)
	fmt.Fprintf(w, "projection: %v\n", proj)
	for _, r := range res {
		fmt.Fprintf(w, "\n%s (%s)\n", r.Name, r.Copy)
		fmt.Fprintf(w, "  world: %v\n", r.World)
		fmt.Fprintf(w, "  world view projection: %v\n", r.WorldViewProj)
		if r.Decomposed {
			fmt.Fprintf(w, "  scale: %v rotation: %v translation: %v\n", r.Scale, r.Rotation, r.Translation)
		} else {
			fmt.Fprintf(w, "  not decomposable\n")
		}
		fmt.Fprintf(w, "  bounds: %v - %v\n", r.Bounds.Min, r.Bounds.Max)
		fmt.Fprintf(w, "  ndc: %v - %v\n", r.NDC.Min, r.NDC.Max)
		if r.OnScreen {
			fmt.Fprintf(w, "  screen: %v\n", r.Screen.ToRect())
		}
	}
	if hit != nil {
		fmt.Fprintf(w, "\npick: %s (%s) at %v, distance %v\n", hit.Name, hit.Copy, hit.Point, hit.Distance)
	}
	return nil
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "Xform evaluates a TOML or YAML scene file and prints its matrices.\n")
	fmt.Fprintf(out, "Usage:\n")
	fmt.Fprintf(out, "\txform [flags] scene.toml\n")
	fmt.Fprintf(out, "Flags:\n")
	fs.PrintDefaults()
}
