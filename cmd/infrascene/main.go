// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command infrascene shows procedural 3D infrastructure scenes,
// simulates them without a display, and prints their descriptions.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"github.com/neonops/infrascene/host"
	"github.com/neonops/infrascene/scene"
	"github.com/neonops/infrascene/scenes"
	"github.com/neonops/infrascene/viewer"
)

//go:generate core generate -add-types -add-funcs

func main() { //types:skip
	opts := cli.DefaultOptions("infrascene", "Procedural 3D scenes of infrastructure topologies.")
	opts.DefaultFiles = []string{"infrascene.toml"}
	cli.Run(opts, &Config{}, Run, Simulate, Describe)
}

// Run opens the interactive viewer on the selected scene.
func Run(c *Config) error { //cli:cmd -root
	log := c.logger()
	slog.SetDefault(log)
	overrides, err := c.overrides()
	if err != nil {
		return err
	}

	opts := viewer.Options{Scene: c.Scene, ReducedMotion: c.reducedMotion(), Logger: log}
	if path := errors.Log1(c.descriptions()); path != "" {
		w, err := host.NewWatcher(path)
		if err != nil {
			return err
		}
		w.Logger = log
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		w.Start(ctx)
		opts.Reloads = w.Reloads()
	}

	b := core.NewBody("Infrascene")
	v := viewer.New(b, opts)
	for _, d := range overrides {
		errors.Log(v.Selector.Apply(d))
	}
	b.RunMainWindow()
	v.Selector.Deactivate()
	return nil
}

// Describe prints the description of the selected scene, or the
// names of all scenes if none is selected.
func Describe(c *Config) error { //cli:cmd
	if c.Scene == "" {
		for _, nm := range scenes.Names() {
			fmt.Println(nm)
		}
		return nil
	}
	d, err := c.description(c.Scene)
	if err != nil {
		return err
	}
	f := scene.TOML
	if c.Format == "yaml" {
		f = scene.YAML
	}
	b, err := scene.Marshal(d, f)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}
