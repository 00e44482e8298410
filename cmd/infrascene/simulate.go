// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/neonops/infrascene/host"
	"github.com/neonops/infrascene/scene"
)

// statSurface is a surface that draws nothing and records statistics
// about the frames synced to it.
type statSurface struct {
	entities int
	frames   int
	edges    int
	maxEdges int
	final    *scene.Graph
}

func (s *statSurface) Mount(g *scene.Graph) error {
	s.entities = g.Len()
	s.frames, s.edges, s.maxEdges = 0, 0, 0
	s.final = g
	return nil
}

func (s *statSurface) Sync(g *scene.Graph) {
	s.frames++
	n := len(g.Edges())
	s.edges += n
	s.maxEdges = max(s.maxEdges, n)
}

func (s *statSurface) Unmount() {}

// Simulate runs the selected scene without a display for a number of
// frames and prints statistics about it.
func Simulate(c *Config) error { //cli:cmd
	return simulate(c, os.Stdout)
}

func simulate(c *Config, w io.Writer) error {
	log := c.logger()
	name := c.Scene
	if name == "" {
		name = "particles"
	}
	fps := c.FPS
	if fps <= 0 {
		fps = 60
	}
	ss := &statSurface{}
	sel := host.New(ss, host.Options{Visible: true, Logger: log, ReducedMotion: c.reducedMotion})
	ds, err := c.overrides()
	if err != nil {
		return err
	}
	for _, d := range ds {
		if err := sel.Apply(d); err != nil {
			return err
		}
	}
	if err := sel.Activate(name); err != nil {
		return err
	}
	dt := time.Second / time.Duration(fps)
	start := time.Now()
	for range c.Frames {
		sel.Tick(dt)
	}
	took := time.Since(start)
	g := sel.Graph()
	eye := g.EyePos()
	fmt.Fprintf(w, "scene:     %s (%s)\n", g.Name, g.Title)
	fmt.Fprintf(w, "entities:  %d in %d groups\n", ss.entities, len(g.Groups()))
	fmt.Fprintf(w, "frames:    %d at %d fps, %v simulated in %v\n", c.Frames, fps, time.Duration(c.Frames)*dt, took)
	if ss.frames > 0 && ss.maxEdges > 0 {
		fmt.Fprintf(w, "edges:     %.1f mean, %d max\n", float64(ss.edges)/float64(ss.frames), ss.maxEdges)
	}
	fmt.Fprintf(w, "camera:    (%.2f, %.2f, %.2f) %s\n", eye.X, eye.Y, eye.Z, sel.Rig().State())
	if len(g.Issues) > 0 {
		fmt.Fprintf(w, "issues:    %d\n", len(g.Issues))
	}
	sel.Deactivate()
	return nil
}
