// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenes provides the scene compositions: functions that
// assemble a [scene.Graph] from a [scene.Description], registered
// by name, along with the embedded default descriptions.
package scenes

import (
	"embed"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/neonops/infrascene/scene"
)

// Composer adds the entities of a composition to the graph.
// Configuration problems are recorded with [scene.Graph.Issue]
// and the affected decorations are left out.
type Composer func(g *scene.Graph, d *scene.Description)

// ErrUnknownScene is returned for a scene name with no registered
// composition.
var ErrUnknownScene = errors.New("scenes: unknown scene")

// Registry is the set of compositions by name.
var Registry = map[string]Composer{}

// Register adds a composition to the [Registry].
func Register(name string, c Composer) {
	Registry[name] = c
}

func init() {
	Register("cloud", Cloud)
	Register("pipeline", Pipeline)
	Register("containers", Containers)
	Register("racks", Racks)
	Register("particles", Particles)
	Register("devopscube", DevOpsCube)
	Register("starfield", Starfield)
}

// Names returns the registered scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for nm := range Registry {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

//go:embed descriptions/*.toml
var descriptions embed.FS

// Default returns the embedded default description for the
// given scene name.
func Default(name string) (*scene.Description, error) {
	d, err := scene.LoadFS(descriptions, path.Join("descriptions", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownScene, name, err)
	}
	return d, nil
}

// Defaults returns all embedded default descriptions, in the order
// they are shown.
func Defaults() []*scene.Description {
	var ds []*scene.Description
	for _, nm := range Order {
		if d, err := Default(nm); errors.Log(err) == nil {
			ds = append(ds, d)
		}
	}
	return ds
}

// Order is the order in which the default scenes are shown.
var Order = []string{"cloud", "pipeline", "containers", "racks", "particles", "devopscube", "starfield"}

// Build builds a graph from a copy of the description, using the
// composition registered under d.Name. A composition never panics
// past Build: a panic is recovered and recorded as an issue, and the
// entities added before it are kept. The returned error joins the
// issues of the graph; the graph is usable whenever it is non-nil.
func Build(d *scene.Description) (g *scene.Graph, err error) {
	c, ok := Registry[d.Name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, d.Name)
	}
	d = d.Clone()
	g = scene.NewGraph(d.Name)
	g.Title = d.Title
	configure(g, d)
	defer func() {
		if r := recover(); r != nil {
			slog.Error("scenes: composition panicked", "scene", d.Name, "panic", r)
			g.Issue("", "composition failed: %v", r)
		}
		err = errors.Join(g.Issues...)
	}()
	c(g, d)
	return g, nil
}

// BuildName builds the default description of the given scene.
func BuildName(name string) (*scene.Graph, error) {
	d, err := Default(strings.ToLower(name))
	if err != nil {
		return nil, err
	}
	return Build(d)
}
