// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/jinzhu/copier"
)

// Vec is a vector in description files, written as a three
// element array.
type Vec [3]float32

// V returns the vector as a [math32.Vector3].
func (v Vec) V() math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}

// DescriptionError is a configuration problem in a [Description].
// The affected part of the scene is omitted and the rest renders.
type DescriptionError struct {

	// Scene is the name of the scene.
	Scene string

	// Field is the description field, for example "stages".
	Field string

	Msg string
}

func (e *DescriptionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("scene %q: %s", e.Scene, e.Msg)
	}
	return fmt.Sprintf("scene %q: %s: %s", e.Scene, e.Field, e.Msg)
}

// Camera is the camera start pose and interaction limits.
type Camera struct {
	Pos    Vec `toml:"pos" yaml:"pos"`
	Target Vec `toml:"target" yaml:"target"`

	// FOV is the vertical field of view in degrees.
	FOV float32 `toml:"fov" yaml:"fov"`

	MinDistance float32 `toml:"min_distance" yaml:"min_distance"`
	MaxDistance float32 `toml:"max_distance" yaml:"max_distance"`

	AutoRotate bool `toml:"auto_rotate" yaml:"auto_rotate"`

	// AutoRotateSpeed is in revolutions per minute, so that 1 is
	// one full turn every 60 seconds.
	AutoRotateSpeed float32 `toml:"auto_rotate_speed" yaml:"auto_rotate_speed"`

	// Zoom enables wheel zoom.
	Zoom bool `toml:"zoom" yaml:"zoom"`
}

// DefaultCamera returns the camera used when a description leaves
// it unset.
func DefaultCamera() Camera {
	return Camera{Pos: Vec{0, 5, 15}, FOV: 60, MinDistance: 5, MaxDistance: 30, AutoRotate: true, AutoRotateSpeed: 0.5, Zoom: true}
}

// Lights are the kinds of light.
type Lights string

const (
	LightAmbient     Lights = "ambient"
	LightDirectional Lights = "directional"
	LightPoint       Lights = "point"
	LightSpot        Lights = "spot"
)

// Light is one light of a scene.
type Light struct {
	Kind      Lights  `toml:"kind" yaml:"kind"`
	Pos       Vec     `toml:"pos" yaml:"pos"`
	Color     string  `toml:"color" yaml:"color"`
	Intensity float32 `toml:"intensity" yaml:"intensity"`
}

// Service is one service node of a topology layer.
type Service struct {
	Name string `toml:"name" yaml:"name"`

	// Pos is the position within the layer.
	Pos Vec `toml:"pos" yaml:"pos"`

	Color string `toml:"color" yaml:"color"`

	// Kind is one of compute, storage, database or network.
	Kind string `toml:"kind" yaml:"kind"`

	// Shape overrides the shape of the kind.
	Shape string `toml:"shape" yaml:"shape"`
}

// Layer is one horizontal layer of the cloud topology.
type Layer struct {
	Name     string    `toml:"name" yaml:"name"`
	Y        float32   `toml:"y" yaml:"y"`
	Color    string    `toml:"color" yaml:"color"`
	Services []Service `toml:"services" yaml:"services"`
}

// Stage is one stage of a pipeline.
type Stage struct {
	Name string `toml:"name" yaml:"name"`

	// Status is one of success, running or pending.
	Status string `toml:"status" yaml:"status"`

	Color string `toml:"color" yaml:"color"`
}

// Container is one container of a pod.
type Container struct {
	Name  string `toml:"name" yaml:"name"`
	Color string `toml:"color" yaml:"color"`

	// Status is one of running, pending or stopped.
	Status string `toml:"status" yaml:"status"`
}

// Pod is one pod of the container orchestration scene.
type Pod struct {
	Name       string      `toml:"name" yaml:"name"`
	Pos        Vec         `toml:"pos" yaml:"pos"`
	Containers []Container `toml:"containers" yaml:"containers"`
}

// Face is a tool shown on one face of the DevOps cube.
type Face struct {
	Name  string `toml:"name" yaml:"name"`
	Color string `toml:"color" yaml:"color"`
}

// Rack is one server rack.
type Rack struct {
	Name    string `toml:"name" yaml:"name"`
	Pos     Vec    `toml:"pos" yaml:"pos"`
	Servers int    `toml:"servers" yaml:"servers"`

	// Active is the fraction of servers that are active.
	Active float32 `toml:"active" yaml:"active"`
}

// DataStream is a flow of particles between two named endpoints.
// An endpoint is "core" for the core switch, a rack name for the
// bottom port of that rack, or a rack name with a "/top" suffix for
// its top port.
type DataStream struct {
	From   string  `toml:"from" yaml:"from"`
	To     string  `toml:"to" yaml:"to"`
	Count  int     `toml:"count" yaml:"count"`
	Period float32 `toml:"period" yaml:"period"`
	Delay  float32 `toml:"delay" yaml:"delay"`
	Color  string  `toml:"color" yaml:"color"`
}

// CoreEndpoint is the stream endpoint of the core switch.
const CoreEndpoint = "core"

// RackName returns the rack name of a stream endpoint that is not
// [CoreEndpoint]. It is "" for an empty endpoint, which names no rack.
func RackName(endpoint string) string {
	return strings.TrimSuffix(endpoint, "/top")
}

// Particles is a field of free particles with proximity edges.
type Particles struct {
	Count int `toml:"count" yaml:"count"`

	// Half is the half size of the bounding cube.
	Half float32 `toml:"half" yaml:"half"`

	// Speed is the maximum speed per axis, in units per second.
	Speed float32 `toml:"speed" yaml:"speed"`

	// Threshold is the proximity edge distance.
	Threshold float32 `toml:"threshold" yaml:"threshold"`

	EdgeColor string `toml:"edge_color" yaml:"edge_color"`

	// Colors is the palette particles pick their color from.
	Colors []string `toml:"colors" yaml:"colors"`

	// Strategy is the pair search: naive or kdtree.
	Strategy string `toml:"strategy" yaml:"strategy"`

	// Clusters tints particles by the size of their cluster.
	Clusters bool `toml:"clusters" yaml:"clusters"`

	// Flow is the number of particles in the rising helix.
	Flow int `toml:"flow" yaml:"flow"`
}

// Stars is a rotating point cloud background.
type Stars struct {
	Count  int     `toml:"count" yaml:"count"`
	Radius float32 `toml:"radius" yaml:"radius"`
	Color  string  `toml:"color" yaml:"color"`
}

// Description is the static template a [Graph] is built from.
// A graph is built from a [Description.Clone], so later edits of the
// description never reach a running scene.
type Description struct {

	// Name is the registered scene composition.
	Name string `toml:"name" yaml:"name"`

	Title string `toml:"title" yaml:"title"`

	// Seed seeds the random parts of the layout, so that a scene
	// looks the same every time it is built.
	Seed int64 `toml:"seed" yaml:"seed"`

	Camera     Camera  `toml:"camera" yaml:"camera"`
	Lights     []Light `toml:"lights" yaml:"lights"`
	Background string  `toml:"background" yaml:"background"`

	Layers []Layer `toml:"layers" yaml:"layers"`

	// Flows is the number of data-flow packets.
	Flows int `toml:"flows" yaml:"flows"`

	Stages []Stage `toml:"stages" yaml:"stages"`

	Pods []Pod `toml:"pods" yaml:"pods"`

	Racks   []Rack       `toml:"racks" yaml:"racks"`
	Streams []DataStream `toml:"streams" yaml:"streams"`

	Particles Particles `toml:"particles" yaml:"particles"`

	Stars Stars `toml:"stars" yaml:"stars"`

	// Faces are the tools on the faces of the DevOps cube, at most six,
	// in the order front, back, right, left, top, bottom.
	Faces []Face `toml:"faces" yaml:"faces"`
}

// Clone returns a deep copy of the description.
func (d *Description) Clone() *Description {
	c := &Description{}
	errors.Log(copier.CopyWithOption(c, d, copier.Option{DeepCopy: true}))
	return c
}

// Validate returns the configuration problems of the description,
// joined with [errors.Join], or nil. Every problem is a
// [*DescriptionError]; none of them prevents building a graph.
func (d *Description) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &DescriptionError{Scene: d.Name, Field: field, Msg: fmt.Sprintf(format, args...)})
	}
	if d.Name == "" {
		add("name", "missing")
	}
	c := d.Camera
	if c.MinDistance < 0 || (c.MaxDistance != 0 && c.MaxDistance < c.MinDistance) {
		add("camera", "invalid distance range [%g, %g]", c.MinDistance, c.MaxDistance)
	}
	for i, l := range d.Lights {
		switch l.Kind {
		case LightAmbient, LightDirectional, LightPoint, LightSpot:
		default:
			add("lights", "light %d: unknown kind %q", i, l.Kind)
		}
		checkColor(add, "lights", l.Color)
	}
	checkColor(add, "background", d.Background)
	for _, l := range d.Layers {
		checkColor(add, "layers", l.Color)
	}
	if len(d.Stages) == 1 {
		add("stages", "a pipeline needs at least two stages for connectors")
	}
	for _, s := range d.Stages {
		checkColor(add, "stages", s.Color)
	}
	for _, p := range d.Pods {
		for _, c := range p.Containers {
			checkColor(add, "pods", c.Color)
		}
	}
	racks := map[string]bool{}
	for _, r := range d.Racks {
		if r.Name != "" {
			racks[r.Name] = true
		}
		if r.Servers < 0 {
			add("racks", "rack %q: negative server count %d", r.Name, r.Servers)
		}
		if r.Active < 0 || r.Active > 1 {
			add("racks", "rack %q: active fraction %g outside [0, 1]", r.Name, r.Active)
		}
	}
	for _, s := range d.Streams {
		for _, end := range []string{s.From, s.To} {
			if end == CoreEndpoint {
				continue
			}
			if rn := RackName(end); rn == "" || !racks[rn] {
				add("streams", "unknown endpoint %q", end)
			}
		}
	}
	p := d.Particles
	if p.Count < 0 || p.Flow < 0 {
		add("particles", "negative count")
	}
	if p.Count > 0 && p.Half <= 0 {
		add("particles", "particles need a positive half size")
	}
	switch p.Strategy {
	case "", "naive", "kdtree":
	default:
		add("particles", "unknown strategy %q", p.Strategy)
	}
	checkColor(add, "particles", p.EdgeColor)
	for _, c := range p.Colors {
		checkColor(add, "particles", c)
	}
	if d.Stars.Count < 0 {
		add("stars", "negative count")
	}
	if len(d.Faces) > 6 {
		add("faces", "%d faces on a cube", len(d.Faces))
	}
	for _, f := range d.Faces {
		checkColor(add, "faces", f.Color)
	}
	return errors.Join(errs...)
}

func checkColor(add func(field, format string, args ...any), field, s string) {
	if s == "" {
		return
	}
	if _, err := colors.FromHex(s); err != nil {
		add(field, "invalid color %q", s)
	}
}

// Color parses a hex color, returning def if s is empty or invalid.
func Color(s string, def color.RGBA) color.RGBA {
	if s == "" {
		return def
	}
	c, err := colors.FromHex(s)
	if err != nil {
		return def
	}
	return c
}
