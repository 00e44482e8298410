// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"image/color"
	"math/rand/v2"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/scene"
)

var (
	cyan    = color.RGBA{0x00, 0xd4, 0xff, 0xff}
	purple  = color.RGBA{0xa8, 0x55, 0xf7, 0xff}
	green   = color.RGBA{0x00, 0xff, 0x88, 0xff}
	amber   = color.RGBA{0xff, 0xaa, 0x00, 0xff}
	grey    = color.RGBA{0x88, 0x88, 0x88, 0xff}
	red     = color.RGBA{0xff, 0x44, 0x44, 0xff}
	white   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	k8sBlue = color.RGBA{0x32, 0x6c, 0xe5, 0xff}
	chassis = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	night   = color.RGBA{0x0a, 0x0a, 0x0f, 0xff}
)

// statusColors are the colors of the status indicators.
var statusColors = map[string]color.RGBA{
	"success": green,
	"running": amber,
	"pending": grey,
}

// configure sets the camera, lights and background of the graph,
// filling in defaults for anything the description leaves unset.
func configure(g *scene.Graph, d *scene.Description) {
	cam := d.Camera
	def := scene.DefaultCamera()
	if cam.Pos == (scene.Vec{}) {
		cam.Pos = def.Pos
	}
	if cam.FOV <= 0 {
		cam.FOV = def.FOV
	}
	if cam.MaxDistance <= 0 || cam.MaxDistance < cam.MinDistance {
		cam.MinDistance, cam.MaxDistance = def.MinDistance, def.MaxDistance
	}
	g.Camera = cam
	g.Lights = d.Lights
	if len(g.Lights) == 0 {
		g.Lights = []scene.Light{{Kind: scene.LightAmbient, Intensity: 0.5}}
	}
	g.Background = scene.Color(d.Background, night)
}

// seeded returns a random generator that always produces the same
// sequence for a seed.
func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// count returns n, recording an issue if it is negative.
func count(g *scene.Graph, field string, n int) int {
	if n < 0 {
		g.Issue(field, "negative count %d", n)
		return 0
	}
	return n
}

func vec(x, y, z float32) math32.Vector3 {
	return math32.Vec3(x, y, z)
}

func size(r float32) math32.Vector3 {
	return math32.Vec3(r, r, r)
}

// label adds a text label.
func label(g *scene.Graph, id, parent, text string, pos math32.Vector3, c color.RGBA, height float32) *scene.Entity {
	return g.Add(&scene.Entity{
		ID: id, Kind: scene.KindLabel, Parent: parent, Base: pos, Text: text,
		Color: c, Size: vec(height, height, height), Rest: scene.Material{Opacity: 1},
	})
}

// glow is a fully lit material with the given opacity.
func glow(emissive, opacity float32) scene.Material {
	return scene.Material{Emissive: emissive, Opacity: opacity}
}

// wire is a wireframe material.
func wire(emissive, opacity float32) scene.Material {
	return scene.Material{Emissive: emissive, Opacity: opacity, Wireframe: true}
}

// connector adds a line between two fixed points.
func connector(g *scene.Graph, id, parent string, start, end math32.Vector3, width float32, c color.RGBA, mat scene.Material, m scene.Motion) *scene.Entity {
	return g.Add(&scene.Entity{
		ID: id, Kind: scene.KindConnector, Shape: scene.ShapeLine, Parent: parent,
		Segment: &scene.Segment{Start: start, End: end, Width: width},
		Color:   c, Rest: mat, Motion: m,
	})
}

// packet adds a small sphere moving with m.
func packet(g *scene.Graph, id, parent string, radius float32, c color.RGBA, m scene.Motion) *scene.Entity {
	return g.Add(&scene.Entity{
		ID: id, Kind: scene.KindParticle, Shape: scene.ShapeSphere, Parent: parent,
		Size: size(radius), Color: c, Rest: glow(1, 1), Motion: m,
	})
}

// spread returns the x position of item i of n spaced evenly
// around zero.
func spread(i, n int, spacing float32) float32 {
	return (float32(i) - float32(n-1)/2) * spacing
}
