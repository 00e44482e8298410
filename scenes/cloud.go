// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/scene"
)

// Cloud is the cloud topology: horizontal layers of services slowly
// turning around a central core, above a floating platform, with
// data-flow packets rising along lines through the layers.
func Cloud(g *scene.Graph, d *scene.Description) {
	g.Add(&scene.Entity{
		ID: "platform", Shape: scene.ShapeCylinder, Base: vec(0, -8, 0),
		Size: vec(10, 0.5, 8), Color: scene.Color("#1a1a24", night), Rest: glow(0.1, 0.6),
		Motion: &scene.Wave{Bob: vec(0, 0.3, 0), BobRate: vec(0, 0.5, 0)},
	})
	g.Add(&scene.Entity{
		ID: "core", Shape: scene.ShapeSphere, Size: size(1),
		Color: purple, Rest: glow(0.8, 0.6),
	})

	for li, l := range d.Layers {
		lid := fmt.Sprintf("layer-%d", li)
		g.AddGroup(&scene.Group{
			ID: lid, Base: vec(0, l.Y, 0),
			Motion: &scene.Wave{Spin: vec(0, 1.0/8, 0)},
		})
		lc := scene.Color(l.Color, cyan)
		for si, s := range l.Services {
			service(g, fmt.Sprintf("%s-%d", lid, si), lid, s, lc)
		}
	}

	n := count(g, "flows", d.Flows)
	for i := range n {
		angle := float32(i) / float32(n) * 2 * math32.Pi
		c, s := math32.Cos(angle), math32.Sin(angle)
		start, end := vec(c*3, -6, s*3), vec(c*5, 6, s*5)
		id := fmt.Sprintf("flow-%d", i)
		connector(g, id+"-line", "", start, end, 0.02, cyan, glow(0.5, 0.5), nil)
		packet(g, id, "", 0.1, cyan, &scene.Path{Start: start, End: end, Period: 4, Delay: 0.5 * float32(i)})
	}
}

var serviceShapes = map[string]scene.Shapes{
	"compute":  scene.ShapeBox,
	"storage":  scene.ShapeSphere,
	"database": scene.ShapeCone,
	"network":  scene.ShapeSphere,
}

// service adds one service node with its label and pulsing ring.
func service(g *scene.Graph, id, layer string, s scene.Service, lc color.RGBA) {
	c := scene.Color(s.Color, lc)
	shape, ok := serviceShapes[s.Kind]
	if !ok {
		g.Issue("layers", "service %q: unknown kind %q", s.Name, s.Kind)
	}
	if s.Shape != "" {
		if shape, ok = scene.ShapeFromString(s.Shape); !ok {
			g.Issue("layers", "service %q: unknown shape %q", s.Name, s.Shape)
		}
	}
	pos := s.Pos.V()
	e := &scene.Entity{ID: id, Parent: layer, Shape: shape, Base: pos, Color: c, Size: size(1), Rest: wire(0.3, 1)}
	switch s.Kind {
	case "storage":
		e.Size = size(0.6)
		e.Rest = glow(0.3, 0.7)
	case "database":
		e.Size = vec(0.6, 1.2, 0.6)
	case "network":
		e.Size = size(0.4)
		e.Rest = glow(0.5, 1)
		g.Add(&scene.Entity{
			ID: id + "-shell", Parent: layer, Shape: scene.ShapeSphere, Base: pos,
			Size: size(0.6), Color: c, Rest: wire(0.2, 0.3),
		})
	}
	g.Add(e)
	label(g, id+"-label", layer, s.Name, pos.Add(vec(0, 1.5, 0)), white, 0.3)
	g.Add(&scene.Entity{
		ID: id + "-ring", Kind: scene.KindIndicator, Parent: layer, Shape: scene.ShapeTorus,
		Base: pos, BaseRot: vec(math32.Pi/2, 0, 0), Size: vec(1, 0.05, 1),
		Color: c, Rest: glow(0.5, 0.4),
		Motion: &scene.Wave{Breathe: 0.3, BreatheRate: 2},
	})
}
