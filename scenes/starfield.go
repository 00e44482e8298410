// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/scene"
)

// Starfield is the page background: a slowly turning cloud of stars
// and three floating wireframe solids.
func Starfield(g *scene.Graph, d *scene.Description) {
	rnd := seeded(d.Seed)
	g.AddGroup(&scene.Group{ID: "tilt", BaseRot: vec(0, 0, math32.Pi/4)})
	g.AddGroup(&scene.Group{ID: "stars", Parent: "tilt", Motion: &scene.Wave{Spin: vec(-1.0/10, -1.0/15, 0)}})
	r := d.Stars.Radius
	if r <= 0 {
		r = 50
	}
	c := scene.Color(d.Stars.Color, scene.Color("#00f0ff", cyan))
	n := count(g, "stars", d.Stars.Count)
	for i := range n {
		g.Add(&scene.Entity{
			ID: fmt.Sprintf("star-%d", i), Kind: scene.KindParticle, Shape: scene.ShapeSphere, Parent: "stars",
			Base: vec((rnd.Float32()-0.5)*2*r, (rnd.Float32()-0.5)*2*r, (rnd.Float32()-0.5)*2*r),
			Size: size(0.075), Color: c, Rest: glow(1, 0.6),
		})
	}

	g.Add(&scene.Entity{
		ID: "icosahedron", Shape: scene.ShapeIcosahedron, Base: vec(3, 0, -5), Size: size(1),
		Color: purple, Rest: wire(0.5, 1),
		Motion: &scene.Wave{
			Sway: vec(1.0/8, 1.0/8, 0), SwayRate: vec(0.25, 0.25, 0), SwayPhase: vec(math32.Pi/2, 0, 0),
			Bob: vec(0, 1.0/3, 0), BobRate: vec(0, 0.5, 0),
		},
	})
	g.Add(&scene.Entity{
		ID: "knot", Shape: scene.ShapeTorus, Base: vec(-3, -2, -8), Size: vec(0.8, 0.3, 0.8),
		Color: scene.Color("#06b6d4", cyan), Rest: wire(0.5, 1),
		Motion: &scene.Wave{
			Sway: vec(1.0/6, 0, 1.0/6), SwayRate: vec(1.0/3, 0, 1.0/3), SwayPhase: vec(0, 0, math32.Pi/2),
			Bob: vec(2, 0, 0), BobRate: vec(0.5, 0, 0), BobPhase: vec(math32.Pi/2, 0, 0),
		},
	})
	g.Add(&scene.Entity{
		ID: "octahedron", Shape: scene.ShapeOctahedron, Base: vec(0, 2, -6), Size: size(1),
		Color: scene.Color("#ec4899", purple), Rest: wire(0.5, 1),
		Motion: &scene.Wave{Spin: vec(0, 0.5, 0), Bob: vec(0, 0, 2), BobRate: vec(0, 0, 1)},
	})
}
