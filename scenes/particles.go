// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/anim"
	"github.com/neonops/infrascene/proximity"
	"github.com/neonops/infrascene/scene"
)

// Particles is the particle network: free particles bouncing inside a
// cube, joined by proximity edges that fade with distance, around a
// rising helix of flow particles.
func Particles(g *scene.Graph, d *scene.Description) {
	p := d.Particles
	rnd := seeded(d.Seed)
	half := p.Half
	if half <= 0 {
		half = 10
	}
	b := anim.Cube(half)
	palette := []color.RGBA{cyan}
	if len(p.Colors) > 0 {
		palette = palette[:0]
		for _, c := range p.Colors {
			palette = append(palette, scene.Color(c, cyan))
		}
	}
	// centered random in [-h, h)
	rnd2 := func(h float32) float32 {
		return (rnd.Float32() - 0.5) * 2 * h
	}

	n := count(g, "particles", p.Count)
	for i := range n {
		g.Add(&scene.Entity{
			ID: fmt.Sprintf("node-%d", i), Kind: scene.KindParticle, Shape: scene.ShapeSphere,
			Base: vec(rnd2(half), rnd2(half), rnd2(half)), Size: size(0.15),
			Color: palette[rnd.IntN(len(palette))], Rest: glow(0.6, 0.8), Linked: true,
			Motion: &scene.Bounce{Velocity: vec(rnd2(p.Speed), rnd2(p.Speed), rnd2(p.Speed)), Bounds: b},
		})
	}

	strategy := proximity.Naive
	if p.Strategy == "kdtree" {
		strategy = proximity.KDTree
	}
	g.SetLinks(scene.Links{
		Threshold: p.Threshold,
		Color:     scene.Color(p.EdgeColor, cyan),
		Strategy:  strategy,
		Tint:      p.Clusters,
	})

	nf := count(g, "particles", p.Flow)
	radius := 0.8 * half
	for i := range nf {
		f := float32(i) / float32(nf)
		a := f * 4 * math32.Pi
		g.Add(&scene.Entity{
			ID: fmt.Sprintf("flow-%d", i), Kind: scene.KindParticle, Shape: scene.ShapeSphere,
			Base:  vec(math32.Cos(a)*radius, (f-0.5)*2*half, math32.Sin(a)*radius),
			Phase: 0.1 * float32(i), Size: size(0.075), Color: purple, Rest: glow(0.5, 0.6),
			Motion: &scene.Rise{Min: -half, Max: half, Speed: 3, Sway: 0.3, SwayRate: 1},
		})
	}
}
