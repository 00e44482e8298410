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

// faceOffset is the distance of the face labels from the cube center,
// just outside the outer cube.
const faceOffset = 2.01

// cubeFaces are the positions and rotations of the six cube faces.
var cubeFaces = []struct{ pos, rot math32.Vector3 }{
	{vec(0, 0, faceOffset), vec(0, 0, 0)},
	{vec(0, 0, -faceOffset), vec(0, math32.Pi, 0)},
	{vec(faceOffset, 0, 0), vec(0, math32.Pi/2, 0)},
	{vec(-faceOffset, 0, 0), vec(0, -math32.Pi/2, 0)},
	{vec(0, faceOffset, 0), vec(-math32.Pi/2, 0, 0)},
	{vec(0, -faceOffset, 0), vec(math32.Pi/2, 0, 0)},
}

// networkLines are the endpoints of the lines turning around the cube.
var networkLines = [][2]math32.Vector3{
	{vec(-6, 0, 0), vec(6, 0, 0)},
	{vec(0, -6, 0), vec(0, 6, 0)},
	{vec(0, 0, -6), vec(0, 0, 6)},
	{vec(-4, -4, 0), vec(4, 4, 0)},
	{vec(-4, 4, 0), vec(4, -4, 0)},
}

// DevOpsCube is the toolchain cube: a pulsing wireframe cube with a
// tool on each face, wobbling as it turns and bobs, inside a set of
// network lines turning about the vertical axis.
func DevOpsCube(g *scene.Graph, d *scene.Description) {
	lineColor := scene.Color("#22d3ee", cyan)
	g.AddGroup(&scene.Group{ID: "network", Motion: &scene.Wave{Spin: vec(0, 1.0/4, 0)}})
	for i, l := range networkLines {
		connector(g, fmt.Sprintf("network-%d", i), "network", l[0], l[1], 0.03, lineColor, glow(0.5, 0.3), nil)
	}

	g.AddGroup(&scene.Group{ID: "cube", Motion: &scene.Wave{
		Spin:      vec(1.0/8, 1.0/6, 0),
		Sway:      vec(0.2, 0.2, 0),
		SwayRate:  vec(1.0/4, 1.0/4, 0),
		SwayPhase: vec(0, math32.Pi/2, 0),
		Bob:       vec(0, 0.3, 0),
		BobRate:   vec(0, 0.5, 0),
	}})
	g.Add(&scene.Entity{
		ID: "cube-outer", Parent: "cube", Size: size(4), Color: cyan, Rest: wire(0.5, 0.4),
		Motion: &scene.Wave{Breathe: 0.05, BreatheRate: 2},
	})
	g.Add(&scene.Entity{
		ID: "cube-inner", Parent: "cube", Size: size(3), BaseRot: vec(0, math32.Pi/4, 0),
		Color: purple, Rest: wire(0.3, 0.3),
	})

	faces := d.Faces
	if len(faces) > len(cubeFaces) {
		g.Issue("faces", "%d faces on a cube, showing %d", len(faces), len(cubeFaces))
		faces = faces[:len(cubeFaces)]
	}
	for i, f := range faces {
		g.Add(&scene.Entity{
			ID: fmt.Sprintf("face-%d", i), Kind: scene.KindLabel, Parent: "cube", Text: f.Name,
			Base: cubeFaces[i].pos, BaseRot: cubeFaces[i].rot, Size: size(0.5),
			Color: scene.Color(f.Color, white), Rest: scene.Material{Opacity: 0.9},
		})
	}

	pink := scene.Color("#f472b6", purple)
	orbits := []struct {
		pos math32.Vector3
		c   color.RGBA
	}{{vec(5, 0, 0), cyan}, {vec(-5, 0, 0), purple}, {vec(0, 5, 0), pink}}
	for i, o := range orbits {
		g.Add(&scene.Entity{
			ID: fmt.Sprintf("orbit-%d", i), Kind: scene.KindParticle, Shape: scene.ShapeSphere, Parent: "cube",
			Base: o.pos, Size: size(0.2), Color: o.c, Rest: glow(1, 1),
		})
	}
}
