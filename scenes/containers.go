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

// containerOffsets are the positions of the first containers in a pod.
// Further containers go on a circle around the pod center.
var containerOffsets = []math32.Vector3{vec(0, 0.8, 0), vec(-0.8, 0, 0), vec(0.8, 0, 0)}

var containerStatusColors = map[string]color.RGBA{
	"running": green,
	"pending": amber,
	"stopped": grey,
}

func containerOffset(i, n int) math32.Vector3 {
	if n <= len(containerOffsets) {
		return containerOffsets[i]
	}
	a := math32.Pi/2 + float32(i)/float32(n)*2*math32.Pi
	return vec(0.9*math32.Cos(a), 0.9*math32.Sin(a), 0)
}

// Containers is the container orchestration scene: a spinning load
// balancer sending traffic to slowly turning pods of containers.
func Containers(g *scene.Graph, d *scene.Description) {
	lb := "lb"
	g.AddGroup(&scene.Group{ID: lb, Base: vec(0, 6, 0), Motion: &scene.Wave{Spin: vec(0, 0.5, 0)}})
	g.Add(&scene.Entity{
		ID: "lb-body", Parent: lb, Shape: scene.ShapeCylinder, Size: vec(1, 0.5, 1),
		Color: scene.Color("#f39c12", amber), Rest: glow(0.4, 1),
	})
	label(g, "lb-label", lb, "Load Balancer", vec(0, 0.5, 0), white, 0.25)
	for i := range 6 {
		a := float32(i) / 6 * 2 * math32.Pi
		g.Add(&scene.Entity{
			ID: fmt.Sprintf("lb-traffic-%d", i), Kind: scene.KindIndicator, Parent: lb, Shape: scene.ShapeSphere,
			Base: vec(math32.Cos(a)*1.2, 0, math32.Sin(a)*1.2), Size: size(0.1), Color: green, Rest: glow(1, 1),
		})
	}

	for pi, p := range d.Pods {
		id := fmt.Sprintf("pod-%d", pi)
		pos := p.Pos.V()
		g.AddGroup(&scene.Group{
			ID: id, Base: pos, BaseRot: vec(0, float32(pi), 0), Phase: float32(pi),
			Motion: &scene.Wave{Spin: vec(0, 0.2, 0), Bob: vec(0, 0.1, 0), BobRate: vec(0, 1, 0)},
		})
		g.Add(&scene.Entity{
			ID: id + "-boundary", Parent: id, Shape: scene.ShapeSphere, Size: size(1.8),
			Color: k8sBlue, Rest: wire(0.2, 0.1),
		})
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("POD-%d", pi+1)
		}
		label(g, id+"-label", id, name, vec(0, -2.2, 0), k8sBlue, 0.2)
		for ci, c := range p.Containers {
			container(g, fmt.Sprintf("%s-c%d", id, ci), id, c, containerOffset(ci, len(p.Containers)))
		}
		packet(g, fmt.Sprintf("traffic-%d", pi), "", 0.15, cyan, &scene.Path{
			Start: vec(0, 5.5, 0), End: pos, Period: 4, Delay: 0.8 * float32(pi), Shrink: 0.5,
		})
	}

	g.Add(&scene.Entity{
		ID: "platform", Shape: scene.ShapePlane, Base: vec(0, -3, 0), Size: vec(24, 0, 24),
		Color: night, Rest: glow(0.1, 1),
	})
}

// container adds one container group: body, glow, label and status light.
// Running containers breathe and their glow pulses.
func container(g *scene.Graph, id, pod string, c scene.Container, offset math32.Vector3) {
	col := scene.Color(c.Color, cyan)
	status := c.Status
	if status == "" {
		status = "running"
	}
	sc, ok := containerStatusColors[status]
	if !ok {
		g.Issue("pods", "container %q: unknown status %q", c.Name, c.Status)
		sc = grey
	}
	running := status == "running"
	gp := &scene.Group{ID: id, Parent: pod, Base: offset}
	if running {
		gp.Motion = &scene.Wave{Breathe: 0.02, BreatheRate: 2}
	}
	g.AddGroup(gp)
	body := glow(0.1, 0.8)
	if running {
		body.Emissive = 0.3
		g.Add(&scene.Entity{
			ID: id + "-glow", Parent: id, Shape: scene.ShapeSphere, Size: size(0.8),
			Color: col, Rest: glow(0.5, 0.2), Motion: &scene.Wave{Breathe: 0.3, BreatheRate: 3},
		})
	}
	g.Add(&scene.Entity{ID: id + "-body", Parent: id, Size: size(1), Color: col, Rest: body})
	label(g, id+"-label", id, c.Name, vec(0, -0.7, 0), white, 0.12)
	g.Add(&scene.Entity{
		ID: id + "-status", Kind: scene.KindIndicator, Parent: id, Shape: scene.ShapeSphere,
		Base: vec(0.6, 0.6, 0), Size: size(0.08), Color: sc, Rest: glow(1, 1),
	})
}
