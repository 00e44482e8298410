// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"fmt"

	"github.com/neonops/infrascene/scene"
)

// Pipeline is the CI/CD pipeline: breathing stages on a line, joined
// by pipes with flowing opacity and packets arcing from one stage to
// the next, with a status ring above each stage.
// With fewer than two stages the stages render with no pipes or
// packets.
func Pipeline(g *scene.Graph, d *scene.Description) {
	n := len(d.Stages)
	pos := make([]float32, n)
	for i, st := range d.Stages {
		x := spread(i, n, 4)
		pos[i] = x
		id := fmt.Sprintf("stage-%d", i)
		c := scene.Color(st.Color, cyan)
		g.AddGroup(&scene.Group{
			ID: id, Base: vec(x, 0, 0), Phase: float32(i),
			Motion: &scene.Wave{Breathe: 0.05, BreatheRate: 2, Sway: vec(0, 0.1, 0), SwayRate: vec(0, 1, 0)},
		})
		g.Add(&scene.Entity{ID: id + "-box", Parent: id, Size: vec(2, 1.5, 1), Color: c, Rest: glow(0.3, 1)})
		g.Add(&scene.Entity{
			ID: id + "-progress", Kind: scene.KindIndicator, Parent: id,
			Base: vec(0, -0.9, 0.51), Size: vec(1.8, 0.1, 0.02), Color: green, Rest: glow(0.8, 1),
		})
		label(g, id+"-label", id, st.Name, vec(0, -1.2, 0), white, 0.25)

		sc, ok := statusColors[st.Status]
		if !ok {
			g.Issue("stages", "stage %q: unknown status %q", st.Name, st.Status)
			sc = grey
		}
		ring := &scene.Entity{
			ID: id + "-status", Kind: scene.KindIndicator, Shape: scene.ShapeTorus,
			Base: vec(x, 1.5, 0), Size: vec(0.3, 0.08, 0.3), Color: sc, Rest: glow(1, 1),
		}
		if st.Status == "running" {
			ring.Motion = &scene.Wave{Spin: vec(0, 2, 0)}
		}
		g.Add(ring)
	}
	if n < 2 {
		if n == 1 {
			g.Issue("stages", "fewer than two stages, no connectors")
		}
		return
	}
	for i := range n - 1 {
		start, end := vec(pos[i], 0, 0), vec(pos[i+1], 0, 0)
		id := fmt.Sprintf("pipe-%d", i)
		connector(g, id, "", start, end, 0.1, cyan, glow(0.5, 0.3), &scene.Wave{Fade: 0.2, FadeRate: 3})
		packet(g, fmt.Sprintf("packet-%d", i), "", 0.2, green, &scene.Path{
			Start: start, End: end, Period: 8, Delay: 1.5 * float32(i),
			Arc: 1, Pulse: 0.2, PulseRate: 4,
		})
	}
	g.Add(&scene.Entity{
		ID: "grid", Shape: scene.ShapePlane, Base: vec(0, -2, 0), Size: vec(30, 0, 30),
		Color: scene.Color("#222244", chassis), Rest: wire(0, 0.5),
	})
}
