// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/scene"
)

// corePos is the position of the core switch.
var corePos = vec(0, -3.5, 1.5)

// Racks is the server room: racks of servers with blinking status
// lights, a pulsing core switch, and particle streams between the
// racks and the switch. The active servers are chosen by the seeded
// random generator, so a description always gives the same room.
func Racks(g *scene.Graph, d *scene.Description) {
	rnd := seeded(d.Seed)
	racks := map[string]math32.Vector3{}
	index := 0
	for ri, r := range d.Racks {
		pos := r.Pos.V()
		id := fmt.Sprintf("rack-%d", ri)
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("RACK-%d", ri+1)
		}
		if r.Name != "" {
			racks[r.Name] = pos
		}
		g.Add(&scene.Entity{
			ID: id, Base: pos, Size: vec(2, 5, 1), Color: night, Rest: wire(0, 0.3),
		})
		label(g, id+"-label", "", strings.ToUpper(name), pos.Add(vec(0, 3, 0)), cyan, 0.2)
		n := count(g, "racks", r.Servers)
		for si := range n {
			server(g, fmt.Sprintf("%s-s%d", id, si), pos.Add(vec(0, float32(si)*0.3-2.4, 0)), index, rnd.Float32() < r.Active)
			index++
		}
	}

	g.Add(&scene.Entity{
		ID: "switch", Base: corePos, Size: vec(2, 0.4, 1), Color: chassis,
		Rest: glow(0.3, 1), Motion: &scene.Wave{Glow: 0.2, GlowRate: 2},
	})
	label(g, "switch-label", "", "CORE SWITCH", corePos.Add(vec(0, 0.3, 0)), cyan, 0.15)

	for si, s := range d.Streams {
		start, ok1 := endpoint(racks, s.From)
		end, ok2 := endpoint(racks, s.To)
		if !ok1 || !ok2 {
			g.Issue("streams", "stream %d: unknown endpoint in %q -> %q", si, s.From, s.To)
			continue
		}
		n := s.Count
		if n <= 0 {
			n = 30
		}
		period := s.Period
		if period <= 0 {
			period = 3
		}
		c := scene.Color(s.Color, green)
		for i := range n {
			g.Add(&scene.Entity{
				ID: fmt.Sprintf("stream-%d-%d", si, i), Kind: scene.KindParticle, Shape: scene.ShapeSphere,
				Size: size(0.04), Color: c, Rest: glow(1, 0.8),
				Motion: &scene.Stream{Start: start, End: end, Index: i, Count: n, Period: period, Delay: s.Delay},
			})
		}
	}

	g.Add(&scene.Entity{ID: "floor", Shape: scene.ShapePlane, Base: vec(0, -5, 0), Size: vec(20, 0, 10), Color: night, Rest: glow(0, 1)})
	g.Add(&scene.Entity{
		ID: "backdrop", Shape: scene.ShapePlane, Base: vec(0, 0, -2), BaseRot: vec(math32.Pi/2, 0, 0),
		Size: vec(15, 0, 10), Color: night, Rest: glow(0, 0.5),
	})
}

// endpoint returns the position of a stream endpoint.
func endpoint(racks map[string]math32.Vector3, name string) (math32.Vector3, bool) {
	if name == scene.CoreEndpoint {
		return corePos, true
	}
	rn := scene.RackName(name)
	pos, ok := racks[rn]
	if rn == "" || !ok {
		return pos, false
	}
	if strings.HasSuffix(name, "/top") {
		return pos.Add(vec(0, 2, 0.5)), true
	}
	return pos.Add(vec(0, -2, 0.5)), true
}

// server adds one server: chassis, status light and, when active,
// activity lights and a slight vibration.
func server(g *scene.Graph, id string, pos math32.Vector3, index int, active bool) {
	phase := float32(index)
	gp := &scene.Group{ID: id, Base: pos, Phase: phase}
	if active {
		gp.Motion = &scene.Wave{Bob: vec(0.01, 0, 0), BobRate: vec(10, 0, 0)}
	}
	g.AddGroup(gp)
	body := chassis
	if !active {
		body = scene.Color("#0f0f1a", night)
	}
	g.Add(&scene.Entity{ID: id + "-chassis", Parent: id, Size: vec(1.8, 0.25, 0.8), Color: body, Rest: glow(0, 1)})
	g.Add(&scene.Entity{
		ID: id + "-panel", Parent: id, Base: vec(0, 0, 0.41), Size: vec(1.7, 0.2, 0.02),
		Color: scene.Color("#16213e", chassis), Rest: glow(0, 1),
	})
	light := &scene.Entity{
		ID: id + "-light", Kind: scene.KindIndicator, Parent: id, Shape: scene.ShapeSphere,
		Base: vec(-0.7, 0, 0.42), Size: size(0.04), Phase: phase, Color: red, Rest: glow(0.3, 1),
	}
	if active {
		light.Color = green
		light.Rest.Emissive = 0.5
		light.Motion = &scene.Wave{Glow: 0.5, GlowRate: 3}
	}
	g.Add(light)
	if !active {
		return
	}
	for i, c := range []scene.Entity{{Color: cyan, Base: vec(-0.5, 0, 0.42)}, {Color: amber, Base: vec(-0.3, 0, 0.42)}} {
		g.Add(&scene.Entity{
			ID: fmt.Sprintf("%s-activity-%d", id, i), Kind: scene.KindIndicator, Parent: id, Shape: scene.ShapeSphere,
			Base: c.Base, Size: size(0.03), Color: c.Color, Rest: glow(0.8, 1),
		})
	}
}
