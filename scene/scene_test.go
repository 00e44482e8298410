// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/anim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxAt(t float32) *Context {
	return &Context{Frame: anim.At(t)}
}

func TestWaveIsIdempotent(t *testing.T) {
	g := NewGraph("test")
	e := g.Add(&Entity{
		ID: "n", Base: math32.Vec3(1, 2, 3), Phase: 0.7,
		Rest: Material{Emissive: 0.5, Opacity: 0.8},
		Motion: &Wave{
			Bob: math32.Vec3(0, 0.3, 0), BobRate: math32.Vec3(0, 0.5, 0),
			Spin: math32.Vec3(0, 0.25, 0), Breathe: 0.05, BreatheRate: 2,
			Glow: 0.2, GlowRate: 2, Fade: 0.5, FadeRate: 3,
		},
	})
	require.NotNil(t, e)
	for _, tm := range []float32{0, 0.5, 3.25, 100} {
		g.Update(ctxAt(tm))
		tr, mat := e.Transform, e.Material
		g.Update(ctxAt(42))
		g.Update(ctxAt(tm))
		assert.Equal(t, tr, e.Transform, "t=%v", tm)
		assert.Equal(t, mat, e.Material, "t=%v", tm)
		assert.GreaterOrEqual(t, e.Material.Opacity, float32(0))
		assert.LessOrEqual(t, e.Material.Opacity, float32(1))
	}
}

func TestPathPacketWraps(t *testing.T) {
	g := NewGraph("test")
	e := g.Add(&Entity{ID: "p", Kind: KindParticle, Motion: &Path{End: math32.Vec3(10, 0, 0), Period: 4}})
	for _, tm := range []float32{2, 6} {
		g.Update(ctxAt(tm))
		assert.InDelta(t, 5, e.Transform.Pos.X, 1e-4, "t=%v", tm)
	}
	for _, tm := range []float32{0, 4, 8, 12} {
		g.Update(ctxAt(tm))
		assert.InDelta(t, 0, e.Transform.Pos.X, 1e-4, "t=%v", tm)
	}
}

func TestBounceStaysInBounds(t *testing.T) {
	g := NewGraph("test")
	b := anim.Cube(10)
	e := g.Add(&Entity{ID: "b", Kind: KindParticle, Base: math32.Vec3(9, -9, 0), Motion: &Bounce{Velocity: math32.Vec3(2.4, -1.8, 3), Bounds: b}})
	clock := anim.NewClock()
	clock.Start()
	for range 5000 {
		g.Update(&Context{Frame: clock.Tick(anim.DefaultMaxDelta)})
		require.True(t, b.Contains(e.Transform.Pos), "%v", e.Transform.Pos)
	}
	v := e.Motion.(*Bounce).Velocity
	assert.InDelta(t, 2.4, math32.Abs(v.X), 1e-5)
	assert.InDelta(t, 1.8, math32.Abs(v.Y), 1e-5)
	assert.InDelta(t, 3, math32.Abs(v.Z), 1e-5)
}

func TestReducedMotionFreezes(t *testing.T) {
	g := NewGraph("test")
	w := g.Add(&Entity{ID: "w", Motion: &Wave{Spin: math32.Vec3(0, 1, 0)}})
	b := g.Add(&Entity{ID: "b", Base: math32.Vec3(1, 1, 1), Motion: &Bounce{Velocity: math32.Vec3(1, 0, 0), Bounds: anim.Cube(5)}})
	g.Update(&Context{Frame: anim.Frame{Elapsed: 3, Delta: 0.1}, ReducedMotion: true})
	assert.Equal(t, float32(0), w.Transform.Rot.Y)
	assert.Equal(t, math32.Vec3(1, 1, 1), b.Transform.Pos)
}

func TestGroupMotion(t *testing.T) {
	g := NewGraph("test")
	gp := g.AddGroup(&Group{ID: "layer", Base: math32.Vec3(0, 4, 0), Motion: &Wave{Spin: math32.Vec3(0, 0.125, 0)}})
	require.NotNil(t, gp)
	e := g.Add(&Entity{ID: "n", Parent: "layer", Base: math32.Vec3(2, 0, 0)})
	g.Update(ctxAt(8))
	assert.InDelta(t, 1, gp.Transform.Rot.Y, 1e-6)
	assert.Equal(t, math32.Vec3(0, 4, 0), gp.Transform.Pos)
	assert.Equal(t, math32.Vec3(2, 0, 0), e.Transform.Pos)
	assert.Same(t, gp, g.Group("layer"))
}

func TestConnectorAtSegmentMid(t *testing.T) {
	g := NewGraph("test")
	e := g.Add(&Entity{ID: "c", Kind: KindConnector, Shape: ShapeLine, Segment: &Segment{Start: math32.Vec3(0, 0, 0), End: math32.Vec3(4, 0, 0), Width: 0.1}})
	g.Update(ctxAt(1))
	assert.Equal(t, math32.Vec3(2, 0, 0), e.Transform.Pos)
	assert.InDelta(t, 4, e.Segment.Length(), 1e-6)
}

func TestDuplicatesAreIssues(t *testing.T) {
	g := NewGraph("test")
	require.NotNil(t, g.Add(&Entity{ID: "a"}))
	assert.Nil(t, g.Add(&Entity{ID: "a"}))
	assert.Nil(t, g.Add(&Entity{}))
	e := g.Add(&Entity{ID: "b", Parent: "missing"})
	require.NotNil(t, e)
	assert.Empty(t, e.Parent)
	assert.Equal(t, 2, g.Len())
	require.Len(t, g.Issues, 3)
	var de *DescriptionError
	assert.True(t, errors.As(g.Issues[0], &de))
	assert.Equal(t, "test", de.Scene)
}

func TestLinksAndTeardown(t *testing.T) {
	g := NewGraph("test")
	g.SetLinks(Links{Threshold: 5, Tint: true})
	pos := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1.5, 0), math32.Vec3(20, 0, 0), math32.Vec3(20, 20, 0)}
	for i, p := range pos {
		g.Add(&Entity{ID: string(rune('a' + i)), Kind: KindParticle, Base: p, Linked: true})
	}
	g.Add(&Entity{ID: "static", Base: math32.Vec3(0.5, 0, 0)})
	g.Update(ctxAt(0))
	assert.Len(t, g.Edges(), 3)
	assert.Len(t, g.Linked(), 5)
	assert.Greater(t, g.Entity("a").Material.Emissive, g.Entity("d").Material.Emissive)

	g.Teardown()
	assert.True(t, g.TornDown())
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Edges())
	assert.Nil(t, g.Entity("a"))
	g.Update(ctxAt(1))
	assert.Equal(t, 0, g.Len())
}

func TestCount(t *testing.T) {
	g := NewGraph("test")
	g.Add(&Entity{ID: "a", Kind: KindNode})
	g.Add(&Entity{ID: "b", Kind: KindLabel, Text: "b"})
	g.Add(&Entity{ID: "c", Kind: KindNode})
	assert.Equal(t, 2, g.Count(KindNode))
	assert.Equal(t, 1, g.Count(KindLabel))
	assert.Equal(t, 0, g.Count(KindIndicator))
}

func TestShapeFromString(t *testing.T) {
	s, ok := ShapeFromString("torus")
	assert.True(t, ok)
	assert.Equal(t, ShapeTorus, s)
	s, ok = ShapeFromString("dodecahedron")
	assert.False(t, ok)
	assert.Equal(t, ShapeBox, s)
	assert.Equal(t, "line", ShapeLine.String())
	assert.Equal(t, "particle", KindParticle.String())
}

const pipelineTOML = `
name = "pipeline"
title = "CI/CD"
background = "#0a0a0a"

[camera]
pos = [0, 5, 15]
fov = 50
min_distance = 8
max_distance = 25
zoom = true

[[lights]]
kind = "ambient"
intensity = 0.4

[[stages]]
name = "Build"
status = "success"
color = "#00ff88"

[[stages]]
name = "Test"
status = "running"
`

const pipelineYAML = `
name: pipeline
title: CI/CD
camera:
  pos: [0, 5, 15]
  min_distance: 8
  max_distance: 25
stages:
  - name: Build
    status: success
  - name: Test
    status: running
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(pipelineTOML), TOML)
	require.NoError(t, err)
	assert.Equal(t, "pipeline", d.Name)
	assert.Equal(t, Vec{0, 5, 15}, d.Camera.Pos)
	assert.Equal(t, float32(25), d.Camera.MaxDistance)
	require.Len(t, d.Stages, 2)
	assert.Equal(t, "running", d.Stages[1].Status)
	assert.Equal(t, LightAmbient, d.Lights[0].Kind)
	assert.NoError(t, d.Validate())

	y, err := Parse([]byte(pipelineYAML), YAML)
	require.NoError(t, err)
	assert.Equal(t, d.Stages[1].Name, y.Stages[1].Name)
	assert.Equal(t, d.Camera.Pos, y.Camera.Pos)

	_, err = Parse([]byte("nmae = \"typo\""), TOML)
	assert.Error(t, err)
	_, err = Parse([]byte("nmae: typo"), YAML)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "pipeline.toml")
	require.NoError(t, os.WriteFile(fn, []byte(pipelineTOML), 0o644))
	d, err := LoadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "CI/CD", d.Title)

	b, err := Marshal(d, YAML)
	require.NoError(t, err)
	yfn := filepath.Join(dir, "pipeline.yml")
	require.NoError(t, os.WriteFile(yfn, b, 0o644))
	y, err := LoadFile(yfn)
	require.NoError(t, err)
	assert.Equal(t, d.Camera, y.Camera)
	assert.Equal(t, d.Stages, y.Stages)
	assert.Equal(t, d.Lights, y.Lights)

	_, err = LoadFile(filepath.Join(dir, "pipeline.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	d := &Description{
		Name:      "broken",
		Camera:    Camera{MinDistance: 10, MaxDistance: 5},
		Stages:    []Stage{{Name: "only"}},
		Lights:    []Light{{Kind: "laser", Color: "notacolor"}},
		Racks:     []Rack{{Name: "r1", Servers: -1}},
		Streams:   []DataStream{{From: "r1", To: "r9"}},
		Particles: Particles{Count: 3, Strategy: "octree"},
	}
	err := d.Validate()
	require.Error(t, err)
	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	fields := map[string]bool{}
	for _, e := range joined.Unwrap() {
		var de *DescriptionError
		require.True(t, errors.As(e, &de))
		fields[de.Field] = true
	}
	for _, f := range []string{"camera", "stages", "lights", "racks", "streams", "particles"} {
		assert.True(t, fields[f], f)
	}
}

func TestCloneIsDeep(t *testing.T) {
	d, err := Parse([]byte(pipelineTOML), TOML)
	require.NoError(t, err)
	c := d.Clone()
	assert.Equal(t, d.Camera, c.Camera)
	assert.Equal(t, d.Stages, c.Stages)
	c.Stages[0].Name = "Changed"
	c.Camera.Pos[0] = 99
	assert.Equal(t, "Build", d.Stages[0].Name)
	assert.Equal(t, float32(0), d.Camera.Pos[0])
}
