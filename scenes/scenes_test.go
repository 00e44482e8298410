// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"errors"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/anim"
	"github.com/neonops/infrascene/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsBuild(t *testing.T) {
	ds := Defaults()
	require.Len(t, ds, len(Order))
	for _, d := range ds {
		require.NoError(t, d.Validate(), d.Name)
		g, err := Build(d)
		require.NoError(t, err, d.Name)
		require.NotNil(t, g)
		assert.Positive(t, g.Len(), d.Name)
		assert.Equal(t, d.Title, g.Title)
		for _, tm := range []float32{0, 1.5, 60} {
			g.Update(&scene.Context{Frame: anim.Frame{Elapsed: tm, Delta: 1.0 / 60}})
		}
	}
	assert.ElementsMatch(t, Order, Names())
}

func TestUnknownScene(t *testing.T) {
	_, err := Build(&scene.Description{Name: "holodeck"})
	assert.ErrorIs(t, err, ErrUnknownScene)
	_, err = BuildName("holodeck")
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestCloudCounts(t *testing.T) {
	g, err := BuildName("cloud")
	require.NoError(t, err)
	assert.Len(t, g.Groups(), 3)
	assert.Equal(t, 12, g.Count(scene.KindLabel))
	assert.Equal(t, 8, g.Count(scene.KindConnector))
	assert.Equal(t, 8, g.Count(scene.KindParticle))
	assert.Equal(t, float32(10), g.Camera.MinDistance)
}

func TestDevOpsCubeCounts(t *testing.T) {
	g, err := BuildName("devopscube")
	require.NoError(t, err)
	assert.Len(t, g.Groups(), 2)
	assert.Equal(t, 6, g.Count(scene.KindLabel))
	assert.Equal(t, 5, g.Count(scene.KindConnector))
	assert.Equal(t, 3, g.Count(scene.KindParticle))
	assert.False(t, g.Camera.Zoom)

	face := g.Entity("face-4")
	require.NotNil(t, face)
	assert.Equal(t, "Jenkins", face.Text)
	assert.InDelta(t, 2.01, face.Base.Y, 1e-6)

	g.Update(&scene.Context{Frame: anim.At(2)})
	cube := g.Group("cube")
	tm := float32(2)
	assert.InDelta(t, math32.Sin(tm/4)*0.2+tm/8, cube.Transform.Rot.X, 1e-5)
	assert.InDelta(t, math32.Cos(tm/4)*0.2+tm/6, cube.Transform.Rot.Y, 1e-5)
	assert.InDelta(t, math32.Sin(tm/2)*0.3, cube.Transform.Pos.Y, 1e-5)
	assert.InDelta(t, 1+math32.Sin(tm*2)*0.05, g.Entity("cube-outer").Transform.Scale.X, 1e-5)
	assert.InDelta(t, tm/4, g.Group("network").Transform.Rot.Y, 1e-5)
}

func TestDevOpsCubeTooManyFaces(t *testing.T) {
	d, err := Default("devopscube")
	require.NoError(t, err)
	d.Faces = append(d.Faces, scene.Face{Name: "Linux"})
	assert.Error(t, d.Validate())
	g, err := Build(d)
	require.Error(t, err)
	assert.Equal(t, 6, g.Count(scene.KindLabel))
	assert.Nil(t, g.Entity("face-6"))
}

func TestPipelineDegradesWithOneStage(t *testing.T) {
	d, err := Default("pipeline")
	require.NoError(t, err)
	full, err := Build(d)
	require.NoError(t, err)
	assert.Equal(t, 4, full.Count(scene.KindConnector))
	assert.Equal(t, 4, full.Count(scene.KindParticle))

	d.Stages = d.Stages[:1]
	g, err := Build(d)
	require.NotNil(t, g)
	require.Error(t, err)
	var de *scene.DescriptionError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, 0, g.Count(scene.KindConnector))
	assert.Equal(t, 0, g.Count(scene.KindParticle))
	assert.NotNil(t, g.Entity("stage-0-box"))

	d.Stages = nil
	g, err = Build(d)
	assert.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestPipelinePacketPath(t *testing.T) {
	g, err := BuildName("pipeline")
	require.NoError(t, err)
	p := g.Entity("packet-0")
	require.NotNil(t, p)
	g.Update(&scene.Context{Frame: anim.At(4)})
	assert.InDelta(t, -6, p.Transform.Pos.X, 1e-4)
	assert.InDelta(t, 1, p.Transform.Pos.Y, 1e-4)
}

func TestBuildUsesACopy(t *testing.T) {
	d, err := Default("pipeline")
	require.NoError(t, err)
	g, err := Build(d)
	require.NoError(t, err)
	n := g.Len()
	d.Stages = append(d.Stages, scene.Stage{Name: "Extra"})
	assert.Equal(t, n, g.Len())
}

func TestRacksAreDeterministic(t *testing.T) {
	a, err := BuildName("racks")
	require.NoError(t, err)
	b, err := BuildName("racks")
	require.NoError(t, err)
	require.Equal(t, a.Len(), b.Len())
	for i, e := range a.Entities() {
		assert.Equal(t, e.ID, b.Entities()[i].ID)
		assert.Equal(t, e.Color, b.Entities()[i].Color)
	}
	assert.Equal(t, 5*30, a.Count(scene.KindParticle))
}

func TestRacksSkipUnknownStream(t *testing.T) {
	d, err := Default("racks")
	require.NoError(t, err)
	d.Streams = append(d.Streams, scene.DataStream{From: "rack-9", To: "core"})
	d.Racks[0].Servers = -3
	g, err := Build(d)
	require.Error(t, err)
	assert.Equal(t, 5*30, g.Count(scene.KindParticle))
	assert.Nil(t, g.Group("rack-0-s0"))
	assert.NotNil(t, g.Entity("rack-1-s0-chassis"))
}

func TestRacksEmptyEndpoint(t *testing.T) {
	d := &scene.Description{
		Name:    "racks",
		Racks:   []scene.Rack{{Name: "a", Servers: 1, Active: 1}, {Servers: 1}},
		Streams: []scene.DataStream{{From: "", To: "a", Count: 2}, {From: "a/top", To: scene.CoreEndpoint, Count: 3}},
	}
	verr := d.Validate()
	require.Error(t, verr)
	var de *scene.DescriptionError
	require.ErrorAs(t, verr, &de)
	assert.Equal(t, "streams", de.Field)

	g, err := Build(d)
	require.Error(t, err)
	assert.Len(t, g.Issues, 1)
	assert.Equal(t, 3, g.Count(scene.KindParticle))
	assert.Nil(t, g.Entity("stream-0-0"))
	assert.NotNil(t, g.Entity("stream-1-0"))
}

func TestContainersUnknownStatus(t *testing.T) {
	d, err := Default("containers")
	require.NoError(t, err)
	d.Pods[0].Containers[0].Status = "exploded"
	g, err := Build(d)
	require.Error(t, err)
	assert.NotNil(t, g.Entity("pod-0-c0-body"))
	assert.Nil(t, g.Entity("pod-0-c0-glow"))
	assert.NotNil(t, g.Entity("pod-1-c0-glow"))
}

func TestParticlesEdges(t *testing.T) {
	g, err := BuildName("particles")
	require.NoError(t, err)
	assert.Len(t, g.Linked(), 50)
	clock := anim.NewClock()
	clock.Start()
	for range 120 {
		g.Update(&scene.Context{Frame: clock.Tick(16 * time.Millisecond)})
		for _, e := range g.Edges() {
			require.Less(t, e.Distance, g.Links.Threshold)
			require.InDelta(t, 1-e.Distance/g.Links.Threshold, e.Opacity, 1e-5)
		}
	}
	for _, e := range g.Linked() {
		assert.True(t, anim.Cube(10).Contains(e.Transform.Pos))
	}
}

func TestParticlesKDTree(t *testing.T) {
	d, err := Default("particles")
	require.NoError(t, err)
	naive, err := Build(d)
	require.NoError(t, err)
	d.Particles.Strategy = "kdtree"
	kd, err := Build(d)
	require.NoError(t, err)
	ctx := &scene.Context{Frame: anim.Frame{Elapsed: 1, Delta: 0.05}}
	naive.Update(ctx)
	kd.Update(ctx)
	assert.Equal(t, len(naive.Edges()), len(kd.Edges()))
}

func TestCompositionPanicIsContained(t *testing.T) {
	Register("broken", func(g *scene.Graph, d *scene.Description) {
		g.Add(&scene.Entity{ID: "first"})
		var m map[string]int
		m["boom"]++
	})
	defer delete(Registry, "broken")
	g, err := Build(&scene.Description{Name: "broken"})
	require.Error(t, err)
	require.NotNil(t, g)
	assert.Equal(t, 1, g.Len())
}

func TestSeededLayout(t *testing.T) {
	a, err := BuildName("racks")
	require.NoError(t, err)
	b, err := BuildName("racks")
	require.NoError(t, err)
	assert.Equal(t, a.Count(scene.KindIndicator), b.Count(scene.KindIndicator))

	r1, r2 := seeded(7), seeded(7)
	for range 10 {
		assert.Equal(t, r1.Float32(), r2.Float32())
	}
	assert.NotEqual(t, seeded(7).Uint64(), seeded(8).Uint64())
}
