// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzview

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/neonops/infrascene/anim"
	"github.com/neonops/infrascene/host"
	"github.com/neonops/infrascene/scene"
	"github.com/neonops/infrascene/scenes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ host.Surface = (*Surface)(nil)

func TestNoScene(t *testing.T) {
	s := New(nil)
	assert.ErrorIs(t, s.Mount(scene.NewGraph("empty")), ErrNoScene)
	s.Unmount()
	assert.False(t, s.Mounted())
}

func TestMountSyncUnmount(t *testing.T) {
	g, err := scenes.BuildName("pipeline")
	require.NoError(t, err)
	g.Update(&scene.Context{Frame: anim.At(1)})

	s := New(xyz.NewScene())
	require.NoError(t, s.Mount(g))
	assert.True(t, s.Mounted())
	assert.Equal(t, g.Len(), s.Len())
	assert.Equal(t, len(g.Lights), s.Scene.Lights.Len())

	s.Sync(g)
	box := s.solids["stage-0-box"]
	require.NotNil(t, box)
	e := g.Entity("stage-0-box")
	assert.Equal(t, e.Transform.Pos, box.Pose.Pos)
	assert.InDelta(t, 2*e.Transform.Scale.X, box.Pose.Scale.X, 1e-5)
	assert.Equal(t, g.EyePos(), s.Scene.Camera.Pose.Pos)

	pipe := s.solids["pipe-0"]
	require.NotNil(t, pipe)
	assert.InDelta(t, g.Entity("pipe-0").Segment.Length(), pipe.Pose.Scale.Y, 1e-4)

	s.Unmount()
	assert.False(t, s.Mounted())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Scene.NumChildren())
	assert.Equal(t, 0, s.Scene.Lights.Len())
	assert.Equal(t, 0, s.Scene.Meshes.Len())
}

func TestUnmountReleasesMeshes(t *testing.T) {
	s := New(xyz.NewScene())
	for _, nm := range []string{"cloud", "containers"} {
		g, err := scenes.BuildName(nm)
		require.NoError(t, err)
		require.NoError(t, s.Mount(g))
		s.Sync(g)
		assert.NotZero(t, s.Scene.Meshes.Len())
		s.Unmount()
		assert.Empty(t, s.Scene.MeshList(), nm)
	}
}

func TestEdgePool(t *testing.T) {
	g := scene.NewGraph("edges")
	for i, p := range []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}} {
		g.Add(&scene.Entity{ID: string(rune('a' + i)), Kind: scene.KindParticle, Shape: scene.ShapeSphere, Base: p, Linked: true})
	}
	g.SetLinks(scene.Links{Threshold: 1.5})
	g.Update(&scene.Context{Frame: anim.At(0)})
	require.Len(t, g.Edges(), 2)

	s := New(xyz.NewScene())
	require.NoError(t, s.Mount(g))
	s.Sync(g)
	assert.Equal(t, 2, s.EdgeSolids())

	g.Entity("c").Base = math32.Vec3(9, 0, 0)
	g.Update(&scene.Context{Frame: anim.At(0)})
	require.Len(t, g.Edges(), 1)
	s.Sync(g)
	assert.Equal(t, 2, s.EdgeSolids(), "edge solids are reused")
	assert.Equal(t, math32.Vector3{}, s.edges[1].Pose.Scale)
}

func TestSegmentPose(t *testing.T) {
	q, sc := segmentPose(math32.Vec3(0, 0, 0), math32.Vec3(3, 0, 0), 0.1)
	assert.Equal(t, math32.Vec3(0.1, 3, 0.1), sc)
	up := math32.Vec3(0, 1, 0).MulQuat(q)
	assert.InDelta(t, 1, up.X, 1e-5)
	assert.InDelta(t, 0, up.Y, 1e-5)
}
