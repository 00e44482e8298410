// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzview provides a render surface that draws a scene graph
// with the cogentcore xyz 3D scenegraph.
package xyzview

import (
	"image/color"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"github.com/neonops/infrascene/scene"
)

// ErrNoScene is returned by Mount on a surface with no xyz scene.
var ErrNoScene = errors.New("xyzview: no xyz scene")

// labelPixels is the rendered height in pixels of label text,
// which label sizes are relative to.
const labelPixels = 48

// Surface draws a [scene.Graph] onto an [xyz.Scene]. Mount creates
// one xyz node per group and entity, Sync copies the current
// transforms and materials, and Unmount deletes them.
type Surface struct {

	// Scene is the xyz scene drawn into. The surface owns all of its
	// children and lights while mounted.
	Scene *xyz.Scene

	// Segments is the resolution of round meshes.
	Segments int

	groups map[string]*xyz.Group
	solids map[string]*xyz.Solid
	labels map[string]*xyz.Text2D

	// units are the scales mapping each unit mesh to its entity size.
	units map[string]math32.Vector3

	// edges are pooled edge solids, grown as needed and hidden
	// when unused.
	edges    []*xyz.Solid
	edgeRoot *xyz.Group
	mounted  bool
}

// New returns a new surface drawing into sc.
func New(sc *xyz.Scene) *Surface {
	return &Surface{Scene: sc, Segments: 32}
}

// Mounted returns whether a graph is mounted.
func (s *Surface) Mounted() bool {
	return s.mounted
}

// Len returns the number of entity nodes.
func (s *Surface) Len() int {
	return len(s.solids) + len(s.labels)
}

// Mount creates the xyz nodes, lights and camera for g.
func (s *Surface) Mount(g *scene.Graph) error {
	if s.Scene == nil {
		return ErrNoScene
	}
	if s.mounted {
		s.Unmount()
	}
	sc := s.Scene
	s.groups = map[string]*xyz.Group{}
	s.solids = map[string]*xyz.Solid{}
	s.labels = map[string]*xyz.Text2D{}
	s.units = map[string]math32.Vector3{}
	s.edges = nil

	sc.Background = colors.Uniform(g.Background)
	sc.Camera.FOV = g.Camera.FOV
	s.lights(g)

	for _, gp := range g.Groups() {
		xg := xyz.NewGroup(s.parent(gp.Parent))
		xg.SetName(gp.ID)
		s.groups[gp.ID] = xg
	}
	for _, e := range g.Entities() {
		par := s.parent(e.Parent)
		if e.Kind == scene.KindLabel {
			txt := xyz.NewText2D(par)
			txt.SetName(e.ID)
			txt.SetText(e.Text)
			txt.Styles.Color = colors.Uniform(e.Color)
			s.labels[e.ID] = txt
			continue
		}
		sld := xyz.NewSolid(par)
		sld.SetName(e.ID)
		ms, unit := s.mesh(e)
		sld.SetMesh(ms)
		s.units[e.ID] = unit
		s.solids[e.ID] = sld
	}
	s.edgeRoot = xyz.NewGroup(sc)
	s.edgeRoot.SetName("edges")
	s.mounted = true
	if sc.IsLive() {
		sc.ConfigNodes()
	}
	sc.SetNeedsUpdate()
	sc.SetNeedsRender()
	return nil
}

// parent returns the xyz node for a group id, or the scene.
func (s *Surface) parent(id string) tree.Node {
	if gp, ok := s.groups[id]; ok {
		return gp
	}
	return s.Scene
}

func (s *Surface) lights(g *scene.Graph) {
	sc := s.Scene
	sc.Lights.Reset()
	for i, l := range g.Lights {
		nm := string(l.Kind) + "-" + strconv.Itoa(i)
		c := scene.Color(l.Color, colors.White)
		switch l.Kind {
		case scene.LightAmbient:
			a := xyz.NewAmbient(sc, nm, l.Intensity, xyz.DirectSun)
			a.Color = c
		case scene.LightDirectional:
			d := xyz.NewDirectional(sc, nm, l.Intensity, xyz.DirectSun)
			d.Color = c
			d.Pos = l.Pos.V()
		case scene.LightPoint:
			p := xyz.NewPoint(sc, nm, l.Intensity, xyz.DirectSun)
			p.Color = c
			p.Pos = l.Pos.V()
		case scene.LightSpot:
			sp := xyz.NewSpot(sc, nm, l.Intensity, xyz.DirectSun)
			sp.Color = c
			sp.Pose.Pos = l.Pos.V()
			sp.LookAtOrigin()
		}
	}
}

// Sync copies the current state of g into the xyz nodes.
func (s *Surface) Sync(g *scene.Graph) {
	if !s.mounted {
		return
	}
	for _, gp := range g.Groups() {
		xg, ok := s.groups[gp.ID]
		if !ok {
			continue
		}
		xg.Pose.Pos = gp.Transform.Pos
		xg.Pose.Scale = gp.Transform.Scale
		xg.Pose.Quat.SetFromEuler(gp.Transform.Rot)
	}
	for _, e := range g.Entities() {
		if txt, ok := s.labels[e.ID]; ok {
			txt.Pose.Pos = e.Transform.Pos
			txt.Pose.Quat.SetFromEuler(e.Transform.Rot)
			txt.Pose.Scale = e.Transform.Scale.MulScalar(e.Size.X / labelPixels)
			txt.Material.Color = colors.WithAF32(e.Color, e.Material.Opacity)
			continue
		}
		sld, ok := s.solids[e.ID]
		if !ok {
			continue
		}
		sld.Pose.Pos = e.Transform.Pos
		if e.Segment != nil {
			q, sc := segmentPose(e.Segment.Start, e.Segment.End, e.Segment.Width)
			sld.Pose.Quat = q
			sld.Pose.Scale = sc.Mul(e.Transform.Scale)
		} else {
			sld.Pose.Quat.SetFromEuler(e.Transform.Rot)
			sld.Pose.Scale = s.units[e.ID].Mul(e.Transform.Scale)
		}
		material(&sld.Material, e.Color, e.Material)
	}
	s.syncEdges(g)

	cam := &s.Scene.Camera
	cam.Pose.Pos = g.EyePos()
	cam.LookAt(g.Camera.Target.V(), math32.Vec3(0, 1, 0))
	s.Scene.SetNeedsUpdate()
	s.Scene.SetNeedsRender()
}

// material sets an xyz material from an entity color and material.
func material(mt *xyz.Material, c color.RGBA, m scene.Material) {
	op := m.Opacity
	if m.Wireframe {
		op *= 0.5
	}
	mt.Color = colors.WithAF32(c, math32.Clamp(op, 0, 1))
	em := math32.Clamp(m.Emissive, 0, 1)
	mt.Emissive = color.RGBA{uint8(float32(c.R) * em), uint8(float32(c.G) * em), uint8(float32(c.B) * em), 255}
	mt.CullBack = !m.Wireframe
}

// syncEdges draws the proximity edges of g with pooled line solids.
func (s *Surface) syncEdges(g *scene.Graph) {
	edges := g.Edges()
	linked := g.Linked()
	for len(s.edges) < len(edges) {
		sld := xyz.NewSolid(s.edgeRoot)
		sld.SetName("edge-" + strconv.Itoa(len(s.edges)))
		sld.SetMesh(s.lineMesh())
		s.edges = append(s.edges, sld)
	}
	for i, sld := range s.edges {
		if i >= len(edges) {
			sld.Pose.Scale = math32.Vector3{}
			continue
		}
		ed := edges[i]
		a, b := linked[ed.FromIndex].Transform.Pos, linked[ed.ToIndex].Transform.Pos
		q, sc := segmentPose(a, b, 0.02)
		sld.Pose.Pos = a.Add(b).MulScalar(0.5)
		sld.Pose.Quat = q
		sld.Pose.Scale = sc
		material(&sld.Material, g.Links.Color, scene.Material{Emissive: 1, Opacity: ed.Opacity})
	}
}

// EdgeSolids returns the number of pooled edge solids.
func (s *Surface) EdgeSolids() int {
	return len(s.edges)
}

// Unmount deletes all nodes, meshes and lights created by Mount.
func (s *Surface) Unmount() {
	if s.Scene == nil {
		return
	}
	s.Scene.DeleteChildren()
	s.Scene.ResetMeshes()
	s.Scene.Lights.Reset()
	s.groups, s.solids, s.labels, s.units = nil, nil, nil, nil
	s.edges, s.edgeRoot = nil, nil
	s.mounted = false
	s.Scene.SetNeedsRender()
}
