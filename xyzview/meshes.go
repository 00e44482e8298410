// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzview

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/neonops/infrascene/scene"
)

// mesh returns the mesh for an entity shape, creating it on the scene
// the first time, together with the scale that maps the unit mesh onto
// the entity size. Meshes are shared by name while mounted.
func (s *Surface) mesh(e *scene.Entity) (xyz.Mesh, math32.Vector3) {
	sc := s.Scene
	sz := e.Size
	get := func(name string, mk func(name string) xyz.Mesh) xyz.Mesh {
		if ms, err := sc.MeshByName(name); err == nil && ms != nil {
			return ms
		}
		return mk(name)
	}
	switch e.Shape {
	case scene.ShapeSphere, scene.ShapeOctahedron, scene.ShapeIcosahedron:
		segs := s.Segments
		switch e.Shape {
		case scene.ShapeOctahedron:
			segs = 4
		case scene.ShapeIcosahedron:
			segs = 6
		}
		ms := get(fmt.Sprintf("sphere-%d", segs), func(nm string) xyz.Mesh {
			return xyz.NewSphere(sc, nm, 1, segs)
		})
		return ms, math32.Vector3Scalar(sz.X)
	case scene.ShapeCylinder:
		if sz.Z == 0 || sz.Z == sz.X {
			ms := get("cylinder", func(nm string) xyz.Mesh {
				return xyz.NewCylinder(sc, nm, 1, 1, s.Segments, 1, true, true)
			})
			return ms, math32.Vec3(sz.X, sz.Y, sz.X)
		}
		top := sz.Z / sz.X
		ms := get(fmt.Sprintf("cylinder-%.3f", top), func(nm string) xyz.Mesh {
			return xyz.NewCylinderSector(sc, nm, 1, top, 1, s.Segments, 1, 0, 360, true, true)
		})
		return ms, math32.Vec3(sz.X, sz.Y, sz.X)
	case scene.ShapeCone:
		ms := get("cone", func(nm string) xyz.Mesh {
			return xyz.NewCone(sc, nm, 1, 1, s.Segments, 1, true)
		})
		return ms, math32.Vec3(sz.X, sz.Y, sz.X)
	case scene.ShapeTorus:
		tube := float32(0.1)
		if sz.X > 0 {
			tube = sz.Y / sz.X
		}
		ms := get(fmt.Sprintf("torus-%.3f", tube), func(nm string) xyz.Mesh {
			return xyz.NewTorus(sc, nm, 1, tube, s.Segments)
		})
		return ms, math32.Vector3Scalar(sz.X)
	case scene.ShapePlane:
		ms := get("plane", func(nm string) xyz.Mesh {
			return xyz.NewPlane(sc, nm, 1, 1)
		})
		return ms, math32.Vec3(sz.X, 1, sz.Z)
	case scene.ShapeLine:
		return s.lineMesh(), math32.Vec3(1, 1, 1)
	}
	ms := get("box", func(nm string) xyz.Mesh {
		return xyz.NewBox(sc, nm, 1, 1, 1)
	})
	return ms, sz
}

// lineMesh is a unit cylinder along Y, used for connectors and edges.
func (s *Surface) lineMesh() xyz.Mesh {
	if ms, err := s.Scene.MeshByName("line"); err == nil && ms != nil {
		return ms
	}
	return xyz.NewCylinder(s.Scene, "line", 1, 1, 8, 1, false, false)
}

// segmentPose returns the rotation and scale that stretch the unit line
// mesh from a to b with the given width.
func segmentPose(a, b math32.Vector3, width float32) (math32.Quat, math32.Vector3) {
	d := b.Sub(a)
	l := d.Length()
	var q math32.Quat
	q.SetIdentity()
	if l > 0 {
		q.SetFromUnitVectors(math32.Vec3(0, 1, 0), d.DivScalar(l))
	}
	return q, math32.Vec3(width, l, width)
}
