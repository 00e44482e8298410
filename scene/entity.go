// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scene entities, their per-frame update,
// and the [Graph] that composes them into one visualization, along
// with the declarative [Description] that a graph is built from.
package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Kinds are the kinds of renderable entity.
type Kinds int32

const (
	// KindNode is a solid representing an infrastructure element.
	KindNode Kinds = iota

	// KindConnector is a segment joining two fixed points.
	KindConnector

	// KindParticle is a small point, free or travelling a path.
	KindParticle

	// KindLabel is a text label.
	KindLabel

	// KindIndicator is a status light or ring.
	KindIndicator
)

func (k Kinds) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindConnector:
		return "connector"
	case KindParticle:
		return "particle"
	case KindLabel:
		return "label"
	case KindIndicator:
		return "indicator"
	}
	return "unknown"
}

// Shapes are the mesh shapes an entity can be drawn with.
type Shapes int32

const (
	ShapeBox Shapes = iota
	ShapeSphere
	ShapeCylinder
	ShapeCone
	ShapeTorus
	ShapePlane

	// ShapeOctahedron and ShapeIcosahedron are low-detail spheres.
	ShapeOctahedron
	ShapeIcosahedron

	// ShapeLine is a thin box stretched between the two ends
	// of a [Segment].
	ShapeLine
)

var shapeNames = map[Shapes]string{
	ShapeBox:         "box",
	ShapeSphere:      "sphere",
	ShapeCylinder:    "cylinder",
	ShapeCone:        "cone",
	ShapeTorus:       "torus",
	ShapePlane:       "plane",
	ShapeOctahedron:  "octahedron",
	ShapeIcosahedron: "icosahedron",
	ShapeLine:        "line",
}

func (s Shapes) String() string {
	if nm, ok := shapeNames[s]; ok {
		return nm
	}
	return "unknown"
}

// ShapeFromString returns the shape for the given name.
// Unknown names return [ShapeBox] and false.
func ShapeFromString(s string) (Shapes, bool) {
	for sh, nm := range shapeNames {
		if nm == s {
			return sh, true
		}
	}
	return ShapeBox, false
}

// Transform is the local transform of an entity or group,
// relative to its parent group.
type Transform struct {
	Pos math32.Vector3

	// Rot is the rotation as Euler angles in radians.
	Rot math32.Vector3

	Scale math32.Vector3
}

// Identity returns a transform at pos with no rotation and unit scale.
func Identity(pos math32.Vector3) Transform {
	return Transform{Pos: pos, Scale: math32.Vec3(1, 1, 1)}
}

// Material is the per-frame material state of an entity.
type Material struct {

	// Emissive is the glow intensity, multiplying the entity color.
	Emissive float32

	// Opacity is in [0, 1]; values below 1 render transparent.
	Opacity float32

	// Wireframe draws only edges, where the surface supports it.
	Wireframe bool
}

// Segment is the pair of fixed endpoints of a connector,
// in the coordinates of its parent group.
type Segment struct {
	Start, End math32.Vector3

	// Width is the thickness of the connector.
	Width float32
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float32 {
	return s.End.Sub(s.Start).Length()
}

// Mid returns the midpoint of the segment.
func (s Segment) Mid() math32.Vector3 {
	return s.Start.Add(s.End).MulScalar(0.5)
}

// Entity is a single renderable unit. Its static description is set
// when it is added to a [Graph]; Transform and Material are rewritten
// on every frame from the static description, the clock and Motion.
type Entity struct {

	// ID is unique within the graph.
	ID string

	Kind  Kinds
	Shape Shapes

	// Parent is the ID of the group this entity belongs to,
	// or empty for the graph root.
	Parent string

	// Base is the rest position relative to the parent.
	Base math32.Vector3

	// BaseRot is the rest rotation, as Euler angles in radians.
	BaseRot math32.Vector3

	// Phase is the per-entity offset applied to time-based motion.
	Phase float32

	Color color.RGBA

	// Size is the shape size: box and plane extents, radius in X for
	// spheres, radius and height in X and Y for cones, and also the top
	// radius in Z for cylinders (zero for the same as the bottom).
	// Tori lie in the XY plane, with radius and tube radius in X and Y.
	// For labels, X is the text height.
	Size math32.Vector3

	// Text is the label text, for labels.
	Text string

	// Segment holds the endpoints of a connector.
	Segment *Segment

	// Linked marks particles that take part in proximity edges.
	Linked bool

	// Rest is the material at rest, which motion modulates.
	Rest Material

	// Motion determines how the entity moves over time.
	// Nil means static.
	Motion Motion

	// Transform is the current transform.
	Transform Transform

	// Material is the current material state.
	Material Material
}

// reset restores the current state to the rest state.
func (e *Entity) reset() {
	e.Transform = Transform{Pos: e.Base, Rot: e.BaseRot, Scale: math32.Vec3(1, 1, 1)}
	e.Material = e.Rest
	if e.Segment != nil {
		e.Transform.Pos = e.Segment.Mid()
	}
}

// Group is a transform-only parent of entities and other groups,
// with its own motion.
type Group struct {
	ID     string
	Parent string
	Base   math32.Vector3

	// BaseRot is the rest rotation, as Euler angles in radians.
	BaseRot math32.Vector3

	Phase     float32
	Motion    Motion
	Transform Transform
}

func (g *Group) reset() {
	g.Transform = Transform{Pos: g.Base, Rot: g.BaseRot, Scale: math32.Vec3(1, 1, 1)}
}
