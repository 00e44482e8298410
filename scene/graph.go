// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/anim"
	"github.com/neonops/infrascene/proximity"
)

// Context is passed into every per-frame update. It is constructed by
// the host when a scene is activated and discarded when it is torn down.
type Context struct {

	// Frame is the current clock frame.
	Frame anim.Frame

	// ReducedMotion freezes time-based motion at t = 0 and stops
	// integrating free particles, so the scene renders statically.
	ReducedMotion bool

	// Logger receives update diagnostics. Nil uses [slog.Default].
	Logger *slog.Logger
}

func (c *Context) time() float32 {
	if c.ReducedMotion {
		return 0
	}
	return c.Frame.Elapsed
}

func (c *Context) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Links configures the proximity edges between linked particles.
type Links struct {

	// Threshold is the connection distance; zero disables links.
	Threshold float32

	// Color is the fixed edge color; only opacity varies.
	Color color.RGBA

	// Strategy is the pair search algorithm.
	Strategy proximity.Strategies

	// Tint brightens the emissive of particles in larger clusters.
	Tint bool
}

// Graph composes the entities and groups of one visualization,
// together with its lighting and camera configuration.
// Entities are owned exclusively by the graph and are released
// by [Graph.Teardown].
type Graph struct {

	// Name is the registered scene name.
	Name string

	// Title is a human-readable title.
	Title string

	Camera     Camera
	Lights     []Light
	Background color.RGBA

	// Eye is the current camera position, set by the camera rig.
	// The zero value means Camera.Pos.
	Eye math32.Vector3

	// Links configures proximity edges, see [Graph.SetLinks].
	Links Links

	// Issues are the configuration problems found while building
	// the graph; the affected decorations were omitted.
	Issues []error

	groups   []*Group
	entities []*Entity
	byID     map[string]*Entity
	groupIDs map[string]*Group

	builder *proximity.Builder
	linked  []*Entity
	points  []proximity.Point
	edges   []proximity.Edge
	sizes   []int

	torn bool
}

// NewGraph returns a new empty graph with the given name.
func NewGraph(name string) *Graph {
	return &Graph{
		Name:     name,
		byID:     map[string]*Entity{},
		groupIDs: map[string]*Group{},
		Camera:   DefaultCamera(),
	}
}

// Issue records a configuration problem.
func (g *Graph) Issue(field, format string, args ...any) {
	g.Issues = append(g.Issues, &DescriptionError{Scene: g.Name, Field: field, Msg: fmt.Sprintf(format, args...)})
}

// AddGroup adds a group. A duplicate or unknown parent is recorded as
// an issue; duplicate groups are dropped and unknown parents are
// replaced by the root.
func (g *Graph) AddGroup(gp *Group) *Group {
	if _, has := g.groupIDs[gp.ID]; has || gp.ID == "" {
		g.Issue("group", "duplicate or empty group id %q", gp.ID)
		return nil
	}
	if gp.Parent != "" {
		if _, has := g.groupIDs[gp.Parent]; !has {
			g.Issue("group", "group %q: unknown parent %q", gp.ID, gp.Parent)
			gp.Parent = ""
		}
	}
	gp.reset()
	g.groups = append(g.groups, gp)
	g.groupIDs[gp.ID] = gp
	return gp
}

// Add adds an entity. Duplicate ids are recorded as an issue and the
// entity is dropped, returning nil.
func (g *Graph) Add(e *Entity) *Entity {
	if _, has := g.byID[e.ID]; has || e.ID == "" {
		g.Issue("entity", "duplicate or empty entity id %q", e.ID)
		return nil
	}
	if e.Parent != "" {
		if _, has := g.groupIDs[e.Parent]; !has {
			g.Issue("entity", "entity %q: unknown parent %q", e.ID, e.Parent)
			e.Parent = ""
		}
	}
	if e.Rest.Opacity == 0 {
		e.Rest.Opacity = 1
	}
	if e.Size == (math32.Vector3{}) {
		e.Size = math32.Vec3(1, 1, 1)
	}
	e.reset()
	g.entities = append(g.entities, e)
	g.byID[e.ID] = e
	if e.Linked {
		g.linked = append(g.linked, e)
	}
	return e
}

// SetLinks configures proximity edges between linked particles.
func (g *Graph) SetLinks(l Links) {
	g.Links = l
	g.builder = &proximity.Builder{Threshold: l.Threshold, Strategy: l.Strategy}
}

// Entity returns the entity with the given id, or nil.
func (g *Graph) Entity(id string) *Entity {
	return g.byID[id]
}

// Group returns the group with the given id, or nil.
func (g *Graph) Group(id string) *Group {
	return g.groupIDs[id]
}

// Entities returns the entities in the order they were added.
// The slice must not be modified.
func (g *Graph) Entities() []*Entity {
	return g.entities
}

// Groups returns the groups in the order they were added.
// Parents are always added before their children.
// The slice must not be modified.
func (g *Graph) Groups() []*Group {
	return g.groups
}

// Len returns the number of entities.
func (g *Graph) Len() int {
	return len(g.entities)
}

// Count returns the number of entities of the given kind.
func (g *Graph) Count(k Kinds) int {
	n := 0
	for _, e := range g.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Linked returns the linked particles, in the order
// that edge indexes refer to.
func (g *Graph) Linked() []*Entity {
	return g.linked
}

// Edges returns the proximity edges of the current frame.
// They are replaced on every [Graph.Update].
func (g *Graph) Edges() []proximity.Edge {
	return g.edges
}

// TornDown returns whether [Graph.Teardown] has been called.
func (g *Graph) TornDown() bool {
	return g.torn
}

// Update updates every group and entity for the frame in ctx, then
// rebuilds the proximity edges from the new particle positions.
func (g *Graph) Update(ctx *Context) {
	if g.torn {
		return
	}
	t := ctx.time()
	for _, gp := range g.groups {
		g.updateGroup(gp, t, ctx)
	}
	for _, e := range g.entities {
		g.updateEntity(e, t, ctx)
	}
	g.updateLinks()
}

func (g *Graph) updateGroup(gp *Group, t float32, ctx *Context) {
	gp.reset()
	switch m := gp.Motion.(type) {
	case nil:
	case *Wave:
		m.apply(t, gp.Phase, &gp.Transform, nil)
	case *Path:
		m.apply(t, &gp.Transform)
	case *Stream:
		m.apply(t, &gp.Transform)
	case *Rise:
		m.apply(t, gp.Phase, gp.Base, &gp.Transform)
	case *Bounce:
		ctx.logger().Warn("scene: bounce motion is not supported on groups", "scene", g.Name, "group", gp.ID)
		gp.Motion = nil
	}
}

// updateEntity is the single dispatch point for entity motion.
func (g *Graph) updateEntity(e *Entity, t float32, ctx *Context) {
	if b, ok := e.Motion.(*Bounce); ok {
		pos := e.Transform.Pos
		e.reset()
		if ctx.ReducedMotion {
			e.Transform.Pos = pos
			return
		}
		dt := anim.ClampDelta(ctx.Frame.Delta, float32(anim.DefaultMaxDelta.Seconds()))
		e.Transform.Pos, b.Velocity = anim.Bounce(pos, b.Velocity, b.Bounds, dt)
		return
	}
	e.reset()
	switch m := e.Motion.(type) {
	case nil:
	case *Wave:
		m.apply(t, e.Phase, &e.Transform, &e.Material)
	case *Path:
		m.apply(t, &e.Transform)
	case *Stream:
		m.apply(t, &e.Transform)
	case *Rise:
		m.apply(t, e.Phase, e.Base, &e.Transform)
	}
}

func (g *Graph) updateLinks() {
	g.edges = g.edges[:0]
	if g.builder == nil || g.Links.Threshold <= 0 || len(g.linked) < 2 {
		return
	}
	g.points = g.points[:0]
	for _, e := range g.linked {
		g.points = append(g.points, proximity.Point{ID: e.ID, Pos: e.Transform.Pos})
	}
	g.edges = append(g.edges, g.builder.Build(g.points)...)
	if !g.Links.Tint {
		return
	}
	g.sizes = proximity.ClusterSizes(len(g.linked), g.edges)
	for i, e := range g.linked {
		if s := g.sizes[i]; s > 1 {
			e.Material.Emissive += 0.1 * math32.Min(float32(s-1), 5)
		}
	}
}

// EyePos returns the current camera position.
func (g *Graph) EyePos() math32.Vector3 {
	if g.Eye == (math32.Vector3{}) {
		return g.Camera.Pos.V()
	}
	return g.Eye
}

// Teardown releases all entities, groups and edges. After teardown
// the graph has no entities and Update does nothing.
func (g *Graph) Teardown() {
	g.torn = true
	g.entities = nil
	g.groups = nil
	g.linked = nil
	g.points = nil
	g.edges = nil
	g.sizes = nil
	g.builder = nil
	clear(g.byID)
	clear(g.groupIDs)
}
