// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host owns the single active scene: it builds the scene
// graph for the selected name, mounts it on a render [Surface], drives
// its clock, camera rig and updates from render ticks, and tears it
// down completely before another scene is activated.
package host

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/google/uuid"
	"github.com/neonops/infrascene/anim"
	"github.com/neonops/infrascene/rig"
	"github.com/neonops/infrascene/scene"
	"github.com/neonops/infrascene/scenes"
)

// ErrNoSurface is returned when a scene is activated without a surface.
var ErrNoSurface = errors.New("host: no render surface")

// Surface is a render target for a scene graph. Mount creates the
// visual objects for every entity of the graph, Sync copies the
// current transforms and materials of the graph into them, and
// Unmount releases everything created by Mount.
type Surface interface {
	Mount(g *scene.Graph) error
	Sync(g *scene.Graph)
	Unmount()
}

// Status is the activation state of the selected scene.
type Status int32

const (
	// Inactive is before any scene is activated.
	Inactive Status = iota

	// Deferred is a selected scene whose construction is waiting
	// for the surface to become visible.
	Deferred

	// Active is a mounted scene that updates on every tick.
	Active

	// Failed is a selected scene that could not be built or mounted.
	Failed
)

var statusNames = []string{"inactive", "deferred", "active", "failed"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Options configure a [Selector].
type Options struct {

	// ReducedMotion, if set, is queried once per activation. When it
	// returns true, entity motion and auto-rotation are disabled.
	ReducedMotion func() bool

	// Visible is the initial visibility of the surface.
	Visible bool

	// Logger defaults to [slog.Default].
	Logger *slog.Logger
}

// Selector owns the single active scene and its surface. All of its
// methods must be called from the same goroutine, typically the
// render loop.
type Selector struct {
	Options

	surface Surface
	name    string
	status  Status
	visible bool
	err     error

	graph     *scene.Graph
	rig       *rig.Rig
	clock     *anim.Clock
	ctx       *scene.Context
	listeners Listeners
	session   string

	// overrides are reloaded descriptions that replace the defaults.
	overrides map[string]*scene.Description
	reloads   <-chan Reload
}

// New returns a selector rendering onto the given surface.
func New(s Surface, opts Options) *Selector {
	return &Selector{
		Options:   opts,
		surface:   s,
		visible:   opts.Visible,
		overrides: map[string]*scene.Description{},
	}
}

func (s *Selector) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Name returns the selected scene name.
func (s *Selector) Name() string { return s.name }

// Status returns the activation state of the selected scene.
func (s *Selector) Status() Status { return s.status }

// Err returns the error of the last failed activation, if any.
func (s *Selector) Err() error { return s.err }

// Graph returns the mounted graph, or nil.
func (s *Selector) Graph() *scene.Graph { return s.graph }

// Rig returns the camera rig of the mounted scene, or nil.
func (s *Selector) Rig() *rig.Rig { return s.rig }

// Session returns the id of the current mount.
func (s *Selector) Session() string { return s.session }

// Listeners returns the input listeners of the current mount.
func (s *Selector) Listeners() *Listeners { return &s.listeners }

// Visible returns whether the surface is visible.
func (s *Selector) Visible() bool { return s.visible }

// Activate selects the named scene. The previous scene is torn down
// completely before the new one is built. If the surface is not
// visible, construction is deferred until [Selector.SetVisible].
func (s *Selector) Activate(name string) error {
	s.teardown()
	s.name = name
	s.err = nil
	if !s.visible {
		s.status = Deferred
		s.logger().Debug("scene activation deferred", "scene", name)
		return nil
	}
	return s.construct()
}

// SetVisible sets whether the surface is visible. A deferred scene is
// constructed when the surface first becomes visible, and the clock of
// a mounted scene is paused while it is hidden.
func (s *Selector) SetVisible(visible bool) error {
	s.visible = visible
	switch {
	case s.status == Deferred && visible:
		return s.construct()
	case s.clock == nil:
	case visible:
		s.clock.Resume()
	default:
		s.clock.Pause()
	}
	return nil
}

// Deactivate tears down the active scene, leaving no scene selected.
func (s *Selector) Deactivate() {
	s.teardown()
	s.name = ""
	s.status = Inactive
}

// Apply replaces the description for its scene name, and reactivates
// that scene if it is the selected one.
func (s *Selector) Apply(d *scene.Description) error {
	s.overrides[d.Name] = d.Clone()
	s.logger().Info("scene description reloaded", "scene", d.Name)
	if d.Name != s.name || s.status == Inactive {
		return nil
	}
	return s.Activate(d.Name)
}

// Watch makes the selector apply reload requests from the given
// channel in [Selector.Tick].
func (s *Selector) Watch(reloads <-chan Reload) {
	s.reloads = reloads
}

func (s *Selector) applyReloads() {
	if s.reloads == nil {
		return
	}
	for {
		select {
		case r, ok := <-s.reloads:
			if !ok {
				s.reloads = nil
				return
			}
			if r.Err != nil {
				s.logger().Warn("scene description reload failed", "path", r.Path, "err", r.Err)
				continue
			}
			errors.Log(s.Apply(r.Description))
		default:
			return
		}
	}
}

func (s *Selector) description(name string) (*scene.Description, error) {
	if d, ok := s.overrides[name]; ok {
		return d, nil
	}
	return scenes.Default(name)
}

func (s *Selector) fail(err error) error {
	s.status = Failed
	s.err = err
	return err
}

// construct builds and mounts the selected scene.
func (s *Selector) construct() error {
	if s.surface == nil {
		return s.fail(ErrNoSurface)
	}
	s.session = uuid.NewString()
	log := s.logger().With("scene", s.name, "session", s.session)
	reduced := s.ReducedMotion != nil && s.ReducedMotion()

	d, err := s.description(s.name)
	if err != nil {
		log.Error("scene activation failed", "err", err)
		return s.fail(err)
	}
	if err := d.Validate(); err != nil {
		log.Warn("scene description has problems", "err", err)
	}
	g, err := scenes.Build(d)
	if g == nil {
		log.Error("scene activation failed", "err", err)
		return s.fail(err)
	}
	if err != nil {
		log.Warn("scene built with problems", "err", err)
	}

	ctx := &scene.Context{Frame: anim.At(0), ReducedMotion: reduced, Logger: log}
	g.Update(ctx)
	if err := s.surface.Mount(g); err != nil {
		g.Teardown()
		s.surface.Unmount()
		log.Error("scene mount failed", "err", err)
		return s.fail(fmt.Errorf("host: mounting scene %q: %w", s.name, err))
	}

	r := rig.New(g.Camera)
	if reduced {
		r.AutoRotate = false
		r.Tilting = false
	}
	g.Eye = r.Position()
	s.graph, s.rig, s.ctx = g, r, ctx
	s.clock = anim.NewClock()
	s.listen()
	s.surface.Sync(g)
	s.status = Active
	log.Info("scene activated", "entities", g.Len(), "reducedMotion", reduced)
	return nil
}

// listen registers the rig input listeners for the current mount.
func (s *Selector) listen() {
	r := s.rig
	s.listeners.Add(PointerDown, func(ev *Event) {
		r.PointerDown()
		ev.SetHandled()
	})
	s.listeners.Add(PointerMove, func(ev *Event) {
		tilted := r.Hover(ev.X, ev.Y)
		if r.PointerMove(ev.DX, ev.DY) || tilted {
			ev.SetHandled()
		}
	})
	s.listeners.Add(PointerUp, func(ev *Event) {
		r.PointerUp()
		ev.SetHandled()
	})
	s.listeners.Add(Wheel, func(ev *Event) {
		if r.Wheel(ev.Delta) {
			ev.SetHandled()
		}
	})
}

// teardown releases the active scene: the graph entities, the surface
// objects and the listener registrations.
func (s *Selector) teardown() {
	if s.graph == nil {
		return
	}
	s.graph.Teardown()
	s.surface.Unmount()
	s.listeners.Reset()
	s.logger().Debug("scene torn down", "scene", s.name, "session", s.session)
	s.graph, s.rig, s.clock, s.ctx = nil, nil, nil, nil
}

// Pointer routes an input event to the active scene, and returns
// whether it was handled.
func (s *Selector) Pointer(ev *Event) bool {
	if s.status != Active {
		return false
	}
	s.listeners.Call(ev)
	return ev.IsHandled()
}

// Tick advances the active scene by one render tick of duration dt:
// it applies pending reloads, then advances the clock and camera rig,
// updates the graph and syncs it to the surface.
func (s *Selector) Tick(dt time.Duration) {
	s.applyReloads()
	if s.status != Active || !s.clock.Running() {
		return
	}
	s.ctx.Frame = s.clock.Tick(dt)
	s.rig.Update(time.Duration(s.ctx.Frame.Delta * float32(time.Second)))
	s.graph.Eye = s.rig.Position()
	s.graph.Update(s.ctx)
	s.surface.Sync(s.graph)
}
