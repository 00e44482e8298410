// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer provides the interactive page: a hero section, a row
// of scene tabs above the 3D scene surface, and feature sections that
// fade in as the page scrolls.
package viewer

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/neonops/infrascene/host"
	"github.com/neonops/infrascene/scene"
	"github.com/neonops/infrascene/scenes"
	"github.com/neonops/infrascene/scroll"
	"github.com/neonops/infrascene/xyzview"
)

// Options configure a [Viewer].
type Options struct {

	// Scene is the scene selected at start.
	Scene string

	// ReducedMotion disables entity motion, auto-rotation and parallax.
	ReducedMotion bool

	// Reloads, if set, delivers changed description files.
	Reloads <-chan host.Reload

	Logger *slog.Logger
}

// Viewer is the page showing one selected scene at a time.
type Viewer struct {
	Selector *host.Selector
	Surface  *xyzview.Surface
	Scroll   *scroll.Controller

	// View is the 3D scene widget.
	View *xyzcore.Scene

	body     *core.Body
	tabs     map[string]*core.Button
	sections map[string]core.Widget
}

// New adds the page to b.
func New(b *core.Body, opts Options) *Viewer {
	v := &Viewer{
		body:     b,
		tabs:     map[string]*core.Button{},
		sections: map[string]core.Widget{},
	}
	v.Scroll = scroll.NewController(opts.ReducedMotion)
	v.Scroll.Logger = opts.Logger

	hero := core.NewFrame(b)
	hero.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Align.Items = styles.Center
		s.Min.Y.Dp(320)
	})
	core.NewText(hero).SetText("Infrastructure in motion").SetType(core.TextDisplayMedium)
	core.NewText(hero).SetText("Procedural 3D views of cloud, pipeline, container and data center topologies")
	v.section(hero, "hero", scroll.Through, scroll.Effects{FromY: 0, ToY: -200, FromOpacity: 1, ToOpacity: 0})

	bar := core.NewFrame(b)
	bar.Styler(func(s *styles.Style) {
		s.Justify.Content = styles.Center
	})
	for _, nm := range scenes.Order {
		if nm == "starfield" {
			continue
		}
		d := errors.Log1(scenes.Default(nm))
		title := nm
		if d != nil {
			title = d.Title
		}
		bt := core.NewButton(bar).SetText(title).SetType(core.ButtonTonal)
		bt.OnClick(func(e events.Event) {
			v.activate(nm)
		})
		v.tabs[nm] = bt
	}

	v.View = xyzcore.NewScene(b)
	v.View.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dp(640), units.Dp(480))
		s.Grow.Set(1, 0)
	})
	v.Surface = xyzview.New(v.View.XYZ)
	v.Selector = host.New(v.Surface, host.Options{
		ReducedMotion: func() bool { return opts.ReducedMotion },
		Logger:        opts.Logger,
	})
	if opts.Reloads != nil {
		v.Selector.Watch(opts.Reloads)
	}
	v.handleInput()

	for _, nm := range scenes.Order {
		d, err := scenes.Default(nm)
		if err != nil || nm == "starfield" {
			continue
		}
		v.feature(b, d)
	}

	start := opts.Scene
	if start == "" {
		start = scenes.Order[0]
	}
	v.activate(start)

	// the scene is built on the first frame the surface is visible
	v.View.Animate(func(a *core.Animation) {
		if !v.Selector.Visible() {
			errors.Log(v.Selector.SetVisible(true))
		}
		v.Selector.Tick(frameDelta(a.Dt))
		v.flushScroll()
		v.View.NeedsRender()
	})
	b.On(events.Scroll, func(e events.Event) {
		v.Scroll.Schedule()
	})
	return v
}

// activate selects a scene and highlights its tab.
func (v *Viewer) activate(name string) {
	if err := v.Selector.Activate(name); err != nil {
		core.ErrorSnackbar(v.body, err, "Could not show scene")
	}
	for nm, bt := range v.tabs {
		if nm == name {
			bt.SetType(core.ButtonFilled)
		} else {
			bt.SetType(core.ButtonTonal)
		}
		bt.Update()
	}
}

// feature adds a section describing a scene, which fades in
// as it scrolls into view.
func (v *Viewer) feature(b *core.Body, d *scene.Description) {
	fr := core.NewFrame(b)
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Padding.Set(units.Dp(24))
		s.Min.Y.Dp(240)
	})
	core.NewText(fr).SetText(d.Title).SetType(core.TextHeadlineSmall)
	core.NewText(fr).SetText(summary(d))
	v.section(fr, d.Name, scroll.Reveal, scroll.Fade(50))
}

// section registers w with the scroll controller, styled by its state.
func (v *Viewer) section(w core.Widget, id string, rng scroll.Range, fx scroll.Effects) {
	sec, err := v.Scroll.Register(id, rng, fx)
	if errors.Log(err) != nil {
		return
	}
	v.sections[id] = w
	w.AsWidget().Styler(func(s *styles.Style) {
		s.Opacity = sec.Opacity
	})
}

// flushScroll runs the scroll recompute scheduled since the last frame,
// and restyles the sections.
func (v *Viewer) flushScroll() {
	if !v.Scroll.Flush(&layout{v}) {
		return
	}
	for _, w := range v.sections {
		w.AsWidget().Style()
		w.AsWidget().NeedsRender()
	}
}

// layout is the [scroll.Viewport] of the page body.
type layout struct {
	v *Viewer
}

func (l *layout) Height() float32 {
	return float32(l.v.body.Geom.ContentBBox.Dy())
}

func (l *layout) Rect(id string) (scroll.Rect, bool) {
	w, ok := l.v.sections[id]
	if !ok {
		return scroll.Rect{}, false
	}
	bb := w.AsWidget().Geom.TotalBBox
	if bb.Empty() {
		return scroll.Rect{}, false
	}
	top := l.v.body.Geom.ContentBBox.Min.Y
	return scroll.Rect{Top: float32(bb.Min.Y - top), Height: float32(bb.Dy())}, true
}

// summary describes the contents of a scene description.
func summary(d *scene.Description) string {
	switch {
	case len(d.Layers) > 0:
		return plural(len(d.Layers), "layer") + " of services turning around a central core."
	case len(d.Stages) > 0:
		return plural(len(d.Stages), "stage") + " with packets moving from one to the next."
	case len(d.Pods) > 0:
		return plural(len(d.Pods), "pod") + " behind a load balancer."
	case len(d.Racks) > 0:
		return plural(len(d.Racks), "rack") + " streaming data to the core switch."
	case d.Particles.Count > 0:
		return plural(d.Particles.Count, "node") + " linked by proximity."
	case len(d.Faces) > 0:
		return plural(len(d.Faces), "tool") + " on a turning cube."
	}
	return d.Title
}
