// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// DefaultThreshold is the default for [Controller.Threshold].
const DefaultThreshold = 0.1

// ErrDuplicate is returned when a section id is registered twice.
var ErrDuplicate = errors.New("scroll: duplicate section")

// Effects are the parallax effects of a section, interpolated by its
// progress. The zero value has no offset and full opacity.
type Effects struct {

	// FromY and ToY are the vertical offset in pixels at progress 0 and 1.
	FromY, ToY float32

	// FromOpacity and ToOpacity are the opacity at progress 0 and 1.
	FromOpacity, ToOpacity float32
}

// Fade is a fade-in effect that also rises by the given pixels.
func Fade(rise float32) Effects {
	return Effects{FromY: rise, ToY: 0, FromOpacity: 0, ToOpacity: 1}
}

// Section is one page section tracked by a [Controller].
type Section struct {
	ID      string
	Range   Range
	Effects Effects

	// Progress is the last computed progress in [0, 1].
	Progress float32

	// Active is set once Progress reaches the controller threshold,
	// and is never cleared.
	Active bool

	// Offset is the current parallax offset in pixels.
	Offset float32

	// Opacity is the current opacity.
	Opacity float32
}

func (s *Section) apply(p float32, reduced bool) {
	s.Progress = p
	if reduced {
		s.Offset = 0
		s.Opacity = 1
		return
	}
	s.Offset = math32.Lerp(s.Effects.FromY, s.Effects.ToY, p)
	s.Opacity = math32.Lerp(s.Effects.FromOpacity, s.Effects.ToOpacity, p)
}

// Viewport is the source of geometry for an update: the viewport
// height and the current rect of each section element.
type Viewport interface {
	Height() float32

	// Rect returns the rect of the element for the given section id,
	// and false if it is not laid out.
	Rect(id string) (Rect, bool)
}

// Rects is a [Viewport] from a fixed height and map of rects.
type Rects struct {
	ViewHeight float32
	Rects      map[string]Rect
}

func (r *Rects) Height() float32 { return r.ViewHeight }

func (r *Rects) Rect(id string) (Rect, bool) {
	rc, ok := r.Rects[id]
	return rc, ok
}

// Controller computes the progress, reveal and parallax state of
// registered sections from their geometry. It is not safe for
// concurrent use, and is driven from the event loop.
type Controller struct {

	// Threshold is the progress at which a section becomes Active.
	Threshold float32

	// OnReveal, if set, is called once for each section when it
	// becomes Active.
	OnReveal func(s *Section)

	// Logger receives debug output; it defaults to [slog.Default].
	Logger *slog.Logger

	reduced  bool
	sections []*Section
	byID     map[string]*Section
	dirty    bool
	updates  int
}

// NewController returns a controller. Reduced motion is fixed at
// construction: it disables parallax, but reveals still latch.
func NewController(reducedMotion bool) *Controller {
	return &Controller{
		Threshold: DefaultThreshold,
		reduced:   reducedMotion,
		byID:      map[string]*Section{},
	}
}

// ReducedMotion returns whether parallax is disabled.
func (c *Controller) ReducedMotion() bool {
	return c.reduced
}

// Register adds a section and returns it, in its state before
// any update.
func (c *Controller) Register(id string, rng Range, fx Effects) (*Section, error) {
	if _, ok := c.byID[id]; ok {
		return nil, errors.Join(ErrDuplicate, errors.New(id))
	}
	s := &Section{ID: id, Range: rng, Effects: fx}
	s.apply(0, c.reduced)
	c.sections = append(c.sections, s)
	c.byID[id] = s
	c.dirty = true
	return s, nil
}

// Unregister removes the section with the given id.
func (c *Controller) Unregister(id string) {
	s, ok := c.byID[id]
	if !ok {
		return
	}
	delete(c.byID, id)
	for i, o := range c.sections {
		if o == s {
			c.sections = append(c.sections[:i], c.sections[i+1:]...)
			break
		}
	}
}

// Reset removes all sections.
func (c *Controller) Reset() {
	c.sections = nil
	c.byID = map[string]*Section{}
	c.dirty = false
}

// Section returns the section with the given id, or nil.
func (c *Controller) Section(id string) *Section {
	return c.byID[id]
}

// Sections returns the sections in registration order.
func (c *Controller) Sections() []*Section {
	return c.sections
}

// Updates returns the number of recomputes done so far.
func (c *Controller) Updates() int {
	return c.updates
}

// Update recomputes every section from the viewport geometry.
// Sections that are not laid out keep their state. Updating twice
// with the same geometry gives the same result.
func (c *Controller) Update(vp Viewport) {
	c.dirty = false
	c.updates++
	h := vp.Height()
	for _, s := range c.sections {
		rc, ok := vp.Rect(s.ID)
		if !ok {
			continue
		}
		p := s.Range.Progress(rc.Top, rc.Height, h)
		s.apply(p, c.reduced)
		if !s.Active && p >= c.Threshold {
			s.Active = true
			c.logger().Debug("section revealed", "section", s.ID, "progress", p)
			if c.OnReveal != nil {
				c.OnReveal(s)
			}
		}
	}
}

// Schedule marks the controller as needing a recompute, on a scroll
// or resize event.
func (c *Controller) Schedule() {
	c.dirty = true
}

// Dirty returns whether a recompute is scheduled.
func (c *Controller) Dirty() bool {
	return c.dirty
}

// Flush runs at most one recompute if one is scheduled, and returns
// whether it did. It is called once per animation frame, so any
// number of scroll events between frames cost one recompute.
func (c *Controller) Flush(vp Viewport) bool {
	if !c.dirty {
		return false
	}
	c.Update(vp)
	return true
}

func (c *Controller) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
