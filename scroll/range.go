// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scroll maps the scroll position of page sections onto
// animation progress, for parallax effects and one-shot reveals.
// It is driven by scroll and resize events, independent of the
// frame clock.
package scroll

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// Edges are the reference lines of an element or the viewport.
type Edges int32

const (
	Top Edges = iota
	Center
	Bottom
)

var edgeNames = []string{"top", "center", "bottom"}

func (e Edges) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return "unknown"
	}
	return edgeNames[e]
}

// at returns the position of the edge in a box starting at 0.
func (e Edges) at(height float32) float32 {
	switch e {
	case Center:
		return height / 2
	case Bottom:
		return height
	}
	return 0
}

// Rect is the vertical extent of an element, with Top relative to
// the top of the viewport, in pixels. Top decreases as the page
// scrolls forward.
type Rect struct {
	Top, Height float32
}

// Anchor is the moment when an edge of the element meets an edge of
// the viewport, moved down by Offset pixels.
type Anchor struct {
	Element  Edges
	Viewport Edges
	Offset   float32
}

// top returns the element top at which the anchor is reached.
func (a Anchor) top(elemHeight, viewportHeight float32) float32 {
	return a.Viewport.at(viewportHeight) + a.Offset - a.Element.at(elemHeight)
}

func (a Anchor) String() string {
	s := a.Element.String() + " " + a.Viewport.String()
	switch {
	case a.Offset > 0:
		s += "+=" + strconv.FormatFloat(float64(a.Offset), 'g', -1, 32)
	case a.Offset < 0:
		s += "-=" + strconv.FormatFloat(float64(-a.Offset), 'g', -1, 32)
	}
	return s
}

func parseEdge(s string) (Edges, error) {
	for i, nm := range edgeNames {
		if nm == s {
			return Edges(i), nil
		}
	}
	return Top, fmt.Errorf("scroll: unknown edge %q", s)
}

// ParseAnchor parses an anchor written as the element edge and the
// viewport edge with an optional pixel offset, for example
// "top bottom+=100" or "center center".
func ParseAnchor(s string) (Anchor, error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return Anchor{}, fmt.Errorf("scroll: invalid anchor %q", s)
	}
	var a Anchor
	var err error
	if a.Element, err = parseEdge(f[0]); err != nil {
		return a, err
	}
	vp, off := f[1], ""
	if i := strings.IndexAny(vp, "+-"); i >= 0 {
		vp, off = vp[:i], vp[i:]
	}
	if a.Viewport, err = parseEdge(vp); err != nil {
		return a, err
	}
	if off == "" {
		return a, nil
	}
	if len(off) < 3 || off[1] != '=' {
		return a, fmt.Errorf("scroll: invalid offset in anchor %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(off[2:], "px"), 32)
	if err != nil {
		return a, fmt.Errorf("scroll: invalid offset in anchor %q: %w", s, err)
	}
	a.Offset = float32(v)
	if off[0] == '-' {
		a.Offset = -a.Offset
	}
	return a, nil
}

// Range is the scroll range over which progress goes from 0 at Start
// to 1 at End.
type Range struct {
	Start, End Anchor
}

// Reveal is the range for entrance animations: from the element top
// 100px below the viewport bottom until it reaches the viewport center.
var Reveal = Range{
	Start: Anchor{Element: Top, Viewport: Bottom, Offset: 100},
	End:   Anchor{Element: Top, Viewport: Center},
}

// Through is the range for the hero section: while the element
// scrolls from the viewport top until its bottom leaves it.
var Through = Range{
	Start: Anchor{Element: Top, Viewport: Top},
	End:   Anchor{Element: Bottom, Viewport: Top},
}

// Progress returns the progress in [0, 1] of an element whose top is
// elemTop pixels below the top of a viewport of the given height.
// It is monotonically non-decreasing as the page scrolls forward.
func (r Range) Progress(elemTop, elemHeight, viewportHeight float32) float32 {
	start := r.Start.top(elemHeight, viewportHeight)
	end := r.End.top(elemHeight, viewportHeight)
	span := start - end
	if span <= 0 {
		if elemTop <= end {
			return 1
		}
		return 0
	}
	return math32.Clamp((start-elemTop)/span, 0, 1)
}
