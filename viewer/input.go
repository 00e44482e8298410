// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image"
	"time"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/host"
)

// wheelUnit is the scroll distance in pixels of one wheel unit.
const wheelUnit = 100

// handleInput routes pointer input on the scene widget to the selector.
func (v *Viewer) handleInput() {
	pointer := func(ev *host.Event, e events.Event) {
		if v.Selector.Pointer(ev) {
			e.SetHandled()
		}
	}
	move := func(e events.Event, d image.Point) {
		x, y := normalize(e.Pos(), v.View.Geom.TotalBBox.Size())
		pointer(&host.Event{Type: host.PointerMove, X: x, Y: y, DX: float32(d.X), DY: float32(d.Y)}, e)
	}
	v.View.On(events.MouseDown, func(e events.Event) {
		pointer(&host.Event{Type: host.PointerDown}, e)
	})
	v.View.On(events.MouseUp, func(e events.Event) {
		pointer(&host.Event{Type: host.PointerUp}, e)
	})
	v.View.On(events.SlideMove, func(e events.Event) {
		move(e, e.PrevDelta())
	})
	v.View.On(events.MouseMove, func(e events.Event) {
		move(e, image.Point{})
	})
	v.View.On(events.MouseLeave, func(e events.Event) {
		pointer(&host.Event{Type: host.PointerMove}, e)
	})
	v.View.On(events.Scroll, func(e events.Event) {
		se := e.(*events.MouseScroll)
		pointer(&host.Event{Type: host.Wheel, Delta: se.Delta.Y / wheelUnit}, e)
	})
	v.View.On(events.Magnify, func(e events.Event) {
		me := e.(*events.TouchMagnify)
		pointer(&host.Event{Type: host.Wheel, Delta: magnifyDelta(me.ScaleFactor)}, e)
	})
}

// normalize maps a position local to a widget of the given size onto
// [-1, 1] in both axes, with the origin at the widget center.
func normalize(p image.Point, size image.Point) (x, y float32) {
	if size.X <= 0 || size.Y <= 0 {
		return 0, 0
	}
	x = 2*float32(p.X)/float32(size.X) - 1
	y = 2*float32(p.Y)/float32(size.Y) - 1
	return math32.Clamp(x, -1, 1), math32.Clamp(y, -1, 1)
}

// magnifyDelta converts a pinch scale factor into wheel units:
// spreading the fingers (a factor above 1) zooms in by that factor.
func magnifyDelta(scale float32) float32 {
	if scale <= 0 {
		return 0
	}
	return -math32.Log(scale) * 10
}

// frameDelta converts an animation step in milliseconds to a duration.
func frameDelta(ms float32) time.Duration {
	return time.Duration(ms * float32(time.Millisecond))
}
