// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

// Types are the types of input event routed to a mounted scene.
type Types int32

const (
	UnknownType Types = iota

	// PointerDown is when the primary pointer is pressed on the surface.
	PointerDown

	// PointerMove is pointer motion, with the movement in DX and DY
	// and the normalized position in X and Y.
	PointerMove

	// PointerUp is when the primary pointer is released.
	PointerUp

	// Wheel is wheel or pinch zoom, with the amount in Delta.
	Wheel
)

var typeNames = []string{"unknown", "pointer-down", "pointer-move", "pointer-up", "wheel"}

func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return typeNames[0]
	}
	return typeNames[t]
}

// Event is a pointer event on the render surface.
type Event struct {
	Type Types

	// X and Y are the pointer position normalized to [-1, 1]
	// relative to the surface center, with +Y down.
	X, Y float32

	// DX and DY are the pointer movement in pixels.
	DX, DY float32

	// Delta is the wheel amount, positive zooming out.
	Delta float32

	handled bool
}

// SetHandled marks the event as handled, which stops it from being
// passed to any further listeners.
func (e *Event) SetHandled() {
	e.handled = true
}

// IsHandled returns whether the event has been handled.
func (e *Event) IsHandled() bool {
	return e.handled
}

// Listeners registers lists of event listener functions by event type.
// They are registered on each mount and reset on teardown.
type Listeners map[Types][]func(ev *Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(*Event))
}

// Add adds a function for the given type.
func (ls *Listeners) Add(typ Types, fun func(*Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls the functions for the event type in reverse order, so
// the last added is called first, stopping once the event is handled.
func (ls *Listeners) Call(ev *Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i](ev)
		if ev.IsHandled() {
			break
		}
	}
}

// Len returns the total number of registered functions.
func (ls *Listeners) Len() int {
	n := 0
	for _, ets := range *ls {
		n += len(ets)
	}
	return n
}

// Reset removes all registrations.
func (ls *Listeners) Reset() {
	*ls = nil
}
