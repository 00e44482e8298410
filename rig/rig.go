// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rig provides the camera interaction rig: orbit and zoom
// around a fixed target driven by pointer input, with automatic
// rotation when the user is not interacting.
package rig

import (
	"time"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/scene"
)

// States are the interaction states of a [Rig].
type States int32

const (
	// Idle is the resting state, in which the rig auto-rotates
	// once no input has arrived for [Rig.IdleResume].
	Idle States = iota

	// Dragging is while the pointer is down on the surface, and
	// for [Rig.Grace] after it is released.
	Dragging

	// Zooming is after wheel or pinch input, until [Rig.Grace]
	// has passed with no more of it.
	Zooming
)

func (s States) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Zooming:
		return "zooming"
	}
	return "unknown"
}

const (
	// DefaultGrace is the default for [Rig.Grace].
	DefaultGrace = 300 * time.Millisecond

	// DefaultIdleResume is the default for [Rig.IdleResume].
	DefaultIdleResume = 2 * time.Second
)

// Rig is a camera orbiting a fixed target, in spherical coordinates.
// Panning is disabled: the target never moves.
type Rig struct {

	// Target is the point the camera looks at.
	Target math32.Vector3

	// MinDistance and MaxDistance bound the zoom distance.
	MinDistance, MaxDistance float32

	// MinPolar and MaxPolar bound the polar angle from the up axis,
	// in radians.
	MinPolar, MaxPolar float32

	// AutoRotate enables rotation about the up axis when idle.
	AutoRotate bool

	// AutoRotateSpeed is in turns per minute.
	AutoRotateSpeed float32

	// Zoom enables wheel zoom.
	Zoom bool

	// OrbitSpeed is the orbit angle in degrees per pointer unit.
	OrbitSpeed float32

	// ZoomSpeed scales the distance by exp(ZoomSpeed) per wheel unit.
	ZoomSpeed float32

	// Grace is how long after the last input the rig leaves
	// the Dragging and Zooming states.
	Grace time.Duration

	// IdleResume is how long after the last input auto-rotation resumes.
	IdleResume time.Duration

	// Tilting enables the small camera offset toward the hovering
	// pointer set by [Rig.Hover].
	Tilting bool

	state    States
	down     bool
	azimuth  float32
	polar    float32
	distance float32

	// tilt is the hover offset added to the polar and azimuth angles.
	tiltPolar, tiltAzimuth float32

	// since is the time since the last input.
	since time.Duration
}

// New returns a rig for the given camera start pose.
func New(cam scene.Camera) *Rig {
	r := &Rig{
		Target:          cam.Target.V(),
		MinDistance:     cam.MinDistance,
		MaxDistance:     cam.MaxDistance,
		MinPolar:        0.01,
		MaxPolar:        math32.Pi - 0.01,
		AutoRotate:      cam.AutoRotate,
		AutoRotateSpeed: cam.AutoRotateSpeed,
		Zoom:            cam.Zoom,
		OrbitSpeed:      0.5,
		ZoomSpeed:       0.1,
		Grace:           DefaultGrace,
		IdleResume:      DefaultIdleResume,
		Tilting:         true,
	}
	if r.MaxDistance <= 0 {
		r.MaxDistance = math32.Inf(1)
	}
	r.SetPosition(cam.Pos.V())
	r.since = r.IdleResume
	return r
}

// SetPosition places the camera at pos, clamped to the rig bounds.
func (r *Rig) SetPosition(pos math32.Vector3) {
	d := pos.Sub(r.Target)
	r.distance = d.Length()
	if r.distance > 0 {
		r.polar = math32.Acos(math32.Clamp(d.Y/r.distance, -1, 1))
		r.azimuth = math32.Atan2(d.X, d.Z)
	} else {
		r.polar = math32.Pi / 2
	}
	r.clamp()
}

func (r *Rig) clamp() {
	r.distance = math32.Clamp(r.distance, r.MinDistance, r.MaxDistance)
	r.polar = math32.Clamp(r.polar, r.MinPolar, r.MaxPolar)
	r.azimuth = math32.Mod(r.azimuth, 2*math32.Pi)
}

// State returns the interaction state.
func (r *Rig) State() States {
	return r.state
}

// Distance returns the distance from the camera to the target.
func (r *Rig) Distance() float32 {
	return r.distance
}

// Azimuth returns the angle about the up axis, in radians, with zero
// on the +Z axis.
func (r *Rig) Azimuth() float32 {
	return r.azimuth
}

// Polar returns the angle from the up axis, in radians.
func (r *Rig) Polar() float32 {
	return r.polar
}

// Position returns the camera position, including the hover tilt.
func (r *Rig) Position() math32.Vector3 {
	polar := math32.Clamp(r.polar+r.tiltPolar, r.MinPolar, r.MaxPolar)
	az := r.azimuth + r.tiltAzimuth
	s := math32.Sin(polar)
	return r.Target.Add(math32.Vec3(
		r.distance*s*math32.Sin(az),
		r.distance*math32.Cos(polar),
		r.distance*s*math32.Cos(az),
	))
}

func (r *Rig) input() {
	r.since = 0
}

// PointerDown starts dragging.
func (r *Rig) PointerDown() {
	r.down = true
	r.state = Dragging
	r.input()
}

// PointerMove orbits the camera by the pointer movement while
// dragging, and returns whether it did.
func (r *Rig) PointerMove(dx, dy float32) bool {
	if !r.down {
		return false
	}
	r.azimuth -= math32.DegToRad(dx * r.OrbitSpeed)
	r.polar -= math32.DegToRad(dy * r.OrbitSpeed)
	r.clamp()
	r.input()
	return true
}

// PointerUp ends dragging. The rig returns to Idle once
// [Rig.Grace] has passed.
func (r *Rig) PointerUp() {
	if !r.down {
		return
	}
	r.down = false
	r.input()
}

// Wheel zooms by delta wheel units, positive zooming out, and returns
// whether it did. The distance stays within [MinDistance, MaxDistance]
// for any input.
func (r *Rig) Wheel(delta float32) bool {
	if !r.Zoom || delta == 0 || math32.IsNaN(delta) {
		return false
	}
	r.distance *= math32.Exp(delta * r.ZoomSpeed)
	if math32.IsNaN(r.distance) {
		r.distance = r.MinDistance
	}
	r.clamp()
	if !r.down {
		r.state = Zooming
	}
	r.input()
	return true
}

// Pan is disabled and always returns false.
func (r *Rig) Pan(dx, dy float32) bool {
	return false
}

// Update advances the rig by dt: it returns to Idle after the grace
// period or the idle interval, and auto-rotates when idle long enough.
func (r *Rig) Update(dt time.Duration) {
	r.since += dt
	if !r.down && (r.since >= r.Grace || r.since >= r.IdleResume) {
		r.state = Idle
	}
	if r.state != Idle || !r.AutoRotate || r.since < r.IdleResume {
		return
	}
	r.azimuth += 2 * math32.Pi / 60 * r.AutoRotateSpeed * float32(dt.Seconds())
	r.clamp()
}

// Hover tilts the view toward the pointer at x, y, normalized to
// [-1, 1] relative to the surface center with +y down, by the angles
// of [Tilt]. It is not input: auto-rotation keeps running. It returns
// whether the tilt changed.
func (r *Rig) Hover(x, y float32) bool {
	if !r.Tilting {
		return false
	}
	rx, ry := Tilt(x, y)
	p, a := math32.DegToRad(rx), math32.DegToRad(ry)
	if p == r.tiltPolar && a == r.tiltAzimuth {
		return false
	}
	r.tiltPolar, r.tiltAzimuth = p, a
	return true
}

// Tilt returns the rotation in degrees about the X and Y axes of
// a container tilted toward the pointer, for a pointer position
// normalized to [-1, 1] in both axes relative to the container center.
func Tilt(x, y float32) (rotX, rotY float32) {
	x = math32.Clamp(x, -1, 1)
	y = math32.Clamp(y, -1, 1)
	return y * 2, x * 2
}
