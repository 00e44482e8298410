// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/anim"
)

// Motion is the kind-specific motion payload of an entity or group.
// It is one of [*Wave], [*Path], [*Stream], [*Rise] or [*Bounce];
// the set is closed so that the update switch in [Graph] is exhaustive.
type Motion interface {
	motion()
}

// Wave is a combination of sinusoidal and constant-rate motions,
// all pure functions of time. Rates are in radians per second.
type Wave struct {

	// Bob is the position amplitude per axis.
	Bob math32.Vector3

	// BobRate is the position oscillation rate per axis.
	BobRate math32.Vector3

	// BobPhase is an additional phase per axis, for example π/2
	// to use a cosine.
	BobPhase math32.Vector3

	// Spin is a constant rotation rate per axis.
	Spin math32.Vector3

	// Sway is the rotation amplitude per axis.
	Sway math32.Vector3

	// SwayRate is the rotation oscillation rate per axis.
	SwayRate math32.Vector3

	// SwayPhase is an additional rotation phase per axis.
	SwayPhase math32.Vector3

	// Breathe is the uniform scale amplitude around 1.
	Breathe     float32
	BreatheRate float32

	// Glow is the emissive amplitude around the rest emissive.
	Glow     float32
	GlowRate float32

	// Fade is the opacity amplitude around the rest opacity.
	Fade     float32
	FadeRate float32
}

// Path moves an entity from Start to End once every Period seconds,
// restarting at Start.
type Path struct {
	Start, End math32.Vector3

	Period float32

	// Delay is added to time, staggering packets on the same path.
	Delay float32

	// Arc lifts the packet by up to Arc at the midpoint.
	Arc float32

	// Pulse is the scale amplitude, at PulseRate radians per second
	// of time along the path.
	Pulse     float32
	PulseRate float32

	// Shrink reduces scale linearly to 1-Shrink at the end of the path.
	Shrink float32
}

// Stream is particle Index of Count evenly spaced particles flowing
// along a segment once every Period seconds.
type Stream struct {
	Start, End math32.Vector3

	Index, Count int

	Period, Delay float32
}

// Rise moves a particle upward at Speed, wrapping from Max back to
// Min, with a sideways sway in X.
type Rise struct {
	Min, Max float32
	Speed    float32

	Sway     float32
	SwayRate float32
}

// Bounce is a free particle moving at Velocity (units per second)
// inside Bounds, reflecting off its faces. It is the only motion that
// integrates state from frame to frame: Velocity and the entity
// position are updated in place.
type Bounce struct {
	Velocity math32.Vector3
	Bounds   anim.Bounds
}

func (*Wave) motion()   {}
func (*Path) motion()   {}
func (*Stream) motion() {}
func (*Rise) motion()   {}
func (*Bounce) motion() {}

// apply applies the wave at time t to the transform and, if non-nil,
// the material. The transform and material must be at rest.
func (w *Wave) apply(t, phase float32, tr *Transform, mat *Material) {
	tr.Pos.X += w.Bob.X * math32.Sin(w.BobRate.X*t+phase+w.BobPhase.X)
	tr.Pos.Y += w.Bob.Y * math32.Sin(w.BobRate.Y*t+phase+w.BobPhase.Y)
	tr.Pos.Z += w.Bob.Z * math32.Sin(w.BobRate.Z*t+phase+w.BobPhase.Z)

	tr.Rot.X += anim.Spin(t, 0, w.Spin.X) + w.Sway.X*math32.Sin(w.SwayRate.X*t+phase+w.SwayPhase.X)
	tr.Rot.Y += anim.Spin(t, 0, w.Spin.Y) + w.Sway.Y*math32.Sin(w.SwayRate.Y*t+phase+w.SwayPhase.Y)
	tr.Rot.Z += anim.Spin(t, 0, w.Spin.Z) + w.Sway.Z*math32.Sin(w.SwayRate.Z*t+phase+w.SwayPhase.Z)

	if w.Breathe != 0 {
		tr.Scale = tr.Scale.MulScalar(anim.Breathe(t, phase, w.Breathe, w.BreatheRate))
	}
	if mat == nil {
		return
	}
	if w.Glow != 0 {
		mat.Emissive = anim.Wave(t, phase, mat.Emissive, w.Glow, w.GlowRate)
	}
	if w.Fade != 0 {
		mat.Opacity = math32.Clamp(anim.Wave(t, phase, mat.Opacity, w.Fade, w.FadeRate), 0, 1)
	}
}

func (p *Path) apply(t float32, tr *Transform) {
	prog := anim.PathProgress(t, p.Delay, p.Period)
	tr.Pos = anim.Lerp3(p.Start, p.End, prog)
	tr.Pos.Y += anim.Arc(prog, p.Arc)
	s := float32(1)
	if p.Pulse != 0 {
		s *= anim.Breathe(prog*p.Period, 0, p.Pulse, p.PulseRate)
	}
	if p.Shrink != 0 {
		s *= 1 - prog*p.Shrink
	}
	tr.Scale = math32.Vec3(s, s, s)
}

func (s *Stream) apply(t float32, tr *Transform) {
	prog := anim.PathProgress(t, s.Delay, s.Period)
	tr.Pos = anim.Stream(s.Index, s.Count, s.Start, s.End, prog)
}

func (r *Rise) apply(t, phase float32, base math32.Vector3, tr *Transform) {
	span := r.Max - r.Min
	if span > 0 {
		y := math32.Mod(base.Y-r.Min+r.Speed*t, span)
		if y < 0 {
			y += span
		}
		tr.Pos.Y = r.Min + y
	}
	tr.Pos.X = base.X + r.Sway*math32.Sin(r.SwayRate*t+phase)
}
