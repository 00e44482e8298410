// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"cogentcore.org/core/math32"
)

// ClampDelta clamps a delta time in seconds to [0, limit].
func ClampDelta(dt, limit float32) float32 {
	if dt < 0 || math32.IsNaN(dt) {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}

// Oscillate returns amp * sin(2π*freq*t + phase).
// It is periodic in t with period 1/freq.
func Oscillate(t, phase, amp, freq float32) float32 {
	return amp * math32.Sin(2*math32.Pi*freq*t+phase)
}

// Breathe returns a scale factor 1 + amp*sin(rate*t + phase), where
// rate is in radians per second, as used for breathing and pulsing.
func Breathe(t, phase, amp, rate float32) float32 {
	return 1 + amp*math32.Sin(rate*t+phase)
}

// Wave returns base + amp*sin(rate*t + phase), with rate in radians
// per second. It is the general form of [Breathe] for values that do
// not center on 1, such as emissive intensity or opacity.
func Wave(t, phase, base, amp, rate float32) float32 {
	return base + amp*math32.Sin(rate*t+phase)
}

// Spin returns an angle in radians for a constant rotation rate
// in radians per second, offset by phase.
func Spin(t, phase, rate float32) float32 {
	return rate*t + phase
}

// Blink returns an intensity in [0, 1] blinking at rate radians per second.
func Blink(t, phase, rate float32) float32 {
	return 0.5 + 0.5*math32.Sin(rate*t+phase)
}

// PathProgress returns the progress in [0, 1) along a path with the
// given period in seconds, after adding delay to t. It wraps modulo
// the period, including for negative times. A non-positive period
// always returns 0.
func PathProgress(t, delay, period float32) float32 {
	if period <= 0 {
		return 0
	}
	m := math32.Mod(t+delay, period)
	if m < 0 {
		m += period
	}
	p := m / period
	if p >= 1 {
		p = 0
	}
	return p
}

// Lerp3 linearly interpolates between a and b by amount p.
func Lerp3(a, b math32.Vector3, p float32) math32.Vector3 {
	return a.Add(b.Sub(a).MulScalar(p))
}

// LerpAlongPath returns the position at time t of a point travelling
// from start to end once every period seconds, restarting at start.
func LerpAlongPath(t float32, start, end math32.Vector3, period float32) math32.Vector3 {
	return Lerp3(start, end, PathProgress(t, 0, period))
}

// Arc returns the vertical lift of a packet at the given path progress,
// rising to height at the midpoint and back to zero at both ends.
func Arc(progress, height float32) float32 {
	return height * math32.Sin(progress*math32.Pi)
}

// Stream returns the position of particle i of n evenly spaced
// particles travelling along the segment from start to end, where
// progress is the shared [PathProgress] of the stream.
func Stream(i, n int, start, end math32.Vector3, progress float32) math32.Vector3 {
	if n <= 0 {
		return start
	}
	p := math32.Mod(float32(i)/float32(n)+progress, 1)
	return Lerp3(start, end, p)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math32.Vector3
	Max math32.Vector3
}

// Cube returns bounds of a cube centered on the origin
// extending half in every direction.
func Cube(half float32) Bounds {
	return Bounds{Min: math32.Vec3(-half, -half, -half), Max: math32.Vec3(half, half, half)}
}

// Contains returns whether p lies within the bounds, inclusive.
func (b Bounds) Contains(p math32.Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Clamp returns p clamped into the bounds.
func (b Bounds) Clamp(p math32.Vector3) math32.Vector3 {
	return math32.Vec3(
		math32.Clamp(p.X, b.Min.X, b.Max.X),
		math32.Clamp(p.Y, b.Min.Y, b.Max.Y),
		math32.Clamp(p.Z, b.Min.Z, b.Max.Z),
	)
}

// Bounce integrates a free particle for dt seconds and reflects it off
// the faces of the bounds. On crossing a face the corresponding velocity
// component is negated and the position is mirrored back inside, so the
// returned position always lies within the bounds.
//
// Bounce is the only motion function that integrates prior state;
// every other function in this package is a pure function of time.
func Bounce(pos, vel math32.Vector3, b Bounds, dt float32) (math32.Vector3, math32.Vector3) {
	pos = pos.Add(vel.MulScalar(dt))
	pos.X, vel.X = reflect(pos.X, vel.X, b.Min.X, b.Max.X)
	pos.Y, vel.Y = reflect(pos.Y, vel.Y, b.Min.Y, b.Max.Y)
	pos.Z, vel.Z = reflect(pos.Z, vel.Z, b.Min.Z, b.Max.Z)
	return pos, vel
}

// reflect folds x back into [lo, hi], negating v on each reflection.
func reflect(x, v, lo, hi float32) (float32, float32) {
	if hi <= lo {
		return lo, 0
	}
	for range 4 {
		switch {
		case x > hi:
			x = 2*hi - x
			v = -math32.Abs(v)
		case x < lo:
			x = 2*lo - x
			v = math32.Abs(v)
		default:
			return x, v
		}
	}
	// overshoot larger than the box itself: clamp
	return math32.Clamp(x, lo, hi), v
}
