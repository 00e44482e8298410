// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides the frame clock that drives per-frame scene
// updates, and a library of parametric motion functions that map
// elapsed time and a per-entity phase onto transform values.
package anim

import "time"

// DefaultMaxDelta is the largest delta time a single tick may advance
// the clock by. Larger deltas, typically after the surface was hidden,
// are clamped to this value.
const DefaultMaxDelta = 100 * time.Millisecond

// Frame is the time information for one render tick, in seconds.
type Frame struct {

	// Elapsed is the time since the clock was started, not counting
	// time spent paused and with each delta clamped.
	Elapsed float32

	// Delta is the (clamped) time since the previous tick.
	Delta float32

	// Index is the number of ticks since the clock was started.
	Index int
}

// Clock is the monotonic time source for one mounted scene.
// It starts at zero when the scene is mounted, and advances once
// per render tick while running.
type Clock struct {

	// MaxDelta is the clamp applied to every tick delta.
	// Zero means [DefaultMaxDelta].
	MaxDelta time.Duration

	frame   Frame
	running bool
}

// NewClock returns a new running clock at zero.
func NewClock() *Clock {
	c := &Clock{}
	c.Start()
	return c
}

// Start resets the clock to zero and starts it running.
func (c *Clock) Start() {
	c.frame = Frame{}
	c.running = true
}

// Pause suspends the clock; ticks are ignored until [Clock.Resume].
func (c *Clock) Pause() {
	c.running = false
}

// Resume restarts a paused clock without resetting elapsed time.
func (c *Clock) Resume() {
	c.running = true
}

// Running returns whether the clock currently consumes ticks.
func (c *Clock) Running() bool {
	return c.running
}

// Frame returns the most recent frame.
func (c *Clock) Frame() Frame {
	return c.frame
}

// Tick advances the clock by the given delta, clamped to MaxDelta,
// and returns the new frame. Negative deltas are treated as zero.
// A paused clock returns the last frame unchanged.
func (c *Clock) Tick(dt time.Duration) Frame {
	if !c.running {
		return c.frame
	}
	md := c.MaxDelta
	if md <= 0 {
		md = DefaultMaxDelta
	}
	d := ClampDelta(float32(dt.Seconds()), float32(md.Seconds()))
	c.frame.Delta = d
	c.frame.Elapsed += d
	c.frame.Index++
	return c.frame
}

// At returns a frame at the given absolute elapsed time, without
// changing the clock. It is used to evaluate motion functions at
// arbitrary times, for example in tests and previews.
func At(elapsed float32) Frame {
	return Frame{Elapsed: elapsed}
}
