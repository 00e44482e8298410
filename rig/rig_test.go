// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rig

import (
	"math/rand"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/neonops/infrascene/scene"
	"github.com/stretchr/testify/assert"
)

func testCamera() scene.Camera {
	return scene.Camera{
		Pos: scene.Vec{0, 0, 20}, MinDistance: 10, MaxDistance: 30,
		AutoRotate: true, AutoRotateSpeed: 1, Zoom: true,
	}
}

func TestPosition(t *testing.T) {
	r := New(testCamera())
	assert.InDelta(t, 20, r.Distance(), 1e-5)
	p := r.Position()
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, 0, p.Y, 1e-4)
	assert.InDelta(t, 20, p.Z, 1e-4)

	r = New(scene.Camera{Pos: scene.Vec{15, 8, 15}, MinDistance: 1, MaxDistance: 5})
	assert.Equal(t, float32(5), r.Distance())
}

func TestZoomStaysInBounds(t *testing.T) {
	r := New(testCamera())
	rnd := rand.New(rand.NewSource(1))
	for range 1000 {
		d := (rnd.Float32() - 0.5) * 200
		r.Wheel(d)
		assert.GreaterOrEqual(t, r.Distance(), float32(10))
		assert.LessOrEqual(t, r.Distance(), float32(30))
	}
	r.Wheel(math32.Inf(1))
	assert.Equal(t, float32(30), r.Distance())
	r.Wheel(math32.Inf(-1))
	assert.Equal(t, float32(10), r.Distance())
	assert.False(t, r.Wheel(math32.NaN()))
	assert.Equal(t, float32(10), r.Distance())
}

func TestZoomDisabled(t *testing.T) {
	c := testCamera()
	c.Zoom = false
	r := New(c)
	assert.False(t, r.Wheel(5))
	assert.InDelta(t, 20, r.Distance(), 1e-5)
	assert.Equal(t, Idle, r.State())
}

func TestPanDisabled(t *testing.T) {
	r := New(testCamera())
	tg := r.Target
	assert.False(t, r.Pan(10, 10))
	r.PointerDown()
	r.PointerMove(40, 20)
	assert.Equal(t, tg, r.Target)
}

func TestStateMachine(t *testing.T) {
	r := New(testCamera())
	assert.Equal(t, Idle, r.State())

	r.PointerDown()
	assert.Equal(t, Dragging, r.State())
	az := r.Azimuth()
	assert.True(t, r.PointerMove(10, 0))
	assert.NotEqual(t, az, r.Azimuth())
	r.Update(time.Second)
	assert.Equal(t, Dragging, r.State(), "held pointer keeps dragging")

	r.PointerUp()
	r.Update(100 * time.Millisecond)
	assert.Equal(t, Dragging, r.State(), "within grace")
	r.Update(250 * time.Millisecond)
	assert.Equal(t, Idle, r.State())
	assert.False(t, r.PointerMove(10, 0))

	r.Wheel(1)
	assert.Equal(t, Zooming, r.State())
	r.Update(DefaultGrace)
	assert.Equal(t, Idle, r.State())
}

func TestAutoRotateResumesAfterIdle(t *testing.T) {
	r := New(testCamera())
	az := r.Azimuth()
	r.Update(time.Second)
	// one turn per minute
	assert.InDelta(t, az+2*math32.Pi/60, r.Azimuth(), 1e-4)

	r.PointerDown()
	r.PointerUp()
	az = r.Azimuth()
	r.Update(time.Second)
	assert.Equal(t, az, r.Azimuth(), "not yet idle long enough")
	r.Update(time.Second)
	r.Update(time.Second)
	assert.NotEqual(t, az, r.Azimuth())

	c := testCamera()
	c.AutoRotate = false
	r = New(c)
	az = r.Azimuth()
	r.Update(10 * time.Second)
	assert.Equal(t, az, r.Azimuth())
}

func TestPolarClamped(t *testing.T) {
	r := New(testCamera())
	r.PointerDown()
	r.PointerMove(0, 10000)
	assert.GreaterOrEqual(t, r.Polar(), r.MinPolar)
	r.PointerMove(0, -10000)
	assert.LessOrEqual(t, r.Polar(), r.MaxPolar)
}

func TestTilt(t *testing.T) {
	x, y := Tilt(0.5, -1)
	assert.Equal(t, float32(-2), x)
	assert.Equal(t, float32(1), y)
	x, y = Tilt(5, 5)
	assert.Equal(t, float32(2), x)
	assert.Equal(t, float32(2), y)
}

func TestHover(t *testing.T) {
	r := New(testCamera())
	p := r.Position()
	az := r.Azimuth()
	assert.True(t, r.Hover(1, 0))
	assert.False(t, r.Hover(1, 0))
	tilted := r.Position()
	assert.Equal(t, az, r.Azimuth())
	assert.InDelta(t, 20*math32.Sin(math32.DegToRad(2)), tilted.X, 1e-4)
	assert.InDelta(t, 20, tilted.Length(), 1e-4)
	assert.Equal(t, Idle, r.State())

	assert.True(t, r.Hover(0, 0))
	assert.InDelta(t, p.X, r.Position().X, 1e-5)
	assert.InDelta(t, p.Z, r.Position().Z, 1e-5)

	r.Tilting = false
	assert.False(t, r.Hover(1, 1))
	assert.InDelta(t, p.X, r.Position().X, 1e-5)
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "dragging", Dragging.String())
}
