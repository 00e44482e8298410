// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/core/math32"

	"github.com/neonops/infrascene/scenes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 stage", plural(1, "stage"))
	assert.Equal(t, "0 pods", plural(0, "pod"))
	assert.Equal(t, "3 layers", plural(3, "layer"))
}

func TestSummary(t *testing.T) {
	want := map[string]string{
		"cloud":      "3 layers of services turning around a central core.",
		"pipeline":   "5 stages with packets moving from one to the next.",
		"containers": "3 pods behind a load balancer.",
		"devopscube": "6 tools on a turning cube.",
	}
	for nm, s := range want {
		d, err := scenes.Default(nm)
		require.NoError(t, err)
		assert.Equal(t, s, summary(d), nm)
	}
}

func TestNormalize(t *testing.T) {
	size := image.Pt(200, 100)
	x, y := normalize(image.Pt(100, 50), size)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)
	x, y = normalize(image.Pt(0, 100), size)
	assert.Equal(t, float32(-1), x)
	assert.Equal(t, float32(1), y)
	x, y = normalize(image.Pt(500, -20), size)
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(-1), y)
	x, y = normalize(image.Pt(5, 5), image.Point{})
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestMagnifyDelta(t *testing.T) {
	assert.Zero(t, magnifyDelta(1))
	assert.Zero(t, magnifyDelta(0))
	assert.Less(t, magnifyDelta(2), float32(0), "spreading zooms in")
	assert.Greater(t, magnifyDelta(0.5), float32(0))
	// one rig zoom unit scales the distance by exp(0.1)
	assert.InDelta(t, 0.5, math32.Exp(magnifyDelta(2)*0.1), 1e-4)
}

func TestFrameDelta(t *testing.T) {
	assert.Equal(t, 16*time.Millisecond, frameDelta(16))
	assert.Zero(t, frameDelta(0))
}
