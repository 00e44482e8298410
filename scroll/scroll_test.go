// Copyright (c) 2026, The Infrascene Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnchor(t *testing.T) {
	a, err := ParseAnchor("top bottom+=100")
	require.NoError(t, err)
	assert.Equal(t, Anchor{Element: Top, Viewport: Bottom, Offset: 100}, a)
	assert.Equal(t, "top bottom+=100", a.String())

	a, err = ParseAnchor("center center-=20px")
	require.NoError(t, err)
	assert.Equal(t, Anchor{Element: Center, Viewport: Center, Offset: -20}, a)

	a, err = ParseAnchor("bottom top")
	require.NoError(t, err)
	assert.Equal(t, Anchor{Element: Bottom, Viewport: Top}, a)

	for _, s := range []string{"", "top", "middle top", "top bottom+100", "top bottom+=x"} {
		_, err = ParseAnchor(s)
		assert.Error(t, err, s)
	}
}

func TestProgressMonotonic(t *testing.T) {
	const vh, eh = 800, 400
	prev := float32(-1)
	for top := float32(1200); top >= -600; top -= 7 {
		p := Reveal.Progress(top, eh, vh)
		assert.GreaterOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, float32(0))
		assert.LessOrEqual(t, p, float32(1))
		prev = p
	}
	// starts 100px below the viewport bottom, ends at the center
	assert.Equal(t, float32(0), Reveal.Progress(900, eh, vh))
	assert.InDelta(t, 0.5, Reveal.Progress(650, eh, vh), 1e-6)
	assert.Equal(t, float32(1), Reveal.Progress(400, eh, vh))

	assert.InDelta(t, 0.25, Through.Progress(-100, eh, vh), 1e-6)
}

func TestProgressEmptyRange(t *testing.T) {
	r := Range{Start: Anchor{Viewport: Center}, End: Anchor{Viewport: Center}}
	assert.Equal(t, float32(0), r.Progress(401, 100, 800))
	assert.Equal(t, float32(1), r.Progress(400, 100, 800))
}

func view(vh float32, tops map[string]float32) *Rects {
	r := &Rects{ViewHeight: vh, Rects: map[string]Rect{}}
	for id, top := range tops {
		r.Rects[id] = Rect{Top: top, Height: 400}
	}
	return r
}

func TestRevealLatches(t *testing.T) {
	c := NewController(false)
	var revealed []string
	c.OnReveal = func(s *Section) { revealed = append(revealed, s.ID) }
	s, err := c.Register("features", Reveal, Fade(50))
	require.NoError(t, err)
	assert.False(t, s.Active)
	assert.Equal(t, float32(50), s.Offset)
	assert.Equal(t, float32(0), s.Opacity)

	c.Update(view(800, map[string]float32{"features": 1000}))
	assert.False(t, s.Active)
	c.Update(view(800, map[string]float32{"features": 650}))
	assert.True(t, s.Active)
	assert.InDelta(t, 25, s.Offset, 1e-4)
	assert.InDelta(t, 0.5, s.Opacity, 1e-4)

	// scrolling back out keeps it revealed
	c.Update(view(800, map[string]float32{"features": 2000}))
	assert.True(t, s.Active)
	assert.Equal(t, float32(0), s.Progress)
	c.Update(view(800, map[string]float32{"features": 500}))
	assert.Equal(t, []string{"features"}, revealed)
}

func TestReducedMotion(t *testing.T) {
	c := NewController(true)
	assert.True(t, c.ReducedMotion())
	s, err := c.Register("hero", Reveal, Effects{FromY: 0, ToY: -200, FromOpacity: 1, ToOpacity: 0})
	require.NoError(t, err)
	for _, top := range []float32{900, 650, 300} {
		c.Update(view(800, map[string]float32{"hero": top}))
		assert.Equal(t, float32(0), s.Offset)
		assert.Equal(t, float32(1), s.Opacity)
	}
	assert.True(t, s.Active)
}

func TestUpdateIdempotent(t *testing.T) {
	c := NewController(false)
	a, _ := c.Register("a", Reveal, Fade(30))
	b, _ := c.Register("b", Through, Effects{ToY: -100, FromOpacity: 1, ToOpacity: 1})
	vp := view(800, map[string]float32{"a": 700, "b": -50})
	c.Update(vp)
	sa, sb := *a, *b
	c.Update(vp)
	assert.Equal(t, sa, *a)
	assert.Equal(t, sb, *b)
}

func TestMissingRectKeepsState(t *testing.T) {
	c := NewController(false)
	s, _ := c.Register("a", Reveal, Fade(30))
	c.Update(view(800, map[string]float32{"a": 650}))
	p := s.Progress
	c.Update(view(800, nil))
	assert.Equal(t, p, s.Progress)
}

func TestThrottle(t *testing.T) {
	c := NewController(false)
	_, err := c.Register("a", Reveal, Fade(30))
	require.NoError(t, err)
	vp := view(800, map[string]float32{"a": 650})
	assert.True(t, c.Flush(vp), "registration schedules a recompute")
	for range 25 {
		c.Schedule()
	}
	assert.True(t, c.Dirty())
	assert.True(t, c.Flush(vp))
	assert.False(t, c.Flush(vp))
	assert.Equal(t, 2, c.Updates())
}

func TestRegistry(t *testing.T) {
	c := NewController(false)
	_, err := c.Register("a", Reveal, Effects{})
	require.NoError(t, err)
	_, err = c.Register("a", Reveal, Effects{})
	assert.ErrorIs(t, err, ErrDuplicate)
	_, err = c.Register("b", Reveal, Effects{})
	require.NoError(t, err)
	c.Unregister("a")
	assert.Nil(t, c.Section("a"))
	require.Len(t, c.Sections(), 1)
	assert.Equal(t, "b", c.Sections()[0].ID)
	c.Reset()
	assert.Empty(t, c.Sections())
	assert.False(t, c.Dirty())
}
