// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/termraster/internal/gfx"
)

func TestSceneBallStaysInBounds(t *testing.T) {
	s := NewScene(80, 48)
	for i := 0; i < 1000; i++ {
		s.Advance()
		assert.GreaterOrEqual(t, s.ballX, 0.0)
		assert.GreaterOrEqual(t, s.ballY, 0.0)
		assert.Less(t, s.ballX, s.width)
		assert.Less(t, s.ballY, s.height)
	}
}

func TestSceneRenderDrawsSomething(t *testing.T) {
	s := NewScene(60, 40)
	c := gfx.New(60, 40)
	s.Advance()
	s.Render(c)

	drawn := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			px, ok := c.At(x, y)
			require.True(t, ok)
			if px != gfx.Transparent {
				drawn++
			}
		}
	}
	assert.Greater(t, drawn, 0, "a rendered frame should touch pixels")
	assert.True(t, c.Dirty())
}

func TestSceneResizeKeepsRelativePosition(t *testing.T) {
	s := NewScene(100, 100)
	s.ballX, s.ballY = 50, 25

	s.Resize(200, 200)
	assert.InDelta(t, 100, s.ballX, 1e-9)
	assert.InDelta(t, 50, s.ballY, 1e-9)
}

func TestSceneTrailBounded(t *testing.T) {
	s := NewScene(80, 48)
	for i := 0; i < trailLength*3; i++ {
		s.Advance()
	}
	assert.LessOrEqual(t, len(s.trail), trailLength)
}

func TestSceneDegenerateSize(t *testing.T) {
	s := NewScene(0, 0)
	c := gfx.New(1, 1)
	s.Advance()
	s.Render(c) // must not panic
}
