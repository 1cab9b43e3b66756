// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"math"

	"github.com/jeranaias/termraster/internal/gfx"
)

// =============================================================================
// Animated demo scene
// =============================================================================

const (
	trailLength   = 40
	trailSegments = 4
	spinnerSpeed  = 0.05
)

// Scene holds the state of the animated demo: a ball bouncing inside a
// frame, a fading trail behind it, and a spinning line anchored at the
// center. All coordinates are in canvas pixels.
type Scene struct {
	width  float64
	height float64

	ballX, ballY float64
	velX, velY   float64
	radius       float64

	trail []gfx.Point
	tick  int
}

// NewScene creates a scene sized to a canvas of the given pixel dimensions.
func NewScene(width, height int) *Scene {
	s := &Scene{}
	s.Resize(width, height)
	s.ballX = s.width * 0.3
	s.ballY = s.height * 0.4
	s.velX = math.Max(1, s.width/60)
	s.velY = math.Max(1, s.height/80)
	return s
}

// Resize rescales the scene to a new canvas size, keeping the ball's
// relative position so resizes don't teleport it.
func (s *Scene) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if s.width > 0 && s.height > 0 {
		s.ballX *= float64(width) / s.width
		s.ballY *= float64(height) / s.height
	}
	s.width = float64(width)
	s.height = float64(height)
	s.radius = math.Max(2, math.Min(s.width, s.height)/10)
	s.clampBall()
}

// Advance steps the animation by one frame.
func (s *Scene) Advance() {
	s.tick++

	s.ballX += s.velX
	s.ballY += s.velY
	if s.ballX-s.radius < 0 || s.ballX+s.radius >= s.width {
		s.velX = -s.velX
	}
	if s.ballY-s.radius < 0 || s.ballY+s.radius >= s.height {
		s.velY = -s.velY
	}
	s.clampBall()

	s.trail = append(s.trail, gfx.Pt(s.ballX, s.ballY))
	if len(s.trail) > trailLength {
		s.trail = s.trail[len(s.trail)-trailLength:]
	}
}

// Render clears the canvas and draws the current frame onto it.
func (s *Scene) Render(c *gfx.Canvas) {
	c.Clear()

	w := float64(c.Width() - 1)
	h := float64(c.Height() - 1)
	border := gfx.White.WithAlpha(0.6)
	c.DrawShape(gfx.Line{From: gfx.Pt(0, 0), To: gfx.Pt(w, 0), Color: border})
	c.DrawShape(gfx.Line{From: gfx.Pt(w, 0), To: gfx.Pt(w, h), Color: border})
	c.DrawShape(gfx.Line{From: gfx.Pt(w, h), To: gfx.Pt(0, h), Color: border})
	c.DrawShape(gfx.Line{From: gfx.Pt(0, h), To: gfx.Pt(0, 0), Color: border})

	// Spinner: two anti-aliased lines rotating about the center.
	cx, cy := s.width/2, s.height/2
	reach := math.Min(s.width, s.height) * 0.35
	angle := float64(s.tick) * spinnerSpeed
	for i := 0; i < 2; i++ {
		a := angle + float64(i)*math.Pi/2
		dx, dy := math.Cos(a)*reach, math.Sin(a)*reach
		c.DrawShape(gfx.Line{
			From:  gfx.Pt(cx-dx, cy-dy),
			To:    gfx.Pt(cx+dx, cy+dy),
			Color: gfx.Cyan.WithAlpha(0.8),
		})
	}

	// Trail: oldest segments fade toward transparent.
	if len(s.trail) > 0 {
		per := (len(s.trail) + trailSegments - 1) / trailSegments
		for i := 0; i < trailSegments; i++ {
			lo := i * per
			hi := lo + per
			if hi > len(s.trail) {
				hi = len(s.trail)
			}
			if lo >= hi {
				continue
			}
			alpha := 0.15 + 0.6*float64(i)/float64(trailSegments)
			c.DrawShape(gfx.Points{
				Pts:   s.trail[lo:hi],
				Color: gfx.Yellow.WithAlpha(alpha),
			})
		}
	}

	c.DrawShape(gfx.Circle{
		Center: gfx.Pt(s.ballX, s.ballY),
		Radius: s.radius,
		Color:  gfx.Red,
		Filled: true,
	})
	c.DrawShape(gfx.Circle{
		Center: gfx.Pt(s.ballX, s.ballY),
		Radius: s.radius,
		Color:  gfx.White,
		Filled: false,
	})
}

func (s *Scene) clampBall() {
	s.ballX = math.Min(math.Max(s.ballX, s.radius), math.Max(s.radius, s.width-s.radius-1))
	s.ballY = math.Min(math.Max(s.ballY, s.radius), math.Max(s.radius, s.height-s.radius-1))
}
