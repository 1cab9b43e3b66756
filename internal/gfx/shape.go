// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gfx

import "math"

// =============================================================================
// SHAPE INTERFACE
// =============================================================================

// Shape is a drawable primitive. A shape never owns the canvas: Draw receives
// a mutable view of the pixel buffer plus its dimensions and composites
// itself into it. Out-of-bounds plots are silently dropped.
type Shape interface {
	// Draw rasterizes the shape onto the row-major pixel buffer.
	Draw(px []Color, width, height int)
	// Bounds returns the shape's axis-aligned bounding box, for future
	// culling and dirty-rectangle work.
	Bounds() Rect
}

// plot composites col over the pixel at (x, y), dropping the write when the
// coordinate is outside the buffer.
func plot(px []Color, width, height, x, y int, col Color) {
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	i := y*width + x
	px[i] = col.BlendOver(px[i])
}

// =============================================================================
// LINE (Xiaolin Wu anti-aliased)
// =============================================================================

// Line is an anti-aliased line segment rasterized with Xiaolin Wu's
// algorithm. Width is carried for callers that stroke repeatedly with
// offsets; the rasterizer itself draws a single-pixel-pair line.
type Line struct {
	From  Point
	To    Point
	Color Color
	Width float64
}

// Draw rasterizes the line. For each x step two vertically (or, for steep
// lines, horizontally) adjacent pixels receive complementary coverage
// 1-frac(y) and frac(y), scaled into the line color's alpha and composited
// over the existing buffer.
func (l Line) Draw(px []Color, width, height int) {
	x0, y0 := l.From.X, l.From.Y
	x1, y1 := l.To.X, l.To.Y

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	gradient := 1.0
	if math.Abs(dx) > 1e-9 {
		gradient = (y1 - y0) / dx
	}

	y := y0
	for x := int(math.Floor(x0)); x <= int(math.Ceil(x1)); x++ {
		base := math.Floor(y)
		frac := y - base
		yi := int(base)
		if steep {
			plot(px, width, height, yi, x, l.Color.WithAlpha(l.Color.A*(1-frac)))
			plot(px, width, height, yi+1, x, l.Color.WithAlpha(l.Color.A*frac))
		} else {
			plot(px, width, height, x, yi, l.Color.WithAlpha(l.Color.A*(1-frac)))
			plot(px, width, height, x, yi+1, l.Color.WithAlpha(l.Color.A*frac))
		}
		y += gradient
	}
}

// Bounds returns the box spanned by the two endpoints.
func (l Line) Bounds() Rect {
	x := math.Min(l.From.X, l.To.X)
	y := math.Min(l.From.Y, l.To.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Abs(l.To.X - l.From.X),
		H: math.Abs(l.To.Y - l.From.Y),
	}
}

// =============================================================================
// CIRCLE
// =============================================================================

// Circle is a filled or outlined circle with a feathered edge.
type Circle struct {
	Center Point
	Radius float64
	Color  Color
	Filled bool
}

// Draw rasterizes the circle. Only the bounding box (center ± radius, plus a
// one-pixel margin, clamped to the buffer) is visited. Filled circles get
// full coverage inside r-0.5 and a linear feather out to r+0.5; outlines get
// coverage 1-|d-r| within one pixel of the radius.
func (c Circle) Draw(px []Color, width, height int) {
	minX := clampInt(int(math.Floor(c.Center.X-c.Radius))-1, 0, width-1)
	maxX := clampInt(int(math.Ceil(c.Center.X+c.Radius))+1, 0, width-1)
	minY := clampInt(int(math.Floor(c.Center.Y-c.Radius))-1, 0, height-1)
	maxY := clampInt(int(math.Ceil(c.Center.Y+c.Radius))+1, 0, height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d := c.Center.Distance(Pt(float64(x), float64(y)))
			coverage := 0.0
			if c.Filled {
				switch {
				case d <= c.Radius-0.5:
					coverage = 1
				case d <= c.Radius+0.5:
					coverage = c.Radius + 0.5 - d
				}
			} else {
				if diff := math.Abs(d - c.Radius); diff < 1 {
					coverage = 1 - diff
				}
			}
			if coverage > 0 {
				plot(px, width, height, x, y, c.Color.WithAlpha(c.Color.A*coverage))
			}
		}
	}
}

// Bounds returns the square circumscribing the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		X: c.Center.X - c.Radius,
		Y: c.Center.Y - c.Radius,
		W: 2 * c.Radius,
		H: 2 * c.Radius,
	}
}

// =============================================================================
// POINTS
// =============================================================================

// Points composites its color at each point's nearest integer pixel with no
// anti-aliasing. Used for trails and scatter rendering.
type Points struct {
	Pts   []Point
	Color Color
}

// Draw plots every point, rounding to the nearest pixel.
func (p Points) Draw(px []Color, width, height int) {
	for _, pt := range p.Pts {
		x := int(math.Round(pt.X))
		y := int(math.Round(pt.Y))
		plot(px, width, height, x, y, p.Color)
	}
}

// Bounds returns the box spanning all points. An empty point set yields a
// degenerate zero rect.
func (p Points) Bounds() Rect {
	if len(p.Pts) == 0 {
		return Rect{}
	}
	minX, minY := p.Pts[0].X, p.Pts[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Pts[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
