// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gfx

import "math"

// =============================================================================
// CANVAS
// =============================================================================

// Canvas is the virtual framebuffer: a row-major width×height grid of Colors
// plus a background color and a dirty flag. The pixel slice always holds
// exactly width*height entries. Out-of-range access is a no-op (writes) or a
// miss (reads), never a fault. A Canvas is not safe for concurrent use;
// callers needing cross-goroutine access must serialize externally.
type Canvas struct {
	width      int
	height     int
	pixels     []Color
	background Color
	dirty      bool
}

// New creates a canvas with a transparent background. Dimensions below one
// are clamped to one so the buffer invariant always holds.
func New(width, height int) *Canvas {
	return NewWithBackground(width, height, Transparent)
}

// NewWithBackground creates a canvas pre-filled with the given background.
func NewWithBackground(width, height int, bg Color) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		width:      width,
		height:     height,
		pixels:     make([]Color, width*height),
		background: bg,
	}
	c.Clear()
	c.dirty = false
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Background returns the canvas background color.
func (c *Canvas) Background() Color { return c.background }

// Dirty reports whether the canvas has been mutated since the last MarkClean.
func (c *Canvas) Dirty() bool { return c.dirty }

// MarkClean resets the dirty flag, typically after a frame has been encoded.
func (c *Canvas) MarkClean() { c.dirty = false }

// =============================================================================
// PIXEL ACCESS
// =============================================================================

// At returns the color at (x, y) and whether the coordinate is in range.
func (c *Canvas) At(x, y int) (Color, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Color{}, false
	}
	return c.pixels[y*c.width+x], true
}

// Set replaces the pixel at (x, y). Out-of-range writes are dropped.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
	c.dirty = true
}

// Blend composites col over the existing pixel at (x, y). Out-of-range
// writes are dropped.
func (c *Canvas) Blend(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := y*c.width + x
	c.pixels[i] = col.BlendOver(c.pixels[i])
	c.dirty = true
}

// Clear resets every pixel to the background color in one pass.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
	c.dirty = true
}

// DrawShape rasterizes a shape onto the canvas.
func (c *Canvas) DrawShape(s Shape) {
	s.Draw(c.pixels, c.width, c.height)
	c.dirty = true
}

// =============================================================================
// SAMPLING AND RESIZE
// =============================================================================

// Sample performs bilinear interpolation at the continuous coordinate
// (x, y). Any of the four integer taps that falls outside the buffer
// contributes the background color instead, which softens edges toward the
// background rather than special-casing them.
func (c *Canvas) Sample(x, y float64) Color {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := x0 + 1
	y1 := y0 + 1
	fx := x - float64(x0)
	fy := y - float64(y0)

	tap := func(px, py int) Color {
		if col, ok := c.At(px, py); ok {
			return col
		}
		return c.background
	}

	c00 := tap(x0, y0)
	c10 := tap(x1, y0)
	c01 := tap(x0, y1)
	c11 := tap(x1, y1)

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }
	mix := func(a, b Color, t float64) Color {
		return Color{
			R: lerp(a.R, b.R, t),
			G: lerp(a.G, b.G, t),
			B: lerp(a.B, b.B, t),
			A: lerp(a.A, b.A, t),
		}
	}

	top := mix(c00, c10, fx)
	bottom := mix(c01, c11, fx)
	return mix(top, bottom, fy)
}

// Resize produces a brand-new canvas at the requested dimensions by
// inverse-mapping each destination pixel to source coordinates and sampling
// bilinearly. The receiver is never mutated; the caller decides whether to
// discard it.
func (c *Canvas) Resize(newWidth, newHeight int) *Canvas {
	out := NewWithBackground(newWidth, newHeight, c.background)
	scaleX := float64(c.width) / float64(out.width)
	scaleY := float64(c.height) / float64(out.height)
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			out.pixels[y*out.width+x] = c.Sample(float64(x)*scaleX, float64(y)*scaleY)
		}
	}
	out.dirty = true
	return out
}
