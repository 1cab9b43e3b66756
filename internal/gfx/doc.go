// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package gfx provides the virtual framebuffer and drawing primitives for the
termraster engine.

This package is the pure core of the engine: everything in it is a
buffer-local computation with no I/O, no logging, and no shared mutable
state. A Canvas owns a row-major grid of floating-point RGBA colors at a
resolution independent of the terminal; shapes rasterize themselves onto
that grid with anti-aliasing and alpha compositing, and the raster package
later converts the finished grid into terminal output.

# Key Types

  - Color: normalized RGBA value type with "over" compositing, luminance,
    and perceptual distance.
  - Point, Rect: float-coordinate geometry used by shapes.
  - Shape: drawable primitive (Line, Circle, Points) that paints into a
    pixel slice.
  - Canvas: the framebuffer itself, with per-pixel access, bilinear
    sampling, and resampled resize.

# Usage

	c := gfx.NewWithBackground(160, 96, gfx.Black)
	c.DrawShape(gfx.Line{From: gfx.Pt(0, 0), To: gfx.Pt(159, 95), Color: gfx.Red})
	c.DrawShape(gfx.Circle{Center: gfx.Pt(80, 48), Radius: 20, Color: gfx.Cyan, Filled: true})

All operations clamp or no-op on out-of-range coordinates; nothing in this
package panics on malformed input.
*/
package gfx
