// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gfx provides the virtual framebuffer and drawing primitives.
package gfx

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// COLOR TYPE
// =============================================================================

// alphaEpsilon is the threshold below which a composited alpha is treated as
// fully transparent. Guards the divide in BlendOver.
const alphaEpsilon = 1e-4

// Color is a normalized RGBA color. Components are conceptually in [0,1] but
// are only hard-clamped at the point of conversion to 8-bit output, so
// intermediate arithmetic may step outside the range without losing
// information. Color is an immutable value type; no operation mutates its
// operands.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// Named palette constants.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Cyan        = Color{0, 1, 1, 1}
	Magenta     = Color{1, 0, 1, 1}
	Transparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color from normalized components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from normalized components including alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// From8Bit creates a color from 8-bit channel values.
func From8Bit(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromHex parses a hex color string such as "#1E1E2E" or "#abc" into an
// opaque Color. Returns Transparent and an error for malformed input.
func FromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// =============================================================================
// CONVERSIONS
// =============================================================================

// To8Bit converts the color to 8-bit channels. Components are clamped to
// [0,1] here and nowhere else.
func (c Color) To8Bit() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// Hex returns the color as a "#RRGGBB" string (alpha is dropped).
func (c Color) Hex() string {
	return colorful.Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}.Hex()
}

// WithAlpha returns a copy of the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// =============================================================================
// COMPOSITING AND PERCEPTUAL MATH
// =============================================================================

// BlendOver composites c over bg using the standard un-premultiplied "over"
// operator. When the combined alpha falls below alphaEpsilon the result is
// fully transparent black.
func (c Color) BlendOver(bg Color) Color {
	a := c.A + bg.A*(1-c.A)
	if a < alphaEpsilon {
		return Transparent
	}
	inv := bg.A * (1 - c.A)
	return Color{
		R: (c.R*c.A + bg.R*inv) / a,
		G: (c.G*c.A + bg.G*inv) / a,
		B: (c.B*c.A + bg.B*inv) / a,
		A: a,
	}
}

// Luminance returns the perceptual brightness of the color using the
// Rec. 601 weights.
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Distance returns the Euclidean distance between two colors in RGB space.
// Alpha is ignored; this is a cheap perceptual-similarity measure, not a
// full color-difference formula.
func (c Color) Distance(o Color) float64 {
	dr := c.R - o.R
	dg := c.G - o.G
	db := c.B - o.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
