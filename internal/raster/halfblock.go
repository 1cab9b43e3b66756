// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package raster

import (
	"github.com/jeranaias/termraster/internal/gfx"
	"github.com/jeranaias/termraster/internal/termcaps"
)

// =============================================================================
// HALF-BLOCK BACKEND
// =============================================================================

// Half-block glyph selection thresholds.
const (
	// sameColorDistance is the perceptual distance below which the top and
	// bottom samples are treated as one color.
	sameColorDistance = 0.1
	// darkLuminance is the luminance below which a uniform cell is emitted
	// as a plain space instead of a full block.
	darkLuminance = 0.1
)

const (
	glyphSpace     = ' '
	glyphFullBlock = '█'
	glyphUpperHalf = '▀'
	glyphLowerHalf = '▄'
)

// HalfBlock is the universal Unicode fallback backend. Every terminal cell
// carries two vertical color samples, rendered with the upper/lower
// half-block glyphs.
type HalfBlock struct{}

// NewHalfBlock creates the half-block backend. The backend is stateless and
// may be shared across frames.
func NewHalfBlock() *HalfBlock {
	return &HalfBlock{}
}

// Name identifies the backend.
func (h *HalfBlock) Name() string { return "halfblock" }

// ResolutionMultiplier reports one horizontal and two vertical sub-pixels
// per cell.
func (h *HalfBlock) ResolutionMultiplier() (x, y int) { return 1, 2 }

// Rasterize maps each terminal cell to a top and bottom sample in canvas
// space (nearest-neighbor, black outside the buffer) and selects a glyph
// per cell. The result is one StyledLine per terminal row.
func (h *HalfBlock) Rasterize(c *gfx.Canvas, caps termcaps.Caps) (Output, error) {
	cols, rows := caps.Cols, caps.Rows
	if cols < 1 {
		cols = termcaps.DefaultCols
	}
	if rows < 1 {
		rows = termcaps.DefaultRows
	}

	mx, my := h.ResolutionMultiplier()
	scaleX := float64(c.Width()) / float64(cols*mx)
	scaleY := float64(c.Height()) / float64(rows*my)

	out := make([]StyledLine, rows)
	for row := 0; row < rows; row++ {
		line := make(StyledLine, cols)
		for col := 0; col < cols; col++ {
			top := samplePixel(c, float64(col)*scaleX, float64(row*2)*scaleY)
			bottom := samplePixel(c, float64(col)*scaleX, float64(row*2+1)*scaleY)
			line[col] = selectCell(top, bottom)
		}
		out[row] = line
	}
	return Lines{Rows: out}, nil
}

// samplePixel reads the nearest canvas pixel, falling back to black when the
// coordinate lands outside the buffer.
func samplePixel(c *gfx.Canvas, x, y float64) gfx.Color {
	col, ok := c.At(int(x), int(y))
	if !ok {
		return gfx.Black
	}
	return col
}

// selectCell chooses the glyph and color pair for one terminal cell from its
// top and bottom samples. Deterministic: identical inputs always produce the
// same cell.
func selectCell(top, bottom gfx.Color) StyledCell {
	if top.Distance(bottom) < sameColorDistance {
		mid := gfx.Color{
			R: (top.R + bottom.R) / 2,
			G: (top.G + bottom.G) / 2,
			B: (top.B + bottom.B) / 2,
			A: (top.A + bottom.A) / 2,
		}
		if mid.Luminance() < darkLuminance {
			return StyledCell{Rune: glyphSpace, Fg: gfx.Black, Bg: mid}
		}
		return StyledCell{Rune: glyphFullBlock, Fg: mid, Bg: gfx.Black}
	}
	if top.Luminance() >= bottom.Luminance() {
		return StyledCell{Rune: glyphUpperHalf, Fg: top, Bg: bottom}
	}
	return StyledCell{Rune: glyphLowerHalf, Fg: bottom, Bg: top}
}
