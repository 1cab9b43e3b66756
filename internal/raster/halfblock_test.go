// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package raster

import (
	"testing"

	"github.com/jeranaias/termraster/internal/gfx"
	"github.com/jeranaias/termraster/internal/termcaps"
)

// =============================================================================
// GLYPH SELECTION TESTS
// =============================================================================

func TestSelectCell_Deterministic(t *testing.T) {
	pairs := [][2]gfx.Color{
		{gfx.White, gfx.Black},
		{gfx.Red, gfx.Red},
		{gfx.RGBA(0.5, 0.5, 0.5, 1), gfx.RGBA(0.52, 0.5, 0.5, 1)},
	}
	for _, pair := range pairs {
		first := selectCell(pair[0], pair[1])
		for i := 0; i < 10; i++ {
			if got := selectCell(pair[0], pair[1]); got != first {
				t.Fatalf("selectCell(%v, %v) varied: %v then %v", pair[0], pair[1], first, got)
			}
		}
	}
}

func TestSelectCell_NearEqualNeverHalfBlock(t *testing.T) {
	testCases := []struct {
		name        string
		top, bottom gfx.Color
		glyph       rune
	}{
		{"bright uniform", gfx.White, gfx.White, glyphFullBlock},
		{"slightly different bright", gfx.RGBA(0.9, 0.9, 0.9, 1), gfx.RGBA(0.85, 0.9, 0.9, 1), glyphFullBlock},
		{"dark uniform", gfx.Black, gfx.Black, glyphSpace},
		{"near-black", gfx.RGBA(0.02, 0.02, 0.02, 1), gfx.RGBA(0.05, 0.02, 0.02, 1), glyphSpace},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cell := selectCell(tc.top, tc.bottom)
			if cell.Rune != tc.glyph {
				t.Errorf("glyph = %q, want %q", cell.Rune, tc.glyph)
			}
			if cell.Rune == glyphUpperHalf || cell.Rune == glyphLowerHalf {
				t.Error("near-equal samples must never produce a half-block glyph")
			}
		})
	}
}

func TestSelectCell_ContrastingPicksHalfBlocks(t *testing.T) {
	// Lighter sample becomes the foreground.
	cell := selectCell(gfx.White, gfx.Black)
	if cell.Rune != glyphUpperHalf {
		t.Errorf("white over black glyph = %q, want upper half block", cell.Rune)
	}
	if cell.Fg != gfx.White || cell.Bg != gfx.Black {
		t.Errorf("white over black colors = fg %v bg %v", cell.Fg, cell.Bg)
	}

	cell = selectCell(gfx.Black, gfx.White)
	if cell.Rune != glyphLowerHalf {
		t.Errorf("black over white glyph = %q, want lower half block", cell.Rune)
	}
	if cell.Fg != gfx.White || cell.Bg != gfx.Black {
		t.Errorf("black over white colors = fg %v bg %v", cell.Fg, cell.Bg)
	}
}

func TestSelectCell_UniformMidpointColor(t *testing.T) {
	cell := selectCell(gfx.RGBA(0.6, 0.6, 0.6, 1), gfx.RGBA(0.64, 0.6, 0.6, 1))
	if cell.Rune != glyphFullBlock {
		t.Fatalf("glyph = %q, want full block", cell.Rune)
	}
	if cell.Fg.R < 0.6 || cell.Fg.R > 0.64 {
		t.Errorf("foreground R = %v, want midpoint of samples", cell.Fg.R)
	}
}

// =============================================================================
// FULL RASTERIZE TESTS
// =============================================================================

func TestHalfBlock_OutputShape(t *testing.T) {
	c := gfx.NewWithBackground(80, 48, gfx.Black)
	caps := termcaps.Caps{Cols: 40, Rows: 12, Unicode: termcaps.UnicodeHalfBlock}

	out, err := NewHalfBlock().Rasterize(c, caps)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	lines, ok := out.(Lines)
	if !ok {
		t.Fatalf("output type = %T, want Lines", out)
	}
	if len(lines.Rows) != 12 {
		t.Fatalf("rows = %d, want 12", len(lines.Rows))
	}
	for i, row := range lines.Rows {
		if len(row) != 40 {
			t.Fatalf("row %d has %d cells, want 40", i, len(row))
		}
	}
}

func TestHalfBlock_SplitCanvasUsesHalfGlyphs(t *testing.T) {
	// Top half white, bottom half black, with one canvas row per sample.
	c := gfx.NewWithBackground(10, 2, gfx.Black)
	for x := 0; x < 10; x++ {
		c.Set(x, 0, gfx.White)
	}
	caps := termcaps.Caps{Cols: 10, Rows: 1, Unicode: termcaps.UnicodeHalfBlock}

	out, err := NewHalfBlock().Rasterize(c, caps)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	lines := out.(Lines)
	for x, cell := range lines.Rows[0] {
		if cell.Rune != glyphUpperHalf {
			t.Errorf("cell %d glyph = %q, want upper half block", x, cell.Rune)
		}
	}
}

func TestHalfBlock_DefaultsDegenerateCaps(t *testing.T) {
	c := gfx.New(8, 8)
	out, err := NewHalfBlock().Rasterize(c, termcaps.Caps{})
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	lines := out.(Lines)
	if len(lines.Rows) != termcaps.DefaultRows {
		t.Errorf("rows = %d, want default %d", len(lines.Rows), termcaps.DefaultRows)
	}
}

func TestHalfBlock_ResolutionMultiplier(t *testing.T) {
	x, y := NewHalfBlock().ResolutionMultiplier()
	if x != 1 || y != 2 {
		t.Errorf("ResolutionMultiplier = (%d,%d), want (1,2)", x, y)
	}
}

// =============================================================================
// SELECTION POLICY TESTS
// =============================================================================

func TestSelect(t *testing.T) {
	testCases := []struct {
		name     string
		protocol termcaps.GraphicsProtocol
		backend  string
	}{
		{"kitty", termcaps.ProtocolKitty, "kitty"},
		{"iterm2 uses kitty-style backend", termcaps.ProtocolITerm2, "kitty"},
		{"none falls back", termcaps.ProtocolNone, "halfblock"},
		{"sixel falls back", termcaps.ProtocolSixel, "halfblock"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := Select(termcaps.Caps{Protocol: tc.protocol})
			if r.Name() != tc.backend {
				t.Errorf("Select(%v) = %q, want %q", tc.protocol, r.Name(), tc.backend)
			}
		})
	}
}

func TestSelect_KittyCarriesDetectedCellSize(t *testing.T) {
	r := Select(termcaps.Caps{Protocol: termcaps.ProtocolKitty, CellWidth: 10, CellHeight: 20})
	x, y := r.ResolutionMultiplier()
	if x != 10 || y != 20 {
		t.Errorf("ResolutionMultiplier = (%d,%d), want detected (10,20)", x, y)
	}
}
