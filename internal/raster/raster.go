// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package raster

import (
	"github.com/jeranaias/termraster/internal/gfx"
	"github.com/jeranaias/termraster/internal/termcaps"
)

// =============================================================================
// STYLED CELL OUTPUT TYPES
// =============================================================================

// StyledCell is one terminal cell: a glyph plus foreground and background
// colors.
type StyledCell struct {
	Rune rune
	Fg   gfx.Color
	Bg   gfx.Color
}

// StyledLine is one terminal row of styled cells, left to right.
type StyledLine []StyledCell

// Output is the result of rasterizing a canvas. It is a closed sum over the
// backends' native representations; callers switch on the concrete type and
// handle each shape explicitly.
type Output interface {
	isOutput()
}

// Escape is a raw escape-sequence payload, ready to write to the terminal.
type Escape struct {
	Payload []byte
}

// Lines is a row-per-terminal-row grid of styled cells for a text-UI layer
// to paint.
type Lines struct {
	Rows []StyledLine
}

// Cells is a free-form grid of styled cells.
type Cells struct {
	Grid [][]StyledCell
}

func (Escape) isOutput() {}
func (Lines) isOutput()  {}
func (Cells) isOutput()  {}

// =============================================================================
// RASTERIZER INTERFACE AND SELECTION
// =============================================================================

// Rasterizer is a rendering backend: a strategy converting the virtual
// canvas into terminal output for a given capability profile.
type Rasterizer interface {
	// Rasterize encodes the canvas for the terminal described by caps.
	Rasterize(c *gfx.Canvas, caps termcaps.Caps) (Output, error)
	// ResolutionMultiplier returns how many addressable sub-pixels the
	// backend packs per terminal cell, horizontally and vertically.
	ResolutionMultiplier() (x, y int)
	// Name identifies the backend.
	Name() string
}

// Select maps a capability profile to a backend. Pure function: identical
// profiles always yield the same backend kind. Sixel terminals fall back to
// the half-block backend until a dedicated Sixel encoder exists.
func Select(caps termcaps.Caps) Rasterizer {
	switch caps.Protocol {
	case termcaps.ProtocolKitty, termcaps.ProtocolITerm2:
		return NewKitty(caps.CellWidth, caps.CellHeight)
	default:
		return NewHalfBlock()
	}
}
