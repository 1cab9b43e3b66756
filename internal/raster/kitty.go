// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/jeranaias/termraster/internal/gfx"
	"github.com/jeranaias/termraster/internal/termcaps"
)

// =============================================================================
// KITTY GRAPHICS PROTOCOL BACKEND
// =============================================================================

// Kitty protocol framing.
const (
	// kittyChunkSize is the maximum base64 payload per escape frame.
	kittyChunkSize = 4096
	kittyStart     = "\x1b_G"
	kittyEnd       = "\x1b\\"
	// kittyFormatPNG is the f= key value for PNG-encoded payloads.
	kittyFormatPNG = 100
)

// Assumed cell geometry when the capability profile carries none.
const (
	fallbackCellWidth  = 8
	fallbackCellHeight = 16
)

// Kitty is the pixel-perfect backend: it encodes the full canvas as a PNG
// and frames it per the Kitty graphics escape-sequence protocol. The
// instance holds only the detected cell geometry and may be reused across
// frames.
type Kitty struct {
	cellWidth  int
	cellHeight int
}

// NewKitty creates the Kitty backend for a terminal with the given per-cell
// pixel geometry. Non-positive dimensions fall back to the conventional
// 8x16 cell.
func NewKitty(cellWidth, cellHeight int) *Kitty {
	if cellWidth <= 0 {
		cellWidth = fallbackCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = fallbackCellHeight
	}
	return &Kitty{cellWidth: cellWidth, cellHeight: cellHeight}
}

// Name identifies the backend.
func (k *Kitty) Name() string { return "kitty" }

// ResolutionMultiplier reports the per-cell pixel geometry the backend was
// built with, i.e. the sub-pixels addressable per terminal cell.
func (k *Kitty) ResolutionMultiplier() (x, y int) {
	return k.cellWidth, k.cellHeight
}

// Rasterize flattens the canvas to 8-bit RGBA, encodes it as a minimal PNG,
// and frames the base64 payload into Kitty protocol escape sequences. The
// first frame carries the control keys (transmit-and-display, PNG format,
// dimensions); continuation frames carry only the more-data flag. A failed
// encode surfaces as a wrapped ErrEncode rather than an empty payload.
func (k *Kitty) Rasterize(c *gfx.Canvas, caps termcaps.Caps) (Output, error) {
	w, h := c.Width(), c.Height()

	raw := make([]byte, 0, w*h*bytesPerPixel)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			col, _ := c.At(x, y)
			r, g, b, a := col.To8Bit()
			raw = append(raw, r, g, b, a)
		}
	}

	png, err := EncodePNG(raw, w, h)
	if err != nil {
		return nil, fmt.Errorf("kitty rasterize: %w", err)
	}

	payload := base64.StdEncoding.EncodeToString(png)

	var out bytes.Buffer
	first := true
	for len(payload) > 0 {
		n := len(payload)
		if n > kittyChunkSize {
			n = kittyChunkSize
		}
		chunk := payload[:n]
		payload = payload[n:]

		more := 0
		if len(payload) > 0 {
			more = 1
		}

		out.WriteString(kittyStart)
		if first {
			fmt.Fprintf(&out, "a=T,f=%d,s=%d,v=%d,m=%d", kittyFormatPNG, w, h, more)
			first = false
		} else {
			fmt.Fprintf(&out, "m=%d", more)
		}
		out.WriteByte(';')
		out.WriteString(chunk)
		out.WriteString(kittyEnd)
	}

	return Escape{Payload: out.Bytes()}, nil
}
