// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package raster converts a finished gfx.Canvas into terminal-displayable
output, selecting the best encoding the attached terminal supports.

# Backends

  - Kitty: pixel-perfect bitmap transmission over the Kitty graphics
    escape-sequence protocol. The canvas is encoded as a minimal PNG
    (hand-rolled zlib stored blocks, CRC32 and Adler-32 included) and
    framed into base64 chunks.
  - HalfBlock: universal Unicode fallback packing two vertical color
    samples per terminal cell using the upper/lower half-block glyphs.

Select maps a termcaps.Caps profile to a backend; it is a pure function.
Sixel terminals currently reuse the half-block fallback because no Sixel
backend exists yet.

# Output

Rasterize returns an Output, a closed sum over the backends' native
representations: Escape (raw bytes ready to write to stdout), Lines (rows
of styled cells for a text-UI layer to paint), or Cells (a free-form grid).
Callers switch on the concrete type and must handle each shape explicitly.

A Rasterizer instance is stateless apart from small fixed configuration and
may be reused across frames. Nothing in this package performs I/O.
*/
package raster
