// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// png.go - Minimal PNG/zlib encoder for the Kitty backend.
//
// The encoder produces a byte-exact, standards-compliant PNG using
// uncompressed "stored" deflate blocks: no real compression, fully
// deterministic output, and no dependency on a compressor. Any standard PNG
// decoder reads the result. CRC32 and Adler-32 are implemented here rather
// than taken from hash/crc32 and hash/adler32 so the whole container format
// lives in one place; the tests cross-check both against the stdlib.

package raster

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrEncode is returned when the canvas cannot be encoded into a bitmap
// container. Callers can distinguish "encoding failed" from "nothing to
// draw".
var ErrEncode = errors.New("bitmap encode failed")

// PNG format constants.
const (
	pngBitDepth    = 8
	pngColorRGBA   = 6
	bytesPerPixel  = 4
	storedBlockMax = 65535
	adlerModulus   = 65521
	crcPolynomial  = 0xEDB88320
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// =============================================================================
// PNG CONTAINER
// =============================================================================

// EncodePNG wraps raw 8-bit RGBA pixel data (row-major, width*height*4
// bytes) into a minimal PNG: signature, IHDR, a single IDAT holding a
// stored-block zlib stream, and an empty IEND. Returns ErrEncode (wrapped)
// when the dimensions and buffer length disagree.
func EncodePNG(raw []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrEncode, width, height)
	}
	want := width * height * bytesPerPixel
	if len(raw) != want {
		return nil, fmt.Errorf("%w: pixel buffer is %d bytes, want %d for %dx%d RGBA",
			ErrEncode, len(raw), want, width, height)
	}

	// Filtered scanlines: each row is prefixed with filter type 0 (None).
	stride := width * bytesPerPixel
	scanlines := make([]byte, 0, height*(stride+1))
	for y := 0; y < height; y++ {
		scanlines = append(scanlines, 0)
		scanlines = append(scanlines, raw[y*stride:(y+1)*stride]...)
	}

	var out bytes.Buffer
	out.Write(pngSignature)

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = pngBitDepth
	ihdr[9] = pngColorRGBA
	// compression, filter, and interlace methods all zero
	writeChunk(&out, "IHDR", ihdr)
	writeChunk(&out, "IDAT", zlibStored(scanlines))
	writeChunk(&out, "IEND", nil)

	return out.Bytes(), nil
}

// writeChunk appends one length-prefixed, CRC32-protected PNG chunk. The CRC
// covers the type tag and the data, not the length.
func writeChunk(out *bytes.Buffer, typ string, data []byte) {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], typ)
	out.Write(header[:])
	out.Write(data)

	crc := crc32Update(0xFFFFFFFF, []byte(typ))
	crc = crc32Update(crc, data)
	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], crc^0xFFFFFFFF)
	out.Write(trailer[:])
}

// =============================================================================
// ZLIB (STORED BLOCKS ONLY)
// =============================================================================

// zlibStored wraps data in a zlib stream whose deflate payload uses only
// stored (uncompressed) blocks of at most 65535 bytes, followed by the
// Adler-32 checksum of the raw data. Valid but non-compressing.
func zlibStored(data []byte) []byte {
	// Worst case: 5 bytes of block header per 65535-byte block.
	out := make([]byte, 0, len(data)+len(data)/storedBlockMax*5+16)
	out = append(out, 0x78, 0x01) // 32K window, fastest-compression hint

	rest := data
	for {
		n := len(rest)
		if n > storedBlockMax {
			n = storedBlockMax
		}
		final := byte(0)
		if n == len(rest) {
			final = 1
		}
		out = append(out, final)
		out = append(out, byte(n), byte(n>>8))   // LEN, little-endian
		out = append(out, ^byte(n), ^byte(n>>8)) // one's complement of LEN
		out = append(out, rest[:n]...)
		rest = rest[n:]
		if len(rest) == 0 {
			break
		}
	}

	var adler [4]byte
	binary.BigEndian.PutUint32(adler[:], adler32Sum(data))
	return append(out, adler[:]...)
}

// adler32Sum computes the Adler-32 checksum: two running sums modulo 65521.
func adler32Sum(data []byte) uint32 {
	a, b := uint32(1), uint32(0)
	for _, c := range data {
		a = (a + uint32(c)) % adlerModulus
		b = (b + a) % adlerModulus
	}
	return b<<16 | a
}

// =============================================================================
// CRC32
// =============================================================================

// crcTable is the bit-reversed CRC32 lookup table for the PNG polynomial.
var crcTable = buildCRCTable()

func buildCRCTable() [256]uint32 {
	var table [256]uint32
	for i := range table {
		c := uint32(i)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = crcPolynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
	return table
}

// crc32Update folds data into a running CRC. Start from 0xFFFFFFFF and
// complement the result to obtain the standard CRC32.
func crc32Update(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc = crcTable[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}
