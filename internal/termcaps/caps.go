// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package termcaps

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// =============================================================================
// CAPABILITY ENUMS
// =============================================================================

// GraphicsProtocol identifies the pixel-graphics protocol a terminal speaks.
type GraphicsProtocol int

const (
	// ProtocolNone means no pixel graphics; Unicode fallback only.
	ProtocolNone GraphicsProtocol = iota
	// ProtocolKitty is the Kitty graphics escape-sequence protocol.
	ProtocolKitty
	// ProtocolITerm2 is the iTerm2 inline-images protocol.
	ProtocolITerm2
	// ProtocolSixel is DEC Sixel. Recognized as a capability but currently
	// never produced by detection and served by the half-block fallback.
	ProtocolSixel
)

// String returns the display name of the protocol.
func (p GraphicsProtocol) String() string {
	switch p {
	case ProtocolKitty:
		return "kitty"
	case ProtocolITerm2:
		return "iterm2"
	case ProtocolSixel:
		return "sixel"
	case ProtocolNone:
		return "none"
	default:
		return "unknown"
	}
}

// UnicodeLevel is the richest block/dot glyph tier the terminal can display.
type UnicodeLevel int

const (
	// UnicodeAscii restricts output to plain ASCII.
	UnicodeAscii UnicodeLevel = iota
	// UnicodeHalfBlock supports the upper/lower half-block glyphs.
	UnicodeHalfBlock
	// UnicodeQuarterBlock supports quadrant glyphs.
	UnicodeQuarterBlock
	// UnicodeBraille supports the 2x4 braille dot patterns.
	UnicodeBraille
	// UnicodeSextant supports the 2x3 sextant mosaics.
	UnicodeSextant
)

// String returns the display name of the Unicode tier.
func (u UnicodeLevel) String() string {
	switch u {
	case UnicodeHalfBlock:
		return "halfblock"
	case UnicodeQuarterBlock:
		return "quarterblock"
	case UnicodeBraille:
		return "braille"
	case UnicodeSextant:
		return "sextant"
	case UnicodeAscii:
		return "ascii"
	default:
		return "unknown"
	}
}

// ColorDepth is the number of distinct colors the terminal renders.
type ColorDepth int

const (
	// DepthMono is monochrome output.
	DepthMono ColorDepth = iota
	// Depth16 is the classic 16-color ANSI palette.
	Depth16
	// Depth256 is the xterm 256-color palette.
	Depth256
	// DepthTrueColor is 24-bit color.
	DepthTrueColor
)

// String returns the display name of the color depth.
func (d ColorDepth) String() string {
	switch d {
	case DepthTrueColor:
		return "truecolor"
	case Depth256:
		return "256color"
	case Depth16:
		return "16color"
	case DepthMono:
		return "mono"
	default:
		return "unknown"
	}
}

// =============================================================================
// CAPABILITY PROFILE
// =============================================================================

// Fallback terminal geometry when size detection is unavailable.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Caps is the detected capability profile of the attached terminal. It is
// created once by Detect and read-only afterward; run detection again after
// a resize to obtain a fresh profile.
type Caps struct {
	Cols       int
	Rows       int
	CellWidth  int
	CellHeight int
	Protocol   GraphicsProtocol
	Unicode    UnicodeLevel
	Depth      ColorDepth
	TermName   string
}

// PixelResolution returns the target bitmap size for protocol backends:
// terminal columns and rows scaled by the per-cell pixel geometry.
func (c Caps) PixelResolution() (w, h int) {
	return c.Cols * c.CellWidth, c.Rows * c.CellHeight
}

// SubpixelResolution returns the effective addressable grid for the detected
// Unicode tier.
func (c Caps) SubpixelResolution() (w, h int) {
	switch c.Unicode {
	case UnicodeSextant:
		return c.Cols * 2, c.Rows * 3
	case UnicodeBraille:
		return c.Cols * 2, c.Rows * 4
	case UnicodeHalfBlock:
		return c.Cols, c.Rows * 2
	case UnicodeQuarterBlock:
		return c.Cols * 2, c.Rows * 2
	default:
		return c.Cols, c.Rows
	}
}

// =============================================================================
// DETECTION POLICY
// =============================================================================

// Detect builds a capability profile from the process environment and the
// current terminal size. Detection never fails: every signal has a fallback,
// so the worst case is a conservative profile.
func Detect() Caps {
	cols, rows := DefaultCols, DefaultRows
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		cols, rows = w, h
	}
	return detectFrom(os.Getenv, cols, rows)
}

// detectFrom is the pure core of Detect, taking an environment getter so the
// policy is testable without mutating the process environment.
func detectFrom(getenv func(string) string, cols, rows int) Caps {
	termName := getenv("TERM")
	cellW, cellH := cellSize(termName)
	return Caps{
		Cols:       cols,
		Rows:       rows,
		CellWidth:  cellW,
		CellHeight: cellH,
		Protocol:   detectProtocol(getenv),
		Unicode:    detectUnicode(getenv),
		Depth:      detectDepth(getenv),
		TermName:   termName,
	}
}

// detectProtocol picks the graphics protocol from environment markers,
// first match wins. Sixel detection is a TODO: no reliable environment
// signal exists, so a DA1 query would be needed and detection currently
// never yields ProtocolSixel.
func detectProtocol(getenv func(string) string) GraphicsProtocol {
	if getenv("KITTY_WINDOW_ID") != "" {
		return ProtocolKitty
	}
	if getenv("ITERM_SESSION_ID") != "" {
		return ProtocolITerm2
	}
	// WezTerm emulates the Kitty graphics protocol.
	if getenv("WEZTERM_PANE") != "" {
		return ProtocolKitty
	}
	if strings.Contains(getenv("TERM"), "kitty") {
		return ProtocolKitty
	}
	switch getenv("TERM_PROGRAM") {
	case "iTerm.app":
		return ProtocolITerm2
	case "WezTerm", "Ghostty":
		return ProtocolKitty
	}
	return ProtocolNone
}

// detectUnicode downgrades to ASCII when neither locale variable carries a
// UTF-8 marker. The default tier is HalfBlock, chosen over the rarer sextant
// tier for compatibility.
func detectUnicode(getenv func(string) string) UnicodeLevel {
	locale := strings.ToLower(getenv("LANG") + getenv("LC_ALL"))
	if !strings.Contains(locale, "utf-8") && !strings.Contains(locale, "utf8") {
		return UnicodeAscii
	}
	return UnicodeHalfBlock
}

// detectDepth resolves the color depth. The default is optimistic: modern
// terminals overwhelmingly support 24-bit color even when TERM says nothing.
func detectDepth(getenv func(string) string) ColorDepth {
	colorterm := strings.ToLower(getenv("COLORTERM"))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return DepthTrueColor
	}
	termName := strings.ToLower(getenv("TERM"))
	if strings.Contains(termName, "256color") ||
		strings.Contains(termName, "24bit") ||
		strings.Contains(termName, "truecolor") {
		return DepthTrueColor
	}
	if strings.Contains(termName, "color") {
		return Depth256
	}
	return DepthTrueColor
}

// cellSize estimates the per-cell pixel geometry from the terminal type.
func cellSize(termName string) (w, h int) {
	name := strings.ToLower(termName)
	switch {
	case strings.Contains(name, "kitty"):
		return 10, 20
	case strings.Contains(name, "alacritty"), strings.Contains(name, "wezterm"):
		return 9, 18
	default:
		return 8, 16
	}
}
