// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package termcaps detects and holds the capability profile of the attached
terminal: size, graphics-protocol support, Unicode tier, color depth, and
per-cell pixel geometry.

Detection reads the terminal size (falling back to 80×24) and a fixed set of
environment signals, evaluated in priority order with first match winning.
Every lookup has a default, so detection never fails; the worst case is a
conservative profile (no pixel graphics, ASCII only). Detect once per
session, and detect again on resize — a Caps value is read-only after
construction.

	caps := termcaps.Detect()
	if caps.Protocol == termcaps.ProtocolKitty {
	    // pixel-perfect path
	}
	w, h := caps.SubpixelResolution()
*/
package termcaps
