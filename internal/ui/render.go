// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/jeranaias/termraster/internal/raster"
	"github.com/jeranaias/termraster/internal/termcaps"
	"github.com/jeranaias/termraster/internal/util"
)

// =============================================================================
// Styled-cell output → ANSI
// =============================================================================

// ProfileFor maps a detected color depth to the termenv profile used to
// downsample cell colors.
func ProfileFor(depth termcaps.ColorDepth) termenv.Profile {
	switch depth {
	case termcaps.DepthTrueColor:
		return termenv.TrueColor
	case termcaps.Depth256:
		return termenv.ANSI256
	case termcaps.Depth16:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// RenderOutput converts rasterizer output to a string ready for the
// terminal. Escape payloads pass through untouched; styled cells are
// painted with colors downsampled to the given profile.
func RenderOutput(out raster.Output, profile termenv.Profile) string {
	switch o := out.(type) {
	case raster.Escape:
		return string(o.Payload)
	case raster.Lines:
		return renderRows(o.Rows, profile)
	case raster.Cells:
		rows := make([]raster.StyledLine, len(o.Grid))
		for i, r := range o.Grid {
			rows[i] = raster.StyledLine(r)
		}
		return renderRows(rows, profile)
	default:
		return ""
	}
}

func renderRows(rows []raster.StyledLine, profile termenv.Profile) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			r := cell.Rune
			// Wide or zero-width runes would shear the grid.
			if util.RuneWidth(r) != 1 {
				r = ' '
			}
			if profile == termenv.Ascii {
				sb.WriteRune(r)
				continue
			}
			styled := termenv.String(string(r)).
				Foreground(profile.Color(cell.Fg.Hex())).
				Background(profile.Color(cell.Bg.Hex()))
			sb.WriteString(styled.String())
		}
	}
	return sb.String()
}
