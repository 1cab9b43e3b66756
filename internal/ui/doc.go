// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package ui provides the interactive demo application for the termraster
engine, built on Bubble Tea.

The model owns a Canvas sized to the terminal's sub-pixel resolution, an
animated Scene that redraws it every tick, and the Rasterizer selected for
the detected capability profile. Window resizes trigger a fresh capability
detection and a resampled canvas resize; key bindings cycle the forced
backend and pause the animation. Styled-cell output is painted through
termenv so colors degrade with the detected color depth, and the chrome
around the frame is styled with Lip Gloss.
*/
package ui
