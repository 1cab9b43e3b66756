// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gfx

import (
	"math"
	"testing"
)

// drawOnto rasterizes a shape onto a fresh black canvas and returns it.
func drawOnto(s Shape, w, h int) *Canvas {
	c := NewWithBackground(w, h, Black)
	c.DrawShape(s)
	return c
}

// =============================================================================
// LINE TESTS
// =============================================================================

func TestLine_HorizontalCoversRow(t *testing.T) {
	c := drawOnto(Line{From: Pt(1, 5), To: Pt(8, 5), Color: White}, 10, 10)
	for x := 1; x <= 8; x++ {
		col, _ := c.At(x, 5)
		if col.Luminance() < 0.9 {
			t.Errorf("pixel (%d,5) = %v, want near white", x, col)
		}
	}
	// Rows away from the line stay black.
	if col, _ := c.At(4, 2); col.Luminance() > 0.01 {
		t.Errorf("pixel (4,2) = %v, want black", col)
	}
}

func TestLine_SteepTransposes(t *testing.T) {
	c := drawOnto(Line{From: Pt(5, 1), To: Pt(5, 8), Color: White}, 10, 10)
	for y := 1; y <= 8; y++ {
		col, _ := c.At(5, y)
		if col.Luminance() < 0.9 {
			t.Errorf("pixel (5,%d) = %v, want near white", y, col)
		}
	}
}

func TestLine_DiagonalComplementaryCoverage(t *testing.T) {
	// A 45-degree line lands exactly on pixel centers, so frac(y) is zero
	// and the primary pixel gets full intensity.
	c := drawOnto(Line{From: Pt(0, 0), To: Pt(9, 9), Color: White}, 10, 10)
	for i := 0; i <= 9; i++ {
		col, _ := c.At(i, i)
		if col.Luminance() < 0.9 {
			t.Errorf("pixel (%d,%d) = %v, want near white", i, i, col)
		}
	}
}

func TestLine_AntiAliasSplitsCoverage(t *testing.T) {
	// A gentle slope produces fractional y positions whose coverage is
	// split between two adjacent rows.
	c := drawOnto(Line{From: Pt(0, 0), To: Pt(9, 3), Color: White}, 12, 12)
	col1, _ := c.At(3, 1)
	col2, _ := c.At(3, 2)
	if col1.Luminance() == 0 && col2.Luminance() == 0 {
		t.Error("expected coverage on at least one of the two rows straddling the line")
	}
}

func TestLine_OutOfBoundsDropped(t *testing.T) {
	// Must not panic, and in-range portions still render.
	c := drawOnto(Line{From: Pt(-20, -20), To: Pt(30, 30), Color: White}, 10, 10)
	if col, _ := c.At(5, 5); col.Luminance() < 0.9 {
		t.Errorf("in-range pixel lost: %v", col)
	}
}

func TestLine_ZeroLength(t *testing.T) {
	// Degenerate segment: gradient guard must prevent a division blowup.
	c := drawOnto(Line{From: Pt(4, 4), To: Pt(4, 4), Color: White}, 10, 10)
	col, _ := c.At(4, 4)
	if math.IsNaN(col.R) {
		t.Error("zero-length line produced NaN")
	}
}

func TestLine_Bounds(t *testing.T) {
	b := Line{From: Pt(5, 1), To: Pt(2, 6)}.Bounds()
	want := Rect{X: 2, Y: 1, W: 3, H: 5}
	if b != want {
		t.Errorf("Bounds = %v, want %v", b, want)
	}
}

// =============================================================================
// CIRCLE TESTS
// =============================================================================

func TestCircle_FilledCoverage(t *testing.T) {
	c := drawOnto(Circle{Center: Pt(10, 10), Radius: 5, Color: White, Filled: true}, 21, 21)

	// Center is fully covered.
	if col, _ := c.At(10, 10); col.Luminance() < 0.99 {
		t.Errorf("center = %v, want white", col)
	}
	// Well inside the radius is fully covered.
	if col, _ := c.At(12, 10); col.Luminance() < 0.99 {
		t.Errorf("interior = %v, want white", col)
	}
	// Well outside stays black.
	if col, _ := c.At(10, 18); col.Luminance() > 0.01 {
		t.Errorf("exterior = %v, want black", col)
	}
	// The feather band gets partial coverage.
	if col, _ := c.At(15, 10); col.Luminance() <= 0.01 || col.Luminance() >= 0.99 {
		t.Errorf("feather pixel = %v, want partial coverage", col)
	}
}

func TestCircle_OutlineBand(t *testing.T) {
	c := drawOnto(Circle{Center: Pt(10, 10), Radius: 6, Color: White}, 21, 21)

	// On the radius: full coverage.
	if col, _ := c.At(16, 10); col.Luminance() < 0.99 {
		t.Errorf("rim pixel = %v, want white", col)
	}
	// Center of an outline circle stays black.
	if col, _ := c.At(10, 10); col.Luminance() > 0.01 {
		t.Errorf("center = %v, want black for outline", col)
	}
}

func TestCircle_ClampsToBuffer(t *testing.T) {
	// Circle mostly off-canvas: must not panic, visible arc still drawn.
	c := drawOnto(Circle{Center: Pt(0, 0), Radius: 4, Color: White, Filled: true}, 10, 10)
	if col, _ := c.At(1, 1); col.Luminance() < 0.9 {
		t.Errorf("visible arc pixel = %v, want white", col)
	}
}

func TestCircle_Bounds(t *testing.T) {
	b := Circle{Center: Pt(10, 20), Radius: 3}.Bounds()
	want := Rect{X: 7, Y: 17, W: 6, H: 6}
	if b != want {
		t.Errorf("Bounds = %v, want %v", b, want)
	}
}

// =============================================================================
// POINTS TESTS
// =============================================================================

func TestPoints_RoundsToNearestPixel(t *testing.T) {
	c := drawOnto(Points{Pts: []Point{Pt(2.6, 3.4)}, Color: White}, 10, 10)
	if col, _ := c.At(3, 3); col.Luminance() < 0.99 {
		t.Errorf("rounded pixel = %v, want white", col)
	}
}

func TestPoints_OutOfBoundsDropped(t *testing.T) {
	c := drawOnto(Points{Pts: []Point{Pt(-5, 2), Pt(50, 50), Pt(1, 1)}, Color: White}, 10, 10)
	if col, _ := c.At(1, 1); col.Luminance() < 0.99 {
		t.Errorf("in-range point lost: %v", col)
	}
}

func TestPoints_Bounds(t *testing.T) {
	if b := (Points{}).Bounds(); b != (Rect{}) {
		t.Errorf("empty Bounds = %v, want zero rect", b)
	}
	b := Points{Pts: []Point{Pt(1, 2), Pt(5, -1), Pt(3, 7)}}.Bounds()
	want := Rect{X: 1, Y: -1, W: 4, H: 8}
	if b != want {
		t.Errorf("Bounds = %v, want %v", b, want)
	}
}
