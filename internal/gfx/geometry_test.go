// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gfx

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2,6)", got)
	}
}

func TestPointDistance(t *testing.T) {
	testCases := []struct {
		name     string
		p, q     Point
		expected float64
	}{
		{"origin to 3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"self", Pt(7, 7), Pt(7, 7), 0},
		{"negative quadrant", Pt(-1, -1), Pt(-4, -5), 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Distance(tc.q); math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 4}
	if r.Left() != 2 || r.Right() != 12 || r.Top() != 3 || r.Bottom() != 7 {
		t.Errorf("accessors = (%v,%v,%v,%v), want (2,12,3,7)",
			r.Left(), r.Right(), r.Top(), r.Bottom())
	}
}

func TestRectContains_InclusiveBounds(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	testCases := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"interior", Pt(5, 5), true},
		{"top-left corner", Pt(0, 0), true},
		{"bottom-right corner", Pt(10, 10), true},
		{"right edge", Pt(10, 4), true},
		{"just outside right", Pt(10.001, 4), false},
		{"just outside top", Pt(4, -0.001), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.expected)
			}
		})
	}
}
