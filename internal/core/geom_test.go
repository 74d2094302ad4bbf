package core

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(0.5, 0.5, 1, 1),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(1.5, 0, 1, 1),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(0, 1.5, 1, 1),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(1, 0, 1, 1),
			expected: false,
		},
		{
			name:     "touching corners (no overlap)",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(1, 1, 1, 1),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(-1, -1, 2, 2),
			b:        NewRect(-0.25, -0.25, 0.5, 0.5),
			expected: true,
		},
		{
			name:     "tiny overlap",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(0.999, 0.999, 1, 1),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tt.expected)
			}
			// Overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.expected {
				t.Errorf("Overlaps() reversed = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(-0.5, -0.9, 0.25, 0.04)

	if r.Left() != -0.5 {
		t.Errorf("Left() = %v, expected -0.5", r.Left())
	}
	if math.Abs(r.Right()-(-0.25)) > 1e-12 {
		t.Errorf("Right() = %v, expected -0.25", r.Right())
	}
	if r.Bottom() != -0.9 {
		t.Errorf("Bottom() = %v, expected -0.9", r.Bottom())
	}
	if math.Abs(r.Top()-(-0.86)) > 1e-12 {
		t.Errorf("Top() = %v, expected -0.86", r.Top())
	}
	if math.Abs(r.CenterX()-(-0.375)) > 1e-12 {
		t.Errorf("CenterX() = %v, expected -0.375", r.CenterX())
	}
}

func TestBoundsForAspect(t *testing.T) {
	tests := []struct {
		name   string
		aspect float64
		want   Bounds
	}{
		{"wide window", 16.0 / 9.0, Bounds{X: 16.0 / 9.0, Y: 1}},
		{"square window", 1, Bounds{X: 1, Y: 1}},
		{"tall window", 0.5, Bounds{X: 1, Y: 2}},
		{"degenerate aspect", 0, Bounds{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundsForAspect(tt.aspect)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("BoundsForAspect(%v) = %+v, expected %+v", tt.aspect, got, tt.want)
			}
			// Exactly one of the bounds must be 1
			if got.X != 1 && got.Y != 1 {
				t.Errorf("BoundsForAspect(%v): neither bound is 1: %+v", tt.aspect, got)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-2, -1, 1); got != -1 {
		t.Errorf("ClampF(-2, -1, 1) = %v, expected -1", got)
	}
	if got := ClampF(2, -1, 1); got != 1 {
		t.Errorf("ClampF(2, -1, 1) = %v, expected 1", got)
	}
	if got := ClampF(0.5, -1, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, -1, 1) = %v, expected 0.5", got)
	}
}

func TestColorDarkenAndHex(t *testing.T) {
	c := NewRGBA(1, 0.6, 0.2)

	d := c.Darken(0.7)
	if math.Abs(d.R-0.7) > 1e-12 || math.Abs(d.G-0.42) > 1e-12 || math.Abs(d.B-0.14) > 1e-12 {
		t.Errorf("Darken(0.7) = %+v", d)
	}
	if d.A != 1 {
		t.Errorf("Darken should preserve alpha, got %v", d.A)
	}

	if got := NewRGBA(1, 1, 1).Hex(); got != "#ffffff" {
		t.Errorf("Hex() = %q, expected #ffffff", got)
	}
	if got := NewRGBA(0, 0, 0).Hex(); got != "#000000" {
		t.Errorf("Hex() = %q, expected #000000", got)
	}
}
