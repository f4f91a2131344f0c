package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 1, 1),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxContainsBox(t *testing.T) {
	outer := NewBox(0, 0, 64, 64)

	tests := []struct {
		name     string
		inner    Box
		expected bool
	}{
		{"inside", NewBox(10, 10, 16, 32), true},
		{"flush with edges", NewBox(0, 32, 16, 32), true},
		{"past right edge", NewBox(50, 0, 16, 32), false},
		{"past top edge", NewBox(0, -1, 16, 32), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.ContainsBox(tc.inner); got != tc.expected {
				t.Errorf("ContainsBox() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxCenterAndMoved(t *testing.T) {
	b := NewBox(10, 20, 16, 32)

	if c := b.Center(); c != V(18, 36) {
		t.Errorf("Center() = %v, expected (18, 36)", c)
	}
	if m := b.Moved(2, -4); m.X != 12 || m.Y != 16 || m.W != 16 {
		t.Errorf("Moved() = %v, expected (12, 16, 16, 32)", m)
	}
	if a := b.At(V(1, 2)); a.X != 1 || a.Y != 2 || a.H != 32 {
		t.Errorf("At() = %v, expected (1, 2, 16, 32)", a)
	}
}

func TestVecMath(t *testing.T) {
	a := V(0, 0)
	b := V(3, 4)

	if d := Distance(a, b); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
	if got := Angle(a, V(0, 1)); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Angle() = %v, expected pi/2", got)
	}
	if got := b.Sub(a).Scale(2); got != V(6, 8) {
		t.Errorf("Sub().Scale() = %v, expected (6, 8)", got)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"adjacent horizontal", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClampAndRound(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"clamp below", ClampF(-1, 0, 10), 0},
		{"clamp above", ClampF(11, 0, 10), 10},
		{"clamp inside", ClampF(5, 0, 10), 5},
		{"lerp midpoint", Lerp(2, 4, 0.5), 3},
		{"round six places", Round(0.12345678, 6), 0.123457},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}

	if Clamp(15, 0, 10) != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d, expected 10", Clamp(15, 0, 10))
	}
}
