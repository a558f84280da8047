package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", Vec{X: 3, Y: 4}, Vec{X: 3, Y: 4}, 0},
		{"3-4-5 triangle", Vec{X: 0, Y: 0}, Vec{X: 3, Y: 4}, 5},
		{"negative coords", Vec{X: -1, Y: -1}, Vec{X: 2, Y: 3}, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			if got := Distance(tc.b, tc.a); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Distance() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestHeading(t *testing.T) {
	v := Heading(math.Pi/2, 4)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-4) > 1e-9 {
		t.Errorf("Heading(pi/2, 4) = %v, expected (0, 4)", v)
	}
}

func TestLerp(t *testing.T) {
	v := Lerp(Vec{X: 0, Y: 0}, Vec{X: 10, Y: -10}, 0.1)
	if math.Abs(v.X-1) > 1e-9 || math.Abs(v.Y+1) > 1e-9 {
		t.Errorf("Lerp() = %v, expected (1, -1)", v)
	}
}

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandRange(rng, 0.85, 1.15)
		if v < 0.85 || v >= 1.15 {
			t.Fatalf("RandRange out of range: %f", v)
		}
	}
}

func TestRandIntInclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := RandInt(rng, -3, 3)
		if v < -3 || v > 3 {
			t.Fatalf("RandInt out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 7 {
		t.Errorf("expected all 7 values in [-3, 3], saw %d", len(seen))
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampToBounds(t *testing.T) {
	p := ClampToBounds(Vec{X: -50, Y: 9000}, 15, 8000, 8000)
	if p.X != 15 || p.Y != 7985 {
		t.Errorf("ClampToBounds() = %v, expected (15, 7985)", p)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec
		expected Vec
	}{
		{"inside", Vec{X: 10, Y: 10}, Vec{X: 10, Y: 10}},
		{"left edge", Vec{X: -0.1, Y: 10}, Vec{X: 100, Y: 10}},
		{"right edge", Vec{X: 100.1, Y: 10}, Vec{X: 0, Y: 10}},
		{"top edge", Vec{X: 10, Y: -1}, Vec{X: 10, Y: 50}},
		{"bottom edge", Vec{X: 10, Y: 51}, Vec{X: 10, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Wrap(tc.in, 100, 50); got != tc.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}
