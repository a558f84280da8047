package camera

import (
	"math"
	"testing"

	"github.com/vovakirdan/ephemera/internal/core"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestZoom(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 1.0},
		{2, 1 / 1.6},
		{8, 1 / 5.2},
	}
	for _, tt := range tests {
		if got := Zoom(tt.level); !near(got, tt.want) {
			t.Errorf("Zoom(%d) = %f, expected %f", tt.level, got, tt.want)
		}
	}
}

func TestZoomMonotonicAndBounded(t *testing.T) {
	prev := math.Inf(1)
	for level := 1; level <= 8; level++ {
		z := Zoom(level)
		if z >= prev {
			t.Errorf("Zoom(%d) = %f should be below Zoom(%d) = %f", level, z, level-1, prev)
		}
		if z < MinZoom {
			t.Errorf("Zoom(%d) = %f below floor %f", level, z, MinZoom)
		}
		prev = z
	}

	if got := Zoom(1000); got != MinZoom {
		t.Errorf("Zoom(1000) = %f, expected floor %f", got, MinZoom)
	}
}

func TestPlayerAtScreenCenter(t *testing.T) {
	for level := 1; level <= 8; level++ {
		tr := New(core.Vec{X: 4000, Y: 4000}, level, 800, 600)

		s := tr.WorldToScreen(tr.Center)
		if !near(s.X, 400) || !near(s.Y, 300) {
			t.Errorf("level %d: player should map to screen center, got (%f, %f)", level, s.X, s.Y)
		}

		w := tr.ScreenToWorld(core.Vec{X: 400, Y: 300})
		if !near(w.X, 4000) || !near(w.Y, 4000) {
			t.Errorf("level %d: screen center should map to player, got (%f, %f)", level, w.X, w.Y)
		}
	}
}

func TestOrigin(t *testing.T) {
	// Level 1 zoom is 1.0: origin is simply player minus half screen.
	tr := New(core.Vec{X: 4000, Y: 4000}, 1, 800, 600)
	o := tr.Origin()
	if !near(o.X, 3600) || !near(o.Y, 3700) {
		t.Errorf("Origin() = (%f, %f), expected (3600, 3700)", o.X, o.Y)
	}

	w := tr.ScreenToWorld(core.Vec{})
	if !near(w.X, o.X) || !near(w.Y, o.Y) {
		t.Errorf("screen (0,0) should map to origin, got (%f, %f)", w.X, w.Y)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	testCases := []core.Vec{
		{X: 400, Y: 300}, // center
		{X: 0, Y: 0},     // top-left
		{X: 10, Y: 590},  // bottom-left
		{X: 780, Y: 20},  // near top-right
	}

	for level := 1; level <= 8; level++ {
		tr := New(core.Vec{X: 1234.5, Y: 6789.25}, level, 800, 600)
		for _, tc := range testCases {
			w := tr.ScreenToWorld(tc)
			s := tr.WorldToScreen(w)
			if !near(s.X, tc.X) || !near(s.Y, tc.Y) {
				t.Errorf("level %d roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
					level, tc.X, tc.Y, w.X, w.Y, s.X, s.Y)
			}
		}
	}
}

func TestZoomedOutSeesMore(t *testing.T) {
	pos := core.Vec{X: 4000, Y: 4000}
	far := core.Vec{X: 4000 + 1000, Y: 4000}

	if New(pos, 1, 800, 600).Visible(far, 0) {
		t.Error("point 1000 units away should not be visible at level 1")
	}
	if !New(pos, 8, 800, 600).Visible(far, 0) {
		t.Error("point 1000 units away should be visible at level 8")
	}
}

func TestVisibleIncludesRadius(t *testing.T) {
	tr := New(core.Vec{X: 0, Y: 0}, 1, 800, 600)

	if tr.Visible(core.Vec{X: 450, Y: 0}, 10) {
		t.Error("small circle beyond the edge should be culled")
	}
	if !tr.Visible(core.Vec{X: 450, Y: 0}, 60) {
		t.Error("large circle overlapping the edge should be visible")
	}
}
