// Package camera provides the viewport transform that follows the player.
//
// The transform is recomputed from the player every frame and never smoothed:
// the player is always drawn at the screen centre, and the zoom depends only
// on the player's level so larger species see more of the world.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/ephemera/internal/core"
)

// MinZoom bounds how far the view zooms out at high levels.
const MinZoom = 0.05

// Zoom returns the zoom factor for a player level.
func Zoom(level int) float64 {
	return math.Max(MinZoom, 1/(0.6*float64(level)+0.4))
}

// Transform maps between world and screen coordinates for one frame.
type Transform struct {
	// Center is the player position in world coordinates
	Center core.Vec

	// Zoom level (1.0 = 1:1, below 1.0 shows more of the world)
	Zoom float64

	// Viewport dimensions (screen size)
	ScreenW, ScreenH float64
}

// New builds the transform for a player at pos with the given level.
func New(pos core.Vec, level int, screenW, screenH float64) Transform {
	return Transform{
		Center:  pos,
		Zoom:    Zoom(level),
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// Origin returns the world coordinate drawn at the screen's top-left corner.
func (t Transform) Origin() core.Vec {
	half := core.Vec{X: t.ScreenW / 2, Y: t.ScreenH / 2}
	return r2.Sub(t.Center, r2.Scale(1/t.Zoom, half))
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (t Transform) ScreenToWorld(p core.Vec) core.Vec {
	return r2.Add(r2.Scale(1/t.Zoom, p), t.Origin())
}

// WorldToScreen converts world coordinates to screen coordinates.
func (t Transform) WorldToScreen(p core.Vec) core.Vec {
	half := core.Vec{X: t.ScreenW / 2, Y: t.ScreenH / 2}
	return r2.Add(r2.Scale(t.Zoom, r2.Sub(p, t.Center)), half)
}

// Visible returns true if a circle at p with the given world radius could be
// visible on screen (conservative check for culling).
func (t Transform) Visible(p core.Vec, radius float64) bool {
	halfW := t.ScreenW/(2*t.Zoom) + radius
	halfH := t.ScreenH/(2*t.Zoom) + radius
	return math.Abs(p.X-t.Center.X) <= halfW && math.Abs(p.Y-t.Center.Y) <= halfH
}
