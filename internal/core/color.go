package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a "#rrggbb" foreground color for an entity or screen cell.
// The empty Color means the terminal default.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault       Color = ""
	ColorDanger        Color = "#ef4444" // enemies above the player's tier
	ColorPrey          Color = "#86efac" // enemies below the player's tier
	ColorLargeParticle Color = "#fbbf24"
	ColorBorder        Color = "#475569"
	ColorGray          Color = "#64748b"
)

// HSL builds a Color from hue in degrees and saturation/lightness in [0, 1].
func HSL(h, s, l float64) Color {
	return Color(colorful.Hsl(h, s, l).Clamped().Hex())
}
