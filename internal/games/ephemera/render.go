package ephemera

import (
	"math"

	"github.com/vovakirdan/ephemera/internal/camera"
	"github.com/vovakirdan/ephemera/internal/core"
)

// tierGlyphs is the per-tier look of organisms. Rim fills the body of large
// discs, Core marks the centre and small organisms.
var tierGlyphs = map[int]struct{ Core, Rim rune }{
	1: {'•', '·'},
	2: {'●', '○'},
	3: {'◉', '░'},
	4: {'▲', '▒'},
	5: {'◆', '▓'},
	6: {'✦', '░'},
	7: {'■', '█'},
	8: {'◎', '▓'},
}

func glyphsFor(level int) (rune, rune) {
	g, ok := tierGlyphs[level]
	if !ok {
		return '?', '?'
	}
	return g.Core, g.Rim
}

// Render draws the world into dst. Each cell covers an equal share of the
// engine's screen size, so dst only needs the aspect of the viewport.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if !g.started || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	r := renderer{
		dst:   dst,
		cam:   g.Camera(),
		cellW: g.screenW / float64(dst.Width()),
		cellH: g.screenH / float64(dst.Height()),
	}

	r.bounds(g.worldW, g.worldH)

	for i := range g.particles {
		p := &g.particles[i]
		if !r.cam.Visible(p.Position, p.Radius) {
			continue
		}
		glyph := '·'
		if p.Value > 1 {
			glyph = '✶'
		}
		r.point(p.Position, glyph, p.Color)
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if !r.cam.Visible(e.Position, e.Radius) {
			continue
		}
		r.organism(e.Position, e.Radius, e.SpeciesLevel, e.Color)
	}

	p := &g.player
	color := p.Color
	if p.SkillActive {
		color = core.ColorLargeParticle
	}
	r.organism(p.Position, p.Radius, p.Level, color)
}

type renderer struct {
	dst          *core.Screen
	cam          camera.Transform
	cellW, cellH float64
}

// cell converts a world position into a cell coordinate.
func (r renderer) cell(p core.Vec) (int, int) {
	s := r.cam.WorldToScreen(p)
	return int(math.Floor(s.X / r.cellW)), int(math.Floor(s.Y / r.cellH))
}

func (r renderer) point(p core.Vec, glyph rune, c core.Color) {
	x, y := r.cell(p)
	r.dst.Set(x, y, glyph, c)
}

// organism draws a disc in the tier's glyphs, or a single glyph when the
// disc is smaller than a cell.
func (r renderer) organism(p core.Vec, radius float64, level int, c core.Color) {
	coreGlyph, rim := glyphsFor(level)
	cx, cy := r.cell(p)

	rx := radius * r.cam.Zoom / r.cellW
	ry := radius * r.cam.Zoom / r.cellH
	if rx < 1 && ry < 1 {
		r.dst.Set(cx, cy, coreGlyph, c)
		return
	}

	w, h := r.dst.Width(), r.dst.Height()
	x0 := max(0, int(math.Floor(float64(cx)-rx)))
	x1 := min(w-1, int(math.Ceil(float64(cx)+rx)))
	y0 := max(0, int(math.Floor(float64(cy)-ry)))
	y1 := min(h-1, int(math.Ceil(float64(cy)+ry)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x-cx) / math.Max(rx, 0.5)
			dy := float64(y-cy) / math.Max(ry, 0.5)
			if dx*dx+dy*dy <= 1 {
				r.dst.Set(x, y, rim, c)
			}
		}
	}
	r.dst.Set(cx, cy, coreGlyph, c)
}

// bounds draws the visible parts of the world edge.
func (r renderer) bounds(worldW, worldH float64) {
	x0, y0 := r.cell(core.Vec{X: 0, Y: 0})
	x1, y1 := r.cell(core.Vec{X: worldW, Y: worldH})
	w, h := r.dst.Width(), r.dst.Height()

	top, bottom := max(0, y0), min(h-1, y1)
	left, right := max(0, x0), min(w-1, x1)

	for y := top; y <= bottom; y++ {
		if x0 >= 0 && x0 < w {
			r.dst.Set(x0, y, '│', core.ColorBorder)
		}
		if x1 >= 0 && x1 < w {
			r.dst.Set(x1, y, '│', core.ColorBorder)
		}
	}
	for x := left; x <= right; x++ {
		if y0 >= 0 && y0 < h {
			r.dst.Set(x, y0, '─', core.ColorBorder)
		}
		if y1 >= 0 && y1 < h {
			r.dst.Set(x, y1, '─', core.ColorBorder)
		}
	}
}
