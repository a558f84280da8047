package ephemera

import (
	"math"

	"github.com/vovakirdan/ephemera/internal/core"
)

const (
	pickupMargin  = 20.0 // Extra reach when collecting particles
	contactFactor = 0.8  // Share of combined radii that counts as contact
	sizeAdvantage = 1.05 // Radius ratio needed to eat or be eaten
	eatResource   = 10.0 // Skill resource gained per enemy eaten
)

// collectParticles picks up every particle in reach and relocates it.
func (g *Game) collectParticles() {
	p := &g.player
	for i := range g.particles {
		pt := &g.particles[i]
		if core.Distance(p.Position, pt.Position) >= p.Radius+pt.Radius+pickupMargin {
			continue
		}
		g.score += 10 * pt.Value
		p.Experience += pt.Value
		p.ParticleCount += float64(pt.Value)
		pt.Position = g.randomPosition()
	}
}

// resolveEnemyCollisions eats smaller enemies in contact and reports whether
// a larger one ended the run. Within the size band neither side eats.
func (g *Game) resolveEnemyCollisions() bool {
	p := &g.player
	for i := range g.enemies {
		e := &g.enemies[i]
		if core.Distance(p.Position, e.Position) >= contactFactor*(p.Radius+e.Radius) {
			continue
		}

		switch {
		case p.Radius > e.Radius*sizeAdvantage:
			g.score += int(math.Floor(e.Radius * 10))
			p.Experience += int(math.Floor(e.Radius * 2))
			p.ParticleCount += eatResource
			g.enemies[i] = g.newEnemy(p.Level)
		case e.Radius > p.Radius*sizeAdvantage:
			g.running = false
			g.gameOver = true
			if g.hooks.GameOver != nil {
				g.hooks.GameOver(g.score)
			}
			return true
		}
	}
	return false
}
