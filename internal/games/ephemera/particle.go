package ephemera

import (
	"math"

	"github.com/vovakirdan/ephemera/internal/core"
)

func (g *Game) spawnParticles() {
	pc := g.cfg.Particle
	n := g.cfg.Population.SmallParticles + g.cfg.Population.LargeParticles
	g.particles = make([]Particle, 0, n)

	for i := 0; i < g.cfg.Population.SmallParticles; i++ {
		g.particles = append(g.particles, Particle{
			Entity: Entity{
				ID:       g.newID(),
				Position: g.randomPosition(),
				Radius:   core.RandRange(g.rng, pc.SmallRadiusMin, pc.SmallRadiusMax),
				Color:    core.HSL(core.RandRange(g.rng, pc.HueMin, pc.HueMax), 0.8, 0.75),
			},
			Value: 1,
			Phase: core.RandRange(g.rng, 0, 2*math.Pi),
		})
	}

	for i := 0; i < g.cfg.Population.LargeParticles; i++ {
		g.particles = append(g.particles, Particle{
			Entity: Entity{
				ID:       g.newID(),
				Position: g.randomPosition(),
				Radius:   core.RandRange(g.rng, pc.LargeRadiusMin, pc.LargeRadiusMax),
				Color:    core.ColorLargeParticle,
			},
			Value: pc.LargeValue,
			Phase: core.RandRange(g.rng, 0, 2*math.Pi),
		})
	}
}

// updateParticles applies the sinusoidal drift and wraps at world edges.
func (g *Game) updateParticles() {
	amp := g.cfg.Particle.Drift
	for i := range g.particles {
		p := &g.particles[i]
		p.Position.X += math.Sin(g.clock+p.Phase) * amp
		p.Position.Y += math.Cos(g.clock+p.Phase) * amp
		p.Position = core.Wrap(p.Position, g.worldW, g.worldH)
	}
}
