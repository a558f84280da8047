package ephemera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/ephemera/internal/core"
)

const (
	steerDeadZone = 5.0 // Pointer distance below which the player coasts
	steerLerp     = 0.1 // Per-tick velocity approach toward the heading
	friction      = 0.9 // Per-tick velocity decay while coasting
)

func (g *Game) resetPlayer() {
	info := g.table.Lookup(1)
	center := core.Vec{X: g.worldW / 2, Y: g.worldH / 2}
	g.player = Player{
		Entity: Entity{
			ID:       g.newID(),
			Position: center,
			Radius:   info.BaseRadius,
			Color:    info.Color,
			Speed:    g.cfg.Player.BaseSpeed * info.SpeedFactor,
		},
		Level:         1,
		MaxHealth:     g.cfg.Player.MaxHealth,
		CurrentHealth: g.cfg.Player.MaxHealth,
		SpeciesName:   info.Name,
		ParticleCount: g.cfg.Player.StartParticles,
	}
}

// updatePlayer steers toward the pointer's world position, applies the skill
// and integrates one tick of movement.
func (g *Game) updatePlayer(dt float64) {
	p := &g.player

	target := g.Camera().ScreenToWorld(g.Pointer())
	delta := r2.Sub(target, p.Position)

	speed := p.Speed
	if p.SkillActive && p.ParticleCount > 0 {
		skill := g.table.Lookup(p.Level).Skill
		cost := skill.CostPerSecond * dt
		if p.ParticleCount >= cost {
			p.ParticleCount -= cost
			speed *= skill.SpeedMultiplier
		} else {
			p.ParticleCount = 0
		}
	}

	if r2.Norm(delta) > steerDeadZone {
		heading := core.Heading(math.Atan2(delta.Y, delta.X), speed)
		p.Velocity = core.Lerp(p.Velocity, heading, steerLerp)
	} else {
		p.Velocity = r2.Scale(friction, p.Velocity)
	}

	p.Position = core.ClampToBounds(r2.Add(p.Position, p.Velocity), p.Radius, g.worldW, g.worldH)
}

// evolve advances the player one tier and pauses the run.
func (g *Game) evolve() {
	p := &g.player
	p.Level++
	p.Experience = 0
	p.SkillActive = false

	info := g.table.Lookup(p.Level)
	p.Radius = info.BaseRadius
	p.Color = info.Color
	p.Speed = g.cfg.Player.BaseSpeed * info.SpeedFactor
	p.SpeciesName = info.Name

	g.running = false
	g.evolving = true
	if g.hooks.EvolutionStarted != nil {
		g.hooks.EvolutionStarted(p.Level)
	}
}

// checkLevelUp evolves the player, or ends the run in victory at the last tier.
func (g *Game) checkLevelUp() {
	p := &g.player
	threshold, ok := g.table.Threshold(p.Level)
	if !ok || p.Experience < threshold {
		return
	}

	if p.Level < g.table.MaxLevel() {
		g.evolve()
		return
	}

	g.running = false
	g.victory = true
	if g.hooks.EvolutionStarted != nil {
		g.hooks.EvolutionStarted(p.Level + 1)
	}
}
