package ephemera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/ephemera/internal/core"
)

const (
	fleeBelow    = 0.9   // Enemies smaller than this share of the player flee
	chaseAbove   = 1.1   // Enemies larger than this share of the player chase
	fleeDistance = 200.0 // How far ahead a fleeing enemy aims
	enemyLerp    = 0.05  // Per-tick velocity approach while chasing or fleeing
	wanderFactor = 0.5   // Share of nominal speed used while wandering
)

func (g *Game) spawnEnemies() {
	g.enemies = make([]Enemy, g.cfg.Population.Enemies)
	for i := range g.enemies {
		g.enemies[i] = g.newEnemy(g.player.Level)
	}
}

// newEnemy generates an enemy whose level is drawn around playerLevel.
func (g *Game) newEnemy(playerLevel int) Enemy {
	spread := g.cfg.Enemy.LevelSpread
	level := core.Clamp(playerLevel+core.RandInt(g.rng, -spread, spread), 1, g.table.MaxLevel())
	info := g.table.Lookup(level)

	color := info.Color
	if level > playerLevel {
		color = core.ColorDanger
	} else if level < playerLevel {
		color = core.ColorPrey
	}

	return Enemy{
		Entity: Entity{
			ID:       g.newID(),
			Position: g.randomPosition(),
			Radius:   info.BaseRadius * core.RandRange(g.rng, 0.85, 1.15),
			Color:    color,
			Speed:    g.cfg.Enemy.BaseSpeed * info.SpeedFactor * core.RandRange(g.rng, 0.8, 1.2),
		},
		Behavior:       Wander,
		ChangeDirTimer: 0,
		SpeciesLevel:   level,
	}
}

func (g *Game) updateEnemies() {
	for i := range g.enemies {
		g.updateEnemy(&g.enemies[i])
	}
}

// updateEnemy classifies the enemy against the player, steers and integrates.
func (g *Game) updateEnemy(e *Enemy) {
	p := &g.player
	target := e.Position

	e.Behavior = Wander
	if core.Distance(e.Position, p.Position) < g.cfg.Enemy.DetectionRange+p.Radius {
		switch {
		case e.Radius < p.Radius*fleeBelow:
			e.Behavior = Flee
			away := math.Atan2(e.Position.Y-p.Position.Y, e.Position.X-p.Position.X)
			target = r2.Add(e.Position, core.Heading(away, fleeDistance))
		case e.Radius > p.Radius*chaseAbove:
			e.Behavior = Chase
			target = p.Position
		}
	}

	if e.Behavior == Wander {
		e.ChangeDirTimer--
		if e.ChangeDirTimer <= 0 {
			angle := g.rng.Float64() * 2 * math.Pi
			e.Velocity = core.Heading(angle, e.Speed*wanderFactor)
			e.ChangeDirTimer = core.RandRange(g.rng, float64(g.cfg.Enemy.WanderMin), float64(g.cfg.Enemy.WanderMax))
		}
	} else {
		heading := core.Heading(math.Atan2(target.Y-e.Position.Y, target.X-e.Position.X), e.Speed)
		e.Velocity = core.Lerp(e.Velocity, heading, enemyLerp)
	}

	e.Position = core.ClampToBounds(r2.Add(e.Position, e.Velocity), e.Radius, g.worldW, g.worldH)
}
