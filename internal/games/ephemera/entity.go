package ephemera

import "github.com/vovakirdan/ephemera/internal/core"

// Behavior is an enemy's current steering mode.
type Behavior int

const (
	Wander Behavior = iota
	Chase
	Flee
)

// String returns the behavior name.
func (b Behavior) String() string {
	switch b {
	case Wander:
		return "wander"
	case Chase:
		return "chase"
	case Flee:
		return "flee"
	default:
		return "unknown"
	}
}

// Entity is the shape shared by everything in the world.
type Entity struct {
	ID       int
	Position core.Vec
	Velocity core.Vec
	Radius   float64
	Color    core.Color
	Speed    float64 // Baseline speed in world units per tick
}

// Player is the organism steered by the pointer.
type Player struct {
	Entity
	Experience    int // Resets to 0 on every evolution
	Level         int
	MaxHealth     float64 // Reserved
	CurrentHealth float64 // Reserved
	SpeciesName   string
	ParticleCount float64 // Skill resource, never negative
	SkillActive   bool
}

// Enemy is an autonomous organism. Enemies live in fixed slots and are
// regenerated in place when eaten.
type Enemy struct {
	Entity
	Behavior       Behavior
	ChangeDirTimer float64 // Ticks until the next wander heading
	SpeciesLevel   int
}

// Particle is a passive collectible. Picked-up particles relocate in place
// and keep their value.
type Particle struct {
	Entity
	Value int
	Phase float64 // Drift phase offset in radians
}
