package ephemera

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/ephemera/internal/core"
)

// Snapshot is a deep copy of the world for renderers, recorders and
// determinism tests. Mutating it never affects the engine.
type Snapshot struct {
	Tick      uint64
	Clock     float64
	Score     int
	Phase     Phase
	State     core.GameState
	WorldW    float64
	WorldH    float64
	Player    Player
	Enemies   []Enemy
	Particles []Particle
}

// Snapshot returns the current world state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Clock:     g.clock,
		Score:     g.score,
		Phase:     g.Phase(),
		State:     g.State(),
		WorldW:    g.worldW,
		WorldH:    g.worldH,
		Player:    g.player,
		Enemies:   append([]Enemy(nil), g.enemies...),
		Particles: append([]Particle(nil), g.particles...),
	}
}

// Hash returns an FNV-64a digest of the snapshot. Identical seeds and inputs
// give identical hashes within one build.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf []byte

	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	i := func(v int) { u(uint64(int64(v))) } //#nosec G115 -- hash computation
	f := func(v float64) { u(math.Float64bits(v)) }
	entity := func(e Entity) {
		i(e.ID)
		f(e.Position.X)
		f(e.Position.Y)
		f(e.Velocity.X)
		f(e.Velocity.Y)
		f(e.Radius)
		f(e.Speed)
		buf = append(buf, string(e.Color)...)
	}

	u(s.Tick)
	f(s.Clock)
	i(s.Score)
	i(int(s.Phase))

	entity(s.Player.Entity)
	i(s.Player.Experience)
	i(s.Player.Level)
	f(s.Player.ParticleCount)

	for _, e := range s.Enemies {
		entity(e.Entity)
		i(int(e.Behavior))
		f(e.ChangeDirTimer)
		i(e.SpeciesLevel)
	}
	for _, p := range s.Particles {
		entity(p.Entity)
		i(p.Value)
		f(p.Phase)
	}

	_, _ = h.Write(buf)
	return h.Sum64()
}
