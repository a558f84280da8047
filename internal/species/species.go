// Package species holds the immutable level table: per-tier stats, skills and
// the experience thresholds between tiers.
package species

import (
	"github.com/vovakirdan/ephemera/internal/config"
	"github.com/vovakirdan/ephemera/internal/core"
)

// FallbackCeiling is reported as the experience target when a level has no
// configured threshold.
const FallbackCeiling = 99999

// Skill is a species' active ability. While active it drains the particle
// resource and multiplies movement speed.
type Skill struct {
	Name            string
	Description     string
	CostPerSecond   float64
	SpeedMultiplier float64
}

// Info describes one species tier.
type Info struct {
	Level       int
	Name        string
	Description string
	Color       core.Color
	BaseRadius  float64
	SpeedFactor float64
	Skill       Skill
}

// Table maps levels 1..MaxLevel to species and levels 0..MaxLevel to thresholds.
type Table struct {
	infos      []Info
	thresholds []int
}

// New builds a table from a validated configuration.
func New(cfg config.Config) *Table {
	t := &Table{
		infos:      make([]Info, len(cfg.Species)),
		thresholds: append([]int(nil), cfg.Thresholds...),
	}
	for i, s := range cfg.Species {
		t.infos[i] = Info{
			Level:       i + 1,
			Name:        s.Name,
			Description: s.Description,
			Color:       core.Color(s.Color),
			BaseRadius:  s.Radius,
			SpeedFactor: s.SpeedFactor,
			Skill: Skill{
				Name:            s.Skill.Name,
				Description:     s.Skill.Description,
				CostPerSecond:   s.Skill.CostPerSecond,
				SpeedMultiplier: s.Skill.SpeedMultiplier,
			},
		}
	}
	return t
}

// Default returns the table built from the hardcoded defaults.
func Default() *Table {
	return New(config.DefaultConfig())
}

// MaxLevel returns the highest playable level.
func (t *Table) MaxLevel() int {
	return len(t.infos)
}

// Lookup returns the species for level. Out-of-range levels clamp to the
// nearest defined tier.
func (t *Table) Lookup(level int) Info {
	return t.infos[core.Clamp(level, 1, len(t.infos))-1]
}

// Threshold returns the experience needed to advance from level.
func (t *Table) Threshold(level int) (int, bool) {
	if level < 0 || level >= len(t.thresholds) {
		return 0, false
	}
	return t.thresholds[level], true
}

// Ceiling is Threshold with FallbackCeiling for levels that have none.
func (t *Table) Ceiling(level int) int {
	if v, ok := t.Threshold(level); ok {
		return v
	}
	return FallbackCeiling
}
