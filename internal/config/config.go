// Package config provides YAML-based configuration loading and difficulty
// presets for the ephemera simulation.
package config

import "time"

// Config contains all tunable parameters of a run.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Particle   ParticleConfig   `yaml:"particle"`
	Simulation SimulationConfig `yaml:"simulation"`
	Lore       LoreConfig       `yaml:"lore"`
	Species    []SpeciesConfig  `yaml:"species"`

	// Thresholds[L] is the experience needed to advance from level L.
	// Index 0 is unused and kept for alignment with levels.
	Thresholds []int `yaml:"thresholds"`
}

// WorldConfig defines the bounded world rectangle.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PopulationConfig defines fixed entity counts. They never change during a run.
type PopulationConfig struct {
	Enemies        int `yaml:"enemies"`
	SmallParticles int `yaml:"small_particles"`
	LargeParticles int `yaml:"large_particles"`
}

// PlayerConfig defines the player's starting stats.
type PlayerConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`      // Multiplied by the species speed factor
	StartParticles float64 `yaml:"start_particles"` // Initial skill resource
	MaxHealth      float64 `yaml:"max_health"`      // Reserved; no rule reads it
}

// EnemyConfig defines enemy generation and AI parameters.
type EnemyConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`      // Multiplied by the species speed factor
	LevelSpread    int     `yaml:"level_spread"`    // Levels are playerLevel +/- spread
	DetectionRange float64 `yaml:"detection_range"` // Added to the player radius
	WanderMin      int     `yaml:"wander_min"`      // Ticks between wander heading changes
	WanderMax      int     `yaml:"wander_max"`
}

// ParticleConfig defines particle generation parameters.
type ParticleConfig struct {
	SmallRadiusMin float64 `yaml:"small_radius_min"`
	SmallRadiusMax float64 `yaml:"small_radius_max"`
	LargeRadiusMin float64 `yaml:"large_radius_min"`
	LargeRadiusMax float64 `yaml:"large_radius_max"`
	LargeValue     int     `yaml:"large_value"`
	HueMin         float64 `yaml:"hue_min"`
	HueMax         float64 `yaml:"hue_max"`
	Drift          float64 `yaml:"drift"` // Per-tick drift amplitude
}

// SimulationConfig defines timing parameters of the engine.
type SimulationConfig struct {
	TelemetryEvery int           `yaml:"telemetry_every"` // Emit telemetry every N ticks
	MaxDelta       time.Duration `yaml:"max_delta"`       // Upper bound for a single tick's dt
}

// LoreConfig selects and tunes the flavor text generator.
type LoreConfig struct {
	Provider  string        `yaml:"provider"`    // Registered generator name; "static" disables remote calls
	Model     string        `yaml:"model"`       // Provider-specific model identifier
	APIKeyEnv string        `yaml:"api_key_env"` // Environment variable holding the credential
	Timeout   time.Duration `yaml:"timeout"`     // Per-request deadline
}

// SpeciesConfig describes one level tier.
type SpeciesConfig struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Color       string      `yaml:"color"`
	Radius      float64     `yaml:"radius"`
	SpeedFactor float64     `yaml:"speed_factor"`
	Skill       SkillConfig `yaml:"skill"`
}

// SkillConfig describes the species' active ability.
type SkillConfig struct {
	Name            string  `yaml:"name"`
	Description     string  `yaml:"description"`
	CostPerSecond   float64 `yaml:"cost_per_second"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}
