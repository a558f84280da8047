package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/ephemera.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/ephemera.yaml and is used when the embedded copy cannot be parsed.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  8000,
			Height: 8000,
		},
		Population: PopulationConfig{
			Enemies:        250,
			SmallParticles: 800,
			LargeParticles: 100,
		},
		Player: PlayerConfig{
			BaseSpeed:      4,
			StartParticles: 20,
			MaxHealth:      100,
		},
		Enemy: EnemyConfig{
			BaseSpeed:      2,
			LevelSpread:    3,
			DetectionRange: 500,
			WanderMin:      50,
			WanderMax:      150,
		},
		Particle: ParticleConfig{
			SmallRadiusMin: 3,
			SmallRadiusMax: 8,
			LargeRadiusMin: 12,
			LargeRadiusMax: 18,
			LargeValue:     25,
			HueMin:         160,
			HueMax:         240,
			Drift:          0.2,
		},
		Simulation: SimulationConfig{
			TelemetryEvery: 4,
			MaxDelta:       100 * time.Millisecond,
		},
		Lore: LoreConfig{
			Provider:  "gemini",
			Model:     "gemini-2.5-flash",
			APIKeyEnv: "GEMINI_API_KEY",
			Timeout:   8 * time.Second,
		},
		Species: []SpeciesConfig{
			{
				Name: "Microdust (微尘)", Description: "A tiny speck of consciousness floating in the void.",
				Color: "#f8fafc", Radius: 15, SpeedFactor: 1.0,
				Skill: SkillConfig{Name: "Drift Surge", Description: "Burn energy for a quick boost.", CostPerSecond: 10, SpeedMultiplier: 2.0},
			},
			{
				Name: "Protozoa (浮游)", Description: "A simple single-celled organism seeking sustenance.",
				Color: "#22d3ee", Radius: 45, SpeedFactor: 0.9,
				Skill: SkillConfig{Name: "Flagella Dash", Description: "Propel forward rapidly.", CostPerSecond: 15, SpeedMultiplier: 2.2},
			},
			{
				Name: "Larva (幼虫)", Description: "A segmented creature beginning to understand the hunt.",
				Color: "#facc15", Radius: 85, SpeedFactor: 0.85,
				Skill: SkillConfig{Name: "Rapid Swim", Description: "Sustained speed for chasing prey.", CostPerSecond: 20, SpeedMultiplier: 2.5},
			},
			{
				Name: "Hunter (掠食者)", Description: "An aquatic predator with developed senses.",
				Color: "#f472b6", Radius: 160, SpeedFactor: 0.8,
				Skill: SkillConfig{Name: "Predator Lunge", Description: "Explosive speed to catch anything.", CostPerSecond: 30, SpeedMultiplier: 3.5},
			},
			{
				Name: "Leviathan (巨兽)", Description: "The apex of local evolution, a cosmic entity.",
				Color: "#a78bfa", Radius: 300, SpeedFactor: 0.7,
				Skill: SkillConfig{Name: "Cosmic Warp", Description: "Bend space to move instantly.", CostPerSecond: 50, SpeedMultiplier: 4.0},
			},
			{
				Name: "Void Wraith (虚空幽灵)", Description: "An ethereal spirit composed of dark matter and stardust.",
				Color: "#60a5fa", Radius: 500, SpeedFactor: 0.65,
				Skill: SkillConfig{Name: "Phantom Phase", Description: "Become immaterial and surge forward.", CostPerSecond: 70, SpeedMultiplier: 4.5},
			},
			{
				Name: "Astral Colossus (星界巨像)", Description: "A living fortress forged from dead stars.",
				Color: "#f97316", Radius: 800, SpeedFactor: 0.6,
				Skill: SkillConfig{Name: "Titan Charge", Description: "Unstoppable momentum.", CostPerSecond: 90, SpeedMultiplier: 5.0},
			},
			{
				Name: "Singularity (宇宙奇点)", Description: "The end and the beginning. A living black hole.",
				Color: "#18181b", Radius: 1200, SpeedFactor: 0.5,
				Skill: SkillConfig{Name: "Event Horizon", Description: "Consume everything in your path.", CostPerSecond: 120, SpeedMultiplier: 6.0},
			},
		},
		Thresholds: []int{0, 60, 200, 500, 1200, 3000, 7000, 15000, 30000},
	}
}
