package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Population.Enemies = cfg.Population.Enemies * 3 / 5
		cfg.Enemy.LevelSpread = clamp(cfg.Enemy.LevelSpread-1, 1, cfg.Enemy.LevelSpread)
		cfg.Enemy.DetectionRange *= 0.75
	case DifficultyHard:
		cfg.Population.Enemies = cfg.Population.Enemies * 7 / 5
		cfg.Enemy.LevelSpread++
		cfg.Enemy.BaseSpeed *= 1.2
	}
}

func clamp(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
