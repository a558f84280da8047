package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search directories.
const FileName = "ephemera.yaml"

// Load loads the ephemera configuration and validates it.
// Search order: customPath -> ~/.ephemera/configs/ephemera.yaml -> ./configs/ephemera.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of DefaultConfig, so partial files
// only override the keys they mention. Lists (species, thresholds) are
// replaced as a whole.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ephemera", "configs", filename)
}

// Validate checks the configuration-time contracts of the species table and
// populations. A config that fails validation must not start a run.
func (c Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Population.Enemies < 0 || c.Population.SmallParticles < 0 || c.Population.LargeParticles < 0 {
		errs = append(errs, errors.New("population counts must not be negative"))
	}
	if c.Player.BaseSpeed <= 0 {
		errs = append(errs, errors.New("player base speed must be positive"))
	}
	if c.Enemy.LevelSpread < 0 {
		errs = append(errs, errors.New("enemy level spread must not be negative"))
	}
	if c.Enemy.WanderMin > c.Enemy.WanderMax {
		errs = append(errs, fmt.Errorf("enemy wander range %d..%d is inverted", c.Enemy.WanderMin, c.Enemy.WanderMax))
	}
	if c.Particle.SmallRadiusMin <= 0 || c.Particle.SmallRadiusMin > c.Particle.SmallRadiusMax {
		errs = append(errs, errors.New("small particle radius range is invalid"))
	}
	if c.Particle.LargeRadiusMin <= 0 || c.Particle.LargeRadiusMin > c.Particle.LargeRadiusMax {
		errs = append(errs, errors.New("large particle radius range is invalid"))
	}
	if c.Simulation.TelemetryEvery <= 0 {
		errs = append(errs, errors.New("simulation telemetry_every must be positive"))
	}
	if c.Simulation.MaxDelta <= 0 {
		errs = append(errs, errors.New("simulation max_delta must be positive"))
	}

	if len(c.Species) == 0 {
		errs = append(errs, errors.New("at least one species is required"))
	}
	for i, s := range c.Species {
		if s.Radius <= 0 {
			errs = append(errs, fmt.Errorf("species %d (%s): radius must be positive", i+1, s.Name))
		}
		if s.SpeedFactor <= 0 {
			errs = append(errs, fmt.Errorf("species %d (%s): speed factor must be positive", i+1, s.Name))
		}
		if s.Skill.CostPerSecond < 0 {
			errs = append(errs, fmt.Errorf("species %d (%s): skill cost must not be negative", i+1, s.Name))
		}
	}

	if len(c.Thresholds) < len(c.Species)+1 {
		errs = append(errs, fmt.Errorf("need %d thresholds for %d species, got %d",
			len(c.Species)+1, len(c.Species), len(c.Thresholds)))
	}
	for i := 1; i < len(c.Thresholds); i++ {
		if c.Thresholds[i] < c.Thresholds[i-1] {
			errs = append(errs, fmt.Errorf("thresholds must be non-decreasing: %d < %d at level %d",
				c.Thresholds[i], c.Thresholds[i-1], i))
			break
		}
	}

	return errors.Join(errs...)
}
