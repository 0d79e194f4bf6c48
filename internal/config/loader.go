package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const knightConfigFile = "knight.yaml"

// LoadKnight loads Knight Run configuration.
// Search order: customPath -> ~/.knight/configs/knight.yaml -> ./configs/knight.yaml -> embedded default
//
// Files are decoded on top of DefaultKnightConfig, so a partial YAML only
// overrides the keys it names. A custom path that cannot be read, parsed or
// validated is an error; the implicit locations fall through silently.
func LoadKnight(customPath string) (KnightConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KnightConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseKnight(data)
		if err != nil {
			return KnightConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(knightConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseKnight(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", knightConfigFile)); err == nil {
		if cfg, err := ParseKnight(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseKnight(defaultKnightYAML)
	if err != nil {
		return DefaultKnightConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseKnight decodes YAML over the built-in defaults and validates the result.
func ParseKnight(data []byte) (KnightConfig, error) {
	cfg := DefaultKnightConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KnightConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return KnightConfig{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range field at once.
func (c KnightConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("physics.max_fall_speed", c.Physics.MaxFallSpeed)
	positive("physics.time_scale", c.Physics.TimeScale)
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("physics.friction must be within [0, 1], got %v", c.Physics.Friction))
	}

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.max_health", c.Player.MaxHealth)
	if c.Player.StartHealth <= 0 || c.Player.StartHealth > c.Player.MaxHealth {
		errs = append(errs, fmt.Errorf("player.start_health must be within (0, max_health], got %v", c.Player.StartHealth))
	}
	positive("player.animation_frames", c.Player.AnimationFrames)

	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	if c.Enemy.Health <= 0 {
		errs = append(errs, fmt.Errorf("enemy.health must be positive, got %d", c.Enemy.Health))
	}

	positive("combat.attack_duration", c.Combat.AttackDuration)
	positive("combat.hitbox_size", c.Combat.HitboxSize)
	positive("pickup.size", c.Pickup.Size)

	if c.Generator.GapRange == 0 || c.Generator.WidthRange == 0 || c.Generator.HeightRange == 0 {
		errs = append(errs, errors.New("generator ranges must be non-zero"))
	}
	positive("generator.platform_height", c.Generator.PlatformHeight)

	for i, p := range c.World.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("world.platforms[%d] must have a positive size", i))
		}
	}

	if p := c.Difficulty.Preset; p != "" && ParsePreset(string(p)) != p {
		errs = append(errs, fmt.Errorf("difficulty.preset must be easy, normal, hard or fixed, got %q", p))
	}
	if c.Difficulty.Enabled && c.Difficulty.Progression.Type == "distance" {
		positive("difficulty.progression.step", c.Difficulty.Progression.Step)
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".knight", "configs", filename)
}

// ApplyKnightPreset records the difficulty preset for the world's
// DifficultyManager and adjusts the player for it.
func ApplyKnightPreset(cfg *KnightConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset

	switch preset {
	case DifficultyEasy:
		cfg.Player.StartHealth = cfg.Player.MaxHealth
		cfg.Player.Invincibility = 1.5
	case DifficultyHard:
		cfg.Player.StartHealth = cfg.Player.MaxHealth / 2
		cfg.Player.Invincibility = 0.75
	}
}
