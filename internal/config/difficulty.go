package config

import "github.com/vovakirdan/tui-knight/internal/core"

// DifficultyManager turns distance traveled into the generator's difficulty
// multiplier.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager and applies
// cfg.Preset on top of the configured level.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.SetInitialLevel(cfg.InitialLevel)
	d.ApplyPreset(cfg.Preset)
	return d
}

// ApplyPreset switches progression and the starting level to preset.
// Fixed keeps a positive configured level and otherwise uses FixedLevel.
func (d *DifficultyManager) ApplyPreset(preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		d.SetEnabled(false)
		if d.initialLevel <= 0 {
			d.SetInitialLevel(FixedLevel)
		}
	default:
		d.SetEnabled(true)
		d.SetInitialLevel(InitialLevelForPreset(preset))
	}
}

// SetInitialLevel overrides the multiplier offset at distance 0.
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.ClampF(level, 0.0, d.maxMultiplier())
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Multiplier returns the difficulty at the given distance. With the default
// config this is min(distance/1000, 3). When progression is off the
// multiplier stays at the initial level.
func (d *DifficultyManager) Multiplier(distance float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	step := d.cfg.Progression.Step
	if step <= 0 {
		step = 1 // Prevent division by zero
	}

	return core.ClampF(d.initialLevel+distance/step, 0.0, d.maxMultiplier())
}

func (d *DifficultyManager) maxMultiplier() float64 {
	if d.cfg.Scaling.MaxMultiplier <= 0 {
		return 1
	}
	return d.cfg.Scaling.MaxMultiplier
}
