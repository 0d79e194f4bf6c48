// Package config provides YAML-based game configuration loading and
// difficulty management for Knight Run.
package config

// KnightConfig contains all tuning for the Knight Run simulation.
// The defaults reproduce the reference game exactly; every field can be
// overridden from YAML.
type KnightConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Combat     CombatConfig     `yaml:"combat"`
	Pickup     PickupConfig     `yaml:"pickup"`
	World      WorldConfig      `yaml:"world"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the shared integrator parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	Friction         float64 `yaml:"friction"`          // Horizontal damping factor applied to the player per frame
	FloorY           float64 `yaml:"floor_y"`           // Safety floor; nothing rests below it
	StoppedThreshold float64 `yaml:"stopped_threshold"` // |vel_x| at or below this counts as standing for animation
	TimeScale        float64 `yaml:"time_scale"`        // Converts frame delta to seconds for cooldowns
}

// PlayerConfig defines the knight.
type PlayerConfig struct {
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	JumpPower       float64 `yaml:"jump_power"`
	MaxHealth       float64 `yaml:"max_health"` // Quarter hearts
	StartHealth     float64 `yaml:"start_health"`
	Damage          float64 `yaml:"damage"` // Quarter hearts lost per hit
	HealAmount      float64 `yaml:"heal_amount"`
	KnockbackX      float64 `yaml:"knockback_x"`
	KnockbackY      float64 `yaml:"knockback_y"`
	Invincibility   float64 `yaml:"invincibility"` // Seconds of damage immunity after a hit
	AnimationStep   float64 `yaml:"animation_step"`
	AnimationFrames float64 `yaml:"animation_frames"`
}

// EnemyConfig defines the goblins.
type EnemyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Health        int     `yaml:"health"`
	KnockbackX    float64 `yaml:"knockback_x"`
	KnockbackY    float64 `yaml:"knockback_y"`
	HitFlash      float64 `yaml:"hit_flash"`
	HitFlashDecay float64 `yaml:"hit_flash_decay"` // Per frame delta
}

// CombatConfig defines the sword swing. Angles are in degrees.
type CombatConfig struct {
	AttackDuration  float64 `yaml:"attack_duration"`
	HitWindow       float64 `yaml:"hit_window"` // Swing progress below which the blade can hit
	HitboxSize      float64 `yaml:"hitbox_size"`
	SwordLength     float64 `yaml:"sword_length"`
	HandOffsetRight float64 `yaml:"hand_offset_right"` // Added to the player's right edge
	HandOffsetLeft  float64 `yaml:"hand_offset_left"`  // Subtracted from the player's left edge
	HandOffsetY     float64 `yaml:"hand_offset_y"`
	StartAngle      float64 `yaml:"start_angle"`
	EndAngleRight   float64 `yaml:"end_angle_right"`
	EndAngleLeft    float64 `yaml:"end_angle_left"`
}

// PickupConfig defines heart pickups.
type PickupConfig struct {
	Size           float64 `yaml:"size"`
	FloatSpeed     float64 `yaml:"float_speed"`
	FloatAmplitude float64 `yaml:"float_amplitude"`
}

// WorldConfig defines the camera window and the hand-placed opening section.
type WorldConfig struct {
	Seed          uint32           `yaml:"seed"`
	CameraLead    float64          `yaml:"camera_lead"`    // Player x minus this is the camera x
	GenerateAhead float64          `yaml:"generate_ahead"` // Frontier target past the camera
	CleanupBehind float64          `yaml:"cleanup_behind"` // Prune line behind the camera
	StartFrontier float64          `yaml:"start_frontier"`
	Platforms     []PlatformConfig `yaml:"platforms"`
	Enemies       []EnemySpawn     `yaml:"enemies"`
}

// PlatformConfig places a static platform.
type PlatformConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemySpawn places an enemy with a patrol range centered on X.
type EnemySpawn struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	PatrolRange float64 `yaml:"patrol_range"`
}

// GeneratorConfig defines procedural platform placement.
// Ranges are used as modulo bounds on the generator's raw draw.
type GeneratorConfig struct {
	GapMin         float64 `yaml:"gap_min"`
	GapRange       uint32  `yaml:"gap_range"`
	WidthMin       float64 `yaml:"width_min"`
	WidthRange     uint32  `yaml:"width_range"`
	HeightBase     float64 `yaml:"height_base"`
	HeightRange    uint32  `yaml:"height_range"`
	PlatformHeight float64 `yaml:"platform_height"`
	EnemyChance    float64 `yaml:"enemy_chance"` // Percent, multiplied by difficulty
	EnemyOffsetY   float64 `yaml:"enemy_offset_y"`
	PatrolRatio    float64 `yaml:"patrol_ratio"`
	HeartChance    uint32  `yaml:"heart_chance"` // Percent
	HeartOffsetY   float64 `yaml:"heart_offset_y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // Multiplier offset at distance 0
	Preset       DifficultyPreset  `yaml:"preset"`        // Overrides enabled/initial_level when set
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type string  `yaml:"type"` // "distance" or "none"
	Step float64 `yaml:"step"` // Distance per +1.0 multiplier
}

// ScalingConfig caps the difficulty multiplier.
type ScalingConfig struct {
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// Unknown or empty strings return "" (use the config as loaded).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// FixedLevel is the constant multiplier of the fixed preset when the config
// does not set a positive initial_level. At 1.0 enemies spawn at the base
// enemy_chance.
const FixedLevel = 1.0

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.5
	case DifficultyHard:
		return 1.5
	case DifficultyFixed:
		return FixedLevel
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
