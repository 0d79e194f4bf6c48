package config

import (
	_ "embed"
)

//go:embed defaults/knight.yaml
var defaultKnightYAML []byte

// DefaultKnightConfig returns the built-in Knight Run configuration.
// It is the fallback when neither a user file nor the embedded YAML can be read.
func DefaultKnightConfig() KnightConfig {
	return KnightConfig{
		Physics: PhysicsConfig{
			Gravity:          0.5,
			MaxFallSpeed:     15.0,
			Friction:         0.85,
			FloorY:           450,
			StoppedThreshold: 0.1,
			TimeScale:        0.016, // ~60Hz frames to seconds
		},
		Player: PlayerConfig{
			StartX:          100,
			StartY:          300,
			Width:           24,
			Height:          32,
			Speed:           5,
			JumpPower:       12,
			MaxHealth:       28, // 7 hearts
			StartHealth:     28,
			Damage:          1,
			HealAmount:      4,
			KnockbackX:      8,
			KnockbackY:      5,
			Invincibility:   1.0,
			AnimationStep:   0.2,
			AnimationFrames: 4,
		},
		Enemy: EnemyConfig{
			Width:         21,
			Height:        27,
			Speed:         1.5,
			Health:        1,
			KnockbackX:    8,
			KnockbackY:    3,
			HitFlash:      1.0,
			HitFlashDecay: 0.05,
		},
		Combat: CombatConfig{
			AttackDuration:  0.4,
			HitWindow:       0.5,
			HitboxSize:      20,
			SwordLength:     20,
			HandOffsetRight: 2,
			HandOffsetLeft:  6,
			HandOffsetY:     12,
			StartAngle:      90,
			EndAngleRight:   -10,
			EndAngleLeft:    190,
		},
		Pickup: PickupConfig{
			Size:           20,
			FloatSpeed:     0.003,
			FloatAmplitude: 5,
		},
		World: WorldConfig{
			Seed:          1,
			CameraLead:    400,
			GenerateAhead: 1200,
			CleanupBehind: 500,
			StartFrontier: 350,
			Platforms: []PlatformConfig{
				{X: 0, Y: 450, Width: 200, Height: 50}, // Starting ground
				{X: 200, Y: 400, Width: 100, Height: 20},
				{X: 350, Y: 350, Width: 80, Height: 20},
			},
			Enemies: []EnemySpawn{
				{X: 250, Y: 350, PatrolRange: 80},
			},
		},
		Generator: GeneratorConfig{
			GapMin:         50,
			GapRange:       150,
			WidthMin:       60,
			WidthRange:     90,
			HeightBase:     350,
			HeightRange:    200,
			PlatformHeight: 20,
			EnemyChance:    40,
			EnemyOffsetY:   50,
			PatrolRatio:    0.8,
			HeartChance:    15,
			HeartOffsetY:   40,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "distance",
				Step: 1000,
			},
			Scaling: ScalingConfig{
				MaxMultiplier: 3.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, printed by `knight config`.
func DefaultYAML() []byte {
	return defaultKnightYAML
}
