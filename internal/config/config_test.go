package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseKnight(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseKnight(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultKnightConfig()) {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultKnightConfig())
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultKnightConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestParseKnightPartialOverride(t *testing.T) {
	data := []byte(`
player:
  speed: 7
world:
  seed: 42
  platforms:
    - { x: 0, y: 450, width: 1000, height: 50 }
`)
	cfg, err := ParseKnight(data)
	if err != nil {
		t.Fatalf("ParseKnight() error: %v", err)
	}

	if cfg.Player.Speed != 7 {
		t.Errorf("Player.Speed = %v, expected 7", cfg.Player.Speed)
	}
	if cfg.Player.JumpPower != 12 {
		t.Errorf("Player.JumpPower = %v, expected default 12", cfg.Player.JumpPower)
	}
	if cfg.World.Seed != 42 {
		t.Errorf("World.Seed = %d, expected 42", cfg.World.Seed)
	}
	if len(cfg.World.Platforms) != 1 || cfg.World.Platforms[0].Width != 1000 {
		t.Errorf("World.Platforms = %+v, expected the single overridden platform", cfg.World.Platforms)
	}
	if len(cfg.World.Enemies) != 1 {
		t.Errorf("World.Enemies has %d entries, expected default 1", len(cfg.World.Enemies))
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultKnightConfig()
	cfg.Player.Width = 0
	cfg.Enemy.Health = 0
	cfg.Physics.Friction = 1.5
	cfg.Difficulty.Preset = "brutal"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected error")
	}
	for _, want := range []string{"player.width", "enemy.health", "physics.friction", "difficulty.preset"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}
}

func TestLoadKnightCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  speed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKnight(path)
	if err != nil {
		t.Fatalf("LoadKnight() error: %v", err)
	}
	if cfg.Enemy.Speed != 3 {
		t.Errorf("Enemy.Speed = %v, expected 3", cfg.Enemy.Speed)
	}
}

func TestLoadKnightCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadKnight(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadKnight(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKnight(bad); err == nil {
		t.Error("LoadKnight(bad yaml) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  height: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKnight(invalid); err == nil {
		t.Error("LoadKnight(invalid values) expected error")
	}
}

func TestLoadKnightFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadKnight("")
	if err != nil {
		t.Fatalf("LoadKnight(\"\") error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultKnightConfig()) {
		t.Error("LoadKnight without files should return the defaults")
	}
}

func TestLoadKnightUserConfigBeatsLocal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	userDir := filepath.Join(home, ".knight", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "knight.yaml"), []byte("player:\n  speed: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "knight.yaml"), []byte("player:\n  speed: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKnight("")
	if err != nil {
		t.Fatalf("LoadKnight() error: %v", err)
	}
	if cfg.Player.Speed != 9 {
		t.Errorf("Player.Speed = %v, expected 9 from the user config", cfg.Player.Speed)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"normal", DifficultyNormal},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"nightmare", ""},
	}

	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyKnightPreset(t *testing.T) {
	cfg := DefaultKnightConfig()
	ApplyKnightPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.Preset != DifficultyHard {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Player.StartHealth != 14 {
		t.Errorf("hard preset StartHealth = %v, expected 14", cfg.Player.StartHealth)
	}

	cfg = DefaultKnightConfig()
	ApplyKnightPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Preset != DifficultyFixed {
		t.Errorf("fixed preset difficulty = %+v", cfg.Difficulty)
	}

	cfg = DefaultKnightConfig()
	ApplyKnightPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultKnightConfig()) {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*DifficultyConfig)
		distance float64
		expected float64
	}{
		{"start", nil, 0, 0},
		{"half", nil, 500, 0.5},
		{"one", nil, 1000, 1},
		{"saturates", nil, 10000, 3},
		{"offset", func(c *DifficultyConfig) { c.InitialLevel = 0.5 }, 1000, 1.5},
		{"disabled", func(c *DifficultyConfig) { c.Enabled = false; c.InitialLevel = 0.5 }, 5000, 0.5},
		{"none", func(c *DifficultyConfig) { c.Progression.Type = "none" }, 5000, 0},
		{"negative level", func(c *DifficultyConfig) { c.InitialLevel = -2 }, 0, 0},
		{"easy", func(c *DifficultyConfig) { c.Preset = DifficultyEasy }, 500, 0.5},
		{"normal", func(c *DifficultyConfig) { c.Preset = DifficultyNormal }, 500, 1},
		{"hard", func(c *DifficultyConfig) { c.Preset = DifficultyHard }, 500, 2},
		{"hard saturates", func(c *DifficultyConfig) { c.Preset = DifficultyHard }, 5000, 3},
		{"fixed", func(c *DifficultyConfig) { c.Preset = DifficultyFixed }, 5000, FixedLevel},
		{"fixed keeps level", func(c *DifficultyConfig) { c.Preset = DifficultyFixed; c.InitialLevel = 2 }, 5000, 2},
		{"preset enables", func(c *DifficultyConfig) { c.Enabled = false; c.Preset = DifficultyNormal }, 1000, 1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKnightConfig().Difficulty
			if tc.mutate != nil {
				tc.mutate(&cfg)
			}
			dm := NewDifficultyManager(cfg)
			if got := dm.Multiplier(tc.distance); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Multiplier(%v) = %v, expected %v", tc.distance, got, tc.expected)
			}
		})
	}
}
