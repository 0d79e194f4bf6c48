// Package settings keeps the desktop window preferences in the per-user
// data directory through gdata.
package settings

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "knight_run"

const (
	settingsObject   = "settings"
	settingsProperty = "window"

	minScale = 0.5
	maxScale = 4.0
)

// Settings are the window preferences kept between launches.
type Settings struct {
	WindowScale  float64 `yaml:"window_scale"`
	ShowHitboxes bool    `yaml:"show_hitboxes"`
	LastSeed     uint32  `yaml:"last_seed"`
}

// Default returns the settings used on first launch.
func Default() Settings {
	return Settings{WindowScale: 1}
}

// Store loads and saves Settings through gdata. A nil manager
// keeps settings in memory only.
type Store struct {
	manager  *gdata.Manager
	settings Settings
}

// Open opens the gdata store for appName and loads it. When gdata cannot
// open, the returned store works in memory and err says why.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return New(nil), fmt.Errorf("settings: not persisted: %w", err)
	}
	s := New(m)
	return s, s.Load()
}

// New creates a store with default settings.
func New(m *gdata.Manager) *Store {
	return &Store{manager: m, settings: Default()}
}

// Persistent reports whether settings survive a restart.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load reads saved settings. Missing data keeps the defaults; a broken
// file resets them and returns the error.
func (s *Store) Load() error {
	s.settings = Default()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load settings: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: parse settings: %w", err)
	}
	loaded.WindowScale = clampScale(loaded.WindowScale)
	s.settings = loaded
	return nil
}

// Save writes the settings. It is a no-op in memory-only mode.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("settings: encode settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save settings: %w", err)
	}
	return nil
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	return s.settings
}

// SetWindowScale sets the window scale, clamped to [0.5, 4].
func (s *Store) SetWindowScale(scale float64) {
	s.settings.WindowScale = clampScale(scale)
}

// SetShowHitboxes toggles the hitbox overlay.
func (s *Store) SetShowHitboxes(show bool) {
	s.settings.ShowHitboxes = show
}

// SetLastSeed records the seed of the latest run.
func (s *Store) SetLastSeed(seed uint32) {
	s.settings.LastSeed = seed
}

func clampScale(scale float64) float64 {
	if scale <= 0 {
		return 1
	}
	return min(max(scale, minScale), maxScale)
}
