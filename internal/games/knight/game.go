// Package knight adapts the Knight Run simulation to the game platform:
// it loads configuration, steps the world once per tick, logs gameplay
// events and draws frames into a cell screen.
package knight

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/games/knight/sim"
	"github.com/vovakirdan/tui-knight/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "knight"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the loaded config.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes gameplay events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for Knight Run.
type Game struct {
	world   *sim.World
	cfg     config.KnightConfig
	runtime core.RuntimeConfig
	preset  config.DifficultyPreset
	delta   float64
	paused  bool
	log     *log.Logger
}

// New creates a new Knight Run game instance using the current
// package-wide difficulty preset.
func New() *Game {
	return &Game{preset: difficultyPreset}
}

// SetPreset overrides the difficulty preset for this instance. It takes
// effect on the next Reset.
func (g *Game) SetPreset(preset string) {
	g.preset = config.ParsePreset(preset)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Knight Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.WithPrefix(ID)

	cfg, err := config.LoadKnight(configPath)
	if err != nil {
		g.log.Warn("using built-in config", "err", err)
		cfg = config.DefaultKnightConfig()
	}
	config.ApplyKnightPreset(&cfg, g.preset)
	g.cfg = cfg

	g.delta = runtime.FrameDelta()
	g.paused = false

	g.world = sim.NewWorld(cfg, runSeed(runtime.Seed))
	g.log.Debug("new run", "seed", g.world.Seed(), "preset", string(g.preset))
}

// runSeed folds a runtime seed into the generator's 31-bit range.
// Zero keeps the configured seed.
func runSeed(seed int64) uint32 {
	return uint32(uint64(seed) & 0x7fffffff)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Dead() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Update(g.delta, sim.ActionsFromInput(in))
	g.logEvents(g.world.Events())

	return core.StepResult{State: g.State()}
}

func (g *Game) logEvents(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventSwordSwing:
			g.log.Debug("sword swing", "x", int(e.X))
		case sim.EventEnemyHit:
			g.log.Debug("enemy hit", "x", int(e.X))
		case sim.EventEnemyDefeated:
			g.log.Debug("enemy defeated", "x", int(e.X))
		case sim.EventPlayerHurt:
			g.log.Debug("player hurt", "hearts", e.Hearts())
		case sim.EventHeartCollected:
			g.log.Debug("heart collected", "hearts", e.Hearts())
		case sim.EventGameOver:
			stats := g.world.Stats()
			g.log.Info("game over",
				"distance", int(g.world.Distance()),
				"seed", g.world.Seed(),
				"defeated", stats.EnemiesDefeated,
				"frames", stats.Frames)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderFrame(dst, g.world.Frame(), g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.world.Distance()),
		GameOver: g.world.Dead(),
		Paused:   g.paused,
	}
}

// Frame returns a snapshot for frontends that draw on their own.
func (g *Game) Frame() sim.Frame {
	return g.world.Frame()
}

// Events returns the events of the last step.
func (g *Game) Events() []sim.Event {
	return g.world.Events()
}

// Run summarizes the run so far.
func (g *Game) Run() core.RunSummary {
	stats := g.world.Stats()
	return core.RunSummary{
		Seed:            g.world.Seed(),
		Distance:        int(g.world.Distance()),
		EnemiesDefeated: stats.EnemiesDefeated,
		HeartsCollected: stats.HeartsCollected,
		Frames:          stats.Frames,
	}
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.KnightConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
