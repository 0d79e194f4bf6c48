package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/games/knight"
	"github.com/vovakirdan/tui-knight/internal/platform/tui"
	"github.com/vovakirdan/tui-knight/internal/registry"
	"github.com/vovakirdan/tui-knight/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Knight Run in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/Right, A/D  - Move
  Up, W            - Jump
  Space            - Swing sword
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Back (while paused or after game over)
  Ctrl+S           - Save a screenshot to ~/.knight/screenshots
  Q/Ctrl+C         - Quit

Terminals only report key presses, so a direction stays held for about
half a second after its last repeat.

Difficulty options:
  easy   - Starts calm, more health, longer invincibility
  normal - Starts a little into the ramp
  hard   - Starts well into the ramp, less health
  fixed  - No progression, constant level (config's initial level, or 1.0)

Examples:
  knight play
  knight play --difficulty easy
  knight play --seed 1234
  knight play --config ./my-knight.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// terminalConfig builds the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database and closes it on exit. Games still
// run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	onExit(func() { store.Close() })
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := mustLogger(io.Discard)
	defer runCleanups()

	game, err := registry.Create(knight.ID)
	if err != nil {
		exitf("Error creating game: %v", err)
	}

	store := openStore()

	cfg := terminalConfig()
	logger.Info("starting run", "w", cfg.ScreenW, "h", cfg.ScreenH, "fps", cfg.TickRate, "seed", cfg.Seed)

	if err := tui.Run(game, store, cfg); err != nil {
		exitf("Error running game: %v", err)
	}
}
