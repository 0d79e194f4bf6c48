package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/platform/gui"
	"github.com/vovakirdan/tui-knight/internal/platform/gui/settings"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play Knight Run in a desktop window",
	Long: `Open Knight Run in a desktop window. Keys are read directly, so held
directions behave exactly like a gamepad.

Controls:
  Left/Right, A/D  - Move
  Up, W            - Jump
  Space            - Swing sword
  P                - Pause
  R                - Restart (after game over)
  H                - Toggle hitboxes
  Esc              - Quit

Window scale and the hitbox toggle are remembered between launches.

Examples:
  knight window
  knight window --scale 2 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale (0 = last used)")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := mustLogger(os.Stderr)
	defer runCleanups()

	prefs, err := settings.Open(settings.AppName)
	if err != nil {
		logger.Warn("window settings", "err", err)
	}
	if flagScale > 0 {
		prefs.SetWindowScale(flagScale)
	}

	store := openStore()

	opts := gui.Options{
		Runtime:  core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Preset:   flagDifficulty,
		Store:    store,
		Settings: prefs,
		Logger:   logger,
	}
	if err := gui.Run(opts); err != nil {
		exitf("Error running window: %v", err)
	}
}
