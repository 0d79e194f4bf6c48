package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-knight/internal/config"
	"github.com/vovakirdan/tui-knight/internal/games/knight"
	"github.com/vovakirdan/tui-knight/internal/platform/tui"
	"github.com/vovakirdan/tui-knight/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the title menu",
	Long: `Open the title menu. Pick a difficulty, start a run or browse the
scoreboard. Leaving a run with B returns here.

Menu controls:
  Up/Down or j/k     - Navigate
  Left/Right or h/l  - Change difficulty
  Enter/Space        - Select
  Tab                - Scoreboard
  Q/Esc              - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := mustLogger(io.Discard)
	defer runCleanups()

	store := openStore()

	cfg := terminalConfig()
	preset := string(config.ParsePreset(flagDifficulty))

	for {
		result, err := tui.RunMenu(store, knight.ID, cfg, preset)
		if err != nil {
			exitf("Error running menu: %v", err)
		}
		if result.Quit {
			return
		}
		preset = result.Preset
		cfg = result.Config

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, knight.ID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				exitf("Error showing scores: %v", err)
			}
			if !goBack {
				return
			}
			continue
		}

		game, err := registry.Create(knight.ID)
		if err != nil {
			exitf("Error creating game: %v", err)
		}
		if p, ok := game.(interface{ SetPreset(string) }); ok {
			p.SetPreset(preset)
		}

		logger.Info("starting run", "preset", preset, "seed", cfg.Seed)
		if err := tui.Run(game, store, cfg); err != nil {
			exitf("Error running game: %v", err)
		}
	}
}
