// knight runs Knight Run, a side-scrolling platformer, in the terminal,
// in a desktop window or over SSH.
//
// Usage:
//
//	knight play              - Play in the terminal
//	knight menu              - Title menu with difficulty and scores
//	knight window            - Play in a desktop window
//	knight serve             - Start SSH server for remote play
//	knight scores            - Show best distances and recent runs
//	knight simulate          - Run headless and print a checksum
//	knight list              - List registered games
//	knight config            - Print the game config YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set world seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.knight/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-knight/internal/games/knight"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "knight",
	Short: "Knight Run - an endless side-scrolling platformer",
	Long: `Knight Run is an endless side-scroller: run right, jump between
platforms, swing your sword at goblins and collect hearts. Your score is
the distance you travel.

Available commands:
  play      - Play in the terminal
  menu      - Title menu with difficulty and scoreboard
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View best distances and recent runs
  simulate  - Run headless from an input script
  list      - Show registered games
  config    - Print the game config

Examples:
  knight play
  knight play --difficulty hard --seed 42
  knight window --scale 1.5
  knight serve --ssh :2222
  knight simulate --frames 600 --script run.txt`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		knight.SetConfigPath(flagConfig)
		knight.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.knight/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
