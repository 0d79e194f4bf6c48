package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-knight/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the built-in game config as YAML. Save it to
~/.knight/configs/knight.yaml or ./configs/knight.yaml and edit it to tune
the game, or pass it with --config.

With --resolved, print the config a run would use after the search order
and the --difficulty preset are applied.

Examples:
  knight config > ~/.knight/configs/knight.yaml
  knight config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadKnight(flagConfig)
	if err != nil {
		exitf("Error loading config: %v", err)
	}
	config.ApplyKnightPreset(&cfg, config.ParsePreset(flagDifficulty))

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		exitf("Error encoding config: %v", err)
	}
	enc.Close()
}
