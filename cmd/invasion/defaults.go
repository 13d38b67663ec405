package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

var flagResolved bool

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default config",
	Long: `Prints the embedded default config as YAML. Save it to
~/.invasion/configs/invasion.yaml or ./configs/invasion.yaml and edit it to
customize the game.

With --resolved, prints the config the game would actually use after the
config search, --config and --preset are applied.`,
	Args: cobra.NoArgs,
	RunE: runDefaults,
}

func init() {
	defaultsCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective config instead of the defaults")
}

func runDefaults(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !flagResolved {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig(flagConfig, flagPreset)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
