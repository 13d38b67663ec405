// invasion is a terminal rendition of the Alien Invasion arcade shooter.
//
// Usage:
//
//	invasion                 - Play (same as "invasion play")
//	invasion play            - Play the game
//	invasion list            - List available game variants
//	invasion defaults        - Print the default YAML config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--config <path>     - Custom YAML config
//	--preset <name>     - Difficulty preset: easy, normal, hard, fixed
//	--log <path>        - Write logs to a file
//	--log-level <lvl>   - debug, info, warn, error
//
// Every global flag can also be set through an INVASION_* environment
// variable; flags win over the environment.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/alien-invasion/internal/games/invasion"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagPreset   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - shoot down the fleet before it lands",
	Long: `Alien Invasion is a terminal arcade shooter. Move the ship along the
bottom of the screen and shoot down the alien fleet before it reaches you.
Every cleared fleet brings a faster one.

Available commands:
  play      - Play the game (default)
  list      - Show available game variants
  defaults  - Print the default config

Examples:
  invasion
  invasion play --preset hard
  invasion --config ./my-invasion.yaml --log invasion.log --log-level debug
  invasion defaults > ~/.invasion/configs/invasion.yaml`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
	RunE:              runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// applyEnv fills every flag the user did not set from INVASION_* variables.
func applyEnv(cmd *cobra.Command, args []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") && e.FPS != 0 {
		flagFPS = e.FPS
	}
	if !flags.Changed("config") && e.ConfigPath != "" {
		flagConfig = e.ConfigPath
	}
	if !flags.Changed("preset") && e.Preset != "" {
		flagPreset = e.Preset
	}
	if !flags.Changed("log") && e.LogPath != "" {
		flagLogPath = e.LogPath
	}
	if !flags.Changed("log-level") && e.LogLevel != "" {
		flagLogLevel = e.LogLevel
	}

	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}
	return nil
}
