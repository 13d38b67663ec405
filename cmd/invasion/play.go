package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// gameID is the registered game started by play.
const gameID = "invasion"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a session. Click Play (or press Enter) to begin a game.

Controls:
  Left/Right, A/D  - Move the ship
  Space            - Fire
  Enter/P          - Play (from the menu)
  Esc              - Pause
  Tab              - Session scores (from the menu)
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - 5 ships, 5 bullets, gentle speed-up
  normal - The config as loaded
  hard   - 2 ships, 2 bullets, faster fleet, steep speed-up
  fixed  - No speed-up between levels

Scores are kept for the session only and are gone when you quit.

Examples:
  invasion play
  invasion play --preset easy
  invasion play --config ./my-invasion.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadConfig loads the config and applies a difficulty preset.
func loadConfig(path, presetName string) (config.InvasionConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(presetName)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	return cfg, config.Validate(cfg)
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(flagConfig, flagPreset)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := registry.Create(gameID, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.OpenSession()
	if err != nil {
		// Continue without a scoreboard - game still works
		logger.Warn("scoreboard unavailable", "err", err)
		store = nil
	}

	logger.Info("session started",
		"fps", flagFPS,
		"preset", flagPreset,
		"world", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
		"terminal", fmt.Sprintf("%dx%d", width, height),
	)

	runErr := tui.Run(game, store, runtime, tui.Options{
		Logger:      logger,
		InitialHold: time.Duration(cfg.Input.InitialHoldMS) * time.Millisecond,
		RepeatHold:  time.Duration(cfg.Input.RepeatHoldMS) * time.Millisecond,
	})

	// Close store before returning
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	logger.Info("session ended")
	return nil
}
