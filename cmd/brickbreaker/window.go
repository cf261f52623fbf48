package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/game"
	"github.com/vovakirdan/brickbreaker/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play Brick Breaker with the arrow keys.

Controls:
  Left/Right  - Move the paddle while held
  Y           - Play again (after the round ends)
  N           - Quit (after the round ends)

The window prompt is always in English.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	return window.Run(game.New(cfg), window.Options{
		Title:    "Brick Breaker",
		TickRate: cfg.Timing.TickRate,
		Logger:   logger,
	})
}
