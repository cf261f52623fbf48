package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/game"
	"github.com/vovakirdan/brickbreaker/internal/i18n"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Brick Breaker in the current terminal.

Terminals only report key presses, so a press keeps the paddle moving for
timing.key_hold_ticks ticks. Holding the key down keeps it moving once
the keyboard starts auto-repeating; raise key_hold_ticks if the paddle
pauses before that.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Space/Down  - Stop
  Y/Enter     - Play again (after the round ends)
  N/Esc       - Quit (after the round ends)
  Q/Ctrl+C    - Quit

Examples:
  brickbreaker play
  brickbreaker play --lang ko
  brickbreaker play --config ./my-brickbreaker.yaml --log-file play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Warnings still reach stderr before the alternate screen opens.
	startup := logger
	if flagLogFile == "" {
		startup = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "brickbreaker",
			Level:  log.WarnLevel,
		})
	}

	cfg, err := loadGameConfig(startup)
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Timing.TickRate

	return tui.Run(game.New(cfg), tui.Options{
		Runtime:      rt,
		KeyHoldTicks: cfg.Timing.KeyHoldTicks,
		Messages:     i18n.For(lang(startup)),
		Logger:       logger,
	})
}
