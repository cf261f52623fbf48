// brickbreaker is a single-screen brick breaking game for the terminal and
// the desktop.
//
// Usage:
//
//	brickbreaker play        - Play in the current terminal
//	brickbreaker window      - Play in an 800x600 desktop window
//	brickbreaker serve       - Start SSH server for remote play
//	brickbreaker version     - Print the version
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: search order)
//	--fps <rate>       - Override the tick rate from the config
//	--lang <code>      - Prompt language: en, ko (default: $LANG)
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/i18n"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagLang    string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - bounce the ball, clear the wall",
	Long: `Brick Breaker is a single-screen brick breaking game.

Move the paddle to keep the ball in play and destroy all 40 bricks.
The round is lost when the ball reaches the bottom edge.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  version  - Print the version

Examples:
  brickbreaker play
  brickbreaker play --lang ko
  brickbreaker window --fps 60
  brickbreaker serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Prompt language: en, ko (default from $LANG)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadGameConfig loads the config and applies flag overrides.
func loadGameConfig(logger *log.Logger) (config.GameConfig, error) {
	res, err := config.Resolve(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	for _, skipped := range res.Skipped {
		logger.Warn("config file skipped", "error", skipped)
	}

	cfg := res.Config
	if flagFPS < 0 {
		return config.GameConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	logger.Info("config loaded",
		"source", res.Source,
		"field", fmt.Sprintf("%dx%d", cfg.Field.Width, cfg.Field.Height),
		"tick_rate", cfg.Timing.TickRate,
	)
	return cfg, nil
}

// lang resolves the prompt language from the flag or the environment.
func lang(logger *log.Logger) string {
	code := flagLang
	if code == "" {
		code = os.Getenv("LANG")
	}
	if code != "" && !i18n.Supported(code) {
		logger.Warn("unsupported language, using English", "lang", code)
		return i18n.DefaultLang
	}
	return code
}

// newLogger builds the process logger. fallback is used when --log-file is
// not set; the terminal driver passes io.Discard so nothing reaches the
// alternate screen. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "brickbreaker",
	})
	if flagLogFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
