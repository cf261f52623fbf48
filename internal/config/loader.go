package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search directories.
const FileName = "brickbreaker.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SourceEmbedded is the Source of a configuration taken from the built-in defaults.
const SourceEmbedded = "embedded"

// Result is a loaded configuration and where it came from.
type Result struct {
	Config GameConfig

	// Source is the file path used, or SourceEmbedded.
	Source string

	// Skipped holds one error per file that existed but could not be used.
	Skipped []error
}

// Load loads the game configuration. See Resolve for the search order.
func Load(customPath string) (GameConfig, error) {
	res, err := Resolve(customPath)
	return res.Config, err
}

// Resolve loads the game configuration and reports its source.
// Search order: customPath -> ~/.brickbreaker/brickbreaker.yaml -> ./configs/brickbreaker.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when unusable and recorded in Result.Skipped.
func Resolve(customPath string) (Result, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Result{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Result{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return Result{Config: cfg, Source: customPath}, nil
	}

	var res Result
	candidates := []string{filepath.Join("configs", FileName)}
	if path := userConfigPath(); path != "" {
		candidates = append([]string{path}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Errorf("config: failed to read %s: %w", path, err))
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			res.Skipped = append(res.Skipped, fmt.Errorf("config: %s: %w", path, err))
			continue
		}
		res.Config = cfg
		res.Source = path
		return res, nil
	}

	res.Source = SourceEmbedded
	cfg, err := Parse(defaultYAML)
	if err != nil {
		res.Config = Default() // Fallback to hardcoded if embed is broken
		return res, nil
	}
	res.Config = cfg
	return res, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the layout is playable.
func (c GameConfig) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"ball.size", c.Ball.Size},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.step", c.Paddle.Step},
		{"bricks.rows", c.Bricks.Rows},
		{"bricks.cols", c.Bricks.Cols},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"timing.tick_rate", c.Timing.TickRate},
		{"timing.key_hold_ticks", c.Timing.KeyHoldTicks},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.val)
		}
	}

	if c.Paddle.Width > c.Field.Width {
		return fmt.Errorf("%w: paddle.width %d exceeds field.width %d", ErrInvalid, c.Paddle.Width, c.Field.Width)
	}
	if c.Paddle.X < 0 || c.Paddle.X > c.Field.Width-c.Paddle.Width {
		return fmt.Errorf("%w: paddle.x %d must be within [0, %d]", ErrInvalid, c.Paddle.X, c.Field.Width-c.Paddle.Width)
	}
	if c.Paddle.Y(c.Field.Height) < 0 {
		return fmt.Errorf("%w: paddle does not fit in field.height %d", ErrInvalid, c.Field.Height)
	}
	nonNegative := []struct {
		name string
		val  int
	}{
		{"bricks.spacing_x", c.Bricks.SpacingX},
		{"bricks.spacing_y", c.Bricks.SpacingY},
		{"bricks.margin_left", c.Bricks.MarginLeft},
		{"bricks.margin_top", c.Bricks.MarginTop},
	}
	for _, n := range nonNegative {
		if n.val < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, n.name, n.val)
		}
	}
	if c.Bricks.GridWidth() > c.Field.Width {
		return fmt.Errorf("%w: brick grid width %d exceeds field.width %d", ErrInvalid, c.Bricks.GridWidth(), c.Field.Width)
	}
	if c.Bricks.GridHeight() > c.Paddle.Y(c.Field.Height) {
		return fmt.Errorf("%w: brick grid reaches below the paddle", ErrInvalid)
	}
	if c.Ball.X < 0 || c.Ball.Y < 0 || c.Ball.X+c.Ball.Size > c.Field.Width || c.Ball.Y+c.Ball.Size > c.Field.Height {
		return fmt.Errorf("%w: ball start (%d,%d) is outside the field", ErrInvalid, c.Ball.X, c.Ball.Y)
	}
	return nil
}

// userConfigPath returns the per-user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", FileName)
}
