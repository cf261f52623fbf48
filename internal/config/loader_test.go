package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultLayout(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 575, cfg.Paddle.Y(cfg.Field.Height))
	assert.Equal(t, 755, cfg.Bricks.GridWidth())
	assert.Equal(t, 145, cfg.Bricks.GridHeight())
	assert.Equal(t, 15, cfg.Timing.KeyHoldTicks)
	assert.NoError(t, cfg.Validate())
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// Local ./configs file
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", FileName), []byte("paddle:\n  step: 7\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Paddle.Step)

	// User file wins over local file
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".brickbreaker"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".brickbreaker", FileName), []byte("paddle:\n  step: 9\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Paddle.Step)

	// Custom path wins over everything
	custom := filepath.Join(work, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("timing:\n  tick_rate: 60\n"), 0o600))
	cfg, err = Load(custom)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Timing.TickRate)
	assert.Equal(t, 5, cfg.Paddle.Step, "unset keys keep defaults")
}

func TestResolveSkipsInvalidUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".brickbreaker"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".brickbreaker", FileName), []byte("ball:\n  size: -1\n"), 0o600))

	res, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), res.Config)
	assert.Equal(t, SourceEmbedded, res.Source)
	require.Len(t, res.Skipped, 1)
	assert.ErrorIs(t, res.Skipped[0], ErrInvalid)
	assert.Contains(t, res.Skipped[0].Error(), filepath.Join(home, ".brickbreaker", FileName))
}

func TestResolveReportsSource(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	res, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, res.Source)
	assert.Empty(t, res.Skipped, "missing files are not reported")

	local := filepath.Join("configs", FileName)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(local, []byte("paddle:\n  step: 7\n"), 0o600))
	res, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, local, res.Source)

	custom := filepath.Join(work, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("paddle:\n  step: 8\n"), 0o600))
	res, err = Resolve(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, res.Source)
	assert.Equal(t, 8, res.Config.Paddle.Step)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("field: [800"), 0o600))
	_, err = Load(broken)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("paddle:\n  width: 900\n"), 0o600))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero field width", func(c *GameConfig) { c.Field.Width = 0 }},
		{"negative ball size", func(c *GameConfig) { c.Ball.Size = -20 }},
		{"zero tick rate", func(c *GameConfig) { c.Timing.TickRate = 0 }},
		{"paddle wider than field", func(c *GameConfig) { c.Paddle.Width = 801 }},
		{"grid too wide", func(c *GameConfig) { c.Bricks.Cols = 11 }},
		{"grid below paddle", func(c *GameConfig) { c.Bricks.Rows = 30 }},
		{"ball outside field", func(c *GameConfig) { c.Ball.X = 790 }},
		{"paddle left of field", func(c *GameConfig) { c.Paddle.X = -1 }},
		{"paddle right of field", func(c *GameConfig) { c.Paddle.X = 701 }},
		{"negative margin left", func(c *GameConfig) { c.Bricks.MarginLeft = -10 }},
		{"negative margin top", func(c *GameConfig) { c.Bricks.MarginTop = -1 }},
		{"negative spacing", func(c *GameConfig) { c.Bricks.SpacingX = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidatePaddleRangeEdges(t *testing.T) {
	for _, x := range []int{0, 700} {
		cfg := Default()
		cfg.Paddle.X = x
		assert.NoError(t, cfg.Validate(), "paddle.x = %d", x)
	}

	_, err := Parse([]byte("paddle:\n  x: 750\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}
