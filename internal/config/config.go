// Package config provides YAML-based configuration loading and validation
// for the brick breaker game.
package config

// GameConfig contains all tunable constants of the game and its drivers.
type GameConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Bricks BrickConfig  `yaml:"bricks"`
	Timing TimingConfig `yaml:"timing"`
}

// FieldConfig defines the play-field size in logical pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BallConfig defines the ball's starting position, velocity and diameter.
type BallConfig struct {
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
	Size int `yaml:"size"`
	VX   int `yaml:"vx"`
	VY   int `yaml:"vy"`
}

// PaddleConfig defines the paddle geometry and per-tick step.
type PaddleConfig struct {
	X         int `yaml:"x"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	BottomGap int `yaml:"bottom_gap"` // Distance between paddle bottom and field bottom
	Step      int `yaml:"step"`
}

// Y returns the paddle's fixed top edge for the given field height.
func (p PaddleConfig) Y(fieldHeight int) int {
	return fieldHeight - p.Height - p.BottomGap
}

// BrickConfig defines the brick grid layout.
type BrickConfig struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	SpacingX   int `yaml:"spacing_x"`
	SpacingY   int `yaml:"spacing_y"`
	MarginLeft int `yaml:"margin_left"`
	MarginTop  int `yaml:"margin_top"`
}

// GridWidth returns the horizontal extent of the grid including the left margin.
func (b BrickConfig) GridWidth() int {
	return b.MarginLeft + b.Cols*b.Width + (b.Cols-1)*b.SpacingX
}

// GridHeight returns the vertical extent of the grid including the top margin.
func (b BrickConfig) GridHeight() int {
	return b.MarginTop + b.Rows*b.Height + (b.Rows-1)*b.SpacingY
}

// TimingConfig defines the driver cadence.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`
	KeyHoldTicks int `yaml:"key_hold_ticks"`
}
