package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// Default returns the built-in configuration of the classic layout.
func Default() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			X:    350,
			Y:    300,
			Size: 20,
			VX:   4,
			VY:   4,
		},
		Paddle: PaddleConfig{
			X:         350,
			Width:     100,
			Height:    15,
			BottomGap: 10,
			Step:      5,
		},
		Bricks: BrickConfig{
			Rows:       4,
			Cols:       10,
			Width:      70,
			Height:     20,
			SpacingX:   5,
			SpacingY:   5,
			MarginLeft: 10,
			MarginTop:  50,
		},
		Timing: TimingConfig{
			TickRate:     100,
			KeyHoldTicks: 15,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
