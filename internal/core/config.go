package core

// RuntimeConfig describes the surface a driver runs the game on.
type RuntimeConfig struct {
	ScreenW  int // Surface width (cells for terminals, pixels for windows)
	ScreenH  int // Surface height
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 100 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
	}
}
