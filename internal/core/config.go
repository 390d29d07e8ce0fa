package core

// Logical surface size. Every layout coordinate is expressed in this box and
// scaled linearly by the backend to its real dimensions.
const (
	LogicalWidth  = 960
	LogicalHeight = 530
)

// RuntimeConfig contains configuration passed to a game session at start.
type RuntimeConfig struct {
	ScreenW  int   // Backend width (cells for terminals, pixels for windows)
	ScreenH  int   // Backend height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic sessions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
