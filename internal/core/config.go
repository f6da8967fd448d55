package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt rendering to the terminal and for deterministic
// simulation under a fixed seed.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform layer picks one from the clock
	Mute     bool  // Disable audio cues
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
