package core

// RuntimeConfig contains configuration passed to the simulation at startup.
type RuntimeConfig struct {
	TickRate     int    // Raw simulation ticks per second (default 24)
	Seed         uint64 // PRNG seed; 0 means derive from the clock in the platform layer
	Lives        int    // Starting lives; 0 means the simulation default
	UpdatePeriod int    // Ticks per simulation step; 0 means the simulation default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:     24,
		Seed:         0,
		Lives:        0,
		UpdatePeriod: 0,
	}
}
