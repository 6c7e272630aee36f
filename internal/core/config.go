package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game on Reset: the drawable
// area, the simulation rate and the seed for its random source.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 asks the platform to pick one
}

// DefaultConfig returns an 80x24 screen at DefaultTickRate with no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// WithDefaults fills a missing tick rate and clamps negative dimensions.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	c.ScreenW = max(c.ScreenW, 0)
	c.ScreenH = max(c.ScreenH, 0)
	return c
}

// GameState is the status a game reports to the platform.
type GameState struct {
	GameOver bool
	Paused   bool
}

// String names the state for logs and debug output.
func (s GameState) String() string {
	switch {
	case s.GameOver:
		return "game over"
	case s.Paused:
		return "paused"
	default:
		return "running"
	}
}

// StepResult is what Step returns after each tick.
type StepResult struct {
	State GameState
}
