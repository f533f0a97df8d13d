package core

// Fixed window and grid dimensions. They are compile-time constants: the
// layout is not configurable.
const (
	WindowWidth  = 800
	WindowHeight = 500

	GridRows = 8
	GridCols = 14

	// DefaultTickIntervalMs is the default fixed simulation step in milliseconds.
	DefaultTickIntervalMs = 30

	WindowTitle = "Breakout"
)
