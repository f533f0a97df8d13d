package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// The ball starts at (WIDTH/2 + 20, 100) moving up and to the right.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Window: WindowConfig{
			Title: core.WindowTitle,
		},
		Loop: LoopConfig{
			TickIntervalMs: core.DefaultTickIntervalMs,
		},
		Ball: BallConfig{
			X:      core.WindowWidth/2 + 20,
			Y:      100,
			Radius: 10,
			SpeedX: 1,
			SpeedY: -1,
			Color:  "#ffffff",
		},
		Colors: ColorsConfig{
			Background: "#000000",
			Brick:      "#ffffff",
		},
		Physics: PhysicsConfig{
			Bounds: BoundsExact,
		},
		Layout: LayoutConfig{
			Wrap: true,
		},
	}
}
