// Package config provides YAML-based configuration loading for the breakout
// game.
package config

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Bounds policies for wall reflection.
const (
	BoundsExact = "exact" // Reflect only when the ball sits exactly on a boundary
	BoundsClamp = "clamp" // Reflect and clamp whenever the ball reaches or passes a boundary
)

// BreakoutConfig contains all tunable settings for a session.
// Window size and grid shape are fixed constants in package core.
type BreakoutConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Loop    LoopConfig    `yaml:"loop"`
	Ball    BallConfig    `yaml:"ball"`
	Colors  ColorsConfig  `yaml:"colors"`
	Physics PhysicsConfig `yaml:"physics"`
	Layout  LayoutConfig  `yaml:"layout"`
}

// WindowConfig defines window presentation.
type WindowConfig struct {
	Title string `yaml:"title"`
}

// LoopConfig defines the fixed-timestep loop.
type LoopConfig struct {
	TickIntervalMs int `yaml:"tick_interval_ms"`
}

// BallConfig defines the ball's initial state.
type BallConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius int     `yaml:"radius"`
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
	Color  string  `yaml:"color"`
}

// ColorsConfig defines scene colors as "#rrggbb" strings.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Brick      string `yaml:"brick"`
}

// PhysicsConfig selects physics policies.
type PhysicsConfig struct {
	Bounds string `yaml:"bounds"` // "exact" or "clamp"
}

// LayoutConfig selects brick layout arithmetic.
type LayoutConfig struct {
	Wrap bool `yaml:"wrap"` // Wrap brick origins modulo the window size
}

// Validate reports the first invalid setting, if any.
func (c BreakoutConfig) Validate() error {
	if c.Loop.TickIntervalMs <= 0 {
		return fmt.Errorf("config: loop.tick_interval_ms must be positive, got %d", c.Loop.TickIntervalMs)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("config: ball.radius must be positive, got %d", c.Ball.Radius)
	}
	switch c.Physics.Bounds {
	case BoundsExact, BoundsClamp:
	default:
		return fmt.Errorf("config: unknown physics.bounds %q (want %q or %q)", c.Physics.Bounds, BoundsExact, BoundsClamp)
	}
	for name, hex := range map[string]string{
		"ball.color":        c.Ball.Color,
		"colors.background": c.Colors.Background,
		"colors.brick":      c.Colors.Brick,
	} {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}
	return nil
}

// BallColor returns the parsed ball color.
func (c BreakoutConfig) BallColor() core.Color {
	return mustColor(c.Ball.Color, core.ColorWhite)
}

// BackgroundColor returns the parsed background color.
func (c BreakoutConfig) BackgroundColor() core.Color {
	return mustColor(c.Colors.Background, core.ColorBlack)
}

// BrickColor returns the parsed brick color.
func (c BreakoutConfig) BrickColor() core.Color {
	return mustColor(c.Colors.Brick, core.ColorWhite)
}

// ErrEmptyColor is returned by ParseColor for an empty string.
var ErrEmptyColor = errors.New("empty color")

// ParseColor parses a "#rrggbb" or "#rgb" hex color into an opaque color.
func ParseColor(hex string) (core.Color, error) {
	if hex == "" {
		return core.Color{}, ErrEmptyColor
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}

func mustColor(hex string, fallback core.Color) core.Color {
	c, err := ParseColor(hex)
	if err != nil {
		return fallback
	}
	return c
}
