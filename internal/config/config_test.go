package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "breakout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30, cfg.Loop.TickIntervalMs)
	assert.Equal(t, 420.0, cfg.Ball.X)
	assert.Equal(t, 100.0, cfg.Ball.Y)
	assert.Equal(t, 10, cfg.Ball.Radius)
	assert.Equal(t, 1.0, cfg.Ball.SpeedX)
	assert.Equal(t, -1.0, cfg.Ball.SpeedY)
	assert.Equal(t, BoundsExact, cfg.Physics.Bounds)
	assert.True(t, cfg.Layout.Wrap)
	assert.Equal(t, core.ColorWhite, cfg.BallColor())
	assert.Equal(t, core.ColorBlack, cfg.BackgroundColor())
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadBreakout("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBreakoutConfig(), cfg)
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
loop:
  tick_interval_ms: 16
physics:
  bounds: clamp
`)

	cfg, err := LoadBreakout(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Loop.TickIntervalMs)
	assert.Equal(t, BoundsClamp, cfg.Physics.Bounds)
	// Untouched keys keep their defaults
	assert.Equal(t, 10, cfg.Ball.Radius)
	assert.Equal(t, "#ffffff", cfg.Colors.Brick)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadCustomPathInvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "loop: [unterminated")
	_, err := LoadBreakout(path)
	assert.Error(t, err)
}

func TestLoadLocalConfigsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	writeConfig(t, "configs", "ball:\n  color: \"#ff0000\"\n")

	cfg, err := LoadBreakout("")
	require.NoError(t, err)
	assert.Equal(t, core.RGB(255, 0, 0), cfg.BallColor())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero tick", func(c *BreakoutConfig) { c.Loop.TickIntervalMs = 0 }},
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }},
		{"negative radius", func(c *BreakoutConfig) { c.Ball.Radius = -3 }},
		{"unknown bounds", func(c *BreakoutConfig) { c.Physics.Bounds = "bouncy" }},
		{"bad ball color", func(c *BreakoutConfig) { c.Ball.Color = "white" }},
		{"empty background", func(c *BreakoutConfig) { c.Colors.Background = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, core.RGB(0x10, 0x20, 0x30), c)

	_, err = ParseColor("")
	assert.ErrorIs(t, err, ErrEmptyColor)

	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}
