package raster

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// ErrNotInitialized is returned when the backend is used before Init.
var ErrNotInitialized = errors.New("raster: backend not initialized")

func init() {
	registry.Register("headless", func(opts registry.Options) registry.Backend {
		return NewHeadless(opts)
	})
}

// clock is the time source of a headless session.
type clock interface {
	NowMillis() int64
	SleepMillis(ms int64)
}

// Headless renders into an off-screen framebuffer. With Frames set, a game
// loop on it presents exactly that many frames before quitting. It can dump
// the last frame as PNG.
type Headless struct {
	opts    registry.Options
	canvas  *Canvas
	clock   clock
	pending []core.Event
	quitSet bool
	logger  *logging.Logger
}

// NewHeadless creates an uninitialized headless backend.
func NewHeadless(opts registry.Options) *Headless {
	var c clock = &platform.VirtualClock{}
	if opts.Realtime {
		c = platform.NewSystemClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Headless{opts: opts, clock: c, logger: logger}
}

// Name returns the command-line identifier.
func (h *Headless) Name() string { return "headless" }

// Description returns a short summary.
func (h *Headless) Description() string {
	return "Off-screen RGBA framebuffer, virtual clock, optional PNG of the last frame"
}

// Init allocates the framebuffer.
func (h *Headless) Init(width, height int, title string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid surface size %dx%d", width, height)
	}
	h.canvas = NewCanvas(width, height)
	h.logger.Debug("headless surface ready", "width", width, "height", height, "title", title)
	return nil
}

// Canvas returns the framebuffer, or nil before Init.
func (h *Headless) Canvas() *Canvas { return h.canvas }

// Inject queues an event for the next PollEvents call.
func (h *Headless) Inject(ev core.Event) {
	h.pending = append(h.pending, ev)
}

// PollEvents drains queued events. Once all but one frame of the budget has
// been presented it adds a single Quit, so the tick that reads it draws the
// last frame.
func (h *Headless) PollEvents() []core.Event {
	if h.opts.Frames > 0 && !h.quitSet && h.canvas != nil && h.canvas.Frames() >= h.opts.Frames-1 {
		h.quitSet = true
		h.Inject(core.QuitEvent())
	}
	evs := h.pending
	h.pending = nil
	return evs
}

// Clear fills the framebuffer.
func (h *Headless) Clear(bg core.Color) { h.canvas.Clear(bg) }

// FillRect draws a filled rectangle.
func (h *Headless) FillRect(r core.Rect, c core.Color) { h.canvas.FillRect(r, c) }

// FillCircle draws a filled disk.
func (h *Headless) FillCircle(x, y, radius int, c core.Color) {
	h.canvas.FillCircle(x, y, radius, c)
}

// Present finishes a frame.
func (h *Headless) Present() {
	h.canvas.Present()
}

// NowMillis returns the session clock.
func (h *Headless) NowMillis() int64 { return h.clock.NowMillis() }

// SleepMillis advances the session clock.
func (h *Headless) SleepMillis(ms int64) { h.clock.SleepMillis(ms) }

// Shutdown writes the PNG if one was requested.
func (h *Headless) Shutdown() error {
	if h.opts.PNGPath == "" {
		return nil
	}
	if h.canvas == nil {
		return ErrNotInitialized
	}
	if err := WritePNG(h.canvas, h.opts.PNGPath); err != nil {
		return err
	}
	h.logger.Info("wrote frame", "path", h.opts.PNGPath, "frames", h.canvas.Frames())
	return nil
}

// WritePNG encodes the framebuffer to path, creating parent directories.
func WritePNG(c *Canvas, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("raster: create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create png: %w", err)
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return f.Close()
}
