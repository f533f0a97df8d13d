//go:build sdl2

package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func init() {
	// SDL must be driven from the thread that initialized it.
	runtime.LockOSThread()

	registry.Register(name, func(opts registry.Options) registry.Backend {
		return New(opts)
	})
}

// Backend owns the SDL window and renderer.
type Backend struct {
	logger   *logging.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	points   []sdl.Point
}

// New creates an uninitialized SDL backend.
func New(opts registry.Options) *Backend {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Backend{logger: logger}
}

// Name returns the command-line identifier.
func (b *Backend) Name() string { return name }

// Description returns a short summary.
func (b *Backend) Description() string { return description }

// Init opens a centered window of the given size with a vsynced renderer.
func (b *Backend) Init(width, height int, title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("window: sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(width), int32(height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("window: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("window: create renderer: %w", err)
	}

	b.window = window
	b.renderer = renderer
	b.logger.Debug("window ready", "width", width, "height", height)
	return nil
}

// PollEvents drains the SDL event queue.
func (b *Backend) PollEvents() []core.Event {
	var evs []core.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			evs = append(evs, core.QuitEvent())
		case *sdl.KeyboardEvent:
			k := keyFor(e.Keysym.Sym)
			if e.Type == sdl.KEYDOWN {
				evs = append(evs, core.KeyDownEvent(k))
			} else {
				evs = append(evs, core.KeyUpEvent(k))
			}
		}
	}
	return evs
}

func keyFor(sym sdl.Keycode) core.Key {
	switch sym {
	case sdl.K_ESCAPE:
		return core.KeyEscape
	case sdl.K_SPACE:
		return core.KeySpace
	}
	return core.KeyOther
}

func (b *Backend) setColor(c core.Color) {
	//nolint:errcheck // a failed color change only affects this primitive
	b.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// Clear fills the whole window with bg.
func (b *Backend) Clear(bg core.Color) {
	b.setColor(bg)
	if err := b.renderer.Clear(); err != nil {
		b.logger.Error("clear failed", "err", err)
	}
}

// FillRect draws a filled rectangle.
func (b *Backend) FillRect(r core.Rect, c core.Color) {
	b.setColor(c)
	rect := sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
	if err := b.renderer.FillRect(&rect); err != nil {
		b.logger.Error("fill rect failed", "err", err)
	}
}

// FillCircle draws a filled disk as one batch of points.
func (b *Backend) FillCircle(x, y, radius int, c core.Color) {
	b.points = b.points[:0]
	core.RasterizeDisk(x, y, radius, func(px, py int) {
		b.points = append(b.points, sdl.Point{X: int32(px), Y: int32(py)})
	})
	if len(b.points) == 0 {
		return
	}
	b.setColor(c)
	if err := b.renderer.DrawPoints(b.points); err != nil {
		b.logger.Error("draw circle failed", "err", err)
	}
}

// Present shows the frame.
func (b *Backend) Present() {
	b.renderer.Present()
}

// NowMillis returns milliseconds since SDL was initialized.
func (b *Backend) NowMillis() int64 {
	return int64(sdl.GetTicks64())
}

// SleepMillis blocks for ms milliseconds.
func (b *Backend) SleepMillis(ms int64) {
	if ms > 0 {
		sdl.Delay(uint32(ms))
	}
}

// Shutdown destroys the renderer and window and quits SDL.
func (b *Backend) Shutdown() error {
	if b.renderer != nil {
		if err := b.renderer.Destroy(); err != nil {
			b.logger.Error("destroy renderer", "err", err)
		}
		b.renderer = nil
	}
	if b.window != nil {
		if err := b.window.Destroy(); err != nil {
			b.logger.Error("destroy window", "err", err)
		}
		b.window = nil
	}
	sdl.Quit()
	return nil
}
