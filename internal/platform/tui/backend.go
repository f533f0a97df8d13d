package tui

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/platform"
	"github.com/vovakirdan/tui-breakout/internal/platform/raster"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// ErrNoTerminal is returned by Init when stdout is not a terminal.
var ErrNoTerminal = errors.New("tui: stdout is not a terminal")

// eventBuffer bounds the keys queued between two ticks.
const eventBuffer = 64

func init() {
	registry.Register("tui", func(opts registry.Options) registry.Backend {
		return NewBackend(opts)
	})
}

// Backend draws into an off-screen framebuffer and shows it in the terminal
// with half-block cells, two pixel rows per cell.
type Backend struct {
	logger   *logging.Logger
	keys     KeyMap
	clock    *platform.SystemClock
	canvas   *raster.Canvas
	screen   *core.Screen
	renderer *Renderer

	program *tea.Program
	events  chan core.Event
	closed  atomic.Bool
	done    chan struct{}
	runErr  error

	mu   sync.Mutex
	cols int
	rows int
}

// NewBackend creates an uninitialized terminal backend.
func NewBackend(opts registry.Options) *Backend {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Backend{
		logger:   logger,
		keys:     DefaultKeyMap(),
		clock:    platform.NewSystemClock(),
		renderer: NewRenderer(),
		events:   make(chan core.Event, eventBuffer),
	}
}

// Name returns the command-line identifier.
func (b *Backend) Name() string { return "tui" }

// Description returns a short summary.
func (b *Backend) Description() string {
	return "Terminal renderer using half-block cells (esc quits)"
}

// Init checks the terminal, sizes the cell grid and starts the program.
func (b *Backend) Init(width, height int, title string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return ErrNoTerminal
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("tui: terminal size: %w", err)
	}

	b.canvas = raster.NewCanvas(width, height)
	b.screen = core.NewScreen(cols, rows)
	b.setSize(cols, rows)

	model := NewModel(title, b.keys, b.events, b.setSize)
	b.program = tea.NewProgram(model, tea.WithAltScreen())
	b.done = make(chan struct{})

	go func() {
		defer close(b.done)
		_, b.runErr = b.program.Run()
		// the terminal went away; whatever ended the program ends the session
		b.closed.Store(true)
	}()

	b.logger.Debug("terminal ready", "cols", cols, "rows", rows)
	return nil
}

func (b *Backend) setSize(cols, rows int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cols, b.rows = cols, rows
}

func (b *Backend) size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cols, b.rows
}

// PollEvents drains the keys collected since the last tick.
func (b *Backend) PollEvents() []core.Event {
	var evs []core.Event
	for {
		select {
		case ev := <-b.events:
			evs = append(evs, ev)
		default:
			if b.closed.Load() {
				evs = append(evs, core.QuitEvent())
			}
			return evs
		}
	}
}

// Clear fills the framebuffer.
func (b *Backend) Clear(bg core.Color) { b.canvas.Clear(bg) }

// FillRect draws a filled rectangle.
func (b *Backend) FillRect(r core.Rect, c core.Color) { b.canvas.FillRect(r, c) }

// FillCircle draws a filled disk.
func (b *Backend) FillCircle(x, y, radius int, c core.Color) {
	b.canvas.FillCircle(x, y, radius, c)
}

// Present downsamples the framebuffer and hands the frame to the program.
func (b *Backend) Present() {
	b.canvas.Present()

	cols, rows := b.size()
	if cols != b.screen.Width() || rows != b.screen.Height() {
		b.screen.Resize(cols, rows)
	}
	Downsample(b.canvas, b.screen)

	if b.closed.Load() {
		return
	}
	b.program.Send(frameMsg(b.renderer.Render(b.screen)))
}

// NowMillis returns wall-clock milliseconds since the backend was created.
func (b *Backend) NowMillis() int64 { return b.clock.NowMillis() }

// SleepMillis blocks for ms milliseconds.
func (b *Backend) SleepMillis(ms int64) { b.clock.SleepMillis(ms) }

// Shutdown stops the program and restores the terminal.
func (b *Backend) Shutdown() error {
	if b.program == nil {
		return nil
	}
	b.program.Quit()
	<-b.done
	if b.runErr != nil && !errors.Is(b.runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", b.runErr)
	}
	return nil
}
