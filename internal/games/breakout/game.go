package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

// Game is the session state: one ball, one brick grid and the running flag.
// It is owned by a single loop goroutine.
type Game struct {
	ball       Ball
	grid       *Grid
	spec       GridSpec
	bounds     BoundsPolicy
	background core.Color

	running   bool
	tickCount uint64
	destroyed int

	logger *logging.Logger
}

// New creates a session from cfg using the fixed window and grid size.
func New(cfg config.BreakoutConfig, logger *logging.Logger) (*Game, error) {
	spec := DefaultGridSpec()
	spec.Wrap = cfg.Layout.Wrap
	return NewWithSpec(cfg, spec, logger)
}

// NewWithSpec creates a session with an explicit grid layout.
func NewWithSpec(cfg config.BreakoutConfig, spec GridSpec, logger *logging.Logger) (*Game, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bounds, err := ParseBoundsPolicy(cfg.Physics.Bounds)
	if err != nil {
		return nil, err
	}

	ball, err := NewBall(cfg.Ball.X, cfg.Ball.Y, cfg.Ball.Radius, cfg.Ball.SpeedX, cfg.Ball.SpeedY, cfg.BallColor())
	if err != nil {
		return nil, err
	}

	logger.Log(logging.KindInfo, "Initializing bricks", "rows", spec.Rows, "cols", spec.Cols, "wrap", spec.Wrap)

	return &Game{
		ball:       ball,
		grid:       NewGrid(spec, cfg.BrickColor()),
		spec:       spec,
		bounds:     bounds,
		background: cfg.BackgroundColor(),
		running:    true,
		logger:     logger,
	}, nil
}

// Step advances the session by one tick: move the ball, drain input, reflect
// off the walls, resolve at most one brick hit, then draw the frame.
func (g *Game) Step(src core.EventSource, dst core.Canvas) {
	g.tickCount++

	g.ball.Move()

	for _, ev := range src.PollEvents() {
		if ev.RequestsQuit() {
			g.logger.Debug("quit requested", "event", ev.Type.String(), "key", ev.Key.String())
			g.running = false
		}
	}

	flippedX, flippedY := ReflectWalls(&g.ball, g.spec.WindowW, g.spec.WindowH, g.bounds)
	if flippedX || flippedY {
		g.logger.Debug("wall bounce", "tick", g.tickCount, "x", flippedX, "y", flippedY)
	}

	if hit, ok := FindHit(g.grid, g.ball); ok {
		axis := ApplyHit(g.grid, &g.ball, hit)
		g.destroyed++
		g.logger.Debug("brick destroyed", "row", hit.Row, "col", hit.Col, "axis", axis.String())
	}

	g.Render(dst)
}

// Render clears the frame, draws the ball and then every live brick, and
// presents the frame.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(g.background)
	dst.FillCircle(int(g.ball.X), int(g.ball.Y), g.ball.Radius, g.ball.Color)
	for row := range g.grid.Rows {
		for col := range g.grid.Cols {
			brick := g.grid.Bricks[row][col]
			if brick.Destroyed {
				continue
			}
			dst.FillRect(brick.Rect, brick.Color)
		}
	}
	dst.Present()
}

// Running reports whether the session should keep ticking.
func (g *Game) Running() bool {
	return g.running
}

// Stop clears the running flag.
func (g *Game) Stop() {
	g.running = false
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Grid returns the brick grid.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Ticks returns the number of steps taken.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}

// Destroyed returns the number of bricks destroyed so far.
func (g *Game) Destroyed() int {
	return g.destroyed
}

// String summarizes the session for logs.
func (g *Game) String() string {
	return fmt.Sprintf("tick=%d ball=(%.1f,%.1f) v=(%.1f,%.1f) live=%d/%d",
		g.tickCount, g.ball.X, g.ball.Y, g.ball.SpeedX, g.ball.SpeedY, g.grid.CountLive(), g.grid.Total())
}
