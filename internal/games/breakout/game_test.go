package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

// drawCall records one Canvas call.
type drawCall struct {
	kind  string
	rect  core.Rect
	x, y  int
	r     int
	color core.Color
}

// recordingCanvas captures the calls of the most recent frame.
type recordingCanvas struct {
	frame  []drawCall
	frames int
}

func (c *recordingCanvas) Clear(bg core.Color) {
	c.frame = append(c.frame[:0], drawCall{kind: "clear", color: bg})
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) {
	c.frame = append(c.frame, drawCall{kind: "rect", rect: r, color: col})
}

func (c *recordingCanvas) FillCircle(x, y, r int, col core.Color) {
	c.frame = append(c.frame, drawCall{kind: "circle", x: x, y: y, r: r, color: col})
}

func (c *recordingCanvas) Present() {
	c.frame = append(c.frame, drawCall{kind: "present"})
	c.frames++
}

// scriptedEvents returns one batch of events per poll.
type scriptedEvents struct {
	batches [][]core.Event
	polls   int
}

func (s *scriptedEvents) PollEvents() []core.Event {
	defer func() { s.polls++ }()
	if s.polls >= len(s.batches) {
		return nil
	}
	return s.batches[s.polls]
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.DefaultBreakoutConfig(), logging.Discard())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Ball.Radius = 0
	if _, err := New(cfg, nil); err == nil {
		t.Error("New() should reject a zero radius")
	}

	cfg = config.DefaultBreakoutConfig()
	cfg.Physics.Bounds = "sideways"
	if _, err := New(cfg, nil); err == nil {
		t.Error("New() should reject an unknown bounds policy")
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t)

	ball := g.Ball()
	if ball.X != 420 || ball.Y != 100 || ball.Radius != 10 || ball.SpeedX != 1 || ball.SpeedY != -1 {
		t.Errorf("unexpected initial ball %+v", ball)
	}
	if !g.Running() {
		t.Error("new game should be running")
	}
	if g.Grid().CountLive() != 112 {
		t.Errorf("expected 112 live bricks, got %d", g.Grid().CountLive())
	}
}

func TestFirstStepHitsBrick(t *testing.T) {
	g := newTestGame(t)
	canvas := &recordingCanvas{}

	g.Step(&scriptedEvents{}, canvas)

	// Ball moves to (421, 99); its box [411,431]x[89,109] overlaps brick
	// (4, 7) at (404, 90, 47, 10), closest to the bottom edge.
	if !g.Grid().Bricks[4][7].Destroyed {
		t.Error("brick (4, 7) should be destroyed on the first tick")
	}
	if g.Destroyed() != 1 {
		t.Errorf("Destroyed() = %d, expected 1", g.Destroyed())
	}
	ball := g.Ball()
	if ball.SpeedY != 1 || ball.SpeedX != 1 {
		t.Errorf("after hit v = (%v, %v), expected (1, 1)", ball.SpeedX, ball.SpeedY)
	}
}

func TestRenderOrder(t *testing.T) {
	g := newTestGame(t)
	canvas := &recordingCanvas{}

	g.Step(&scriptedEvents{}, canvas)

	frame := canvas.frame
	if len(frame) != 1+1+111+1 {
		t.Fatalf("expected clear, circle, 111 rects, present; got %d calls", len(frame))
	}
	if frame[0].kind != "clear" || frame[0].color != core.ColorBlack {
		t.Errorf("first call should clear to black, got %+v", frame[0])
	}
	circle := frame[1]
	if circle.kind != "circle" || circle.x != 421 || circle.y != 99 || circle.r != 10 {
		t.Errorf("second call should draw the ball at (421, 99), got %+v", circle)
	}
	for _, call := range frame[2 : len(frame)-1] {
		if call.kind != "rect" {
			t.Fatalf("expected brick rects after the ball, got %q", call.kind)
		}
		if call.rect == g.Grid().Bricks[4][7].Rect {
			t.Error("destroyed brick should not be drawn")
		}
	}
	if frame[len(frame)-1].kind != "present" {
		t.Error("last call should present the frame")
	}
}

func TestQuitEvents(t *testing.T) {
	tests := []struct {
		name    string
		events  []core.Event
		running bool
	}{
		{"no events", nil, true},
		{"escape pressed", []core.Event{core.KeyDownEvent(core.KeyEscape)}, false},
		{"window closed", []core.Event{core.QuitEvent()}, false},
		{"escape released", []core.Event{core.KeyUpEvent(core.KeyEscape)}, true},
		{"other key", []core.Event{core.KeyDownEvent(core.KeySpace), core.KeyDownEvent(core.KeyOther)}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.Step(&scriptedEvents{batches: [][]core.Event{tc.events}}, &recordingCanvas{})
			if g.Running() != tc.running {
				t.Errorf("Running() = %v, expected %v", g.Running(), tc.running)
			}
		})
	}
}

func TestTickStillRendersOnQuit(t *testing.T) {
	g := newTestGame(t)
	canvas := &recordingCanvas{}
	g.Step(&scriptedEvents{batches: [][]core.Event{{core.QuitEvent()}}}, canvas)

	if canvas.frames != 1 {
		t.Errorf("the quitting tick should still present a frame, got %d", canvas.frames)
	}
	if g.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", g.Ticks())
	}
}

func TestDestructionMonotonic(t *testing.T) {
	g := newTestGame(t)
	canvas := &recordingCanvas{}
	events := &scriptedEvents{}

	destroyed := make(map[core.Rect]bool)
	for tick := range 3000 {
		g.Step(events, canvas)

		for row := range g.Grid().Rows {
			for col := range g.Grid().Cols {
				b := g.Grid().Bricks[row][col]
				if destroyed[b.Rect] && !b.Destroyed {
					t.Fatalf("tick %d: brick (%d, %d) came back", tick, row, col)
				}
				if b.Destroyed {
					destroyed[b.Rect] = true
				}
			}
		}

		for _, call := range canvas.frame {
			if call.kind == "rect" && destroyed[call.rect] {
				t.Fatalf("tick %d: destroyed brick %+v drawn", tick, call.rect)
			}
		}
	}

	if g.Destroyed() != len(destroyed) {
		t.Errorf("Destroyed() = %d, but %d distinct bricks are destroyed", g.Destroyed(), len(destroyed))
	}
	if g.Grid().CountLive()+g.Destroyed() != g.Grid().Total() {
		t.Errorf("live %d + destroyed %d != total %d", g.Grid().CountLive(), g.Destroyed(), g.Grid().Total())
	}
}

func TestAtMostOneHitPerTick(t *testing.T) {
	g := newTestGame(t)
	canvas := &recordingCanvas{}

	for range 500 {
		before := g.Destroyed()
		g.Step(&scriptedEvents{}, canvas)
		if d := g.Destroyed() - before; d > 1 {
			t.Fatalf("destroyed %d bricks in one tick", d)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t)
		canvas := &recordingCanvas{}
		for range 1000 {
			g.Step(&scriptedEvents{}, canvas)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != 1000 {
		t.Errorf("Tick = %d, expected 1000", snap1.Tick)
	}
	if snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Error("Determinism failed: ball positions differ")
	}
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot()
	g.Step(&scriptedEvents{}, &recordingCanvas{})
	after := g.Snapshot()

	if before.Hash() == after.Hash() {
		t.Error("hash should change after a tick")
	}
	if after.BrickData[4*g.Grid().Cols+7] != 1 {
		t.Error("snapshot should mark brick (4, 7) destroyed")
	}
}

func TestStop(t *testing.T) {
	g := newTestGame(t)
	g.Stop()
	if g.Running() {
		t.Error("Stop should clear the running flag")
	}
}

func TestStepBounceOffTopThroughSession(t *testing.T) {
	// no bricks, so only the walls act on the ball
	spec := DefaultGridSpec()
	spec.Rows = 0
	g, err := NewWithSpec(config.DefaultBreakoutConfig(), spec, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	canvas := &recordingCanvas{}
	events := &scriptedEvents{}

	for tick := 1; tick <= 90; tick++ {
		g.Step(events, canvas)
		if tick < 90 && g.Ball().SpeedY != -1 {
			t.Fatalf("tick %d: SpeedY flipped early at y=%v", tick, g.Ball().Y)
		}
	}

	ball := g.Ball()
	if ball.X != 510 || ball.Y != 10 {
		t.Errorf("tick 90: ball at (%v, %v), expected (510, 10)", ball.X, ball.Y)
	}
	if ball.SpeedY != 1 || ball.SpeedX != 1 {
		t.Errorf("tick 90: speed = (%v, %v), expected (1, 1)", ball.SpeedX, ball.SpeedY)
	}
	if canvas.frames != 90 {
		t.Errorf("presented %d frames, expected 90", canvas.frames)
	}
	// frame holds clear, circle, present; the circle is drawn after the bounce
	if len(canvas.frame) != 3 || canvas.frame[1].y != 10 {
		t.Errorf("last frame = %+v", canvas.frame)
	}
}

func TestStringSummarizesSession(t *testing.T) {
	g := newTestGame(t)
	g.Step(&scriptedEvents{}, &recordingCanvas{})

	got := g.String()
	expected := "tick=1 ball=(421.0,99.0) v=(1.0,1.0) live=111/112"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
