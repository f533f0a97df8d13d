package breakout

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestDefaultGridLayout(t *testing.T) {
	spec := DefaultGridSpec()
	grid := NewGrid(spec, core.ColorWhite)

	if grid.Rows != 8 || grid.Cols != 14 {
		t.Fatalf("grid should be 8x14, got %dx%d", grid.Rows, grid.Cols)
	}
	if spec.BrickWidth() != 47 {
		t.Errorf("BrickWidth() = %d, expected 47", spec.BrickWidth())
	}

	tests := []struct {
		row, col int
		expected core.Rect
	}{
		{0, 0, core.NewRect(5, 10, 47, 10)},
		{0, 1, core.NewRect(62, 10, 47, 10)},
		{0, 13, core.NewRect(746, 10, 47, 10)},
		{1, 0, core.NewRect(5, 30, 47, 10)},
		{7, 13, core.NewRect(746, 150, 47, 10)},
	}

	for _, tc := range tests {
		got := grid.Bricks[tc.row][tc.col].Rect
		if got != tc.expected {
			t.Errorf("brick (%d, %d) = %+v, expected %+v", tc.row, tc.col, got, tc.expected)
		}
	}

	for row := range grid.Rows {
		for col := range grid.Cols {
			if grid.Bricks[row][col].Destroyed {
				t.Errorf("brick (%d, %d) should start live", row, col)
			}
		}
	}
	if grid.CountLive() != 112 || grid.Total() != 112 {
		t.Errorf("expected 112 live bricks, got %d of %d", grid.CountLive(), grid.Total())
	}
}

func TestGridInitDeterministic(t *testing.T) {
	a := NewGrid(DefaultGridSpec(), core.ColorWhite)
	b := NewGrid(DefaultGridSpec(), core.ColorWhite)

	if !reflect.DeepEqual(a, b) {
		t.Error("two grid inits with the same spec should produce identical layouts")
	}
}

func TestWrapMatchesGridForDefaults(t *testing.T) {
	wrapped := DefaultGridSpec()
	plain := DefaultGridSpec()
	plain.Wrap = false

	for row := range wrapped.Rows {
		for col := range wrapped.Cols {
			if wrapped.BrickRect(row, col) != plain.BrickRect(row, col) {
				t.Errorf("brick (%d, %d) differs between wrap and grid layout", row, col)
			}
		}
	}
}

func TestWrapTriggersOnWideGrids(t *testing.T) {
	spec := DefaultGridSpec()
	spec.WindowW = 100
	spec.Cols = 2 // brick width 40, stride 50

	// Column 2 of a 2-column grid does not exist in a real grid, but the
	// arithmetic shows where the modulo kicks in: 2*50 = 100 wraps to 0.
	spec.Wrap = true
	if got := spec.BrickRect(0, 2).X; got != 5 {
		t.Errorf("wrapped X = %d, expected 5", got)
	}
	spec.Wrap = false
	if got := spec.BrickRect(0, 2).X; got != 105 {
		t.Errorf("unwrapped X = %d, expected 105", got)
	}
}

func TestBrickDestroyIsOneWay(t *testing.T) {
	b := Brick{}
	if !b.Destroy() {
		t.Error("first Destroy should report a live brick")
	}
	if b.Destroy() {
		t.Error("second Destroy should report an already destroyed brick")
	}
	if !b.Destroyed {
		t.Error("brick should remain destroyed")
	}
}
