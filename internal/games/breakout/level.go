// Package breakout implements the breakout session: a single ball bouncing
// inside the window over a fixed grid of bricks.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Brick is a single brick in the grid.
type Brick struct {
	Rect      core.Rect
	Color     core.Color
	Destroyed bool // Once set, never cleared
}

// Destroy marks the brick destroyed. It reports whether the brick was live.
func (b *Brick) Destroy() bool {
	if b.Destroyed {
		return false
	}
	b.Destroyed = true
	return true
}

// GridSpec describes how bricks are laid out in the window.
type GridSpec struct {
	Rows, Cols       int
	WindowW, WindowH int
	BrickHeight      int
	Padding          int  // Gap between bricks, also subtracted from the brick width
	MarginX, MarginY int  // Offset of the first brick
	Wrap             bool // Wrap origins modulo the window size
}

// DefaultGridSpec returns the 8x14 layout for an 800x500 window.
func DefaultGridSpec() GridSpec {
	return GridSpec{
		Rows:        core.GridRows,
		Cols:        core.GridCols,
		WindowW:     core.WindowWidth,
		WindowH:     core.WindowHeight,
		BrickHeight: 10,
		Padding:     10,
		MarginX:     5,
		MarginY:     10,
		Wrap:        true,
	}
}

// BrickWidth returns the width shared by every brick.
func (s GridSpec) BrickWidth() int {
	return s.WindowW/s.Cols - s.Padding
}

// BrickRect returns the rectangle of brick (row, col).
//
// With Wrap set, the column/row offset is reduced modulo the window size
// before the margin is added. For the default constants it never triggers.
func (s GridSpec) BrickRect(row, col int) core.Rect {
	w := s.BrickWidth()
	h := s.BrickHeight

	offX := col * (w + s.Padding)
	offY := row * (h + s.Padding)
	if s.Wrap {
		offX %= s.WindowW
		offY %= s.WindowH
	}
	return core.NewRect(s.MarginX+offX, s.MarginY+offY, w, h)
}

// Grid is the fixed rows x cols brick field. It is never resized.
type Grid struct {
	Rows   int
	Cols   int
	Bricks [][]Brick // [row][col]
}

// NewGrid creates a grid with every brick live.
func NewGrid(spec GridSpec, color core.Color) *Grid {
	g := &Grid{
		Rows:   spec.Rows,
		Cols:   spec.Cols,
		Bricks: make([][]Brick, spec.Rows),
	}
	for row := range spec.Rows {
		g.Bricks[row] = make([]Brick, spec.Cols)
		for col := range spec.Cols {
			g.Bricks[row][col] = Brick{
				Rect:  spec.BrickRect(row, col),
				Color: color,
			}
		}
	}
	return g
}

// CountLive returns the number of bricks not yet destroyed.
func (g *Grid) CountLive() int {
	count := 0
	for _, row := range g.Bricks {
		for _, b := range row {
			if !b.Destroyed {
				count++
			}
		}
	}
	return count
}

// Total returns the number of bricks in the grid.
func (g *Grid) Total() int {
	return g.Rows * g.Cols
}
