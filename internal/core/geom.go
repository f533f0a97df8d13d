// Package core provides fundamental types for the breakout game: colors,
// geometry, input events and the drawing/event interfaces backends implement.
// It has no external dependencies so game logic stays pure and testable.
package core

// Rect is an integer axis-aligned rectangle (used for bricks).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ToF converts the rectangle to floating-point coordinates.
func (r Rect) ToF() RectF {
	return RectF{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// RectF is a floating-point axis-aligned bounding box.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two boxes overlap. Intervals are closed, so boxes
// that only touch along an edge or a corner count as overlapping.
func (r RectF) Overlaps(other RectF) bool {
	if r.Bottom() < other.Y || r.Y > other.Bottom() {
		return false
	}
	if r.Right() < other.X || r.X > other.Right() {
		return false
	}
	return true
}

// RasterizeDisk calls plot for every integer point (x, y) inside the square
// [cx-r, cx+r]² with (x-cx)² + (y-cy)² <= r². Each point is visited once.
func RasterizeDisk(cx, cy, r int, plot func(x, y int)) {
	if r < 0 {
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				plot(cx+dx, cy+dy)
			}
		}
	}
}

// Abs returns the absolute value of a float64.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
