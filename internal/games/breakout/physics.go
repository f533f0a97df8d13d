package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrInvalidRadius is returned by NewBall for a non-positive radius.
var ErrInvalidRadius = errors.New("breakout: ball radius must be positive")

// Ball is the single ball of a session. X, Y is its center.
type Ball struct {
	X, Y           float64
	Radius         int // Fixed for the ball's lifetime
	SpeedX, SpeedY float64
	Color          core.Color
}

// NewBall creates a ball, rejecting radius <= 0.
func NewBall(x, y float64, radius int, speedX, speedY float64, color core.Color) (Ball, error) {
	if radius <= 0 {
		return Ball{}, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	return Ball{X: x, Y: y, Radius: radius, SpeedX: speedX, SpeedY: speedY, Color: color}, nil
}

// Move advances the ball by one tick of velocity.
func (b *Ball) Move() {
	b.X += b.SpeedX
	b.Y += b.SpeedY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.SpeedX = -b.SpeedX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.SpeedY = -b.SpeedY
}

// Bounds returns the ball's bounding box [x-r, x+r] x [y-r, y+r].
func (b *Ball) Bounds() core.RectF {
	r := float64(b.Radius)
	return core.RectF{X: b.X - r, Y: b.Y - r, W: 2 * r, H: 2 * r}
}

// BoundsPolicy selects how wall reflection is detected.
type BoundsPolicy int

const (
	// BoundsExact reflects only when the center lies exactly on a boundary
	// (radius or size-radius). A step that skips over the exact value lets
	// the ball leave the window.
	BoundsExact BoundsPolicy = iota
	// BoundsClamp reflects whenever the center reaches or passes a boundary,
	// clamping it back onto the boundary and pointing velocity inward.
	BoundsClamp
)

// String returns the policy name used in configuration.
func (p BoundsPolicy) String() string {
	switch p {
	case BoundsExact:
		return "exact"
	case BoundsClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// ParseBoundsPolicy converts a configuration name into a policy.
func ParseBoundsPolicy(name string) (BoundsPolicy, error) {
	switch name {
	case "exact":
		return BoundsExact, nil
	case "clamp":
		return BoundsClamp, nil
	default:
		return BoundsExact, fmt.Errorf("breakout: unknown bounds policy %q", name)
	}
}

// ReflectWalls applies wall reflection to the ball for a width x height
// window. It reports which velocity components were flipped.
func ReflectWalls(ball *Ball, width, height int, policy BoundsPolicy) (flippedX, flippedY bool) {
	r := float64(ball.Radius)
	minX, maxX := r, float64(width)-r
	minY, maxY := r, float64(height)-r

	if policy == BoundsClamp {
		flippedX = clampAxis(&ball.X, &ball.SpeedX, minX, maxX)
		flippedY = clampAxis(&ball.Y, &ball.SpeedY, minY, maxY)
		return flippedX, flippedY
	}

	if ball.X == maxX || ball.X == minX {
		ball.BounceX()
		flippedX = true
	}
	if ball.Y == maxY || ball.Y == minY {
		ball.BounceY()
		flippedY = true
	}
	return flippedX, flippedY
}

// clampAxis keeps pos within [lo, hi], pointing speed inward on contact.
func clampAxis(pos, speed *float64, lo, hi float64) bool {
	switch {
	case *pos <= lo:
		*pos = lo
		*speed = core.Abs(*speed)
		return true
	case *pos >= hi:
		*pos = hi
		*speed = -core.Abs(*speed)
		return true
	}
	return false
}

// Overlaps reports whether the brick rectangle and the ball's bounding box
// overlap (closed intervals). It has no side effects.
func Overlaps(brick core.Rect, ball Ball) bool {
	return brick.ToF().Overlaps(ball.Bounds())
}

// Axis names the velocity component to reflect after a brick hit.
type Axis int

const (
	AxisY Axis = iota
	AxisX
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// ReflectionAxis picks the velocity axis to flip for a hit on rect.
// If the ball's center is at least as close to the top/bottom edge as to the
// left/right edge, SpeedY flips; otherwise SpeedX flips. Exact corner ties
// resolve to AxisY.
func ReflectionAxis(rect core.Rect, ball Ball) Axis {
	f := rect.ToF()
	vert := min(core.Abs(ball.Y-f.Y), core.Abs(ball.Y-f.Bottom()))
	horiz := min(core.Abs(ball.X-f.X), core.Abs(ball.X-f.Right()))
	if vert <= horiz {
		return AxisY
	}
	return AxisX
}

// Hit identifies a brick struck by the ball.
type Hit struct {
	Row, Col int
}

// FindHit scans live bricks in row-major order and returns the first one the
// ball overlaps. At most one hit is reported per call.
func FindHit(grid *Grid, ball Ball) (Hit, bool) {
	for row := range grid.Rows {
		for col := range grid.Cols {
			brick := &grid.Bricks[row][col]
			if brick.Destroyed {
				continue
			}
			if Overlaps(brick.Rect, ball) {
				return Hit{Row: row, Col: col}, true
			}
		}
	}
	return Hit{}, false
}

// ApplyHit destroys the hit brick and reflects the ball along the axis chosen
// by ReflectionAxis. It returns that axis.
func ApplyHit(grid *Grid, ball *Ball, hit Hit) Axis {
	brick := &grid.Bricks[hit.Row][hit.Col]
	axis := ReflectionAxis(brick.Rect, *ball)
	brick.Destroy()

	switch axis {
	case AxisX:
		ball.BounceX()
	default:
		ball.BounceY()
	}
	return axis
}
