package breakout

import "math"

// Snapshot contains the complete session state for determinism checks and
// the run journal. Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick      uint64
	BallX     float64
	BallY     float64
	SpeedX    float64
	SpeedY    float64
	Running   bool
	Destroyed int

	// Brick states, flattened row*cols + col; 1 = destroyed
	BrickData []int
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, g.grid.Rows*g.grid.Cols)
	for row := range g.grid.Rows {
		for col := range g.grid.Cols {
			if g.grid.Bricks[row][col].Destroyed {
				brickData[row*g.grid.Cols+col] = 1
			}
		}
	}

	return Snapshot{
		Tick:      g.tickCount,
		BallX:     g.ball.X,
		BallY:     g.ball.Y,
		SpeedX:    g.ball.SpeedX,
		SpeedY:    g.ball.SpeedY,
		Running:   g.running,
		Destroyed: g.destroyed,
		BrickData: brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.SpeedX)
	h = h*31 + math.Float64bits(snap.SpeedY)
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation
	if snap.Running {
		h = h*31 + 1
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
