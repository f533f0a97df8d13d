// Package loop drives a simulation at a fixed tick rate.
//
// Ticks are paced against an absolute deadline that advances by exactly one
// interval per tick. A tick that overruns its deadline does not block, and
// the deadline is never resynchronized to the wall clock, so lag accumulates
// instead of being skipped.
package loop

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

// Clock is a monotonic millisecond clock with a blocking sleep.
type Clock interface {
	NowMillis() int64
	SleepMillis(ms int64)
}

// Backend is everything the driver hands to a simulation step.
type Backend interface {
	Clock
	core.EventSource
	core.Canvas
}

// Simulation is advanced once per tick until it stops running.
type Simulation interface {
	Step(src core.EventSource, dst core.Canvas)
	Running() bool
}

// Pacer tracks the deadline of the next tick.
type Pacer struct {
	interval int64
	next     int64
}

// NewPacer creates a pacer whose first deadline is now + interval.
func NewPacer(now, interval int64) *Pacer {
	return &Pacer{interval: interval, next: now + interval}
}

// TimeLeft returns the milliseconds until the next deadline, or 0 if it has
// already passed. It is never negative.
func (p *Pacer) TimeLeft(now int64) int64 {
	if p.next <= now {
		return 0
	}
	return p.next - now
}

// Advance moves the deadline forward by one interval.
func (p *Pacer) Advance() {
	p.next += p.interval
}

// NextDeadline returns the absolute time of the next deadline.
func (p *Pacer) NextDeadline() int64 {
	return p.next
}

// Interval returns the tick interval.
func (p *Pacer) Interval() int64 {
	return p.interval
}

// Stats summarizes a finished run.
type Stats struct {
	Ticks     int   // Steps executed
	Overruns  int   // Ticks that found their deadline already passed
	ElapsedMs int64 // Clock time from start to exit
	LagMs     int64 // How far the clock was past the last deadline on exit
}

// Run steps sim once per tick until sim.Running() reports false.
func Run(b Backend, sim Simulation, intervalMs int64, logger *logging.Logger) Stats {
	if logger == nil {
		logger = logging.Discard()
	}

	start := b.NowMillis()
	pacer := NewPacer(start, intervalMs)
	var stats Stats

	for sim.Running() {
		sim.Step(b, b)
		stats.Ticks++

		now := b.NowMillis()
		left := pacer.TimeLeft(now)
		if left == 0 {
			stats.Overruns++
			logger.Debug("tick overrun", "tick", stats.Ticks, "lag_ms", now-pacer.NextDeadline())
		}
		b.SleepMillis(left)
		pacer.Advance()
	}

	end := b.NowMillis()
	stats.ElapsedMs = end - start
	if lag := end - pacer.NextDeadline() + pacer.Interval(); lag > 0 {
		stats.LagMs = lag
	}
	return stats
}
