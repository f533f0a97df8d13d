// Package platform holds pieces shared by the backends.
package platform

import "time"

// SystemClock measures monotonic milliseconds since its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a wall clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// SleepMillis blocks for ms milliseconds.
func (c *SystemClock) SleepMillis(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// VirtualClock is a clock that only moves when slept on. Runs against it are
// instant and deterministic.
type VirtualClock struct {
	now int64
}

// NowMillis returns the virtual time.
func (c *VirtualClock) NowMillis() int64 {
	return c.now
}

// SleepMillis advances the virtual time by ms.
func (c *VirtualClock) SleepMillis(ms int64) {
	if ms > 0 {
		c.now += ms
	}
}
