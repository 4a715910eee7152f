// Package timing measures frame deltas and frame rate for the main loop.
package timing

import "time"

// maxDelta caps a single frame step, so a stall (window drag, breakpoint)
// does not teleport the camera.
const maxDelta = 0.25

// Clock tracks frame times.
type Clock struct {
	last   time.Time
	window time.Time
	frames int
	fps    int
	limit  time.Duration
}

// NewClock starts a clock at now. fpsLimit <= 0 disables the limiter.
func NewClock(now time.Time, fpsLimit int) *Clock {
	c := &Clock{last: now, window: now}
	if fpsLimit > 0 {
		c.limit = time.Second / time.Duration(fpsLimit)
	}
	return c
}

// Tick records a frame starting at now and returns its delta in seconds.
// The second result is true when a new FPS sample is ready.
func (c *Clock) Tick(now time.Time) (float64, bool) {
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	dt = min(dt, maxDelta)

	c.frames++
	if elapsed := now.Sub(c.window); elapsed >= time.Second {
		c.fps = int(float64(c.frames)/elapsed.Seconds() + 0.5)
		c.frames = 0
		c.window = now
		return dt, true
	}
	return dt, false
}

// FPS returns the last completed frame rate sample.
func (c *Clock) FPS() int {
	return c.fps
}

// Wait returns how long to sleep at now for the frame to honor the limit.
func (c *Clock) Wait(now time.Time) time.Duration {
	if c.limit == 0 {
		return 0
	}
	return max(c.limit-now.Sub(c.last), 0)
}
