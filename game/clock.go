package game

import "time"

// maxCatchUp bounds the ticks run for one frame after a long stall.
const maxCatchUp = 5

// Clock is a fixed-timestep accumulator. Frames feed it wall-clock time and
// it reports how many whole simulation steps are due, carrying the remainder.
type Clock struct {
	interval time.Duration
	acc      time.Duration
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval}
}

// Advance adds elapsed to the accumulator and returns the number of ticks due.
func (c *Clock) Advance(elapsed time.Duration) int {
	if c.interval <= 0 || elapsed <= 0 {
		return 0
	}
	c.acc += elapsed
	steps := int(c.acc / c.interval)
	c.acc -= time.Duration(steps) * c.interval
	if steps > maxCatchUp {
		steps = maxCatchUp
	}
	return steps
}

func (c *Clock) Reset() {
	c.acc = 0
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}
