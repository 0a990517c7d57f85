package systems

import "time"

// Clock converts wall-clock time into whole simulation ticks. Leftover time carries
// over to the next frame; a long stall yields at most maxSteps ticks.
type Clock struct {
	step     time.Duration
	maxSteps int
	last     time.Time
	acc      time.Duration
}

func NewClock(ticksPerSecond, maxSteps int) *Clock {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Clock{
		step:     time.Second / time.Duration(ticksPerSecond),
		maxSteps: maxSteps,
	}
}

// Steps returns how many ticks to simulate for a frame observed at now. The first
// call always returns one tick.
func (c *Clock) Steps(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		return 1
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	c.acc += elapsed

	steps := int(c.acc / c.step)
	if steps > c.maxSteps {
		steps = c.maxSteps
		c.acc = 0
		return steps
	}
	c.acc -= time.Duration(steps) * c.step
	return steps
}

// Reset forgets the last observed time, e.g. after a restart.
func (c *Clock) Reset() {
	c.last = time.Time{}
	c.acc = 0
}
