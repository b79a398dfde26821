package physics

// Clock turns variable frame times into a whole number of fixed steps.
type Clock struct {
	Step float64
	// MaxSteps bounds how many steps a single frame may run.
	MaxSteps int
	// SpikeThreshold marks a frame as a spike. Spiked frames report zero
	// elapsed time and run no steps.
	SpikeThreshold float64

	acc float64
}

// NewClock creates a clock with the given step and spike threshold.
func NewClock(step, spike float64) *Clock {
	return &Clock{Step: step, MaxSteps: 5, SpikeThreshold: spike}
}

// Advance accumulates elapsed seconds. It returns the number of fixed steps
// to run this frame and the frame time to use for variable-rate work.
func (c *Clock) Advance(elapsed float64) (int, float64) {
	if c == nil || c.Step <= 0 || elapsed <= 0 {
		return 0, 0
	}
	if c.SpikeThreshold > 0 && elapsed > c.SpikeThreshold {
		c.acc = 0
		return 0, 0
	}
	c.acc += elapsed
	steps := 0
	for c.acc >= c.Step {
		c.acc -= c.Step
		steps++
		if c.MaxSteps > 0 && steps >= c.MaxSteps {
			c.acc = 0
			break
		}
	}
	return steps, elapsed
}

// Reset drops any accumulated time.
func (c *Clock) Reset() {
	if c == nil {
		return
	}
	c.acc = 0
}
