package engine

import "github.com/robmorgan/judgeline/timing"

// ComboTracker counts consecutive combo-keeping judgments.
type ComboTracker struct {
	current int
	max     int
}

// Record applies one judgment.
func (c *ComboTracker) Record(j timing.Judgment) {
	if !j.KeepsCombo() {
		c.current = 0
		return
	}
	c.current++
	if c.current > c.max {
		c.max = c.current
	}
}

func (c *ComboTracker) Current() int {
	return c.current
}

func (c *ComboTracker) Max() int {
	return c.max
}
