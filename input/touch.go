package input

import "math"

// Vec is a position in stage units: X in lane widths from the stage centre, Y in lane widths
// above the judgment line.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle is the direction of v in radians, counter-clockwise from +X.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Touch is one pointer as sampled for the current frame.
type Touch struct {
	ID           int
	Position     Vec
	PrevPosition Vec
	// StartTime is the raw device time the touch went down.
	StartTime float64
	// Time is the raw device time of this sample.
	Time float64
	// Started and Ended are set only on the frame of the transition.
	Started bool
	Ended   bool
	// Speed is the instantaneous speed in lane widths per second.
	Speed float64
}

// Direction is the angle of the touch's movement over the last frame.
func (t Touch) Direction() float64 {
	return t.Position.Sub(t.PrevPosition).Angle()
}

// Frame is the fixed snapshot the core reads for one tick.
type Frame struct {
	// Now and Prev are the raw times of this tick and the previous one.
	Now     float64
	Prev    float64
	Touches []Touch
}

// Find returns the touch with the given id.
func (f *Frame) Find(id int) (Touch, bool) {
	for _, t := range f.Touches {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}

// Source produces the touches active during (prev, now].
type Source interface {
	Frame(prev, now float64) []Touch
}
