package timing

import "github.com/robmorgan/judgeline/engine/scale"

// Interval is a closed range of seconds.
type Interval struct {
	Start float64
	End   float64
}

// Contains reports whether x lies within the interval, bounds included.
func (i Interval) Contains(x float64) bool {
	return i.Start <= x && x <= i.End
}

// Shift moves both bounds by d.
func (i Interval) Shift(d float64) Interval {
	return Interval{Start: i.Start + d, End: i.End + d}
}

// Clamp bounds x to the interval.
func (i Interval) Clamp(x float64) float64 {
	return scale.Clamp(x, i.Start, i.End)
}

// Covers reports whether o lies entirely within i.
func (i Interval) Covers(o Interval) bool {
	return i.Start <= o.Start && o.End <= i.End
}

// IsZero reports whether the interval is the degenerate (0, 0) interval.
func (i Interval) IsZero() bool {
	return i.Start == 0 && i.End == 0
}

func (i Interval) Length() float64 {
	return i.End - i.Start
}
