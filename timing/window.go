package timing

// FrameRate is the reference rate window parameters are authored at.
const FrameRate = 60.0

// Frames is a window parameter in frames at FrameRate: how far before and after the target it reaches.
type Frames struct {
	Before float64
	After  float64
}

// Sym returns a symmetric frame parameter.
func Sym(frames float64) *Frames {
	return &Frames{Before: frames, After: frames}
}

// Pair returns an asymmetric frame parameter.
func Pair(before, after float64) *Frames {
	return &Frames{Before: before, After: after}
}

// Interval converts the parameter to seconds relative to the target.
func (f Frames) Interval() Interval {
	return Interval{Start: -f.Before / FrameRate, End: f.After / FrameRate}
}

// Window holds the nested judgment intervals of a note kind, in seconds relative to the target time.
// Perfect, Great and Good are expected to nest; Bad is the outer acceptance boundary.
type Window struct {
	Perfect Interval
	Great   Interval
	Good    Interval
	Bad     Interval
}

// Build converts frame parameters into a Window. A nil parameter inherits the next-stricter one,
// so a window given only perfect degenerates to perfect-only. A nil perfect yields the zero window.
func Build(perfect, great, good, bad *Frames) Window {
	inherit := func(f *Frames, prev Interval) Interval {
		if f == nil {
			return prev
		}
		return f.Interval()
	}

	var w Window
	w.Perfect = inherit(perfect, Interval{})
	w.Great = inherit(great, w.Perfect)
	w.Good = inherit(good, w.Great)
	w.Bad = inherit(bad, w.Good)
	return w
}

// Nested reports whether perfect ⊆ great ⊆ good ⊆ bad.
func (w Window) Nested() bool {
	return w.Great.Covers(w.Perfect) && w.Good.Covers(w.Great) && w.Bad.Covers(w.Good)
}

// Classify grades a signed error (actual minus target). Containment is tested innermost first.
// When badTier is set and the error falls in the bad window, pass decides between Bad and the
// Auto substitute used by watch mode; a nil pass always passes.
func (w Window) Classify(err float64, badTier bool, pass func() bool) Judgment {
	switch {
	case w.Perfect.Contains(err):
		return Perfect
	case w.Great.Contains(err):
		return Great
	case w.Good.Contains(err):
		return Good
	case badTier && w.Bad.Contains(err):
		if pass == nil || pass() {
			return Bad
		}
		return Auto
	default:
		return Miss
	}
}
