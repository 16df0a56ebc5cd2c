// Package approach maps time to the normalized approach progress of a note and progress to the
// travel scale used when drawing it.
//
// Progress is 0 when a note spawns, 1 at its target time, and keeps growing afterwards. Nothing
// here clamps progress; callers cull using MinProgress and MaxProgress.
package approach

import (
	"fmt"
	"math"
	"strings"

	"github.com/robmorgan/judgeline/engine/scale"
)

const (
	minNoteSpeed  = 1.0
	maxNoteSpeed  = 12.0
	minPreempt    = 0.35
	maxPreempt    = 4.0
	preemptPower  = 1.31
	approachBase  = 1.06
	approachPower = 45.0
)

// farScale is the travel scale at progress 0 for both curves.
var farScale = math.Pow(approachBase, approachPower)

// Curve selects the approach curve family.
type Curve uint8

const (
	// DefaultCurve is the exponential curve scale^(1-progress).
	DefaultCurve Curve = iota
	// AlternativeCurve is a perspective curve: reciprocal of a linearly shrinking depth, continued
	// past the judgment line along its tangent.
	AlternativeCurve
)

func (c Curve) String() string {
	switch c {
	case DefaultCurve:
		return "default"
	case AlternativeCurve:
		return "alternative"
	default:
		return fmt.Sprintf("curve(%d)", c)
	}
}

// ParseCurve maps a configuration value to a Curve.
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return DefaultCurve, nil
	case "alternative":
		return AlternativeCurve, nil
	default:
		return 0, fmt.Errorf("unknown approach curve %q", s)
	}
}

// Transform is the approach configuration of a level. It is immutable after New.
type Transform struct {
	curve       Curve
	preempt     float64
	minProgress float64
	maxProgress float64
}

// New builds a Transform. noteSpeed is clamped to [1, 12]; stageCover hides the given fraction of
// the travel near the spawn point, hidden the given fraction near the judgment line.
func New(noteSpeed float64, curve Curve, stageCover, hidden float64) *Transform {
	speed := scale.Clamp(noteSpeed, minNoteSpeed, maxNoteSpeed)
	t := &Transform{
		curve:       curve,
		preempt:     scale.Lerp(minPreempt, maxPreempt, math.Pow(scale.Unlerp(maxNoteSpeed, minNoteSpeed, speed), preemptPower)),
		minProgress: 0,
		maxProgress: math.Inf(1),
	}

	start := t.Approach(0)
	if stageCover > 0 {
		t.minProgress = t.InverseApproach(scale.Lerp(start, 1, scale.Clamp(stageCover, 0, 1)))
	}
	if hidden > 0 {
		t.maxProgress = t.InverseApproach(scale.Lerp(start, 1, 1-scale.Clamp(hidden, 0, 1)))
	}
	return t
}

// Curve returns the active curve family.
func (t *Transform) Curve() Curve {
	return t.curve
}

// PreemptTime is the lead time between a note's visual spawn and its target time.
func (t *Transform) PreemptTime() float64 {
	return t.preempt
}

// SpawnTime is the instant a note with the given target time reaches progress 0.
func (t *Transform) SpawnTime(target float64) float64 {
	return target - t.preempt
}

// ProgressTo returns the fraction of the lead time elapsed at now.
func (t *Transform) ProgressTo(target, now float64) float64 {
	return (now - (target - t.preempt)) / t.preempt
}

// Approach maps progress to the multiplicative travel scale. Both curves equal 1 at progress 1.
func (t *Transform) Approach(progress float64) float64 {
	switch t.curve {
	case AlternativeCurve:
		if progress <= 1 {
			return 1 / (farScale - (farScale-1)*progress)
		}
		return 1 + (farScale-1)*(progress-1)
	default:
		return math.Pow(approachBase, approachPower*(progress-1))
	}
}

// InverseApproach is the exact inverse of Approach. Non-positive scales map to -Inf.
func (t *Transform) InverseApproach(value float64) float64 {
	if value <= 0 {
		return math.Inf(-1)
	}
	switch t.curve {
	case AlternativeCurve:
		if value <= 1 {
			return (farScale - 1/value) / (farScale - 1)
		}
		return 1 + (value-1)/(farScale-1)
	default:
		return 1 + math.Log(value)/(approachPower*math.Log(approachBase))
	}
}

// MinProgress is the earliest progress at which a note is drawn.
func (t *Transform) MinProgress() float64 {
	return t.minProgress
}

// MaxProgress is the latest progress at which a note is drawn; +Inf when nothing is hidden.
func (t *Transform) MaxProgress() float64 {
	return t.maxProgress
}

// Visible reports whether progress lies inside the drawn range.
func (t *Transform) Visible(progress float64) bool {
	return progress >= t.minProgress && progress <= t.maxProgress
}
