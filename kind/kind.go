// Package kind defines the closed set of note archetypes and the fixed groupings derived from them.
//
// Every switch over Category or Role in this module lists each case explicitly and panics in the
// default branch, so adding a category forces every grouping below to be revisited.
package kind

import (
	"fmt"
	"strings"
)

// Category is the input behaviour of a note.
type Category uint8

const (
	Tap Category = iota
	Flick
	Trace
	TraceFlick
	Release
	Tick
	Damage
	Anchor
)

var categoryNames = [...]string{
	Tap:        "tap",
	Flick:      "flick",
	Trace:      "trace",
	TraceFlick: "trace-flick",
	Release:    "release",
	Tick:       "tick",
	Damage:     "damage",
	Anchor:     "anchor",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", c)
}

// ParseCategory maps a chart tag such as "trace-flick" to its Category.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown note category %q", s)
}

// Role is the position of a note within a slide.
type Role uint8

const (
	Standalone Role = iota
	Head
	Tail
)

func (r Role) String() string {
	switch r {
	case Standalone:
		return "standalone"
	case Head:
		return "head"
	case Tail:
		return "tail"
	default:
		return fmt.Sprintf("role(%d)", r)
	}
}

// ParseRole maps a chart tag to its Role. The empty string means standalone.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standalone":
		return Standalone, nil
	case "head":
		return Head, nil
	case "tail":
		return Tail, nil
	default:
		return 0, fmt.Errorf("unknown note role %q", s)
	}
}

// Kind is a category crossed with normal/critical and a slide role.
type Kind struct {
	Category Category
	Critical bool
	Role     Role
}

func (k Kind) String() string {
	s := k.Category.String()
	if k.Critical {
		s = "critical-" + s
	}
	if k.Role != Standalone {
		s += "/" + k.Role.String()
	}
	return s
}

// WindowGroup selects the judgment window table entry for a kind.
type WindowGroup uint8

const (
	TapWindows WindowGroup = iota
	FlickWindows
	TraceWindows
	TraceFlickWindows
	ReleaseWindows
	TailFlickWindows
	TickWindows
	DamageWindows
	AnchorWindows
)

// Windows returns the window group. Slide tails use the asymmetric release-style windows.
func (k Kind) Windows() WindowGroup {
	switch k.Category {
	case Tap, Release:
		if k.Role == Tail || k.Category == Release {
			return ReleaseWindows
		}
		return TapWindows
	case Flick:
		if k.Role == Tail {
			return TailFlickWindows
		}
		return FlickWindows
	case Trace:
		return TraceWindows
	case TraceFlick:
		return TraceFlickWindows
	case Tick:
		return TickWindows
	case Damage:
		return DamageWindows
	case Anchor:
		return AnchorWindows
	default:
		panic(fmt.Sprintf("kind: unhandled category %v", k.Category))
	}
}

// InputMode selects the touch handler a note dispatches to.
type InputMode uint8

const (
	NoInput InputMode = iota
	TapInput
	FlickInput
	TraceInput
	TraceFlickInput
	ReleaseInput
	TickInput
	DamageInput
)

// Input returns the touch handler for the kind.
func (k Kind) Input() InputMode {
	switch k.Category {
	case Tap:
		if k.Role == Tail {
			return ReleaseInput
		}
		return TapInput
	case Flick:
		return FlickInput
	case Trace:
		return TraceInput
	case TraceFlick:
		return TraceFlickInput
	case Release:
		return ReleaseInput
	case Tick:
		return TickInput
	case Damage:
		return DamageInput
	case Anchor:
		return NoInput
	default:
		panic(fmt.Sprintf("kind: unhandled category %v", k.Category))
	}
}

// ClaimsTap reports whether the kind competes for freshly started touches.
func (k Kind) ClaimsTap() bool {
	m := k.Input()
	return m == TapInput || m == FlickInput
}

// ClaimsRelease reports whether the kind competes for touches that ended.
func (k Kind) ClaimsRelease() bool {
	return k.Input() == ReleaseInput
}

// HasBadTier reports whether hits in the bad window are judged Bad rather than Miss.
func (k Kind) HasBadTier() bool {
	return k.Windows() == TapWindows
}

// Effect is the hit effect family played when a note resolves.
type Effect uint8

const (
	NoEffect Effect = iota
	NormalEffect
	CriticalEffect
	FlickEffect
	CriticalFlickEffect
	TraceEffect
	CriticalTraceEffect
	TickEffect
	CriticalTickEffect
	DamageEffect
)

var effectNames = [...]string{
	NoEffect:            "none",
	NormalEffect:        "normal",
	CriticalEffect:      "critical",
	FlickEffect:         "flick",
	CriticalFlickEffect: "critical-flick",
	TraceEffect:         "trace",
	CriticalTraceEffect: "critical-trace",
	TickEffect:          "tick",
	CriticalTickEffect:  "critical-tick",
	DamageEffect:        "damage",
}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("effect(%d)", e)
}

// Effect returns the hit effect family for the kind.
func (k Kind) Effect() Effect {
	pick := func(normal, critical Effect) Effect {
		if k.Critical {
			return critical
		}
		return normal
	}
	switch k.Category {
	case Tap, Release:
		return pick(NormalEffect, CriticalEffect)
	case Flick, TraceFlick:
		return pick(FlickEffect, CriticalFlickEffect)
	case Trace:
		return pick(TraceEffect, CriticalTraceEffect)
	case Tick:
		return pick(TickEffect, CriticalTickEffect)
	case Damage:
		return DamageEffect
	case Anchor:
		return NoEffect
	default:
		panic(fmt.Sprintf("kind: unhandled category %v", k.Category))
	}
}

// Leniency is how far, in lane widths, the hitbox extends past the note on each side.
func (k Kind) Leniency() float64 {
	switch k.Category {
	case Tap, Flick, Release:
		return 0.75
	case Trace, TraceFlick:
		return 1.0
	case Tick:
		return 0.5
	case Damage, Anchor:
		return 0
	default:
		panic(fmt.Sprintf("kind: unhandled category %v", k.Category))
	}
}
