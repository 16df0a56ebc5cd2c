package note

import (
	"fmt"
	"math"
	"strings"
)

// Direction is the flick direction of a note.
type Direction uint8

const (
	UpOmni Direction = iota
	UpLeft
	UpRight
	DownOmni
	DownLeft
	DownRight
)

var directionNames = [...]string{
	UpOmni:    "up-omni",
	UpLeft:    "up-left",
	UpRight:   "up-right",
	DownOmni:  "down-omni",
	DownLeft:  "down-left",
	DownRight: "down-right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", d)
}

// ParseDirection maps a chart tag to a Direction. The empty string means up-omni.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UpOmni, nil
	}
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown flick direction %q", s)
}

// Omni reports whether any movement direction is accepted.
func (d Direction) Omni() bool {
	return d == UpOmni || d == DownOmni
}

// Angle is the target movement angle in radians, counter-clockwise from +X.
func (d Direction) Angle() float64 {
	switch d {
	case UpOmni:
		return math.Pi / 2
	case UpLeft:
		return 3 * math.Pi / 4
	case UpRight:
		return math.Pi / 4
	case DownOmni:
		return -math.Pi / 2
	case DownLeft:
		return -3 * math.Pi / 4
	case DownRight:
		return -math.Pi / 4
	default:
		panic(fmt.Sprintf("note: unhandled direction %d", d))
	}
}

// angleDiff is the signed smallest difference a-b, in [-π, π].
func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
