package note

import "github.com/robmorgan/judgeline/input"

const (
	hitboxBottom = -1.0
	hitboxTop    = 1.0
)

// Rect is an axis-aligned hitbox in stage units.
type Rect struct {
	L, R, B, T float64
}

// laneHitbox spans the lane range [lane-size-leniency, lane+size+leniency] around the judgment
// line. An inverted range collapses to a zero-width box at its midpoint.
func laneHitbox(lane, size, leniency float64) Rect {
	l, r := lane-size-leniency, lane+size+leniency
	if r < l {
		mid := (l + r) / 2
		l, r = mid, mid
	}
	return Rect{L: l, R: r, B: hitboxBottom, T: hitboxTop}
}

// Contains reports whether p lies in the box, edges included.
func (r Rect) Contains(p input.Vec) bool {
	return r.L <= p.X && p.X <= r.R && r.B <= p.Y && p.Y <= r.T
}
