package note

import "github.com/robmorgan/judgeline/kind"

// Draw is the presentation command for one visible note.
type Draw struct {
	Handle    Handle
	Kind      kind.Kind
	Lane      float64
	Size      float64
	Direction Direction
	Target    float64
	// Progress is the approach progress; Scale is the travel scale it maps to.
	Progress float64
	Scale    float64
}

// Draw computes the note's draw command at raw time now. It only reads note state,
// so it is safe to call concurrently for different notes.
func (n *Note) Draw(now float64) (Draw, bool) {
	if n.despawn || n.Kind.Category == kind.Anchor {
		return Draw{}, false
	}
	tr := n.level.Transform
	progress := tr.ProgressTo(n.Target, now)
	if !tr.Visible(progress) || n.level.hidden(n.Group, now) {
		return Draw{}, false
	}
	return Draw{
		Handle:    n.handle,
		Kind:      n.Kind,
		Lane:      n.CurrentLane(),
		Size:      n.CurrentSize(),
		Direction: n.Direction,
		Target:    n.Target,
		Progress:  progress,
		Scale:     tr.Approach(progress),
	}, true
}
