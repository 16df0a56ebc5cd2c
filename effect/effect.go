package effect

import (
	"github.com/robmorgan/judgeline/kind"
	"github.com/robmorgan/judgeline/note"
	"github.com/robmorgan/judgeline/timing"
)

// Hit describes the effects played when a note resolves.
type Hit struct {
	Handle    note.Handle
	Kind      kind.Kind
	Effect    kind.Effect
	Lane      float64
	Size      float64
	Direction note.Direction
	Judgment  timing.Judgment
	Accuracy  float64
	WrongWay  bool
}

// Presenter renders the game. Draw calls arrive in a deterministic order once per tick, after
// every note has been updated; effect calls arrive during the commit step.
type Presenter interface {
	DrawNote(d note.Draw)
	DrawConnector(d note.ConnectorDraw)
	DrawCombo(combo int)
	PlayHitEffects(h Hit)
	PlayEmptyTouchEffect(lane float64)
	ScheduleAutoSFX(k kind.Kind, target float64)
}

// NewHit builds the hit effect descriptor for a resolved note.
func NewHit(n *note.Note) Hit {
	r := n.Result()
	return Hit{
		Handle:    n.Handle(),
		Kind:      n.Kind,
		Effect:    n.Kind.Effect(),
		Lane:      n.CurrentLane(),
		Size:      n.CurrentSize(),
		Direction: n.Direction,
		Judgment:  r.Judgment,
		Accuracy:  r.Accuracy,
		WrongWay:  r.WrongWay,
	}
}

// Nop discards everything.
type Nop struct{}

func (Nop) DrawNote(note.Draw) {}
func (Nop) DrawConnector(note.ConnectorDraw) {}
func (Nop) DrawCombo(int) {}
func (Nop) PlayHitEffects(Hit) {}
func (Nop) PlayEmptyTouchEffect(float64) {}
func (Nop) ScheduleAutoSFX(kind.Kind, float64) {}
