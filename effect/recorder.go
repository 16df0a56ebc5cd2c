package effect

import (
	"sync"

	"github.com/robmorgan/judgeline/kind"
	"github.com/robmorgan/judgeline/note"
)

// Recorder keeps every presentation event in memory.
type Recorder struct {
	mu sync.Mutex

	Notes      []note.Draw
	Connectors []note.ConnectorDraw
	Combos     []int
	Hits       []Hit
	Empty      []float64
	SFX        []float64
}

func (r *Recorder) DrawNote(d note.Draw) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notes = append(r.Notes, d)
}

func (r *Recorder) DrawConnector(d note.ConnectorDraw) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Connectors = append(r.Connectors, d)
}

func (r *Recorder) DrawCombo(combo int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Combos = append(r.Combos, combo)
}

func (r *Recorder) PlayHitEffects(h Hit) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Hits = append(r.Hits, h)
}

func (r *Recorder) PlayEmptyTouchEffect(lane float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Empty = append(r.Empty, lane)
}

func (r *Recorder) ScheduleAutoSFX(_ kind.Kind, target float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SFX = append(r.SFX, target)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notes, r.Connectors, r.Combos, r.Hits, r.Empty, r.SFX = nil, nil, nil, nil, nil, nil
}
