package note

import (
	"fmt"

	"github.com/robmorgan/judgeline/approach"
)

// Handle is a stable index into a Level's note arena.
type Handle int

// NoHandle marks an absent link.
const NoHandle Handle = -1

// Valid reports whether h refers to a note (it may still be out of range for a given level).
func (h Handle) Valid() bool {
	return h >= 0
}

// Groups reports whether a timescale group hides its notes at a given chart time.
type Groups interface {
	Hidden(group int, now float64) bool
}

// Level owns the notes of a chart and the level-wide constants they read.
// Notes are added while the chart is loaded; handles stay valid for the life of the level.
type Level struct {
	Transform   *approach.Transform
	InputOffset float64
	// WatchMode reports bad-tier hits as Auto.
	WatchMode bool
	Groups    Groups

	notes []*Note
}

// NewLevel creates an empty level.
func NewLevel(transform *approach.Transform, inputOffset float64) *Level {
	return &Level{
		Transform:   transform,
		InputOffset: inputOffset,
		notes:       make([]*Note, 0),
	}
}

// Add stores a note and returns its handle.
func (l *Level) Add(d Data) Handle {
	h := Handle(len(l.notes))
	l.notes = append(l.notes, &Note{
		Data:     d,
		handle:   h,
		level:    l,
		captured: noTouch,
	})
	return h
}

// Note dereferences a handle. An invalid handle is a chart invariant violation and panics.
func (l *Level) Note(h Handle) *Note {
	if h < 0 || int(h) >= len(l.notes) {
		panic(fmt.Sprintf("note: invalid handle %d (level has %d notes)", h, len(l.notes)))
	}
	return l.notes[h]
}

// Lookup dereferences a handle, reporting false for absent or out-of-range links.
func (l *Level) Lookup(h Handle) (*Note, bool) {
	if h < 0 || int(h) >= len(l.notes) {
		return nil, false
	}
	return l.notes[h], true
}

// Len is the number of notes in the arena.
func (l *Level) Len() int {
	return len(l.notes)
}

func (l *Level) hidden(group int, now float64) bool {
	return l.Groups != nil && group >= 0 && l.Groups.Hidden(group, now)
}

// adjusted converts a raw device time to chart time.
func (l *Level) adjusted(raw float64) float64 {
	return raw - l.InputOffset
}
