package rhythm

import (
	"fmt"
	"math"
)

// Snapshot describes where an instant falls on the timeline's bar and beat grid.
type Snapshot struct {
	// Time is the instant the snapshot was taken at, in seconds.
	Time  float64
	Tempo float64
	// Beat and Bar are 1-based marker numbers; BeatPhase is the fraction of the current beat elapsed.
	Beat      int64
	Bar       int64
	BeatPhase float64
	// BeatInBar is the 1-based beat within Bar.
	BeatInBar int64
}

// Snapshot probes the timeline at t.
func (tl *Timeline) Snapshot(t float64) Snapshot {
	beat := tl.Beat(t)
	return Snapshot{
		Time:      t,
		Tempo:     tl.Tempo(beat),
		Beat:      markerNumber(beat, 1),
		Bar:       markerNumber(beat, float64(tl.beatsPerBar)),
		BeatPhase: markerPhase(beat, 1),
		BeatInBar: beatWithinBar(beat, tl.beatsPerBar),
	}
}

// String formats the position as bar.beat.
func (s Snapshot) String() string {
	return fmt.Sprintf("%d.%d", s.Bar, s.BeatInBar)
}

// beatWithinBar returns the 1-based position of the current beat inside its bar.
func beatWithinBar(beats float64, beatsPerBar int) int64 {
	n := int64(beatsPerBar)
	return ((int64(math.Floor(beats))%n)+n)%n + 1
}

// markerNumber calculates the 1-based marker an elapsed beat count falls in.
func markerNumber(beats, interval float64) int64 {
	return int64(math.Floor(beats/interval)) + 1
}

// markerPhase calculates how far through its marker a beat count is.
func markerPhase(beats, interval float64) float64 {
	ratio := beats / interval
	return ratio - math.Floor(ratio)
}
