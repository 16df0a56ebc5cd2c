package rhythm

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Change is a tempo change at a beat.
type Change struct {
	Beat float64
	BPM  float64
}

type segment struct {
	beat  float64
	time  float64
	tempo float64
}

// Timeline maps chart beats to seconds through a list of tempo changes. It is immutable after
// NewTimeline and safe for concurrent use.
type Timeline struct {
	segments    []segment
	beatsPerBar int
}

// NewTimeline builds a timeline. The first change governs every beat before it; an empty list
// means 120 BPM throughout.
func NewTimeline(changes []Change, beatsPerBar int) (*Timeline, error) {
	if beatsPerBar <= 0 {
		beatsPerBar = 4
	}
	sorted := slices.Clone(changes)
	if len(sorted) == 0 {
		sorted = []Change{{Beat: 0, BPM: 120}}
	}
	slices.SortStableFunc(sorted, func(a, b Change) bool { return a.Beat < b.Beat })

	tl := &Timeline{beatsPerBar: beatsPerBar}
	for i, c := range sorted {
		if c.BPM <= 0 || math.IsNaN(c.BPM) || math.IsInf(c.BPM, 0) {
			return nil, fmt.Errorf("tempo change at beat %g: invalid bpm %g", c.Beat, c.BPM)
		}
		if i == 0 {
			tl.segments = append(tl.segments, segment{beat: c.Beat, time: beatsToSeconds(c.Beat, c.BPM), tempo: c.BPM})
			continue
		}
		prev := tl.segments[len(tl.segments)-1]
		tl.segments = append(tl.segments, segment{
			beat:  c.Beat,
			time:  prev.time + beatsToSeconds(c.Beat-prev.beat, prev.tempo),
			tempo: c.BPM,
		})
	}
	return tl, nil
}

// Time converts a beat to seconds.
func (tl *Timeline) Time(beat float64) float64 {
	s := tl.segmentAt(func(s segment) bool { return s.beat <= beat })
	return s.time + beatsToSeconds(beat-s.beat, s.tempo)
}

// Beat converts seconds to a beat. It is the inverse of Time.
func (tl *Timeline) Beat(t float64) float64 {
	s := tl.segmentAt(func(s segment) bool { return s.time <= t })
	return s.beat + (t-s.time)*s.tempo/60
}

// Tempo returns the BPM in effect at a beat.
func (tl *Timeline) Tempo(beat float64) float64 {
	return tl.segmentAt(func(s segment) bool { return s.beat <= beat }).tempo
}

// segmentAt returns the last segment satisfying before, or the first segment if none does.
func (tl *Timeline) segmentAt(before func(segment) bool) segment {
	i := 0
	for j := 1; j < len(tl.segments) && before(tl.segments[j]); j++ {
		i = j
	}
	return tl.segments[i]
}

// beatsToSeconds calculates the duration of a number of beats at a tempo.
func beatsToSeconds(beats float64, tempo float64) float64 {
	return (60.0 / tempo) * beats
}
