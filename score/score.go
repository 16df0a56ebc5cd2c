package score

import (
	"math"
	"sync"

	"github.com/robmorgan/judgeline/kind"
	"github.com/robmorgan/judgeline/timing"
)

// Sink receives every judged note, in commit order.
type Sink interface {
	Record(k kind.Kind, j timing.Judgment, accuracy float64)
}

// Tally accumulates judgment counts and hit-timing statistics.
type Tally struct {
	mu     sync.Mutex
	counts map[timing.Judgment]int
	// errors holds the accuracy of every non-miss hit, in seconds.
	errors   []float64
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[timing.Judgment]int)}
}

func (t *Tally) Record(_ kind.Kind, j timing.Judgment, accuracy float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[j]++
	if j != timing.Miss {
		t.errors = append(t.errors, accuracy)
	}
}

// Count returns how many notes received j.
func (t *Tally) Count(j timing.Judgment) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[j]
}

// Total is the number of judged notes.
func (t *Tally) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Mean is the average hit error in seconds, 0 with no hits.
func (t *Tally) Mean() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return mean(t.errors)
}

// Stdev is the sample standard deviation of hit errors, 0 with fewer than two hits.
func (t *Tally) Stdev() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.errors) < 2 {
		return 0
	}
	m := mean(t.errors)
	sum := 0.0
	for _, x := range t.errors {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(t.errors)-1))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
