package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robmorgan/judgeline/kind"
	"github.com/robmorgan/judgeline/timing"
)

func TestTally(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tap := kind.Kind{Category: kind.Tap}
	tally.Record(tap, timing.Perfect, 0.01)
	tally.Record(tap, timing.Great, -0.03)
	tally.Record(tap, timing.Miss, 0.125)

	assert.Equal(t, 3, tally.Total())
	assert.Equal(t, 1, tally.Count(timing.Miss))
	assert.Equal(t, 0, tally.Count(timing.Bad))
	assert.InDelta(t, -0.01, tally.Mean(), 1e-9)
	assert.InDelta(t, 0.028284271, tally.Stdev(), 1e-6)
}

func TestTallyEmpty(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	assert.Zero(t, tally.Mean())
	assert.Zero(t, tally.Stdev())
	assert.Zero(t, tally.Total())
}
