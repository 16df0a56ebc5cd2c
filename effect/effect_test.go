package effect

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robmorgan/judgeline/approach"
	"github.com/robmorgan/judgeline/kind"
	"github.com/robmorgan/judgeline/note"
	"github.com/robmorgan/judgeline/rhythm"
	"github.com/robmorgan/judgeline/timing"
)

func TestJudgmentColor(t *testing.T) {
	t.Parallel()

	for _, j := range timing.Judgments() {
		assert.True(t, JudgmentColor(j).IsValid(), j.String())
	}
	assert.Equal(t, "#ffffff", JudgmentColor(timing.None).Hex())
	assert.Equal(t, "#ffffff", AccuracyColor(timing.Perfect, 0, 0.1).Hex())
	assert.Equal(t, JudgmentColor(timing.Great).Hex(), AccuracyColor(timing.Great, -0.5, 0.1).Hex())
}

func TestNewHit(t *testing.T) {
	t.Parallel()

	l := note.NewLevel(approach.New(10, approach.DefaultCurve, 0, 0), 0)
	n := l.Note(l.Add(note.NewData(kind.Kind{Category: kind.Trace, Critical: true}, 1, 2, 1)))

	h := NewHit(n)
	assert.Equal(t, kind.CriticalTraceEffect, h.Effect)
	assert.Equal(t, 2.0, h.Lane)
	assert.Equal(t, n.Handle(), h.Handle)
}

func TestLogPresenter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	tl, err := rhythm.NewTimeline(nil, 4)
	require.NoError(t, err)

	p := NewLogPresenter(logrus.NewEntry(log), tl)
	p.PlayHitEffects(Hit{Kind: kind.Kind{Category: kind.Flick}, Effect: kind.FlickEffect, Judgment: timing.Great, WrongWay: true})
	p.ScheduleAutoSFX(kind.Kind{Category: kind.Tap}, 2.25)
	p.DrawCombo(3)

	out := buf.String()
	assert.Contains(t, out, "judgment=great")
	assert.Contains(t, out, "wrong_way=true")
	assert.Contains(t, out, "position=2.1")
	assert.NotContains(t, out, "draw combo")
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var p Presenter = &Recorder{}
	p.PlayEmptyTouchEffect(1.5)
	p.DrawCombo(4)

	r := p.(*Recorder)
	assert.Equal(t, []float64{1.5}, r.Empty)
	assert.Equal(t, []int{4}, r.Combos)
	r.Reset()
	assert.Empty(t, r.Combos)
}
