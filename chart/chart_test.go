package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robmorgan/judgeline/approach"
	"github.com/robmorgan/judgeline/kind"
	"github.com/robmorgan/judgeline/note"
)

const slideChart = `
title: test
offset: 0.5
bpms:
  - {beat: 0, bpm: 120}
groups:
  - id: 2
    hidden: [[8, 10]]
notes:
  - {id: a, kind: tap, role: head, beat: 0, lane: -2, size: 1}
  - {id: m, kind: tick, beat: 2, attached: true, head: a, tail: b, trigger: a}
  - {id: b, kind: flick, role: tail, beat: 4, lane: 2, size: 1, direction: up-left, head: a}
  - {id: d, kind: damage, beat: 6, lane: 0, size: 2, group: 2}
  - {id: f, kind: tap, beat: 9, fake: true, critical: true}
connectors:
  - {head: a, tail: b, ease: linear}
`

func newLevel() *note.Level {
	return note.NewLevel(approach.New(10, approach.DefaultCurve, 0, 0), 0)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(slideChart))
	require.NoError(t, err)
	level := newLevel()
	b, err := c.Build(level)
	require.NoError(t, err)

	assert.Equal(t, 5, level.Len())
	assert.Equal(t, []string{"a", "b", "d", "f", "m"}, b.IDs())
	require.Len(t, b.Connectors, 1)

	hm, ok := b.Handle("m")
	require.True(t, ok)
	m := level.Note(hm)
	assert.InDelta(t, 1.5, m.Target, 1e-9)
	assert.InDelta(t, 0, m.CurrentLane(), 1e-9)
	ha, _ := b.Handle("a")
	assert.Equal(t, ha, m.Trigger)

	hb, _ := b.Handle("b")
	tail := level.Note(hb)
	assert.Equal(t, kind.Kind{Category: kind.Flick, Role: kind.Tail}, tail.Kind)
	assert.Equal(t, note.UpLeft, tail.Direction)
	assert.Equal(t, ha, tail.Head)

	hf, _ := b.Handle("f")
	assert.False(t, level.Note(hf).Scored)
	assert.True(t, level.Note(hf).Kind.Critical)

	// beats 8..10 are 4.5s..5.5s after the offset
	assert.True(t, b.Groups.Hidden(2, 5.0))
	assert.False(t, b.Groups.Hidden(2, 5.6))
	assert.False(t, b.Groups.Hidden(1, 5.0))
	assert.Contains(t, b.Groups.String(), "group 2")
}

func TestBuildLinkErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		chart  string
		reason string
	}{
		{
			"dangling head",
			"notes:\n  - {id: a, kind: tick, head: zz}\n",
			"no such note",
		},
		{
			"duplicate id",
			"notes:\n  - {id: a, kind: tap}\n  - {id: a, kind: tap}\n",
			"duplicate id",
		},
		{
			"self link",
			"notes:\n  - {id: a, kind: tick, trigger: a}\n",
			"note links to itself",
		},
		{
			"attached without tail",
			"notes:\n  - {id: a, kind: tap}\n  - {id: m, kind: tick, attached: true, head: a}\n",
			"attached notes need a head and a tail",
		},
		{
			"attached to attached",
			"notes:\n  - {id: a, kind: tap}\n  - {id: b, kind: tap, beat: 2}\n" +
				"  - {id: m, kind: tick, beat: 1, attached: true, head: a, tail: b}\n" +
				"  - {id: n, kind: tick, beat: 1, attached: true, head: m, tail: b}\n",
			"cannot attach to an attached note",
		},
		{
			"connector",
			"notes:\n  - {id: a, kind: tap}\nconnectors:\n  - {head: a, tail: q}\n",
			"no such note",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse([]byte(testCase.chart))
			require.NoError(t, err)
			_, err = c.Build(newLevel())

			var lerr LinkError
			require.True(t, errors.As(err, &lerr), "got %v", err)
			assert.Equal(t, testCase.reason, lerr.Reason)
		})
	}
}

func TestBuildFieldErrors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"notes:\n  - {id: a, kind: hold}\n",
		"notes:\n  - {id: a, kind: flick, direction: sideways}\n",
		"notes:\n  - {id: a, kind: tap, role: middle}\n",
		"notes:\n  - {id: a, kind: tap, ease: bounce}\n",
	} {
		c, err := Parse([]byte(src))
		require.NoError(t, err)
		_, err = c.Build(newLevel())

		var ferr FieldError
		assert.True(t, errors.As(err, &ferr), src)
	}

	c, err := Parse([]byte("bpms:\n  - {beat: 0, bpm: -1}\n"))
	require.NoError(t, err)
	_, err = c.Build(newLevel())
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(slideChart), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", c.Title)
	assert.Len(t, c.Notes, 5)

	_, err = Parse([]byte("notes: {"))
	assert.Error(t, err)
}
