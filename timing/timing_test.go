package timing

import (
	"testing"

	"github.com/robmorgan/judgeline/kind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allKinds() []kind.Kind {
	kinds := make([]kind.Kind, 0)
	for c := kind.Tap; c <= kind.Anchor; c++ {
		for _, role := range []kind.Role{kind.Standalone, kind.Head, kind.Tail} {
			kinds = append(kinds, kind.Kind{Category: c, Role: role}, kind.Kind{Category: c, Role: role, Critical: true})
		}
	}
	return kinds
}

func TestWindowsNestAndZeroIsPerfect(t *testing.T) {
	t.Parallel()

	for _, k := range allKinds() {
		w := ForKind(k)
		require.True(t, w.Nested(), k.String())
		assert.Equal(t, Perfect, w.Classify(0, k.HasBadTier(), nil), k.String())
	}
}

func TestBuildNesting(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		perfect, great, good, bad *Frames
	}{
		{Sym(1), Sym(2), Sym(3), Sym(4)},
		{Sym(2.5), nil, nil, nil},
		{Pair(1, 3), Pair(2, 3), nil, Pair(9, 3)},
		{Sym(0), Sym(0), Sym(0), Sym(0)},
		{Pair(0, 2), Pair(5, 2), Pair(5, 6), nil},
	}

	for _, testCase := range testCases {
		w := Build(testCase.perfect, testCase.great, testCase.good, testCase.bad)
		assert.True(t, w.Nested())
		assert.Equal(t, Perfect, w.Classify(0, true, nil))
	}
}

func TestBuildInherits(t *testing.T) {
	t.Parallel()

	w := Build(Sym(3.5), nil, nil, nil)
	assert.Equal(t, w.Perfect, w.Great)
	assert.Equal(t, w.Perfect, w.Good)
	assert.Equal(t, w.Perfect, w.Bad)
	assert.InDelta(t, -3.5/60, w.Perfect.Start, 1e-12)

	assert.Equal(t, Window{}, Build(nil, nil, nil, nil))
	assert.True(t, Build(nil, nil, nil, nil).Bad.IsZero())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	w := ForKind(kind.Kind{Category: kind.Tap})
	never := func() bool { return false }

	testCases := []struct {
		err      float64
		badTier  bool
		pass     func() bool
		expected Judgment
	}{
		{0.02, true, nil, Perfect},
		{-0.0416, true, nil, Perfect},
		{0.06, true, nil, Great},
		{-0.1, true, nil, Good},
		{-0.15, true, nil, Bad},
		{-0.15, true, never, Auto},
		{-0.15, false, nil, Miss},
		{0.13, true, nil, Miss},
		{-0.2, true, nil, Miss},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, w.Classify(testCase.err, testCase.badTier, testCase.pass), "err=%v", testCase.err)
	}
}

func TestPerfectOnlyWindow(t *testing.T) {
	t.Parallel()

	w := ForKind(kind.Kind{Category: kind.Tick})
	assert.Equal(t, Perfect, w.Classify(0.05, false, nil))
	assert.Equal(t, Miss, w.Classify(0.06, false, nil))
}

func TestInterval(t *testing.T) {
	t.Parallel()

	i := Interval{Start: -0.1, End: 0.2}
	assert.True(t, i.Contains(-0.1))
	assert.True(t, i.Contains(0.2))
	assert.False(t, i.Contains(0.21))
	assert.Equal(t, Interval{Start: 9.9, End: 10.2}, i.Shift(10))
	assert.Equal(t, 0.2, i.Clamp(5))
	assert.Equal(t, -0.1, i.Clamp(-5))
	assert.InDelta(t, 0.3, i.Length(), 1e-12)
}

func TestJudgment(t *testing.T) {
	t.Parallel()

	assert.False(t, None.Resolved())
	assert.True(t, Miss.Resolved())
	assert.True(t, Great.KeepsCombo())
	assert.False(t, Good.KeepsCombo())
	assert.Equal(t, "perfect", Perfect.String())
	assert.Len(t, Judgments(), 6)
}
