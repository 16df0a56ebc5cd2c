package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for i, name := range categoryNames {
		c, err := ParseCategory(name)
		require.NoError(t, err)
		assert.Equal(t, Category(i), c)
	}

	c, err := ParseCategory(" Trace-Flick ")
	require.NoError(t, err)
	assert.Equal(t, TraceFlick, c)

	_, err = ParseCategory("hold")
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	r, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, Standalone, r)

	r, err = ParseRole("tail")
	require.NoError(t, err)
	assert.Equal(t, Tail, r)

	_, err = ParseRole("middle")
	require.Error(t, err)
}

func TestGroupings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind    Kind
		windows WindowGroup
		input   InputMode
		effect  Effect
		badTier bool
	}{
		{Kind{Category: Tap}, TapWindows, TapInput, NormalEffect, true},
		{Kind{Category: Tap, Role: Head, Critical: true}, TapWindows, TapInput, CriticalEffect, true},
		{Kind{Category: Tap, Role: Tail}, ReleaseWindows, ReleaseInput, NormalEffect, false},
		{Kind{Category: Release, Role: Tail}, ReleaseWindows, ReleaseInput, NormalEffect, false},
		{Kind{Category: Flick}, FlickWindows, FlickInput, FlickEffect, false},
		{Kind{Category: Flick, Role: Tail, Critical: true}, TailFlickWindows, FlickInput, CriticalFlickEffect, false},
		{Kind{Category: Trace}, TraceWindows, TraceInput, TraceEffect, false},
		{Kind{Category: TraceFlick}, TraceFlickWindows, TraceFlickInput, FlickEffect, false},
		{Kind{Category: Tick, Critical: true}, TickWindows, TickInput, CriticalTickEffect, false},
		{Kind{Category: Damage}, DamageWindows, DamageInput, DamageEffect, false},
		{Kind{Category: Anchor}, AnchorWindows, NoInput, NoEffect, false},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.windows, testCase.kind.Windows(), testCase.kind.String())
		assert.Equal(t, testCase.input, testCase.kind.Input(), testCase.kind.String())
		assert.Equal(t, testCase.effect, testCase.kind.Effect(), testCase.kind.String())
		assert.Equal(t, testCase.badTier, testCase.kind.HasBadTier(), testCase.kind.String())
	}
}

func TestClaims(t *testing.T) {
	t.Parallel()

	assert.True(t, Kind{Category: Tap}.ClaimsTap())
	assert.True(t, Kind{Category: Flick}.ClaimsTap())
	assert.False(t, Kind{Category: Trace}.ClaimsTap())
	assert.True(t, Kind{Category: Release}.ClaimsRelease())
	assert.False(t, Kind{Category: Tap}.ClaimsRelease())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "critical-flick/tail", Kind{Category: Flick, Critical: true, Role: Tail}.String())
	assert.Equal(t, "tap", Kind{Category: Tap}.String())
}
