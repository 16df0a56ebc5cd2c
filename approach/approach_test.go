package approach

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreemptTime(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		speed    float64
		expected float64
	}{
		{12, 0.35},
		{1, 4},
		{20, 0.35},
		{-3, 4},
	}

	for _, testCase := range testCases {
		tr := New(testCase.speed, DefaultCurve, 0, 0)
		assert.InDelta(t, testCase.expected, tr.PreemptTime(), 1e-9, "speed=%v", testCase.speed)
	}

	// higher speed shrinks the lead time
	prev := math.Inf(1)
	for speed := 1.0; speed <= 12; speed += 0.5 {
		p := New(speed, DefaultCurve, 0, 0).PreemptTime()
		require.Less(t, p, prev)
		prev = p
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, curve := range []Curve{DefaultCurve, AlternativeCurve} {
		tr := New(10, curve, 0, 0)
		for p := 0.0; p <= 3.0; p += 0.01 {
			got := tr.InverseApproach(tr.Approach(p))
			assert.InDelta(t, p, got, 1e-6*math.Max(1, math.Abs(p)), "curve=%v p=%v", curve, p)
		}
	}
}

func TestApproachShape(t *testing.T) {
	t.Parallel()

	for _, curve := range []Curve{DefaultCurve, AlternativeCurve} {
		tr := New(10, curve, 0, 0)
		assert.InDelta(t, 1.0, tr.Approach(1), 1e-12)
		assert.InDelta(t, 1/farScale, tr.Approach(0), 1e-12)

		prev := tr.Approach(0)
		for p := 0.01; p <= 3.0; p += 0.01 {
			v := tr.Approach(p)
			require.Greater(t, v, prev, "curve=%v p=%v", curve, p)
			prev = v
		}
	}
}

func TestAlternativeCurveIsSmoothAtLine(t *testing.T) {
	t.Parallel()

	tr := New(10, AlternativeCurve, 0, 0)
	h := 1e-6
	left := (tr.Approach(1) - tr.Approach(1-h)) / h
	right := (tr.Approach(1+h) - tr.Approach(1)) / h
	assert.InEpsilon(t, left, right, 1e-4)
}

func TestProgressTo(t *testing.T) {
	t.Parallel()

	tr := New(10.5, DefaultCurve, 0, 0)
	target := 12.0

	assert.InDelta(t, 0.0, tr.ProgressTo(target, target-tr.PreemptTime()), 1e-12)
	assert.InDelta(t, 1.0, tr.ProgressTo(target, target), 1e-12)
	assert.InDelta(t, target-tr.PreemptTime(), tr.SpawnTime(target), 1e-12)

	prev := tr.ProgressTo(target, 0)
	for now := 0.01; now < 20; now += 0.01 {
		p := tr.ProgressTo(target, now)
		require.Greater(t, p, prev)
		prev = p
	}
}

func TestCutoffs(t *testing.T) {
	t.Parallel()

	tr := New(10, DefaultCurve, 0, 0)
	assert.Equal(t, 0.0, tr.MinProgress())
	assert.True(t, math.IsInf(tr.MaxProgress(), 1))
	assert.True(t, tr.Visible(2.5))
	assert.False(t, tr.Visible(-0.1))

	for _, curve := range []Curve{DefaultCurve, AlternativeCurve} {
		tr = New(10, curve, 0.5, 0.25)
		start := tr.Approach(0)
		assert.InDelta(t, start+(1-start)*0.5, tr.Approach(tr.MinProgress()), 1e-9)
		assert.InDelta(t, start+(1-start)*0.75, tr.Approach(tr.MaxProgress()), 1e-9)
		assert.Less(t, tr.MinProgress(), tr.MaxProgress())
		assert.Less(t, tr.MaxProgress(), 1.0)
		assert.False(t, tr.Visible(0.01))
		assert.False(t, tr.Visible(0.99))
	}
}

func TestParseCurve(t *testing.T) {
	t.Parallel()

	c, err := ParseCurve("Alternative")
	require.NoError(t, err)
	assert.Equal(t, AlternativeCurve, c)

	c, err = ParseCurve("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCurve, c)

	_, err = ParseCurve("linear")
	require.Error(t, err)
}
