package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robmorgan/judgeline/approach"
)

func TestNewOptionsValid(t *testing.T) {
	t.Parallel()

	opts := NewOptions()
	require.NoError(t, opts.Validate())

	tr, err := opts.Transform()
	require.NoError(t, err)
	assert.Equal(t, approach.DefaultCurve, tr.Curve())
}

func TestParseOverlaysDefaults(t *testing.T) {
	t.Parallel()

	opts, err := Parse([]byte("note_speed: 8\napproach_curve: alternative\ninput_offset: 0.03\n"))
	require.NoError(t, err)
	assert.Equal(t, 8.0, opts.NoteSpeed)
	assert.Equal(t, "alternative", opts.ApproachCurve)
	assert.Equal(t, 0.03, opts.InputOffset)
	assert.Equal(t, 60.0, opts.TickRate)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		mutate func(*Options)
		field  string
	}{
		{"slow", func(o *Options) { o.NoteSpeed = 0.5 }, "note_speed"},
		{"cover", func(o *Options) { o.StageCover = 1.5 }, "stage_cover"},
		{"hidden", func(o *Options) { o.Hidden = -0.1 }, "hidden"},
		{"nothing visible", func(o *Options) { o.StageCover, o.Hidden = 0.5, 0.5 }, "hidden"},
		{"tick rate", func(o *Options) { o.TickRate = 0 }, "tick_rate"},
		{"workers", func(o *Options) { o.DrawWorkers = 0 }, "draw_workers"},
		{"curve", func(o *Options) { o.ApproachCurve = "spiral" }, "approach_curve"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			opts := NewOptions()
			testCase.mutate(&opts)
			err := opts.Validate()

			var verr ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, testCase.field, verr.Field)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "judgeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watch_mode: true\n"), 0o644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.True(t, opts.WatchMode)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("note_speed: 40\n"), 0o644))
	_, err = Load(bad)
	var verr ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"hidden", "practice", "standard", "watch"}, ProfileNames())
	for _, name := range ProfileNames() {
		opts, err := Profile(name)
		require.NoError(t, err)
		assert.NoError(t, opts.Validate(), name)
	}

	_, err := Profile("nightcore")
	assert.Error(t, err)
}

func TestLoadOverProfile(t *testing.T) {
	t.Parallel()

	base, err := Profile("practice")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "judgeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 120\ninput_offset: 0.02\n"), 0o644))

	opts, err := LoadOver(path, base)
	require.NoError(t, err)
	assert.Equal(t, 6.0, opts.NoteSpeed)
	assert.True(t, opts.AutoSFX)
	assert.Equal(t, 120.0, opts.TickRate)
	assert.Equal(t, 0.02, opts.InputOffset)

	// the base is copied, not decoded into
	assert.Equal(t, 60.0, base.TickRate)
}
