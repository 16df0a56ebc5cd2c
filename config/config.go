package config

import (
	"fmt"
	"os"

	"github.com/gruntwork-io/go-commons/errors"
	"gopkg.in/yaml.v3"

	"github.com/robmorgan/judgeline/approach"
)

// Options configures a judgment session.
type Options struct {
	NoteSpeed     float64 `yaml:"note_speed"`
	ApproachCurve string  `yaml:"approach_curve"`
	// InputOffset is subtracted from raw touch times before judging, in seconds.
	InputOffset float64 `yaml:"input_offset"`
	StageCover  float64 `yaml:"stage_cover"`
	Hidden      float64 `yaml:"hidden"`
	AutoSFX     bool    `yaml:"auto_sfx"`
	// WatchMode reports bad-tier hits as auto.
	WatchMode    bool    `yaml:"watch_mode"`
	TickRate     float64 `yaml:"tick_rate"`
	ParallelDraw bool    `yaml:"parallel_draw"`
	DrawWorkers  int     `yaml:"draw_workers"`
	LogLevel     string  `yaml:"log_level"`
}

// NewOptions returns options with reasonable defaults for real usage.
func NewOptions() Options {
	return Options{
		NoteSpeed:     10,
		ApproachCurve: approach.DefaultCurve.String(),
		TickRate:      60,
		ParallelDraw:  true,
		DrawWorkers:   4,
		LogLevel:      "info",
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Options, error) {
	return LoadOver(path, NewOptions())
}

// LoadOver reads a YAML file over base, so fields the file leaves out keep base's values.
func LoadOver(path string, base Options) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.WithStackTrace(err)
	}
	return ParseOver(data, base)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Options, error) {
	return ParseOver(data, NewOptions())
}

// ParseOver decodes YAML over base and validates the result.
func ParseOver(data []byte, base Options) (Options, error) {
	opts := base
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, errors.WithStackTraceAndPrefix(err, "parsing config")
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// ValidationError reports an out-of-range option.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate rejects values the engine cannot run with.
func (o Options) Validate() error {
	switch {
	case o.NoteSpeed < 1 || o.NoteSpeed > 12:
		return ValidationError{Field: "note_speed", Reason: fmt.Sprintf("%g is outside [1, 12]", o.NoteSpeed)}
	case o.StageCover < 0 || o.StageCover > 1:
		return ValidationError{Field: "stage_cover", Reason: fmt.Sprintf("%g is outside [0, 1]", o.StageCover)}
	case o.Hidden < 0 || o.Hidden > 1:
		return ValidationError{Field: "hidden", Reason: fmt.Sprintf("%g is outside [0, 1]", o.Hidden)}
	case o.StageCover+o.Hidden >= 1:
		return ValidationError{Field: "hidden", Reason: "stage_cover and hidden leave nothing visible"}
	case o.TickRate <= 0:
		return ValidationError{Field: "tick_rate", Reason: "must be positive"}
	case o.DrawWorkers < 1:
		return ValidationError{Field: "draw_workers", Reason: "must be at least 1"}
	}
	if _, err := approach.ParseCurve(o.ApproachCurve); err != nil {
		return ValidationError{Field: "approach_curve", Reason: err.Error()}
	}
	return nil
}

// Transform builds the approach transform the options describe.
func (o Options) Transform() (*approach.Transform, error) {
	curve, err := approach.ParseCurve(o.ApproachCurve)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	return approach.New(o.NoteSpeed, curve, o.StageCover, o.Hidden), nil
}
