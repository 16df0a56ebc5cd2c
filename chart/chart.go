package chart

import (
	"os"

	"github.com/gruntwork-io/go-commons/errors"
	"gopkg.in/yaml.v3"
)

// Chart is the on-disk chart format. Positions are given in beats and converted to seconds
// through the tempo changes.
type Chart struct {
	Title string `yaml:"title"`
	// Offset is added to every converted time, in seconds.
	Offset      float64     `yaml:"offset"`
	BeatsPerBar int         `yaml:"beats_per_bar"`
	BPMs        []BPM       `yaml:"bpms"`
	Groups      []Group     `yaml:"groups"`
	Notes       []Note      `yaml:"notes"`
	Connectors  []Connector `yaml:"connectors"`
}

type BPM struct {
	Beat float64 `yaml:"beat"`
	BPM  float64 `yaml:"bpm"`
}

// Group is a timescale group. Its notes are not drawn during the hidden beat ranges.
type Group struct {
	ID     int          `yaml:"id"`
	Hidden [][2]float64 `yaml:"hidden"`
}

// Note is one chart note. Head, Tail and Trigger refer to other notes by ID.
type Note struct {
	ID        string  `yaml:"id"`
	Kind      string  `yaml:"kind"`
	Critical  bool    `yaml:"critical"`
	Role      string  `yaml:"role"`
	Beat      float64 `yaml:"beat"`
	Lane      float64 `yaml:"lane"`
	Size      float64 `yaml:"size"`
	Direction string  `yaml:"direction"`
	Head      string  `yaml:"head"`
	Tail      string  `yaml:"tail"`
	Attached  bool    `yaml:"attached"`
	Ease      string  `yaml:"ease"`
	Trigger   string  `yaml:"trigger"`
	Fake      bool    `yaml:"fake"`
	Group     *int    `yaml:"group"`
}

type Connector struct {
	Head     string `yaml:"head"`
	Tail     string `yaml:"tail"`
	Ease     string `yaml:"ease"`
	Critical bool   `yaml:"critical"`
}

// Load reads a chart file.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	return Parse(data)
}

// Parse decodes a chart.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "parsing chart")
	}
	return &c, nil
}
