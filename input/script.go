package input

import (
	"fmt"
	"math"
	"os"

	"github.com/gruntwork-io/go-commons/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Trajectory is a scripted touch moving at constant velocity between Start and End.
type Trajectory struct {
	ID    int     `yaml:"id"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	VX    float64 `yaml:"vx"`
	VY    float64 `yaml:"vy"`
}

func (tr Trajectory) at(t float64) Vec {
	dt := t - tr.Start
	return Vec{X: tr.X + tr.VX*dt, Y: tr.Y + tr.VY*dt}
}

// Script replays a fixed set of touch trajectories. It implements Source.
type Script struct {
	Touches []Trajectory `yaml:"touches"`
}

// NewScript returns a script ordered by start time.
func NewScript(touches ...Trajectory) *Script {
	s := &Script{Touches: append([]Trajectory(nil), touches...)}
	s.sort()
	return s
}

func (s *Script) sort() {
	slices.SortStableFunc(s.Touches, func(a, b Trajectory) bool {
		return a.Start < b.Start
	})
}

// LoadScript reads a YAML touch script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML touch script.
func ParseScript(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.WithStackTraceAndPrefix(err, "parsing touch script")
	}
	for _, tr := range s.Touches {
		if tr.End < tr.Start {
			return nil, errors.WithStackTrace(ScriptError{ID: tr.ID, Reason: "ends before it starts"})
		}
	}
	s.sort()
	return s, nil
}

// Frame samples every trajectory alive during (prev, now].
func (s *Script) Frame(prev, now float64) []Touch {
	touches := make([]Touch, 0)
	for _, tr := range s.Touches {
		if tr.Start > now {
			break
		}
		if tr.End <= prev {
			continue
		}
		t := math.Min(now, tr.End)
		touches = append(touches, Touch{
			ID:           tr.ID,
			Position:     tr.at(t),
			PrevPosition: tr.at(math.Max(prev, tr.Start)),
			StartTime:    tr.Start,
			Time:         t,
			Started:      tr.Start > prev,
			Ended:        tr.End <= now,
			Speed:        math.Hypot(tr.VX, tr.VY),
		})
	}
	return touches
}

// ScriptError reports an invalid trajectory.
type ScriptError struct {
	ID     int
	Reason string
}

func (e ScriptError) Error() string {
	return fmt.Sprintf("touch %d: %s", e.ID, e.Reason)
}
