package note

import (
	"math"

	"github.com/robmorgan/judgeline/engine/scale"
	"github.com/robmorgan/judgeline/kind"
	"github.com/robmorgan/judgeline/timing"
)

const (
	// FlickSpeedThreshold is the minimum touch speed, in lane widths per second, that counts as a flick.
	FlickSpeedThreshold = 6.0
	// DirectionTolerance is the largest angle, in radians, between a flick and its target direction.
	DirectionTolerance = 1.0

	tickFailAccuracy   = 0.125
	damageFailAccuracy = 0.125

	noTouch = -1
)

// Data is the static chart data of a note.
type Data struct {
	Kind kind.Kind
	// Target is the chart time the note should be hit at, in seconds.
	Target    float64
	Lane      float64
	Size      float64
	Direction Direction

	// Head and Tail link a slide member to the notes that bound its segment.
	// Attached notes take their lane and size from the segment at their target time.
	Head     Handle
	Tail     Handle
	Attached bool
	Ease     Ease

	// Trigger links a tick to the slide head whose connector completes it.
	Trigger Handle

	// Scored is false for fake notes, which are drawn but never judged.
	Scored bool
	Group  int
}

// NewData returns standalone data with all links unset.
func NewData(k kind.Kind, target, lane, size float64) Data {
	return Data{
		Kind:    k,
		Target:  target,
		Lane:    lane,
		Size:    size,
		Head:    NoHandle,
		Tail:    NoHandle,
		Trigger: NoHandle,
		Scored:  true,
		Group:   -1,
	}
}

// Result is the outcome of a resolved note.
type Result struct {
	Judgment timing.Judgment
	// Accuracy is the signed timing error in seconds credited to the note.
	Accuracy    float64
	PlayEffects bool
	WrongWay    bool
}

// ConnectorInfo is written each tick by the connector whose head is this note.
type ConnectorInfo struct {
	Active  bool
	Held    bool
	TouchID int
	Lane    float64
	Size    float64
}

// Note is a single judged (or decorative) object in the chart.
type Note struct {
	Data

	handle Handle
	level  *Level

	initialized   bool
	window        timing.Window
	inputInterval timing.Interval
	judgeInterval timing.Interval
	hitbox        Rect

	// best is the raw time of the closest-to-target candidate seen so far by trace kinds.
	hasBest   bool
	bestTime  float64
	bestDirOK bool

	// captured is the touch claimed by this note, with the raw time it was claimed at.
	captured     int
	capturedTime float64

	despawn bool
	result  Result

	Connector ConnectorInfo
}

// Handle returns the note's handle within its level.
func (n *Note) Handle() Handle {
	return n.handle
}

// EnsureInitialized computes the cached window, intervals and hitbox. Head and tail notes of an
// attached note are initialized first. Calling it again is a no-op.
func (n *Note) EnsureInitialized() {
	if n.initialized {
		return
	}
	n.initialized = true

	if n.Attached {
		for _, h := range []Handle{n.Head, n.Tail} {
			n.level.Note(h).EnsureInitialized()
		}
	}

	n.window = timing.ForKind(n.Kind)
	n.judgeInterval = n.window.Bad.Shift(n.Target)
	n.inputInterval = n.judgeInterval.Shift(n.level.InputOffset)
	n.hitbox = laneHitbox(n.CurrentLane(), n.CurrentSize(), n.Kind.Leniency())
}

// CurrentLane is the lane the note is judged at. Attached notes interpolate between their
// head and tail on each call.
func (n *Note) CurrentLane() float64 {
	if !n.Attached {
		return n.Lane
	}
	head, tail, x := n.segment()
	return scale.Lerp(head.CurrentLane(), tail.CurrentLane(), x)
}

// CurrentSize is the half-width the note is judged at.
func (n *Note) CurrentSize() float64 {
	if !n.Attached {
		return n.Size
	}
	head, tail, x := n.segment()
	return scale.Lerp(head.CurrentSize(), tail.CurrentSize(), x)
}

func (n *Note) segment() (*Note, *Note, float64) {
	head := n.level.Note(n.Head)
	tail := n.level.Note(n.Tail)
	x := scale.Clamp(scale.Unlerp(head.Target, tail.Target, n.Target), 0, 1)
	return head, tail, n.Ease.Func()(x)
}

// Window returns the note's judgment window.
func (n *Note) Window() timing.Window {
	n.EnsureInitialized()
	return n.window
}

// InputInterval is the raw-time span in which touches can affect the note.
func (n *Note) InputInterval() timing.Interval {
	n.EnsureInitialized()
	return n.inputInterval
}

// JudgeInterval is the chart-time span the note can be judged in.
func (n *Note) JudgeInterval() timing.Interval {
	n.EnsureInitialized()
	return n.judgeInterval
}

// Hitbox returns the cached hitbox.
func (n *Note) Hitbox() Rect {
	n.EnsureInitialized()
	return n.hitbox
}

// StartTime is the raw time the note must become live: the earlier of its visual spawn
// and the start of its input interval.
func (n *Note) StartTime() float64 {
	n.EnsureInitialized()
	return math.Min(n.level.Transform.SpawnTime(n.Target), n.inputInterval.Start)
}

// Despawned reports whether the note has resolved or otherwise left play.
func (n *Note) Despawned() bool {
	return n.despawn
}

// Result returns the outcome; meaningful once Despawned is true.
func (n *Note) Result() Result {
	return n.result
}

// CapturedTouch returns the touch this note claimed, if any.
func (n *Note) CapturedTouch() (int, bool) {
	return n.captured, n.captured != noTouch
}

func (n *Note) needsDirection() bool {
	in := n.Kind.Input()
	return (in == kind.FlickInput || in == kind.TraceFlickInput) && !n.Direction.Omni()
}

func (n *Note) directionMatches(angle float64) bool {
	if !n.needsDirection() {
		return true
	}
	return math.Abs(angleDiff(angle, n.Direction.Angle())) <= DirectionTolerance
}
