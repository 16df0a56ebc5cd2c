package note

import (
	"math"

	"github.com/robmorgan/judgeline/engine/scale"
	"github.com/robmorgan/judgeline/timing"
)

// connectorLeniency is how far past the slide body a held touch still counts.
const connectorLeniency = 1.0

// Connector is the slide body between two notes. It tracks whether the slide is held and
// publishes that on its head note.
type Connector struct {
	Head     Handle
	Tail     Handle
	Ease     Ease
	Critical bool

	level *Level
}

// ConnectorDraw is the presentation command for a visible slide segment.
type ConnectorDraw struct {
	Head, Tail Handle
	Critical   bool
	Active     bool
	// HeadProgress and TailProgress are the clamped approach progress at each end.
	HeadProgress float64
	TailProgress float64
	HeadLane     float64
	HeadSize     float64
	TailLane     float64
	TailSize     float64
}

// NewConnector links head and tail in l.
func (l *Level) NewConnector(head, tail Handle, e Ease, critical bool) *Connector {
	return &Connector{Head: head, Tail: tail, Ease: e, Critical: critical, level: l}
}

// StartTime is the raw time the connector must become live.
func (c *Connector) StartTime() float64 {
	return c.level.Note(c.Head).StartTime()
}

// Done reports whether the connector can leave play.
func (c *Connector) Done(now float64) bool {
	tail := c.level.Note(c.Tail)
	return tail.Despawned() && c.level.adjusted(now) > tail.Target
}

func (c *Connector) at(t float64) (lane, size float64) {
	head := c.level.Note(c.Head)
	tail := c.level.Note(c.Tail)
	x := c.Ease.Func()(scale.Clamp(scale.Unlerp(head.Target, tail.Target, t), 0, 1))
	return scale.Lerp(head.CurrentLane(), tail.CurrentLane(), x), scale.Lerp(head.CurrentSize(), tail.CurrentSize(), x)
}

// UpdateSequential refreshes the head note's ConnectorInfo. It runs before any note in the tick.
func (c *Connector) UpdateSequential(s *Step) {
	head := c.level.Note(c.Head)
	tail := c.level.Note(c.Tail)
	head.EnsureInitialized()
	tail.EnsureInitialized()

	info := ConnectorInfo{TouchID: noTouch}
	now := c.level.adjusted(s.Frame.Now)
	if now < head.Target || now > tail.Target || tail.Despawned() || !headHit(head) {
		head.Connector = info
		return
	}

	info.Active = true
	info.Lane, info.Size = c.at(now)
	box := laneHitbox(info.Lane, info.Size, connectorLeniency)
	for _, t := range s.Frame.Touches {
		if t.Ended || !box.Contains(t.Position) {
			continue
		}
		if !info.Held || t.ID == head.captured {
			info.Held = true
			info.TouchID = t.ID
		}
	}
	head.Connector = info
}

// headHit reports whether the slide was started: fake heads always count.
func headHit(head *Note) bool {
	if !head.Scored {
		return true
	}
	return head.Despawned() && head.result.Judgment != timing.Miss
}

// Draw computes the visible segment at raw time now.
func (c *Connector) Draw(now float64) (ConnectorDraw, bool) {
	head := c.level.Note(c.Head)
	tail := c.level.Note(c.Tail)
	tr := c.level.Transform
	hp := tr.ProgressTo(head.Target, now)
	tp := tr.ProgressTo(tail.Target, now)
	lo, hi := tr.MinProgress(), tr.MaxProgress()
	if hp < lo || tp > hi || c.Done(now) || c.level.hidden(head.Group, now) {
		return ConnectorDraw{}, false
	}
	hp = math.Min(hp, math.Min(hi, 1))
	tp = math.Max(tp, lo)

	d := ConnectorDraw{
		Head:         c.Head,
		Tail:         c.Tail,
		Critical:     c.Critical,
		Active:       head.Connector.Active,
		HeadProgress: hp,
		TailProgress: tp,
	}
	// a clamped end is drawn at the chart time whose progress equals the clamp
	d.HeadLane, d.HeadSize = c.at(now + (1-hp)*tr.PreemptTime())
	d.TailLane, d.TailSize = c.at(now + (1-tp)*tr.PreemptTime())
	return d, true
}
