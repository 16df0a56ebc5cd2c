package note

import (
	"math"

	"github.com/robmorgan/judgeline/input"
	"github.com/robmorgan/judgeline/kind"
)

// Step is the per-tick context shared by every note update.
type Step struct {
	Frame   *input.Frame
	Arbiter *input.Arbiter
}

// crossedTarget reports whether the target was passed between the previous tick and this one.
func (n *Note) crossedTarget(s *Step) bool {
	prev := n.level.adjusted(s.Frame.Prev)
	now := n.level.adjusted(s.Frame.Now)
	return prev < n.Target && n.Target <= now
}

// UpdateSequential runs the order-dependent part of a tick: late handling, deferred
// resolution, connector triggers and touch claiming.
func (n *Note) UpdateSequential(s *Step) {
	if n.despawn {
		return
	}
	n.EnsureInitialized()
	now := s.Frame.Now

	if !n.Scored || n.Kind.Input() == kind.NoInput {
		if n.level.adjusted(now) >= n.Target {
			n.despawn = true
		}
		return
	}

	if now > n.inputInterval.End {
		n.handleLate()
		return
	}
	if n.shouldDoDelayedTrigger(s) {
		n.judgeBest()
		return
	}
	if n.triggered(s) {
		n.complete()
		return
	}
	if !n.inputInterval.Contains(now) || n.captured != noTouch {
		return
	}
	switch {
	case n.Kind.ClaimsTap():
		if !n.adoptHeldTouch(s) {
			n.claimTap(s)
		}
	case n.Kind.ClaimsRelease():
		n.claimRelease(s)
	}
}

func (n *Note) handleLate() {
	switch n.Kind.Input() {
	case kind.TickInput:
		n.failLate(tickFailAccuracy)
	case kind.DamageInput:
		n.completeSilent()
	default:
		if n.hasBest {
			n.judgeBest()
			return
		}
		n.failLate(n.window.Bad.End)
	}
}

// triggered reports whether a tick's slide has been held through its target time.
func (n *Note) triggered(s *Step) bool {
	if n.Kind.Input() != kind.TickInput || !n.Trigger.Valid() {
		return false
	}
	head := n.level.Note(n.Trigger)
	return head.Connector.Held && n.level.adjusted(s.Frame.Now) >= n.Target
}

func (n *Note) claimTap(s *Step) {
	for _, t := range s.Frame.Touches {
		if !t.Started || !n.inputInterval.Contains(t.StartTime) || !n.hitbox.Contains(t.Position) {
			continue
		}
		if s.Arbiter.ClaimTap(t.ID, int(n.handle)) {
			n.captured = t.ID
			n.capturedTime = t.StartTime
			return
		}
	}
}

// adoptHeldTouch hands a flick tail the touch still holding its slide. The head keeps the
// arbiter claim, so the touch is taken over directly.
func (n *Note) adoptHeldTouch(s *Step) bool {
	if n.Kind.Input() != kind.FlickInput {
		return false
	}
	head, ok := n.level.Lookup(n.Head)
	if !ok {
		return false
	}
	for _, t := range s.Frame.Touches {
		if t.Ended {
			continue
		}
		if t.ID == head.captured || (head.Connector.Held && t.ID == head.Connector.TouchID) {
			n.captured = t.ID
			n.capturedTime = t.StartTime
			return true
		}
	}
	return false
}

// claimRelease takes a touch that ended inside the hitbox, or the touch holding the slide head.
func (n *Note) claimRelease(s *Step) {
	headTouch := noTouch
	if head, ok := n.level.Lookup(n.Head); ok {
		headTouch = head.captured
	}
	for _, t := range s.Frame.Touches {
		if !t.Ended || !n.inputInterval.Contains(t.Time) {
			continue
		}
		if !n.hitbox.Contains(t.Position) && (headTouch == noTouch || t.ID != headTouch) {
			continue
		}
		if s.Arbiter.ClaimRelease(t.ID, int(n.handle)) {
			n.captured = t.ID
			n.capturedTime = t.Time
			return
		}
	}
}

// shouldDoDelayedTrigger decides whether a trace-family note with a recorded best candidate
// should resolve now rather than wait for a candidate closer to the target.
func (n *Note) shouldDoDelayedTrigger(s *Step) bool {
	in := n.Kind.Input()
	if in != kind.TraceInput && in != kind.TraceFlickInput {
		return false
	}
	if n.crossedTarget(s) || s.Frame.Now > n.inputInterval.End || !n.hasBest {
		return false
	}

	now := n.level.adjusted(s.Frame.Now)
	perfectEnd := n.Target + n.window.Perfect.End
	if !n.bestDirOK && now < perfectEnd {
		// a correct flick may still arrive
		return false
	}

	symmetric := n.Target + math.Abs(n.level.adjusted(n.bestTime)-n.Target)
	if now >= symmetric {
		return true
	}
	if now < perfectEnd {
		return false
	}
	for _, t := range s.Frame.Touches {
		if !t.Ended && n.hitbox.Contains(t.Position) {
			return false
		}
	}
	return true
}

// HandleTouches runs the touch phase for the note's input mode.
func (n *Note) HandleTouches(s *Step) {
	if n.despawn || !n.Scored {
		return
	}
	n.EnsureInitialized()
	if !n.touchable(s.Frame.Now) {
		return
	}

	switch n.Kind.Input() {
	case kind.TapInput:
		n.markStarted(s)
		if n.captured != noTouch {
			n.judge(n.capturedTime)
		}
	case kind.FlickInput:
		n.markStarted(s)
		n.handleFlick(s)
	case kind.TraceInput:
		n.markStarted(s)
		n.handleTrace(s)
	case kind.TraceFlickInput:
		n.markStarted(s)
		n.handleTraceFlick(s)
	case kind.ReleaseInput:
		if n.captured != noTouch {
			n.judge(n.capturedTime)
		}
	case kind.TickInput:
		n.handleTick(s)
	case kind.DamageInput:
		n.handleDamage(s)
	case kind.NoInput:
	}
}

// touchable reports whether touches can act on the note at raw time now. Ticks answer for as
// long as they are on screen; the late path still retires them at the interval end.
func (n *Note) touchable(now float64) bool {
	if n.Kind.Input() == kind.TickInput {
		return now >= n.StartTime() && now <= n.inputInterval.End
	}
	return n.inputInterval.Contains(now)
}

// markStarted consumes fresh touches landing on the note so they do not play empty-touch effects.
func (n *Note) markStarted(s *Step) {
	for _, t := range s.Frame.Touches {
		if t.Started && n.hitbox.Contains(t.Position) {
			s.Arbiter.MarkNotEmpty(t.ID)
		}
	}
}

func (n *Note) handleFlick(s *Step) {
	if n.captured == noTouch {
		return
	}
	wrongWay := math.NaN()
	for _, t := range s.Frame.Touches {
		if t.StartTime < n.capturedTime || t.Speed < FlickSpeedThreshold {
			continue
		}
		if !n.hitbox.Contains(t.Position) && !n.hitbox.Contains(t.PrevPosition) {
			continue
		}
		if n.directionMatches(t.Direction()) {
			n.judge(t.Time)
			return
		}
		if math.IsNaN(wrongWay) {
			wrongWay = t.Time
		}
	}
	if !math.IsNaN(wrongWay) {
		n.judgeWrongWay(wrongWay)
	}
}

func (n *Note) handleTrace(s *Step) {
	for _, t := range s.Frame.Touches {
		if !n.hitbox.Contains(t.Position) {
			continue
		}
		n.traceHit(s, true)
		return
	}
}

// handleTraceFlick tracks presence like a trace and, separately, whether any touch in the
// hitbox is flicking the right way.
func (n *Note) handleTraceFlick(s *Step) {
	present, dirOK := false, false
	for _, t := range s.Frame.Touches {
		if !n.hitbox.Contains(t.Position) {
			continue
		}
		present = true
		if t.Speed >= FlickSpeedThreshold && n.directionMatches(t.Direction()) {
			dirOK = true
			break
		}
	}
	if present {
		n.traceHit(s, dirOK)
	}
}

// traceHit handles a qualifying touch for the trace family: complete on the crossing tick,
// judge if already late, otherwise keep the closest candidate.
func (n *Note) traceHit(s *Step, dirOK bool) {
	now := s.Frame.Now
	switch {
	case n.crossedTarget(s):
		if dirOK {
			n.complete()
		} else {
			n.completeWrongWay()
		}
	case n.level.adjusted(now) > n.Target:
		if dirOK {
			n.judge(now)
		} else {
			n.judgeWrongWay(now)
		}
	default:
		perfectStart := n.Target + n.window.Perfect.Start
		if dirOK || !n.hasBest || n.level.adjusted(n.bestTime) < perfectStart {
			n.hasBest = true
			n.bestTime = now
			n.bestDirOK = dirOK
		}
	}
}

func (n *Note) handleTick(s *Step) {
	for _, t := range s.Frame.Touches {
		if n.hitbox.Contains(t.Position) {
			n.complete()
			return
		}
	}
}

// handleDamage settles a damage note on the first tick at or after its target.
func (n *Note) handleDamage(s *Step) {
	if n.level.adjusted(s.Frame.Now) < n.Target {
		return
	}
	for _, t := range s.Frame.Touches {
		if !t.Ended && n.hitbox.Contains(t.Position) {
			n.fail(damageFailAccuracy)
			return
		}
	}
	n.completeSilent()
}
