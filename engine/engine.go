package engine

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/robmorgan/judgeline/config"
	"github.com/robmorgan/judgeline/effect"
	"github.com/robmorgan/judgeline/input"
	"github.com/robmorgan/judgeline/logger"
	"github.com/robmorgan/judgeline/note"
	"github.com/robmorgan/judgeline/score"
)

// Engine advances a level one tick at a time. Each tick runs an ordered sequential pass
// (connectors, then notes in spawn order), a touch pass, a commit step that reports resolved
// notes, and a draw pass that may compute draw commands in parallel.
type Engine struct {
	level     *note.Level
	presenter effect.Presenter
	sink      score.Sink
	opts      config.Options
	log       *logrus.Entry

	arbiter *input.Arbiter
	combo   ComboTracker

	pending    []note.Handle
	live       []note.Handle
	connectors []*note.Connector
	active     []*note.Connector

	prev    float64
	started bool
}

// New prepares an engine for level. Notes and connectors spawn in start-time order.
func New(level *note.Level, connectors []*note.Connector, presenter effect.Presenter, sink score.Sink, opts config.Options) *Engine {
	level.WatchMode = opts.WatchMode

	pending := make([]note.Handle, level.Len())
	for i := range pending {
		pending[i] = note.Handle(i)
	}
	slices.SortStableFunc(pending, func(a, b note.Handle) bool {
		return level.Note(a).StartTime() < level.Note(b).StartTime()
	})

	sorted := slices.Clone(connectors)
	slices.SortStableFunc(sorted, func(a, b *note.Connector) bool {
		return a.StartTime() < b.StartTime()
	})

	if opts.DrawWorkers < 1 {
		opts.DrawWorkers = 1
	}
	return &Engine{
		level:      level,
		presenter:  presenter,
		sink:       sink,
		opts:       opts,
		log:        logger.GetProjectLogger(),
		arbiter:    input.NewArbiter(),
		pending:    pending,
		connectors: sorted,
	}
}

// FirstStart is the earliest time any note or connector goes live, or 0 for an empty level.
func (e *Engine) FirstStart() float64 {
	if len(e.pending) == 0 {
		return 0
	}
	return e.level.Note(e.pending[0]).StartTime()
}

// Done reports whether every note has left play.
func (e *Engine) Done() bool {
	return len(e.pending) == 0 && len(e.live) == 0 && len(e.connectors) == 0 && len(e.active) == 0
}

// Combo returns the combo tracker.
func (e *Engine) Combo() *ComboTracker {
	return &e.combo
}

// Update runs one tick at raw time now with the touches sampled for it.
func (e *Engine) Update(now float64, touches []input.Touch) {
	frame := &input.Frame{Prev: e.prev, Now: now, Touches: touches}
	if !e.started {
		frame.Prev = now
		e.started = true
	}
	s := &note.Step{Frame: frame, Arbiter: e.arbiter}

	e.spawn(now)

	for _, c := range e.active {
		c.UpdateSequential(s)
	}
	for _, h := range e.live {
		e.level.Note(h).UpdateSequential(s)
	}
	for _, h := range e.live {
		e.level.Note(h).HandleTouches(s)
	}
	for _, t := range frame.Touches {
		if t.Started && e.arbiter.IsEmpty(t.ID) {
			e.presenter.PlayEmptyTouchEffect(t.Position.X)
		}
	}

	e.commit()
	e.retireConnectors(now)
	e.draw(now)

	e.arbiter.EndFrame(frame)
	e.prev = now
}

func (e *Engine) spawn(now float64) {
	n := 0
	for n < len(e.pending) && e.level.Note(e.pending[n]).StartTime() <= now {
		h := e.pending[n]
		nt := e.level.Note(h)
		e.insertLive(h)
		if e.opts.AutoSFX && nt.Scored {
			e.presenter.ScheduleAutoSFX(nt.Kind, nt.Target)
		}
		n++
	}
	e.pending = e.pending[n:]

	n = 0
	for n < len(e.connectors) && e.connectors[n].StartTime() <= now {
		e.active = append(e.active, e.connectors[n])
		n++
	}
	e.connectors = e.connectors[n:]
}

// insertLive keeps the live list ordered by target time, then handle.
func (e *Engine) insertLive(h note.Handle) {
	target := e.level.Note(h).Target
	i := len(e.live)
	for i > 0 {
		prev := e.level.Note(e.live[i-1])
		if prev.Target < target || (prev.Target == target && prev.Handle() < h) {
			break
		}
		i--
	}
	e.live = slices.Insert(e.live, i, h)
}

// commit reports notes resolved this tick in spawn order and drops them from the live list.
func (e *Engine) commit() {
	kept := e.live[:0]
	for _, h := range e.live {
		n := e.level.Note(h)
		if !n.Despawned() {
			kept = append(kept, h)
			continue
		}
		r := n.Result()
		if !n.Scored || !r.Judgment.Resolved() {
			continue
		}
		e.sink.Record(n.Kind, r.Judgment, r.Accuracy)
		e.combo.Record(r.Judgment)
		if r.PlayEffects {
			e.presenter.PlayHitEffects(effect.NewHit(n))
		}
		e.log.WithFields(logrus.Fields{
			"note":     h,
			"kind":     n.Kind.String(),
			"judgment": r.Judgment.String(),
			"accuracy": r.Accuracy,
			"combo":    e.combo.Current(),
		}).Debug("judged")
	}
	e.live = kept
}

func (e *Engine) retireConnectors(now float64) {
	kept := e.active[:0]
	for _, c := range e.active {
		if !c.Done(now) {
			kept = append(kept, c)
		}
	}
	e.active = kept
}

// draw computes note draw commands, in parallel when enabled, and emits them in live order.
func (e *Engine) draw(now float64) {
	draws := make([]note.Draw, len(e.live))
	visible := make([]bool, len(e.live))
	compute := func(i int) {
		draws[i], visible[i] = e.level.Note(e.live[i]).Draw(now)
	}

	if e.opts.ParallelDraw && len(e.live) > 1 {
		var g errgroup.Group
		g.SetLimit(e.opts.DrawWorkers)
		for i := range e.live {
			i := i
			g.Go(func() error {
				compute(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range e.live {
			compute(i)
		}
	}

	for _, c := range e.active {
		if d, ok := c.Draw(now); ok {
			e.presenter.DrawConnector(d)
		}
	}
	for i, d := range draws {
		if visible[i] {
			e.presenter.DrawNote(d)
		}
	}
	e.presenter.DrawCombo(e.combo.Current())
}
