package effect

import (
	"github.com/sirupsen/logrus"

	"github.com/robmorgan/judgeline/kind"
	"github.com/robmorgan/judgeline/note"
	"github.com/robmorgan/judgeline/rhythm"
)

// LogPresenter writes presentation events to a logger. Draw calls are logged at trace level.
type LogPresenter struct {
	log      *logrus.Entry
	timeline *rhythm.Timeline
	// Spread is the accuracy span over which hit colours fade to white.
	Spread float64
}

// NewLogPresenter creates a presenter that logs through log. When timeline is non-nil, auto SFX
// entries carry their bar and beat.
func NewLogPresenter(log *logrus.Entry, timeline *rhythm.Timeline) *LogPresenter {
	return &LogPresenter{log: log, timeline: timeline, Spread: 0.125}
}

func (p *LogPresenter) DrawNote(d note.Draw) {
	p.log.WithFields(logrus.Fields{
		"note":     d.Handle,
		"kind":     d.Kind.String(),
		"lane":     d.Lane,
		"progress": d.Progress,
	}).Trace("draw note")
}

func (p *LogPresenter) DrawConnector(d note.ConnectorDraw) {
	p.log.WithFields(logrus.Fields{
		"head":   d.Head,
		"tail":   d.Tail,
		"active": d.Active,
	}).Trace("draw connector")
}

func (p *LogPresenter) DrawCombo(combo int) {
	p.log.WithField("combo", combo).Trace("draw combo")
}

func (p *LogPresenter) PlayHitEffects(h Hit) {
	fields := logrus.Fields{
		"note":     h.Handle,
		"kind":     h.Kind.String(),
		"effect":   h.Effect.String(),
		"judgment": h.Judgment.String(),
		"accuracy": h.Accuracy,
		"color":    AccuracyColor(h.Judgment, h.Accuracy, p.Spread).Hex(),
	}
	if h.WrongWay {
		fields["wrong_way"] = true
	}
	p.log.WithFields(fields).Info("hit")
}

func (p *LogPresenter) PlayEmptyTouchEffect(lane float64) {
	p.log.WithField("lane", lane).Debug("empty touch")
}

func (p *LogPresenter) ScheduleAutoSFX(k kind.Kind, target float64) {
	entry := p.log.WithFields(logrus.Fields{"kind": k.String(), "at": target})
	if p.timeline != nil {
		entry = entry.WithField("position", p.timeline.Snapshot(target).String())
	}
	entry.Debug("schedule sfx")
}
