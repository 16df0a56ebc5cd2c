package chart

import (
	"fmt"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/robmorgan/judgeline/kind"
	"github.com/robmorgan/judgeline/logger"
	"github.com/robmorgan/judgeline/note"
	"github.com/robmorgan/judgeline/rhythm"
	"github.com/robmorgan/judgeline/timing"
)

// LinkError reports a note or connector that refers to something it cannot.
type LinkError struct {
	ID     string
	Field  string
	Target string
	Reason string
}

func (e LinkError) Error() string {
	return fmt.Sprintf("note %q: %s %q: %s", e.ID, e.Field, e.Target, e.Reason)
}

// FieldError reports a value that could not be parsed.
type FieldError struct {
	ID  string
	Err error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("note %q: %v", e.ID, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// Built is a chart loaded into a level.
type Built struct {
	Timeline   *rhythm.Timeline
	Connectors []*note.Connector
	Groups     *Groups
	handles    map[string]note.Handle
}

// Handle returns the handle assigned to a chart note ID.
func (b *Built) Handle(id string) (note.Handle, bool) {
	h, ok := b.handles[id]
	return h, ok
}

// IDs lists the chart note IDs in sorted order.
func (b *Built) IDs() []string {
	ids := maps.Keys(b.handles)
	slices.Sort(ids)
	return ids
}

// Build adds the chart's notes and connectors to level and installs its groups.
func (c *Chart) Build(level *note.Level) (*Built, error) {
	log := logger.GetProjectLogger()

	changes := make([]rhythm.Change, 0, len(c.BPMs))
	for _, b := range c.BPMs {
		changes = append(changes, rhythm.Change{Beat: b.Beat, BPM: b.BPM})
	}
	tl, err := rhythm.NewTimeline(changes, c.BeatsPerBar)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	at := func(beat float64) float64 { return tl.Time(beat) + c.Offset }

	b := &Built{Timeline: tl, handles: make(map[string]note.Handle, len(c.Notes))}
	b.Groups = newGroups(c.Groups, at)
	level.Groups = b.Groups

	for i, cn := range c.Notes {
		id := cn.ID
		if id == "" {
			id = fmt.Sprintf("#%d", i)
		}
		if _, dup := b.handles[id]; dup {
			return nil, errors.WithStackTrace(LinkError{ID: id, Field: "id", Target: id, Reason: "duplicate id"})
		}
		d, err := cn.data(at)
		if err != nil {
			return nil, errors.WithStackTrace(FieldError{ID: id, Err: err})
		}
		b.handles[id] = level.Add(d)
	}

	for i, cn := range c.Notes {
		id := cn.ID
		if id == "" {
			id = fmt.Sprintf("#%d", i)
		}
		if err := b.link(level, id, cn); err != nil {
			return nil, errors.WithStackTrace(err)
		}
	}

	for _, cc := range c.Connectors {
		head, ok := b.handles[cc.Head]
		if !ok {
			return nil, errors.WithStackTrace(LinkError{ID: cc.Head, Field: "connector head", Target: cc.Head, Reason: "no such note"})
		}
		tail, ok := b.handles[cc.Tail]
		if !ok {
			return nil, errors.WithStackTrace(LinkError{ID: cc.Head, Field: "connector tail", Target: cc.Tail, Reason: "no such note"})
		}
		e, err := note.ParseEase(cc.Ease)
		if err != nil {
			return nil, errors.WithStackTrace(FieldError{ID: cc.Head, Err: err})
		}
		if hn, tn := level.Note(head), level.Note(tail); tn.Target <= hn.Target {
			log.WithFields(logrus.Fields{"head": cc.Head, "tail": cc.Tail}).Warn("zero-length slide segment")
		}
		b.Connectors = append(b.Connectors, level.NewConnector(head, tail, e, cc.Critical))
	}

	log.WithFields(logrus.Fields{
		"title":      c.Title,
		"notes":      level.Len(),
		"connectors": len(b.Connectors),
	}).Info("chart loaded")
	return b, nil
}

func (cn Note) data(at func(float64) float64) (note.Data, error) {
	cat, err := kind.ParseCategory(cn.Kind)
	if err != nil {
		return note.Data{}, err
	}
	role, err := kind.ParseRole(cn.Role)
	if err != nil {
		return note.Data{}, err
	}
	dir, err := note.ParseDirection(cn.Direction)
	if err != nil {
		return note.Data{}, err
	}
	e, err := note.ParseEase(cn.Ease)
	if err != nil {
		return note.Data{}, err
	}

	d := note.NewData(kind.Kind{Category: cat, Critical: cn.Critical, Role: role}, at(cn.Beat), cn.Lane, cn.Size)
	d.Direction = dir
	d.Ease = e
	d.Attached = cn.Attached
	d.Scored = !cn.Fake && cat != kind.Anchor
	if cn.Group != nil {
		d.Group = *cn.Group
	}
	return d, nil
}

func (b *Built) link(level *note.Level, id string, cn Note) error {
	n := level.Note(b.handles[id])
	resolve := func(field, ref string) (note.Handle, error) {
		if ref == "" {
			return note.NoHandle, nil
		}
		h, ok := b.handles[ref]
		if !ok {
			return note.NoHandle, LinkError{ID: id, Field: field, Target: ref, Reason: "no such note"}
		}
		if h == n.Handle() {
			return note.NoHandle, LinkError{ID: id, Field: field, Target: ref, Reason: "note links to itself"}
		}
		return h, nil
	}

	var err error
	if n.Head, err = resolve("head", cn.Head); err != nil {
		return err
	}
	if n.Tail, err = resolve("tail", cn.Tail); err != nil {
		return err
	}
	if n.Trigger, err = resolve("trigger", cn.Trigger); err != nil {
		return err
	}

	if !n.Attached {
		return nil
	}
	type endpoint struct {
		field string
		h     note.Handle
		name  string
	}
	for _, ref := range []endpoint{{"head", n.Head, cn.Head}, {"tail", n.Tail, cn.Tail}} {
		if !ref.h.Valid() {
			return LinkError{ID: id, Field: ref.field, Target: ref.name, Reason: "attached notes need a head and a tail"}
		}
		if level.Note(ref.h).Attached {
			return LinkError{ID: id, Field: ref.field, Target: ref.name, Reason: "cannot attach to an attached note"}
		}
	}
	return nil
}

// Groups holds the hidden time ranges of each timescale group.
type Groups struct {
	hidden map[int][]timing.Interval
}

func newGroups(groups []Group, at func(float64) float64) *Groups {
	g := &Groups{hidden: make(map[int][]timing.Interval, len(groups))}
	for _, group := range groups {
		for _, r := range group.Hidden {
			lo, hi := at(r[0]), at(r[1])
			if hi < lo {
				lo, hi = hi, lo
			}
			g.hidden[group.ID] = append(g.hidden[group.ID], timing.Interval{Start: lo, End: hi})
		}
	}
	return g
}

// Hidden reports whether the group is hidden at now.
func (g *Groups) Hidden(group int, now float64) bool {
	for _, r := range g.hidden[group] {
		if r.Contains(now) {
			return true
		}
	}
	return false
}

// String lists the hidden ranges for debugging.
func (g *Groups) String() string {
	ids := maps.Keys(g.hidden)
	slices.Sort(ids)
	var sb strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&sb, "group %d: %v\n", id, g.hidden[id])
	}
	return sb.String()
}
