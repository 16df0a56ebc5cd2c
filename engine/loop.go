package engine

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"github.com/robmorgan/judgeline/input"
	"github.com/robmorgan/judgeline/logger"
)

// Loop ticks an engine against a clock, pulling touches from a source.
type Loop struct {
	engine   *Engine
	source   input.Source
	clock    clock.Clock
	interval time.Duration
	// Origin is the raw time of the first tick. It defaults to the lead-in needed by the first note.
	Origin float64
}

// NewLoop creates a loop running at tickRate ticks per second.
func NewLoop(e *Engine, src input.Source, clk clock.Clock, tickRate float64) *Loop {
	origin := e.FirstStart()
	if origin > 0 {
		origin = 0
	}
	return &Loop{
		engine:   e,
		source:   src,
		clock:    clk,
		interval: time.Duration(float64(time.Second) / tickRate),
		Origin:   origin,
	}
}

// Run ticks until the engine is done or ctx is cancelled. It calls wg.Done before returning.
func (l *Loop) Run(ctx context.Context, wg *sync.WaitGroup) error {
	defer wg.Done()

	log := logger.GetProjectLogger()
	log.WithFields(logrus.Fields{"interval": l.interval, "origin": l.Origin}).Info("loop started")

	start := l.clock.Now()
	prev := l.Origin
	ticks := 0

	t := l.clock.NewTimer(l.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.WithField("ticks", ticks).Info("loop cancelled")
			return ctx.Err()
		case <-t.C():
			now := l.Origin + l.clock.Since(start).Seconds()
			l.engine.Update(now, l.source.Frame(prev, now))
			prev = now
			ticks++
			if l.engine.Done() {
				log.WithField("ticks", ticks).Info("loop finished")
				return nil
			}
			t.Reset(l.interval)
		}
	}
}

// Replay drives the engine at a fixed frame rate without a clock, from the engine's first
// start time until it is done or the time passes until. It returns the number of ticks run.
func Replay(e *Engine, src input.Source, fps, until float64) int {
	origin := e.FirstStart()
	if origin > 0 {
		origin = 0
	}
	prev := origin
	ticks := 0
	for now := origin; !e.Done() && now <= until; now = origin + float64(ticks)/fps {
		e.Update(now, src.Frame(prev, now))
		ticks++
		prev = now
	}
	return ticks
}
