package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"k8s.io/utils/clock"

	"github.com/robmorgan/judgeline/chart"
	"github.com/robmorgan/judgeline/config"
	"github.com/robmorgan/judgeline/effect"
	"github.com/robmorgan/judgeline/engine"
	"github.com/robmorgan/judgeline/input"
	"github.com/robmorgan/judgeline/logger"
	"github.com/robmorgan/judgeline/note"
	"github.com/robmorgan/judgeline/score"
	"github.com/robmorgan/judgeline/timing"
)

var (
	chartPath   = kingpin.Arg("chart", "Chart file").Required().ExistingFile()
	touchesPath = kingpin.Flag("touches", "Touch script to replay").Short('t').ExistingFile()
	configPath  = kingpin.Flag("config", "Options file").Short('c').ExistingFile()
	profileName = kingpin.Flag("profile", "Built-in option preset").Default("standard").Enum(config.ProfileNames()...)
	fps         = kingpin.Flag("fps", "Tick rate, overrides tick_rate").Float64()
	offset      = kingpin.Flag("offset", "Input offset").Short('o').Duration()
	speed       = kingpin.Flag("speed", "Note speed, 1 to 12").Short('s').Float64()
	curve       = kingpin.Flag("curve", "Approach curve").Enum("default", "alternative")
	logLevel    = kingpin.Flag("log-level", "Log level").String()
	realtime    = kingpin.Flag("realtime", "Run against the wall clock instead of replaying").Bool()
	watch       = kingpin.Flag("watch", "Watch mode").Bool()
)

func main() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	if err := Run(context.Background()); err != nil {
		logger.GetProjectLogger().Fatalf("judgeline failed: %v", errors.PrintErrorWithStackTrace(err))
	}
}

func loadOptions() (config.Options, error) {
	opts, err := config.Profile(*profileName)
	if err != nil {
		return opts, err
	}
	if *configPath != "" {
		if opts, err = config.LoadOver(*configPath, opts); err != nil {
			return opts, err
		}
	}
	if *offset != 0 {
		opts.InputOffset = offset.Seconds()
	}
	if *speed != 0 {
		opts.NoteSpeed = *speed
	}
	if *curve != "" {
		opts.ApproachCurve = *curve
	}
	if *logLevel != "" {
		opts.LogLevel = *logLevel
	}
	if *watch {
		opts.WatchMode = true
	}
	if *fps != 0 {
		opts.TickRate = *fps
	}
	return opts, opts.Validate()
}

// Run replays a chart against a touch script and prints the tally.
func Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts, err := loadOptions()
	if err != nil {
		return err
	}
	if err := logger.SetLevel(opts.LogLevel); err != nil {
		return errors.WithStackTrace(err)
	}
	log := logger.GetProjectLogger()

	c, err := chart.Load(*chartPath)
	if err != nil {
		return err
	}
	tr, err := opts.Transform()
	if err != nil {
		return err
	}
	level := note.NewLevel(tr, opts.InputOffset)
	built, err := c.Build(level)
	if err != nil {
		return err
	}

	script := input.NewScript()
	if *touchesPath != "" {
		if script, err = input.LoadScript(*touchesPath); err != nil {
			return err
		}
	}

	tally := score.NewTally()
	e := engine.New(level, built.Connectors, effect.NewLogPresenter(log, built.Timeline), tally, opts)

	if *realtime {
		wg := sync.WaitGroup{}
		wg.Add(1)
		loop := engine.NewLoop(e, script, clock.RealClock{}, opts.TickRate)
		errc := make(chan error, 1)
		go func() {
			errc <- loop.Run(ctx, &wg)
		}()

		// handle CTRL+C interrupt
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt)
		select {
		case <-quit:
			log.Info("interrupted")
			cancel()
		case err := <-errc:
			if err != nil {
				return err
			}
		}
		wg.Wait()
	} else {
		last := 0.0
		for i := 0; i < level.Len(); i++ {
			if end := level.Note(note.Handle(i)).InputInterval().End; end > last {
				last = end
			}
		}
		ticks := engine.Replay(e, script, opts.TickRate, last+1)
		log.WithField("ticks", ticks).Info("replay finished")
	}

	printTally(tally, e.Combo())
	return nil
}

func printTally(t *score.Tally, combo *engine.ComboTracker) {
	for _, j := range timing.Judgments() {
		fmt.Printf("%-8s %d\n", j, t.Count(j))
	}
	fmt.Printf("%-8s %d\n", "combo", combo.Max())
	logger.GetProjectLogger().WithFields(logrus.Fields{
		"mean_ms":  t.Mean() * 1000,
		"stdev_ms": t.Stdev() * 1000,
		"total":    t.Total(),
	}).Info("tally")
}
