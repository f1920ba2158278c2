package main

import (
	"context"
	"runtime"
	"time"

	"github.com/plus3/sceneloop/internal/injector"
	"github.com/plus3/sceneloop/internal/log"
	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/render"
	"golang.org/x/sync/errgroup"
)

const progressInterval = time.Second

// frameLimit stops the loop once it has run limit frames.
type frameLimit struct {
	limit uint64
	stop  func()
}

func (f *frameLimit) Execute(frame *loop.Frame) {
	if frame.Index+1 >= f.limit {
		frame.Commands.Defer(f.stop)
	}
}

// frameClock samples the wall time between consecutive frames.
type frameClock struct {
	last    time.Time
	samples []time.Duration
}

func (c *frameClock) Execute(frame *loop.Frame) {
	now := time.Now()
	if !c.last.IsZero() {
		c.samples = append(c.samples, now.Sub(c.last))
	}
	c.last = now
}

// runHeadless drives the loop from a ticker until the configured frame or
// time limit is reached or ctx is cancelled, then reports on the run.
func runHeadless(ctx context.Context, app *injector.App) (*Report, error) {
	cfg := app.Config
	l := app.Loop

	if cfg.Headless.Frames > 0 {
		l.Register(&frameLimit{limit: cfg.Headless.Frames, stop: l.Stop})
	}
	clock := &frameClock{}
	l.Register(clock)

	startTime := time.Now()
	if cfg.Headless.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Headless.Duration)
		defer cancel()
	}

	report := &Report{
		Demo:        cfg.Demo,
		SceneId:     app.Scene.Id.String(),
		Seed:        cfg.Seed,
		Interval:    cfg.Headless.Interval,
		FrameLimit:  cfg.Headless.Frames,
		TimeLimit:   cfg.Headless.Duration,
		Fingerprint: app.Scene.Fingerprint(),
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	app.Logger.Info("headless run starting",
		log.Duration("interval", cfg.Headless.Interval),
		log.Uint64("frames", cfg.Headless.Frames),
		log.Duration("duration", cfg.Headless.Duration),
	)

	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(done)
		return l.Run(gctx, cfg.Headless.Interval)
	})

	g.Go(func() error {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return nil
			case <-ticker.C:
				app.Logger.Info("progress", log.Uint64("frames", l.Frames()))
			}
		}
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Loop = *l.GetStats()
	report.Scene = *app.Scene.CollectStats()
	report.FrameTime = Stats{Samples: clock.samples}
	report.FrameTime.Finalize()
	app.Renderer.View(func(list *render.DisplayList) {
		report.Segments = len(list.Segments)
		report.Dots = len(list.Dots)
		report.Culled = list.Culled
	})

	app.Logger.Info("headless run finished",
		log.Uint64("frames", report.Loop.Frames),
		log.Duration("elapsed", report.TotalTime),
	)
	return report, nil
}
