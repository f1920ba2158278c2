// Package loop drives a scene frame by frame: every frame it runs the
// registered systems in order, applies deferred structural changes, and
// hands the scene to a renderer.
package loop

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/plus3/sceneloop/internal/log"
	"github.com/plus3/sceneloop/scene"
)

// ErrRunning is returned by Start and Run when the loop is already running.
var ErrRunning = errors.New("loop: already running")

type State uint8

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

type query interface {
	Init(s *scene.Scene)
	Execute()
}

// Loop owns the frame cycle for one scene. Frames always run on a single
// goroutine; Stop and the read-only accessors may be called from others.
type Loop struct {
	scene    *scene.Scene
	renderer Renderer
	logger   log.Log

	systems     []System
	systemStats []*systemStatsInternal
	queries     []query
	commands    *scene.Commands

	frames atomic.Uint64

	mu    sync.Mutex
	state State
	stop  chan struct{}
}

type Option func(*Loop)

func WithRenderer(r Renderer) Option {
	return func(l *Loop) { l.renderer = r }
}

func WithLogger(logger log.Log) Option {
	return func(l *Loop) { l.logger = logger }
}

// New creates an idle loop over sc.
func New(sc *scene.Scene, opts ...Option) *Loop {
	l := &Loop{
		scene:    sc,
		logger:   log.Nop(),
		commands: scene.NewCommands(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Scene returns the scene this loop drives.
func (l *Loop) Scene() *scene.Scene {
	return l.scene
}

// Register appends a system and binds its Query fields to the scene.
// Systems run in registration order.
func (l *Loop) Register(system System) {
	if system == nil {
		panic("loop: Register called with a nil system")
	}

	l.initializeQueries(system)
	l.systems = append(l.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	l.systemStats = append(l.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func (l *Loop) initializeQueries(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Ptr {
		return
	}
	systemValue = systemValue.Elem()
	if systemValue.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		q, ok := field.Addr().Interface().(query)
		if !ok {
			continue
		}
		q.Init(l.scene)
		l.queries = append(l.queries, q)
	}
}

// Once runs a single frame with the given delta time, regardless of state.
func (l *Loop) Once(dt float64) {
	frame := &Frame{
		Index:     l.frames.Load(),
		DeltaTime: dt,
		Scene:     l.scene,
		Commands:  l.commands,
	}

	for _, q := range l.queries {
		q.Execute()
	}

	for i, system := range l.systems {
		start := time.Now()
		system.Execute(frame)
		l.systemStats[i].record(time.Since(start))
	}

	l.commands.Flush(l.scene)

	if l.renderer != nil {
		l.renderer.Render(l.scene, l.scene.Camera)
	}

	l.frames.Add(1)
}

// Step runs exactly n frames with a fixed delta time.
func (l *Loop) Step(n int, dt float64) {
	for range n {
		l.Once(dt)
	}
}

// Start moves the loop from idle to running.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == StateRunning {
		return ErrRunning
	}
	l.state = StateRunning
	l.stop = make(chan struct{})

	l.logger.Info("loop started",
		log.String("scene", l.scene.Name),
		log.Stringer("scene_id", l.scene.Id),
		log.Int("systems", len(l.systems)),
		log.Int("objects", l.scene.Len()),
	)
	return nil
}

// Stop moves the loop back to idle. Stopping an idle loop does nothing.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateRunning {
		return
	}
	l.state = StateIdle
	close(l.stop)

	l.logger.Info("loop stopped",
		log.String("scene", l.scene.Name),
		log.Uint64("frames", l.frames.Load()),
	)
}

func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Advance runs one frame if the loop is running and reports whether it did.
// Hosts that own the refresh signal, like a window's update callback, call
// it once per tick.
func (l *Loop) Advance(dt float64) bool {
	if l.State() != StateRunning {
		return false
	}
	l.Once(dt)
	return true
}

// Run starts the loop and executes a frame on every tick of interval until
// Stop is called or ctx is cancelled. The loop is idle when Run returns.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if err := l.Start(); err != nil {
		return err
	}
	defer l.Stop()

	l.mu.Lock()
	stop := l.stop
	l.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-stop:
			return nil
		case now := <-ticker.C:
			if l.State() != StateRunning {
				return nil
			}
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			l.Once(dt)
		}
	}
}

// Frames returns the number of frames run so far.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// GetStats returns statistics about system execution. It must not be called
// concurrently with a running frame.
func (l *Loop) GetStats() *Stats {
	stats := &Stats{
		Frames:      l.frames.Load(),
		SystemCount: len(l.systems),
		Systems:     make([]SystemStats, len(l.systemStats)),
	}

	for i, internal := range l.systemStats {
		stats.Systems[i] = internal.snapshot()
		stats.TotalExecutions += internal.executionCount
	}
	return stats
}
