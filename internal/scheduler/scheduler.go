// Package scheduler runs a practice session in real time. A single goroutine
// owns the engine; ticks, countdown seconds and user commands are all applied
// there, one at a time
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/ayoisaiah/anuloma/internal/engine"
)

type command int

const (
	cmdPause command = iota
	cmdResume
	cmdToggle
	cmdStop
	cmdSkipPause
)

func (c command) String() string {
	switch c {
	case cmdPause:
		return "pause"
	case cmdResume:
		return "resume"
	case cmdToggle:
		return "toggle"
	case cmdStop:
		return "stop"
	case cmdSkipPause:
		return "skip-pause"
	}

	return "unknown"
}

// Scheduler drives an engine with one-second tickers.
type Scheduler struct {
	engine    *engine.Engine
	newTicker TickerFunc
	cmds      chan command
	updates   chan engine.Snapshot
	done      chan struct{}
	teardown  []func()
	interval  time.Duration
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithTicker replaces the ticker constructor.
func WithTicker(f TickerFunc) Option {
	return func(s *Scheduler) {
		s.newTicker = f
	}
}

// WithInterval changes the length of a tick. It is one second by default.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.interval = d
	}
}

// WithTeardown registers fn to run when the scheduler exits.
func WithTeardown(fn func()) Option {
	return func(s *Scheduler) {
		s.teardown = append(s.teardown, fn)
	}
}

// New returns a scheduler for e. Run must be called to start the session.
func New(e *engine.Engine, opts ...Option) *Scheduler {
	s := &Scheduler{
		engine:    e,
		newTicker: NewRealTicker,
		interval:  time.Second,
		cmds:      make(chan command),
		updates:   make(chan engine.Snapshot, 1),
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Updates delivers the latest snapshot after every change. Intermediate
// snapshots are dropped when the reader falls behind. The channel is closed
// when Run returns.
func (s *Scheduler) Updates() <-chan engine.Snapshot {
	return s.updates
}

// Done is closed once Run has returned.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) Pause() {
	s.send(cmdPause)
}

func (s *Scheduler) Resume() {
	s.send(cmdResume)
}

// Toggle pauses a running session or resumes a paused one.
func (s *Scheduler) Toggle() {
	s.send(cmdToggle)
}

func (s *Scheduler) Stop() {
	s.send(cmdStop)
}

func (s *Scheduler) SkipPause() {
	s.send(cmdSkipPause)
}

func (s *Scheduler) send(c command) {
	select {
	case s.cmds <- c:
	case <-s.done:
	}
}

// Run starts the session and blocks until it finishes, is stopped, or ctx is
// cancelled. Cancelling ctx stops the session.
func (s *Scheduler) Run(ctx context.Context) error {
	var tick, countdown Ticker

	defer func() {
		stopTicker(&tick)
		stopTicker(&countdown)

		for _, fn := range s.teardown {
			fn()
		}

		close(s.updates)
		close(s.done)
	}()

	s.engine.Start()

	for {
		s.sync(&tick, &countdown)
		s.publish()

		if s.engine.Done() {
			return nil
		}

		select {
		case <-ctx.Done():
			s.engine.Stop()
			return nil
		case <-chanOf(tick):
			s.engine.Tick()
		case <-chanOf(countdown):
			s.engine.CountdownTick()
		case c := <-s.cmds:
			slog.Debug("scheduler command", slog.String("command", c.String()))
			s.apply(c)
		}
	}
}

func (s *Scheduler) apply(c command) {
	switch c {
	case cmdPause:
		s.engine.Pause()
	case cmdResume:
		s.engine.Resume()
	case cmdToggle:
		if s.engine.Snapshot().IsPaused {
			s.engine.Resume()
		} else {
			s.engine.Pause()
		}
	case cmdStop:
		s.engine.Stop()
	case cmdSkipPause:
		s.engine.SkipPause()
	}
}

// sync brings both tickers in line with the engine gates. Tickers that are no
// longer wanted are stopped before any new one is created.
func (s *Scheduler) sync(tick, countdown *Ticker) {
	wantTick := s.engine.Ticking()
	wantCountdown := s.engine.CountingDown()

	if !wantTick {
		stopTicker(tick)
	}

	if !wantCountdown {
		stopTicker(countdown)
	}

	if wantTick && *tick == nil {
		*tick = s.newTicker(s.interval)
	}

	if wantCountdown && *countdown == nil {
		*countdown = s.newTicker(s.interval)
	}
}

func (s *Scheduler) publish() {
	snap := s.engine.Snapshot()

	select {
	case <-s.updates:
	default:
	}

	s.updates <- snap
}

func stopTicker(t *Ticker) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
