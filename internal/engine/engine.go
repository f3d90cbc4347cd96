// Package engine drives a practice session: it applies the session reducers,
// detects the end of phases and rounds, runs the rest between rounds and
// emits events for everything that happens
package engine

import (
	"context"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/location"
	"github.com/ayoisaiah/anuloma/internal/session"
)

// Mode is the state of the round transition controller.
type Mode string

const (
	Running     Mode = "running"
	RoundPaused Mode = "round-paused"
	Finished    Mode = "finished"
)

// Progress commits completed rounds. It returns the id of a newly unlocked
// location or zero.
type Progress interface {
	AddCompletedRound(seconds int) int
}

// Settings are fixed for the lifetime of a session.
type Settings struct {
	Cycle         breath.Cycle
	TargetRounds  int
	StartLocation int
}

// Engine owns the state of one practice session. It is not safe for
// concurrent use; the scheduler serialises every call.
type Engine struct {
	progress  Progress
	listeners []Listener
	settings  Settings
	mode      Mode
	state     session.State
	phases    [breath.PhaseCount]breath.Phase
	countdown int
}

// New creates an idle engine. Settings are expected to be clamped already.
func New(settings Settings, progress Progress, listeners ...Listener) *Engine {
	return &Engine{
		settings:  settings,
		progress:  progress,
		listeners: listeners,
		phases:    breath.PhasesForCycle(settings.Cycle),
		state:     session.Blank(),
		mode:      Running,
	}
}

// AddListener registers l for all subsequent events.
func (e *Engine) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Start begins a new session from the first round.
func (e *Engine) Start() {
	e.state = session.Start(e.state)
	e.mode = Running
	e.countdown = 0

	e.emit(SessionStarted{
		Cycle:        e.settings.Cycle,
		TargetRounds: e.settings.TargetRounds,
		LocationID:   e.LocationID(),
	})
	e.emitPhase()
}

func (e *Engine) Pause() {
	if !e.state.IsActive {
		return
	}

	e.state = session.Pause(e.state)
}

func (e *Engine) Resume() {
	if !e.state.IsActive {
		return
	}

	e.state = session.Resume(e.state)
}

// Stop abandons the session. Rounds already completed stay committed.
func (e *Engine) Stop() {
	if !e.state.IsActive {
		return
	}

	ev := SessionStopped{
		Round:               e.state.CurrentRound,
		TotalSecondsElapsed: e.state.TotalSecondsElapsed,
	}

	e.state = session.Stop(e.state)
	e.mode = Running
	e.countdown = 0

	e.emit(ev)
}

// Ticking reports whether one-second ticks should be delivered.
func (e *Engine) Ticking() bool {
	return e.state.Ticking() && e.mode == Running
}

// CountingDown reports whether the rest countdown should be running.
func (e *Engine) CountingDown() bool {
	return e.state.Ticking() && e.mode == RoundPaused
}

// Done reports whether the session has ended, either finished or stopped.
func (e *Engine) Done() bool {
	return !e.state.IsActive || e.mode == Finished
}

// Tick records one elapsed second and handles the end of the current phase.
func (e *Engine) Tick() {
	if !e.Ticking() {
		return
	}

	e.state = session.Tick(e.state)

	if !session.PhaseEnded(e.state, e.phases) {
		return
	}

	switch {
	case !e.state.LastPhase():
		e.state = session.NextPhase(e.state)
		e.emitPhase()
	case !e.state.RoundComplete():
		e.state = session.AdvanceCycle(e.state)
		e.emitPhase()
	default:
		e.completeRound()
	}
}

func (e *Engine) completeRound() {
	secs := breath.RoundSeconds(e.settings.Cycle)

	var unlocked int
	if e.progress != nil {
		unlocked = e.progress.AddCompletedRound(secs)
	}

	round := e.state.CurrentRound

	if round >= e.settings.TargetRounds {
		e.mode = Finished
	} else {
		e.mode = RoundPaused
		e.countdown = breath.RoundPauseSeconds
	}

	e.emit(RoundCompleted{
		Round:            round,
		Seconds:          secs,
		UnlockedLocation: unlocked,
	})

	if e.mode == Finished {
		e.emit(SessionFinished{
			Rounds:              round,
			TotalSecondsElapsed: e.state.TotalSecondsElapsed,
		})

		return
	}

	e.emit(RoundPauseStarted{
		NextRound:      round + 1,
		NextLocationID: location.ForRound(e.settings.StartLocation, round+1),
		Countdown:      e.countdown,
	})
}

// CountdownTick moves the rest countdown down by one second and starts the
// next round when it reaches zero.
func (e *Engine) CountdownTick() {
	if !e.CountingDown() {
		return
	}

	e.countdown--

	if e.countdown <= 0 {
		e.nextRound(false)
	}
}

// SkipPause ends the rest immediately.
func (e *Engine) SkipPause() {
	if !e.state.IsActive || e.mode != RoundPaused {
		return
	}

	e.nextRound(true)
}

func (e *Engine) nextRound(skipped bool) {
	e.countdown = 0
	e.mode = Running
	e.state = session.AdvanceRound(e.state, e.state.CurrentRound+1)

	e.emit(RoundResumed{
		Round:      e.state.CurrentRound,
		LocationID: e.LocationID(),
		Skipped:    skipped,
	})
	e.emitPhase()
}

// LocationID is the location shown for the current round.
func (e *Engine) LocationID() int {
	return location.ForRound(e.settings.StartLocation, e.state.CurrentRound)
}

func (e *Engine) emitPhase() {
	e.emit(PhaseTransitioned{
		Phase: e.state.Phase(e.phases),
		Round: e.state.CurrentRound,
		Cycle: e.state.CurrentCycle,
	})
}

func (e *Engine) emit(ev Event) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("engine event", slog.String("event", spew.Sdump(ev)))
	}

	for _, l := range e.listeners {
		notify(l, ev)
	}
}

func notify(l Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error(
				"event listener panicked",
				slog.String("event", ev.EventName()),
				slog.Any("panic", r),
			)
		}
	}()

	l.OnEvent(ev)
}
