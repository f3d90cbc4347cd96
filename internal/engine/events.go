package engine

import "github.com/ayoisaiah/anuloma/internal/breath"

// Event is emitted by the engine after a state change has been applied.
type Event interface {
	EventName() string
}

// Listener receives engine events. Listeners run on the engine's goroutine
// and must return quickly.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}

// SessionStarted is emitted once when a session begins.
type SessionStarted struct {
	Cycle        breath.Cycle
	TargetRounds int
	LocationID   int
}

// PhaseTransitioned announces the phase that is about to be performed.
type PhaseTransitioned struct {
	Phase breath.Phase
	Round int
	Cycle int
}

// RoundCompleted is emitted after a round has been committed to the profile.
// UnlockedLocation is zero when the round opened no new location.
type RoundCompleted struct {
	Round            int
	Seconds          int
	UnlockedLocation int
}

// RoundPauseStarted opens the rest between two rounds.
type RoundPauseStarted struct {
	NextRound      int
	NextLocationID int
	Countdown      int
}

// RoundResumed is emitted when the rest is over or was skipped.
type RoundResumed struct {
	Round      int
	LocationID int
	Skipped    bool
}

// SessionStopped is emitted when the session is abandoned.
type SessionStopped struct {
	Round               int
	TotalSecondsElapsed int
}

// SessionFinished is emitted when the final round completes.
type SessionFinished struct {
	Rounds              int
	TotalSecondsElapsed int
}

func (SessionStarted) EventName() string    { return "session-started" }
func (PhaseTransitioned) EventName() string { return "phase-transitioned" }
func (RoundCompleted) EventName() string    { return "round-completed" }
func (RoundPauseStarted) EventName() string { return "round-pause-started" }
func (RoundResumed) EventName() string      { return "round-resumed" }
func (SessionStopped) EventName() string    { return "session-stopped" }
func (SessionFinished) EventName() string   { return "session-finished" }
