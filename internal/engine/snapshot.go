package engine

import (
	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/session"
)

// Snapshot is a read-only view of the engine for renderers.
type Snapshot struct {
	Phase               breath.Phase
	Cycle               breath.Cycle
	Mode                Mode
	Round               int
	TargetRounds        int
	CycleNumber         int
	PhaseIndex          int
	SecondsInPhase      int
	SecondsRemaining    int
	TotalSecondsElapsed int
	Countdown           int
	LocationID          int
	IsActive            bool
	IsPaused            bool
}

func (s Snapshot) IsFinished() bool {
	return s.Mode == Finished
}

func (s Snapshot) RoundPaused() bool {
	return s.Mode == RoundPaused
}

// Snapshot returns the current view of the session.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:               e.state.Phase(e.phases),
		Cycle:               e.settings.Cycle,
		Mode:                e.mode,
		Round:               e.state.CurrentRound,
		TargetRounds:        e.settings.TargetRounds,
		CycleNumber:         e.state.CurrentCycle,
		PhaseIndex:          e.state.CurrentPhaseIndex,
		SecondsInPhase:      e.state.SecondsInPhase,
		SecondsRemaining:    session.SecondsRemaining(e.state, e.phases),
		TotalSecondsElapsed: e.state.TotalSecondsElapsed,
		Countdown:           e.countdown,
		LocationID:          e.LocationID(),
		IsActive:            e.state.IsActive,
		IsPaused:            e.state.IsPaused,
	}
}
