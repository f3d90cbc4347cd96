// Package session holds the practice session state and the pure transitions
// applied to it. Every operation returns a new State and performs no I/O.
package session

import "github.com/ayoisaiah/anuloma/internal/breath"

// State is the in-memory progress of a practice session.
type State struct {
	IsActive            bool `json:"is_active"`
	IsPaused            bool `json:"is_paused"`
	CurrentRound        int  `json:"current_round"`
	CurrentCycle        int  `json:"current_cycle"`
	CurrentPhaseIndex   int  `json:"current_phase_index"`
	SecondsInPhase      int  `json:"seconds_in_phase"`
	TotalSecondsElapsed int  `json:"total_seconds_elapsed"`
}

// Blank returns the inactive state every session starts from.
func Blank() State {
	return State{
		CurrentRound: 1,
		CurrentCycle: 1,
	}
}

// Start resets the state and marks it active.
func Start(State) State {
	s := Blank()
	s.IsActive = true

	return s
}

func Pause(s State) State {
	s.IsPaused = true
	return s
}

func Resume(s State) State {
	s.IsPaused = false
	return s
}

// Stop discards the session progress.
func Stop(State) State {
	return Blank()
}

// Tick records one elapsed second. Phase exhaustion is checked separately
// with PhaseEnded.
func Tick(s State) State {
	s.SecondsInPhase++
	s.TotalSecondsElapsed++

	return s
}

// NextPhase moves to the following phase of the current cycle.
func NextPhase(s State) State {
	s.CurrentPhaseIndex = (s.CurrentPhaseIndex + 1) % breath.PhaseCount
	s.SecondsInPhase = 0

	return s
}

// AdvanceCycle starts the next cycle of the current round.
func AdvanceCycle(s State) State {
	s.CurrentCycle++
	s.CurrentPhaseIndex = 0
	s.SecondsInPhase = 0

	return s
}

// AdvanceRound starts round n from its first cycle.
func AdvanceRound(s State, n int) State {
	s.CurrentRound = n
	s.CurrentCycle = 1
	s.CurrentPhaseIndex = 0
	s.SecondsInPhase = 0

	return s
}

// Phase returns the phase at the current index.
func (s State) Phase(phases [breath.PhaseCount]breath.Phase) breath.Phase {
	return phases[s.CurrentPhaseIndex]
}

// PhaseEnded reports whether the current phase has run its full duration.
func PhaseEnded(s State, phases [breath.PhaseCount]breath.Phase) bool {
	return s.SecondsInPhase >= s.Phase(phases).Duration
}

// SecondsRemaining is the time left in the current phase.
func SecondsRemaining(s State, phases [breath.PhaseCount]breath.Phase) int {
	return max(s.Phase(phases).Duration-s.SecondsInPhase, 0)
}

// LastPhase reports whether the current phase closes the cycle.
func (s State) LastPhase() bool {
	return s.CurrentPhaseIndex == breath.LastPhaseIndex
}

// RoundComplete reports whether the current cycle is the last of the round.
func (s State) RoundComplete() bool {
	return s.CurrentCycle >= breath.CyclesPerRound
}

// Ticking reports whether the state accepts ticks.
func (s State) Ticking() bool {
	return s.IsActive && !s.IsPaused
}
