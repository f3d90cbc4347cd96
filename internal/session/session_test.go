package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/anuloma/internal/breath"
)

func TestStart(t *testing.T) {
	dirty := State{
		CurrentRound:        4,
		CurrentCycle:        3,
		CurrentPhaseIndex:   2,
		SecondsInPhase:      9,
		TotalSecondsElapsed: 900,
		IsPaused:            true,
	}

	got := Start(dirty)

	want := State{IsActive: true, CurrentRound: 1, CurrentCycle: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Start() mismatch (-want +got):\n%s", diff)
	}
}

func TestPauseResumeIdempotent(t *testing.T) {
	s := Start(Blank())

	s = Pause(Pause(s))
	assert.True(t, s.IsPaused)
	assert.False(t, s.Ticking())

	s = Resume(Resume(s))
	assert.False(t, s.IsPaused)
	assert.True(t, s.Ticking())
}

func TestStop(t *testing.T) {
	s := Tick(Tick(Start(Blank())))
	s = AdvanceRound(s, 3)

	assert.Equal(t, Blank(), Stop(s))
	assert.False(t, Stop(s).Ticking())
}

func TestTickIncrementsByOne(t *testing.T) {
	s := Start(Blank())

	for i := 1; i <= 50; i++ {
		prev := s
		s = Tick(s)

		assert.Equal(t, prev.SecondsInPhase+1, s.SecondsInPhase)
		assert.Equal(t, prev.TotalSecondsElapsed+1, s.TotalSecondsElapsed)
	}

	assert.Equal(t, 50, s.TotalSecondsElapsed)
}

func TestNextPhaseWraps(t *testing.T) {
	s := Start(Blank())

	for i := range breath.PhaseCount {
		s = Tick(s)
		assert.Equal(t, i, s.CurrentPhaseIndex)

		s = NextPhase(s)
		assert.Equal(t, 0, s.SecondsInPhase)
		assert.Equal(t, (i+1)%breath.PhaseCount, s.CurrentPhaseIndex)
	}

	assert.Equal(t, 6, s.TotalSecondsElapsed)
}

func TestAdvanceCycleAndRound(t *testing.T) {
	s := Start(Blank())
	s.CurrentPhaseIndex = breath.LastPhaseIndex
	s.SecondsInPhase = 7

	s = AdvanceCycle(s)
	assert.Equal(t, 2, s.CurrentCycle)
	assert.Equal(t, 0, s.CurrentPhaseIndex)
	assert.Equal(t, 0, s.SecondsInPhase)

	s.CurrentCycle = breath.CyclesPerRound
	assert.True(t, s.RoundComplete())

	s = AdvanceRound(s, 2)
	assert.Equal(t, 2, s.CurrentRound)
	assert.Equal(t, 1, s.CurrentCycle)
	assert.False(t, s.RoundComplete())
}

func TestPhaseEnded(t *testing.T) {
	phases := breath.PhasesForCycle(breath.Cycle{Inhale: 2, Hold: 8, Exhale: 4})
	s := Start(Blank())

	assert.False(t, PhaseEnded(s, phases))
	assert.Equal(t, 2, SecondsRemaining(s, phases))

	s = Tick(s)
	assert.False(t, PhaseEnded(s, phases))

	s = Tick(s)
	assert.True(t, PhaseEnded(s, phases))
	assert.Equal(t, 0, SecondsRemaining(s, phases))

	s = NextPhase(s)
	assert.Equal(t, breath.Hold1, s.Phase(phases).Key)
	assert.Equal(t, 8, SecondsRemaining(s, phases))
}
