// Package breath defines the Anuloma Viloma breathing cycles and expands a
// cycle into its six timed phases
package breath

import "fmt"

const (
	// PhaseCount is the number of phases in every breathing cycle.
	PhaseCount = 6
	// LastPhaseIndex is the index of the phase that closes a cycle.
	LastPhaseIndex = PhaseCount - 1
	// CyclesPerRound is the number of full cycles that make up one round.
	CyclesPerRound = 6
	// RoundPauseSeconds is the length of the rest between two rounds.
	RoundPauseSeconds = 10

	DefaultRounds     = 10
	DefaultCycleIndex = 5
	MinRounds         = 1
	MaxRounds         = 100
)

type (
	// Nostril is the nostril that carries the breath during a phase.
	Nostril string

	// Type is the kind of breath performed during a phase.
	Type string

	// Key identifies one of the six phases of a cycle.
	Key string
)

const (
	Left  Nostril = "left"
	Right Nostril = "right"
	Both  Nostril = "both"
)

const (
	Inhale Type = "inhale"
	Hold   Type = "hold"
	Exhale Type = "exhale"
)

const (
	InhaleLeft  Key = "inhale-left"
	Hold1       Key = "hold-1"
	ExhaleRight Key = "exhale-right"
	InhaleRight Key = "inhale-right"
	Hold2       Key = "hold-2"
	ExhaleLeft  Key = "exhale-left"
)

// Keys lists the phase keys in the order they are performed.
var Keys = [PhaseCount]Key{
	InhaleLeft,
	Hold1,
	ExhaleRight,
	InhaleRight,
	Hold2,
	ExhaleLeft,
}

// Cycle is an inhale/hold/exhale ratio expressed in seconds.
type Cycle struct {
	Label  string `json:"label"`
	Inhale int    `json:"inhale"`
	Hold   int    `json:"hold"`
	Exhale int    `json:"exhale"`
}

// Phase is a single timed step of a cycle.
type Phase struct {
	Key      Key     `json:"key"`
	Nostril  Nostril `json:"nostril"`
	Type     Type    `json:"type"`
	Duration int     `json:"duration"`
}

// Catalog is the fixed, ordered list of selectable cycles.
var Catalog = []Cycle{
	newCycle(1, 4, 2),
	newCycle(2, 8, 4),
	newCycle(3, 12, 6),
	newCycle(4, 16, 8),
	newCycle(5, 20, 10),
	newCycle(6, 24, 12),
	newCycle(7, 28, 14),
	newCycle(8, 32, 16),
	newCycle(10, 40, 20),
	newCycle(12, 48, 24),
	newCycle(15, 60, 30),
	newCycle(20, 80, 40),
}

func newCycle(inhale, hold, exhale int) Cycle {
	return Cycle{
		Inhale: inhale,
		Hold:   hold,
		Exhale: exhale,
		Label:  fmt.Sprintf("%d–%d–%d", inhale, hold, exhale),
	}
}

// CycleAt returns the catalog entry at index i, clamped to the catalog bounds.
func CycleAt(i int) Cycle {
	return Catalog[ClampCycleIndex(i)]
}

// ClampCycleIndex bounds i to a valid catalog index.
func ClampCycleIndex(i int) int {
	return clamp(i, 0, len(Catalog)-1)
}

// ClampRounds bounds n to the supported number of rounds per session.
func ClampRounds(n int) int {
	return clamp(n, MinRounds, MaxRounds)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// PhasesForCycle expands a cycle into its six phases. Each nostril performs one
// full inhale and exhale, with a hold between the inhale and the exhale.
func PhasesForCycle(c Cycle) [PhaseCount]Phase {
	return [PhaseCount]Phase{
		{Key: InhaleLeft, Duration: c.Inhale, Nostril: Left, Type: Inhale},
		{Key: Hold1, Duration: c.Hold, Nostril: Both, Type: Hold},
		{Key: ExhaleRight, Duration: c.Exhale, Nostril: Right, Type: Exhale},
		{Key: InhaleRight, Duration: c.Inhale, Nostril: Right, Type: Inhale},
		{Key: Hold2, Duration: c.Hold, Nostril: Both, Type: Hold},
		{Key: ExhaleLeft, Duration: c.Exhale, Nostril: Left, Type: Exhale},
	}
}

// CycleSeconds is the length of one full cycle.
func CycleSeconds(c Cycle) int {
	return (c.Inhale + c.Hold + c.Exhale) * 2
}

// RoundSeconds is the length of one round of the given cycle.
func RoundSeconds(c Cycle) int {
	return CycleSeconds(c) * CyclesPerRound
}

// TotalSeconds is the breathing time of a whole session, pauses excluded.
func TotalSeconds(c Cycle, rounds int) int {
	return RoundSeconds(c) * rounds
}

// Valid reports whether every duration of the cycle is positive.
func (c Cycle) Valid() bool {
	return c.Inhale > 0 && c.Hold > 0 && c.Exhale > 0
}
