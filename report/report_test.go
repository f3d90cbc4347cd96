package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/anuloma/internal/models"
)

func TestSessionSummary(t *testing.T) {
	r := models.SessionRecord{
		CycleLabel:      "6–24–12",
		TargetRounds:    10,
		RoundsCompleted: 4,
		SecondsElapsed:  4 * 504,
	}

	assert.Equal(t, "4 of 10 rounds (6–24–12) in 33m 36s", sessionSummary(r))
}
