package audio

import (
	"time"

	"github.com/ayoisaiah/anuloma/internal/breath"
)

const (
	arpeggioDelay = 40 * time.Millisecond
	chordLength   = 2500 * time.Millisecond
	holdLength    = 3 * time.Second
	gongStep      = 100 * time.Millisecond
	gongLength    = 5 * time.Second
)

var (
	// F major
	inhaleChord = []float64{174.61, 220, 261.63, 349.23}
	// A minor
	exhaleChord = []float64{110, 164.81, 220, 261.63}
	// C major
	holdChord = []float64{130.81, 196, 261.63, 329.63}

	gongNotes = []float64{196, 246.94, 293.66, 392}
)

func arpeggio(freqs []float64, length time.Duration) []Tone {
	tones := make([]Tone, 0, len(freqs))
	gain := 1 / float64(len(freqs))

	for i, f := range freqs {
		tones = append(tones, Tone{
			Freq:     f,
			Gain:     gain,
			Delay:    time.Duration(i) * arpeggioDelay,
			Duration: length,
		})
	}

	return tones
}

// chord returns the guitar chord played for a breath type.
func chord(t breath.Type) []Tone {
	switch t {
	case breath.Inhale:
		return arpeggio(inhaleChord, chordLength)
	case breath.Exhale:
		return arpeggio(exhaleChord, chordLength)
	default:
		return arpeggio(holdChord, holdLength)
	}
}

// gong returns the bell struck at the end of a round. Each note is a little
// later and quieter than the previous one.
func gong() []Tone {
	tones := make([]Tone, 0, len(gongNotes))

	for i, f := range gongNotes {
		tones = append(tones, Tone{
			Freq:     f,
			Gain:     (1 - float64(i)*0.15) / float64(len(gongNotes)),
			Delay:    time.Duration(i) * gongStep,
			Duration: gongLength,
		})
	}

	return tones
}
