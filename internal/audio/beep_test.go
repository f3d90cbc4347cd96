package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/anuloma/internal/breath"
)

func TestSetLevel(t *testing.T) {
	v := &effects.Volume{Base: 2}

	setLevel(v, 1)
	assert.False(t, v.Silent)
	assert.InDelta(t, 0, v.Volume, 1e-9)

	setLevel(v, 0.25)
	assert.InDelta(t, -2, v.Volume, 1e-9)
	assert.InDelta(t, 0.25, math.Pow(v.Base, v.Volume), 1e-9)

	setLevel(v, 0)
	assert.True(t, v.Silent)

	setLevel(v, 3)
	assert.False(t, v.Silent)
	assert.InDelta(t, 0, v.Volume, 1e-9)
}

// collect reads up to n samples from s.
func collect(s beep.Streamer, n int) [][2]float64 {
	out := make([][2]float64, 0, n)
	buf := make([][2]float64, 512)

	for len(out) < n {
		k, ok := s.Stream(buf[:min(len(buf), n-len(out))])
		out = append(out, buf[:k]...)

		if !ok {
			break
		}
	}

	return out
}

func energy(samples [][2]float64) float64 {
	var e float64
	for _, s := range samples {
		e += s[0]*s[0] + s[1]*s[1]
	}

	return e
}

func TestToneStreamerLength(t *testing.T) {
	sr := beep.SampleRate(8000)

	tones := []Tone{
		{Freq: 220, Gain: 0.5, Duration: time.Second},
		{Freq: 440, Gain: 0.5, Delay: 500 * time.Millisecond, Duration: time.Second},
	}

	st, err := toneStreamer(sr, tones)
	require.NoError(t, err)

	samples := collect(st, sr.N(2*time.Second))
	end := sr.N(1500 * time.Millisecond)

	require.GreaterOrEqual(t, len(samples), end)
	assert.Greater(t, energy(samples[:end]), 0.0)
	assert.InDelta(t, 0, energy(samples[end:]), 1e-9)
}

func TestChordShapes(t *testing.T) {
	for _, typ := range []breath.Type{breath.Inhale, breath.Hold, breath.Exhale} {
		tones := chord(typ)

		require.Len(t, tones, 4, typ)
		assert.Equal(t, time.Duration(0), tones[0].Delay)
		assert.Equal(t, 3*arpeggioDelay, tones[3].Delay)
	}

	assert.Equal(t, holdLength, chord(breath.Hold)[0].Duration)
	assert.Equal(t, chordLength, chord(breath.Inhale)[0].Duration)
}

func TestPlayMissingAsset(t *testing.T) {
	b := newBeepBackend(t.TempDir())

	err := b.Play(Drum, Sound{Asset: "drum-inhale.mp3"})
	assert.ErrorIs(t, err, errOpenSound)

	err = b.Play(Drum, Sound{Asset: "drum-inhale.aiff"})
	assert.ErrorIs(t, err, errUnsupportedFormat)

	assert.Empty(t, b.playing)
}

func TestDecodeCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.wav")

	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o600))

	_, _, err := decode(path)
	assert.ErrorIs(t, err, errDecodeSound)
}

func TestStopAndCloseWithoutSpeaker(t *testing.T) {
	b := newBeepBackend(t.TempDir())

	b.Stop(Voice)
	b.SetVolume(Voice, 0.5)

	assert.NoError(t, b.Close())
}
