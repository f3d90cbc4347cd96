package audio

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	sampleRate     = beep.SampleRate(44100)
	bufferSize     = 10
	resampleFactor = 4
)

type handle struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	closer io.Closer
}

func (h *handle) close() {
	if h.closer != nil {
		_ = h.closer.Close()
	}
}

// BeepBackend plays sounds through the system speaker. Every channel feeds a
// single mixer.
type BeepBackend struct {
	mixer   *beep.Mixer
	playing map[Channel]*handle
	dir     string
	mu      sync.Mutex
	sr      beep.SampleRate
	open    bool
}

func newBeepBackend(dir string) *BeepBackend {
	return &BeepBackend{
		dir:     dir,
		sr:      sampleRate,
		mixer:   &beep.Mixer{},
		playing: make(map[Channel]*handle),
	}
}

// NewBeepBackend opens the speaker. Assets are resolved against dir.
func NewBeepBackend(dir string) (*BeepBackend, error) {
	b := newBeepBackend(dir)

	err := speaker.Init(b.sr, b.sr.N(time.Second/bufferSize))
	if err != nil {
		return nil, errSpeakerInit.Wrap(err)
	}

	speaker.Play(b.mixer)

	b.open = true

	return b, nil
}

func (b *BeepBackend) Play(ch Channel, s Sound) error {
	streamer, closer, err := b.stream(s)
	if err != nil {
		return err
	}

	vol := &effects.Volume{Streamer: streamer, Base: 2}
	setLevel(vol, s.Volume)

	h := &handle{
		ctrl:   &beep.Ctrl{Streamer: vol},
		volume: vol,
		closer: closer,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	old := b.playing[ch]

	speaker.Lock()

	if old != nil {
		old.ctrl.Streamer = nil
	}

	b.mixer.Add(h.ctrl)

	speaker.Unlock()

	if old != nil {
		old.close()
	}

	b.playing[ch] = h

	return nil
}

func (b *BeepBackend) SetVolume(ch Channel, volume float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	h, ok := b.playing[ch]
	if !ok {
		return
	}

	speaker.Lock()
	setLevel(h.volume, volume)
	speaker.Unlock()
}

func (b *BeepBackend) Stop(ch Channel) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked(ch)
}

func (b *BeepBackend) stopLocked(ch Channel) {
	h, ok := b.playing[ch]
	if !ok {
		return
	}

	speaker.Lock()
	h.ctrl.Streamer = nil
	speaker.Unlock()

	h.close()
	delete(b.playing, ch)
}

// Close stops every channel and releases the speaker.
func (b *BeepBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.playing {
		b.stopLocked(ch)
	}

	if b.open {
		speaker.Close()
		b.open = false
	}

	return nil
}

func (b *BeepBackend) stream(s Sound) (beep.Streamer, io.Closer, error) {
	if len(s.Tones) > 0 {
		st, err := toneStreamer(b.sr, s.Tones)
		return st, nil, err
	}

	stream, format, err := decode(filepath.Join(b.dir, s.Asset))
	if err != nil {
		return nil, nil, err
	}

	var st beep.Streamer = stream

	if s.Loop {
		st = beep.Loop(-1, stream)
	}

	if format.SampleRate != b.sr {
		st = beep.Resample(resampleFactor, format.SampleRate, b.sr, st)
	}

	return st, stream, nil
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg", ".mp3", ".flac", ".wav":
	default:
		return nil, format, errUnsupportedFormat.Fmt(ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, format, errOpenSound.Wrap(err)
	}

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, format, errDecodeSound.Wrap(err)
	}

	return stream, format, nil
}

func toneStreamer(sr beep.SampleRate, tones []Tone) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(tones))

	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.Freq)
		if err != nil {
			return nil, err
		}

		note := &effects.Gain{
			Streamer: beep.Take(sr.N(t.Duration), sine),
			Gain:     t.Gain - 1,
		}

		notes = append(notes, beep.Seq(beep.Silence(sr.N(t.Delay)), note))
	}

	return beep.Mix(notes...), nil
}

// setLevel maps a linear gain in [0, 1] onto the exponential volume effect.
func setLevel(v *effects.Volume, level float64) {
	if level <= 0 {
		v.Silent = true
		return
	}

	v.Silent = false
	v.Volume = math.Log2(min(level, 1))
}
