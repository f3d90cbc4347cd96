package audio

import (
	"fmt"
	"log/slog"
	"path"
	"sync"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/config"
	"github.com/ayoisaiah/anuloma/internal/engine"
	"github.com/ayoisaiah/anuloma/internal/location"
)

const (
	omAsset     = "om.mp3"
	omVolume    = 0.7
	gongVolume  = 0.3
	guitarScale = 0.2
	guitarHold  = 0.15
	drumHold    = 0.7
	// ambience level during holds when it follows the breath
	holdDucking = 0.5
)

// Dispatcher turns engine events into sounds. Playback failures are logged
// and never reach the caller.
type Dispatcher struct {
	backend  Backend
	tracks   []NatureTrack
	settings config.AppSettings
	mu       sync.Mutex

	// asset currently looping on the ambience and nature channels
	ambienceAsset string
	natureAsset   string

	locationID    int
	natureIdx     int
	active        bool
	ambienceMuted bool
}

// NewDispatcher creates a dispatcher playing through b.
func NewDispatcher(
	b Backend,
	settings config.AppSettings,
	tracks []NatureTrack,
) *Dispatcher {
	d := &Dispatcher{
		backend:    b,
		settings:   settings,
		tracks:     tracks,
		locationID: location.First,
	}

	d.natureIdx = max(trackIndex(tracks, settings.Music.NatureTrack), 0)

	return d
}

// OnEvent implements engine.Listener.
func (d *Dispatcher) OnEvent(ev engine.Event) {
	switch e := ev.(type) {
	case engine.SessionStarted:
		d.mu.Lock()
		d.active = true
		d.mu.Unlock()

		d.play(Om, Sound{Asset: omAsset, Volume: omVolume})
		d.PlayAmbience(e.LocationID)
		d.StartNature()
	case engine.PhaseTransitioned:
		d.Cue(e.Phase)
		d.followBreath(e.Phase)
	case engine.RoundCompleted:
		d.play(Gong, Sound{Tones: gong(), Volume: gongVolume})
	case engine.RoundPauseStarted:
		d.PlayAmbience(e.NextLocationID)
	case engine.RoundResumed:
		d.PlayAmbience(e.LocationID)
	}
}

// Cue fires the enabled one-shot channels for the phase that is starting.
func (d *Dispatcher) Cue(p breath.Phase) {
	d.mu.Lock()
	s := d.settings.Sound
	d.mu.Unlock()

	if s.GuitarEnabled {
		scale := guitarScale
		if p.Type == breath.Hold {
			scale = guitarHold
		}

		d.play(Guitar, Sound{
			Tones:  chord(p.Type),
			Volume: level(s.GuitarVolume) * scale,
		})
	}

	if s.DrumEnabled {
		vol := level(s.DrumVolume)
		if p.Type == breath.Hold {
			vol *= drumHold
		}

		d.play(Drum, Sound{
			Asset:  fmt.Sprintf("drum-%s.mp3", p.Type),
			Volume: vol,
		})
	}

	if s.VoiceEnabled {
		d.play(Voice, Sound{
			Asset:  NarrationAsset(s.VoiceLanguage, s.VoiceStyle, p.Key),
			Volume: level(s.VoiceVolume),
		})
	}
}

// followBreath lowers the ambience while the breath is held and restores it
// for inhales and exhales.
func (d *Dispatcher) followBreath(p breath.Phase) {
	d.mu.Lock()
	music := d.settings.Music
	playing := d.ambienceAsset != ""
	d.mu.Unlock()

	if !music.SyncWithBreath || !playing {
		return
	}

	vol := level(music.MusicVolume)
	if p.Type == breath.Hold {
		vol *= holdDucking
	}

	d.setVolume(Ambience, vol)
}

// NarrationAsset is the recording spoken at the start of a phase.
func NarrationAsset(lang, style string, key breath.Key) string {
	return path.Join("voice", lang, style, string(key)+".ogg")
}

// PlayAmbience loops the recording of the given location. Unknown locations
// leave the channel untouched.
func (d *Dispatcher) PlayAmbience(locationID int) {
	asset, ok := location.AmbienceAsset(locationID)
	if !ok {
		return
	}

	d.mu.Lock()
	d.locationID = locationID

	if !d.ambienceWantedLocked() || d.ambienceAsset == asset {
		d.mu.Unlock()
		return
	}

	vol := level(d.settings.Music.MusicVolume)
	d.mu.Unlock()

	if d.play(Ambience, Sound{Asset: asset, Volume: vol, Loop: true}) {
		d.mu.Lock()
		d.ambienceAsset = asset
		d.mu.Unlock()
	}
}

func (d *Dispatcher) ambienceWantedLocked() bool {
	return d.active && d.settings.Music.MusicEnabled && !d.ambienceMuted
}

func (d *Dispatcher) StopAmbience() {
	d.mu.Lock()
	d.ambienceAsset = ""
	d.mu.Unlock()

	d.stop(Ambience)
}

// ToggleAmbience mutes or unmutes the location ambience for the rest of the
// session and reports whether it is now audible.
func (d *Dispatcher) ToggleAmbience() bool {
	d.mu.Lock()
	d.ambienceMuted = !d.ambienceMuted
	muted := d.ambienceMuted
	loc := d.locationID
	d.mu.Unlock()

	if muted {
		d.StopAmbience()
		return false
	}

	d.PlayAmbience(loc)

	d.mu.Lock()
	defer d.mu.Unlock()

	return d.ambienceAsset != ""
}

// StartNature loops the selected nature track if nature sounds are enabled.
func (d *Dispatcher) StartNature() {
	d.mu.Lock()

	if !d.active || !d.settings.Music.NatureSoundsEnabled || len(d.tracks) == 0 {
		d.mu.Unlock()
		return
	}

	track := d.tracks[d.natureIdx]
	vol := level(d.settings.Music.NatureSoundsVolume)

	if d.natureAsset == track.Asset() {
		d.mu.Unlock()
		return
	}

	d.mu.Unlock()

	if d.play(Nature, Sound{Asset: track.Asset(), Volume: vol, Loop: true}) {
		d.mu.Lock()
		d.natureAsset = track.Asset()
		d.mu.Unlock()
	}
}

// CycleNature selects the track step positions away from the current one
// and starts it.
func (d *Dispatcher) CycleNature(step int) (NatureTrack, bool) {
	d.mu.Lock()

	if len(d.tracks) == 0 {
		d.mu.Unlock()
		return NatureTrack{}, false
	}

	n := len(d.tracks)
	d.natureIdx = ((d.natureIdx+step)%n + n) % n
	track := d.tracks[d.natureIdx]
	d.mu.Unlock()

	d.StartNature()

	return track, true
}

func (d *Dispatcher) StopNature() {
	d.mu.Lock()
	d.natureAsset = ""
	d.mu.Unlock()

	d.stop(Nature)
}

// StopAll silences every channel and ends the session.
func (d *Dispatcher) StopAll() {
	d.mu.Lock()
	d.active = false
	d.ambienceAsset = ""
	d.natureAsset = ""
	d.mu.Unlock()

	for _, ch := range Channels {
		d.stop(ch)
	}
}

// UpdateSettings applies new preferences. Looping channels are started,
// stopped or re-levelled to match.
func (d *Dispatcher) UpdateSettings(s config.AppSettings) {
	d.mu.Lock()
	old := d.settings.Music
	d.settings = s

	if i := trackIndex(d.tracks, s.Music.NatureTrack); i >= 0 {
		d.natureIdx = i
	}

	loc := d.locationID
	active := d.active
	d.mu.Unlock()

	if !active {
		return
	}

	music := s.Music

	switch {
	case !music.MusicEnabled:
		d.StopAmbience()
	case music.MusicVolume != old.MusicVolume:
		d.setVolume(Ambience, level(music.MusicVolume))
		fallthrough
	default:
		d.PlayAmbience(loc)
	}

	switch {
	case !music.NatureSoundsEnabled:
		d.StopNature()
	case music.NatureSoundsVolume != old.NatureSoundsVolume:
		d.setVolume(Nature, level(music.NatureSoundsVolume))
		fallthrough
	default:
		d.StartNature()
	}
}

// play hands s to the backend. Errors and panics are logged and swallowed.
func (d *Dispatcher) play(ch Channel, s Sound) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn(
				"audio backend panicked",
				slog.String("channel", string(ch)),
				slog.Any("panic", r),
			)

			ok = false
		}
	}()

	if err := d.backend.Play(ch, s); err != nil {
		slog.Warn(
			"sound failed to play",
			slog.String("channel", string(ch)),
			slog.String("asset", s.Asset),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

func (d *Dispatcher) stop(ch Channel) {
	defer recoverBackend(ch)

	d.backend.Stop(ch)
}

func (d *Dispatcher) setVolume(ch Channel, vol float64) {
	defer recoverBackend(ch)

	d.backend.SetVolume(ch, vol)
}

func recoverBackend(ch Channel) {
	if r := recover(); r != nil {
		slog.Warn(
			"audio backend panicked",
			slog.String("channel", string(ch)),
			slog.Any("panic", r),
		)
	}
}

// level converts a 0-100 setting to a gain between 0 and 1.
func level(v int) float64 {
	return float64(min(max(v, 0), 100)) / 100
}
