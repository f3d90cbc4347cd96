// Package audio plays the practice sound cues. Phase cues, session markers
// and the looping ambience and nature tracks each own a channel; starting a
// sound on a channel replaces whatever was playing there.
package audio

import "time"

// Channel is an independent playback slot.
type Channel string

const (
	Voice    Channel = "voice"
	Drum     Channel = "drum"
	Guitar   Channel = "guitar"
	Om       Channel = "om"
	Gong     Channel = "gong"
	Ambience Channel = "ambience"
	Nature   Channel = "nature"
)

// Channels lists every channel.
var Channels = []Channel{Voice, Drum, Guitar, Om, Gong, Ambience, Nature}

// Tone is a generated sine note.
type Tone struct {
	Freq     float64
	Gain     float64
	Delay    time.Duration
	Duration time.Duration
}

// Sound is either an asset file, relative to the assets directory, or a set of
// generated tones.
type Sound struct {
	Asset  string
	Tones  []Tone
	Volume float64
	Loop   bool
}

// Backend performs the actual playback.
type Backend interface {
	// Play stops the sound on ch, if any, and starts s in its place.
	Play(ch Channel, s Sound) error
	SetVolume(ch Channel, volume float64)
	Stop(ch Channel)
	Close() error
}
