package config

import (
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvOptions are the ANULOMA_* environment overrides. Numbers are kept as
// strings so that an unset variable can be told apart from zero.
type EnvOptions struct {
	Rounds        string `env:"ANULOMA_ROUNDS"`
	Cycle         string `env:"ANULOMA_CYCLE"`
	Location      string `env:"ANULOMA_LOCATION"`
	User          string `env:"ANULOMA_USER"`
	VoiceLanguage string `env:"ANULOMA_VOICE_LANGUAGE"`
	Debug         bool   `env:"ANULOMA_DEBUG"`
	NoSound       bool   `env:"ANULOMA_NO_SOUND"`
}

// WithEnv returns an Option that applies environment overrides.
func WithEnv() Option {
	return func(c *Config) error {
		var opts EnvOptions

		if err := env.Parse(&opts); err != nil {
			return errParseEnv.Wrap(err)
		}

		return applyEnvOptions(c, opts)
	}
}

func applyEnvOptions(c *Config, opts EnvOptions) error {
	ints := []struct {
		dst  *int
		name string
		val  string
	}{
		{&c.Practice.Rounds, "ANULOMA_ROUNDS", opts.Rounds},
		{&c.Practice.CycleIndex, "ANULOMA_CYCLE", opts.Cycle},
		{&c.Practice.StartLocation, "ANULOMA_LOCATION", opts.Location},
	}

	for _, v := range ints {
		s := strings.TrimSpace(v.val)
		if s == "" {
			continue
		}

		n, err := strconv.Atoi(s)
		if err != nil {
			return errInvalidEnvNumber.Fmt(v.name, s)
		}

		*v.dst = n
	}

	if opts.User != "" {
		c.System.User = opts.User
	}

	if opts.VoiceLanguage != "" {
		c.Sound.VoiceLanguage = opts.VoiceLanguage
	}

	if opts.Debug {
		c.System.Debug = true
	}

	if opts.NoSound {
		c.Mute()
	}

	return nil
}

// Mute disables every audio channel for this run.
func (c *Config) Mute() {
	c.Sound.VoiceEnabled = false
	c.Sound.DrumEnabled = false
	c.Sound.GuitarEnabled = false
	c.Music.MusicEnabled = false
	c.Music.NatureSoundsEnabled = false
}
