package config

import (
	"slices"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/i18n"
	"github.com/ayoisaiah/anuloma/internal/location"
)

const (
	defaultRounds     = breath.DefaultRounds
	defaultCycleIndex = breath.DefaultCycleIndex
	defaultLocation   = location.First

	minVolume = 0
	maxVolume = 100

	VoiceStyleShort    = "short"
	VoiceStyleDetailed = "detailed"

	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeAuto  = "auto"
)

var (
	voiceStyles    = []string{VoiceStyleShort, VoiceStyleDetailed}
	colorThemes    = []string{ThemeDark, ThemeLight, ThemeAuto}
	glowLevels     = []string{"low", "medium", "high"}
	dotStyles      = []string{"circles", "crystals", "stars"}
	amplitudes     = []string{"small", "medium", "large"}
	transitionKind = []string{"soft", "fast"}
)

// Clamp bounds every numeric setting to its valid range and replaces unknown
// enum values with their defaults. Invalid input is corrected here so that the
// practice engine never has to validate it.
func (c *Config) Clamp() {
	c.Practice.Rounds = breath.ClampRounds(c.Practice.Rounds)
	c.Practice.CycleIndex = breath.ClampCycleIndex(c.Practice.CycleIndex)
	c.Practice.StartLocation = location.Clamp(c.Practice.StartLocation)

	if c.System.User == "" {
		c.System.User = defaultUser()
	}

	c.AppSettings.Clamp()
}

// Clamp normalises the preferences in place.
func (s *AppSettings) Clamp() {
	def := DefaultSettings()

	s.Sound.VoiceVolume = clampVolume(s.Sound.VoiceVolume)
	s.Sound.DrumVolume = clampVolume(s.Sound.DrumVolume)
	s.Sound.GuitarVolume = clampVolume(s.Sound.GuitarVolume)
	s.Sound.VoiceLanguage = string(i18n.Parse(s.Sound.VoiceLanguage))
	s.Sound.VoiceStyle = oneOf(s.Sound.VoiceStyle, voiceStyles, def.Sound.VoiceStyle)

	s.Music.MusicVolume = clampVolume(s.Music.MusicVolume)
	s.Music.NatureSoundsVolume = clampVolume(s.Music.NatureSoundsVolume)

	s.Visual.ColorTheme = oneOf(s.Visual.ColorTheme, colorThemes, def.Visual.ColorTheme)
	s.Visual.GlowIntensity = oneOf(s.Visual.GlowIntensity, glowLevels, def.Visual.GlowIntensity)
	s.Visual.DotStyle = oneOf(s.Visual.DotStyle, dotStyles, def.Visual.DotStyle)
	s.Visual.AnimationAmplitude = oneOf(
		s.Visual.AnimationAmplitude,
		amplitudes,
		def.Visual.AnimationAmplitude,
	)
	s.Visual.TransitionSpeed = oneOf(
		s.Visual.TransitionSpeed,
		transitionKind,
		def.Visual.TransitionSpeed,
	)
}

func clampVolume(v int) int {
	return min(max(v, minVolume), maxVolume)
}

func oneOf(v string, allowed []string, fallback string) string {
	if slices.Contains(allowed, v) {
		return v
	}

	return fallback
}

// Cycle returns the breathing cycle selected by the practice configuration.
func (p PracticeConfig) Cycle() breath.Cycle {
	return breath.CycleAt(p.CycleIndex)
}
