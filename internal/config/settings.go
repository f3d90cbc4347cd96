package config

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

type (
	// SoundPatch is a partial update of SoundSettings. Nil fields are left
	// untouched.
	SoundPatch struct {
		VoiceEnabled  *bool
		VoiceLanguage *string
		VoiceStyle    *string
		VoiceVolume   *int
		DrumEnabled   *bool
		DrumVolume    *int
		GuitarEnabled *bool
		GuitarVolume  *int
	}

	MusicPatch struct {
		MusicEnabled        *bool
		MusicVolume         *int
		SyncWithBreath      *bool
		NatureSoundsEnabled *bool
		NatureSoundsVolume  *int
		NatureTrack         *string
	}

	VisualPatch struct {
		ColorTheme                *string
		GlowIntensity             *string
		DotStyle                  *string
		CharacterAnimationEnabled *bool
		AnimationAmplitude        *string
		TransitionSpeed           *string
	}

	AccessibilityPatch struct {
		SubtitlesEnabled *bool
		HighContrastMode *bool
		HapticFeedback   *bool
		LargeFontMode    *bool
		EyesClosedMode   *bool
	}
)

func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// UpdateSound merges p into the sound group.
func (s *AppSettings) UpdateSound(p SoundPatch) {
	apply(&s.Sound.VoiceEnabled, p.VoiceEnabled)
	apply(&s.Sound.VoiceLanguage, p.VoiceLanguage)
	apply(&s.Sound.VoiceStyle, p.VoiceStyle)
	apply(&s.Sound.VoiceVolume, p.VoiceVolume)
	apply(&s.Sound.DrumEnabled, p.DrumEnabled)
	apply(&s.Sound.DrumVolume, p.DrumVolume)
	apply(&s.Sound.GuitarEnabled, p.GuitarEnabled)
	apply(&s.Sound.GuitarVolume, p.GuitarVolume)
	s.Clamp()
}

// UpdateMusic merges p into the music group.
func (s *AppSettings) UpdateMusic(p MusicPatch) {
	apply(&s.Music.MusicEnabled, p.MusicEnabled)
	apply(&s.Music.MusicVolume, p.MusicVolume)
	apply(&s.Music.SyncWithBreath, p.SyncWithBreath)
	apply(&s.Music.NatureSoundsEnabled, p.NatureSoundsEnabled)
	apply(&s.Music.NatureSoundsVolume, p.NatureSoundsVolume)
	apply(&s.Music.NatureTrack, p.NatureTrack)
	s.Clamp()
}

// UpdateVisual merges p into the visual group.
func (s *AppSettings) UpdateVisual(p VisualPatch) {
	apply(&s.Visual.ColorTheme, p.ColorTheme)
	apply(&s.Visual.GlowIntensity, p.GlowIntensity)
	apply(&s.Visual.DotStyle, p.DotStyle)
	apply(&s.Visual.CharacterAnimationEnabled, p.CharacterAnimationEnabled)
	apply(&s.Visual.AnimationAmplitude, p.AnimationAmplitude)
	apply(&s.Visual.TransitionSpeed, p.TransitionSpeed)
	s.Clamp()
}

// UpdateAccessibility merges p into the accessibility group.
func (s *AppSettings) UpdateAccessibility(p AccessibilityPatch) {
	apply(&s.Accessibility.SubtitlesEnabled, p.SubtitlesEnabled)
	apply(&s.Accessibility.HighContrastMode, p.HighContrastMode)
	apply(&s.Accessibility.HapticFeedback, p.HapticFeedback)
	apply(&s.Accessibility.LargeFontMode, p.LargeFontMode)
	apply(&s.Accessibility.EyesClosedMode, p.EyesClosedMode)
}

// Reset restores the factory preferences.
func (s *AppSettings) Reset() {
	*s = DefaultSettings()
}

// SettingKeys lists every key accepted by Set, in display order.
func SettingKeys() []string {
	keys := make([]string, 0, len(flatten(Default())))

	for k := range flatten(Default()) {
		if strings.HasPrefix(k, "practice.") || strings.HasPrefix(k, "system.") {
			continue
		}

		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Set updates a single preference addressed as "group.key", for example
// "sound.voice_volume". The value is parsed according to the field type.
func (s *AppSettings) Set(key, value string) error {
	group, field, ok := strings.Cut(strings.ToLower(strings.TrimSpace(key)), ".")
	if !ok {
		return errUnknownSetting.Fmt(key)
	}

	var err error

	switch group {
	case "sound":
		var p SoundPatch

		err = soundField(&p, field, value)
		if err == nil {
			s.UpdateSound(p)
		}
	case "music":
		var p MusicPatch

		err = musicField(&p, field, value)
		if err == nil {
			s.UpdateMusic(p)
		}
	case "visual":
		var p VisualPatch

		err = visualField(&p, field, value)
		if err == nil {
			s.UpdateVisual(p)
		}
	case "accessibility":
		var p AccessibilityPatch

		err = accessibilityField(&p, field, value)
		if err == nil {
			s.UpdateAccessibility(p)
		}
	default:
		return errUnknownSetting.Fmt(key)
	}

	if err != nil {
		if errors.Is(err, errUnknownSetting) {
			return errUnknownSetting.Fmt(key)
		}

		return errInvalidSettingValue.Fmt(value, key)
	}

	return nil
}

func soundField(p *SoundPatch, field, value string) error {
	var err error

	switch field {
	case "voice_enabled":
		p.VoiceEnabled, err = parseBool(value)
	case "voice_language":
		p.VoiceLanguage = &value
	case "voice_style":
		p.VoiceStyle = &value
	case "voice_volume":
		p.VoiceVolume, err = parseInt(value)
	case "drum_enabled":
		p.DrumEnabled, err = parseBool(value)
	case "drum_volume":
		p.DrumVolume, err = parseInt(value)
	case "guitar_enabled":
		p.GuitarEnabled, err = parseBool(value)
	case "guitar_volume":
		p.GuitarVolume, err = parseInt(value)
	default:
		return errUnknownSetting
	}

	return err
}

func musicField(p *MusicPatch, field, value string) error {
	var err error

	switch field {
	case "music_enabled":
		p.MusicEnabled, err = parseBool(value)
	case "music_volume":
		p.MusicVolume, err = parseInt(value)
	case "sync_with_breath":
		p.SyncWithBreath, err = parseBool(value)
	case "nature_sounds_enabled":
		p.NatureSoundsEnabled, err = parseBool(value)
	case "nature_sounds_volume":
		p.NatureSoundsVolume, err = parseInt(value)
	case "nature_track":
		p.NatureTrack = &value
	default:
		return errUnknownSetting
	}

	return err
}

func visualField(p *VisualPatch, field, value string) error {
	var err error

	switch field {
	case "color_theme":
		p.ColorTheme = &value
	case "glow_intensity":
		p.GlowIntensity = &value
	case "dot_style":
		p.DotStyle = &value
	case "character_animation_enabled":
		p.CharacterAnimationEnabled, err = parseBool(value)
	case "animation_amplitude":
		p.AnimationAmplitude = &value
	case "transition_speed":
		p.TransitionSpeed = &value
	default:
		return errUnknownSetting
	}

	return err
}

func accessibilityField(p *AccessibilityPatch, field, value string) error {
	var err error

	switch field {
	case "subtitles_enabled":
		p.SubtitlesEnabled, err = parseBool(value)
	case "high_contrast_mode":
		p.HighContrastMode, err = parseBool(value)
	case "haptic_feedback":
		p.HapticFeedback, err = parseBool(value)
	case "large_font_mode":
		p.LargeFontMode, err = parseBool(value)
	case "eyes_closed_mode":
		p.EyesClosedMode, err = parseBool(value)
	default:
		return errUnknownSetting
	}

	return err
}

func parseBool(s string) (*bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func parseInt(s string) (*int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}

	return &n, nil
}
