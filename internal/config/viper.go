package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// viper keys for every persisted setting.
const (
	keyRounds        = "practice.rounds"
	keyCycle         = "practice.cycle"
	keyStartLocation = "practice.location"

	keyUser   = "system.user"
	keyCmd    = "system.cmd"
	keyNotify = "system.notify"
	keyDebug  = "system.debug"

	keyVoiceEnabled  = "sound.voice_enabled"
	keyVoiceLanguage = "sound.voice_language"
	keyVoiceStyle    = "sound.voice_style"
	keyVoiceVolume   = "sound.voice_volume"
	keyDrumEnabled   = "sound.drum_enabled"
	keyDrumVolume    = "sound.drum_volume"
	keyGuitarEnabled = "sound.guitar_enabled"
	keyGuitarVolume  = "sound.guitar_volume"

	keyMusicEnabled        = "music.music_enabled"
	keyMusicVolume         = "music.music_volume"
	keySyncWithBreath      = "music.sync_with_breath"
	keyNatureSoundsEnabled = "music.nature_sounds_enabled"
	keyNatureSoundsVolume  = "music.nature_sounds_volume"
	keyNatureTrack         = "music.nature_track"

	keyColorTheme         = "visual.color_theme"
	keyGlowIntensity      = "visual.glow_intensity"
	keyDotStyle           = "visual.dot_style"
	keyCharacterAnimation = "visual.character_animation_enabled"
	keyAnimationAmplitude = "visual.animation_amplitude"
	keyTransitionSpeed    = "visual.transition_speed"

	keySubtitles    = "accessibility.subtitles_enabled"
	keyHighContrast = "accessibility.high_contrast_mode"
	keyHaptic       = "accessibility.haptic_feedback"
	keyLargeFont    = "accessibility.large_font_mode"
	keyEyesClosed   = "accessibility.eyes_closed_mode"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A file holding the defaults is written when none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := newViper(configPath)

		setDefaults(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c, configPath)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c, configPath)
	}
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	return v
}

// setDefaults registers the values of c as viper defaults so that missing keys
// in the file fall back to them.
func setDefaults(v *viper.Viper, c *Config) {
	for k, val := range flatten(c) {
		v.SetDefault(k, val)
	}
}

func loadViperConfig(v *viper.Viper, c *Config, configPath string) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.Path = configPath

	return nil
}

// SaveSettings writes the practice defaults and preferences of c back to the
// config file.
func SaveSettings(c *Config) error {
	v := newViper(c.Path)

	for k, val := range flatten(c) {
		v.Set(k, val)
	}

	if err := v.WriteConfigAs(c.Path); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

// LoadSettings reads only the preferences from the config file at path.
func LoadSettings(path string) (AppSettings, error) {
	c := Default()

	v := newViper(path)
	setDefaults(v, c)

	if err := v.ReadInConfig(); err != nil {
		return AppSettings{}, errReadConfig.Wrap(err)
	}

	if err := v.Unmarshal(c); err != nil {
		return AppSettings{}, errReadConfig.Wrap(err)
	}

	c.AppSettings.Clamp()

	return c.AppSettings, nil
}

// Settings returns every persisted value keyed by its config file key.
func (c *Config) Settings() map[string]any {
	return flatten(c)
}

func flatten(c *Config) map[string]any {
	s := c.AppSettings

	return map[string]any{
		keyRounds:        c.Practice.Rounds,
		keyCycle:         c.Practice.CycleIndex,
		keyStartLocation: c.Practice.StartLocation,

		keyUser:   c.System.User,
		keyCmd:    c.System.Cmd,
		keyNotify: c.System.Notify,
		keyDebug:  c.System.Debug,

		keyVoiceEnabled:  s.Sound.VoiceEnabled,
		keyVoiceLanguage: s.Sound.VoiceLanguage,
		keyVoiceStyle:    s.Sound.VoiceStyle,
		keyVoiceVolume:   s.Sound.VoiceVolume,
		keyDrumEnabled:   s.Sound.DrumEnabled,
		keyDrumVolume:    s.Sound.DrumVolume,
		keyGuitarEnabled: s.Sound.GuitarEnabled,
		keyGuitarVolume:  s.Sound.GuitarVolume,

		keyMusicEnabled:        s.Music.MusicEnabled,
		keyMusicVolume:         s.Music.MusicVolume,
		keySyncWithBreath:      s.Music.SyncWithBreath,
		keyNatureSoundsEnabled: s.Music.NatureSoundsEnabled,
		keyNatureSoundsVolume:  s.Music.NatureSoundsVolume,
		keyNatureTrack:         s.Music.NatureTrack,

		keyColorTheme:         s.Visual.ColorTheme,
		keyGlowIntensity:      s.Visual.GlowIntensity,
		keyDotStyle:           s.Visual.DotStyle,
		keyCharacterAnimation: s.Visual.CharacterAnimationEnabled,
		keyAnimationAmplitude: s.Visual.AnimationAmplitude,
		keyTransitionSpeed:    s.Visual.TransitionSpeed,

		keySubtitles:    s.Accessibility.SubtitlesEnabled,
		keyHighContrast: s.Accessibility.HighContrastMode,
		keyHaptic:       s.Accessibility.HapticFeedback,
		keyLargeFont:    s.Accessibility.LargeFontMode,
		keyEyesClosed:   s.Accessibility.EyesClosedMode,
	}
}
