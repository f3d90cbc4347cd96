// Package config loads and layers the anuloma configuration: the YAML file
// managed by viper, ANULOMA_* environment variables and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		AppSettings `mapstructure:",squash"`
		Practice    PracticeConfig `mapstructure:"practice" json:"practice"`
		System      SystemConfig   `mapstructure:"system"   json:"system"`
		Path        string         `mapstructure:"-"        json:"-"`
	}

	// PracticeConfig is supplied before a session starts and is immutable
	// while it runs.
	PracticeConfig struct {
		Rounds        int `mapstructure:"rounds"   json:"rounds"`
		CycleIndex    int `mapstructure:"cycle"    json:"cycle"`
		StartLocation int `mapstructure:"location" json:"location"`
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		User   string `mapstructure:"user"   json:"user"`
		Cmd    string `mapstructure:"cmd"    json:"cmd"`
		Notify bool   `mapstructure:"notify" json:"notify"`
		Debug  bool   `mapstructure:"debug"  json:"debug"`
	}

	// AppSettings groups the user preferences consumed by the audio
	// dispatcher and the practice screen.
	AppSettings struct {
		Sound         SoundSettings         `mapstructure:"sound"         json:"sound"`
		Music         MusicSettings         `mapstructure:"music"         json:"music"`
		Visual        VisualSettings        `mapstructure:"visual"        json:"visual"`
		Accessibility AccessibilitySettings `mapstructure:"accessibility" json:"accessibility"`
	}

	SoundSettings struct {
		VoiceLanguage string `mapstructure:"voice_language" json:"voice_language"`
		VoiceStyle    string `mapstructure:"voice_style"    json:"voice_style"`
		VoiceVolume   int    `mapstructure:"voice_volume"   json:"voice_volume"`
		DrumVolume    int    `mapstructure:"drum_volume"    json:"drum_volume"`
		GuitarVolume  int    `mapstructure:"guitar_volume"  json:"guitar_volume"`
		VoiceEnabled  bool   `mapstructure:"voice_enabled"  json:"voice_enabled"`
		DrumEnabled   bool   `mapstructure:"drum_enabled"   json:"drum_enabled"`
		GuitarEnabled bool   `mapstructure:"guitar_enabled" json:"guitar_enabled"`
	}

	MusicSettings struct {
		NatureTrack         string `mapstructure:"nature_track"          json:"nature_track"`
		MusicVolume         int    `mapstructure:"music_volume"          json:"music_volume"`
		NatureSoundsVolume  int    `mapstructure:"nature_sounds_volume"  json:"nature_sounds_volume"`
		MusicEnabled        bool   `mapstructure:"music_enabled"         json:"music_enabled"`
		SyncWithBreath      bool   `mapstructure:"sync_with_breath"      json:"sync_with_breath"`
		NatureSoundsEnabled bool   `mapstructure:"nature_sounds_enabled" json:"nature_sounds_enabled"`
	}

	VisualSettings struct {
		ColorTheme                string `mapstructure:"color_theme"                 json:"color_theme"`
		GlowIntensity             string `mapstructure:"glow_intensity"              json:"glow_intensity"`
		DotStyle                  string `mapstructure:"dot_style"                   json:"dot_style"`
		AnimationAmplitude        string `mapstructure:"animation_amplitude"         json:"animation_amplitude"`
		TransitionSpeed           string `mapstructure:"transition_speed"            json:"transition_speed"`
		CharacterAnimationEnabled bool   `mapstructure:"character_animation_enabled" json:"character_animation_enabled"`
	}

	AccessibilitySettings struct {
		SubtitlesEnabled bool `mapstructure:"subtitles_enabled"  json:"subtitles_enabled"`
		HighContrastMode bool `mapstructure:"high_contrast_mode" json:"high_contrast_mode"`
		HapticFeedback   bool `mapstructure:"haptic_feedback"    json:"haptic_feedback"`
		LargeFontMode    bool `mapstructure:"large_font_mode"    json:"large_font_mode"`
		EyesClosedMode   bool `mapstructure:"eyes_closed_mode"   json:"eyes_closed_mode"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config from the defaults and applies options in order.
// The result is always clamped to valid ranges.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	cfg.Clamp()

	return cfg, nil
}

// Default returns the configuration used when nothing else is specified.
func Default() *Config {
	return &Config{
		AppSettings: DefaultSettings(),
		Practice: PracticeConfig{
			Rounds:        defaultRounds,
			CycleIndex:    defaultCycleIndex,
			StartLocation: defaultLocation,
		},
		System: SystemConfig{
			User:   defaultUser(),
			Notify: true,
		},
	}
}

// DefaultSettings returns the factory preferences.
func DefaultSettings() AppSettings {
	return AppSettings{
		Sound: SoundSettings{
			VoiceEnabled:  true,
			VoiceLanguage: "ru",
			VoiceStyle:    VoiceStyleShort,
			VoiceVolume:   80,
			DrumEnabled:   true,
			DrumVolume:    70,
			GuitarEnabled: false,
			GuitarVolume:  50,
		},
		Music: MusicSettings{
			MusicEnabled:        true,
			MusicVolume:         30,
			SyncWithBreath:      false,
			NatureSoundsEnabled: true,
			NatureSoundsVolume:  40,
			NatureTrack:         "birds-morning",
		},
		Visual: VisualSettings{
			ColorTheme:                ThemeDark,
			GlowIntensity:             "medium",
			DotStyle:                  "circles",
			CharacterAnimationEnabled: true,
			AnimationAmplitude:        "medium",
			TransitionSpeed:           "soft",
		},
		Accessibility: AccessibilitySettings{
			SubtitlesEnabled: true,
		},
	}
}

func defaultUser() string {
	for _, k := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(k); u != "" {
			return u
		}
	}

	return "default"
}

// String is used for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf(
		"rounds=%d cycle=%d location=%d user=%s",
		c.Practice.Rounds,
		c.Practice.CycleIndex,
		c.Practice.StartLocation,
		c.System.User,
	)
}
