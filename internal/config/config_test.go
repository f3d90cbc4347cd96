package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestNewWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, path, cfg.Path)

	want := Default()
	want.Path = path

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestViperConfigFillsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	content := []byte(`practice:
  rounds: 3
  cycle: 3
sound:
  voice_language: en
  drum_volume: 250
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Practice.Rounds)
	assert.Equal(t, 3, cfg.Practice.CycleIndex)
	assert.Equal(t, 1, cfg.Practice.StartLocation)
	assert.Equal(t, "en", cfg.Sound.VoiceLanguage)
	assert.Equal(t, 100, cfg.Sound.DrumVolume, "volume is clamped")
	assert.True(t, cfg.Sound.VoiceEnabled, "missing keys take defaults")
	assert.Equal(t, "birds-morning", cfg.Music.NatureTrack)
}

func TestClamp(t *testing.T) {
	cfg := Default()
	cfg.Practice.Rounds = 0
	cfg.Practice.CycleIndex = 12
	cfg.Practice.StartLocation = 11
	cfg.Sound.VoiceVolume = -5
	cfg.Sound.VoiceLanguage = "klingon"
	cfg.Visual.DotStyle = "squares"

	cfg.Clamp()

	assert.Equal(t, 1, cfg.Practice.Rounds)
	assert.Equal(t, 11, cfg.Practice.CycleIndex)
	assert.Equal(t, 10, cfg.Practice.StartLocation)
	assert.Equal(t, 0, cfg.Sound.VoiceVolume)
	assert.Equal(t, "ru", cfg.Sound.VoiceLanguage)
	assert.Equal(t, "circles", cfg.Visual.DotStyle)
}

func TestWithEnv(t *testing.T) {
	t.Setenv("ANULOMA_ROUNDS", "7")
	t.Setenv("ANULOMA_CYCLE", "0")
	t.Setenv("ANULOMA_USER", "arjuna")
	t.Setenv("ANULOMA_NO_SOUND", "true")

	cfg, err := New(WithEnv())
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Practice.Rounds)
	assert.Equal(t, 0, cfg.Practice.CycleIndex)
	assert.Equal(t, "arjuna", cfg.System.User)
	assert.False(t, cfg.Sound.VoiceEnabled)
	assert.False(t, cfg.Music.MusicEnabled)
}

func TestWithEnvRejectsGarbage(t *testing.T) {
	t.Setenv("ANULOMA_ROUNDS", "many")

	_, err := New(WithEnv())

	assert.ErrorIs(t, err, errConfigOption)
	assert.ErrorIs(t, err, errInvalidEnvNumber)
}

func TestWithCLIConfig(t *testing.T) {
	cases := []struct {
		Flags    map[string]string
		Name     string
		Rounds   int
		Cycle    int
		Location int
	}{
		{
			Name:     "no flags keep defaults",
			Flags:    map[string]string{},
			Rounds:   defaultRounds,
			Cycle:    defaultCycleIndex,
			Location: defaultLocation,
		},
		{
			Name:     "explicit values override",
			Flags:    map[string]string{"rounds": "3", "cycle": "0", "location": "4"},
			Rounds:   3,
			Cycle:    0,
			Location: 4,
		},
		{
			Name:     "out of range values are clamped",
			Flags:    map[string]string{"rounds": "500", "cycle": "40"},
			Rounds:   100,
			Cycle:    11,
			Location: defaultLocation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			f := flag.NewFlagSet("anuloma", flag.ContinueOnError)
			f.Int("rounds", 0, "")
			f.Int("cycle", 0, "")
			f.Int("location", 0, "")
			f.String("voice", "", "")
			f.Bool("no-sound", false, "")
			f.Bool("debug", false, "")

			for k, v := range tc.Flags {
				require.NoError(t, f.Set(k, v))
			}

			ctx := cli.NewContext(&cli.App{}, f, nil)

			cfg, err := New(WithCLIConfig(ctx))
			require.NoError(t, err)

			assert.Equal(t, tc.Rounds, cfg.Practice.Rounds)
			assert.Equal(t, tc.Cycle, cfg.Practice.CycleIndex)
			assert.Equal(t, tc.Location, cfg.Practice.StartLocation)
		})
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	require.NoError(t, cfg.AppSettings.Set("sound.guitar_enabled", "true"))
	require.NoError(t, cfg.AppSettings.Set("music.nature_track", "rain"))
	require.NoError(t, SaveSettings(cfg))

	got, err := LoadSettings(path)
	require.NoError(t, err)

	assert.True(t, got.Sound.GuitarEnabled)
	assert.Equal(t, "rain", got.Music.NatureTrack)
}

func TestWatchReloadsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(path))
	require.NoError(t, err)

	changes := make(chan AppSettings, 8)

	w, err := Watch(path, func(s AppSettings) {
		changes <- s
	})
	require.NoError(t, err)

	defer w.Close()

	require.NoError(t, cfg.AppSettings.Set("sound.voice_enabled", "false"))
	require.NoError(t, SaveSettings(cfg))

	timeout := time.After(5 * time.Second)

	for {
		select {
		case s := <-changes:
			if !s.Sound.VoiceEnabled {
				return
			}
		case <-timeout:
			t.Fatal("settings change was not observed")
		}
	}
}
