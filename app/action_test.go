package app

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/anuloma/internal/config"
	"github.com/ayoisaiah/anuloma/internal/models"
	"github.com/ayoisaiah/anuloma/internal/progress"
	"github.com/ayoisaiah/anuloma/internal/testutil"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
)

var now = time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)

func TestStatsRange(t *testing.T) {
	start, end, err := statsRange("", "", string(timeutil.Period7Days), now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, timeutil.RoundToEnd(now), end)

	start, _, err = statsRange("", "", string(timeutil.PeriodToday), now)
	require.NoError(t, err)
	assert.Equal(t, timeutil.RoundToStart(now), start)

	start, _, err = statsRange("", "", string(timeutil.PeriodAllTime), now)
	require.NoError(t, err)
	assert.True(t, start.IsZero())
}

func TestStatsRangeExplicitDates(t *testing.T) {
	start, end, err := statsRange("2024-03-01", "2024-03-05", "7days", now)
	require.NoError(t, err)

	assert.Equal(t, 1, start.Day())
	assert.Equal(t, time.March, start.Month())
	assert.Equal(t, 5, end.Day())
}

func TestStatsRangeErrors(t *testing.T) {
	_, _, err := statsRange("", "", "fortnight", now)
	assert.ErrorIs(t, err, errInvalidPeriod)

	_, _, err = statsRange("2024-03-05", "2024-03-01", "7days", now)
	assert.ErrorIs(t, err, errInvalidDateRange)
}

func TestPrintCycles(t *testing.T) {
	var buf bytes.Buffer

	printCycles(&buf, 3, 0)

	out := buf.String()
	assert.Contains(t, out, "3 ROUNDS")
	assert.Contains(t, out, "1–4–2")
	assert.Contains(t, out, "20–80–40")
	// one round of 1–4–2 lasts 84 seconds
	assert.Contains(t, out, "01:24")
	assert.Contains(t, out, "4m 12s")
}

func TestPrintMap(t *testing.T) {
	var buf bytes.Buffer

	err := printMap(&buf, func(id int) bool { return id <= 2 })
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "unlocked"))
	assert.Contains(t, out, "locked")
	assert.Contains(t, out, "Мегаполис")
}

func TestProfileView(t *testing.T) {
	p := &models.Profile{
		HeroName:             "Arjuna",
		Character:            models.Male,
		LocationsUnlocked:    []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		TotalRoundsCompleted: 12,
		TotalTimeSeconds:     12 * 84,
		TotalBreathCycles:    72,
	}

	b, err := json.Marshal(newProfileView(p))
	require.NoError(t, err)

	var got struct {
		Next         progress.Achievement   `json:"next_achievement"`
		HeroName     string                 `json:"hero_name"`
		Achievements []progress.Achievement `json:"achievements"`
		Rounds       int                    `json:"total_rounds_completed"`
	}

	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, "Arjuna", got.HeroName)
	assert.Equal(t, 12, got.Rounds)
	assert.Equal(t, "adept", got.Next.ID)

	ids := make([]string, len(got.Achievements))
	for i, a := range got.Achievements {
		ids[i] = a.ID
	}

	if diff := cmp.Diff([]string{"first-breath", "apprentice"}, ids); diff != "" {
		t.Errorf("achievements mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileViewWithoutAchievements(t *testing.T) {
	b, err := json.Marshal(newProfileView(&models.Profile{HeroName: "Sita"}))
	require.NoError(t, err)

	assert.Contains(t, string(b), `"achievements":[]`)
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer

	printProfile(&buf, &models.Profile{
		HeroName:             "Sita",
		Character:            models.Female,
		LocationsUnlocked:    []int{1, 2, 3},
		TotalRoundsCompleted: 3,
		TotalTimeSeconds:     3 * 84,
		TotalBreathCycles:    18,
	})

	out := buf.String()
	assert.Contains(t, out, "Sita")
	assert.Contains(t, out, "3/10")
	assert.Contains(t, out, "4m 12s")
	assert.Contains(t, out, "7 to go")
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{input: "\n", want: true},
		{input: "y\n", want: true},
		{input: "", want: true},
		{input: "n\n", want: false},
		{input: "no\n", want: false},
	}

	for _, tc := range cases {
		var out bytes.Buffer

		got := confirm(&out, strings.NewReader(tc.input), "Are you sure")
		assert.Equal(t, tc.want, got, "input %q", tc.input)
		assert.Contains(t, out.String(), "Press ENTER to proceed")
	}
}

func TestResetProfile(t *testing.T) {
	db := newTestDB(t)

	tracker, err := progress.New(db, "ayo")
	require.NoError(t, err)

	var out bytes.Buffer

	err = resetProfile(tracker, &out, strings.NewReader("\n"), false)
	require.ErrorIs(t, err, errNoProfile)

	_, err = tracker.CreateProfile("Arjuna", models.Male)
	require.NoError(t, err)

	require.NoError(t, resetProfile(tracker, &out, strings.NewReader("n\n"), false))
	assert.True(t, tracker.HasProfile(), "declined reset keeps the profile")

	require.NoError(t, resetProfile(tracker, &out, strings.NewReader("\n"), false))
	assert.False(t, tracker.HasProfile())

	p, err := db.GetProfile("ayo")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(path))
	require.NoError(t, err)

	return cfg
}

func TestSetSetting(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, setSetting(cfg, "sound.voice_volume", "60"))
	require.NoError(t, setSetting(cfg, "music.nature_track", "rain"))

	saved, err := config.LoadSettings(cfg.Path)
	require.NoError(t, err)

	assert.Equal(t, 60, saved.Sound.VoiceVolume)
	assert.Equal(t, "rain", saved.Music.NatureTrack)

	assert.Error(t, setSetting(cfg, "sound.missing", "1"))
	assert.Error(t, setSetting(cfg, "sound.voice_volume", "loud"))
}

func TestSetSettingClampsVolume(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, setSetting(cfg, "music.music_volume", "250"))

	saved, err := config.LoadSettings(cfg.Path)
	require.NoError(t, err)

	assert.Equal(t, 100, saved.Music.MusicVolume)
}

func TestResetSettings(t *testing.T) {
	cfg := newTestConfig(t)

	require.NoError(t, setSetting(cfg, "accessibility.high_contrast_mode", "true"))
	require.NoError(t, resetSettings(cfg))

	saved, err := config.LoadSettings(cfg.Path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSettings(), saved)
}

func TestPrintSettings(t *testing.T) {
	var buf bytes.Buffer

	printSettings(&buf, config.Default())

	out := buf.String()
	assert.Contains(t, out, "sound.voice_volume")
	assert.Contains(t, out, "music.nature_track")
	assert.NotContains(t, out, "system.user")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown", "round", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "shown", entry["msg"])
	assert.EqualValues(t, 3, entry["round"])
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}

type profileJSONTest struct {
	t *testing.T
	p *models.Profile
}

func (tc profileJSONTest) Output() ([]byte, string) {
	var buf bytes.Buffer

	require.NoError(tc.t, writeJSON(&buf, newProfileView(tc.p)))

	return buf.Bytes(), "profile_view"
}

func TestProfileJSONGolden(t *testing.T) {
	testutil.CompareGoldenFile(t, profileJSONTest{
		t: t,
		p: &models.Profile{
			CreatedAt:            time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			HeroName:             "Arjuna",
			Character:            models.Male,
			LocationsUnlocked:    []int{1, 2, 3},
			TotalRoundsCompleted: 3,
			TotalTimeSeconds:     252,
			TotalBreathCycles:    18,
		},
	})
}

func TestHandEditedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, testutil.CopyFile("testdata/partial_config.yml", path))

	cfg, err := config.New(config.WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Practice.Rounds)
	assert.Equal(t, "en", cfg.Sound.VoiceLanguage)
	assert.Equal(t, 100, cfg.Sound.VoiceVolume, "volumes are clamped")
	assert.Equal(t, "rain", cfg.Music.NatureTrack)
	assert.Equal(
		t,
		config.DefaultSettings().Sound.DrumVolume,
		cfg.Sound.DrumVolume,
		"missing keys take their defaults",
	)

	require.NoError(t, setSetting(cfg, "sound.drum_volume", "10"))

	cfg, err = config.New(config.WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Sound.DrumVolume)
	assert.Equal(t, 5, cfg.Practice.Rounds, "practice defaults survive a settings write")
}
