package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/anuloma/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "anuloma.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestProfileRoundTrip(t *testing.T) {
	c := newTestClient(t)

	p, err := c.GetProfile("ayo")
	require.NoError(t, err)
	assert.Nil(t, p)

	want := &models.Profile{
		CreatedAt:            time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		HeroName:             "Arjuna",
		Character:            models.Male,
		LocationsUnlocked:    []int{1, 2, 3},
		TotalRoundsCompleted: 2,
		TotalTimeSeconds:     800,
		TotalBreathCycles:    12,
	}

	require.NoError(t, c.SaveProfile("ayo", want))

	got, err := c.GetProfile("ayo")
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}

	other, err := c.GetProfile("someone-else")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestLegacyProfileDefaults(t *testing.T) {
	c := newTestClient(t)

	legacy := []byte(`{"hero_name":"Sita","total_rounds_completed":7}`)

	err := c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(profileBucket)).Put([]byte("ayo"), legacy)
	})
	require.NoError(t, err)

	p, err := c.GetProfile("ayo")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, 42, p.TotalBreathCycles)
	assert.Equal(t, []int{1}, p.LocationsUnlocked)
}

func TestExplicitZeroBreathCyclesIsKept(t *testing.T) {
	c := newTestClient(t)

	raw := []byte(
		`{"total_rounds_completed":3,"total_breath_cycles":0,"locations_unlocked":[2,3]}`,
	)

	err := c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(profileBucket)).Put([]byte("ayo"), raw)
	})
	require.NoError(t, err)

	p, err := c.GetProfile("ayo")
	require.NoError(t, err)

	assert.Equal(t, 0, p.TotalBreathCycles)
	assert.Equal(t, []int{1, 2, 3}, p.LocationsUnlocked)
}

func TestCorruptProfile(t *testing.T) {
	c := newTestClient(t)

	err := c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(profileBucket)).Put([]byte("ayo"), []byte("{"))
	})
	require.NoError(t, err)

	_, err = c.GetProfile("ayo")
	assert.ErrorIs(t, err, errDecodeProfile)
}

func TestSessionsRange(t *testing.T) {
	c := newTestClient(t)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := range 5 {
		rec := &models.SessionRecord{
			ID:              "s" + string(rune('a'+i)),
			StartTime:       day.AddDate(0, 0, i),
			EndTime:         day.AddDate(0, 0, i).Add(10 * time.Minute),
			Outcome:         models.Finished,
			TargetRounds:    3,
			RoundsCompleted: 3,
		}

		require.NoError(t, c.SaveSession("ayo", rec))
	}

	got, err := c.GetSessions("ayo", day.AddDate(0, 0, 1), day.AddDate(0, 0, 3))
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []string{"sb", "sc", "sd"}, ids)

	none, err := c.GetSessions("nobody", day, day.AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteProfile(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.SaveProfile("ayo", &models.Profile{HeroName: "x"}))
	require.NoError(t, c.SaveSession("ayo", &models.SessionRecord{
		ID:        "one",
		StartTime: time.Now(),
	}))

	require.NoError(t, c.DeleteProfile("ayo"))

	p, err := c.GetProfile("ayo")
	require.NoError(t, err)
	assert.Nil(t, p)

	recs, err := c.GetSessions("ayo", time.Time{}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, recs)

	// deleting twice is harmless
	require.NoError(t, c.DeleteProfile("ayo"))
}

func TestSecondClientFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anuloma.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	assert.ErrorIs(t, err, errAlreadyRunning)
}
