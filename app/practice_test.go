package app

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/engine"
	"github.com/ayoisaiah/anuloma/internal/models"
	"github.com/ayoisaiah/anuloma/internal/progress"
	"github.com/ayoisaiah/anuloma/store"
)

type note struct {
	title string
	msg   string
}

type fakeSaver struct {
	err     error
	records []models.SessionRecord
}

func (f *fakeSaver) SaveSession(_ string, rec *models.SessionRecord) error {
	f.records = append(f.records, *rec)
	return f.err
}

func newTestDB(t *testing.T) *store.Client {
	t.Helper()

	db, err := store.NewClient(filepath.Join(t.TempDir(), "anuloma.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func newTestRecorder(saver sessionSaver) (*sessionRecorder, *[]note) {
	var notes []note

	r := newSessionRecorder(saver, "ayo", func(title, msg string) {
		notes = append(notes, note{title, msg})
	})

	clock := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	return r, &notes
}

// practiseUntilDone drives e as the scheduler would, skipping every rest.
func practiseUntilDone(e *engine.Engine) {
	for !e.Done() {
		if e.CountingDown() {
			e.SkipPause()
			continue
		}

		e.Tick()
	}
}

func TestRecorderSavesFinishedSession(t *testing.T) {
	db := newTestDB(t)

	tracker, err := progress.New(db, "ayo")
	require.NoError(t, err)

	_, err = tracker.CreateProfile("Arjuna", models.Male)
	require.NoError(t, err)

	rec, notes := newTestRecorder(db)

	e := engine.New(engine.Settings{
		Cycle:         breath.CycleAt(0),
		TargetRounds:  2,
		StartLocation: 1,
	}, tracker, rec)

	e.Start()
	practiseUntilDone(e)

	sessions, err := db.GetSessions("ayo", time.Time{}, time.Now().AddDate(1, 0, 0))
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	got := sessions[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, models.Finished, got.Outcome)
	assert.Equal(t, 2, got.RoundsCompleted)
	assert.Equal(t, 2, got.TargetRounds)
	assert.Equal(t, 168, got.SecondsElapsed)
	assert.Equal(t, "1–4–2", got.CycleLabel)
	assert.True(t, got.EndTime.After(got.StartTime))

	p := tracker.Profile()
	assert.Equal(t, 2, p.TotalRoundsCompleted)
	assert.Equal(t, []int{1, 2, 3}, p.LocationsUnlocked)

	require.Len(t, *notes, 3)
	assert.Equal(t, "New location unlocked", (*notes)[0].title)
	assert.Equal(t, "New location unlocked", (*notes)[1].title)
	assert.Equal(t, "Practice complete", (*notes)[2].title)
	assert.Equal(t, "2 rounds in 2m 48s", (*notes)[2].msg)
}

func TestRecorderSavesStoppedSession(t *testing.T) {
	saver := &fakeSaver{}
	rec, notes := newTestRecorder(saver)

	e := engine.New(engine.Settings{
		Cycle:         breath.CycleAt(0),
		TargetRounds:  3,
		StartLocation: 1,
	}, nil, rec)

	e.Start()

	for range breath.RoundSeconds(breath.CycleAt(0)) {
		e.Tick()
	}

	require.True(t, e.CountingDown())
	e.SkipPause()

	for range 6 {
		e.Tick()
	}

	e.Stop()
	e.Stop()

	require.Len(t, saver.records, 1)

	got := saver.records[0]
	assert.Equal(t, models.Stopped, got.Outcome)
	assert.Equal(t, 1, got.RoundsCompleted)
	assert.Equal(t, 90, got.SecondsElapsed)
	assert.Empty(t, *notes)
}

func TestRecorderStopAfterFinishDoesNotSaveTwice(t *testing.T) {
	saver := &fakeSaver{}
	rec, _ := newTestRecorder(saver)

	e := engine.New(engine.Settings{
		Cycle:         breath.CycleAt(0),
		TargetRounds:  1,
		StartLocation: 1,
	}, nil, rec)

	e.Start()
	practiseUntilDone(e)
	e.Stop()

	require.Len(t, saver.records, 1)
	assert.Equal(t, models.Finished, saver.records[0].Outcome)
}

func TestRecorderSaveErrorDoesNotPanic(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	rec, _ := newTestRecorder(saver)

	e := engine.New(engine.Settings{
		Cycle:         breath.CycleAt(0),
		TargetRounds:  1,
		StartLocation: 1,
	}, nil, rec)

	e.Start()
	practiseUntilDone(e)

	assert.Len(t, saver.records, 1)
	assert.Equal(t, models.Finished, rec.Record().Outcome)
}

func TestRunSessionCmd(t *testing.T) {
	require.NoError(t, runSessionCmd(""))
	require.NoError(t, runSessionCmd("   "))

	err := runSessionCmd(`notify-send "unterminated`)
	assert.ErrorIs(t, err, errSessionCmd)
}

func TestInBackgroundDoesNotWaitForNotifier(t *testing.T) {
	release := make(chan struct{})
	got := make(chan note, 1)

	notify := inBackground(func(title, msg string) {
		<-release
		got <- note{title, msg}
	})

	returned := make(chan struct{})

	go func() {
		notify("Practice complete", "3 rounds in 4m 12s")
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("notifier blocked the caller")
	}

	close(release)

	select {
	case n := <-got:
		assert.Equal(t, note{"Practice complete", "3 rounds in 4m 12s"}, n)
	case <-time.After(time.Second):
		t.Fatal("notification was never delivered")
	}
}
