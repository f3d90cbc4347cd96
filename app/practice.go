package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"github.com/ayoisaiah/anuloma/internal/audio"
	"github.com/ayoisaiah/anuloma/internal/config"
	"github.com/ayoisaiah/anuloma/internal/engine"
	"github.com/ayoisaiah/anuloma/internal/location"
	"github.com/ayoisaiah/anuloma/internal/models"
	"github.com/ayoisaiah/anuloma/internal/pathutil"
	"github.com/ayoisaiah/anuloma/internal/progress"
	"github.com/ayoisaiah/anuloma/internal/scheduler"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
	"github.com/ayoisaiah/anuloma/report"
	"github.com/ayoisaiah/anuloma/store"
	"github.com/ayoisaiah/anuloma/timer"
)

// sessionSaver is the part of the database the recorder writes to.
type sessionSaver interface {
	SaveSession(user string, rec *models.SessionRecord) error
}

// sessionRecorder keeps the history record of the running session and
// announces milestones on the desktop.
type sessionRecorder struct {
	db     sessionSaver
	notify func(title, msg string)
	now    func() time.Time
	user   string
	record models.SessionRecord
	saved  bool
}

func newSessionRecorder(
	db sessionSaver,
	user string,
	notify func(title, msg string),
) *sessionRecorder {
	if notify == nil {
		notify = func(string, string) {}
	}

	return &sessionRecorder{
		db:     db,
		user:   user,
		notify: notify,
		now:    time.Now,
	}
}

// OnEvent implements engine.Listener.
func (r *sessionRecorder) OnEvent(ev engine.Event) {
	switch e := ev.(type) {
	case engine.SessionStarted:
		r.saved = false
		r.record = models.SessionRecord{
			ID:           uuid.NewString(),
			StartTime:    r.now(),
			CycleLabel:   e.Cycle.Label,
			TargetRounds: e.TargetRounds,
		}
	case engine.RoundCompleted:
		r.record.RoundsCompleted = e.Round

		if e.UnlockedLocation == 0 {
			return
		}

		name := fmt.Sprintf("#%d", e.UnlockedLocation)
		if l, ok := location.Get(e.UnlockedLocation); ok {
			name = l.Name
		}

		r.notify("New location unlocked", name)
	case engine.SessionStopped:
		r.finish(models.Stopped, e.TotalSecondsElapsed)
	case engine.SessionFinished:
		r.finish(models.Finished, e.TotalSecondsElapsed)

		r.notify(
			"Practice complete",
			fmt.Sprintf(
				"%d rounds in %s",
				e.Rounds,
				timeutil.FormatDuration(e.TotalSecondsElapsed),
			),
		)
	}
}

func (r *sessionRecorder) finish(outcome models.Outcome, secs int) {
	if r.saved {
		return
	}

	r.record.Outcome = outcome
	r.record.EndTime = r.now()
	r.record.SecondsElapsed = secs
	r.saved = true

	if err := r.db.SaveSession(r.user, &r.record); err != nil {
		slog.Error(
			"saving session record failed",
			slog.String("id", r.record.ID),
			slog.Any("error", err),
		)
	}
}

// Record returns the history record of the last session.
func (r *sessionRecorder) Record() models.SessionRecord {
	return r.record
}

func desktopNotify(title, msg string) {
	if err := beeep.Notify(title, msg, ""); err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}
}

// inBackground returns a notifier that hands every message to notify on its
// own goroutine. Listeners run on the tick loop and must not block it.
func inBackground(notify func(title, msg string)) func(title, msg string) {
	return func(title, msg string) {
		go notify(title, msg)
	}
}

// runSessionCmd executes the command configured to run after a session.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	return cmd.Run()
}

// openAudio starts the speaker. A nil dispatcher is returned when no audio
// device is available; the session then runs silently.
func openAudio(settings config.AppSettings) (*audio.Dispatcher, func()) {
	dir := pathutil.AssetsDir()

	backend, err := audio.NewBeepBackend(dir)
	if err != nil {
		slog.Warn("audio disabled", slog.Any("error", err))
		return nil, func() {}
	}

	tracks, err := audio.NatureTracks(dir)
	if err != nil {
		slog.Warn("nature tracks unavailable", slog.Any("error", err))
	}

	closeFn := func() {
		if err := backend.Close(); err != nil {
			slog.Warn("closing audio failed", slog.Any("error", err))
		}
	}

	return audio.NewDispatcher(backend, settings, tracks), closeFn
}

// practise runs one session on the practice screen and returns its history
// record.
func practise(
	ctx context.Context,
	cfg *config.Config,
	db store.DB,
) (models.SessionRecord, error) {
	tracker, err := progress.New(db, cfg.System.User)
	if err != nil {
		return models.SessionRecord{}, err
	}

	if !tracker.HasProfile() {
		pterm.Info.Println(
			"No profile found: this session will not count towards your progress. Run 'anuloma setup' to create one",
		)
	}

	var notify func(string, string)
	if cfg.System.Notify {
		notify = inBackground(desktopNotify)
	}

	rec := newSessionRecorder(db, cfg.System.User, notify)

	haptics := timer.NewHaptics(os.Stderr, cfg.Accessibility.HapticFeedback)

	listeners := []engine.Listener{rec, haptics}

	var mixer timer.Mixer

	dispatcher, closeAudio := openAudio(cfg.AppSettings)
	defer closeAudio()

	teardown := func() {}

	if dispatcher != nil {
		listeners = append(listeners, dispatcher)
		mixer = dispatcher
		teardown = dispatcher.StopAll
	}

	eng := engine.New(engine.Settings{
		Cycle:         cfg.Practice.Cycle(),
		TargetRounds:  cfg.Practice.Rounds,
		StartLocation: cfg.Practice.StartLocation,
	}, tracker, listeners...)

	sched := scheduler.New(eng, scheduler.WithTeardown(teardown))

	t, err := timer.New(sched, mixer, cfg.AppSettings)
	if err != nil {
		return models.SessionRecord{}, err
	}

	p := tea.NewProgram(t, tea.WithContext(ctx))

	watcher, err := config.Watch(cfg.Path, func(s config.AppSettings) {
		if dispatcher != nil {
			dispatcher.UpdateSettings(s)
		}

		haptics.SetEnabled(s.Accessibility.HapticFeedback)

		p.Send(timer.SettingsMsg(s))
	})
	if err != nil {
		slog.Warn("settings will not be reloaded", slog.Any("error", err))
	} else {
		defer watcher.Close()
	}

	slog.Info("practice started", slog.String("config", cfg.String()))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sched.Run(gctx)
	})

	g.Go(func() error {
		defer sched.Stop()

		_, err := p.Run()

		return err
	})

	err = g.Wait()

	report.Session(rec.Record(), tracker.Profile())

	return rec.Record(), err
}
