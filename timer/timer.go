// Package timer renders the practice screen. It never changes the session
// itself: key presses are forwarded to the scheduler and every frame is drawn
// from the latest engine snapshot
package timer

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/anuloma/internal/audio"
	"github.com/ayoisaiah/anuloma/internal/config"
	"github.com/ayoisaiah/anuloma/internal/engine"
	"github.com/ayoisaiah/anuloma/internal/i18n"
)

// Controller is the part of the scheduler the screen drives.
type Controller interface {
	Toggle()
	Stop()
	SkipPause()
	Updates() <-chan engine.Snapshot
}

// Mixer controls the looping channels from the keyboard.
type Mixer interface {
	ToggleAmbience() bool
	CycleNature(step int) (audio.NatureTrack, bool)
}

type (
	// SettingsMsg delivers reloaded preferences to a running screen.
	SettingsMsg config.AppSettings

	snapshotMsg engine.Snapshot

	sessionEndedMsg struct{}
)

// Timer is the bubbletea model of the practice screen.
type Timer struct {
	ctrl     Controller
	mixer    Mixer
	help     help.Model
	progress progress.Model
	status   string
	lang     i18n.Lang
	style    Style
	settings config.AppSettings
	snap     engine.Snapshot
	ended    bool
}

// New creates the practice screen. mixer may be nil when sound is off.
func New(
	ctrl Controller,
	mixer Mixer,
	settings config.AppSettings,
) (*Timer, error) {
	if ctrl == nil {
		return nil, errNoController
	}

	t := &Timer{
		ctrl:     ctrl,
		mixer:    mixer,
		settings: settings,
		lang:     i18n.Parse(settings.Sound.VoiceLanguage),
		style:    NewStyle(settings.Visual, settings.Accessibility),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}

	t.progress.Width = maxWidth

	return t, nil
}

// Snapshot returns the last state drawn on screen.
func (t *Timer) Snapshot() engine.Snapshot {
	return t.snap
}

func (t *Timer) Init() tea.Cmd {
	return waitForSnapshot(t.ctrl.Updates())
}

func waitForSnapshot(ch <-chan engine.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return sessionEndedMsg{}
		}

		return snapshotMsg(snap)
	}
}
