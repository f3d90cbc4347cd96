package timer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/anuloma/internal/config"
	"github.com/ayoisaiah/anuloma/internal/engine"
	"github.com/ayoisaiah/anuloma/internal/i18n"
)

// handleSnapshot records the latest engine state and waits for the next one.
func (t *Timer) handleSnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	prev := t.snap
	t.snap = engine.Snapshot(msg)

	if prev.Round != t.snap.Round || prev.Mode != t.snap.Mode {
		t.status = ""
	}

	return t, waitForSnapshot(t.ctrl.Updates())
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		t.ctrl.Stop()

		return t, nil

	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.snap.IsFinished() {
			return t, nil
		}

		t.ctrl.Toggle()

	case key.Matches(msg, defaultKeymap.skip):
		if t.snap.RoundPaused() {
			t.ctrl.SkipPause()
		}

	case key.Matches(msg, defaultKeymap.ambience):
		if t.mixer == nil {
			return t, nil
		}

		if t.mixer.ToggleAmbience() {
			t.status = "ambience on"
		} else {
			t.status = "ambience off"
		}

	case key.Matches(msg, defaultKeymap.prevNature),
		key.Matches(msg, defaultKeymap.nextNature):
		if t.mixer == nil {
			return t, nil
		}

		step := 1
		if key.Matches(msg, defaultKeymap.prevNature) {
			step = -1
		}

		if track, ok := t.mixer.CycleNature(step); ok {
			t.status = "nature: " + track.Name
		}

	case key.Matches(msg, defaultKeymap.subtitles):
		t.settings.Accessibility.SubtitlesEnabled = !t.settings.Accessibility.SubtitlesEnabled
	}

	return t, nil
}

func (t *Timer) handleSettings(s config.AppSettings) {
	t.settings = s
	t.lang = i18n.Parse(s.Sound.VoiceLanguage)
	t.style = NewStyle(s.Visual, s.Accessibility)
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case snapshotMsg:
		return t.handleSnapshot(msg)

	case sessionEndedMsg:
		t.ended = true

		return t, tea.Quit

	case SettingsMsg:
		t.handleSettings(config.AppSettings(msg))

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		t.help.Width = msg.Width

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
