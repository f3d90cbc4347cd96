package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/i18n"
	"github.com/ayoisaiah/anuloma/internal/location"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
)

// nostrilIndicator shows which nostril is open during a phase.
func nostrilIndicator(n breath.Nostril) string {
	switch n {
	case breath.Left:
		return "● ○"
	case breath.Right:
		return "○ ●"
	default:
		return "◌ ◌"
	}
}

// phasePercent is the part of the current phase already performed.
func phasePercent(secondsIn, duration int) float64 {
	if duration <= 0 {
		return 1
	}

	return min(float64(secondsIn)/float64(duration), 1)
}

func (t *Timer) headerView() string {
	var s strings.Builder

	if l, ok := location.Get(t.snap.LocationID); ok {
		s.WriteString(t.style.Main.SetString(l.Emoji + " " + l.Name).String())
	}

	s.WriteString(t.style.Hint.SetString(fmt.Sprintf(
		" round %d/%d · cycle %d/%d · %s",
		t.snap.Round,
		t.snap.TargetRounds,
		t.snap.CycleNumber,
		breath.CyclesPerRound,
		t.snap.Cycle.Label,
	)).String())

	return s.String()
}

func (t *Timer) phaseView() string {
	var s strings.Builder

	p := t.snap.Phase
	label := i18n.PhaseLabel(t.lang, p.Key)

	s.WriteString(t.style.phase(p.Type).SetString(label).String())
	s.WriteString("  " + t.style.Secondary.SetString(nostrilIndicator(p.Nostril)).String())

	if t.snap.IsPaused {
		s.WriteString("  " + t.style.Secondary.SetString("[Paused]").String())
	}

	if t.settings.Accessibility.EyesClosedMode {
		return s.String()
	}

	s.WriteString("\n\n")
	s.WriteString(t.style.Main.SetString(
		timeutil.FormatClock(t.snap.SecondsRemaining),
	).String())
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(phasePercent(t.snap.SecondsInPhase, p.Duration)))

	return s.String()
}

func (t *Timer) restView() string {
	var s strings.Builder

	s.WriteString(t.style.Rest.SetString(i18n.Text(t.lang, "round.pause")).String())

	if t.snap.IsPaused {
		s.WriteString("  " + t.style.Secondary.SetString("[Paused]").String())
	}

	s.WriteString("\n\n")
	s.WriteString(t.style.Main.SetString(timeutil.FormatClock(t.snap.Countdown)).String())

	if l, ok := location.Get(t.snap.LocationID); ok && l.Quote != "" {
		s.WriteString("\n\n" + t.style.Quote.SetString("“"+l.Quote+"”").String())
		s.WriteString("\n" + t.style.Hint.SetString("  "+l.QuoteSource).String())
	}

	return s.String()
}

func (t *Timer) finishedView() string {
	var s strings.Builder

	s.WriteString(t.style.Rest.SetString(i18n.Text(t.lang, "session.finished")).String())
	s.WriteString("\n\n")
	s.WriteString(t.style.Secondary.SetString(fmt.Sprintf(
		"%d rounds in %s",
		t.snap.Round,
		timeutil.FormatDuration(t.snap.TotalSecondsElapsed),
	)).String())

	return s.String()
}

func (t *Timer) subtitleView() string {
	if !t.settings.Accessibility.SubtitlesEnabled || !t.snap.IsActive {
		return ""
	}

	if t.snap.IsFinished() || t.snap.RoundPaused() {
		return ""
	}

	return "\n\n" + t.style.Hint.SetString(
		i18n.Narration(t.lang, t.snap.Phase.Key),
	).String()
}

func (t *Timer) helpView() string {
	bindings := []key.Binding{defaultKeymap.togglePlay}

	if t.snap.RoundPaused() {
		bindings = append(bindings, defaultKeymap.skip)
	}

	if t.mixer != nil {
		bindings = append(bindings, defaultKeymap.ambience, defaultKeymap.nextNature)
	}

	bindings = append(bindings, defaultKeymap.subtitles, defaultKeymap.quit)

	return "\n\n" + t.help.ShortHelpView(bindings)
}

func (t *Timer) View() string {
	if t.ended || !t.snap.IsActive {
		return ""
	}

	var s strings.Builder

	s.WriteString(t.headerView())
	s.WriteString("\n\n")

	switch {
	case t.snap.IsFinished():
		s.WriteString(t.finishedView())
	case t.snap.RoundPaused():
		s.WriteString(t.restView())
	default:
		s.WriteString(t.phaseView())
	}

	s.WriteString(t.subtitleView())

	if t.status != "" {
		s.WriteString("\n\n" + t.style.Hint.SetString(t.status).String())
	}

	s.WriteString(t.helpView())

	return t.style.Base.Render(s.String())
}
