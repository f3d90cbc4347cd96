// Package report prints user facing messages to the console
package report

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/anuloma/internal/location"
	"github.com/ayoisaiah/anuloma/internal/models"
	"github.com/ayoisaiah/anuloma/internal/osutil"
	"github.com/ayoisaiah/anuloma/internal/progress"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
)

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}

// Welcome greets a newly created profile.
func Welcome(p *models.Profile) {
	start := "the first location"
	if l, ok := location.Get(location.First); ok {
		start = l.Emoji + " " + l.Name
	}

	pterm.Success.Printfln("Welcome, %s! Your path starts in %s", p.HeroName, start)
}

// sessionSummary describes a practice run in one line.
func sessionSummary(r models.SessionRecord) string {
	return fmt.Sprintf(
		"%d of %d rounds (%s) in %s",
		r.RoundsCompleted,
		r.TargetRounds,
		r.CycleLabel,
		timeutil.FormatDuration(r.SecondsElapsed),
	)
}

// Session prints the outcome of a practice run once the screen has closed,
// followed by the distance to the next achievement when p is not nil.
func Session(r models.SessionRecord, p *models.Profile) {
	if r.ID == "" {
		return
	}

	if r.Outcome == models.Finished {
		pterm.Success.Println("Practice complete: " + sessionSummary(r))
	} else {
		pterm.Info.Println("Practice stopped: " + sessionSummary(r))
	}

	if p == nil {
		return
	}

	if next, ok := progress.Next(p.TotalRoundsCompleted); ok {
		pterm.Info.Printfln(
			"%d more rounds to %q",
			next.Threshold-p.TotalRoundsCompleted,
			next.Title,
		)
	}
}
