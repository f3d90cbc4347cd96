package stats

import (
	"fmt"
	"io"

	"github.com/ayoisaiah/anuloma/internal/models"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
	"github.com/ayoisaiah/anuloma/internal/ui"
)

func printSessionsTable(w io.Writer, records []models.SessionRecord) {
	tableBody := [][]string{
		{"#", "START DATE", "CYCLE", "ROUNDS", "TIME", "STATUS"},
	}

	for i, r := range records {
		statusText := ui.Green("finished")
		if r.Outcome != models.Finished {
			statusText = ui.Red("stopped")
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			r.StartTime.Format("January 02, 2006 03:04 PM"),
			r.CycleLabel,
			fmt.Sprintf("%d/%d", r.RoundsCompleted, r.TargetRounds),
			timeutil.FormatDuration(r.SecondsElapsed),
			statusText,
		}

		tableBody = append(tableBody, row)
	}

	ui.PrintTable(tableBody, w)
}
