package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/location"
	"github.com/ayoisaiah/anuloma/internal/models"
	"github.com/ayoisaiah/anuloma/internal/progress"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
	"github.com/ayoisaiah/anuloma/internal/ui"
)

// profileView is the JSON shape of the profile command.
type profileView struct {
	*models.Profile
	Next         *progress.Achievement  `json:"next_achievement,omitempty"`
	Achievements []progress.Achievement `json:"achievements"`
}

func newProfileView(p *models.Profile) profileView {
	v := profileView{
		Profile:      p,
		Achievements: progress.Achievements(p.TotalRoundsCompleted),
	}

	if v.Achievements == nil {
		v.Achievements = []progress.Achievement{}
	}

	if next, ok := progress.Next(p.TotalRoundsCompleted); ok {
		v.Next = &next
	}

	return v
}

// printProfile prints the totals of p followed by its achievements.
func printProfile(w io.Writer, p *models.Profile) {
	totals := [][]string{
		{"PROFILE", p.HeroName},
		{"CHARACTER", string(p.Character)},
		{"ROUNDS", strconv.Itoa(p.TotalRoundsCompleted)},
		{"BREATH CYCLES", strconv.Itoa(p.TotalBreathCycles)},
		{"TIME PRACTISED", timeutil.FormatDuration(p.TotalTimeSeconds)},
		{"LOCATIONS", fmt.Sprintf("%d/%d", len(p.LocationsUnlocked), location.Last)},
	}

	if !p.CreatedAt.IsZero() {
		totals = append(totals, []string{
			"PRACTISING SINCE",
			p.CreatedAt.Format("January 02, 2006"),
		})
	}

	ui.PrintTable(totals, w)

	tableBody := [][]string{
		{"ACHIEVEMENT", "ROUNDS", "STATUS"},
	}

	for _, a := range progress.AchievementList {
		status := ui.Green("earned")
		if !a.Earned(p.TotalRoundsCompleted) {
			status = fmt.Sprintf(
				"%d to go",
				a.Threshold-p.TotalRoundsCompleted,
			)
		}

		tableBody = append(tableBody, []string{
			a.Title,
			strconv.Itoa(a.Threshold),
			status,
		})
	}

	ui.PrintTable(tableBody, w)
}

// printMap prints every location with its lock state.
func printMap(w io.Writer, unlocked func(id int) bool) error {
	locations, err := location.All()
	if err != nil {
		return err
	}

	tableBody := [][]string{
		{"#", "LOCATION", "SYMBOL", "STATUS"},
	}

	for _, l := range locations {
		status := ui.Red("locked")
		if unlocked(l.ID) {
			status = ui.Green("unlocked")
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(l.ID),
			l.Emoji + " " + l.Name,
			l.Symbol,
			status,
		})
	}

	ui.PrintTable(tableBody, w)

	return nil
}

// printCycles prints the cycle catalog with the length of one round and of a
// session of the given number of rounds.
func printCycles(w io.Writer, rounds, selected int) {
	tableBody := [][]string{
		{"#", "CYCLE", "INHALE", "HOLD", "EXHALE", "ROUND", fmt.Sprintf("%d ROUNDS", rounds)},
	}

	for i, c := range breath.Catalog {
		label := c.Label
		if i == selected {
			label = ui.Green(c.Label)
		}

		tableBody = append(tableBody, []string{
			strconv.Itoa(i),
			label,
			fmt.Sprintf("%ds", c.Inhale),
			fmt.Sprintf("%ds", c.Hold),
			fmt.Sprintf("%ds", c.Exhale),
			timeutil.FormatClock(breath.RoundSeconds(c)),
			timeutil.FormatDuration(breath.TotalSeconds(c, rounds)),
		})
	}

	ui.PrintTable(tableBody, w)
}
