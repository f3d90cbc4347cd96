// Package stats reports anuloma practice statistics
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/anuloma/internal/models"
	"github.com/ayoisaiah/anuloma/internal/timeutil"
	"github.com/ayoisaiah/anuloma/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No practice sessions found for the specified time range"
	daysInAMonth  = 31
)

// SessionSource provides the practice history.
type SessionSource interface {
	GetSessions(user string, start, end time.Time) ([]models.SessionRecord, error)
}

// Options controls what is reported.
type Options struct {
	StartTime time.Time
	EndTime   time.Time
	Stdout    io.Writer
	User      string
	JSON      bool
	List      bool
}

// Summary is the aggregate of the sessions in a reporting period.
type Summary struct {
	StartTime     time.Time      `json:"start_time"`
	EndTime       time.Time      `json:"end_time"`
	RoundsByCycle map[string]int `json:"rounds_by_cycle"`
	daily         map[int]int
	weekday       map[int]int
	Sessions      int `json:"sessions"`
	Finished      int `json:"finished"`
	Stopped       int `json:"stopped"`
	Rounds        int `json:"rounds"`
	Seconds       int `json:"seconds"`
	StreakDays    int `json:"streak_days"`
	AvgSeconds    int `json:"avg_seconds_per_day"`
}

// filterSessions ignores records with an invalid end time.
func filterSessions(records []models.SessionRecord) []models.SessionRecord {
	filtered := records[:0]

	for _, r := range records {
		if r.EndTime.IsZero() || r.EndTime.Before(r.StartTime) {
			continue
		}

		filtered = append(filtered, r)
	}

	return filtered
}

// Summarise computes the totals of records between start and end. now is the
// reference day for the streak.
func Summarise(records []models.SessionRecord, start, end, now time.Time) Summary {
	s := Summary{
		StartTime:     start,
		EndTime:       end,
		RoundsByCycle: make(map[string]int),
		daily:         make(map[int]int),
		weekday:       make(map[int]int),
	}

	for d := 0; d < 7; d++ {
		s.weekday[d] = 0
	}

	if !start.IsZero() && end.Sub(start) <= daysInAMonth*24*time.Hour {
		for date := timeutil.RoundToStart(start); date.Before(end); date = date.AddDate(0, 0, 1) {
			s.daily[timeutil.DayFormat(date)] = 0
		}
	}

	practiced := make(map[int]bool)

	for _, r := range records {
		s.Sessions++
		s.Rounds += r.RoundsCompleted
		s.Seconds += r.SecondsElapsed

		if r.Outcome == models.Finished {
			s.Finished++
		} else {
			s.Stopped++
		}

		if r.RoundsCompleted > 0 {
			s.RoundsByCycle[r.CycleLabel] += r.RoundsCompleted
		}

		day := timeutil.DayFormat(r.StartTime)
		s.daily[day] += r.SecondsElapsed
		s.weekday[int(r.StartTime.Weekday())] += r.SecondsElapsed

		if r.SecondsElapsed > 0 {
			practiced[day] = true
		}
	}

	s.StreakDays = streak(practiced, now)

	days := timeutil.Round(end.Sub(start).Hours() / 24)
	if days > 0 {
		s.AvgSeconds = s.Seconds / days
	}

	return s
}

// streak counts the consecutive practice days ending today, or yesterday when
// there was no practice yet today.
func streak(practiced map[int]bool, now time.Time) int {
	day := timeutil.RoundToStart(now)

	if !practiced[timeutil.DayFormat(day)] {
		day = day.AddDate(0, 0, -1)
	}

	var n int

	for practiced[timeutil.DayFormat(day)] {
		n++

		day = day.AddDate(0, 0, -1)
	}

	return n
}

func minutes(secs int) int {
	return timeutil.Round(float64(secs) / 60)
}

func getBarChart(data map[int]int, title string, label func(int) string) string {
	if len(data) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s breakdown (minutes)", title))

	keys := make([]int, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	bars := make(pterm.Bars, 0, len(keys))

	for _, k := range keys {
		bars = append(bars, pterm.Bar{
			Value: minutes(data[k]),
			Label: label(k),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func dayLabel(k int) string {
	date, err := time.Parse("20060102", strconv.Itoa(k))
	if err != nil {
		return strconv.Itoa(k)
	}

	return date.Format("Jan 02, 2006")
}

func weekdayLabel(k int) string {
	return time.Weekday(k).String()
}

func getCycles(byCycle map[string]int) string {
	if len(byCycle) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Rounds by cycle")))

	labels := make([]string, 0, len(byCycle))
	for l := range byCycle {
		labels = append(labels, l)
	}

	slices.SortFunc(labels, func(a, c string) int {
		return byCycle[c] - byCycle[a]
	})

	for _, l := range labels {
		b.WriteString(fmt.Sprintf("%s: %s\n", l, ui.Green(byCycle[l])))
	}

	return b.String()
}

// getSummary renders the totals for the reporting period.
func getSummary(s Summary) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	return header +
		fmt.Sprintf("Time practised: %s\n", ui.Green(timeutil.FormatDuration(s.Seconds))) +
		fmt.Sprintln("Rounds completed:", ui.Green(s.Rounds)) +
		fmt.Sprintln("Sessions finished:", ui.Green(s.Finished)) +
		fmt.Sprintln("Sessions stopped:", ui.Green(s.Stopped)) +
		fmt.Sprintln("Current streak:", ui.Green(fmt.Sprintf("%d days", s.StreakDays))) +
		fmt.Sprintf(
			"Daily average: %s\n",
			ui.Green(timeutil.FormatDuration(s.AvgSeconds)),
		)
}

// Show prints the statistics of the selected period.
func Show(db SessionSource, opts *Options) error {
	records, err := db.GetSessions(opts.User, opts.StartTime, opts.EndTime)
	if err != nil {
		return errReadHistory.Wrap(err)
	}

	records = filterSessions(records)

	// For all-time, start at the day of the first session
	if opts.StartTime.IsZero() && len(records) > 0 {
		opts.StartTime = timeutil.RoundToStart(records[0].StartTime)
	}

	if opts.List {
		if len(records) == 0 {
			pterm.Info.Println(noSessionsMsg)
			return nil
		}

		printSessionsTable(opts.Stdout, records)

		return nil
	}

	summary := Summarise(records, opts.StartTime, opts.EndTime, time.Now())

	if opts.JSON {
		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(summary)
	}

	if len(records) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	timePeriod := "Reporting period: " +
		opts.StartTime.Format("January 02, 2006") + " - " +
		opts.EndTime.Format("January 02, 2006")

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("%s", timePeriod)

	output := fmt.Sprint(
		header,
		getSummary(summary),
		getCycles(summary.RoundsByCycle),
		getBarChart(summary.daily, "Daily", dayLabel),
		getBarChart(summary.weekday, "Weekly", weekdayLabel),
	)

	fmt.Fprintln(opts.Stdout, strings.TrimSpace(output))

	return nil
}
