// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

type Period string

const (
	PeriodAllTime Period = "all-time"
	PeriodToday   Period = "today"
	Period7Days   Period = "7days"
	Period30Days  Period = "30days"
	Period365Days Period = "365days"
)

// Range maps a period to the day offset of its first day.
var Range = map[Period]int{
	PeriodAllTime: 0,
	PeriodToday:   0,
	Period7Days:   -6,
	Period30Days:  -29,
	Period365Days: -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	Period7Days,
	Period30Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := Round(val)

	return total / secondsInAMinute, total % secondsInAMinute
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	m, s := SecsToMinsAndSecs(float64(seconds))

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatDuration renders seconds as a compact human readable duration such as
// "1h 5m", "4m 12s" or "9s".
func FormatDuration(seconds int) string {
	h := seconds / secondsInAnHour
	m := (seconds % secondsInAnHour) / secondsInAMinute
	s := seconds % secondsInAMinute

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

func DayFormat(t time.Time) int {
	d := fmt.Sprintf("%d%02d%02d", t.Year(), t.Month(), t.Day())

	i, _ := strconv.Atoi(d)

	return i
}

// keyFormat is fixed width so that keys sort in chronological order.
const keyFormat = "2006-01-02T15:04:05.000000000Z"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyFormat))
}

// FromStr parses a natural language or absolute date such as "yesterday",
// "2 weeks ago" or "2024-03-01".
func FromStr(s string) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: time.Now(),
	}, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
