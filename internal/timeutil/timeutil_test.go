package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		9:    "00:09",
		336:  "05:36",
		3599: "59:59",
		-4:   "00:00",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatClock(in), "seconds=%d", in)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		5:    "5s",
		336:  "5m 36s",
		3600: "1h 0m",
		7320: "2h 2m",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatDuration(in), "seconds=%d", in)
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	ts := time.Date(2024, time.March, 3, 14, 22, 10, 5, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), RoundToStart(ts))
	assert.Equal(t, time.Date(2024, time.March, 3, 23, 59, 59, 0, time.UTC), RoundToEnd(ts))
	assert.Equal(t, 20240303, DayFormat(ts))
}

func TestFromStrAbsoluteDate(t *testing.T) {
	got, err := FromStr("2024-03-01")

	assert.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestToKeySortsChronologically(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	later := base.Add(500 * time.Millisecond)
	offset := later.In(time.FixedZone("WAT", 3600)).Add(time.Nanosecond)

	assert.Less(t, string(ToKey(base)), string(ToKey(later)))
	assert.Less(t, string(ToKey(later)), string(ToKey(offset)))
	assert.Len(t, ToKey(base), len(ToKey(offset)))
}
