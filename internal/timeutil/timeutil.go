// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISODate is the layout used for calendar dates throughout the
// application and on the wire.
const ISODate = "2006-01-02"

// RangeDate is the layout used in week range labels.
const RangeDate = "02/01/2006"

const (
	secondsInAnHour   = 3600
	secondsInAMinute  = 60
	minutesInAnHour   = 60
	clockSegmentCount = 2
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
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

// DayLabel formats a date the way the accordion headers display it,
// e.g. "Monday, 02 Jan".
func DayLabel(t time.Time) string {
	return t.Format("Monday, 02 Jan")
}

// FormatSeconds expresses a duration in seconds as an HH:MM clock
// string.
func FormatSeconds(secs int) string {
	hrs := secs / secondsInAnHour
	mins := (secs % secondsInAnHour) / secondsInAMinute

	return fmt.Sprintf("%02d:%02d", hrs, mins)
}

// FormatClock renders a 24-hour HH:MM string per the display
// preference. Unparseable values pass through unchanged.
func FormatClock(s string, twentyFourHour bool) string {
	if twentyFourHour {
		return s
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return s
	}

	return t.Format("03:04 PM")
}

// ParseClock converts an HH:MM string into seconds. It also accepts
// Go duration strings such as "1h30m" for convenience.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)

	parts := strings.Split(s, ":")
	if len(parts) == clockSegmentCount {
		hrs, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}

		mins, err := strconv.Atoi(parts[1])
		if err != nil || mins < 0 || mins >= minutesInAnHour || hrs < 0 {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}

		return hrs*secondsInAnHour + mins*secondsInAMinute, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	return int(d.Seconds()), nil
}
