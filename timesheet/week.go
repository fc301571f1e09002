// Package timesheet derives the calendar structures used to display
// recorded entries: the days of the current week and the day/week
// buckets that entries are grouped into.
package timesheet

import (
	"time"

	"github.com/timecardapp/timecard/internal/timeutil"
)

const (
	daysInAWeek  = 7
	workdayCount = 5
)

// Day describes a single calendar day in a week view.
type Day struct {
	Date  time.Time
	Label string
}

// weekStart returns the Monday of the week containing ref, at the
// start of the day. A Sunday belongs to the week that started six days
// earlier.
func weekStart(ref time.Time) time.Time {
	weekday := int(ref.Weekday())

	var back int
	if weekday == 0 {
		back = daysInAWeek - 1
	} else {
		back = weekday - 1
	}

	return timeutil.RoundToStart(ref.AddDate(0, 0, -back))
}

// CurrentWeekDays returns the days of the week containing ref in
// descending date order, so the most recent day renders first.
//
// When includeWeekends is false, only Monday through the current
// weekday are returned (never future days), capped at Friday when ref
// falls on a weekend. When it is true the full seven days are
// returned.
func CurrentWeekDays(ref time.Time, includeWeekends bool) []Day {
	start := weekStart(ref)

	count := daysInAWeek

	if !includeWeekends {
		weekday := int(ref.Weekday())

		switch {
		case weekday == 0 || weekday > workdayCount:
			count = workdayCount
		default:
			count = weekday
		}
	}

	days := make([]Day, count)

	for i := 0; i < count; i++ {
		date := start.AddDate(0, 0, i)

		days[count-1-i] = Day{
			Date:  date,
			Label: timeutil.DayLabel(date),
		}
	}

	return days
}
