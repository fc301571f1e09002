package timesheet

import (
	"sort"
	"time"

	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/timeutil"
)

// Filter restricts which entries appear in a view. Zero-valued fields
// are inactive; active predicates are combined conjunctively. From and
// To are inclusive ISO date bounds compared against the entry's own
// date field.
type Filter struct {
	Status  models.EntryStatus
	Project string
	From    string
	To      string
}

// Match reports whether the entry satisfies every active predicate.
func (f Filter) Match(e models.TimeEntry) bool {
	if f.Status != "" && e.Status != f.Status {
		return false
	}

	if f.Project != "" && e.Project != f.Project {
		return false
	}

	if f.From != "" && e.Date < f.From {
		return false
	}

	if f.To != "" && e.Date > f.To {
		return false
	}

	return true
}

// Bucket groups the filtered entries under the day they belong to,
// keyed by the day label. An entry is attributed to a day by exact
// calendar-date equality; entries whose date matches no day are left
// out. The relative order of the input is preserved within each
// bucket.
func Bucket(
	entries []models.TimeEntry,
	days []Day,
	f Filter,
) map[string][]models.TimeEntry {
	buckets := make(map[string][]models.TimeEntry)

	dates := make(map[string]string, len(days))
	for _, d := range days {
		dates[d.Date.Format(timeutil.ISODate)] = d.Label
	}

	for _, e := range entries {
		label, ok := dates[e.Date]
		if !ok {
			continue
		}

		if !f.Match(e) {
			continue
		}

		buckets[label] = append(buckets[label], e)
	}

	return buckets
}

// DayEntries pairs a day with the entries recorded on it.
type DayEntries struct {
	Day     Day
	Entries []models.TimeEntry
}

// WeekBucket is a derived grouping of entries by calendar week. It is
// recomputed from the entry list on every render and never persisted.
type WeekBucket struct {
	Label string
	Start time.Time
	Days  []DayEntries
}

// Weeks groups the filtered entries into week buckets ordered most
// recent first, with the days inside each week also descending. The
// second return value counts entries excluded because their date could
// not be parsed; callers may log it for data-quality visibility.
func Weeks(entries []models.TimeEntry, f Filter) ([]WeekBucket, int) {
	type weekAcc struct {
		start  time.Time
		byDate map[string][]models.TimeEntry
	}

	weeks := make(map[string]*weekAcc)

	var order []string

	var dropped int

	for _, e := range entries {
		if !f.Match(e) {
			continue
		}

		date, err := time.Parse(timeutil.ISODate, e.Date)
		if err != nil {
			dropped++
			continue
		}

		start := weekStart(date)
		key := start.Format(timeutil.ISODate)

		w, ok := weeks[key]
		if !ok {
			w = &weekAcc{
				start:  start,
				byDate: make(map[string][]models.TimeEntry),
			}
			weeks[key] = w

			order = append(order, key)
		}

		w.byDate[e.Date] = append(w.byDate[e.Date], e)
	}

	// most recent week first
	sort.Sort(sort.Reverse(sort.StringSlice(order)))

	buckets := make([]WeekBucket, 0, len(order))

	for _, key := range order {
		w := weeks[key]
		end := w.start.AddDate(0, 0, daysInAWeek-1)

		b := WeekBucket{
			Label: w.start.Format(timeutil.RangeDate) + " - " +
				end.Format(timeutil.RangeDate),
			Start: w.start,
		}

		for i := daysInAWeek - 1; i >= 0; i-- {
			date := w.start.AddDate(0, 0, i)

			matched, ok := w.byDate[date.Format(timeutil.ISODate)]
			if !ok {
				continue
			}

			b.Days = append(b.Days, DayEntries{
				Day: Day{
					Date:  date,
					Label: timeutil.DayLabel(date),
				},
				Entries: matched,
			})
		}

		buckets = append(buckets, b)
	}

	return buckets, dropped
}

// TotalSeconds sums the durations of the given entries.
func TotalSeconds(entries []models.TimeEntry) int {
	var total int
	for _, e := range entries {
		total += e.Duration
	}

	return total
}
