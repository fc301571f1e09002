package timesheet

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/timecardapp/timecard/internal/models"
)

func entry(id int, date string) models.TimeEntry {
	return models.TimeEntry{
		ID:      id,
		Task:    "task",
		Project: "Project Alpha",
		Date:    date,
	}
}

func TestBucketGroupsByExactDate(t *testing.T) {
	days := CurrentWeekDays(date(2025, time.February, 12), false)

	entries := []models.TimeEntry{
		entry(1, "2025-02-10"),
		entry(2, "2025-02-12"),
		entry(3, "2025-02-12"),
		entry(4, "2025-02-11"),
		entry(5, "2025-03-01"), // outside the week
		entry(6, "not-a-date"), // malformed, silently excluded
	}

	buckets := Bucket(entries, days, Filter{})

	var total int
	for _, b := range buckets {
		total += len(b)
	}

	if total != 4 {
		t.Errorf("bucketed %d entries, want 4", total)
	}

	wednesday := buckets[days[0].Label]
	wantIDs := []int{2, 3}

	gotIDs := make([]int, len(wednesday))
	for i, e := range wednesday {
		gotIDs[i] = e.ID
	}

	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Errorf("wednesday bucket mismatch (-want +got):\n%s", diff)
	}
}

func TestBucketPreservesInputOrder(t *testing.T) {
	days := CurrentWeekDays(date(2025, time.February, 12), false)

	entries := []models.TimeEntry{
		entry(3, "2025-02-12"),
		entry(1, "2025-02-12"),
		entry(2, "2025-02-12"),
	}

	got := Bucket(entries, days, Filter{})[days[0].Label]

	for i, e := range got {
		if e.ID != entries[i].ID {
			t.Fatalf("order not preserved: position %d has id %d", i, e.ID)
		}
	}
}

func TestFilterStatus(t *testing.T) {
	days := []Day{
		{
			Date:  time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC),
			Label: "Wednesday, 12 Feb",
		},
	}

	approved := entry(1, "2025-02-12")
	approved.Status = models.StatusApproved

	pending := entry(2, "2025-02-12")
	pending.Status = models.StatusPending

	entries := []models.TimeEntry{approved, pending}

	got := Bucket(entries, days, Filter{Status: models.StatusPending})

	b := got["Wednesday, 12 Feb"]
	if len(b) != 1 || b[0].ID != 2 {
		t.Errorf("status filter: got %+v, want only entry 2", b)
	}
}

func TestFilterIsConjunctive(t *testing.T) {
	e := entry(1, "2025-02-12")
	e.Status = models.StatusPending

	f := Filter{
		Status:  models.StatusPending,
		Project: "Project Beta", // does not match
	}

	if f.Match(e) {
		t.Error("entry matched even though one predicate failed")
	}
}

func TestFilterDateRangeBoundsAreInclusive(t *testing.T) {
	f := Filter{From: "2025-02-10", To: "2025-02-12"}

	cases := []struct {
		date string
		want bool
	}{
		{"2025-02-09", false},
		{"2025-02-10", true},
		{"2025-02-11", true},
		{"2025-02-12", true},
		{"2025-02-13", false},
	}

	for _, tc := range cases {
		if got := f.Match(entry(1, tc.date)); got != tc.want {
			t.Errorf("Match(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestFilterAbsentBoundIsUnbounded(t *testing.T) {
	f := Filter{From: "2025-02-10"}

	if !f.Match(entry(1, "2099-12-31")) {
		t.Error("missing To bound must not exclude later dates")
	}

	f = Filter{To: "2025-02-10"}

	if !f.Match(entry(1, "1999-01-01")) {
		t.Error("missing From bound must not exclude earlier dates")
	}
}

func TestWeeksGroupsByISOWeek(t *testing.T) {
	entries := []models.TimeEntry{
		entry(1, "2025-02-12"), // week of 10 Feb
		entry(2, "2025-02-05"), // week of 3 Feb
		entry(3, "2025-02-13"),
		entry(4, "2025-02-16"), // Sunday, still week of 10 Feb
	}

	weeks, dropped := Weeks(entries, Filter{})

	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}

	if len(weeks) != 2 {
		t.Fatalf("got %d weeks, want 2", len(weeks))
	}

	// most recent week first
	if weeks[0].Label != "10/02/2025 - 16/02/2025" {
		t.Errorf("week label = %q", weeks[0].Label)
	}

	if weeks[1].Label != "03/02/2025 - 09/02/2025" {
		t.Errorf("week label = %q", weeks[1].Label)
	}

	var ids []int
	for _, d := range weeks[0].Days {
		for _, e := range d.Entries {
			ids = append(ids, e.ID)
		}
	}

	// days inside a week are descending
	if diff := cmp.Diff([]int{4, 3, 1}, ids); diff != "" {
		t.Errorf("week day order mismatch (-want +got):\n%s", diff)
	}
}

func TestWeeksCountsMalformedDates(t *testing.T) {
	entries := []models.TimeEntry{
		entry(1, "2025-02-12"),
		entry(2, "12/02/2025"),
		entry(3, ""),
	}

	weeks, dropped := Weeks(entries, Filter{})

	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}

	if len(weeks) != 1 {
		t.Errorf("got %d weeks, want 1", len(weeks))
	}
}

func TestTotalSeconds(t *testing.T) {
	entries := []models.TimeEntry{
		{Duration: 3600},
		{Duration: 1800},
		{Duration: 0},
	}

	if got := TotalSeconds(entries); got != 5400 {
		t.Errorf("TotalSeconds = %d, want 5400", got)
	}
}
