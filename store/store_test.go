package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/timecardapp/timecard/internal/apperr"
	"github.com/timecardapp/timecard/internal/models"
)

func testClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "timecard.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func draft() models.TimeEntryDraft {
	return models.TimeEntryDraft{
		Task:        "Write report",
		Project:     "Project Alpha",
		Date:        "2025-02-12",
		TimeStarted: "09:15:00",
		Duration:    3600,
		EmployeeID:  2,
	}
}

func TestCreateEntryRoundTrip(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	created, err := c.CreateEntry(ctx, draft())
	if err != nil {
		t.Fatal(err)
	}

	if created.ID == 0 {
		t.Fatal("store must assign an id")
	}

	if created.Status != models.StatusPending {
		t.Errorf("default status = %s, want Pending", created.Status)
	}

	listed, err := c.ListEntries(ctx, Scope{})
	if err != nil {
		t.Fatal(err)
	}

	if len(listed) != 1 {
		t.Fatalf("listed %d entries, want 1", len(listed))
	}

	// equal in all fields except the store-assigned identity
	opts := cmpopts.IgnoreFields(
		models.TimeEntry{}, "ID", "Status", "Version",
	)

	want := models.TimeEntry{
		Task:        "Write report",
		Project:     "Project Alpha",
		Date:        "2025-02-12",
		TimeStarted: "09:15:00",
		Duration:    3600,
		EmployeeID:  2,
	}

	if diff := cmp.Diff(want, listed[0], opts); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateEntryValidation(t *testing.T) {
	c := testClient(t)

	d := draft()
	d.Task = " "

	_, err := c.CreateEntry(context.Background(), d)
	if !apperr.IsKind(err, apperr.Validation) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestListEntriesScope(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	dates := []struct {
		date     string
		employee int
	}{
		{"2025-02-10", 1},
		{"2025-02-12", 1},
		{"2025-02-12", 2},
		{"2025-02-20", 1},
	}

	for _, v := range dates {
		d := draft()
		d.Date = v.date
		d.EmployeeID = v.employee

		if _, err := c.CreateEntry(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	got, err := c.ListEntries(ctx, Scope{
		EmployeeID: 1,
		From:       "2025-02-11",
		To:         "2025-02-15",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].Date != "2025-02-12" {
		t.Errorf("scoped list = %+v, want one entry on 2025-02-12", got)
	}
}

func TestUpdateEntry(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	created, err := c.CreateEntry(ctx, draft())
	if err != nil {
		t.Fatal(err)
	}

	task := "Review report"
	duration := 1800

	updated, err := c.UpdateEntry(ctx, created.ID, models.EntryPatch{
		Task:     &task,
		Duration: &duration,
		Version:  created.Version,
	})
	if err != nil {
		t.Fatal(err)
	}

	if updated.Task != task || updated.Duration != duration {
		t.Errorf("update not applied: %+v", updated)
	}

	if updated.Project != created.Project {
		t.Error("unpatched fields must be preserved")
	}

	if updated.Version != created.Version+1 {
		t.Errorf(
			"version = %d, want %d",
			updated.Version,
			created.Version+1,
		)
	}
}

func TestUpdateEntryRejectsStaleVersion(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	created, err := c.CreateEntry(ctx, draft())
	if err != nil {
		t.Fatal(err)
	}

	task := "first update"

	_, err = c.UpdateEntry(ctx, created.ID, models.EntryPatch{
		Task:    &task,
		Version: created.Version,
	})
	if err != nil {
		t.Fatal(err)
	}

	// a second update reusing the original version token is stale
	stale := "late arrival"

	_, err = c.UpdateEntry(ctx, created.ID, models.EntryPatch{
		Task:    &stale,
		Version: created.Version,
	})
	if !errors.Is(err, ErrStaleEntry) {
		t.Errorf("expected a stale entry error, got %v", err)
	}

	got, err := c.ListEntries(ctx, Scope{})
	if err != nil {
		t.Fatal(err)
	}

	if got[0].Task != "first update" {
		t.Errorf("stale update overwrote a newer one: %q", got[0].Task)
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	c := testClient(t)

	task := "x"

	_, err := c.UpdateEntry(context.Background(), 404, models.EntryPatch{
		Task:    &task,
		Version: 1,
	})
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestDeleteEntryTwiceReportsNotFound(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	created, err := c.CreateEntry(ctx, draft())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.DeleteEntry(ctx, created.ID); err != nil {
		t.Fatal(err)
	}

	err = c.DeleteEntry(ctx, created.ID)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf(
			"deleting a deleted id must report not-found, got %v",
			err,
		)
	}
}

func TestSaveProject(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	p, err := c.SaveProject(ctx, models.Project{
		Name:      "Project Alpha",
		StartDate: "2024-01-01",
		EndDate:   "2024-06-30",
		Status:    models.ProjectActive,
	})
	if err != nil {
		t.Fatal(err)
	}

	if p.ID == 0 {
		t.Fatal("store must assign a project id")
	}

	p.Status = models.ProjectCompleted

	if _, err := c.SaveProject(ctx, p); err != nil {
		t.Fatal(err)
	}

	projects, err := c.ListProjects(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(projects) != 1 || projects[0].Status != models.ProjectCompleted {
		t.Errorf("projects = %+v", projects)
	}
}

func TestSaveEmployeeRejectsDuplicateEmail(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	_, err := c.SaveEmployee(ctx, models.Employee{
		Name:  "John Doe",
		Email: "john@example.com",
		Role:  models.RoleManager,
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.SaveEmployee(ctx, models.Employee{
		Name:  "Jon Dough",
		Email: "john@example.com",
		Role:  models.RoleEmployee,
	})
	if !apperr.IsKind(err, apperr.Conflict) {
		t.Errorf("expected a conflict error, got %v", err)
	}
}

func TestSaveEmployeeValidation(t *testing.T) {
	c := testClient(t)

	cases := []models.Employee{
		{Name: "", Email: "a@b.co", Role: models.RoleEmployee},
		{Name: "Jane", Email: "not-an-email", Role: models.RoleEmployee},
		{Name: "Jane", Email: "jane@example.com", Role: "Wizard"},
	}

	for _, e := range cases {
		_, err := c.SaveEmployee(context.Background(), e)
		if !apperr.IsKind(err, apperr.Validation) {
			t.Errorf("%+v: expected a validation error, got %v", e, err)
		}
	}
}

func TestTimerStateRoundTrip(t *testing.T) {
	c := testClient(t)

	got, err := c.GetTimerState()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Fatal("expected no saved timer state initially")
	}

	state := TimerState{
		Task:      "Write report",
		Project:   "Project Alpha",
		StartTime: time.Now().Add(-time.Minute).Truncate(time.Second),
		SavedAt:   time.Now().Truncate(time.Second),
	}

	if err := c.SaveTimerState(state); err != nil {
		t.Fatal(err)
	}

	got, err = c.GetTimerState()
	if err != nil {
		t.Fatal(err)
	}

	if got == nil || got.Task != state.Task ||
		!got.StartTime.Equal(state.StartTime) {
		t.Errorf("timer state round trip: got %+v", got)
	}

	if err := c.ClearTimerState(); err != nil {
		t.Fatal(err)
	}

	got, err = c.GetTimerState()
	if err != nil {
		t.Fatal(err)
	}

	if got != nil {
		t.Error("timer state must be cleared")
	}
}
