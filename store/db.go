package store

import (
	"context"

	"github.com/timecardapp/timecard/internal/models"
)

// Scope restricts which entries a list query returns. A zero
// EmployeeID means all employees; empty From/To mean unbounded.
type Scope struct {
	From       string
	To         string
	EmployeeID int
}

// EntryStore is the persistence boundary owning authoritative
// TimeEntry, Project, and Employee data. It is implemented by the
// local bolt client and by the remote API client.
type EntryStore interface {
	// ListEntries returns the entries visible in the given scope.
	ListEntries(ctx context.Context, scope Scope) ([]models.TimeEntry, error)
	// CreateEntry stores a new entry and returns it with its assigned id.
	CreateEntry(
		ctx context.Context,
		draft models.TimeEntryDraft,
	) (models.TimeEntry, error)
	// UpdateEntry applies a partial update. The patch must carry the
	// version the caller last observed; a stale version is rejected.
	UpdateEntry(
		ctx context.Context,
		id int,
		patch models.EntryPatch,
	) (models.TimeEntry, error)
	// DeleteEntry removes an entry. Deleting an id that does not exist
	// reports a not-found error rather than silent success.
	DeleteEntry(ctx context.Context, id int) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	SaveProject(
		ctx context.Context,
		p models.Project,
	) (models.Project, error)
	DeleteProject(ctx context.Context, id int) error

	ListEmployees(ctx context.Context) ([]models.Employee, error)
	SaveEmployee(
		ctx context.Context,
		e models.Employee,
	) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id int) error

	// Close ends the store connection.
	Close() error
}
