package store

import "github.com/timecardapp/timecard/internal/apperr"

var (
	errDatabaseLocked = &apperr.Error{
		Kind: apperr.Conflict,
		Message: "is timecard already running? Only one instance " +
			"can be active at a time",
	}

	errEntryNotFound = &apperr.Error{
		Kind:    apperr.NotFound,
		Message: "entry %d not found",
	}

	errProjectNotFound = &apperr.Error{
		Kind:    apperr.NotFound,
		Message: "project %d not found",
	}

	errEmployeeNotFound = &apperr.Error{
		Kind:    apperr.NotFound,
		Message: "employee %d not found",
	}

	errDuplicateEmail = &apperr.Error{
		Kind:    apperr.Conflict,
		Message: "duplicate email found: %s",
	}

	errStaleEntry = &apperr.Error{
		Kind: apperr.Conflict,
		Message: "entry %d was changed by a newer update: " +
			"re-list and try again",
	}
)

// ErrEntryNotFound is the sentinel callers match with errors.Is to
// detect a vanished entry id.
var ErrEntryNotFound = &apperr.Error{Kind: apperr.NotFound}

// ErrStaleEntry is the sentinel for a rejected stale update.
var ErrStaleEntry = &apperr.Error{Kind: apperr.Conflict}
