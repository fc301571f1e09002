package app

import "github.com/timecardapp/timecard/internal/apperr"

var (
	errExpectedEntryID = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "expected one or more numeric entry ids",
	}

	errExpectedProjectID = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "expected a numeric project id",
	}

	errProjectNotFound = &apperr.Error{
		Kind:    apperr.NotFound,
		Message: "project %d not found",
	}

	errExpectedEmployeeID = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "expected a numeric employee id",
	}

	errExpectedCSVFile = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "expected the path of a CSV roster file",
	}

	errProjectsRestricted = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "managing projects requires a Manager or Admin session",
	}

	errEmployeesRestricted = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "managing employees requires an Admin session",
	}
)
