package config

import "github.com/timecardapp/timecard/internal/apperr"

var (
	errReadConfig = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "writing default config failed",
	}

	errUnknownBackend = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "unknown store backend: %s (must be local or api)",
	}

	errMissingBaseURL = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "api.base_url must be set when the api backend is selected",
	}

	errInvalidDateRange = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "the start date must be earlier than the end date",
	}

	errInvalidPeriod = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "please provide a valid time period",
	}

	errInvalidStatus = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "unknown status: %s (must be Pending or Approved)",
	}

	errNotLoggedIn = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "no active session: run 'timecard login' first",
	}
)
