package timer

import "github.com/timecardapp/timecard/internal/apperr"

var (
	errTimerRunning = &apperr.Error{
		Kind:    apperr.TimerRunning,
		Message: "a timer is already running: stop it first",
	}

	errTimerNotRunning = &apperr.Error{
		Kind:    apperr.TimerNotRunning,
		Message: "no timer is running",
	}
)

// ErrTimerNotRunning is the sentinel callers match with errors.Is.
var ErrTimerNotRunning = &apperr.Error{Kind: apperr.TimerNotRunning}

// ErrTimerRunning is the sentinel for a double start.
var ErrTimerRunning = &apperr.Error{Kind: apperr.TimerRunning}
