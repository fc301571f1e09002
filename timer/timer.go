// Package timer operates the elapsed-time tracker for in-progress
// tasks and handles the recovery of interrupted timers.
package timer

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/timecardapp/timecard/config"
	"github.com/timecardapp/timecard/internal/timeutil"
)

// Timer tracks elapsed wall-clock seconds for a single in-progress
// task. Exactly one timer may run per process; there is no paused
// state, stopping always finalises a duration.
type Timer struct {
	now        func() time.Time
	StartTime  time.Time
	Task       string
	Project    string
	EmployeeID int
	elapsed    int
	running    bool
}

// New creates an idle timer for the given task.
func New(task, project string, employeeID int) *Timer {
	return &Timer{
		now:        time.Now,
		Task:       task,
		Project:    project,
		EmployeeID: employeeID,
	}
}

// Start records the start instant and resets the elapsed accumulator.
func (t *Timer) Start() error {
	if t.running {
		return errTimerRunning
	}

	t.StartTime = t.now()
	t.elapsed = 0
	t.running = true

	return nil
}

// Tick advances the elapsed accumulator by one second. It is invoked
// once per second by the scheduled tick while the timer runs.
func (t *Timer) Tick() {
	if t.running {
		t.elapsed++
	}
}

// Stop finalises the timer and returns the recorded duration in
// seconds, computed from the wall clock rather than the accumulator.
// The result is clamped at zero if the clock moved backwards.
func (t *Timer) Stop() (int, error) {
	if !t.running {
		return 0, errTimerNotRunning
	}

	secs := int(t.now().Sub(t.StartTime).Seconds())
	if secs < 0 {
		secs = 0
	}

	t.running = false

	return secs, nil
}

// Elapsed returns the current accumulator value for display.
func (t *Timer) Elapsed() int {
	return t.elapsed
}

// Running reports whether the timer is active.
func (t *Timer) Running() bool {
	return t.running
}

// Status is the snapshot of a running timer written to the status
// file so that other invocations can report on it.
type Status struct {
	StartTime time.Time `json:"start_time"`
	Task      string    `json:"task"`
	Project   string    `json:"project"`
	Elapsed   int       `json:"elapsed"`
}

func (t *Timer) writeStatusFile() error {
	s := Status{
		Task:      t.Task,
		Project:   t.Project,
		StartTime: t.StartTime,
		Elapsed:   t.elapsed,
	}

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(config.StatusFilePath(), b, 0o600)
}

func removeStatusFile() {
	_ = os.Remove(config.StatusFilePath())
}

// ReportStatus prints the status of the currently running timer, if
// any.
func ReportStatus() error {
	fileBytes, err := os.ReadFile(config.StatusFilePath())
	if err != nil {
		// missing file means no timer is running
		pterm.Info.Println("no timer is currently running")
		return nil
	}

	var s Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return err
	}

	pterm.Printfln(
		"[%s] %s: %s",
		s.Project,
		s.Task,
		timeutil.FormatSeconds(s.Elapsed),
	)

	return nil
}
