// Package models defines the records exchanged with the entry store.
package models

import (
	"regexp"
	"strings"

	"github.com/timecardapp/timecard/internal/apperr"
)

// EntryStatus is the review state of a timesheet entry.
type EntryStatus string

const (
	StatusPending  EntryStatus = "Pending"
	StatusApproved EntryStatus = "Approved"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectPending   ProjectStatus = "Pending"
)

// Role determines which sections of the interface an employee may use.
// It gates display only and is not an authorization boundary.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// Roles lists every role accepted on employee records.
var Roles = []Role{RoleAdmin, RoleManager, RoleEmployee}

// TimeEntry is a single unit of recorded work. The JSON field names
// match the wire format of the timesheet API.
type TimeEntry struct {
	Task        string      `json:"task"`
	Project     string      `json:"project"`
	Date        string      `json:"date"` // YYYY-MM-DD
	TimeStarted string      `json:"time_started"`
	Status      EntryStatus `json:"status,omitempty"`
	ID          int         `json:"id"`
	Duration    int         `json:"duration"` // seconds
	EmployeeID  int         `json:"employee_id,omitempty"`
	Version     int         `json:"version,omitempty"`
}

// TimeEntryDraft is a TimeEntry payload without a store-assigned ID,
// used for creation requests.
type TimeEntryDraft struct {
	Task        string      `json:"task"`
	Project     string      `json:"project"`
	Date        string      `json:"date"`
	TimeStarted string      `json:"time_started"`
	Status      EntryStatus `json:"status,omitempty"`
	Duration    int         `json:"duration"`
	EmployeeID  int         `json:"employee_id,omitempty"`
}

// EntryPatch describes a partial update to an entry. Nil fields are
// left unchanged. Version must carry the version of the entry the
// caller last observed so that stale updates are rejected.
type EntryPatch struct {
	Task        *string      `json:"task,omitempty"`
	Project     *string      `json:"project,omitempty"`
	Date        *string      `json:"date,omitempty"`
	TimeStarted *string      `json:"time_started,omitempty"`
	Status      *EntryStatus `json:"status,omitempty"`
	Duration    *int         `json:"duration,omitempty"`
	Version     int          `json:"version"`
}

// Project is a unit of work that entries are recorded against.
type Project struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Status      ProjectStatus `json:"status"`
	ID          int           `json:"id"`
}

// Employee is a member of the roster.
type Employee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	ID    int    `json:"id"`
}

var (
	errMissingTask = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "a task description is required",
	}

	errMissingProject = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "a project is required",
	}

	errMissingDate = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "an entry date is required",
	}

	errNegativeDuration = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "the duration cannot be negative",
	}

	errEmployeeFields = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "all fields (name, email, role) are required",
	}

	errInvalidEmail = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "invalid email format: %s",
	}

	errInvalidRole = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "invalid role: %s (allowed roles: Admin, Manager, Employee)",
	}
)

var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate reports the first problem that would prevent the draft from
// being stored.
func (d TimeEntryDraft) Validate() error {
	if strings.TrimSpace(d.Task) == "" {
		return errMissingTask
	}

	if strings.TrimSpace(d.Project) == "" {
		return errMissingProject
	}

	if strings.TrimSpace(d.Date) == "" {
		return errMissingDate
	}

	if d.Duration < 0 {
		return errNegativeDuration
	}

	return nil
}

// ValidRole reports whether r is one of the accepted employee roles.
func ValidRole(r Role) bool {
	for _, v := range Roles {
		if v == r {
			return true
		}
	}

	return false
}

// Validate checks the employee record for missing or malformed fields.
func (e Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" ||
		strings.TrimSpace(e.Email) == "" ||
		strings.TrimSpace(string(e.Role)) == "" {
		return errEmployeeFields
	}

	if !emailRegex.MatchString(e.Email) {
		return errInvalidEmail.Fmt(e.Email)
	}

	if !ValidRole(e.Role) {
		return errInvalidRole.Fmt(e.Role)
	}

	return nil
}
