package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/timecardapp/timecard/internal/models"
)

// Session identifies who is using the client and which interface
// sections render. It is loaded once per command and passed down
// explicitly; it is a display filter, not an authorization boundary.
type Session struct {
	Name       string      `json:"name"`
	Role       models.Role `json:"role"`
	EmployeeID int         `json:"employee_id"`
}

// IsAdmin reports whether the session may manage the employee roster.
func (s Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// CanManageProjects reports whether the session may manage projects.
func (s Session) CanManageProjects() bool {
	return s.Role == models.RoleAdmin || s.Role == models.RoleManager
}

// Scoped reports whether list queries should be limited to the
// session's own employee id.
func (s Session) Scoped() bool {
	return s.Role == models.RoleEmployee && s.EmployeeID != 0
}

// LoadSession reads the persisted session. It returns a validation
// error when no one is logged in.
func LoadSession() (Session, error) {
	var s Session

	b, err := os.ReadFile(SessionFilePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, errNotLoggedIn
		}

		return s, err
	}

	if err := json.Unmarshal(b, &s); err != nil {
		return s, errNotLoggedIn.Wrap(err)
	}

	if !models.ValidRole(s.Role) {
		return s, errNotLoggedIn
	}

	return s, nil
}

// SaveSession persists the session to the session file.
func SaveSession(s Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(SessionFilePath(), b, 0o600)
}

// ClearSession removes the persisted session if one exists.
func ClearSession() error {
	err := os.Remove(SessionFilePath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}
