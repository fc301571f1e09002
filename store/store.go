// Package store connects to the local data store and manages
// timesheet entries, projects, and the employee roster.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/timecardapp/timecard/internal/models"
)

const (
	entriesBucket   = "entries"
	projectsBucket  = "projects"
	employeesBucket = "employees"
	timersBucket    = "timers"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path string
}

// itok converts a numeric id into a lexicographically sortable bucket
// key.
func itok(id int) []byte {
	return []byte(fmt.Sprintf("%010d", id))
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errDatabaseLocked
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}
	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{
			entriesBucket,
			projectsBucket,
			employeesBucket,
			timersBucket,
		} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Client{db, dbPath}, nil
}

// Open re-establishes a previously closed connection.
func (c *Client) Open() error {
	db, err := openDB(c.path)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

func (c *Client) ListEntries(
	_ context.Context,
	scope Scope,
) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(entriesBucket)).
			ForEach(func(_, v []byte) error {
				var e models.TimeEntry

				if err := json.Unmarshal(v, &e); err != nil {
					return err
				}

				if scope.EmployeeID != 0 && e.EmployeeID != scope.EmployeeID {
					return nil
				}

				if scope.From != "" && e.Date < scope.From {
					return nil
				}

				if scope.To != "" && e.Date > scope.To {
					return nil
				}

				entries = append(entries, e)

				return nil
			})
	})

	return entries, err
}

func (c *Client) CreateEntry(
	_ context.Context,
	draft models.TimeEntryDraft,
) (models.TimeEntry, error) {
	var entry models.TimeEntry

	if err := draft.Validate(); err != nil {
		return entry, err
	}

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(entriesBucket))

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		entry = models.TimeEntry{
			ID:          int(seq),
			Task:        draft.Task,
			Project:     draft.Project,
			Date:        draft.Date,
			TimeStarted: draft.TimeStarted,
			Duration:    draft.Duration,
			EmployeeID:  draft.EmployeeID,
			Status:      draft.Status,
			Version:     1,
		}

		if entry.Status == "" {
			entry.Status = models.StatusPending
		}

		value, err := json.Marshal(entry)
		if err != nil {
			return err
		}

		return b.Put(itok(entry.ID), value)
	})

	return entry, err
}

func (c *Client) UpdateEntry(
	_ context.Context,
	id int,
	patch models.EntryPatch,
) (models.TimeEntry, error) {
	var entry models.TimeEntry

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(entriesBucket))

		value := b.Get(itok(id))
		if value == nil {
			return errEntryNotFound.Fmt(id)
		}

		if err := json.Unmarshal(value, &entry); err != nil {
			return err
		}

		// A later-issued update must not be clobbered by the late
		// arrival of an earlier one.
		if patch.Version != entry.Version {
			return errStaleEntry.Fmt(id)
		}

		if patch.Task != nil {
			entry.Task = *patch.Task
		}

		if patch.Project != nil {
			entry.Project = *patch.Project
		}

		if patch.Date != nil {
			entry.Date = *patch.Date
		}

		if patch.TimeStarted != nil {
			entry.TimeStarted = *patch.TimeStarted
		}

		if patch.Duration != nil {
			entry.Duration = *patch.Duration
		}

		if patch.Status != nil {
			entry.Status = *patch.Status
		}

		entry.Version++

		updated, err := json.Marshal(entry)
		if err != nil {
			return err
		}

		return b.Put(itok(id), updated)
	})

	return entry, err
}

func (c *Client) DeleteEntry(_ context.Context, id int) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(entriesBucket))

		if b.Get(itok(id)) == nil {
			return errEntryNotFound.Fmt(id)
		}

		return b.Delete(itok(id))
	})
}

func (c *Client) ListProjects(_ context.Context) ([]models.Project, error) {
	var projects []models.Project

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(projectsBucket)).
			ForEach(func(_, v []byte) error {
				var p models.Project

				if err := json.Unmarshal(v, &p); err != nil {
					return err
				}

				projects = append(projects, p)

				return nil
			})
	})

	return projects, err
}

// SaveProject creates the project when its id is zero and overwrites
// it otherwise.
func (c *Client) SaveProject(
	_ context.Context,
	p models.Project,
) (models.Project, error) {
	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(projectsBucket))

		if p.ID == 0 {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}

			p.ID = int(seq)
		} else if b.Get(itok(p.ID)) == nil {
			return errProjectNotFound.Fmt(p.ID)
		}

		value, err := json.Marshal(p)
		if err != nil {
			return err
		}

		return b.Put(itok(p.ID), value)
	})

	return p, err
}

func (c *Client) DeleteProject(_ context.Context, id int) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(projectsBucket))

		if b.Get(itok(id)) == nil {
			return errProjectNotFound.Fmt(id)
		}

		return b.Delete(itok(id))
	})
}

func (c *Client) ListEmployees(_ context.Context) ([]models.Employee, error) {
	var employees []models.Employee

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(employeesBucket)).
			ForEach(func(_, v []byte) error {
				var e models.Employee

				if err := json.Unmarshal(v, &e); err != nil {
					return err
				}

				employees = append(employees, e)

				return nil
			})
	})

	return employees, err
}

// SaveEmployee creates the employee when its id is zero and overwrites
// it otherwise. Duplicate emails are rejected.
func (c *Client) SaveEmployee(
	_ context.Context,
	e models.Employee,
) (models.Employee, error) {
	if err := e.Validate(); err != nil {
		return e, err
	}

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(employeesBucket))

		var dup bool

		_ = b.ForEach(func(_, v []byte) error {
			var existing models.Employee

			if err := json.Unmarshal(v, &existing); err != nil {
				return err
			}

			if existing.Email == e.Email && existing.ID != e.ID {
				dup = true
			}

			return nil
		})

		if dup {
			return errDuplicateEmail.Fmt(e.Email)
		}

		if e.ID == 0 {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}

			e.ID = int(seq)
		} else if b.Get(itok(e.ID)) == nil {
			return errEmployeeNotFound.Fmt(e.ID)
		}

		value, err := json.Marshal(e)
		if err != nil {
			return err
		}

		return b.Put(itok(e.ID), value)
	})

	return e, err
}

func (c *Client) DeleteEmployee(_ context.Context, id int) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(employeesBucket))

		if b.Get(itok(id)) == nil {
			return errEmployeeNotFound.Fmt(id)
		}

		return b.Delete(itok(id))
	})
}
