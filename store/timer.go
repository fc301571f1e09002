package store

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

// TimerState is the persisted snapshot of a running timer. It is
// written periodically while tracking so that a crashed session can be
// finalised into an entry on the next run.
type TimerState struct {
	StartTime  time.Time `json:"start_time"`
	SavedAt    time.Time `json:"saved_at"`
	Task       string    `json:"task"`
	Project    string    `json:"project"`
	EmployeeID int       `json:"employee_id,omitempty"`
}

const timerStateKey = "active"

// SaveTimerState persists the snapshot of the active timer.
func (c *Client) SaveTimerState(state TimerState) error {
	value, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timersBucket)).
			Put([]byte(timerStateKey), value)
	})
}

// GetTimerState returns the saved timer snapshot, or nil when no timer
// was interrupted.
func (c *Client) GetTimerState() (*TimerState, error) {
	var state *TimerState

	err := c.View(func(tx *bolt.Tx) error {
		value := tx.Bucket([]byte(timersBucket)).Get([]byte(timerStateKey))
		if len(value) == 0 {
			return nil
		}

		state = &TimerState{}

		return json.Unmarshal(value, state)
	})

	return state, err
}

// ClearTimerState removes the saved timer snapshot.
func (c *Client) ClearTimerState() error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(timersBucket)).Delete([]byte(timerStateKey))
	})
}
