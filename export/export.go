// Package export writes timesheet entries to CSV or JSON files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/timeutil"
)

// Format identifies a supported export format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ToCSV writes the entries to a CSV file at path.
func ToCSV(entries []models.TimeEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"ID", "Date", "Project", "Task", "Time Started",
		"Duration (s)", "Duration", "Status",
	}

	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Date,
			e.Project,
			e.Task,
			e.TimeStarted,
			fmt.Sprintf("%d", e.Duration),
			timeutil.FormatSeconds(e.Duration),
			string(e.Status),
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// ToJSON writes the entries to a JSON file at path.
func ToJSON(entries []models.TimeEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	return enc.Encode(entries)
}

// Write dispatches to the encoder for the chosen format.
func Write(entries []models.TimeEntry, format Format, path string) error {
	switch format {
	case FormatCSV:
		return ToCSV(entries, path)
	case FormatJSON:
		return ToJSON(entries, path)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}
