package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/timecardapp/timecard/internal/models"
)

var sample = []models.TimeEntry{
	{
		ID:          1,
		Task:        "Write report",
		Project:     "Project Alpha",
		Date:        "2025-02-12",
		TimeStarted: "09:15:00",
		Duration:    5400,
		Status:      models.StatusPending,
	},
	{
		ID:       2,
		Task:     "Standup",
		Project:  "Project Beta",
		Date:     "2025-02-12",
		Duration: 900,
		Status:   models.StatusApproved,
	},
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.csv")

	if err := ToCSV(sample, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header plus 2 entries", len(rows))
	}

	want := []string{
		"1", "2025-02-12", "Project Alpha", "Write report",
		"09:15:00", "5400", "01:30", "Pending",
	}

	if diff := cmp.Diff(want, rows[1]); diff != "" {
		t.Errorf("csv row mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")

	if err := ToJSON(sample, path); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got []models.TimeEntry
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(sample, got); diff != "" {
		t.Errorf("json round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.xml")

	if err := Write(sample, "xml", path); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
