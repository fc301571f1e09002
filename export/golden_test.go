package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/testutil"
)

type goldenCase struct {
	name   string
	golden string
	format Format
	snap   []byte
}

func (tc goldenCase) entries() []models.TimeEntry {
	return []models.TimeEntry{
		{
			ID:          1,
			Task:        "Implement login page",
			Project:     "Website",
			Date:        "2025-02-12",
			TimeStarted: "09:00",
			Duration:    5400,
			Status:      models.StatusPending,
		},
		{
			ID:          2,
			Task:        "Fix payment webhook",
			Project:     "Backend",
			Date:        "2025-02-13",
			TimeStarted: "14:30",
			Duration:    3600,
			Status:      models.StatusApproved,
		},
	}
}

func (tc goldenCase) Output() ([]byte, string) {
	return tc.snap, tc.golden
}

var _ testutil.GoldenTest = (*goldenCase)(nil)

func TestWriteGolden(t *testing.T) {
	cases := []goldenCase{
		{
			name:   "csv output",
			golden: "entries_csv",
			format: FormatCSV,
		},
		{
			name:   "json output",
			golden: "entries_json",
			format: FormatJSON,
		},
	}

	for i := range cases {
		tc := cases[i]

		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out")

			err := Write(tc.entries(), tc.format, path)
			if err != nil {
				t.Fatal(err)
			}

			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			tc.snap = b

			testutil.CompareGoldenFile(t, tc)
		})
	}
}
