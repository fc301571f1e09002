package config

import (
	"flag"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/timeutil"
)

func filterContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("filter", flag.PanicOnError)

	for k, v := range flags {
		_ = f.String(k, "", "")

		err := f.Set(k, v)
		if err != nil {
			t.Log(err)
		}
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestSetFilterConfig(t *testing.T) {
	cases := []struct {
		name    string
		flags   map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *FilterConfig)
	}{
		{
			name:  "valid period",
			flags: map[string]string{"period": "7days"},
			check: func(t *testing.T, cfg *FilterConfig) {
				if cfg.StartTime.IsZero() || cfg.EndTime.IsZero() {
					t.Fatal("expected a bounded time range")
				}

				days := cfg.EndTime.Sub(cfg.StartTime).Hours() / 24
				if days < 6 || days > 7 {
					t.Errorf("expected a 7 day range, got %.1f days", days)
				}
			},
		},
		{
			name:    "invalid period",
			flags:   map[string]string{"period": "fortnight"},
			wantErr: true,
		},
		{
			name:  "status and project",
			flags: map[string]string{"status": "Pending", "project": "Website"},
			check: func(t *testing.T, cfg *FilterConfig) {
				if cfg.Status != models.StatusPending {
					t.Errorf("expected Pending status, got %s", cfg.Status)
				}

				if cfg.Project != "Website" {
					t.Errorf("expected Website project, got %s", cfg.Project)
				}
			},
		},
		{
			name:    "unknown status",
			flags:   map[string]string{"status": "Rejected"},
			wantErr: true,
		},
		{
			name:  "explicit date range",
			flags: map[string]string{"from": "2025-02-10", "to": "2025-02-16"},
			check: func(t *testing.T, cfg *FilterConfig) {
				if got := cfg.StartTime.Format(timeutil.ISODate); got != "2025-02-10" {
					t.Errorf("expected start 2025-02-10, got %s", got)
				}

				if got := cfg.EndTime.Format(timeutil.ISODate); got != "2025-02-16" {
					t.Errorf("expected end 2025-02-16, got %s", got)
				}
			},
		},
		{
			name:    "end before start",
			flags:   map[string]string{"from": "2025-02-16", "to": "2025-02-10"},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := setFilterConfig(filterContext(t, tc.flags))

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}

func TestFilterTimesheet(t *testing.T) {
	cfg := &FilterConfig{
		Status:    models.StatusApproved,
		Project:   "Backend",
		StartTime: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 2, 16, 23, 59, 59, 0, time.UTC),
	}

	got := cfg.Timesheet()

	if got.Status != models.StatusApproved {
		t.Errorf("expected Approved status, got %s", got.Status)
	}

	if got.From != "2025-02-10" || got.To != "2025-02-16" {
		t.Errorf("expected 2025-02-10..2025-02-16, got %s..%s", got.From, got.To)
	}
}

func TestFilterTimesheetUnbounded(t *testing.T) {
	cfg := &FilterConfig{}

	got := cfg.Timesheet()

	if got.From != "" || got.To != "" {
		t.Errorf("expected unbounded range, got %s..%s", got.From, got.To)
	}
}
