package config

import (
	"os"
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/timeutil"
	"github.com/timecardapp/timecard/timesheet"
)

// FilterConfig represents a configuration to filter timesheet entries
// by status, project, and the date range the entries fall in.
type FilterConfig struct {
	Status    models.EntryStatus
	Project   string
	StartTime time.Time
	EndTime   time.Time
}

// Timesheet converts the filter into the form the bucketing engine
// consumes: inclusive ISO date bounds plus the status and project
// predicates.
func (f *FilterConfig) Timesheet() timesheet.Filter {
	ts := timesheet.Filter{
		Status:  f.Status,
		Project: f.Project,
	}

	if !f.StartTime.IsZero() {
		ts.From = f.StartTime.Format(timeutil.ISODate)
	}

	if !f.EndTime.IsZero() {
		ts.To = f.EndTime.Format(timeutil.ISODate)
	}

	return ts
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(period timeutil.Period) (start, end time.Time) {
	now := time.Now()

	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// setFilterConfig updates the filter configuration from command-line
// arguments.
func setFilterConfig(ctx *cli.Context) (*FilterConfig, error) {
	filterCfg := &FilterConfig{
		Project: strings.TrimSpace(ctx.String("project")),
	}

	status := strings.TrimSpace(ctx.String("status"))
	if status != "" {
		s := models.EntryStatus(status)
		if s != models.StatusPending && s != models.StatusApproved {
			return nil, errInvalidStatus.Fmt(status)
		}

		filterCfg.Status = s
	}

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, errInvalidPeriod
	}

	if period != "" {
		filterCfg.StartTime, filterCfg.EndTime = getTimeRange(period)

		return filterCfg, nil
	}

	from := ctx.String("from")
	if from != "" {
		dateTime, err := dateparse.ParseAny(from)
		if err != nil {
			return nil, err
		}

		filterCfg.StartTime = timeutil.RoundToStart(dateTime)
	}

	to := ctx.String("to")
	if to != "" {
		dateTime, err := dateparse.ParseAny(to)
		if err != nil {
			return nil, err
		}

		filterCfg.EndTime = timeutil.RoundToEnd(dateTime)
	}

	if !filterCfg.StartTime.IsZero() && !filterCfg.EndTime.IsZero() &&
		filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}

// Filter initializes and returns a configuration to filter entries
// from command-line arguments.
func Filter(ctx *cli.Context) *FilterConfig {
	cfg, err := setFilterConfig(ctx)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	return cfg
}
