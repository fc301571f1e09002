package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/config"
	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/timeutil"
	"github.com/timecardapp/timecard/internal/ui"
	"github.com/timecardapp/timecard/timesheet"
)

const noEntriesMsg = "No entries found for the specified time range"

// printEntriesTable prints a table of entries to w.
func printEntriesTable(w io.Writer, entries []models.TimeEntry) {
	twentyFourHour := config.Get().Display.TwentyFourHour

	tableBody := make([][]string, len(entries))

	for i := range entries {
		e := entries[i]

		statusText := ui.Yellow(string(models.StatusPending))
		if e.Status == models.StatusApproved {
			statusText = ui.Green(string(models.StatusApproved))
		}

		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Date,
			e.Project,
			e.Task,
			timeutil.FormatClock(e.TimeStarted, twentyFourHour),
			timeutil.FormatSeconds(e.Duration),
			statusText,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "DATE", "PROJECT", "TASK", "STARTED", "DURATION", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listAction renders the current week day by day, most recent first.
func listAction(ctx *cli.Context) error {
	cfg := config.Get()

	entries, db, err := entryHelper(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if ctx.Bool("json") {
		b, err := json.Marshal(entries)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	includeWeekends := cfg.Display.IncludeWeekends || ctx.Bool("weekends")

	days := timesheet.CurrentWeekDays(time.Now(), includeWeekends)

	conf := config.Filter(ctx)

	f := timesheet.Filter{
		Status:  conf.Status,
		Project: conf.Project,
	}

	buckets := timesheet.Bucket(entries, days, f)

	empty := true

	for _, day := range days {
		dayEntries := buckets[day.Label]
		if len(dayEntries) == 0 {
			continue
		}

		empty = false

		pterm.Println(ui.Highlight(day.Label))
		printEntriesTable(os.Stdout, dayEntries)
		pterm.Printfln(
			"  total: %s\n",
			ui.Green(timeutil.FormatSeconds(timesheet.TotalSeconds(dayEntries))),
		)
	}

	if empty {
		pterm.Info.Println(noEntriesMsg)
	}

	return nil
}
