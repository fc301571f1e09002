package app

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/config"
	"github.com/timecardapp/timecard/internal/timeutil"
	"github.com/timecardapp/timecard/internal/ui"
	"github.com/timecardapp/timecard/timesheet"
)

// weeklyAction renders the filtered entries grouped into calendar
// weeks, most recent first.
func weeklyAction(ctx *cli.Context) error {
	entries, db, err := entryHelper(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	f := config.Filter(ctx).Timesheet()

	weeks, dropped := timesheet.Weeks(entries, f)

	if dropped > 0 {
		slog.Debug(
			"entries excluded from the weekly view",
			slog.Int("count", dropped),
		)
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(weeks)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(weeks) == 0 {
		pterm.Info.Println(noEntriesMsg)
		return nil
	}

	for _, week := range weeks {
		var total int

		for _, day := range week.Days {
			total += timesheet.TotalSeconds(day.Entries)
		}

		pterm.Println(ui.Highlight(week.Label))

		for _, day := range week.Days {
			pterm.Println(ui.Blue(day.Day.Label))
			printEntriesTable(os.Stdout, day.Entries)
		}

		pterm.Printfln(
			"  week total: %s\n",
			ui.Green(timeutil.FormatSeconds(total)),
		)
	}

	return nil
}
