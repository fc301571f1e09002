package app

import "github.com/urfave/cli/v2"

var (
	taskFlag = &cli.StringFlag{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Description of the task being worked on",
	}

	projectFlag = &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Project the entry is recorded against",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Entry date in YYYY-MM-DD format (default: today)",
	}

	timeStartedFlag = &cli.StringFlag{
		Name:  "time-started",
		Usage: "Time the work started, e.g. '09:30'",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Entry duration as 'HH:MM' or a Go duration (e.g. '1h30m')",
	}

	statusFilterFlag = &cli.StringFlag{
		Name:  "status",
		Usage: "Filter entries by review status: Pending or Approved",
	}

	periodFlag = &cli.StringFlag{
		Name:  "period",
		Usage: "Filter entries by time period. Accepts: today, yesterday, 7days, 14days, 30days, 90days, all-time",
	}

	fromFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "Only include entries starting from this date",
	}

	toFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Only include entries up to and including this date",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the raw entries as JSON",
	}

	weekendsFlag = &cli.BoolFlag{
		Name:  "weekends",
		Usage: "Include Saturday and Sunday in the daily view",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Export format: csv or json",
		Value:   "csv",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Path of the exported file",
	}

	projectStatusFlag = &cli.StringFlag{
		Name:  "status",
		Usage: "Filter projects by status: Active, Completed, or Pending",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
