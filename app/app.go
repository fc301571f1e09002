package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the timecard app instance.
func Get() *cli.App {
	timecardApp := &cli.App{
		Name: "timecard",
		Usage: `
		Timecard is a timesheet tracker for the command-line. It records what
		you worked on and for how long, and renders your week day by day.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "track",
				Usage: "Start a live timer for a task. Stopping the timer saves a timesheet entry",
				Flags: []cli.Flag{
					taskFlag,
					projectFlag,
				},
				Action: trackAction,
			},
			{
				Name:  "add",
				Usage: "Record a completed entry without running a timer",
				Flags: []cli.Flag{
					taskFlag,
					projectFlag,
					dateFlag,
					timeStartedFlag,
					durationFlag,
				},
				Action: addAction,
			},
			{
				Name:  "list",
				Usage: "Display the current week's entries day by day",
				Flags: []cli.Flag{
					statusFilterFlag,
					projectFlag,
					jsonFlag,
					weekendsFlag,
				},
				Action: listAction,
			},
			{
				Name:  "weekly",
				Usage: "Display entries grouped into weeks",
				Flags: []cli.Flag{
					statusFilterFlag,
					projectFlag,
					periodFlag,
					fromFlag,
					toFlag,
					jsonFlag,
				},
				Action: weeklyAction,
			},
			{
				Name:      "edit",
				Usage:     "Edit a timesheet entry",
				ArgsUsage: "<id>",
				Action:    editAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete one or more timesheet entries",
				ArgsUsage: "<id>...",
				Action:    deleteAction,
			},
			{
				Name:  "projects",
				Usage: "Manage projects",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List projects with a summary of their statuses",
						Flags:  []cli.Flag{projectStatusFlag},
						Action: projectListAction,
					},
					{
						Name:   "add",
						Usage:  "Create a new project",
						Action: projectAddAction,
					},
					{
						Name:      "edit",
						Usage:     "Edit an existing project",
						ArgsUsage: "<id>",
						Action:    projectEditAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete a project",
						ArgsUsage: "<id>",
						Action:    projectDeleteAction,
					},
				},
			},
			{
				Name:  "employees",
				Usage: "Manage the employee roster",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List all employees",
						Action: employeeListAction,
					},
					{
						Name:   "register",
						Usage:  "Register a new employee",
						Action: employeeRegisterAction,
					},
					{
						Name:      "import",
						Usage:     "Bulk-load employees from a CSV file with name, email, and role columns",
						ArgsUsage: "<file>",
						Action:    employeeImportAction,
					},
					{
						Name:      "delete",
						Usage:     "Remove an employee from the roster",
						ArgsUsage: "<id>",
						Action:    employeeDeleteAction,
					},
				},
			},
			{
				Name:   "login",
				Usage:  "Select who is using timecard and which sections display",
				Action: loginAction,
			},
			{
				Name:   "logout",
				Usage:  "Clear the active session",
				Action: logoutAction,
			},
			{
				Name:   "whoami",
				Usage:  "Print the active session",
				Action: whoamiAction,
			},
			{
				Name:  "export",
				Usage: "Write entries to a CSV or JSON file",
				Flags: []cli.Flag{
					formatFlag,
					outputFlag,
					statusFilterFlag,
					projectFlag,
					periodFlag,
					fromFlag,
					toFlag,
				},
				Action: exportAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			taskFlag,
			projectFlag,
			noColorFlag,
		},
		Action: trackAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return timecardApp
}
