package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/api"
	"github.com/timecardapp/timecard/config"
	"github.com/timecardapp/timecard/export"
	"github.com/timecardapp/timecard/internal/logutil"
	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/timeutil"
	"github.com/timecardapp/timecard/internal/ui"
	"github.com/timecardapp/timecard/store"
	"github.com/timecardapp/timecard/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envTimecardNoColor = "TIMECARD_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// newEntryStore opens the entry store selected by the configured
// backend: the local bolt database, or the remote API.
func newEntryStore(cfg *config.Config) (store.EntryStore, error) {
	if cfg.Store.Backend == config.BackendAPI {
		return api.NewClient(cfg.API.BaseURL, cfg.API.Timeout), nil
	}

	return store.NewClient(config.DBFilePath())
}

// entryScope builds the list scope from the filter flags and the
// session: employees only ever see their own entries.
func entryScope(ctx *cli.Context, sess config.Session) store.Scope {
	conf := config.Filter(ctx)

	scope := store.Scope{}

	if !conf.StartTime.IsZero() {
		scope.From = conf.StartTime.Format(timeutil.ISODate)
	}

	if !conf.EndTime.IsZero() {
		scope.To = conf.EndTime.Format(timeutil.ISODate)
	}

	if sess.Scoped() {
		scope.EmployeeID = sess.EmployeeID
	}

	return scope
}

// entryHelper lists the entries matching the filter flags for the
// active session.
func entryHelper(
	ctx *cli.Context,
) ([]models.TimeEntry, store.EntryStore, error) {
	sess, _ := config.LoadSession()

	db, err := newEntryStore(config.Get())
	if err != nil {
		return nil, nil, err
	}

	entries, err := db.ListEntries(ctx.Context, entryScope(ctx, sess))
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return entries, db, nil
}

// saveTrackedEntry composes an entry from a finished timer and
// persists it, then runs the post-save hooks.
func saveTrackedEntry(
	ctx *cli.Context,
	db store.EntryStore,
	t *timer.Timer,
	duration int,
) error {
	cfg := config.Get()

	draft := models.TimeEntryDraft{
		Task:        t.Task,
		Project:     t.Project,
		Date:        t.StartTime.Format(timeutil.ISODate),
		TimeStarted: t.StartTime.Format("15:04"),
		Duration:    duration,
		EmployeeID:  t.EmployeeID,
	}

	saved, err := db.CreateEntry(ctx.Context, draft)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"saved entry #%d: [%s] %s (%s)",
		saved.ID,
		saved.Project,
		saved.Task,
		timeutil.FormatSeconds(saved.Duration),
	)

	if cfg.Settings.Notify {
		notify("Entry saved", fmt.Sprintf("%s: %s", saved.Project, saved.Task))
	}

	return runEntryCmd(cfg.Settings.EntryCmd)
}

// notify sends a desktop notification.
func notify(title, msg string) {
	err := beeep.Notify(title, msg, "")
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// runEntryCmd executes the configured entry_cmd hook after an entry is
// saved.
func runEntryCmd(entryCmd string) error {
	if entryCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(entryCmd)
	if err != nil {
		return fmt.Errorf("unable to parse entry_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// recoverInterruptedTimer finalises a timer snapshot left behind by a
// crashed session into an entry covering the tracked time. Snapshots
// are read from the local database; the recovered entry goes to the
// configured store.
func recoverInterruptedTimer(
	ctx *cli.Context,
	local *store.Client,
	db store.EntryStore,
) error {
	state, err := local.GetTimerState()
	if err != nil || state == nil {
		return err
	}

	duration := int(state.SavedAt.Sub(state.StartTime).Seconds())
	if duration < 0 {
		duration = 0
	}

	draft := models.TimeEntryDraft{
		Task:        state.Task,
		Project:     state.Project,
		Date:        state.StartTime.Format(timeutil.ISODate),
		TimeStarted: state.StartTime.Format("15:04"),
		Duration:    duration,
		EmployeeID:  state.EmployeeID,
	}

	saved, err := db.CreateEntry(ctx.Context, draft)
	if err != nil {
		return err
	}

	pterm.Info.Printfln(
		"recovered an interrupted timer into entry #%d (%s)",
		saved.ID,
		timeutil.FormatSeconds(saved.Duration),
	)

	return local.ClearTimerState()
}

// trackAction runs the live timer and saves an entry when it stops.
func trackAction(ctx *cli.Context) error {
	cfg := config.Get()
	sess, _ := config.LoadSession()

	task := strings.TrimSpace(ctx.String("task"))
	if task == "" && ctx.Args().Len() > 0 {
		task = strings.Join(ctx.Args().Slice(), " ")
	}

	project := firstNonEmptyString(
		strings.TrimSpace(ctx.String("project")),
		cfg.Settings.DefaultProject,
	)

	draft := models.TimeEntryDraft{
		Task:        task,
		Project:     project,
		Date:        time.Now().Format(timeutil.ISODate),
		TimeStarted: time.Now().Format("15:04"),
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	// Timer snapshots always live in the local database so that a
	// crashed session can be recovered without the API.
	local, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}
	defer local.Close()

	var db store.EntryStore = local

	if cfg.Store.Backend == config.BackendAPI {
		db = api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
		defer db.Close()
	}

	err = recoverInterruptedTimer(ctx, local, db)
	if err != nil {
		return err
	}

	t := timer.New(task, project, sess.EmployeeID)

	secs, err := timer.Run(t, local)
	if err != nil {
		return err
	}

	return saveTrackedEntry(ctx, db, t, secs)
}

// addAction records a completed entry without running a timer.
func addAction(ctx *cli.Context) error {
	sess, _ := config.LoadSession()

	date := strings.TrimSpace(ctx.String("date"))
	if date == "" {
		date = time.Now().Format(timeutil.ISODate)
	}

	duration, err := timeutil.ParseClock(ctx.String("duration"))
	if err != nil {
		return err
	}

	draft := models.TimeEntryDraft{
		Task:        strings.TrimSpace(ctx.String("task")),
		Project:     strings.TrimSpace(ctx.String("project")),
		Date:        date,
		TimeStarted: strings.TrimSpace(ctx.String("time-started")),
		Duration:    duration,
		EmployeeID:  sess.EmployeeID,
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	saved, err := db.CreateEntry(ctx.Context, draft)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"saved entry #%d: [%s] %s (%s)",
		saved.ID,
		saved.Project,
		saved.Task,
		timeutil.FormatSeconds(saved.Duration),
	)

	return nil
}

// statusAction prints the status of the currently running timer.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus()
}

// exportAction writes the filtered entries to a file.
func exportAction(ctx *cli.Context) error {
	entries, db, err := entryHelper(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	f := config.Filter(ctx).Timesheet()

	matched := entries[:0:0]

	for _, e := range entries {
		if f.Match(e) {
			matched = append(matched, e)
		}
	}

	format := export.Format(strings.ToLower(ctx.String("format")))

	path := ctx.String("output")
	if path == "" {
		path = fmt.Sprintf(
			"timecard_%s.%s",
			time.Now().Format(timeutil.ISODate),
			format,
		)
	}

	err = export.Write(matched, format, path)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("exported %d entries to %s", len(matched), path)

	return nil
}

// editConfigAction opens the timecard config file in the user's
// default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.Get()

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	cfg := config.Get()

	logutil.Init(config.LogFilePath())

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TIMECARD_NO_COLOR is set
	if _, exists := os.LookupEnv(envTimecardNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting timecard")

	return nil
}
