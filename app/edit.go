package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/config"
	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/timeutil"
	"github.com/timecardapp/timecard/store"
)

// findEntry returns the entry with the given id from the store.
func findEntry(
	ctx *cli.Context,
	db store.EntryStore,
	id int,
) (models.TimeEntry, error) {
	entries, err := db.ListEntries(ctx.Context, store.Scope{})
	if err != nil {
		return models.TimeEntry{}, err
	}

	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}

	return models.TimeEntry{}, store.ErrEntryNotFound
}

// editAction edits a single entry through a form pre-filled with its
// current values. The update carries the version observed here so a
// concurrent change is not silently overwritten.
func editAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return errExpectedEntryID
	}

	id, err := strconv.Atoi(ctx.Args().First())
	if err != nil {
		return errExpectedEntryID
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	entry, err := findEntry(ctx, db, id)
	if err != nil {
		return err
	}

	task := entry.Task
	project := entry.Project
	date := entry.Date
	timeStarted := entry.TimeStarted
	duration := timeutil.FormatSeconds(entry.Duration)
	status := entry.Status
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Value(&task),
			huh.NewInput().
				Title("Project").
				Value(&project),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&date),
			huh.NewInput().
				Title("Time started (HH:MM)").
				Value(&timeStarted),
			huh.NewInput().
				Title("Duration (HH:MM)").
				Value(&duration),
			huh.NewSelect[models.EntryStatus]().
				Title("Status").
				Options(
					huh.NewOption(string(models.StatusPending), models.StatusPending),
					huh.NewOption(string(models.StatusApproved), models.StatusApproved),
				).
				Value(&status),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Apply these changes?").
				Value(&confirmed),
		),
	)

	err = form.Run()
	if err != nil {
		return err
	}

	if !confirmed {
		pterm.Info.Println("no changes applied")
		return nil
	}

	secs, err := timeutil.ParseClock(strings.TrimSpace(duration))
	if err != nil {
		return err
	}

	patch := models.EntryPatch{
		Task:        &task,
		Project:     &project,
		Date:        &date,
		TimeStarted: &timeStarted,
		Status:      &status,
		Duration:    &secs,
		Version:     entry.Version,
	}

	updated, err := db.UpdateEntry(ctx.Context, id, patch)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"updated entry #%d: [%s] %s (%s)",
		updated.ID,
		updated.Project,
		updated.Task,
		timeutil.FormatSeconds(updated.Duration),
	)

	return nil
}
