package app

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/config"
	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/store"
)

// delEntries deletes all the specified entries. It requests for
// confirmation before proceeding with the operation.
func delEntries(
	ctx *cli.Context,
	db store.EntryStore,
	entries []models.TimeEntry,
) error {
	if len(entries) == 0 {
		return nil
	}

	printEntriesTable(os.Stdout, entries)

	warning := pterm.Warning.Sprint(
		"The above entries will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(os.Stdout, warning)

	reader := bufio.NewReader(os.Stdin)

	_, _ = reader.ReadString('\n')

	for _, e := range entries {
		if err := db.DeleteEntry(ctx.Context, e.ID); err != nil {
			return err
		}
	}

	pterm.Success.Printfln("deleted %d entries", len(entries))

	return nil
}

// deleteAction deletes the entries with the given ids.
func deleteAction(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errExpectedEntryID
	}

	ids := make([]int, 0, ctx.Args().Len())

	for _, arg := range ctx.Args().Slice() {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return errExpectedEntryID
		}

		ids = append(ids, id)
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	entries := make([]models.TimeEntry, 0, len(ids))

	for _, id := range ids {
		e, err := findEntry(ctx, db, id)
		if err != nil {
			return err
		}

		entries = append(entries, e)
	}

	return delEntries(ctx, db, entries)
}
