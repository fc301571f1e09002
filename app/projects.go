package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/config"
	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/ui"
)

// requireProjectAccess checks that the active session may manage
// projects. This gates what the interface offers, nothing more.
func requireProjectAccess() error {
	sess, err := config.LoadSession()
	if err != nil {
		return err
	}

	if !sess.CanManageProjects() {
		return errProjectsRestricted
	}

	return nil
}

func projectStatusText(s models.ProjectStatus) string {
	switch s {
	case models.ProjectActive:
		return ui.Green(string(s))
	case models.ProjectCompleted:
		return ui.Blue(string(s))
	default:
		return ui.Yellow(string(s))
	}
}

// printProjectsTable prints a table of projects to w.
func printProjectsTable(w io.Writer, projects []models.Project) {
	tableBody := make([][]string, len(projects))

	for i := range projects {
		p := projects[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Description,
			p.StartDate,
			p.EndDate,
			projectStatusText(p.Status),
		}
	}

	tableBody = append([][]string{
		{"#", "NAME", "DESCRIPTION", "START", "END", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// projectListAction lists projects sorted by name, with a summary of
// how many are in each status.
func projectListAction(ctx *cli.Context) error {
	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	projects, err := db.ListProjects(ctx.Context)
	if err != nil {
		return err
	}

	var active, completed, pending int

	for _, p := range projects {
		switch p.Status {
		case models.ProjectActive:
			active++
		case models.ProjectCompleted:
			completed++
		default:
			pending++
		}
	}

	statusFilter := strings.TrimSpace(ctx.String("status"))
	if statusFilter != "" {
		filtered := projects[:0:0]

		for _, p := range projects {
			if strings.EqualFold(string(p.Status), statusFilter) {
				filtered = append(filtered, p)
			}
		}

		projects = filtered
	}

	if len(projects) == 0 {
		pterm.Info.Println("No projects found")
		return nil
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return natural.Less(projects[i].Name, projects[j].Name)
	})

	printProjectsTable(os.Stdout, projects)

	pterm.Printfln(
		"  %d projects: %s active, %s completed, %s pending",
		active+completed+pending,
		ui.Green(active),
		ui.Blue(completed),
		ui.Yellow(pending),
	)

	return nil
}

// projectForm collects project fields, pre-filled from p.
func projectForm(p *models.Project) error {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&p.Name),
			huh.NewInput().
				Title("Description").
				Value(&p.Description),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(&p.StartDate),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Value(&p.EndDate),
			huh.NewSelect[models.ProjectStatus]().
				Title("Status").
				Options(
					huh.NewOption(string(models.ProjectActive), models.ProjectActive),
					huh.NewOption(string(models.ProjectPending), models.ProjectPending),
					huh.NewOption(string(models.ProjectCompleted), models.ProjectCompleted),
				).
				Value(&p.Status),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this project?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if !confirmed {
		pterm.Info.Println("no changes applied")
		return huh.ErrUserAborted
	}

	return nil
}

// projectAddAction creates a new project.
func projectAddAction(ctx *cli.Context) error {
	if err := requireProjectAccess(); err != nil {
		return err
	}

	p := models.Project{Status: models.ProjectActive}

	err := projectForm(&p)
	if err != nil {
		if err == huh.ErrUserAborted {
			return nil
		}

		return err
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	saved, err := db.SaveProject(ctx.Context, p)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("saved project #%d: %s", saved.ID, saved.Name)

	return nil
}

// projectEditAction edits an existing project.
func projectEditAction(ctx *cli.Context) error {
	if err := requireProjectAccess(); err != nil {
		return err
	}

	if ctx.Args().Len() != 1 {
		return errExpectedProjectID
	}

	id, err := strconv.Atoi(ctx.Args().First())
	if err != nil {
		return errExpectedProjectID
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	projects, err := db.ListProjects(ctx.Context)
	if err != nil {
		return err
	}

	var target *models.Project

	for i := range projects {
		if projects[i].ID == id {
			target = &projects[i]
			break
		}
	}

	if target == nil {
		return errProjectNotFound.Fmt(id)
	}

	err = projectForm(target)
	if err != nil {
		if err == huh.ErrUserAborted {
			return nil
		}

		return err
	}

	saved, err := db.SaveProject(ctx.Context, *target)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("updated project #%d: %s", saved.ID, saved.Name)

	return nil
}

// projectDeleteAction deletes a project after confirmation.
func projectDeleteAction(ctx *cli.Context) error {
	if err := requireProjectAccess(); err != nil {
		return err
	}

	if ctx.Args().Len() != 1 {
		return errExpectedProjectID
	}

	id, err := strconv.Atoi(ctx.Args().First())
	if err != nil {
		return errExpectedProjectID
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	confirmed := false

	err = huh.NewConfirm().
		Title(fmt.Sprintf("Delete project #%d permanently?", id)).
		Value(&confirmed).
		Run()
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	err = db.DeleteProject(ctx.Context, id)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("deleted project #%d", id)

	return nil
}
