package app

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/config"
	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/ui"
)

// loginAction selects who is using the client. The choice only decides
// which sections of the interface render; it is not authentication.
func loginAction(ctx *cli.Context) error {
	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	employees, err := db.ListEmployees(ctx.Context)
	if err != nil {
		return err
	}

	sess := config.Session{Role: models.RoleEmployee}

	roleOptions := make([]huh.Option[models.Role], len(models.Roles))
	for i, r := range models.Roles {
		roleOptions[i] = huh.NewOption(string(r), r)
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[models.Role]().
				Title("Role").
				Options(roleOptions...).
				Value(&sess.Role),
		),
	}

	if len(employees) > 0 {
		empOptions := make([]huh.Option[int], len(employees))
		for i, e := range employees {
			empOptions[i] = huh.NewOption(
				fmt.Sprintf("%s <%s>", e.Name, e.Email),
				e.ID,
			)
		}

		groups = append(groups, huh.NewGroup(
			huh.NewSelect[int]().
				Title("Employee").
				Options(empOptions...).
				Value(&sess.EmployeeID),
		))
	}

	err = huh.NewForm(groups...).Run()
	if err != nil {
		return err
	}

	for _, e := range employees {
		if e.ID == sess.EmployeeID {
			sess.Name = e.Name
			break
		}
	}

	err = config.SaveSession(sess)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"logged in as %s (%s)",
		ui.Highlight(sess.Name),
		sess.Role,
	)

	return nil
}

// logoutAction clears the active session.
func logoutAction(_ *cli.Context) error {
	err := config.ClearSession()
	if err != nil {
		return err
	}

	pterm.Success.Println("logged out")

	return nil
}

// whoamiAction prints the active session.
func whoamiAction(_ *cli.Context) error {
	sess, err := config.LoadSession()
	if err != nil {
		return err
	}

	pterm.Printfln(
		"%s (%s), employee #%d",
		ui.Highlight(sess.Name),
		sess.Role,
		sess.EmployeeID,
	)

	return nil
}
