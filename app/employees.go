package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timecardapp/timecard/config"
	"github.com/timecardapp/timecard/internal/apperr"
	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/internal/ui"
)

var (
	errCSVColumns = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "row %d: expected 3 columns (name, email, role), got %d",
	}

	errCSVDuplicateEmail = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "row %d: duplicate email %s",
	}

	errCSVRow = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "row %d",
	}
)

// requireAdmin checks that the active session may manage the roster.
func requireAdmin() error {
	sess, err := config.LoadSession()
	if err != nil {
		return err
	}

	if !sess.IsAdmin() {
		return errEmployeesRestricted
	}

	return nil
}

// printEmployeesTable prints a table of employees to w.
func printEmployeesTable(w io.Writer, employees []models.Employee) {
	tableBody := make([][]string, len(employees))

	for i := range employees {
		e := employees[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", e.ID),
			e.Name,
			e.Email,
			string(e.Role),
		}
	}

	tableBody = append([][]string{
		{"#", "NAME", "EMAIL", "ROLE"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// employeeListAction lists the roster.
func employeeListAction(ctx *cli.Context) error {
	if err := requireAdmin(); err != nil {
		return err
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	employees, err := db.ListEmployees(ctx.Context)
	if err != nil {
		return err
	}

	if len(employees) == 0 {
		pterm.Info.Println("No employees found")
		return nil
	}

	printEmployeesTable(os.Stdout, employees)

	return nil
}

// employeeRegisterAction registers a single employee through a form.
func employeeRegisterAction(ctx *cli.Context) error {
	if err := requireAdmin(); err != nil {
		return err
	}

	e := models.Employee{Role: models.RoleEmployee}
	confirmed := false

	roleOptions := make([]huh.Option[models.Role], len(models.Roles))
	for i, r := range models.Roles {
		roleOptions[i] = huh.NewOption(string(r), r)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&e.Name),
			huh.NewInput().
				Title("Email").
				Value(&e.Email),
			huh.NewSelect[models.Role]().
				Title("Role").
				Options(roleOptions...).
				Value(&e.Role),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Register this employee?").
				Value(&confirmed),
		),
	)

	err := form.Run()
	if err != nil {
		return err
	}

	if !confirmed {
		pterm.Info.Println("no changes applied")
		return nil
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	saved, err := db.SaveEmployee(ctx.Context, e)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("registered employee #%d: %s", saved.ID, saved.Name)

	return nil
}

// parseRoster reads and validates a CSV roster of name, email, and
// role columns. The first error aborts the whole import so a partially
// loaded roster is never persisted.
func parseRoster(r io.Reader) ([]models.Employee, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	employees := make([]models.Employee, 0, len(records))
	seen := make(map[string]bool)

	for i, record := range records {
		row := i + 1

		// Skip an optional header row.
		if i == 0 && len(record) > 0 &&
			strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}

		if len(record) != 3 {
			return nil, errCSVColumns.Fmt(row, len(record))
		}

		e := models.Employee{
			Name:  strings.TrimSpace(record[0]),
			Email: strings.TrimSpace(record[1]),
			Role:  models.Role(strings.TrimSpace(record[2])),
		}

		if err := e.Validate(); err != nil {
			return nil, errCSVRow.Fmt(row).Wrap(err)
		}

		email := strings.ToLower(e.Email)
		if seen[email] {
			return nil, errCSVDuplicateEmail.Fmt(row, e.Email)
		}

		seen[email] = true

		employees = append(employees, e)
	}

	return employees, nil
}

// employeeImportAction bulk-loads employees from a CSV file.
func employeeImportAction(ctx *cli.Context) error {
	if err := requireAdmin(); err != nil {
		return err
	}

	if ctx.Args().Len() != 1 {
		return errExpectedCSVFile
	}

	f, err := os.Open(ctx.Args().First())
	if err != nil {
		return err
	}
	defer f.Close()

	employees, err := parseRoster(f)
	if err != nil {
		return err
	}

	if len(employees) == 0 {
		pterm.Info.Println("the roster file contains no employees")
		return nil
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	for _, e := range employees {
		_, err := db.SaveEmployee(ctx.Context, e)
		if err != nil {
			return err
		}
	}

	pterm.Success.Printfln("imported %d employees", len(employees))

	return nil
}

// employeeDeleteAction removes an employee from the roster.
func employeeDeleteAction(ctx *cli.Context) error {
	if err := requireAdmin(); err != nil {
		return err
	}

	if ctx.Args().Len() != 1 {
		return errExpectedEmployeeID
	}

	id, err := strconv.Atoi(ctx.Args().First())
	if err != nil {
		return errExpectedEmployeeID
	}

	db, err := newEntryStore(config.Get())
	if err != nil {
		return err
	}
	defer db.Close()

	confirmed := false

	err = huh.NewConfirm().
		Title(fmt.Sprintf("Remove employee #%d from the roster?", id)).
		Value(&confirmed).
		Run()
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	err = db.DeleteEmployee(ctx.Context, id)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("removed employee #%d", id)

	return nil
}
