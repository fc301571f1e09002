package app

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/timecardapp/timecard/internal/apperr"
	"github.com/timecardapp/timecard/internal/models"
)

func TestParseRoster(t *testing.T) {
	input := `name,email,role
Ada Lovelace,ada@example.com,Admin
Grace Hopper,grace@example.com,Manager
Ken Thompson,ken@example.com,Employee
`

	got, err := parseRoster(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := []models.Employee{
		{Name: "Ada Lovelace", Email: "ada@example.com", Role: models.RoleAdmin},
		{Name: "Grace Hopper", Email: "grace@example.com", Role: models.RoleManager},
		{Name: "Ken Thompson", Email: "ken@example.com", Role: models.RoleEmployee},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRosterWithoutHeader(t *testing.T) {
	input := "Ada Lovelace,ada@example.com,Admin\n"

	got, err := parseRoster(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 || got[0].Name != "Ada Lovelace" {
		t.Errorf("expected a single employee, got %v", got)
	}
}

func TestParseRosterErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{
			name:  "missing name",
			input: ",ada@example.com,Admin\n",
		},
		{
			name:  "malformed email",
			input: "Ada Lovelace,not-an-email,Admin\n",
		},
		{
			name:  "unknown role",
			input: "Ada Lovelace,ada@example.com,Overlord\n",
		},
		{
			name: "duplicate email",
			input: "Ada Lovelace,ada@example.com,Admin\n" +
				"Ada L,ADA@example.com,Employee\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseRoster(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("expected an error, got none")
			}

			if !apperr.IsKind(err, apperr.Validation) {
				t.Errorf("expected a validation error, got %v", err)
			}

			// The whole import is rejected, not just the bad row.
			if got != nil {
				t.Errorf("expected no employees, got %v", got)
			}
		})
	}
}
