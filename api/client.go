// Package api implements the entry store contract over the remote
// timesheet REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/timecardapp/timecard/internal/apperr"
	"github.com/timecardapp/timecard/internal/models"
	"github.com/timecardapp/timecard/store"
)

var (
	errRequestFailed = &apperr.Error{
		Kind:    apperr.Transport,
		Message: "the timesheet API could not be reached",
	}

	errUnexpectedStatus = &apperr.Error{
		Kind:    apperr.Transport,
		Message: "timesheet API error %d: %s",
	}

	errEntryNotFound = &apperr.Error{
		Kind:    apperr.NotFound,
		Message: "entry %d not found",
	}

	errProjectNotFound = &apperr.Error{
		Kind:    apperr.NotFound,
		Message: "project %d not found",
	}

	errEmployeeNotFound = &apperr.Error{
		Kind:    apperr.NotFound,
		Message: "employee %d not found",
	}

	errStaleEntry = &apperr.Error{
		Kind: apperr.Conflict,
		Message: "entry %d was changed by a newer update: " +
			"re-list and try again",
	}
)

// Client talks to a remote timesheet backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do performs a request with an optional JSON body and decodes the
// JSON response into out when out is non-nil.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	in, out any,
) error {
	var body io.Reader

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		c.baseURL+path,
		body,
	)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errRequestFailed.Wrap(err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errRequestFailed.Wrap(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	return json.Unmarshal(respBody, out)
}

// statusError maps a non-2xx response to the error taxonomy. The
// caller re-wraps not-found and conflict errors with the entity id.
func statusError(code int, body []byte) error {
	msg := strings.TrimSpace(string(body))

	var payload struct {
		Error string `json:"error"`
	}

	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		msg = payload.Error
	}

	switch code {
	case http.StatusNotFound:
		return &apperr.Error{Kind: apperr.NotFound, Message: msg}
	case http.StatusConflict:
		return &apperr.Error{Kind: apperr.Conflict, Message: msg}
	default:
		return errUnexpectedStatus.Fmt(code, msg)
	}
}

func (c *Client) ListEntries(
	ctx context.Context,
	scope store.Scope,
) ([]models.TimeEntry, error) {
	q := url.Values{}

	if scope.EmployeeID != 0 {
		q.Set("employee_id", fmt.Sprintf("%d", scope.EmployeeID))
	}

	if scope.From != "" {
		q.Set("from", scope.From)
	}

	if scope.To != "" {
		q.Set("to", scope.To)
	}

	path := "/timesheet/daily"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var entries []models.TimeEntry

	err := c.do(ctx, http.MethodGet, path, nil, &entries)

	return entries, err
}

func (c *Client) CreateEntry(
	ctx context.Context,
	draft models.TimeEntryDraft,
) (models.TimeEntry, error) {
	var entry models.TimeEntry

	if err := draft.Validate(); err != nil {
		return entry, err
	}

	err := c.do(ctx, http.MethodPost, "/timesheet/daily", draft, &entry)

	return entry, err
}

func (c *Client) UpdateEntry(
	ctx context.Context,
	id int,
	patch models.EntryPatch,
) (models.TimeEntry, error) {
	var entry models.TimeEntry

	path := fmt.Sprintf("/timesheet/daily/%d", id)

	err := c.do(ctx, http.MethodPut, path, patch, &entry)
	if apperr.IsKind(err, apperr.NotFound) {
		return entry, errEntryNotFound.Fmt(id)
	}

	if apperr.IsKind(err, apperr.Conflict) {
		return entry, errStaleEntry.Fmt(id)
	}

	return entry, err
}

func (c *Client) DeleteEntry(ctx context.Context, id int) error {
	path := fmt.Sprintf("/timesheet/daily/%d", id)

	err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if apperr.IsKind(err, apperr.NotFound) {
		return errEntryNotFound.Fmt(id)
	}

	return err
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project

	err := c.do(ctx, http.MethodGet, "/projects", nil, &projects)

	return projects, err
}

func (c *Client) SaveProject(
	ctx context.Context,
	p models.Project,
) (models.Project, error) {
	var saved models.Project

	if p.ID == 0 {
		err := c.do(ctx, http.MethodPost, "/projects", p, &saved)
		return saved, err
	}

	path := fmt.Sprintf("/projects/%d", p.ID)

	err := c.do(ctx, http.MethodPut, path, p, &saved)
	if apperr.IsKind(err, apperr.NotFound) {
		return saved, errProjectNotFound.Fmt(p.ID)
	}

	return saved, err
}

func (c *Client) DeleteProject(ctx context.Context, id int) error {
	path := fmt.Sprintf("/projects/%d", id)

	err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if apperr.IsKind(err, apperr.NotFound) {
		return errProjectNotFound.Fmt(id)
	}

	return err
}

func (c *Client) ListEmployees(
	ctx context.Context,
) ([]models.Employee, error) {
	var employees []models.Employee

	err := c.do(ctx, http.MethodGet, "/employees", nil, &employees)

	return employees, err
}

func (c *Client) SaveEmployee(
	ctx context.Context,
	e models.Employee,
) (models.Employee, error) {
	var saved models.Employee

	if err := e.Validate(); err != nil {
		return saved, err
	}

	if e.ID == 0 {
		err := c.do(ctx, http.MethodPost, "/employees", e, &saved)
		return saved, err
	}

	path := fmt.Sprintf("/employees/%d", e.ID)

	err := c.do(ctx, http.MethodPut, path, e, &saved)
	if apperr.IsKind(err, apperr.NotFound) {
		return saved, errEmployeeNotFound.Fmt(e.ID)
	}

	return saved, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	path := fmt.Sprintf("/employees/%d", id)

	err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if apperr.IsKind(err, apperr.NotFound) {
		return errEmployeeNotFound.Fmt(id)
	}

	return err
}

// Close satisfies the entry store contract; an HTTP client holds no
// connection state worth closing.
func (c *Client) Close() error {
	return nil
}
