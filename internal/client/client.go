// Package client is the HTTP client for the calendar API, used by the
// CLI and the TUI.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/existflow/ironcal/internal/model"
	"github.com/existflow/ironcal/internal/validate"
)

// ErrOverlap is returned when the server rejects a write with a 409
// overlap warning.
var ErrOverlap = errors.New("Event overlaps with existing event")

// ErrNotFound is returned for 404 responses.
var ErrNotFound = errors.New("Event not found")

// Client talks to an ironcal server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given server base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError extracts the server's {"error": ...} message from a non-2xx
// response, mapping the known statuses onto sentinels.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	switch resp.StatusCode {
	case http.StatusConflict:
		return ErrOverlap
	case http.StatusNotFound:
		return ErrNotFound
	}

	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return errors.New(e.Error)
	}
	return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) sendJSON(method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func overlapQuery(warnOverlap bool) string {
	if warnOverlap {
		return "?warn_overlap=true"
	}
	return ""
}

// ListEvents returns all events, optionally limited to an inclusive
// date range when both bounds are set.
func (c *Client) ListEvents(startDate, endDate string) ([]model.Event, error) {
	path := "/api/events"
	if startDate != "" && endDate != "" {
		path += "?start_date=" + url.QueryEscape(startDate) + "&end_date=" + url.QueryEscape(endDate)
	}

	var events []model.Event
	if err := c.getJSON(path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// EventsOnDate returns the events for a single date.
func (c *Client) EventsOnDate(date string) ([]model.Event, error) {
	var events []model.Event
	if err := c.getJSON("/api/events/date/"+url.PathEscape(date), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent returns a single event by id.
func (c *Client) GetEvent(id string) (model.Event, error) {
	var ev model.Event
	if err := c.getJSON("/api/events/"+url.PathEscape(id), &ev); err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// CreateEvent creates an event and returns the stored record. With
// warnOverlap set, an overlapping slot fails with ErrOverlap.
func (c *Client) CreateEvent(in validate.Input, warnOverlap bool) (model.Event, error) {
	var ev model.Event
	if err := c.sendJSON(http.MethodPost, "/api/events"+overlapQuery(warnOverlap), in, &ev); err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// UpdateEvent replaces an event's fields and returns the updated record.
func (c *Client) UpdateEvent(id string, in validate.Input, warnOverlap bool) (model.Event, error) {
	var ev model.Event
	if err := c.sendJSON(http.MethodPut, "/api/events/"+url.PathEscape(id)+overlapQuery(warnOverlap), in, &ev); err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// DeleteEvent deletes an event by id.
func (c *Client) DeleteEvent(id string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+"/api/events/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

// CheckConflict asks the server whether the payload's slot overlaps an
// existing event. in.EventID excludes an event from the comparison.
func (c *Client) CheckConflict(in validate.Input) (bool, error) {
	var result struct {
		HasConflict bool `json:"has_conflict"`
	}
	if err := c.sendJSON(http.MethodPost, "/api/events/conflicts", in, &result); err != nil {
		return false, err
	}
	return result.HasConflict, nil
}

// Stats returns the server's aggregate event counts.
func (c *Client) Stats() (model.Stats, error) {
	var stats model.Stats
	if err := c.getJSON("/api/stats", &stats); err != nil {
		return model.Stats{}, err
	}
	return stats, nil
}
