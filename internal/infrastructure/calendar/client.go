package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	publicationapp "github.com/agency/backend/internal/application/publication"
	"github.com/agency/backend/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed response size from the calendar API (1MB)
const maxResponseSize = 1 << 20

// Client talks to the remote calendar provider over its REST API. It
// implements publicationapp.CalendarClient.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a calendar client from configuration
func NewClient(cfg *config.CalendarConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// eventPayload is the wire representation of a calendar event
type eventPayload struct {
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Start       struct {
		DateTime string `json:"dateTime"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
	} `json:"end"`
}

// eventResponse is what the provider returns on create
type eventResponse struct {
	ID string `json:"id"`
}

func toPayload(ev publicationapp.CalendarEvent) eventPayload {
	var p eventPayload
	p.Summary = ev.Title
	p.Description = ev.Description
	p.Start.DateTime = ev.Start.Format(time.RFC3339)
	p.End.DateTime = ev.End.Format(time.RFC3339)
	return p
}

// CreateEvent creates a remote event and returns its ID
func (c *Client) CreateEvent(ctx context.Context, ev publicationapp.CalendarEvent) (string, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(ev.CalendarID))

	body, err := c.do(ctx, http.MethodPost, endpoint, toPayload(ev))
	if err != nil {
		return "", err
	}

	var resp eventResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("calendar: decoding create response: %w", err)
	}
	if resp.ID == "" {
		return "", fmt.Errorf("calendar: provider returned no event id")
	}
	return resp.ID, nil
}

// UpdateEvent updates an existing remote event
func (c *Client) UpdateEvent(ctx context.Context, ev publicationapp.CalendarEvent) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(ev.CalendarID), url.PathEscape(ev.EventID))

	_, err := c.do(ctx, http.MethodPut, endpoint, toPayload(ev))
	return err
}

// DeleteEvent removes a remote event. A 404 or 410 from the provider means
// the event is already gone, which is the desired end state.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(calendarID), url.PathEscape(eventID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calendar: delete request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil
	default:
		return fmt.Errorf("calendar: delete returned status %d", resp.StatusCode)
	}
}

// do sends a JSON request and returns the response body on a 2xx status
func (c *Client) do(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("calendar: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("calendar: %s %s returned status %d", method, endpoint, resp.StatusCode)
	}
	return body, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
