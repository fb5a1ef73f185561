// Package api talks to the remote events service. It is a thin JSON/HTTP
// client; callers decide what to do with transport failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"evento/pkg/event"
	"evento/pkg/utils"
)

// Client is an HTTP client for the events API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the API rooted at baseURL, e.g.
// "https://api.example.com". A zero timeout falls back to 15 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// List fetches the full event collection
func (c *Client) List(ctx context.Context) ([]event.Event, error) {
	var events []event.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events); err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	utils.Log("loaded %d events from API", len(events))
	return events, nil
}

// Create submits a new event and returns the server's version of it, with
// the assigned id and any normalized fields.
func (c *Client) Create(ctx context.Context, e event.Event) (event.Event, error) {
	var created event.Event
	if err := c.do(ctx, http.MethodPost, "/events/", e, &created); err != nil {
		return event.Event{}, fmt.Errorf("creating event: %w", err)
	}
	return created, nil
}

// Update replaces the stored event with the given one, keyed by its id
func (c *Client) Update(ctx context.Context, e event.Event) (event.Event, error) {
	var updated event.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+e.ID, e, &updated); err != nil {
		return event.Event{}, fmt.Errorf("updating event %s: %w", e.ID, err)
	}
	return updated, nil
}

// Delete removes the event with the given id
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/events/"+id, nil, nil); err != nil {
		return fmt.Errorf("deleting event %s: %w", id, err)
	}
	return nil
}

// Reviews fetches all reviews for the event with the given id
func (c *Client) Reviews(ctx context.Context, eventID string) ([]event.Review, error) {
	var reviews []event.Review
	if err := c.do(ctx, http.MethodGet, "/reviews/"+eventID+"/get", nil, &reviews); err != nil {
		return nil, fmt.Errorf("listing reviews for event %s: %w", eventID, err)
	}
	return reviews, nil
}

// do performs one round-trip. body is marshaled as JSON when non-nil and the
// response is unmarshaled into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %s", method, path, resp.Status)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
