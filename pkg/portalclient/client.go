package portalclient

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
)

const defaultTimeout = 10 * time.Second

// Client calls the portal HTTP API on behalf of one bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

type toggleResponse struct {
	Status string `json:"status"`
}

func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	var resp listResponse[Announcement]
	if err := c.do(ctx, http.MethodGet, "/api/announcements", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var resp listResponse[Event]
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) ListClubs(ctx context.Context) ([]Club, error) {
	var resp listResponse[Club]
	if err := c.do(ctx, http.MethodGet, "/api/clubs", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) ListPlacements(ctx context.Context) ([]Placement, error) {
	var resp listResponse[Placement]
	if err := c.do(ctx, http.MethodGet, "/api/placements", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	var resp listResponse[Todo]
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) ListNotifications(ctx context.Context) (*NotificationPage, error) {
	var resp NotificationPage
	if err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	var resp listResponse[Room]
	if err := c.do(ctx, http.MethodGet, "/api/rooms", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// SetRoomStatus pins a room to available or occupied, or returns it to its
// timetable with auto. Admin only.
func (c *Client) SetRoomStatus(ctx context.Context, roomID, status string) (*Room, error) {
	var resp Room
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, "/api/rooms/"+url.PathEscape(roomID)+"/status", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ToggleRSVP flips the caller's RSVP and returns joined or left.
func (c *Client) ToggleRSVP(ctx context.Context, eventID string) (string, error) {
	return c.toggle(ctx, "/api/events/"+url.PathEscape(eventID)+"/rsvp")
}

func (c *Client) ToggleMembership(ctx context.Context, clubID string) (string, error) {
	return c.toggle(ctx, "/api/clubs/"+url.PathEscape(clubID)+"/membership")
}

// ToggleApplication returns added or removed.
func (c *Client) ToggleApplication(ctx context.Context, placementID string) (string, error) {
	return c.toggle(ctx, "/api/placements/"+url.PathEscape(placementID)+"/application")
}

func (c *Client) SetTodoDone(ctx context.Context, todoID string, done bool) (bool, error) {
	var resp struct {
		ID   string `json:"id"`
		Done bool   `json:"done"`
	}
	body := map[string]bool{"done": done}
	if err := c.do(ctx, http.MethodPatch, "/api/todos/"+url.PathEscape(todoID), body, &resp); err != nil {
		return false, err
	}
	return resp.Done, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.do(ctx, http.MethodPost, "/api/notifications/"+url.PathEscape(notificationID)+"/read", nil, nil)
}

func (c *Client) toggle(ctx context.Context, path string) (string, error) {
	var resp toggleResponse
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dst interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if dst == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{Status: resp.StatusCode}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}
	if apiErr.Code == "" {
		apiErr.Code = strings.ReplaceAll(strings.ToLower(http.StatusText(resp.StatusCode)), " ", "_")
	}
	return apiErr
}
