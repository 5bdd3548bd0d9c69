// Package client is the Go client for the showdown HTTP API, used by the
// terminal UI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lumyn/showdown/internal/pkg/web"
	"github.com/lumyn/showdown/internal/room"
)

const defaultTimeout = 10 * time.Second

// APIError carries the server's error payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	ticket     string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Join takes a seat and keeps the returned ticket for later calls.
func (c *Client) Join(ctx context.Context, roomName, passcode string) (room.JoinResponse, error) {
	payload := room.JoinRequest{Room: roomName, Passcode: passcode}

	var joined room.JoinResponse
	if err := c.do(ctx, http.MethodPost, "/rooms/join", payload, &joined); err != nil {
		return room.JoinResponse{}, err
	}

	c.ticket = joined.Ticket
	return joined, nil
}

// State polls the current room state.
func (c *Client) State(ctx context.Context) (room.State, error) {
	var state room.State
	if err := c.do(ctx, http.MethodGet, "/room/state", nil, &state); err != nil {
		return room.State{}, err
	}
	return state, nil
}

// Move submits a throw for the current round.
func (c *Client) Move(ctx context.Context, move string) (room.State, error) {
	payload := room.MoveRequest{Move: move}

	var state room.State
	if err := c.do(ctx, http.MethodPost, "/room/move", payload, &state); err != nil {
		return room.State{}, err
	}
	return state, nil
}

// Rematch starts the next round.
func (c *Client) Rematch(ctx context.Context) (room.State, error) {
	var state room.State
	if err := c.do(ctx, http.MethodPost, "/room/rematch", nil, &state); err != nil {
		return room.State{}, err
	}
	return state, nil
}

// Leave vacates the seat.
func (c *Client) Leave(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/room/leave", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	req.Header.Set(web.HeaderContentType, web.MimeJSON)
	if c.ticket != "" {
		req.Header.Set(web.HeaderAuthorization, "Bearer "+c.ticket)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var errRes web.ErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&errRes); err != nil {
			errRes.Message = http.StatusText(res.StatusCode)
		}
		return &APIError{StatusCode: res.StatusCode, Message: errRes.Message}
	}

	if out == nil {
		return nil
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}
