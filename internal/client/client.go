// Package client implements the HTTP/JSON client for the hearth
// daemon. Reads go through list endpoints returning {"items": [...]};
// mutations go through per-record action endpoints returning
// {"message": "..."} or a non-2xx status with {"error": "..."}.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hearthware/hearth/internal/models"
)

// ErrUnreachable is returned for any transport-level failure: refused
// connection, timeout, or a response too mangled to parse. Its text is
// the exact message panels surface.
var ErrUnreachable = errors.New("Unable to reach daemon")

// unreachableError keeps the underlying cause for debugging while
// presenting the fixed user-facing message.
type unreachableError struct{ cause error }

func (e *unreachableError) Error() string        { return ErrUnreachable.Error() }
func (e *unreachableError) Unwrap() error        { return e.cause }
func (e *unreachableError) Is(target error) bool { return target == ErrUnreachable }

// RequestError is a daemon-rejected request: the daemon answered, but
// with a non-2xx status. Message carries the daemon's error string
// verbatim when one was supplied.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return fmt.Sprintf("daemon returned http %d", e.StatusCode)
}

const defaultTimeout = 10 * time.Second

// Client talks to one hearth daemon. The base URL can be retargeted at
// runtime when the daemon restarts on a different port; everything
// else is immutable.
type Client struct {
	mu      sync.RWMutex
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL (e.g. "http://127.0.0.1:7420").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// FromInfo builds a client from a daemon discovery record.
func FromInfo(info *models.DaemonInfo) *Client {
	return New(fmt.Sprintf("http://%s:%d", info.Host, info.Port))
}

// Retarget repoints the client at a new base URL. Used when the
// daemon.yaml watcher observes a daemon restart.
func (c *Client) Retarget(baseURL string) {
	c.mu.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

// BaseURL returns the current daemon base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// do performs one request and returns the response body for 2xx
// statuses. Transport failures map to ErrUnreachable; daemon
// rejections map to *RequestError.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &unreachableError{cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &unreachableError{cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &failure)
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: failure.Error}
	}

	return data, nil
}

// list fetches and decodes a {"items": [...]} endpoint.
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &unreachableError{cause: err}
	}
	return envelope.Items, nil
}

// action performs a mutating call and returns the daemon's success
// message.
func (c *Client) action(ctx context.Context, method, path string, payload any) (string, error) {
	data, err := c.do(ctx, method, path, payload)
	if err != nil {
		return "", err
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message, nil
	}
	return "Done", nil
}
