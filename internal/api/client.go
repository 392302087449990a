// Package api is the HTTP client for the holdings service. It implements the
// page-fetch capability used by holders.Loader and the status capability used
// by status.Poller.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/holdtrack/internal/holders"
	"github.com/rshade/holdtrack/internal/status"
)

const (
	holdersPath = "/holders"
	statusPath  = "/status"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 10 * time.Second

	// maxErrorBody is how much of a failed response body is quoted in errors.
	maxErrorBody = 256

	opFetchHolders = "fetch holders"
	opFetchStatus  = "fetch status"
)

// Client errors, always wrapped in a *holders.TransportError.
var (
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	ErrDecode           = errors.New("decoding response")
	ErrInvalidLimit     = errors.New("limit must be positive")
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the client's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client talks to the holdings service.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  zerolog.Logger
}

// New creates a Client for baseURL, e.g. "http://localhost:8000".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must include scheme and host", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchPage requests one page of holders. An empty cursor requests the first page.
func (c *Client) FetchPage(ctx context.Context, cursor string, limit int) (holders.Page, error) {
	if limit < 1 {
		return holders.Page{}, &holders.TransportError{Op: opFetchHolders, Cursor: cursor, Err: ErrInvalidLimit}
	}

	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	q.Set("limit", strconv.Itoa(limit))

	var page holders.Page
	if err := c.getJSON(ctx, holdersPath, q, &page); err != nil {
		return holders.Page{}, &holders.TransportError{Op: opFetchHolders, Cursor: cursor, Err: err}
	}
	return page, nil
}

// FetchStatus requests the server's sync status.
func (c *Client) FetchStatus(ctx context.Context) (status.Snapshot, error) {
	var snap status.Snapshot
	if err := c.getJSON(ctx, statusPath, nil, &snap); err != nil {
		return status.Snapshot{}, &holders.TransportError{Op: opFetchStatus, Err: err}
	}
	snap.FetchedAt = time.Now()
	return snap, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("url", u.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
