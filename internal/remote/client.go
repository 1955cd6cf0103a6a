package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/brevity/internal/nav"
)

// Client talks to a running presentation's remote control API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultAddr is where the remote control listens when enabled without
	// an explicit address.
	DefaultAddr      = "127.0.0.1:7711"
	defaultUserAgent = "brevity-ctl/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the host:port (or URL) in addr.
func NewClient(addr string) (*Client, error) {
	base, err := parseBaseURL(addr)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Location fetches the current location.
func (c *Client) Location(ctx context.Context) (LocationResponse, error) {
	var payload LocationResponse
	if err := c.do(ctx, http.MethodGet, "/api/location", &payload); err != nil {
		return LocationResponse{}, err
	}
	return payload, nil
}

// Navigate moves one step in dir.
func (c *Client) Navigate(ctx context.Context, dir nav.Direction) (NavigateResponse, error) {
	return c.post(ctx, "/api/navigate/"+url.PathEscape(dir.String()))
}

// Next steps forward.
func (c *Client) Next(ctx context.Context) (NavigateResponse, error) {
	return c.post(ctx, "/api/next")
}

// Prev steps backward.
func (c *Client) Prev(ctx context.Context) (NavigateResponse, error) {
	return c.post(ctx, "/api/prev")
}

// First jumps to the first slide.
func (c *Client) First(ctx context.Context) (NavigateResponse, error) {
	return c.post(ctx, "/api/first")
}

// Last jumps to the last slide.
func (c *Client) Last(ctx context.Context) (NavigateResponse, error) {
	return c.post(ctx, "/api/last")
}

// Goto jumps to the 1-based deck and slide.
func (c *Client) Goto(ctx context.Context, deck, slide int) (NavigateResponse, error) {
	return c.post(ctx, fmt.Sprintf("/api/goto/%d/%d", deck, slide))
}

func (c *Client) post(ctx context.Context, path string) (NavigateResponse, error) {
	var payload NavigateResponse
	if err := c.do(ctx, http.MethodPost, path, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// do sends the request and decodes the JSON body into dest. Navigation
// outcomes that map to an error status are still decoded, so callers see
// the outcome alongside the error.
func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api %s returned status %d: %s", rel.String(), resp.StatusCode, apiErr.Error)
		}
		if dest != nil {
			_ = json.Unmarshal(body, dest)
		}
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(addr string) (*url.URL, error) {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		trimmed = DefaultAddr
	}
	if strings.HasPrefix(trimmed, ":") {
		trimmed = "127.0.0.1" + trimmed
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse remote address %q: %w", addr, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
