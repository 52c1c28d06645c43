package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	userAgent = "prodify/0.1"

	// Retry configuration
	maxRetries   = 3
	initialDelay = 500 * time.Millisecond
	maxDelay     = 8 * time.Second
)

// ErrNotFound is returned when the catalog has no track with the requested id.
var ErrNotFound = errors.New("track not found")

// Source supplies tracks to the storefront.
type Source interface {
	Search(ctx context.Context, f Filter) ([]Track, error)
	Track(ctx context.Context, id uuid.UUID) (*Track, error)
}

// Verify Client implements Source at compile time.
var _ Source = (*Client)(nil)

// Client talks to the remote catalog API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retryDelay time.Duration
}

// NewClient creates a catalog API client.
// token is sent as a bearer token when non-empty; storing it is the caller's concern.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: initialDelay,
	}
}

// Tracks lists the whole catalog.
func (c *Client) Tracks(ctx context.Context) ([]Track, error) {
	var tracks []Track
	if err := c.getJSON(ctx, "/tracks", &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// Search returns the tracks matching f. A zero filter lists the whole catalog.
func (c *Client) Search(ctx context.Context, f Filter) ([]Track, error) {
	if f.IsZero() {
		return c.Tracks(ctx)
	}

	body, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode criteria: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/tracks/search", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var tracks []Track
	if err := decodeResponse(resp, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

// Track fetches a single track by id.
func (c *Client) Track(ctx context.Context, id uuid.UUID) (*Track, error) {
	var t Track
	if err := c.getJSON(ctx, "/tracks/"+id.String(), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ProducerTracks lists the tracks of the producer with the given slug.
func (c *Client) ProducerTracks(ctx context.Context, slug string) ([]Track, error) {
	var tracks []Track
	if err := c.getJSON(ctx, "/tracks/producer-slug/"+url.PathEscape(slug), &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, v)
}

func decodeResponse(resp *http.Response, v any) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// do executes a request with exponential backoff.
// Retries on 5xx responses and network errors; the request is rebuilt for every attempt.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var lastErr error
	delay := c.retryDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay = min(delay*2, maxDelay)
		}

		req, err := c.newRequest(ctx, method, path, body)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		// Success or client error (4xx) - don't retry
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries+1, lastErr)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var r io.Reader = http.NoBody
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}
