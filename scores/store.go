// Package scores is the game's leaderboard client: a remote store reached
// over HTTP, a local cache mirror and a non-blocking Board that ties the two
// together for the simulation goroutine.
package scores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/automoto/downhill/shared/leaderboard"
)

// ErrNotConfigured is returned by HTTPStore when no URL is set.
var ErrNotConfigured = errors.New("leaderboard URL not configured")

const maxResponseBody = 1 << 20

// Store is the remote leaderboard.
type Store interface {
	// Fetch returns the ordered leaderboard.
	Fetch(ctx context.Context) ([]leaderboard.Entry, error)
	// Submit adds an entry and returns the updated leaderboard and the
	// entry's rank, 0 when the server does not report one.
	Submit(ctx context.Context, e leaderboard.Entry) ([]leaderboard.Entry, int, error)
}

// HTTPStore talks to the leaderboard master server. The same URL serves
// GET (list) and POST (submit).
type HTTPStore struct {
	url    string
	client *http.Client
}

// NewHTTPStore creates a store for url with the given request timeout.
func NewHTTPStore(url string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch implements Store.
func (s *HTTPStore) Fetch(ctx context.Context) ([]leaderboard.Entry, error) {
	if s.url == "" {
		return nil, ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	body, err := s.do(req)
	if err != nil {
		return nil, err
	}
	return leaderboard.Decode(body)
}

// Submit implements Store.
func (s *HTTPStore) Submit(ctx context.Context, e leaderboard.Entry) ([]leaderboard.Entry, int, error) {
	if s.url == "" {
		return nil, 0, ErrNotConfigured
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, 0, fmt.Errorf("encode entry: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := s.do(req)
	if err != nil {
		return nil, 0, err
	}
	var resp leaderboard.SubmitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, 0, fmt.Errorf("decode submit response: %w", err)
	}
	if len(resp.Entries) == 0 {
		return nil, 0, fmt.Errorf("submit response has no entries")
	}
	entries, err := leaderboard.Decode(resp.Entries)
	if err != nil {
		return nil, 0, err
	}
	return entries, resp.Rank, nil
}

func (s *HTTPStore) do(req *http.Request) ([]byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: status %d", req.Method, req.URL, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
