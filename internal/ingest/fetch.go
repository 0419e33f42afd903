package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// maxFetchBytes bounds a remote sheet. Site directories are tens to hundreds
// of rows.
const maxFetchBytes = 32 << 20

// Fetcher downloads remote sheets, bypassing intermediate caches.
type Fetcher struct {
	Client *http.Client
	Now    func() time.Time
}

// NewFetcher returns a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{Client: &http.Client{Timeout: timeout}, Now: time.Now}
}

// Fetch GETs rawURL with a ts=<unix millis> query parameter appended so each
// request is distinct to any cache on the way.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	q := u.Query()
	q.Set("ts", strconv.FormatInt(now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body from %s: %w", rawURL, err)
	}
	if len(body) > maxFetchBytes {
		return nil, fmt.Errorf("fetch %s: body exceeds %d bytes", rawURL, maxFetchBytes)
	}
	return body, nil
}
