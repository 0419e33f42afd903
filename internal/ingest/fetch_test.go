package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAddsCacheBuster(t *testing.T) {
	var gotTS, gotCache, gotOther string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTS = r.URL.Query().Get("ts")
		gotOther = r.URL.Query().Get("sheet")
		gotCache = r.Header.Get("Cache-Control")
		_, _ = w.Write([]byte("nickname\nA\n"))
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client(), Now: func() time.Time { return time.UnixMilli(1700000000123) }}
	body, err := f.Fetch(context.Background(), srv.URL+"/sites.csv?sheet=main")
	require.NoError(t, err)

	assert.Equal(t, "nickname\nA\n", string(body))
	assert.Equal(t, "1700000000123", gotTS)
	assert.Equal(t, "main", gotOther)
	assert.Equal(t, "no-cache", gotCache)
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetcher(time.Second).Fetch(context.Background(), srv.URL+"/sites.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "/sites.csv")
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFetcher(time.Second).Fetch(ctx, srv.URL)
	assert.Error(t, err)
}

func TestFetchBadURL(t *testing.T) {
	_, err := NewFetcher(time.Second).Fetch(context.Background(), "://nope")
	assert.Error(t, err)
}
