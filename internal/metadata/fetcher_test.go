package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/linkstash/linkstash/internal/logger"
)

func TestFetcherFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head>
			<title>Server Page</title>
			<meta name="description" content="From the server.">
		</head></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(2*time.Second, logger.Nop())
	m := f.Fetch(context.Background(), srv.URL)

	if m.Title != "Server Page" {
		t.Errorf("Title = %q, want Server Page", m.Title)
	}
	if m.Description != "From the server." {
		t.Errorf("Description = %q, want From the server.", m.Description)
	}
}

func TestFetcherNeverErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			f := NewFetcher(2*time.Second, logger.Nop())
			m := f.Fetch(context.Background(), srv.URL)
			if !m.Empty() {
				t.Errorf("Fetch() = %+v, want empty", m)
			}
		})
	}
}

func TestFetcherUnreachableHost(t *testing.T) {
	f := NewFetcher(500*time.Millisecond, logger.Nop())
	m := f.Fetch(context.Background(), "http://127.0.0.1:1")
	if !m.Empty() {
		t.Errorf("Fetch() = %+v, want empty", m)
	}
}

func TestFetcherMemoizesPerURL(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`<html><head><title>Once</title></head></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(2*time.Second, logger.Nop())
	first := f.Fetch(context.Background(), srv.URL)
	second := f.Fetch(context.Background(), srv.URL)

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("server hit %v times, want 1", got)
	}
	if first.Title != second.Title {
		t.Errorf("memoized result differs: %q vs %q", first.Title, second.Title)
	}
}
