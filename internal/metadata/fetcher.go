package metadata

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/linkstash/linkstash/internal/logger"
	"github.com/linkstash/linkstash/internal/utils"
)

// maxBodyBytes caps how much of a page we download for extraction.
const maxBodyBytes = 2 << 20 // 2 MiB

const userAgent = "Mozilla/5.0 (compatible; linkstash/1.0)"

// Fetcher downloads pages and extracts title/description/keyword hints.
//
// Fetch never returns an error: any failure (timeout, bad status,
// unparsable markup) degrades to an empty Metadata so the calling
// pipeline can continue. Results are memoized per URL for the lifetime
// of the Fetcher to avoid repeat fetches within a session.
type Fetcher struct {
	client *http.Client
	log    logger.Logger

	mu   sync.Mutex
	memo map[string]Metadata
}

// NewFetcher creates a Fetcher whose network attempts are bounded by
// timeout so a slow page cannot hang a batch import.
func NewFetcher(timeout time.Duration, log logger.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
		memo:   make(map[string]Metadata),
	}
}

// Fetch returns the best-effort metadata for url.
//
// Strategy chain, first success wins:
//  1. content extraction (og tags, article text, meta keywords)
//  2. generic <title> + <meta name="description"> parse
//  3. empty result
func (f *Fetcher) Fetch(ctx context.Context, url string) Metadata {
	f.mu.Lock()
	if m, ok := f.memo[url]; ok {
		f.mu.Unlock()
		return m
	}
	f.mu.Unlock()

	m := f.fetch(ctx, url)

	f.mu.Lock()
	f.memo[url] = m
	f.mu.Unlock()
	return m
}

func (f *Fetcher) fetch(ctx context.Context, url string) Metadata {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		f.log.Debug("metadata fetch skipped, bad url",
			logger.String("url", url),
			logger.Error(err))
		return Metadata{}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn("metadata fetch failed",
			logger.String("url", url),
			logger.Error(err))
		return Metadata{}
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.log.Warn("metadata fetch got non-success status",
			logger.String("url", url),
			logger.Int("status", resp.StatusCode))
		return Metadata{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		f.log.Warn("metadata fetch failed reading body",
			logger.String("url", url),
			logger.Error(err))
		return Metadata{}
	}

	return Extract(body)
}
