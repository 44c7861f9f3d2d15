package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/icewatch/icewatch/internal/cache"
	"github.com/icewatch/icewatch/internal/model"
	"github.com/icewatch/icewatch/internal/util"
)

// Fetcher is the HTTP client all adapters share: one User-Agent, a
// redirect cap, a body size cap, and an optional read-through cache for
// immutable resources (archived pages).
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	cache     cache.Cache
}

// NewFetcher builds a fetcher from the HTTP configuration. c may be nil to
// disable caching entirely.
func NewFetcher(cfg model.HTTPConfig, c cache.Cache) *Fetcher {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	maxBytes := cfg.MaxBodyBytes
	if maxBytes == 0 {
		maxBytes = 2_000_000
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  maxBytes,
		cache:     c,
	}
}

// Get fetches rawURL and returns the response body, capped at the
// configured size. Non-2xx statuses are errors.
func (f *Fetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// GetCached reads through the cache when one is configured. Only callers
// fetching immutable resources should use it.
func (f *Fetcher) GetCached(ctx context.Context, rawURL string) ([]byte, error) {
	if f.cache == nil {
		return f.Get(ctx, rawURL)
	}

	key := cache.Key(rawURL)
	if body, ok := f.cache.Get(key); ok {
		return body, nil
	}

	body, err := f.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	_ = f.cache.Set(key, body, 0)
	return body, nil
}
