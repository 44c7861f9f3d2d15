package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/icewatch/icewatch/internal/model"
)

// ErrMissingAPIKey marks the keyword-search adapter's configuration
// failure: the run proceeds without it, recording a per-source error.
var ErrMissingAPIKey = fmt.Errorf("newsapi: API key not configured")

// NewsAPI is the keyword-search adapter. It runs two passes: the primary
// queries against a national outlet whitelist, then the local queries
// against all English-language sources to catch regional affiliates.
type NewsAPI struct {
	cfg     model.NewsAPIConfig
	fetcher *Fetcher
}

// NewNewsAPI builds the adapter; the API key is validated at Fetch time so
// construction never fails.
func NewNewsAPI(cfg model.NewsAPIConfig, fetcher *Fetcher) *NewsAPI {
	return &NewsAPI{cfg: cfg, fetcher: fetcher}
}

func (a *NewsAPI) Name() string { return "newsapi" }

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Fetch issues one search per configured query. A failed or rate-limited
// query logs the condition and contributes nothing; only a missing key
// fails the whole adapter.
func (a *NewsAPI) Fetch(ctx context.Context) ([]model.RawDocument, error) {
	if a.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var docs []model.RawDocument
	seen := make(map[string]struct{})

	for _, query := range a.cfg.Queries {
		a.search(ctx, query, true, seen, &docs)
	}
	for _, query := range a.cfg.LocalQueries {
		a.search(ctx, query, false, seen, &docs)
	}

	return docs, nil
}

func (a *NewsAPI) search(ctx context.Context, query string, useOutlets bool, seen map[string]struct{}, docs *[]model.RawDocument) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("from", a.cfg.From)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", a.cfg.PageSize))
	params.Set("apiKey", a.cfg.APIKey)
	if useOutlets && len(a.cfg.Outlets) > 0 {
		params.Set("sources", strings.Join(a.cfg.Outlets, ","))
	} else {
		params.Set("language", "en")
	}

	body, err := a.fetcher.Get(ctx, a.cfg.BaseURL+"/everything?"+params.Encode())
	if err != nil {
		log.Printf("newsapi: query %q failed: %v", query, err)
		return
	}

	var resp newsAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Printf("newsapi: query %q returned unparseable body: %v", query, err)
		return
	}

	for _, article := range resp.Articles {
		if article.URL == "" || article.Title == "" {
			continue
		}
		if _, dup := seen[article.URL]; dup {
			continue
		}
		seen[article.URL] = struct{}{}

		published, err := time.Parse(time.RFC3339, article.PublishedAt)
		if err != nil {
			published = time.Time{}
		}

		*docs = append(*docs, model.RawDocument{
			Title:       article.Title,
			Description: article.Description,
			Body:        article.Content,
			URL:         article.URL,
			PublishedAt: published,
			SourceName:  article.Source.Name,
		})
	}
}
