package source

import (
	"context"
	"encoding/xml"
	"log"
	"net/url"
	"time"

	"github.com/icewatch/icewatch/internal/model"
	"github.com/icewatch/icewatch/internal/worker"
)

// GoogleNews is the syndication-feed adapter: one RSS search per query,
// a bounded list of entries each. Malformed entries are skipped, and a
// rate limiter spaces out the queries.
type GoogleNews struct {
	cfg     model.GoogleNewsConfig
	fetcher *Fetcher
	limiter *worker.Limiter
}

// NewGoogleNews builds the adapter. The query spacing comes from
// cfg.QueryDelay; zero disables it (tests).
func NewGoogleNews(cfg model.GoogleNewsConfig, fetcher *Fetcher) *GoogleNews {
	return &GoogleNews{
		cfg:     cfg,
		fetcher: fetcher,
		limiter: worker.NewSpacing(cfg.QueryDelay),
	}
}

func (a *GoogleNews) Name() string { return "googlenews" }

// rssFeed matches the subset of the feed the pipeline uses. String fields
// absorb both literal text and CDATA blocks.
type rssFeed struct {
	XMLName xml.Name  `xml:"rss"`
	Items   []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
	Source      string `xml:"source"`
}

// pubDateLayouts are tried in order; feeds are inconsistent about zone
// naming.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

func (a *GoogleNews) Fetch(ctx context.Context) ([]model.RawDocument, error) {
	var docs []model.RawDocument
	seen := make(map[string]struct{})

	for _, query := range a.cfg.Queries {
		if err := a.limiter.Wait(ctx, a.cfg.BaseURL); err != nil {
			return docs, err // context ended; keep what we have
		}

		params := url.Values{}
		params.Set("q", query)
		params.Set("hl", "en-US")
		params.Set("gl", "US")
		params.Set("ceid", "US:en")

		body, err := a.fetcher.Get(ctx, a.cfg.BaseURL+"?"+params.Encode())
		if err != nil {
			log.Printf("googlenews: query %q failed: %v", query, err)
			continue
		}

		var feed rssFeed
		if err := xml.Unmarshal(body, &feed); err != nil {
			log.Printf("googlenews: query %q returned unparseable feed: %v", query, err)
			continue
		}

		for _, item := range feed.Items {
			if item.Title == "" || item.Link == "" {
				continue // malformed entry, not an error
			}
			if _, dup := seen[item.Link]; dup {
				continue
			}
			seen[item.Link] = struct{}{}

			docs = append(docs, model.RawDocument{
				Title:       item.Title,
				Description: item.Description,
				URL:         item.Link,
				PublishedAt: parsePubDate(item.PubDate),
				SourceName:  sourceOrUnknown(item.Source),
			})
		}
	}

	return docs, nil
}

func parsePubDate(raw string) time.Time {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func sourceOrUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
