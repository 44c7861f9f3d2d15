package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/icewatch/icewatch/internal/model"
	"github.com/icewatch/icewatch/internal/util"
	"github.com/icewatch/icewatch/internal/worker"
)

// Wayback is the web-archive adapter. For each target site crossed with
// each URL-shape pattern it queries the historical CDX index over the
// configured time range, then fetches each archived page to pull title and
// description out of the HTML metadata. Page fetches go through the worker
// pool with the rate limiter enforcing minimum spacing: the archive is a
// shared service and the spacing is deliberate backpressure.
type Wayback struct {
	cfg     model.WaybackConfig
	fetcher *Fetcher
	limiter *worker.Limiter
	robots  *util.RobotsChecker
	workers int
}

// NewWayback builds the adapter. robots may be nil to skip robots.txt
// checks (cfg.RespectRobots decides at the call site).
func NewWayback(cfg model.WaybackConfig, fetcher *Fetcher, robots *util.RobotsChecker, workers int) *Wayback {
	return &Wayback{
		cfg:     cfg,
		fetcher: fetcher,
		limiter: worker.NewSpacing(cfg.FetchDelay),
		robots:  robots,
		workers: workers,
	}
}

func (a *Wayback) Name() string { return "wayback" }

// snapshotRe pulls the capture date and the original URL out of an archive
// wrapper URL (".../web/YYYYMMDDhhmmss/original").
var snapshotRe = regexp.MustCompile(`/web/(\d{4})(\d{2})(\d{2})\d*/(.+)$`)

func (a *Wayback) Fetch(ctx context.Context) ([]model.RawDocument, error) {
	to := a.cfg.To
	if to == "" {
		to = time.Now().Format("20060102")
	}

	var wrappers []string
	for _, site := range a.cfg.Sites {
		wrappers = append(wrappers, a.queryIndex(ctx, site, to)...)
	}
	if len(wrappers) == 0 {
		return nil, nil
	}

	pool := worker.NewPool(a.workers)
	pool.Start(ctx)
	for _, wrapper := range wrappers {
		pool.Submit(ctx, &snapshotJob{adapter: a, wrapperURL: wrapper})
	}

	var docs []model.RawDocument
	seen := make(map[string]struct{})
	for _, result := range pool.Wait() {
		r := result.(*snapshotResult)
		if r.err != nil {
			log.Printf("wayback: %s: %v", r.wrapperURL, r.err)
			continue
		}
		if r.doc == nil {
			continue // skipped: robots-denied or missing metadata
		}
		if _, dup := seen[r.doc.URL]; dup {
			continue
		}
		seen[r.doc.URL] = struct{}{}
		docs = append(docs, *r.doc)
	}

	return docs, nil
}

// queryIndex collects wrapper URLs for one site across all patterns,
// capped at the per-site limit. Individual index queries fail soft.
func (a *Wayback) queryIndex(ctx context.Context, site, to string) []string {
	var wrappers []string
	seen := make(map[string]struct{})

	for _, pattern := range a.cfg.Patterns {
		if len(wrappers) >= a.cfg.PerSiteLimit {
			break
		}

		params := url.Values{}
		params.Set("url", fmt.Sprintf(pattern, site))
		params.Set("from", a.cfg.From)
		params.Set("to", to)
		params.Set("output", "json")
		params.Set("limit", "20")
		params.Add("filter", "statuscode:200")
		params.Add("filter", "mimetype:text/html")
		params.Set("collapse", "urlkey")

		body, err := a.fetcher.Get(ctx, a.cfg.CDXBaseURL+"?"+params.Encode())
		if err != nil {
			log.Printf("wayback: index query for %q failed: %v", site, err)
			continue
		}

		// The CDX JSON format is an array of arrays with a header row.
		var rows [][]string
		if err := json.Unmarshal(body, &rows); err != nil {
			log.Printf("wayback: index response for %q unparseable: %v", site, err)
			continue
		}
		if len(rows) <= 1 {
			continue
		}

		for _, row := range rows[1:] {
			if len(row) < 3 {
				continue
			}
			wrapper := fmt.Sprintf("%s/%s/%s", a.cfg.WebBaseURL, row[1], row[2])
			if _, dup := seen[wrapper]; dup {
				continue
			}
			seen[wrapper] = struct{}{}
			wrappers = append(wrappers, wrapper)
			if len(wrappers) >= a.cfg.PerSiteLimit {
				break
			}
		}
	}

	return wrappers
}

type snapshotJob struct {
	adapter    *Wayback
	wrapperURL string
}

type snapshotResult struct {
	wrapperURL string
	doc        *model.RawDocument
	err        error
}

func (r *snapshotResult) Err() error { return r.err }

func (j *snapshotJob) Execute(ctx context.Context) worker.Result {
	a := j.adapter
	res := &snapshotResult{wrapperURL: j.wrapperURL}

	if a.robots != nil && !a.robots.Allowed(ctx, j.wrapperURL) {
		return res
	}
	if err := a.limiter.Wait(ctx, j.wrapperURL); err != nil {
		res.err = err
		return res
	}

	body, err := a.fetcher.GetCached(ctx, j.wrapperURL)
	if err != nil {
		res.err = err
		return res
	}

	doc, ok := a.parseSnapshot(j.wrapperURL, body)
	if ok {
		res.doc = &doc
	}
	return res
}

// parseSnapshot reconstructs a RawDocument from an archived page: title and
// meta description from the HTML, original URL and publish date from the
// wrapper URL's embedded timestamp. Pages without usable metadata are
// skipped, not errors.
func (a *Wayback) parseSnapshot(wrapperURL string, body []byte) (model.RawDocument, bool) {
	m := snapshotRe.FindStringSubmatch(wrapperURL)
	if m == nil {
		return model.RawDocument{}, false
	}

	title, description := extractMeta(body)
	if title == "" && description == "" {
		return model.RawDocument{}, false
	}

	published, err := time.Parse("20060102", m[1]+m[2]+m[3])
	if err != nil {
		published = time.Time{}
	}

	originalURL := m[4]
	if !strings.HasPrefix(originalURL, "http") {
		originalURL = "https://" + originalURL
	}

	sourceName := "Archive"
	if parsed, err := url.Parse(originalURL); err == nil && parsed.Host != "" {
		sourceName = strings.TrimPrefix(parsed.Host, "www.")
	}

	return model.RawDocument{
		Title:       title,
		Description: description,
		URL:         originalURL,
		PublishedAt: published,
		SourceName:  sourceName,
	}, true
}

// extractMeta walks the document for the <title> text and the
// description meta tag.
func extractMeta(body []byte) (title, description string) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", ""
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var name, content string
				for _, attr := range n.Attr {
					switch strings.ToLower(attr.Key) {
					case "name":
						name = strings.ToLower(attr.Val)
					case "content":
						content = attr.Val
					}
				}
				if name == "description" && description == "" {
					description = strings.TrimSpace(content)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title, description
}
