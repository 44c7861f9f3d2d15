package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/icewatch/icewatch/internal/model"
)

const archivedPage = `<!DOCTYPE html>
<html>
<head>
<title>ICE raid at downtown plant</title>
<meta name="description" content="Agents arrested 20 workers during the operation.">
</head>
<body><p>article body</p></body>
</html>`

// newWaybackServer serves both the CDX index and the archived pages from
// one test server; the handler switches on path.
func newWaybackServer(t *testing.T, timestamps []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/cdx":
			w.Write([]byte(cdxBody(timestamps)))
		case strings.HasPrefix(r.URL.Path, "/web/"):
			w.Write([]byte(archivedPage))
		default:
			http.NotFound(w, r)
		}
	}))
}

func cdxBody(timestamps []string) string {
	rows := []string{`["urlkey","timestamp","original"]`}
	for i, ts := range timestamps {
		rows = append(rows, fmt.Sprintf(`["key%d","%s","example.com/news/ice-raid-%d"]`, i, ts, i))
	}
	return "[" + strings.Join(rows, ",") + "]"
}

func testWaybackConfig(serverURL string) model.WaybackConfig {
	return model.WaybackConfig{
		CDXBaseURL:   serverURL + "/cdx",
		WebBaseURL:   serverURL + "/web",
		Sites:        []string{"example.com"},
		Patterns:     []string{"%s/*ice*"},
		From:         "20250120",
		To:           "20250910",
		PerSiteLimit: 15,
	}
}

func TestWayback_Fetch(t *testing.T) {
	server := newWaybackServer(t, []string{"20250301120000", "20250302120000"})
	defer server.Close()

	a := NewWayback(testWaybackConfig(server.URL), NewFetcher(model.HTTPConfig{}, nil), nil, 2)

	docs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}

	byURL := make(map[string]model.RawDocument)
	for _, d := range docs {
		byURL[d.URL] = d
	}
	doc, ok := byURL["https://example.com/news/ice-raid-0"]
	if !ok {
		t.Fatalf("Expected original URL reconstructed, got %v", docs)
	}
	if doc.Title != "ICE raid at downtown plant" {
		t.Errorf("Unexpected title: %q", doc.Title)
	}
	if doc.Description != "Agents arrested 20 workers during the operation." {
		t.Errorf("Unexpected description: %q", doc.Description)
	}
	if doc.PublishedAt.Format("2006-01-02") != "2025-03-01" {
		t.Errorf("Expected capture date 2025-03-01, got %v", doc.PublishedAt)
	}
	if doc.SourceName != "example.com" {
		t.Errorf("Expected source example.com, got %q", doc.SourceName)
	}
}

func TestWayback_PerSiteLimit(t *testing.T) {
	timestamps := make([]string, 10)
	for i := range timestamps {
		timestamps[i] = fmt.Sprintf("202503%02d120000", i+1)
	}
	server := newWaybackServer(t, timestamps)
	defer server.Close()

	cfg := testWaybackConfig(server.URL)
	cfg.PerSiteLimit = 3

	a := NewWayback(cfg, NewFetcher(model.HTTPConfig{}, nil), nil, 2)
	docs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(docs) != 3 {
		t.Errorf("Expected per-site cap of 3, got %d", len(docs))
	}
}

func TestWayback_EmptyIndex(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[["urlkey","timestamp","original"]]`))
	}))
	defer server.Close()

	cfg := testWaybackConfig(server.URL)
	cfg.CDXBaseURL = server.URL

	a := NewWayback(cfg, NewFetcher(model.HTTPConfig{}, nil), nil, 2)
	docs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("Expected no documents for header-only index, got %d", len(docs))
	}
}

func TestWayback_PageWithoutMetadataSkipped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cdx" {
			w.Write([]byte(cdxBody([]string{"20250301120000"})))
			return
		}
		w.Write([]byte(`<html><head></head><body>no title, no description</body></html>`))
	}))
	defer server.Close()

	a := NewWayback(testWaybackConfig(server.URL), NewFetcher(model.HTTPConfig{}, nil), nil, 1)
	docs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("Expected metadata-less page skipped, got %d documents", len(docs))
	}
}

func TestExtractMeta(t *testing.T) {
	title, description := extractMeta([]byte(archivedPage))
	if title != "ICE raid at downtown plant" {
		t.Errorf("Unexpected title: %q", title)
	}
	if description != "Agents arrested 20 workers during the operation." {
		t.Errorf("Unexpected description: %q", description)
	}

	title, description = extractMeta([]byte("<html><body>plain</body></html>"))
	if title != "" || description != "" {
		t.Errorf("Expected empty metadata, got %q / %q", title, description)
	}
}

func TestParseSnapshot_WrapperURL(t *testing.T) {
	a := NewWayback(model.WaybackConfig{}, NewFetcher(model.HTTPConfig{}, nil), nil, 1)

	doc, ok := a.parseSnapshot("https://web.archive.org/web/20250301120000/example.com/story", []byte(archivedPage))
	if !ok {
		t.Fatal("Expected snapshot to parse")
	}
	if doc.URL != "https://example.com/story" {
		t.Errorf("Expected https scheme prefixed, got %q", doc.URL)
	}

	if _, ok := a.parseSnapshot("https://web.archive.org/other/shape", []byte(archivedPage)); ok {
		t.Error("Expected non-wrapper URL to be rejected")
	}
}
