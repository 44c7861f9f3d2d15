package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/icewatch/icewatch/internal/model"
)

func TestNewsAPI_MissingKey(t *testing.T) {
	a := NewNewsAPI(model.NewsAPIConfig{}, NewFetcher(model.HTTPConfig{}, nil))

	_, err := a.Fetch(context.Background())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNewsAPI_Fetch(t *testing.T) {
	var sawOutlets, sawLanguage bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" {
			t.Errorf("Expected path /everything, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("apiKey") != "test-key" {
			t.Errorf("Expected apiKey test-key, got %q", r.URL.Query().Get("apiKey"))
		}
		if r.URL.Query().Get("sources") != "" {
			sawOutlets = true
		}
		if r.URL.Query().Get("language") == "en" {
			sawLanguage = true
		}

		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{
					"title": "ICE raid at plant",
					"description": "Agents arrested workers.",
					"content": "Full text here.",
					"url": "https://example.com/raid",
					"publishedAt": "2025-09-10T08:00:00Z",
					"source": {"name": "Example News"}
				},
				{
					"title": "",
					"url": "https://example.com/untitled"
				},
				{
					"title": "ICE raid at plant",
					"url": "https://example.com/raid"
				}
			]
		}`))
	}))
	defer server.Close()

	cfg := model.NewsAPIConfig{
		BaseURL:      server.URL,
		APIKey:       "test-key",
		Queries:      []string{"ICE raid"},
		LocalQueries: []string{"ICE raid local"},
		Outlets:      []string{"cnn", "npr"},
		From:         "2025-09-01",
		PageSize:     100,
	}
	a := NewNewsAPI(cfg, NewFetcher(model.HTTPConfig{}, nil))

	docs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	// Untitled and duplicate entries are dropped; the same valid article
	// from both passes counts once.
	if len(docs) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(docs))
	}
	doc := docs[0]
	if doc.Title != "ICE raid at plant" {
		t.Errorf("Unexpected title: %q", doc.Title)
	}
	if doc.Body != "Full text here." {
		t.Errorf("Expected article content carried as body, got %q", doc.Body)
	}
	if doc.SourceName != "Example News" {
		t.Errorf("Unexpected source name: %q", doc.SourceName)
	}
	if doc.PublishedAt.IsZero() {
		t.Error("Expected parsed publish date")
	}

	if !sawOutlets {
		t.Error("Expected primary pass to restrict to outlets")
	}
	if !sawLanguage {
		t.Error("Expected local pass to use language=en")
	}
}

func TestNewsAPI_QueryFailureIsSoft(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"status": "ok", "articles": [
			{"title": "ICE arrests reported", "url": "https://example.com/ok"}
		]}`))
	}))
	defer server.Close()

	cfg := model.NewsAPIConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Queries: []string{"first", "second"},
	}
	a := NewNewsAPI(cfg, NewFetcher(model.HTTPConfig{}, nil))

	docs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("A failed query must not fail the adapter: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("Expected the surviving query's document, got %d", len(docs))
	}
}

func TestNewsAPI_UnparseableDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ok", "articles": [
			{"title": "ICE raid", "url": "https://example.com/1", "publishedAt": "not a date"}
		]}`))
	}))
	defer server.Close()

	a := NewNewsAPI(model.NewsAPIConfig{
		BaseURL: server.URL,
		APIKey:  "k",
		Queries: []string{"q"},
	}, NewFetcher(model.HTTPConfig{}, nil))

	docs, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(docs))
	}
	if !docs[0].PublishedAt.IsZero() {
		t.Error("Expected zero time for unparseable date")
	}
}
