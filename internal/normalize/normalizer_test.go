package normalize

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/icewatch/icewatch/internal/classify"
	"github.com/icewatch/icewatch/internal/geo"
	"github.com/icewatch/icewatch/internal/model"
)

func testNormalizer() *Normalizer {
	return NewAt(classify.NewRules(geo.Static()), func() time.Time {
		return time.Date(2025, 9, 15, 10, 30, 0, 0, time.UTC)
	})
}

func TestNormalize_RelevantDocument(t *testing.T) {
	n := testNormalizer()

	doc := model.RawDocument{
		Title:       "ICE raids Chicago plant, 15 workers were arrested",
		Description: "Agents detained workers during a morning raid.",
		URL:         "https://example.com/article",
		PublishedAt: time.Date(2025, 9, 10, 14, 0, 0, 0, time.UTC),
		SourceName:  "Example News",
	}

	c, ok := n.Normalize(doc)
	if !ok {
		t.Fatal("Expected document to normalize")
	}
	if c.Type != model.TypeWorkplaceRaid {
		t.Errorf("Expected Workplace Raid, got %q", c.Type)
	}
	if c.City != "Chicago" || c.State != "IL" {
		t.Errorf("Expected Chicago, IL; got %q, %q", c.City, c.State)
	}
	if c.NumAffected == nil || *c.NumAffected != 15 {
		t.Errorf("Expected affected count 15, got %v", c.NumAffected)
	}
	if c.DateString() != "2025-09-10" {
		t.Errorf("Expected date 2025-09-10, got %s", c.DateString())
	}
	if c.SourceURL != doc.URL {
		t.Errorf("Expected source URL %q, got %q", doc.URL, c.SourceURL)
	}
	if c.Description != "Agents detained workers during a morning raid." {
		t.Errorf("Unexpected description: %q", c.Description)
	}
}

func TestNormalize_IrrelevantDocument(t *testing.T) {
	n := testNormalizer()

	doc := model.RawDocument{
		Title: "City council debates parking rules",
		URL:   "https://example.com/parking",
	}
	if _, ok := n.Normalize(doc); ok {
		t.Error("Expected irrelevant document to be dropped")
	}
}

func TestNormalize_DateFallbackToToday(t *testing.T) {
	n := testNormalizer()

	doc := model.RawDocument{
		Title: "ICE raid at a factory",
		URL:   "https://example.com/raid",
		// PublishedAt zero: unparseable source date.
	}
	c, ok := n.Normalize(doc)
	if !ok {
		t.Fatal("Expected document to normalize")
	}
	if c.DateString() != "2025-09-15" {
		t.Errorf("Expected fallback to injected today, got %s", c.DateString())
	}
}

func TestNormalize_DescriptionFallsBackToTitle(t *testing.T) {
	n := testNormalizer()

	doc := model.RawDocument{
		Title: "ICE arrests reported downtown",
		URL:   "https://example.com/a",
	}
	c, ok := n.Normalize(doc)
	if !ok {
		t.Fatal("Expected document to normalize")
	}
	if c.Description != "ICE arrests reported downtown" {
		t.Errorf("Expected title as description, got %q", c.Description)
	}
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tags stripped", "<p>ICE <b>raid</b> reported</p>", "ICE raid reported"},
		{"entities decoded", "Smith &amp; Sons &quot;raid&quot;&nbsp;today", `Smith & Sons "raid" today`},
		{"whitespace trimmed", "  arrests downtown  ", "arrests downtown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanDescription(tt.in); got != tt.want {
				t.Errorf("CleanDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanDescription_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := CleanDescription(long)
	if len(got) != 500 {
		t.Errorf("Expected 500 chars, got %d", len(got))
	}
}

func TestCleanDescription_CapOnRuneBoundary(t *testing.T) {
	// Place a three-byte rune straddling the 500-byte mark; the cut must
	// back up rather than store an invalid UTF-8 tail.
	long := strings.Repeat("a", 499) + strings.Repeat("日", 40)
	got := CleanDescription(long)

	if !utf8.ValidString(got) {
		t.Fatalf("Truncation produced invalid UTF-8: %q", got[490:])
	}
	if len(got) > 500 {
		t.Errorf("Expected at most 500 bytes, got %d", len(got))
	}
	if len(got) != 499 {
		t.Errorf("Expected cut backed up to 499 bytes, got %d", len(got))
	}
}

func TestNormalize_CountNeverZero(t *testing.T) {
	n := testNormalizer()

	doc := model.RawDocument{
		Title: "ICE raid: 0 people were arrested after the operation was called off",
		URL:   "https://example.com/zero",
	}
	c, ok := n.Normalize(doc)
	if !ok {
		t.Fatal("Expected document to normalize (cancelled actions still match)")
	}
	if c.NumAffected != nil {
		t.Errorf("Expected absent count, got %d", *c.NumAffected)
	}
}
