// Package normalize converts raw documents into incident candidates. A
// document that fails the relevance gate yields nothing; that is the
// expected outcome for most fetched articles, not a fault.
package normalize

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/icewatch/icewatch/internal/classify"
	"github.com/icewatch/icewatch/internal/model"
)

// maxDescriptionLen bounds stored descriptions.
const maxDescriptionLen = 500

var tagRe = regexp.MustCompile(`<[^>]*>`)

// entityReplacer decodes the small fixed entity set feeds actually emit.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
)

// Normalizer derives candidates from documents using a classifier. now is
// injectable so date-fallback behavior is testable.
type Normalizer struct {
	classifier classify.Classifier
	now        func() time.Time
}

// New builds a normalizer over the given classifier.
func New(c classify.Classifier) *Normalizer {
	return &Normalizer{classifier: c, now: time.Now}
}

// NewAt builds a normalizer with a fixed clock, for tests.
func NewAt(c classify.Classifier, now func() time.Time) *Normalizer {
	return &Normalizer{classifier: c, now: now}
}

// Normalize turns one document into at most one candidate. The second
// return is false when the document is not about an enforcement action.
func (n *Normalizer) Normalize(doc model.RawDocument) (model.IncidentCandidate, bool) {
	text := doc.Text()
	if !n.classifier.Relevant(text) {
		return model.IncidentCandidate{}, false
	}

	candidate := model.IncidentCandidate{
		Date:        n.incidentDate(doc),
		Type:        n.classifier.TypeOf(text),
		Description: CleanDescription(firstNonEmpty(doc.Description, doc.Title)),
		SourceURL:   doc.URL,
		SourceName:  doc.SourceName,
	}

	loc := n.classifier.Location(text)
	candidate.City = loc.City
	candidate.State = loc.State
	candidate.Latitude = loc.Lat
	candidate.Longitude = loc.Lng

	if count, ok := n.classifier.AffectedCount(text); ok {
		candidate.NumAffected = &count
	}

	return candidate, true
}

// incidentDate uses the document's publish timestamp, falling back to the
// current date when the source date was unparseable.
func (n *Normalizer) incidentDate(doc model.RawDocument) time.Time {
	ts := doc.PublishedAt
	if ts.IsZero() {
		ts = n.now()
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

// CleanDescription strips markup tags, decodes the fixed entity set, and
// caps the length. The cap never splits a multi-byte rune: the cut backs
// up to the nearest rune boundary.
func CleanDescription(raw string) string {
	cleaned := tagRe.ReplaceAllString(raw, "")
	cleaned = entityReplacer.Replace(cleaned)
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) > maxDescriptionLen {
		cut := maxDescriptionLen
		for cut > 0 && !utf8.RuneStart(cleaned[cut]) {
			cut--
		}
		cleaned = cleaned[:cut]
	}
	return cleaned
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
