package model

import "time"

// RawDocument is the common shape every source adapter produces: one piece
// of unstructured news text plus enough provenance to identify it. It lives
// only for the duration of a single ingestion run.
type RawDocument struct {
	Title       string
	Description string
	Body        string // longer article text, when the source provides one
	URL         string
	PublishedAt time.Time // zero when the source date could not be parsed
	SourceName  string
}

// Text returns the concatenation the classifier operates over: title,
// description, and body where available.
func (d RawDocument) Text() string {
	text := d.Title
	if d.Description != "" {
		text += " " + d.Description
	}
	if d.Body != "" {
		text += " " + d.Body
	}
	return text
}
