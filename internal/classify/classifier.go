// Package classify turns raw article text into structured incident fields.
// All implementations are pure over their inputs: no I/O in the rule
// classifier, and deterministic outputs for identical text.
package classify

import (
	"github.com/icewatch/icewatch/internal/model"
)

// Location is a resolved place. City, Lat and Lng are set together on a
// gazetteer city hit; a state-name match sets State alone.
type Location struct {
	City  string
	State string
	Lat   *float64
	Lng   *float64
}

// Classifier extracts incident fields from free text. The rule
// implementation is the reference behavior; alternatives (an LLM-backed
// one, for instance) must honor the same contract so the pipeline never
// cares which is wired in.
type Classifier interface {
	// Relevant reports whether the text is about an enforcement action at
	// all: it must mention an agency term AND an action term.
	Relevant(text string) bool

	// TypeOf tags the incident by scanning category keyword groups in a
	// fixed priority order; unmatched text is TypeOther.
	TypeOf(text string) model.IncidentType

	// AffectedCount extracts how many people were arrested or detained.
	// The second return is false when no pattern matched within the
	// sanity bound; counts are never clamped.
	AffectedCount(text string) (int, bool)

	// Location resolves the first place name found in the text.
	Location(text string) Location
}
