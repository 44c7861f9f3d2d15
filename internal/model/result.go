package model

import "time"

// SourceError records one adapter's failure without aborting the run.
type SourceError struct {
	Source string `json:"source"`
	Err    string `json:"error"`
}

// RunResult is the terminal state of every ingestion run. Errors are data
// here: a run that failed at the storage step still reports how far it got.
type RunResult struct {
	StartedAt       time.Time     `json:"started_at"`
	FinishedAt      time.Time     `json:"finished_at"`
	ArticlesFound   int           `json:"articles_found"`
	IncidentsParsed int           `json:"incidents_parsed"`
	IncidentsAdded  int           `json:"incidents_added"`
	SourceErrors    []SourceError `json:"source_errors,omitempty"`
	Err             string        `json:"error,omitempty"`
}

// Failed reports whether the run hit a run-level (storage) error. Per-source
// errors alone do not fail a run.
func (r RunResult) Failed() bool {
	return r.Err != ""
}
