// Package store is the persistence collaborator. The pipeline only needs
// the URL snapshot and bulk insert; everything else about the data store
// is outside the ingestion core.
package store

import (
	"context"

	"github.com/icewatch/icewatch/internal/model"
)

// Store persists incidents. Implementations must enforce source-URL
// uniqueness themselves: the pipeline's dedup is a snapshot check, and the
// store is the final backstop against concurrent-run duplicates.
type Store interface {
	// ListSourceURLs returns every persisted source URL, read once per run.
	ListSourceURLs(ctx context.Context) (map[string]struct{}, error)

	// InsertIncidents bulk-inserts candidates and returns how many rows
	// were actually added. A candidate colliding with an existing source
	// URL is ignored, not an error.
	InsertIncidents(ctx context.Context, candidates []model.IncidentCandidate) (int, error)

	Close() error
}
