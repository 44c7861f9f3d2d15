package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/icewatch/icewatch/internal/model"
)

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the incident database with WAL
// mode enabled.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS incidents (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	incident_date TEXT NOT NULL,
	incident_type TEXT NOT NULL,
	description TEXT,
	city TEXT,
	state TEXT,
	latitude REAL,
	longitude REAL,
	num_affected INTEGER,
	source_url TEXT UNIQUE NOT NULL,
	source_name TEXT,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_incidents_date ON incidents(incident_date);
CREATE INDEX IF NOT EXISTS idx_incidents_state ON incidents(state);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (s *sqliteStore) ListSourceURLs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT source_url FROM incidents")
	if err != nil {
		return nil, fmt.Errorf("list source urls: %w", err)
	}
	defer rows.Close()

	urls := make(map[string]struct{})
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan source url: %w", err)
		}
		urls[u] = struct{}{}
	}
	return urls, rows.Err()
}

// InsertIncidents writes candidates in one transaction. INSERT OR IGNORE
// makes a source-URL collision a no-op rather than an error: that is the
// uniqueness backstop for overlapping ingestion runs.
func (s *sqliteStore) InsertIncidents(ctx context.Context, candidates []model.IncidentCandidate) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR IGNORE INTO incidents
	(incident_date, incident_type, description, city, state,
	 latitude, longitude, num_affected, source_url, source_name, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	inserted := 0
	for _, c := range candidates {
		res, err := stmt.ExecContext(ctx,
			c.DateString(), string(c.Type), c.Description,
			nullString(c.City), nullString(c.State),
			nullFloat(c.Latitude), nullFloat(c.Longitude), nullInt(c.NumAffected),
			c.SourceURL, c.SourceName, now)
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", c.SourceURL, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert: %w", err)
	}
	return inserted, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
