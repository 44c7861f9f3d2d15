package store

import (
	"context"
	"sync"

	"github.com/icewatch/icewatch/internal/model"
)

// MemoryStore keeps incidents in a map keyed by source URL. It backs
// dry runs and tests where no database file is wanted.
type MemoryStore struct {
	mu        sync.Mutex
	incidents map[string]model.IncidentCandidate
}

func NewMemory() *MemoryStore {
	return &MemoryStore{incidents: make(map[string]model.IncidentCandidate)}
}

func (m *MemoryStore) ListSourceURLs(ctx context.Context) (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	urls := make(map[string]struct{}, len(m.incidents))
	for u := range m.incidents {
		urls[u] = struct{}{}
	}
	return urls, nil
}

func (m *MemoryStore) InsertIncidents(ctx context.Context, candidates []model.IncidentCandidate) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inserted := 0
	for _, c := range candidates {
		if _, ok := m.incidents[c.SourceURL]; ok {
			continue
		}
		m.incidents[c.SourceURL] = c
		inserted++
	}
	return inserted, nil
}

func (m *MemoryStore) Close() error { return nil }

// Incidents returns a copy of everything stored, in no particular order.
func (m *MemoryStore) Incidents() []model.IncidentCandidate {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.IncidentCandidate, 0, len(m.incidents))
	for _, c := range m.incidents {
		out = append(out, c)
	}
	return out
}
