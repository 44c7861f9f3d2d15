// Package dedup removes duplicate incident candidates. Both phases compare
// source URLs by exact string equality: no case folding, no trailing-slash
// or query-parameter normalization. Dedup state is values in and values
// out, never shared between runs.
package dedup

import "github.com/icewatch/icewatch/internal/model"

// IntraRun drops later candidates that repeat an earlier candidate's URL.
// The first occurrence wins regardless of which adapter produced it.
func IntraRun(candidates []model.IncidentCandidate) []model.IncidentCandidate {
	seen := make(map[string]struct{}, len(candidates))
	kept := make([]model.IncidentCandidate, 0, len(candidates))

	for _, c := range candidates {
		if _, dup := seen[c.SourceURL]; dup {
			continue
		}
		seen[c.SourceURL] = struct{}{}
		kept = append(kept, c)
	}
	return kept
}

// AgainstExisting keeps only candidates whose URL is absent from the
// persisted snapshot. The snapshot is read once per run; overlapping runs
// can both pass this check for the same URL, and the storage layer's
// uniqueness constraint is the backstop for that case.
func AgainstExisting(candidates []model.IncidentCandidate, existing map[string]struct{}) []model.IncidentCandidate {
	kept := make([]model.IncidentCandidate, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := existing[c.SourceURL]; dup {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
