// Package pipeline runs a full ingestion pass: fetch from every source,
// classify and normalize, deduplicate, and persist what survives.
package pipeline

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/icewatch/icewatch/internal/dedup"
	"github.com/icewatch/icewatch/internal/model"
	"github.com/icewatch/icewatch/internal/normalize"
	"github.com/icewatch/icewatch/internal/source"
	"github.com/icewatch/icewatch/internal/store"
)

type Options struct {
	// AdapterTimeout bounds each source fetch. Zero means no per-adapter
	// deadline beyond the run context.
	AdapterTimeout time.Duration

	// DryRun skips the final insert. Counts still reflect what would
	// have been written.
	DryRun bool

	Verbose bool
}

type Pipeline struct {
	adapters   []source.Adapter
	normalizer *normalize.Normalizer
	store      store.Store
	opts       Options
}

func New(adapters []source.Adapter, n *normalize.Normalizer, st store.Store, opts Options) *Pipeline {
	return &Pipeline{adapters: adapters, normalizer: n, store: st, opts: opts}
}

type fetchOutcome struct {
	name string
	docs []model.RawDocument
	err  error
}

// Run executes one ingestion pass. Per-source failures are recorded in
// the result and do not stop the run; only a storage failure marks the
// whole run as failed.
func (p *Pipeline) Run(ctx context.Context) model.RunResult {
	result := model.RunResult{StartedAt: time.Now().UTC()}

	outcomes := p.fetchAll(ctx)

	var docs []model.RawDocument
	for _, o := range outcomes {
		if o.err != nil {
			result.SourceErrors = append(result.SourceErrors, model.SourceError{
				Source: o.name,
				Err:    o.err.Error(),
			})
			if p.opts.Verbose {
				log.Printf("source %s failed: %v", o.name, o.err)
			}
		}
		docs = append(docs, o.docs...)
	}
	result.ArticlesFound = len(docs)

	var candidates []model.IncidentCandidate
	for _, doc := range docs {
		if c, ok := p.normalizer.Normalize(doc); ok {
			candidates = append(candidates, c)
		}
	}
	candidates = dedup.IntraRun(candidates)
	result.IncidentsParsed = len(candidates)

	existing, err := p.store.ListSourceURLs(ctx)
	if err != nil {
		result.Err = err.Error()
		result.FinishedAt = time.Now().UTC()
		return result
	}
	fresh := dedup.AgainstExisting(candidates, existing)

	if p.opts.DryRun {
		result.IncidentsAdded = len(fresh)
		result.FinishedAt = time.Now().UTC()
		return result
	}

	added, err := p.store.InsertIncidents(ctx, fresh)
	if err != nil {
		result.Err = err.Error()
		result.FinishedAt = time.Now().UTC()
		return result
	}
	result.IncidentsAdded = added
	result.FinishedAt = time.Now().UTC()

	if p.opts.Verbose {
		log.Printf("run complete: %d articles, %d incidents parsed, %d added",
			result.ArticlesFound, result.IncidentsParsed, result.IncidentsAdded)
	}
	return result
}

// fetchAll runs every adapter concurrently and collects outcomes in
// adapter order.
func (p *Pipeline) fetchAll(ctx context.Context) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(p.adapters))

	var wg sync.WaitGroup
	for i, a := range p.adapters {
		wg.Add(1)
		go func(i int, a source.Adapter) {
			defer wg.Done()

			fetchCtx := ctx
			if p.opts.AdapterTimeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(ctx, p.opts.AdapterTimeout)
				defer cancel()
			}

			docs, err := a.Fetch(fetchCtx)
			outcomes[i] = fetchOutcome{name: a.Name(), docs: docs, err: err}
		}(i, a)
	}
	wg.Wait()

	return outcomes
}
