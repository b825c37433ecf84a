// Package scrape coordinates batch retrieval of spells, magic items and
// feats: bounded concurrency, retries and partial results.
package scrape

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/spellcards"
	"golang.org/x/sync/errgroup"
)

// Scraper fetches and extracts batches of entities.
type Scraper struct {
	Fetcher spellcards.Fetcher
	Parser  spellcards.Parser

	// Concurrency bounds the number of entities processed at once.
	// Zero or less means sequential.
	Concurrency int

	// RetryDelays are the waits between fetch attempts. Nil means no retry.
	RetryDelays []time.Duration

	// FailFast aborts the batch on the first failure instead of collecting
	// failures into a *spellcards.BatchError.
	FailFast bool

	Logger   LogFunc
	Progress ProgressFunc
}

// ProgressEvent reports the outcome of one entity of a batch.
type ProgressEvent struct {
	Kind      spellcards.Kind
	ID        spellcards.Identifier
	Title     string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is a callback for reporting batch progress. Calls are
// serialized.
type ProgressFunc func(event ProgressEvent)

// Spells fetches and extracts spells. Records are returned in input order.
// When some identifiers fail and FailFast is off, the records of the others
// are returned with a *spellcards.BatchError.
func (s *Scraper) Spells(ctx context.Context, ids []spellcards.Identifier) ([]*spellcards.Spell, error) {
	return scrapeAll[spellcards.Spell](ctx, s, spellcards.KindSpell, ids, s.Parser.ParseSpell, func(r *spellcards.Spell) string { return r.Title })
}

// MagicItems fetches and extracts magic items. See Spells.
func (s *Scraper) MagicItems(ctx context.Context, ids []spellcards.Identifier) ([]*spellcards.MagicItem, error) {
	return scrapeAll[spellcards.MagicItem](ctx, s, spellcards.KindItem, ids, s.Parser.ParseMagicItem, func(r *spellcards.MagicItem) string { return r.Title })
}

// Feats fetches and extracts feats. See Spells.
func (s *Scraper) Feats(ctx context.Context, ids []spellcards.Identifier) ([]*spellcards.Feat, error) {
	return scrapeAll[spellcards.Feat](ctx, s, spellcards.KindFeat, ids, s.Parser.ParseFeat, func(r *spellcards.Feat) string { return r.Title })
}

type parseFunc[T any] func(id spellcards.Identifier, html string) (*T, error)

// outcome holds the result of processing a single identifier.
type outcome[T any] struct {
	record *T
	err    error
}

func scrapeAll[T any](ctx context.Context, s *Scraper, kind spellcards.Kind, ids []spellcards.Identifier, parse parseFunc[T], title func(*T) string) ([]*T, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	outcomes := make([]outcome[T], len(ids))
	var mu sync.Mutex
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i].err = err
				return nil
			}

			record, err := scrapeOne(gctx, s, kind, id, parse)
			outcomes[i] = outcome[T]{record: record, err: err}

			mu.Lock()
			completed++
			if s.Progress != nil {
				event := ProgressEvent{Kind: kind, ID: id, Completed: completed, Total: len(ids), Err: err}
				if record != nil {
					event.Title = title(record)
				}
				s.Progress(event)
			}
			mu.Unlock()

			if err != nil && s.FailFast {
				return &spellcards.ItemError{ID: id, Err: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]*T, 0, len(ids))
	var failures []*spellcards.ItemError
	for i, o := range outcomes {
		if o.err != nil {
			failures = append(failures, &spellcards.ItemError{ID: ids[i], Err: o.err})
			continue
		}
		records = append(records, o.record)
	}
	if len(failures) > 0 {
		return records, &spellcards.BatchError{Total: len(ids), Failures: failures}
	}
	return records, nil
}

// scrapeOne fetches the page of id, retrying transient failures, and
// extracts its record.
func scrapeOne[T any](ctx context.Context, s *Scraper, kind spellcards.Kind, id spellcards.Identifier, parse parseFunc[T]) (*T, error) {
	html, err := FetchWithRetryDelays(ctx, kind, id, s.Fetcher.Fetch, s.Logger, s.RetryDelays)
	if err != nil {
		return nil, err
	}
	return parse(id, html)
}
