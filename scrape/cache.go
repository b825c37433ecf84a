package scrape

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/spellcards"
)

var _ spellcards.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher serves pages from a cache and fetches only on a miss.
// Lookups and writes of the same key are serialized so a page is fetched
// at most once even when requested concurrently.
type CachingFetcher struct {
	fetcher spellcards.Fetcher
	cache   spellcards.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCachingFetcher wraps fetcher with cache.
func NewCachingFetcher(fetcher spellcards.Fetcher, cache spellcards.Cache) *CachingFetcher {
	return &CachingFetcher{
		fetcher: fetcher,
		cache:   cache,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (f *CachingFetcher) lock(key string) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.locks[key]
	if !ok {
		l = &sync.Mutex{}
		f.locks[key] = l
	}
	return l
}

// Fetch returns the cached page of id, fetching and storing it on a miss.
// Pages are keyed by the identifier's "<language>:<slug>" form.
func (f *CachingFetcher) Fetch(ctx context.Context, kind spellcards.Kind, id spellcards.Identifier) (string, error) {
	key := id.String()
	l := f.lock(key)
	l.Lock()
	defer l.Unlock()

	html, ok, err := f.cache.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("cache get %s: %w", key, err)
	}
	if ok {
		return html, nil
	}

	html, err = f.fetcher.Fetch(ctx, kind, id)
	if err != nil {
		return "", err
	}
	if err := f.cache.Put(ctx, key, html); err != nil {
		return "", fmt.Errorf("cache put %s: %w", key, err)
	}
	return html, nil
}
