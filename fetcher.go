package spellcards

import "context"

// Fetcher retrieves the raw HTML page of an entity.
type Fetcher interface {
	// Fetch returns the page describing id.
	// Returns EREQUEST if the server answers with a non-success status.
	Fetch(ctx context.Context, kind Kind, id Identifier) (html string, err error)
}

// Cache stores fetched pages by key. The key is the identifier's
// "<language>:<slug>" form.
type Cache interface {
	// Get returns the cached page and true, or false if key is not cached.
	Get(ctx context.Context, key string) (html string, ok bool, err error)

	// Put stores a page, replacing any previous value.
	Put(ctx context.Context, key string, html string) error
}

// HostLimiter provides per-host rate limiting of outgoing requests.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
