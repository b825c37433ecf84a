package mock

import (
	"context"

	"github.com/fwojciec/spellcards"
)

var _ spellcards.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of spellcards.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, kind spellcards.Kind, id spellcards.Identifier) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, kind spellcards.Kind, id spellcards.Identifier) (string, error) {
	return f.FetchFn(ctx, kind, id)
}

var _ spellcards.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of spellcards.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
