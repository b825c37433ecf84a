package scrape

import (
	"context"
	"sync"

	"github.com/fwojciec/spellcards"
	"golang.org/x/time/rate"
)

var _ spellcards.HostLimiter = (*HostLimiter)(nil)

// HostLimiter spaces out requests to each host with a token bucket per host.
// A non-positive rate disables limiting.
type HostLimiter struct {
	limit rate.Limit
	burst int

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewHostLimiter returns a limiter allowing rps requests per second to each
// host, with up to burst requests sent back to back. A burst below 1 is
// treated as 1.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &HostLimiter{
		limit: limit,
		burst: max(burst, 1),
		hosts: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	if l.limit == rate.Inf {
		return ctx.Err()
	}
	return l.bucket(host).Wait(ctx)
}

func (l *HostLimiter) bucket(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.hosts[host]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.hosts[host] = b
	}
	return b
}
