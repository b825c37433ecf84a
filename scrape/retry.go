package scrape

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/spellcards"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, kind spellcards.Kind, id spellcards.Identifier) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays calls fetch until it succeeds, waiting delays[i]
// before retry i+1. Errors that cannot succeed on a repeat are returned
// immediately. The logger, if provided, is called for each retry.
func FetchWithRetryDelays(ctx context.Context, kind spellcards.Kind, id spellcards.Identifier, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, kind, id)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !Retryable(err) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger("retry %s %s (attempt %d): %v", kind, id, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// Retryable reports whether a failed fetch may succeed if repeated.
// Client errors, missing pages and extraction failures are permanent.
func Retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var reqErr *spellcards.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Temporary()
	}
	switch spellcards.ErrorCode(err) {
	case spellcards.ENOTFOUND, spellcards.EINVALID, spellcards.EMAPPING:
		return false
	}
	return true
}
