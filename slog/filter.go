package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spellcards"
)

// Ensure LoggingFilterResolver implements spellcards.FilterResolver.
var _ spellcards.FilterResolver = (*LoggingFilterResolver)(nil)

// LoggingFilterResolver wraps a FilterResolver with logging.
type LoggingFilterResolver struct {
	next   spellcards.FilterResolver
	logger *slog.Logger
}

// NewLoggingFilterResolver creates a new LoggingFilterResolver.
func NewLoggingFilterResolver(next spellcards.FilterResolver, logger *slog.Logger) *LoggingFilterResolver {
	return &LoggingFilterResolver{next: next, logger: logger}
}

// ResolveFilter delegates to the wrapped resolver and logs the operation.
func (r *LoggingFilterResolver) ResolveFilter(ctx context.Context, filter spellcards.SpellFilter) (ids []spellcards.Identifier, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve filter",
			"class", filter.Class,
			"min_level", filter.MinLevel,
			"max_level", filter.MaxLevel,
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveFilter(ctx, filter)
}
