package mock

import (
	"context"

	"github.com/fwojciec/spellcards"
)

var _ spellcards.FilterResolver = (*FilterResolver)(nil)

// FilterResolver is a mock implementation of spellcards.FilterResolver.
type FilterResolver struct {
	ResolveFilterFn func(ctx context.Context, filter spellcards.SpellFilter) ([]spellcards.Identifier, error)
}

func (r *FilterResolver) ResolveFilter(ctx context.Context, filter spellcards.SpellFilter) ([]spellcards.Identifier, error) {
	return r.ResolveFilterFn(ctx, filter)
}
