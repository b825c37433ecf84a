package mock

import (
	"context"

	"github.com/fwojciec/spellcards"
)

var _ spellcards.Cache = (*Cache)(nil)

// Cache is a mock implementation of spellcards.Cache.
type Cache struct {
	GetFn func(ctx context.Context, key string) (string, bool, error)
	PutFn func(ctx context.Context, key string, html string) error
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	return c.GetFn(ctx, key)
}

func (c *Cache) Put(ctx context.Context, key string, html string) error {
	return c.PutFn(ctx, key, html)
}
