package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/spellcards"
	"github.com/fwojciec/spellcards/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openCache(t *testing.T) *sqlite.Cache {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewCache(db)
}

func TestCache_Get(t *testing.T) {
	t.Parallel()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		cache := openCache(t)

		html, ok, err := cache.Get(context.Background(), "fr:lumiere")

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, html)
	})

	t.Run("returns stored page", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		cache := openCache(t)
		require.NoError(t, cache.Put(ctx, "fr:lumiere", "<h1>Lumière</h1>"))

		html, ok, err := cache.Get(ctx, "fr:lumiere")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "<h1>Lumière</h1>", html)
	})
}

func TestCache_Put(t *testing.T) {
	t.Parallel()

	t.Run("records id, hash and fetch time", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		cache := openCache(t)
		before := time.Now().UTC().Add(-time.Second)

		require.NoError(t, cache.Put(ctx, "en:shield", "<h1>Shield</h1>"))

		page, err := cache.FindPage(ctx, "en:shield")
		require.NoError(t, err)
		assert.NotEmpty(t, page.ID)
		assert.Equal(t, "en:shield", page.Key)
		assert.Len(t, page.ContentHash, 16)
		assert.False(t, page.FetchedAt.Before(before))
	})

	t.Run("replaces existing page and keeps its id", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		cache := openCache(t)
		require.NoError(t, cache.Put(ctx, "en:shield", "old"))
		first, err := cache.FindPage(ctx, "en:shield")
		require.NoError(t, err)

		require.NoError(t, cache.Put(ctx, "en:shield", "new"))

		second, err := cache.FindPage(ctx, "en:shield")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "new", second.HTML)
		assert.NotEqual(t, first.ContentHash, second.ContentHash)
	})

	t.Run("identical content has identical hash", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		cache := openCache(t)
		require.NoError(t, cache.Put(ctx, "fr:a", "same"))
		require.NoError(t, cache.Put(ctx, "fr:b", "same"))

		a, err := cache.FindPage(ctx, "fr:a")
		require.NoError(t, err)
		b, err := cache.FindPage(ctx, "fr:b")
		require.NoError(t, err)
		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("empty key is invalid", func(t *testing.T) {
		t.Parallel()

		err := openCache(t).Put(context.Background(), "", "x")

		assert.Equal(t, spellcards.EINVALID, spellcards.ErrorCode(err))
	})
}

func TestCache_FindPage(t *testing.T) {
	t.Parallel()

	_, err := openCache(t).FindPage(context.Background(), "fr:absent")

	assert.Equal(t, spellcards.ENOTFOUND, spellcards.ErrorCode(err))
}

func TestCache_Purge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := openCache(t)
	require.NoError(t, cache.Put(ctx, "fr:a", "a"))
	require.NoError(t, cache.Put(ctx, "fr:b", "b"))

	n, err := cache.Purge(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	_, ok, err := cache.Get(ctx, "fr:a")
	require.NoError(t, err)
	assert.False(t, ok)
}
