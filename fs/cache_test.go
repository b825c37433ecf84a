package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/spellcards"
	"github.com/fwojciec/spellcards/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetMissingKey(t *testing.T) {
	t.Parallel()

	// Given an empty cache
	cache := fs.NewCache(t.TempDir())

	// When I look up a page
	html, ok, err := cache.Get(context.Background(), "fr:lumiere")

	// Then it is reported missing
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, html)
}

func TestCache_PutThenGet(t *testing.T) {
	t.Parallel()

	// Given a cache with a stored page
	dir := t.TempDir()
	cache := fs.NewCache(dir)
	require.NoError(t, cache.Put(context.Background(), "fr:lumiere", "<h1>Lumière</h1>"))

	// When I look it up
	html, ok, err := cache.Get(context.Background(), "fr:lumiere")

	// Then the stored page is returned
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<h1>Lumière</h1>", html)

	// And it lives in <language>:<slug>.html
	data, err := os.ReadFile(filepath.Join(dir, "fr:lumiere.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Lumière</h1>", string(data))
}

func TestCache_PutReplaces(t *testing.T) {
	t.Parallel()

	cache := fs.NewCache(t.TempDir())
	require.NoError(t, cache.Put(context.Background(), "en:shield", "old"))
	require.NoError(t, cache.Put(context.Background(), "en:shield", "new"))

	html, ok, err := cache.Get(context.Background(), "en:shield")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", html)
}

func TestCache_PutLeavesNoTemporaryFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cache := fs.NewCache(dir)
	require.NoError(t, cache.Put(context.Background(), "fr:soins", "x"))

	entries, err := os.ReadDir(dir)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fr:soins.html", entries[0].Name())
}

func TestCache_RejectsPathKeys(t *testing.T) {
	t.Parallel()

	cache := fs.NewCache(t.TempDir())

	for _, key := range []string{"", "fr:../etc", "fr:a/b"} {
		_, _, err := cache.Get(context.Background(), key)
		assert.Equal(t, spellcards.EINVALID, spellcards.ErrorCode(err), key)
	}
}

func TestCache_DefaultsToTempDir(t *testing.T) {
	t.Parallel()

	path, err := fs.NewCache("").Path("fr:lumiere")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.TempDir(), "fr:lumiere.html"), path)
}
