package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/spellcards"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ spellcards.Cache = (*Cache)(nil)

// Cache implements spellcards.Cache using SQLite.
type Cache struct {
	db *DB
}

// NewCache creates a new Cache.
func NewCache(db *DB) *Cache {
	return &Cache{db: db}
}

// Page is a cached page with its bookkeeping columns.
type Page struct {
	ID          string
	Key         string
	HTML        string
	ContentHash string
	FetchedAt   time.Time
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// Get returns the cached page for key.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	var html string
	err := c.db.QueryRowContext(ctx, `SELECT html FROM pages WHERE key = ?`, key).Scan(&html)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return html, true, nil
}

// Put stores a page, replacing the previous value of key. The row keeps its
// ID across replacements.
func (c *Cache) Put(ctx context.Context, key string, html string) error {
	if key == "" {
		return spellcards.Errorf(spellcards.EINVALID, "cache key required")
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (id, key, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, uuid.New().String(), key, html, hashContent(html), time.Now().UTC().Format(time.RFC3339))
	return err
}

// FindPage returns the cached page stored under key with its metadata.
// Returns ENOTFOUND if key is not cached.
func (c *Cache) FindPage(ctx context.Context, key string) (*Page, error) {
	var page Page
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT id, key, html, content_hash, fetched_at
		FROM pages
		WHERE key = ?
	`, key).Scan(&page.ID, &page.Key, &page.HTML, &page.ContentHash, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, spellcards.Errorf(spellcards.ENOTFOUND, "page %s not cached", key)
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Purge removes every cached page and returns how many were removed.
func (c *Cache) Purge(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM pages`)
	if err != nil {
		return 0, fmt.Errorf("purge pages: %w", err)
	}
	return res.RowsAffected()
}
