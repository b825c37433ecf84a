// Package fs provides file-based storage: the page cache, the spell area
// reference table and the card output file.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/spellcards"
)

// Ensure Cache implements spellcards.Cache at compile time.
var _ spellcards.Cache = (*Cache)(nil)

// Cache stores fetched pages as <dir>/<key>.html files. A cached page never
// expires.
type Cache struct {
	dir string
}

// NewCache creates a Cache in dir. An empty dir means the system temporary
// directory.
func NewCache(dir string) *Cache {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Cache{dir: dir}
}

// Path returns the file that holds the page stored under key.
func (c *Cache) Path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", spellcards.Errorf(spellcards.EINVALID, "invalid cache key %q", key)
	}
	return filepath.Join(c.dir, key+".html"), nil
}

// Get returns the cached page for key.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := c.Path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Put stores a page. The file is written next to its final name and renamed
// into place so readers never see a partial page.
func (c *Cache) Put(ctx context.Context, key string, html string) error {
	path, err := c.Path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}
	return writeAtomic(path, []byte(html))
}

// writeAtomic writes data to a temporary file in the directory of path and
// renames it to path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
