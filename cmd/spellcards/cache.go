package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/spellcards"
)

var errNoCacheDB = errors.New("cache commands need the SQLite cache: set --cache-db or SPELLCARDS_CACHE_DB")

// Run executes the cache show command.
func (c *CacheShowCmd) Run(deps *Dependencies) error {
	if deps.Pages == nil {
		return errNoCacheDB
	}

	page, err := deps.Pages.FindPage(deps.Ctx, c.Key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spellcards.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Key:     %s\n", page.Key)
	fmt.Fprintf(deps.Stdout, "ID:      %s\n", page.ID)
	fmt.Fprintf(deps.Stdout, "Hash:    %s\n", page.ContentHash)
	fmt.Fprintf(deps.Stdout, "Fetched: %s\n", page.FetchedAt.Format(time.RFC3339))
	fmt.Fprintf(deps.Stdout, "Size:    %d bytes\n", len(page.HTML))
	return nil
}

// Run executes the cache purge command.
func (c *CachePurgeCmd) Run(deps *Dependencies) error {
	if deps.Pages == nil {
		return errNoCacheDB
	}

	n, err := deps.Pages.Purge(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spellcards.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d cached pages\n", n)
	return nil
}
