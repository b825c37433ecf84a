package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/spellcards"
	"github.com/fwojciec/spellcards/scrape"
	"github.com/fwojciec/spellcards/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   spellcards.Fetcher
	Resolver  spellcards.FilterResolver
	Scraper   *scrape.Scraper
	Converter spellcards.Converter

	// NewCardWriter opens the card output at path.
	NewCardWriter func(path string) spellcards.CardWriter

	// Pages is set only when the SQLite cache is in use.
	Pages *sqlite.Cache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool          `short:"v" help:"Log every fetch and scraped item"`
	CacheDir string        `name:"cache-dir" env:"SPELLCARDS_CACHE_DIR" help:"Directory of cached pages (default: system temp dir)"`
	CacheDB  string        `name:"cache-db" env:"SPELLCARDS_CACHE_DB" help:"Cache pages in this SQLite database instead of files"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate     float64       `default:"2" help:"Maximum requests per second to the site (0 disables limiting)"`
	Burst    int           `default:"1" help:"Requests allowed back to back before the rate applies"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape spells, magic items and feats into a card file"`
	Filter  FilterCmd  `cmd:"" help:"List the spells matching class:min:max filters"`
	Inspect InspectCmd `cmd:"" help:"Print the content of a page as Markdown"`
	Cache   CacheCmd   `cmd:"" help:"Inspect or clear the SQLite page cache"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Spells       []string `help:"Spell identifiers as <lang>:<slug> (repeatable, comma separated)"`
	SpellFilters []string `name:"spell-filter" help:"Spell filters as <class>:<min-level>:<max-level> (repeatable)"`
	Items        []string `help:"Magic item identifiers as <lang>:<slug>"`
	Feats        []string `help:"Feat identifiers as <lang>:<slug>"`
	Output       string   `short:"o" default:"cards.json" help:"Output card file"`
	Concurrency  int      `short:"c" default:"1" help:"Concurrent fetch limit"`
	FailFast     bool     `name:"fail-fast" help:"Stop at the first failing item and write nothing"`
	AreaTags     string   `name:"area-tags" env:"SPELLCARDS_AREA_TAGS" help:"JSON spell export providing area tags by English name"`

	IncludeSpellLegend bool `name:"include-spell-legend" help:"Add a card explaining the spell pictograms"`
}

// FilterCmd is the "filter" subcommand.
type FilterCmd struct {
	Filters []string `arg:"" help:"Spell filters as <class>:<min-level>:<max-level>"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Kind string `arg:"" enum:"spell,item,feat" help:"Entity kind (spell, item, feat)"`
	ID   string `arg:"" help:"Identifier as <lang>:<slug>"`
}

// CacheCmd groups the cache subcommands.
type CacheCmd struct {
	Show  CacheShowCmd  `cmd:"" help:"Show a cached page's metadata"`
	Purge CachePurgeCmd `cmd:"" help:"Remove every cached page"`
}

// CacheShowCmd is the "cache show" subcommand.
type CacheShowCmd struct {
	Key string `arg:"" help:"Cache key as <lang>:<slug>"`
}

// CachePurgeCmd is the "cache purge" subcommand.
type CachePurgeCmd struct{}
