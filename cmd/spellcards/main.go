package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/spellcards"
	"github.com/fwojciec/spellcards/fs"
	"github.com/fwojciec/spellcards/goquery"
	"github.com/fwojciec/spellcards/htmltomarkdown"
	spellhttp "github.com/fwojciec/spellcards/http"
	"github.com/fwojciec/spellcards/scrape"
	spellslog "github.com/fwojciec/spellcards/slog"
	"github.com/fwojciec/spellcards/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Endpoint overrides, used by end-to-end tests. Empty means the live site.
	BaseURLs  map[spellcards.Kind]string
	FilterURL string

	// SQLite database backing the page cache when --cache-db is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("spellcards"),
		kong.Description("Scrape D&D spells, magic items and feats from aidedd.org into card data"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'spellcards --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Rate < 0 {
		return spellcards.Errorf(spellcards.EINVALID, "--rate must not be negative, got %v", cli.Rate)
	}
	if cli.Burst < 1 {
		return spellcards.Errorf(spellcards.EINVALID, "--burst must be at least 1, got %d", cli.Burst)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Page cache: SQLite when a database is configured, files otherwise.
	var cache spellcards.Cache
	if cli.CacheDB != "" {
		m.DB = sqlite.NewDB(cli.CacheDB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SPELLCARDS_CACHE_DB to use a different database path\n")
			return fmt.Errorf("failed to open cache database at %q: %w", cli.CacheDB, err)
		}
		defer m.Close()
		deps.Pages = sqlite.NewCache(m.DB)
		cache = deps.Pages
	} else {
		cache = fs.NewCache(cli.CacheDir)
	}
	cache = spellslog.NewLoggingCache(cache, logger)

	opts := []spellhttp.Option{
		spellhttp.WithTimeout(cli.Timeout),
		spellhttp.WithLimiter(scrape.NewHostLimiter(cli.Rate, cli.Burst)),
	}
	if m.BaseURLs != nil {
		opts = append(opts, spellhttp.WithBaseURLs(m.BaseURLs))
	}
	if m.FilterURL != "" {
		opts = append(opts, spellhttp.WithFilterURL(m.FilterURL))
	}

	deps.Fetcher = scrape.NewCachingFetcher(
		spellslog.NewLoggingFetcher(spellhttp.NewFetcher(opts...), logger),
		cache,
	)
	deps.Resolver = spellslog.NewLoggingFilterResolver(spellhttp.NewFilterResolver(opts...), logger)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.NewCardWriter = func(path string) spellcards.CardWriter {
		return fs.NewCardWriter(path)
	}

	var parserOpts []goquery.Option
	if cli.Scrape.AreaTags != "" {
		areas, err := fs.LoadAreaIndex(cli.Scrape.AreaTags)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: --area-tags expects the JSON spell export keyed by English name\n")
			return fmt.Errorf("failed to load area tags: %w", err)
		}
		parserOpts = append(parserOpts, goquery.WithAreaIndex(areas))
	}

	deps.Scraper = &scrape.Scraper{
		Fetcher:     deps.Fetcher,
		Parser:      goquery.NewParser(parserOpts...),
		Concurrency: cli.Scrape.Concurrency,
		RetryDelays: scrape.DefaultRetryDelays(),
		FailFast:    cli.Scrape.FailFast,
		Logger: func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		},
		Progress: func(e scrape.ProgressEvent) {
			logger.Info("scraped",
				"kind", e.Kind,
				"id", e.ID,
				"progress", fmt.Sprintf("%d/%d", e.Completed, e.Total),
				"err", e.Err,
			)
		},
	}

	return kongCtx.Run(deps)
}
