package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/spellcards"
)

// Run executes the scrape command. Cards are written once every batch has
// finished. Failed items are reported after the summary and make the
// command fail, but the cards of the others are still written.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	spellIDs, itemIDs, featIDs, err := c.identifiers(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spellcards.ErrorMessage(err))
		return err
	}
	if len(spellIDs)+len(itemIDs)+len(featIDs) == 0 {
		return fmt.Errorf("nothing to scrape: pass --spells, --spell-filter, --items or --feats")
	}

	var cards []spellcards.Card
	var rows []summaryRow
	var failures []*spellcards.ItemError

	spells, err := deps.Scraper.Spells(deps.Ctx, spellIDs)
	batchErr, err := partial(err)
	if err != nil {
		return abort(deps, err)
	}
	if c.IncludeSpellLegend && len(spells) > 0 {
		cards = append(cards, spellcards.SpellLegendCard())
	}
	titles := make([]string, 0, len(spells))
	for _, s := range spells {
		cards = append(cards, spellcards.SpellCard(s))
		titles = append(titles, s.Title)
	}
	rows = append(rows, summarize(spellcards.KindSpell, spellIDs, titles, batchErr)...)
	failures = append(failures, failuresOf(batchErr)...)

	items, err := deps.Scraper.MagicItems(deps.Ctx, itemIDs)
	batchErr, err = partial(err)
	if err != nil {
		return abort(deps, err)
	}
	titles = titles[:0]
	for _, m := range items {
		cards = append(cards, spellcards.MagicItemCard(m))
		titles = append(titles, m.Title)
	}
	rows = append(rows, summarize(spellcards.KindItem, itemIDs, titles, batchErr)...)
	failures = append(failures, failuresOf(batchErr)...)

	feats, err := deps.Scraper.Feats(deps.Ctx, featIDs)
	batchErr, err = partial(err)
	if err != nil {
		return abort(deps, err)
	}
	titles = titles[:0]
	for _, f := range feats {
		cards = append(cards, spellcards.FeatCard(f))
		titles = append(titles, f.Title)
	}
	rows = append(rows, summarize(spellcards.KindFeat, featIDs, titles, batchErr)...)
	failures = append(failures, failuresOf(batchErr)...)

	if err := deps.NewCardWriter(c.Output).WriteCards(cards); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write %s: %v\n", c.Output, err)
		return err
	}

	renderSummary(deps.Stdout, rows)
	fmt.Fprintf(deps.Stdout, "Wrote %d cards to %s\n", len(cards), c.Output)

	if len(failures) > 0 {
		for _, f := range failures {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", f.ID, spellcards.ErrorMessage(f.Err))
		}
		return fmt.Errorf("%d items failed", len(failures))
	}
	return nil
}

// identifiers parses the requested identifiers. Spells named directly come
// first, followed by the spells of each filter in order, without duplicates.
func (c *ScrapeCmd) identifiers(deps *Dependencies) (spells, items, feats []spellcards.Identifier, err error) {
	spells, err = spellcards.ParseIdentifiers(c.Spells)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, raw := range c.SpellFilters {
		filter, err := spellcards.ParseSpellFilter(raw)
		if err != nil {
			return nil, nil, nil, err
		}
		resolved, err := deps.Resolver.ResolveFilter(deps.Ctx, filter)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("resolve filter %s: %w", raw, err)
		}
		spells = append(spells, resolved...)
	}

	items, err = spellcards.ParseIdentifiers(c.Items)
	if err != nil {
		return nil, nil, nil, err
	}
	feats, err = spellcards.ParseIdentifiers(c.Feats)
	if err != nil {
		return nil, nil, nil, err
	}
	return spellcards.UniqueIdentifiers(spells), spellcards.UniqueIdentifiers(items), spellcards.UniqueIdentifiers(feats), nil
}

// partial separates per-item failures, which leave the other records
// usable, from errors that abort the command.
func partial(err error) (*spellcards.BatchError, error) {
	var batchErr *spellcards.BatchError
	if err == nil {
		return nil, nil
	} else if errors.As(err, &batchErr) {
		return batchErr, nil
	}
	return nil, err
}

func failuresOf(batchErr *spellcards.BatchError) []*spellcards.ItemError {
	if batchErr == nil {
		return nil
	}
	return batchErr.Failures
}

// abort reports an error that stops the command before any output is written.
func abort(deps *Dependencies, err error) error {
	var itemErr *spellcards.ItemError
	if errors.As(err, &itemErr) {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", itemErr.ID, spellcards.ErrorMessage(itemErr.Err))
	} else {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spellcards.ErrorMessage(err))
	}
	return err
}
