package main

import (
	"fmt"

	"github.com/fwojciec/spellcards"
	"github.com/fwojciec/spellcards/goquery"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	id, err := spellcards.ParseIdentifier(c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spellcards.ErrorMessage(err))
		return err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, spellcards.Kind(c.Kind), id)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", id, spellcards.ErrorMessage(err))
		return err
	}

	content, err := goquery.ContentHTML(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", id, spellcards.ErrorMessage(err))
		return err
	}

	md, err := deps.Converter.Convert(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", id, spellcards.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
