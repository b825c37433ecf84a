package main

import (
	"fmt"

	"github.com/fwojciec/spellcards"
)

// Run executes the filter command.
func (c *FilterCmd) Run(deps *Dependencies) error {
	var ids []spellcards.Identifier
	for _, raw := range c.Filters {
		filter, err := spellcards.ParseSpellFilter(raw)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", spellcards.ErrorMessage(err))
			return err
		}
		resolved, err := deps.Resolver.ResolveFilter(deps.Ctx, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", raw, spellcards.ErrorMessage(err))
			return err
		}
		ids = append(ids, resolved...)
	}

	ids = spellcards.UniqueIdentifiers(ids)
	if len(ids) == 0 {
		fmt.Fprintln(deps.Stdout, "No spells match.")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(deps.Stdout, id)
	}
	return nil
}
