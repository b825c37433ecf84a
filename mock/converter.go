package mock

import "github.com/fwojciec/spellcards"

var _ spellcards.Converter = (*Converter)(nil)

// Converter is a mock implementation of spellcards.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
