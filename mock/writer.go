package mock

import "github.com/fwojciec/spellcards"

var _ spellcards.CardWriter = (*CardWriter)(nil)

// CardWriter is a mock implementation of spellcards.CardWriter.
type CardWriter struct {
	WriteCardsFn func(cards []spellcards.Card) error
}

func (w *CardWriter) WriteCards(cards []spellcards.Card) error {
	return w.WriteCardsFn(cards)
}
