package mock

import "github.com/fwojciec/spellcards"

var _ spellcards.Parser = (*Parser)(nil)

// Parser is a mock implementation of spellcards.Parser.
type Parser struct {
	ParseSpellFn     func(id spellcards.Identifier, html string) (*spellcards.Spell, error)
	ParseMagicItemFn func(id spellcards.Identifier, html string) (*spellcards.MagicItem, error)
	ParseFeatFn      func(id spellcards.Identifier, html string) (*spellcards.Feat, error)
}

func (p *Parser) ParseSpell(id spellcards.Identifier, html string) (*spellcards.Spell, error) {
	return p.ParseSpellFn(id, html)
}

func (p *Parser) ParseMagicItem(id spellcards.Identifier, html string) (*spellcards.MagicItem, error) {
	return p.ParseMagicItemFn(id, html)
}

func (p *Parser) ParseFeat(id spellcards.Identifier, html string) (*spellcards.Feat, error) {
	return p.ParseFeatFn(id, html)
}
