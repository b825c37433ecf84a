package goquery

import (
	"strings"

	"github.com/fwojciec/spellcards"
)

// ParseFeat extracts a feat. A missing prerequisite region means the feat
// has no prerequisite.
func (p *Parser) ParseFeat(id spellcards.Identifier, html string) (*spellcards.Feat, error) {
	pg, err := newPage(id, html)
	if err != nil {
		return nil, err
	}

	text, err := pg.textBlock("description")
	if err != nil {
		return nil, err
	}

	feat := &spellcards.Feat{
		Lang:         id.Lang,
		Title:        pg.title(),
		Text:         text,
		Prerequisite: strings.TrimSpace(pg.content.Find("div.prerequis").First().Text()),
	}
	if err := feat.Validate(); err != nil {
		return nil, err
	}
	return feat, nil
}
