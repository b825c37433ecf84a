package goquery

import (
	"strconv"
	"strings"

	"github.com/fwojciec/spellcards"
)

// ParseMagicItem extracts a magic item.
func (p *Parser) ParseMagicItem(id spellcards.Identifier, html string) (*spellcards.MagicItem, error) {
	locale, err := spellcards.ItemLocaleFor(id.Lang)
	if err != nil {
		return nil, err
	}
	pg, err := newPage(id, html)
	if err != nil {
		return nil, err
	}

	typeText, rarityText := splitTypeLine(pg.property("type"))
	kind, err := parseItemKind(typeText, id.Lang, locale)
	if err != nil {
		return nil, err
	}

	rarityText = strings.TrimSpace(rarityText)
	attunement := false
	if strings.Contains(rarityText, locale.AttunementIndicator) {
		rarityText = strings.TrimSpace(locale.Attunement.ReplaceAllString(rarityText, ""))
		attunement = true
	}
	rarity, err := spellcards.ParseMagicItemRarity(rarityText, id.Lang)
	if err != nil {
		return nil, err
	}

	text, err := pg.textBlock("description")
	if err != nil {
		return nil, err
	}

	item := &spellcards.MagicItem{
		Lang:       id.Lang,
		Title:      pg.title(),
		Type:       kind,
		Attunement: attunement,
		Rarity:     rarity,
		Color:      "#" + rarity.Color(),
		Text:       text,
		ImageURL:   pg.doc.Find("img[src]").First().AttrOr("src", ""),
		Recharges:  recharges(text, locale),
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// splitTypeLine splits "type (qualifier), rarity" at the first comma outside
// parentheses, since qualifiers may contain commas themselves.
func splitTypeLine(s string) (string, string) {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth = max(depth-1, 0)
		case ',':
			if depth == 0 {
				return s[:i], s[i+1:]
			}
		}
	}
	return s, ""
}

// parseItemKind checks the armor and weapon patterns before the synonym
// table since their wording varies the most.
func parseItemKind(s string, lang spellcards.Language, locale spellcards.ItemLocale) (spellcards.MagicItemKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case locale.Armor.MatchString(s):
		return spellcards.ItemArmor, nil
	case locale.Weapon.MatchString(s):
		return spellcards.ItemWeapon, nil
	default:
		return spellcards.ParseMagicItemKind(s, lang)
	}
}

// recharges returns the number of charges stated in the description, or 0.
func recharges(text []string, locale spellcards.ItemLocale) int {
	m := locale.Charges.FindStringSubmatch(strings.Join(text, " "))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
