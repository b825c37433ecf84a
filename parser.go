package spellcards

// Parser extracts records from raw pages. Each method fails with ENOTFOUND
// when the page has no content region and EMAPPING when a displayed
// category is missing from the language's tables.
type Parser interface {
	ParseSpell(id Identifier, html string) (*Spell, error)
	ParseMagicItem(id Identifier, html string) (*MagicItem, error)
	ParseFeat(id Identifier, html string) (*Feat, error)
}

// AreaIndex looks up the area tags of a spell by its English name.
type AreaIndex interface {
	AreaTags(enTitle string) []string
}

// AreaIndexMap is an in-memory AreaIndex.
type AreaIndexMap map[string][]string

// AreaTags returns the tags of the named spell, or nil if unknown.
func (m AreaIndexMap) AreaTags(enTitle string) []string {
	return m[enTitle]
}
