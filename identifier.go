package spellcards

import "strings"

// Language is the language a page is published in.
type Language string

// Supported languages.
const (
	French  Language = "fr"
	English Language = "en"
)

// ParseLanguage returns the Language for a tag such as "fr".
// Returns EINVALID for unsupported languages.
func ParseLanguage(tag string) (Language, error) {
	switch lang := Language(strings.ToLower(strings.TrimSpace(tag))); lang {
	case French, English:
		return lang, nil
	default:
		return "", Errorf(EINVALID, "unsupported language %q", tag)
	}
}

// Kind identifies the kind of entity a page describes.
type Kind string

// Supported kinds.
const (
	KindSpell Kind = "spell"
	KindItem  Kind = "item"
	KindFeat  Kind = "feat"
)

// Identifier addresses a single page: a slug scoped to a language.
type Identifier struct {
	Lang Language `json:"lang"`
	Slug string   `json:"slug"`
}

// ParseIdentifier parses the "<language>:<slug>" form, e.g. "fr:lumiere".
func ParseIdentifier(s string) (Identifier, error) {
	tag, slug, ok := strings.Cut(s, ":")
	if !ok || slug == "" {
		return Identifier{}, Errorf(EINVALID, "invalid identifier %q, expected <lang>:<slug>", s)
	}
	lang, err := ParseLanguage(tag)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{Lang: lang, Slug: slug}, nil
}

// ParseIdentifiers parses each string with ParseIdentifier.
func ParseIdentifiers(ss []string) ([]Identifier, error) {
	ids := make([]Identifier, 0, len(ss))
	for _, s := range ss {
		id, err := ParseIdentifier(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// String returns the "<language>:<slug>" form. It doubles as the cache key.
func (id Identifier) String() string {
	return string(id.Lang) + ":" + id.Slug
}

// UniqueIdentifiers returns ids with duplicates removed, keeping the first
// occurrence of each.
func UniqueIdentifiers(ids []Identifier) []Identifier {
	seen := make(map[Identifier]bool, len(ids))
	out := make([]Identifier, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
