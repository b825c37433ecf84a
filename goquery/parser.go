// Package goquery implements the aidedd.org page extraction rules on top of
// PuerkitoBio/goquery.
package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spellcards"
)

// Ensure Parser implements spellcards.Parser at compile time.
var _ spellcards.Parser = (*Parser)(nil)

// Parser extracts spells, magic items and feats from aidedd.org pages.
type Parser struct {
	areas spellcards.AreaIndex
}

// Option configures a Parser.
type Option func(*Parser)

// WithAreaIndex sets the reference table used to resolve spell shapes.
// Without it, spells have no shape.
func WithAreaIndex(areas spellcards.AreaIndex) Option {
	return func(p *Parser) {
		p.areas = areas
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// page is a parsed document and its content region.
type page struct {
	id      spellcards.Identifier
	doc     *goquery.Document
	content *goquery.Selection
}

func newPage(id spellcards.Identifier, html string) (*page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, spellcards.Errorf(spellcards.EINVALID, "failed to parse HTML of %s: %v", id, err)
	}
	content := doc.Find("div.content").First()
	if content.Length() == 0 {
		return nil, spellcards.Errorf(spellcards.ENOTFOUND, "%s not found", id.Slug)
	}
	return &page{id: id, doc: doc, content: content}, nil
}

// title returns the entity name shown in the page heading.
func (p *page) title() string {
	return strings.TrimSpace(p.content.Find("h1").First().Text())
}

// enTitle returns the English name, read from the translation link on
// pages that are not in English.
func (p *page) enTitle() string {
	if p.id.Lang == spellcards.English {
		return p.title()
	}
	return strings.TrimSpace(p.content.Find("div.trad a").First().Text())
}

// property returns the trimmed text of the div with the given class, with
// non-breaking spaces replaced by plain spaces.
func (p *page) property(class string) string {
	text := p.content.Find("div." + class).First().Text()
	return strings.TrimSpace(strings.ReplaceAll(text, "\u00a0", " "))
}

// labeled returns a property with its label removed.
func (p *page) labeled(class, label string) string {
	text := strings.Replace(p.property(class), label, "", 1)
	return strings.TrimSpace(text)
}

// textBlock returns the normalized text of the div with the given class.
func (p *page) textBlock(class string) ([]string, error) {
	return TextBlock(p.content.Find("div." + class))
}

// capitalize upper-cases the first letter of s and lower-cases the rest,
// so fields read the same whatever casing the page uses.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
