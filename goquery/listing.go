package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spellcards"
)

// ListingLanguage is the language of the slugs linked from the spell listing.
const ListingLanguage = spellcards.French

// ParseListing returns the spells linked from the item cells of a filtered
// spell listing, in table order.
func ParseListing(html string) ([]spellcards.Identifier, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, spellcards.Errorf(spellcards.EINVALID, "failed to parse listing HTML: %v", err)
	}

	var ids []spellcards.Identifier
	var parseErr error
	doc.Find("table").First().Find("td.item").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		href, ok := cell.Find("a[href]").First().Attr("href")
		if !ok {
			parseErr = spellcards.Errorf(spellcards.EINVALID, "listing cell %q has no link", strings.TrimSpace(cell.Text()))
			return false
		}
		u, err := url.Parse(href)
		if err != nil {
			parseErr = spellcards.Errorf(spellcards.EINVALID, "invalid listing link %q: %v", href, err)
			return false
		}
		slug := u.Query().Get("vf")
		if slug == "" {
			parseErr = spellcards.Errorf(spellcards.EINVALID, "listing link %q has no vf parameter", href)
			return false
		}
		ids = append(ids, spellcards.Identifier{Lang: ListingLanguage, Slug: slug})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return ids, nil
}
