package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spellcards"
)

// ContentHTML returns the markup of the content region of a page.
// Returns ENOTFOUND if the page has no content region.
func ContentHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", spellcards.Errorf(spellcards.EINVALID, "failed to parse HTML: %v", err)
	}
	content := doc.Find("div.content").First()
	if content.Length() == 0 {
		return "", spellcards.Errorf(spellcards.ENOTFOUND, "content region not found")
	}
	return goquery.OuterHtml(content)
}
