package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// unwrapSelector matches inline wrappers whose children are spliced into
// their parent.
const unwrapSelector = "a, span, em, i, ul, ol"

// TextBlock flattens a content subtree into its text fragments in document
// order. Emphasis is rendered as _text_, list items are prefixed with "• ",
// and links and inline wrappers are removed while keeping their text.
// Whitespace-only fragments are dropped. The selection is not modified.
func TextBlock(sel *goquery.Selection) ([]string, error) {
	if sel.Length() == 0 {
		return nil, nil
	}

	clone := sel.First().Clone()

	clone.Find("em, i").Each(func(_ int, s *goquery.Selection) {
		s.SetText("_" + s.Text() + "_")
	})
	clone.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.SetText("• " + s.Text())
	})
	clone.Find(unwrapSelector).Each(func(_ int, s *goquery.Selection) {
		if s.Contents().Length() == 0 {
			s.Remove()
			return
		}
		s.ReplaceWithSelection(s.Contents())
	})

	// Unwrapping leaves sibling text nodes that the parser would have
	// merged; a render/parse round trip normalizes them.
	rendered, err := goquery.OuterHtml(clone)
	if err != nil {
		return nil, err
	}
	root, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		return nil, err
	}
	return textNodes(root), nil
}

// textNodes returns the non-blank text nodes under n in depth-first order.
func textNodes(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			if strings.TrimSpace(cur.Data) != "" {
				out = append(out, cur.Data)
			}
			return
		}
		if cur.Type == html.ElementNode && (cur.Data == "script" || cur.Data == "style") {
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
