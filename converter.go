package spellcards

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms the content region of a page into Markdown.
	Convert(html string) (string, error)
}
