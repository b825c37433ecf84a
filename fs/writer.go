package fs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/spellcards"
)

// Ensure CardWriter implements spellcards.CardWriter at compile time.
var _ spellcards.CardWriter = (*CardWriter)(nil)

// CardWriter writes cards as an indented JSON array to a file.
type CardWriter struct {
	path string
}

// NewCardWriter creates a CardWriter for the file at path.
func NewCardWriter(path string) *CardWriter {
	return &CardWriter{path: path}
}

// WriteCards replaces the output file with cards. Non-ASCII text is written
// as UTF-8 rather than escaped.
func (w *CardWriter) WriteCards(cards []spellcards.Card) error {
	if cards == nil {
		cards = []spellcards.Card{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return writeAtomic(w.path, buf.Bytes())
}
