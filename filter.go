package spellcards

import (
	"context"
	"strconv"
	"strings"
)

// classCodes maps French and English class names to the single-letter codes
// used by the spell listing filter.
var classCodes = map[string]string{
	"artificer":   "a",
	"artificier":  "a",
	"bard":        "b",
	"barde":       "b",
	"cleric":      "c",
	"clerc":       "c",
	"druid":       "d",
	"druide":      "d",
	"sorcerer":    "s",
	"ensorceleur": "s",
	"wizard":      "w",
	"magicien":    "w",
	"warlock":     "k",
	"occultiste":  "k",
	"paladin":     "p",
	"ranger":      "r",
	"rodeur":      "r",
}

// ClassCode returns the listing filter code of a class name in either
// language. Unknown names are returned unchanged so raw codes can be used.
func ClassCode(name string) string {
	if code, ok := classCodes[Fold(name)]; ok {
		return code
	}
	return name
}

// SpellFilter selects spells of a class within an inclusive level range.
type SpellFilter struct {
	Class    string `json:"class"`
	MinLevel int    `json:"minLevel"`
	MaxLevel int    `json:"maxLevel"`
}

// ParseSpellFilter parses the "<class>:<min-level>:<max-level>" form,
// e.g. "cleric:0:1".
func ParseSpellFilter(s string) (SpellFilter, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return SpellFilter{}, Errorf(EINVALID, "invalid spell filter %q, expected <class>:<min>:<max>", s)
	}
	minLevel, err := strconv.Atoi(parts[1])
	if err != nil {
		return SpellFilter{}, Errorf(EINVALID, "invalid minimum level %q", parts[1])
	}
	maxLevel, err := strconv.Atoi(parts[2])
	if err != nil {
		return SpellFilter{}, Errorf(EINVALID, "invalid maximum level %q", parts[2])
	}
	f := SpellFilter{
		Class:    ClassCode(parts[0]),
		MinLevel: minLevel,
		MaxLevel: maxLevel,
	}
	if err := f.Validate(); err != nil {
		return SpellFilter{}, err
	}
	return f, nil
}

// Validate returns an error if the filter contains invalid fields.
func (f SpellFilter) Validate() error {
	if f.Class == "" {
		return Errorf(EINVALID, "spell filter class required")
	}
	if f.MinLevel < 0 || f.MaxLevel > 9 || f.MinLevel > f.MaxLevel {
		return Errorf(EINVALID, "invalid spell level range %d-%d", f.MinLevel, f.MaxLevel)
	}
	return nil
}

// FilterResolver resolves a spell filter to the identifiers of matching spells.
type FilterResolver interface {
	// ResolveFilter queries the listing and returns identifiers in listing order.
	// Returns EREQUEST if the listing request does not succeed.
	ResolveFilter(ctx context.Context, filter SpellFilter) ([]Identifier, error)
}
