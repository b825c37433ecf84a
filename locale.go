package spellcards

import "regexp"

// SpellLocale holds the language-specific labels, indicator phrases and
// patterns used to extract spell fields from a page.
type SpellLocale struct {
	// LevelWord precedes the level number in the school header ("niveau 3").
	LevelWord string

	// Property labels, stripped from the property text.
	CastingTimeLabel string
	RangeLabel       string
	ComponentsLabel  string
	DurationLabel    string

	// UpcastingIndicator is the exact description fragment that introduces
	// the "at higher levels" section.
	UpcastingIndicator string

	// CostIndicator marks a material component with a gold piece cost.
	CostIndicator string

	// Concentration matches the prefix of durations of concentration spells.
	Concentration *regexp.Regexp

	Ritual   *regexp.Regexp
	Reaction *regexp.Regexp

	// Damage captures the damage type noun in its "dmg" group.
	Damage *regexp.Regexp
}

// ItemLocale holds the language-specific phrases used to extract magic items.
type ItemLocale struct {
	AttunementIndicator string

	// Attunement matches the parenthetical attunement clause, qualifier
	// included, within the rarity text.
	Attunement *regexp.Regexp

	// Armor and Weapon are matched against the lower-cased type text before
	// falling back to the kind synonym table.
	Armor  *regexp.Regexp
	Weapon *regexp.Regexp

	Charges *regexp.Regexp
}

var spellLocales = map[Language]SpellLocale{
	French: {
		LevelWord:          "niveau",
		CastingTimeLabel:   "Temps d'incantation :",
		RangeLabel:         "Portée :",
		ComponentsLabel:    "Composantes :",
		DurationLabel:      "Durée :",
		UpcastingIndicator: "Aux niveaux supérieurs",
		CostIndicator:      "valant au moins",
		Concentration:      regexp.MustCompile(`(?i)concentration, `),
		Ritual:             regexp.MustCompile(`\(rituel\)`),
		Reaction:           regexp.MustCompile(`^\d+ réactions?`),
		Damage:             regexp.MustCompile(`dégâts (de |d')?(type )?(?P<dmg>[^\.\sà,]+)s?`),
	},
	English: {
		LevelWord:          "level",
		CastingTimeLabel:   "Casting Time:",
		RangeLabel:         "Range:",
		ComponentsLabel:    "Components:",
		DurationLabel:      "Duration:",
		UpcastingIndicator: "At Higher Levels",
		CostIndicator:      "worth at least",
		Concentration:      regexp.MustCompile(`(?i)concentration, `),
		Ritual:             regexp.MustCompile(`\(ritual\)`),
		Reaction:           regexp.MustCompile(`^\d+ reactions?`),
		Damage:             regexp.MustCompile(`(?P<dmg>\w+) damage`),
	},
}

var itemLocales = map[Language]ItemLocale{
	French: {
		AttunementIndicator: "nécessite un lien",
		Attunement:          regexp.MustCompile(`\s*\(nécessite un lien[^)]*\)`),
		Armor:               regexp.MustCompile(`^armure`),
		Weapon:              regexp.MustCompile(`^arme\b`),
		Charges:             regexp.MustCompile(`(\d+) charges`),
	},
	English: {
		AttunementIndicator: "requires attunement",
		Attunement:          regexp.MustCompile(`\s*\(requires attunement[^)]*\)`),
		Armor:               regexp.MustCompile(`^armor`),
		Weapon:              regexp.MustCompile(`^weapon`),
		Charges:             regexp.MustCompile(`(\d+) charges`),
	},
}

// SpellLocaleFor returns the spell rule table for a language.
func SpellLocaleFor(lang Language) (SpellLocale, error) {
	l, ok := spellLocales[lang]
	if !ok {
		return SpellLocale{}, Errorf(EINVALID, "no spell rules for language %q", lang)
	}
	return l, nil
}

// ItemLocaleFor returns the magic item rule table for a language.
func ItemLocaleFor(lang Language) (ItemLocale, error) {
	l, ok := itemLocales[lang]
	if !ok {
		return ItemLocale{}, Errorf(EINVALID, "no magic item rules for language %q", lang)
	}
	return l, nil
}
