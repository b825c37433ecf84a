package goquery

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spellcards"
)

var (
	// headerSeparator splits "niveau 3 - évocation" into level and school.
	headerSeparator = regexp.MustCompile(`\s+[-–]\s+`)

	componentsParenthetical = regexp.MustCompile(`\((.+)\)`)
	leadingPeriod           = regexp.MustCompile(`^\. `)
)

// ParseSpell extracts a spell. Fields are read in a fixed order: level,
// school and ritual, duration and concentration, range and casting time,
// components, description, damage type and shape.
func (p *Parser) ParseSpell(id spellcards.Identifier, html string) (*spellcards.Spell, error) {
	locale, err := spellcards.SpellLocaleFor(id.Lang)
	if err != nil {
		return nil, err
	}
	pg, err := newPage(id, html)
	if err != nil {
		return nil, err
	}

	header := headerSeparator.Split(pg.property("ecole"), 2)
	if len(header) != 2 {
		return nil, spellcards.Errorf(spellcards.ENOTFOUND, "%s: level and school header not found", id.Slug)
	}
	level, err := parseLevel(header[0], locale)
	if err != nil {
		return nil, err
	}
	school, ritual, err := parseSchool(header[1], id.Lang, locale)
	if err != nil {
		return nil, err
	}

	duration, concentration := parseDuration(pg.labeled("d", locale.DurationLabel), locale)
	castingRange := capitalize(pg.labeled("r", locale.RangeLabel))
	castingTime, reactionCondition := parseCastingTime(pg.labeled("t", locale.CastingTimeLabel), locale)
	verbal, somatic, material, paying := parseComponents(pg.labeled("c", locale.ComponentsLabel), locale)

	description, err := pg.textBlock("description")
	if err != nil {
		return nil, err
	}
	text, upcasting := splitUpcasting(description, locale.UpcastingIndicator)

	damage, err := parseDamageType(text, id.Lang, locale)
	if err != nil {
		return nil, err
	}

	enTitle := pg.enTitle()
	shape, err := p.shape(enTitle)
	if err != nil {
		return nil, err
	}

	spell := &spellcards.Spell{
		Lang:              id.Lang,
		Level:             level,
		Title:             pg.title(),
		EnTitle:           enTitle,
		School:            school,
		CastingTime:       castingTime,
		ReactionCondition: reactionCondition,
		CastingRange:      castingRange,
		Verbal:            verbal,
		Somatic:           somatic,
		Material:          material,
		PayingComponents:  paying,
		EffectDuration:    duration,
		Concentration:     concentration,
		Ritual:            ritual,
		Tags:              classTags(pg.content),
		Text:              text,
		UpcastingText:     upcasting,
		DamageType:        damage,
		Shape:             shape,
	}
	if err := spell.Validate(); err != nil {
		return nil, err
	}
	return spell, nil
}

func parseLevel(s string, locale spellcards.SpellLocale) (int, error) {
	s = strings.TrimSpace(strings.Replace(strings.ToLower(s), locale.LevelWord, "", 1))
	level, err := strconv.Atoi(s)
	if err != nil {
		return 0, spellcards.Errorf(spellcards.EINVALID, "invalid spell level %q", s)
	}
	return level, nil
}

// parseSchool resolves the school and strips the ritual marker from it.
func parseSchool(s string, lang spellcards.Language, locale spellcards.SpellLocale) (spellcards.MagicSchool, bool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	ritual := false
	if locale.Ritual.MatchString(s) {
		s = strings.TrimSpace(locale.Ritual.ReplaceAllString(s, ""))
		ritual = true
	}
	school, err := spellcards.ParseMagicSchool(s, lang)
	return school, ritual, err
}

func parseDuration(s string, locale spellcards.SpellLocale) (string, bool) {
	concentration := false
	if loc := locale.Concentration.FindStringIndex(s); loc != nil {
		s = strings.TrimSpace(s[:loc[0]] + s[loc[1]:])
		concentration = true
	}
	return capitalize(s), concentration
}

// parseCastingTime splits a reaction casting time from its trigger. The
// trigger is the exact remainder after the reaction prefix.
func parseCastingTime(s string, locale spellcards.SpellLocale) (string, string) {
	s = capitalize(s)
	prefix := locale.Reaction.FindString(s)
	if prefix == "" {
		return s, ""
	}
	return prefix, s[len(prefix):]
}

// parseComponents reads the V, S and M flags. The material description is
// kept only when it carries a cost.
func parseComponents(s string, locale spellcards.SpellLocale) (verbal, somatic, material bool, paying string) {
	letters := strings.Split(strings.TrimSpace(componentsParenthetical.ReplaceAllString(s, "")), ",")
	for i := range letters {
		letters[i] = strings.TrimSpace(letters[i])
	}
	verbal = slices.Contains(letters, "V")
	somatic = slices.Contains(letters, "S")
	material = slices.Contains(letters, "M")
	if !material {
		return verbal, somatic, material, ""
	}

	m := componentsParenthetical.FindStringSubmatch(s)
	if m == nil || !strings.Contains(m[1], locale.CostIndicator) {
		return verbal, somatic, material, ""
	}
	paying = capitalize(strings.TrimSpace(m[1]))
	if !strings.HasSuffix(paying, ".") {
		paying += "."
	}
	return verbal, somatic, material, paying
}

// splitUpcasting cuts the description at the "at higher levels" fragment.
// Fragments after it form the upcasting text, one per line.
func splitUpcasting(text []string, indicator string) ([]string, string) {
	idx := slices.IndexFunc(text, func(s string) bool {
		return strings.TrimSpace(s) == indicator
	})
	if idx < 0 {
		return text, ""
	}

	parts := make([]string, 0, len(text)-idx-1)
	for _, part := range text[idx+1:] {
		parts = append(parts, leadingPeriod.ReplaceAllString(part, ""))
	}
	return text[:idx:idx], strings.Join(parts, "\n")
}

func parseDamageType(text []string, lang spellcards.Language, locale spellcards.SpellLocale) (*spellcards.DamageType, error) {
	m := locale.Damage.FindStringSubmatch(strings.Join(text, "\n"))
	if m == nil {
		return nil, nil
	}
	noun := strings.TrimRight(m[locale.Damage.SubexpIndex("dmg")], "s")
	damage, err := spellcards.ParseDamageType(noun, lang)
	if err != nil {
		return nil, err
	}
	return &damage, nil
}

// shape returns the first area shape tagged for the spell. When several
// shapes are tagged, the first one wins.
func (p *Parser) shape(enTitle string) (*spellcards.SpellShape, error) {
	if p.areas == nil || enTitle == "" {
		return nil, nil
	}
	for _, tag := range p.areas.AreaTags(enTitle) {
		if tag == spellcards.AreaTagSingleTarget || tag == spellcards.AreaTagMultipleTarget {
			continue
		}
		shape, err := spellcards.ParseShapeTag(tag)
		if err != nil {
			return nil, err
		}
		return &shape, nil
	}
	return nil, nil
}

// classTags returns the names of the classes that can use the spell.
func classTags(content *goquery.Selection) []string {
	var tags []string
	content.Find("div.classe").Each(func(_ int, s *goquery.Selection) {
		if tag := strings.TrimSpace(s.Text()); tag != "" {
			tags = append(tags, tag)
		}
	})
	return tags
}
