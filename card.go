package spellcards

import "strings"

// Card is a flat key-value view of a record, serialized to JSON for the
// card renderer.
type Card map[string]any

// SpellCard converts a spell into a card.
func SpellCard(s *Spell) Card {
	c := Card{
		"kind":            string(KindSpell),
		"lang":            string(s.Lang),
		"title":           s.Title,
		"en_title":        s.EnTitle,
		"level":           s.Level,
		"school":          string(s.School),
		"casting_time":    s.CastingTime,
		"casting_range":   s.CastingRange,
		"components":      componentLetters(s),
		"effect_duration": s.EffectDuration,
		"concentration":   s.Concentration,
		"ritual":          s.Ritual,
		"tags":            s.Tags,
		"text":            s.Text,
	}
	if s.ReactionCondition != "" {
		c["reaction_condition"] = s.ReactionCondition
	}
	if s.PayingComponents != "" {
		c["paying_components"] = s.PayingComponents
	}
	if s.UpcastingText != "" {
		c["upcasting_text"] = s.UpcastingText
	}
	if s.DamageType != nil {
		c["damage_type"] = string(*s.DamageType)
	}
	if s.Shape != nil {
		c["shape"] = string(*s.Shape)
	}
	return c
}

func componentLetters(s *Spell) string {
	var letters []string
	if s.Verbal {
		letters = append(letters, "V")
	}
	if s.Somatic {
		letters = append(letters, "S")
	}
	if s.Material {
		letters = append(letters, "M")
	}
	return strings.Join(letters, ", ")
}

// LegendCardKind is the kind of the card explaining spell pictograms.
const LegendCardKind = "legend"

// SpellLegendCard returns the card explaining the symbols printed on spell
// cards. Each entry names the spell card field it describes.
func SpellLegendCard() Card {
	shapes := []string{
		string(ShapeCircle), string(ShapeCone), string(ShapeCube),
		string(ShapeCylinder), string(ShapeHemisphere), string(ShapeLine),
		string(ShapeSphere), string(ShapeSquare), string(ShapeWall),
	}
	return Card{
		"kind":  LegendCardKind,
		"title": "Spell legend",
		"entries": []map[string]string{
			{"field": "components", "symbol": "V", "text": "Verbal: the spell needs spoken words."},
			{"field": "components", "symbol": "S", "text": "Somatic: the spell needs gestures."},
			{"field": "components", "symbol": "M", "text": "Material: the spell needs a component or focus."},
			{"field": "paying_components", "text": "Costly material component, consumed or worth a minimum amount."},
			{"field": "concentration", "text": "The caster must keep concentration for the spell to last."},
			{"field": "ritual", "text": "Can be cast as a ritual, taking 10 more minutes without a spell slot."},
			{"field": "reaction_condition", "text": "Cast as a reaction when the stated trigger happens."},
			{"field": "shape", "text": "Area of effect: " + strings.Join(shapes, ", ") + "."},
		},
	}
}

// MagicItemCard converts a magic item into a card.
func MagicItemCard(m *MagicItem) Card {
	c := Card{
		"kind":       string(KindItem),
		"lang":       string(m.Lang),
		"title":      m.Title,
		"type":       string(m.Type),
		"rarity":     string(m.Rarity),
		"color":      m.Color,
		"attunement": m.Attunement,
		"text":       m.Text,
		"recharges":  m.Recharges,
	}
	if m.ImageURL != "" {
		c["image_url"] = m.ImageURL
	}
	return c
}

// FeatCard converts a feat into a card.
func FeatCard(f *Feat) Card {
	c := Card{
		"kind":  string(KindFeat),
		"lang":  string(f.Lang),
		"title": f.Title,
		"text":  f.Text,
	}
	if f.HasPrerequisite() {
		c["prerequisite"] = f.Prerequisite
	}
	return c
}

// CardWriter persists cards.
type CardWriter interface {
	WriteCards(cards []Card) error
}
