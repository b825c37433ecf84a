package spellcards

// Spell represents a scraped spell.
type Spell struct {
	Lang              Language    `json:"lang"`
	Level             int         `json:"level"` // 0 for cantrips
	Title             string      `json:"title"`
	EnTitle           string      `json:"enTitle"`
	School            MagicSchool `json:"school"`
	CastingTime       string      `json:"castingTime"`
	ReactionCondition string      `json:"reactionCondition,omitempty"`
	CastingRange      string      `json:"castingRange"`
	Verbal            bool        `json:"verbal"`
	Somatic           bool        `json:"somatic"`
	Material          bool        `json:"material"`
	PayingComponents  string      `json:"payingComponents,omitempty"`
	EffectDuration    string      `json:"effectDuration"`
	Concentration     bool        `json:"concentration"`
	Ritual            bool        `json:"ritual"`
	Tags              []string    `json:"tags"`
	Text              []string    `json:"text"`
	UpcastingText     string      `json:"upcastingText,omitempty"`
	DamageType        *DamageType `json:"damageType,omitempty"`
	Shape             *SpellShape `json:"shape,omitempty"`
}

// IsCantrip reports whether the spell is a level 0 spell.
func (s *Spell) IsCantrip() bool {
	return s.Level == 0
}

// Validate returns an error if the spell contains invalid fields or breaks
// one of the cross-field rules between casting time and components.
func (s *Spell) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "spell title required")
	}
	if s.Level < 0 || s.Level > 9 {
		return Errorf(EINVALID, "spell %q has invalid level %d", s.Title, s.Level)
	}
	if s.ReactionCondition != "" {
		locale, err := SpellLocaleFor(s.Lang)
		if err != nil {
			return err
		}
		if !locale.Reaction.MatchString(s.CastingTime) {
			return Errorf(EINVALID, "spell %q has a reaction condition but casting time %q", s.Title, s.CastingTime)
		}
	}
	if s.PayingComponents != "" && !s.Material {
		return Errorf(EINVALID, "spell %q has paying components without material component", s.Title)
	}
	return nil
}
