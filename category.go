package spellcards

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MagicSchool is a school of magic.
type MagicSchool string

// Schools of magic.
const (
	SchoolAbjuration    MagicSchool = "abjuration"
	SchoolConjuration   MagicSchool = "conjuration"
	SchoolDivination    MagicSchool = "divination"
	SchoolEnchantment   MagicSchool = "enchantment"
	SchoolEvocation     MagicSchool = "evocation"
	SchoolIllusion      MagicSchool = "illusion"
	SchoolNecromancy    MagicSchool = "necromancy"
	SchoolTransmutation MagicSchool = "transmutation"
)

var magicSchools = newSynonyms(map[Language]map[string]MagicSchool{
	French: {
		"abjuration":    SchoolAbjuration,
		"invocation":    SchoolConjuration,
		"divination":    SchoolDivination,
		"enchantement":  SchoolEnchantment,
		"évocation":     SchoolEvocation,
		"illusion":      SchoolIllusion,
		"nécromancie":   SchoolNecromancy,
		"transmutation": SchoolTransmutation,
	},
	English: {
		"abjuration":    SchoolAbjuration,
		"conjuration":   SchoolConjuration,
		"divination":    SchoolDivination,
		"enchantment":   SchoolEnchantment,
		"evocation":     SchoolEvocation,
		"illusion":      SchoolIllusion,
		"necromancy":    SchoolNecromancy,
		"transmutation": SchoolTransmutation,
	},
})

// ParseMagicSchool resolves a displayed school name.
// Returns EMAPPING if the name is not in the language's table.
func ParseMagicSchool(text string, lang Language) (MagicSchool, error) {
	return magicSchools.lookup("magic school", text, lang)
}

// DamageType is a category of damage.
type DamageType string

// Damage types.
const (
	DamageAcid        DamageType = "acid"
	DamageBludgeoning DamageType = "bludgeoning"
	DamageCold        DamageType = "cold"
	DamageFire        DamageType = "fire"
	DamageForce       DamageType = "force"
	DamageLightning   DamageType = "lightning"
	DamageNecrotic    DamageType = "necrotic"
	DamagePiercing    DamageType = "piercing"
	DamagePoison      DamageType = "poison"
	DamagePsychic     DamageType = "psychic"
	DamageRadiant     DamageType = "radiant"
	DamageSlashing    DamageType = "slashing"
	DamageThunder     DamageType = "thunder"
)

var damageTypes = newSynonyms(map[Language]map[string]DamageType{
	French: {
		"acide":      DamageAcid,
		"contondant": DamageBludgeoning,
		"froid":      DamageCold,
		"feu":        DamageFire,
		"force":      DamageForce,
		"foudre":     DamageLightning,
		"nécrotique": DamageNecrotic,
		"perforant":  DamagePiercing,
		"poison":     DamagePoison,
		"psychique":  DamagePsychic,
		"radiant":    DamageRadiant,
		"tranchant":  DamageSlashing,
		"tonnerre":   DamageThunder,
	},
	English: {
		"acid":        DamageAcid,
		"bludgeoning": DamageBludgeoning,
		"cold":        DamageCold,
		"fire":        DamageFire,
		"force":       DamageForce,
		"lightning":   DamageLightning,
		"necrotic":    DamageNecrotic,
		"piercing":    DamagePiercing,
		"poison":      DamagePoison,
		"psychic":     DamagePsychic,
		"radiant":     DamageRadiant,
		"slashing":    DamageSlashing,
		"thunder":     DamageThunder,
	},
})

// ParseDamageType resolves a displayed damage type noun.
// Returns EMAPPING if the noun is not in the language's table.
func ParseDamageType(text string, lang Language) (DamageType, error) {
	return damageTypes.lookup("damage type", text, lang)
}

// SpellShape is the geometric shape of a spell's area of effect.
type SpellShape string

// Area of effect shapes.
const (
	ShapeCircle     SpellShape = "circle"
	ShapeCone       SpellShape = "cone"
	ShapeCube       SpellShape = "cube"
	ShapeCylinder   SpellShape = "cylinder"
	ShapeHemisphere SpellShape = "hemisphere"
	ShapeLine       SpellShape = "line"
	ShapeSphere     SpellShape = "sphere"
	ShapeSquare     SpellShape = "square"
	ShapeWall       SpellShape = "wall"
)

// Area tags that name targets rather than shapes.
const (
	AreaTagSingleTarget   = "ST"
	AreaTagMultipleTarget = "MT"
)

var shapeTags = map[string]SpellShape{
	"R": ShapeCircle,
	"N": ShapeCone,
	"C": ShapeCube,
	"Y": ShapeCylinder,
	"H": ShapeHemisphere,
	"L": ShapeLine,
	"S": ShapeSphere,
	"Q": ShapeSquare,
	"W": ShapeWall,
}

// ParseShapeTag resolves a spell area tag of the 5esheets reference table
// (e.g. "N" for cone). Returns EMAPPING for unknown tags.
func ParseShapeTag(tag string) (SpellShape, error) {
	shape, ok := shapeTags[tag]
	if !ok {
		return "", Errorf(EMAPPING, "unknown area tag %q", tag)
	}
	return shape, nil
}

// synonyms maps folded display strings to categories, per language.
type synonyms[T ~string] map[Language]map[string]T

func newSynonyms[T ~string](tables map[Language]map[string]T) synonyms[T] {
	s := make(synonyms[T], len(tables))
	for lang, table := range tables {
		folded := make(map[string]T, len(table))
		for text, v := range table {
			folded[Fold(text)] = v
		}
		s[lang] = folded
	}
	return s
}

func (s synonyms[T]) lookup(category, text string, lang Language) (T, error) {
	if v, ok := s[lang][Fold(text)]; ok {
		return v, nil
	}
	var zero T
	return zero, Errorf(EMAPPING, "no %s matches %q (%s)", category, text, lang)
}

// Fold normalizes text for table lookups: accents are removed, letters
// lower-cased and runs of whitespace collapsed to a single space.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.Join(strings.Fields(strings.ToLower(result)), " ")
}
