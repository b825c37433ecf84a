package spellcards

import (
	"regexp"
	"strconv"
	"strings"
)

// MagicItemKind is the category of a magic item.
type MagicItemKind string

// Magic item kinds.
const (
	ItemArmor        MagicItemKind = "armor"
	ItemPotion       MagicItemKind = "potion"
	ItemRing         MagicItemKind = "ring"
	ItemRod          MagicItemKind = "rod"
	ItemScroll       MagicItemKind = "scroll"
	ItemStaff        MagicItemKind = "staff"
	ItemWand         MagicItemKind = "wand"
	ItemWeapon       MagicItemKind = "weapon"
	ItemWondrousItem MagicItemKind = "wondrous item"
)

var itemKinds = newSynonyms(map[Language]map[string]MagicItemKind{
	French: {
		"armure":            ItemArmor,
		"potion":            ItemPotion,
		"anneau":            ItemRing,
		"sceptre":           ItemRod,
		"parchemin":         ItemScroll,
		"bâton":             ItemStaff,
		"baguette":          ItemWand,
		"arme":              ItemWeapon,
		"objet merveilleux": ItemWondrousItem,
	},
	English: {
		"armor":         ItemArmor,
		"potion":        ItemPotion,
		"ring":          ItemRing,
		"rod":           ItemRod,
		"scroll":        ItemScroll,
		"staff":         ItemStaff,
		"wand":          ItemWand,
		"weapon":        ItemWeapon,
		"wondrous item": ItemWondrousItem,
	},
})

var trailingParenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// ParseMagicItemKind resolves a displayed item type such as "Objet merveilleux".
// A trailing parenthetical qualifier is ignored.
// Returns EMAPPING if the type is not in the language's table.
func ParseMagicItemKind(text string, lang Language) (MagicItemKind, error) {
	return itemKinds.lookup("magic item kind", trailingParenthetical.ReplaceAllString(text, ""), lang)
}

// MagicItemRarity is the rarity of a magic item.
type MagicItemRarity string

// Magic item rarities.
const (
	RarityCommon    MagicItemRarity = "common"
	RarityUncommon  MagicItemRarity = "uncommon"
	RarityRare      MagicItemRarity = "rare"
	RarityVeryRare  MagicItemRarity = "very rare"
	RarityLegendary MagicItemRarity = "legendary"
	RarityArtifact  MagicItemRarity = "artifact"
	RarityVaries    MagicItemRarity = "varies"
)

var rarityColors = map[MagicItemRarity]string{
	RarityCommon:    "242528",
	RarityUncommon:  "1fc219",
	RarityRare:      "4990e2",
	RarityVeryRare:  "9810e0",
	RarityLegendary: "fea227",
	RarityArtifact:  "be8972",
	RarityVaries:    "7a7a7a",
}

// Color returns the hex display color of the rarity, without the leading '#'.
func (r MagicItemRarity) Color() string {
	return rarityColors[r]
}

var itemRarities = newSynonyms(map[Language]map[string]MagicItemRarity{
	French: {
		"commun":          RarityCommon,
		"commune":         RarityCommon,
		"peu commun":      RarityUncommon,
		"peu commune":     RarityUncommon,
		"rare":            RarityRare,
		"très rare":       RarityVeryRare,
		"légendaire":      RarityLegendary,
		"artefact":        RarityArtifact,
		"rareté variable": RarityVaries,
	},
	English: {
		"common":        RarityCommon,
		"uncommon":      RarityUncommon,
		"rare":          RarityRare,
		"very rare":     RarityVeryRare,
		"legendary":     RarityLegendary,
		"artifact":      RarityArtifact,
		"rarity varies": RarityVaries,
	},
})

// ParseMagicItemRarity resolves a displayed rarity such as "peu commune".
// Returns EMAPPING if the rarity is not in the language's table.
func ParseMagicItemRarity(text string, lang Language) (MagicItemRarity, error) {
	return itemRarities.lookup("magic item rarity", text, lang)
}

// MagicItem represents a scraped magic item.
type MagicItem struct {
	Lang       Language        `json:"lang"`
	Title      string          `json:"title"`
	Type       MagicItemKind   `json:"type"`
	Attunement bool            `json:"attunement"`
	Rarity     MagicItemRarity `json:"rarity"`
	Color      string          `json:"color"`
	Text       []string        `json:"text"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	Recharges  int             `json:"recharges"`
}

// Validate returns an error if the magic item contains invalid fields.
func (m *MagicItem) Validate() error {
	if m.Title == "" {
		return Errorf(EINVALID, "magic item title required")
	}
	if m.Recharges < 0 {
		return Errorf(EINVALID, "magic item %q has negative recharges", m.Title)
	}
	if m.Recharges > 0 && !strings.Contains(strings.Join(m.Text, " "), strconv.Itoa(m.Recharges)+" charges") {
		return Errorf(EINVALID, "magic item %q has %d recharges but no charge phrase", m.Title, m.Recharges)
	}
	return nil
}
