package fs

import (
	"encoding/json"
	"os"

	"github.com/fwojciec/spellcards"
)

// areaEntry is one spell of the reference table. Other fields of the
// export are ignored.
type areaEntry struct {
	AreaTags []string `json:"area_tags"`
}

// LoadAreaIndex reads the spell area reference table: a JSON object keyed by
// English spell name whose values carry an "area_tags" array.
func LoadAreaIndex(path string) (spellcards.AreaIndexMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]areaEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, spellcards.Errorf(spellcards.EINVALID, "invalid area table %s: %v", path, err)
	}

	index := make(spellcards.AreaIndexMap, len(entries))
	for name, entry := range entries {
		if len(entry.AreaTags) == 0 {
			continue
		}
		index[name] = entry.AreaTags
	}
	return index, nil
}

