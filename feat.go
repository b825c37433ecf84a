package spellcards

// Feat represents a scraped feat.
type Feat struct {
	Lang         Language `json:"lang"`
	Title        string   `json:"title"`
	Text         []string `json:"text"`
	Prerequisite string   `json:"prerequisite,omitempty"`
}

// HasPrerequisite reports whether the feat page listed a prerequisite.
func (f *Feat) HasPrerequisite() bool {
	return f.Prerequisite != ""
}

// Validate returns an error if the feat contains invalid fields.
func (f *Feat) Validate() error {
	if f.Title == "" {
		return Errorf(EINVALID, "feat title required")
	}
	return nil
}
