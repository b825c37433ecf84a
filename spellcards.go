// Package spellcards scrapes spells, magic items and feats from the aidedd.org
// reference site and turns them into typed records ready to be printed as
// cards. Pages are published in French and English; every extraction rule is
// parameterized by a per-language rule table.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package spellcards
