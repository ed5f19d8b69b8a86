package entities

// LexiconEntry is a single vocabulary item of the lexicon.
// ArabicScript may be empty for transliteration-only entries.
type LexiconEntry struct {
	ArabicScript    string   `json:"arabic"`     // canonical Arabic-script form
	Transliteration string   `json:"chat"`       // primary Arabizi rendering, e.g. "ashoofik"
	EnglishGloss    string   `json:"english"`    // English meaning, not used for matching
	AlternateForms  []string `json:"alternates"` // dialectal or grammatical variants of the same word
}

// EntryKey identifies a lexical item.
type EntryKey struct {
	ArabicScript    string
	Transliteration string
}

// Key returns the identity pair of the entry.
func (e LexiconEntry) Key() EntryKey {
	return EntryKey{
		ArabicScript:    e.ArabicScript,
		Transliteration: e.Transliteration,
	}
}

// SameItem reports whether both entries describe the same lexical item.
func (e LexiconEntry) SameItem(other LexiconEntry) bool {
	return e.Key() == other.Key()
}

// Lexicon is an ordered, read-only sequence of entries.
type Lexicon []LexiconEntry
