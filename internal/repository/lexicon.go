package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aliskhannn/arabizi-coach/internal/arabizi"
	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
)

var (
	ErrEntryNotFound = errors.New("lexicon entry not found")
	ErrEmptyLexicon  = errors.New("lexicon has no usable entries")
)

// LexiconRepository provides read-only access to the vocabulary lexicon.
// The lexicon is loaded and validated once; it is never modified afterwards.
type LexiconRepository struct {
	entries  entities.Lexicon
	byArabic map[string]int // normalized Arabic script -> index of the first entry
}

// NewLexiconRepository loads the lexicon from the JSON file at path.
func NewLexiconRepository(path string) (*LexiconRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	return NewLexiconRepositoryFromJSON(data)
}

// NewLexiconRepositoryFromJSON builds the repository from raw JSON of the form
// {"entries": [{"arabic": "...", "chat": "...", "english": "...", "alternates": [...]}]}.
func NewLexiconRepositoryFromJSON(data []byte) (*LexiconRepository, error) {
	var wrapper struct {
		Entries []entities.LexiconEntry `json:"entries"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lexicon JSON: %w", err)
	}

	return NewLexiconRepositoryFromEntries(wrapper.Entries)
}

// NewLexiconRepositoryFromEntries validates entries and builds the repository.
// Fields are trimmed, blank alternate forms dropped, entries without both a
// transliteration and a script skipped and duplicates (same script and
// transliteration) reduced to their first occurrence.
func NewLexiconRepositoryFromEntries(raw []entities.LexiconEntry) (*LexiconRepository, error) {
	seen := make(map[entities.EntryKey]struct{}, len(raw))
	entries := make(entities.Lexicon, 0, len(raw))

	for _, e := range raw {
		e = cleanEntry(e)
		if e.ArabicScript == "" && e.Transliteration == "" {
			continue
		}
		if _, dup := seen[e.Key()]; dup {
			continue
		}
		seen[e.Key()] = struct{}{}
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyLexicon
	}

	byArabic := make(map[string]int, len(entries))
	for i, e := range entries {
		key := arabizi.Normalize(e.ArabicScript)
		if key == "" {
			continue
		}
		if _, ok := byArabic[key]; !ok {
			byArabic[key] = i
		}
	}

	return &LexiconRepository{
		entries:  entries,
		byArabic: byArabic,
	}, nil
}

func cleanEntry(e entities.LexiconEntry) entities.LexiconEntry {
	out := entities.LexiconEntry{
		ArabicScript:    strings.TrimSpace(e.ArabicScript),
		Transliteration: strings.TrimSpace(e.Transliteration),
		EnglishGloss:    strings.TrimSpace(e.EnglishGloss),
	}

	for _, form := range e.AlternateForms {
		if form = strings.TrimSpace(form); form != "" {
			out.AlternateForms = append(out.AlternateForms, form)
		}
	}

	return out
}

// Lexicon returns the loaded lexicon. Callers must not modify it.
func (r *LexiconRepository) Lexicon() entities.Lexicon {
	return r.entries
}

// Len returns the number of entries.
func (r *LexiconRepository) Len() int {
	return len(r.entries)
}

// FindByArabic retrieves the first entry written with the given Arabic script.
func (r *LexiconRepository) FindByArabic(_ context.Context, arabic string) (*entities.LexiconEntry, error) {
	idx, ok := r.byArabic[arabizi.Normalize(arabic)]
	if !ok {
		return nil, ErrEntryNotFound
	}

	e := r.entries[idx]
	return &e, nil
}
