package entities

import (
	"time"
)

// PracticePrompt is the word a user is currently asked to say.
type PracticePrompt struct {
	UserID    int64
	Entry     LexiconEntry
	Mode      PromptMode
	Attempts  int // answers given for this prompt so far
	CreatedAt time.Time
}

// NewPracticePrompt creates a prompt for entry.
func NewPracticePrompt(userID int64, entry LexiconEntry, mode PromptMode) *PracticePrompt {
	return &PracticePrompt{
		UserID:    userID,
		Entry:     entry,
		Mode:      mode,
		CreatedAt: time.Now(),
	}
}

// Question returns the text shown to the user for this prompt.
func (p *PracticePrompt) Question() string {
	if p.Mode == PromptModeArabic && p.Entry.ArabicScript != "" {
		return p.Entry.ArabicScript
	}
	if p.Entry.EnglishGloss != "" {
		return p.Entry.EnglishGloss
	}
	return p.Entry.ArabicScript
}

// PracticeAttempt is one graded answer of a user.
type PracticeAttempt struct {
	ID             int64
	UserID         int64
	Expected       EntryKey     // entry the user was asked for
	RecognizedText string       // what the user said or typed
	Verdict        MatchVerdict // grading result
	AttemptedAt    time.Time
}

// NewPracticeAttempt records verdict for the prompt's entry.
func NewPracticeAttempt(userID int64, expected LexiconEntry, recognized string, verdict MatchVerdict) *PracticeAttempt {
	return &PracticeAttempt{
		UserID:         userID,
		Expected:       expected.Key(),
		RecognizedText: recognized,
		Verdict:        verdict,
		AttemptedAt:    time.Now(),
	}
}

// MatchedTransliteration returns the transliteration of the matched entry,
// or an empty string when nothing matched.
func (a *PracticeAttempt) MatchedTransliteration() string {
	if a.Verdict.MatchedItem == nil {
		return ""
	}
	return a.Verdict.MatchedItem.Transliteration
}
