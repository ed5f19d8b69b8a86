package entities

import "time"

// DefaultMasteryThreshold is the number of correct answers after which a
// word counts as mastered.
const DefaultMasteryThreshold = 3

// WordProgress tracks how a user does on a single lexicon entry.
type WordProgress struct {
	UserID          int64
	Entry           EntryKey
	Attempts        int
	CorrectCount    int
	BestScore       int
	Mastered        bool
	LastPracticedAt *time.Time // nullable
}

// NewWordProgress creates empty progress for entry.
func NewWordProgress(userID int64, entry EntryKey) *WordProgress {
	return &WordProgress{
		UserID: userID,
		Entry:  entry,
	}
}

// Record applies a verdict to the progress. A word becomes mastered once it
// was answered correctly masteryThreshold times and stays mastered.
func (p *WordProgress) Record(v MatchVerdict, masteryThreshold int, now time.Time) {
	p.Attempts++
	if v.IsCorrect {
		p.CorrectCount++
	}
	p.BestScore = max(p.BestScore, v.SimilarityScore)
	if masteryThreshold <= 0 {
		masteryThreshold = DefaultMasteryThreshold
	}
	if p.CorrectCount >= masteryThreshold {
		p.Mastered = true
	}
	p.LastPracticedAt = &now
}

// PracticeStats summarises a user's practice history.
type PracticeStats struct {
	TotalAttempts  int
	Correct        int
	Exact          int
	Alternate      int
	Partial        int
	None           int
	AverageScore   float64
	WordsPracticed int
	WordsMastered  int
}

// Accuracy returns the share of correct attempts in percent.
func (s *PracticeStats) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.TotalAttempts) * 100
}
