package entities

// MatchType classifies how a recognized utterance relates to the expected entry.
type MatchType string

const (
	MatchExact     MatchType = "exact"
	MatchAlternate MatchType = "alternate"
	MatchPartial   MatchType = "partial"
	MatchNone      MatchType = "none"
)

// IsValid reports whether t is one of the known match types.
func (t MatchType) IsValid() bool {
	switch t {
	case MatchExact, MatchAlternate, MatchPartial, MatchNone:
		return true
	default:
		return false
	}
}

// Feedback is the learner-facing grade of a verdict.
type Feedback string

const (
	FeedbackPerfect  Feedback = "perfect"
	FeedbackAccepted Feedback = "accepted"
	FeedbackClose    Feedback = "close"
	FeedbackMiss     Feedback = "miss"
)

// MatchVerdict is the result of comparing a recognized utterance with an
// expected lexicon entry. It is built once per comparison and never mutated.
type MatchVerdict struct {
	IsCorrect       bool          // true only for exact and alternate matches
	MatchType       MatchType     // how the utterance matched
	MatchedItem     *LexiconEntry // entry actually matched, nil for MatchNone
	SimilarityScore int           // closeness in [0, 100]
}

// NewVerdict builds a verdict keeping IsCorrect consistent with matchType.
func NewVerdict(matchType MatchType, matched *LexiconEntry, score int) MatchVerdict {
	if matchType == MatchNone {
		matched = nil
	}
	return MatchVerdict{
		IsCorrect:       matchType == MatchExact || matchType == MatchAlternate,
		MatchType:       matchType,
		MatchedItem:     matched,
		SimilarityScore: min(max(score, 0), 100),
	}
}

// Feedback maps the verdict to a learner-facing grade.
func (v MatchVerdict) Feedback() Feedback {
	switch v.MatchType {
	case MatchExact:
		return FeedbackPerfect
	case MatchAlternate:
		return FeedbackAccepted
	case MatchPartial:
		return FeedbackClose
	default:
		return FeedbackMiss
	}
}
