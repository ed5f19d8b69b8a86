// Package matcher grades a recognized utterance against an expected lexicon
// entry.
//
// Rules are applied in order and the first one that fires decides the verdict:
//
//  1. Exact: the normalized utterance equals the entry's transliteration, or
//     its Arabic script when the utterance is written in Arabic.
//  2. Alternate form: it equals one of the entry's alternate forms.
//  3. Cross-lexicon: it equals another entry of the lexicon that is related
//     to the expected one (same English gloss, or listed as an alternate form
//     by either entry). The first such entry in lexicon order wins.
//  4. Fuzzy: the best [Similarity] against the entry's forms is at least the
//     accept threshold (alternate, correct) or the partial threshold
//     (partial, incorrect).
//  5. Otherwise the verdict is none and carries the best similarity found.
//
// A Matcher holds only configuration and is safe for concurrent use.
package matcher

import (
	"strings"

	"github.com/aliskhannn/arabizi-coach/internal/arabizi"
	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
)

const (
	DefaultAcceptThreshold  = 70
	DefaultPartialThreshold = 30
)

// Option is a functional option for configuring a [Matcher].
type Option func(*Matcher)

// WithAcceptThreshold sets the minimum similarity at which a fuzzy match is
// accepted as a correct alternate. Default: 70.
func WithAcceptThreshold(threshold int) Option {
	return func(m *Matcher) {
		m.acceptThreshold = threshold
	}
}

// WithPartialThreshold sets the minimum similarity reported as a partial
// match. Default: 30.
func WithPartialThreshold(threshold int) Option {
	return func(m *Matcher) {
		m.partialThreshold = threshold
	}
}

// WithCrossLexicon toggles the search for related entries in the lexicon.
// Enabled by default.
func WithCrossLexicon(enabled bool) Option {
	return func(m *Matcher) {
		m.crossLexicon = enabled
	}
}

// Matcher decides whether a recognized utterance satisfies an expected answer.
type Matcher struct {
	acceptThreshold  int
	partialThreshold int
	crossLexicon     bool
}

// New returns a [Matcher] configured with the supplied options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		acceptThreshold:  DefaultAcceptThreshold,
		partialThreshold: DefaultPartialThreshold,
		crossLexicon:     true,
	}
	for _, o := range opts {
		o(m)
	}
	if m.partialThreshold > m.acceptThreshold {
		m.partialThreshold = m.acceptThreshold
	}
	return m
}

var defaultMatcher = New()

// CheckPronunciation grades recognized against expected using the default
// thresholds. See [Matcher.Check].
func CheckPronunciation(recognized string, expected entities.LexiconEntry, lexicon entities.Lexicon) entities.MatchVerdict {
	return defaultMatcher.Check(recognized, expected, lexicon)
}

// Check grades recognized against expected. It never fails: unusable input
// yields a none verdict with a zero score.
func (m *Matcher) Check(recognized string, expected entities.LexiconEntry, lexicon entities.Lexicon) entities.MatchVerdict {
	said := arabizi.Normalize(recognized)
	if said == "" {
		return entities.NewVerdict(entities.MatchNone, nil, 0)
	}
	arabic := arabizi.ContainsArabic(said)

	if equalsNonEmpty(said, expected.Transliteration) ||
		(arabic && equalsNonEmpty(said, expected.ArabicScript)) {
		return entities.NewVerdict(entities.MatchExact, &expected, 100)
	}

	for _, form := range expected.AlternateForms {
		if equalsNonEmpty(said, form) {
			return entities.NewVerdict(entities.MatchAlternate, &expected, 100)
		}
	}

	if m.crossLexicon {
		if related, ok := findRelated(said, expected, lexicon); ok {
			return entities.NewVerdict(entities.MatchAlternate, &related, 100)
		}
	}

	score := bestSimilarity(said, expected, arabic)
	switch {
	case score >= m.acceptThreshold:
		return entities.NewVerdict(entities.MatchAlternate, &expected, score)
	case score >= m.partialThreshold:
		return entities.NewVerdict(entities.MatchPartial, &expected, score)
	default:
		return entities.NewVerdict(entities.MatchNone, nil, score)
	}
}

// findRelated returns the first lexicon entry, other than expected, whose
// transliteration or script equals said and which is related to expected.
func findRelated(said string, expected entities.LexiconEntry, lexicon entities.Lexicon) (entities.LexiconEntry, bool) {
	for _, candidate := range lexicon {
		if strings.TrimSpace(candidate.Transliteration) == "" || candidate.SameItem(expected) {
			continue
		}
		if !equalsNonEmpty(said, candidate.Transliteration) && !equalsNonEmpty(said, candidate.ArabicScript) {
			continue
		}
		if related(expected, candidate) {
			return candidate, true
		}
	}
	return entities.LexiconEntry{}, false
}

// related reports whether two entries describe the same concept: they share
// an English gloss, or one lists the other among its alternate forms.
func related(a, b entities.LexiconEntry) bool {
	if arabizi.Equal(a.EnglishGloss, b.EnglishGloss) {
		return true
	}
	return listsForm(a, b) || listsForm(b, a)
}

// listsForm reports whether owner's alternate forms include other's
// transliteration or script.
func listsForm(owner, other entities.LexiconEntry) bool {
	for _, form := range owner.AlternateForms {
		if arabizi.Equal(form, other.Transliteration) || arabizi.Equal(form, other.ArabicScript) {
			return true
		}
	}
	return false
}

// bestSimilarity is the highest similarity of said against the forms of
// expected. The Arabic script only competes when said is written in Arabic.
func bestSimilarity(said string, expected entities.LexiconEntry, arabic bool) int {
	forms := make([]string, 0, len(expected.AlternateForms)+2)
	forms = append(forms, expected.Transliteration)
	forms = append(forms, expected.AlternateForms...)
	if arabic {
		forms = append(forms, expected.ArabicScript)
	}

	var best int
	for _, form := range forms {
		if s := Similarity(said, form); s > best {
			best = s
		}
	}
	return best
}

// equalsNonEmpty compares an already normalized string with a raw one.
func equalsNonEmpty(normalized, raw string) bool {
	return normalized != "" && normalized == arabizi.Normalize(raw)
}
