// Package arabizi canonicalizes Arabic and Arabizi (Latin-letter Arabic) text
// so that spoken or typed answers can be compared with lexicon entries.
//
// Normalization is pure and idempotent: Normalize(Normalize(s)) == Normalize(s).
// Digits used as phoneme markers (2, 3, 5, 6, 7, 8, 9) are significant and are
// never rewritten.
package arabizi

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	tatweel = 'ـ'

	// maxRun is the longest run of one letter kept by Normalize. Doubled
	// consonants and long vowels ("shoo", "mabrook") are legitimate.
	maxRun = 2
)

// letterFolds unifies Arabic letter variants that speech recognizers and
// keyboards produce interchangeably.
var letterFolds = map[rune]rune{
	'أ': 'ا', // alef with hamza above
	'إ': 'ا', // alef with hamza below
	'آ': 'ا', // alef with madda
	'ٱ': 'ا', // alef wasla
	'ة': 'ه', // teh marbuta
	'ى': 'ي', // alef maksura
}

// Normalize returns the canonical comparable form of text.
//
// The result is lower-cased, stripped of diacritics (Latin accents, Arabic
// harakat and tatweel), punctuation and symbols, has its whitespace collapsed
// to single spaces and every run of three or more identical letters shortened
// to two. Dashes separate words, so "ar-rahman" and "ar rahman" compare equal.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	folded := fold(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(folded))

	var (
		pendingSpace bool
		last         rune
		run          int
	)

	for _, r := range folded {
		switch {
		case unicode.IsSpace(r), unicode.Is(unicode.Pd, r):
			pendingSpace = true
			run = 0
			continue
		case unicode.IsPunct(r), unicode.IsSymbol(r), unicode.IsControl(r), unicode.Is(unicode.Cf, r):
			continue
		}

		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false

		if r == last && run > 0 {
			run++
		} else {
			last, run = r, 1
		}
		if run > maxRun && unicode.IsLetter(r) {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// fold removes combining marks and tatweel and unifies Arabic letter variants.
// A fresh transformer chain is built on every call because transformers carry
// state and Normalize must be safe for concurrent use.
func fold(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(isStrippable)),
		runes.Map(foldLetter),
		norm.NFC,
	)

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return out
}

func isStrippable(r rune) bool {
	return r == tatweel || unicode.Is(unicode.Mn, r)
}

func foldLetter(r rune) rune {
	if f, ok := letterFolds[r]; ok {
		return f
	}
	return r
}

// ContainsArabic reports whether text has at least one Arabic-script letter.
func ContainsArabic(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Arabic, r) && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Tokens returns the whitespace-delimited tokens of the normalized text.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// Equal reports whether a and b are the same after normalization.
// Two empty strings are never considered equal.
func Equal(a, b string) bool {
	na := Normalize(a)
	return na != "" && na == Normalize(b)
}
