package matcher

import (
	"math"
	"strings"

	"github.com/aliskhannn/arabizi-coach/internal/arabizi"
)

const (
	scoreIdentical = 100
	scoreSubstring = 80

	shortTokenLen        = 2
	scoreShortFirstMatch = 60
	scoreShortMismatch   = 20

	edgeBonus    = 15
	overlapScale = 50
)

// Similarity scores how close the user's input a is to the expected answer b,
// from 0 to 100.
//
// Both strings are normalized and split into tokens. Every expected token is
// paired with its best-scoring input token and the overall score is the
// rounded mean of those best scores. The score is anchored on the expected
// answer, so callers must pass the input first and the expected answer second.
func Similarity(a, b string) int {
	expected := arabizi.Tokens(b)
	if len(expected) == 0 {
		return 0
	}
	input := arabizi.Tokens(a)

	var total float64
	for _, want := range expected {
		var best float64
		for _, got := range input {
			if s := tokenScore(got, want); s > best {
				best = s
			}
		}
		total += best
	}

	return int(math.Round(total / float64(len(expected))))
}

// tokenScore compares a single input token with a single expected token.
func tokenScore(got, want string) float64 {
	if got == want {
		return scoreIdentical
	}
	// Containment is unconditional, so a single letter of the word scores 80.
	if strings.Contains(got, want) || strings.Contains(want, got) {
		return scoreSubstring
	}

	g, w := []rune(got), []rune(want)

	// Short particles ("ya", "el", "w") only agree or disagree on their
	// first letter.
	if len(g) <= shortTokenLen || len(w) <= shortTokenLen {
		if g[0] == w[0] {
			return scoreShortFirstMatch
		}
		return scoreShortMismatch
	}

	return clamp(max(positionalScore(g, w), overlapScore(g, w)))
}

// positionalScore is the share of runes equal at the same index, with a bonus
// for agreeing first and last runes.
func positionalScore(g, w []rune) float64 {
	longest := max(len(g), len(w))

	var same int
	for i := range min(len(g), len(w)) {
		if g[i] == w[i] {
			same++
		}
	}

	score := float64(same) / float64(longest) * 100
	if g[0] == w[0] {
		score += edgeBonus
	}
	if g[len(g)-1] == w[len(w)-1] {
		score += edgeBonus
	}

	return math.Min(score, 100)
}

// overlapScore counts the runes both tokens share regardless of order and
// scales the ratio to overlapScale. It acts as a floor for scrambled letters.
func overlapScore(g, w []rune) float64 {
	counts := make(map[rune]int, len(w))
	for _, r := range w {
		counts[r]++
	}

	var common int
	for _, r := range g {
		if counts[r] > 0 {
			counts[r]--
			common++
		}
	}

	return float64(common) / float64(max(len(g), len(w))) * overlapScale
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}
