package matcher

import (
	"sort"

	"github.com/antzucaro/matchr"

	"github.com/aliskhannn/arabizi-coach/internal/arabizi"
	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
)

const minSuggestionScore = 0.75

// Suggestion is a lexicon entry that resembles a missed answer.
type Suggestion struct {
	Entry entities.LexiconEntry
	Score float64 // Jaro-Winkler similarity in [0, 1]
}

// Suggest ranks lexicon entries by Jaro-Winkler similarity to recognized and
// returns at most limit of them, best first. Entries scoring below 0.75 are
// dropped and ties keep lexicon order.
func Suggest(recognized string, lexicon entities.Lexicon, limit int) []Suggestion {
	said := arabizi.Normalize(recognized)
	if said == "" || limit <= 0 {
		return nil
	}
	arabic := arabizi.ContainsArabic(said)

	var out []Suggestion
	for _, entry := range lexicon {
		target := entry.Transliteration
		if arabic {
			target = entry.ArabicScript
		}
		target = arabizi.Normalize(target)
		if target == "" {
			continue
		}

		score := matchr.JaroWinkler(said, target, false)
		if score >= minSuggestionScore {
			out = append(out, Suggestion{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
