package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/matcher"
	"github.com/aliskhannn/arabizi-coach/internal/service"
)

var gahwa = entities.LexiconEntry{
	ArabicScript:    "قهوة",
	Transliteration: "gahwa",
	EnglishGloss:    "coffee",
	AlternateForms:  []string{"qahwa"},
}

func TestCallbackData(t *testing.T) {
	tests := []struct {
		data   string
		action string
		param  string
	}{
		{data: buildPracticeNextCallback(), action: actionPractice, param: practiceNext},
		{data: buildPracticeSkipCallback(), action: actionPractice, param: practiceSkip},
		{data: buildModeCallback(entities.PromptModeArabic), action: actionMode, param: "arabic"},
		{data: buildResetConfirmCallback(), action: actionReset, param: resetConfirm},
		{data: buildStatsCallback(), action: actionStats},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			cd := decodeCallback(tt.data)
			assert.Equal(t, tt.action, cd.Action)
			assert.Equal(t, tt.param, cd.param(0))
			assert.Empty(t, cd.param(5))
			assert.Equal(t, tt.data, cd.encode())
		})
	}
}

func TestBuildProgressBar(t *testing.T) {
	assert.Equal(t, "[░░░░]", buildProgressBar(0, 0, 4))
	assert.Equal(t, "[██░░]", buildProgressBar(1, 2, 4))
	assert.Equal(t, "[████]", buildProgressBar(5, 2, 4))
}

func TestFormatAnswer(t *testing.T) {
	prompt := entities.NewPracticePrompt(1, gahwa, entities.PromptModeEnglish)

	tests := []struct {
		name     string
		verdict  entities.MatchVerdict
		finished bool
		suggest  []matcher.Suggestion
		typed    *entities.LexiconEntry
		contains []string
	}{
		{
			name:     "perfect",
			verdict:  entities.NewVerdict(entities.MatchExact, &gahwa, 100),
			finished: true,
			contains: []string{"Perfect", "*gahwa*", "qahwa", "coffee"},
		},
		{
			name:     "related entry",
			verdict:  entities.NewVerdict(entities.MatchAlternate, &entities.LexiconEntry{Transliteration: "ahwa"}, 100),
			finished: true,
			contains: []string{"Accepted", "*ahwa*", "means the same"},
		},
		{
			name:     "close",
			verdict:  entities.NewVerdict(entities.MatchPartial, &gahwa, 65),
			contains: []string{"Close \\(65%\\)"},
		},
		{
			name:    "miss with suggestion",
			verdict: entities.NewVerdict(entities.MatchNone, nil, 12),
			suggest: []matcher.Suggestion{{Entry: gahwa, Score: 0.9}},
			contains: []string{
				"Not quite \\(12%\\)",
				"Did you mean:",
				"*gahwa*",
			},
		},
		{
			name:    "other word in Arabic script",
			verdict: entities.NewVerdict(entities.MatchNone, nil, 0),
			typed:   &entities.LexiconEntry{ArabicScript: "شاي", Transliteration: "shai", EnglishGloss: "tea"},
			contains: []string{
				"Not quite \\(0%\\)",
				"You wrote \u200e*شاي*",
				"*shai* \\(tea\\)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &service.AnswerResult{
				Prompt:      *prompt,
				Attempt:     entities.NewPracticeAttempt(1, gahwa, "x", tt.verdict),
				Finished:    tt.finished,
				Suggestions: tt.suggest,
				TypedEntry:  tt.typed,
			}

			got := formatAnswer(res)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestFormatStats(t *testing.T) {
	assert.Equal(t, md(msgNoHistory), formatStats(&entities.PracticeStats{}))

	got := formatStats(&entities.PracticeStats{
		TotalAttempts:  4,
		Correct:        3,
		Exact:          2,
		Alternate:      1,
		None:           1,
		AverageScore:   80,
		WordsPracticed: 3,
		WordsMastered:  1,
	})
	assert.Contains(t, got, "Accuracy: 75\\.0%")
	assert.Contains(t, got, "Words mastered: 1")
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, md(msgNoHistory), formatHistory(nil))

	got := formatHistory([]*entities.PracticeAttempt{
		entities.NewPracticeAttempt(1, gahwa, "gahwah", entities.NewVerdict(entities.MatchPartial, &gahwa, 60)),
	})
	assert.Contains(t, got, "🟡 gahwa")
	assert.Contains(t, got, "\\(60%\\)")
}

func TestFormatPrompt(t *testing.T) {
	english := formatPrompt(entities.NewPracticePrompt(1, gahwa, entities.PromptModeEnglish))
	assert.Contains(t, english, "*coffee*")

	arabic := formatPrompt(entities.NewPracticePrompt(1, gahwa, entities.PromptModeArabic))
	assert.Contains(t, arabic, "*قهوة*")
	assert.Contains(t, arabic, "read it")
}
