package arabizi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/arabizi-coach/internal/arabizi"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: "   \t\n", want: ""},
		{name: "lower case and trim", in: "  Ashoofik  ", want: "ashoofik"},
		{name: "collapse inner whitespace", in: "asawee   lik\tgahwa", want: "asawee lik gahwa"},
		{name: "strip punctuation", in: "shlonak?", want: "shlonak"},
		{name: "strip sentence punctuation", in: "ana, ta3baan.", want: "ana ta3baan"},
		{name: "keep digit markers", in: "7abibi 3ala 5eir", want: "7abibi 3ala 5eir"},
		{name: "punctuation around digits", in: "(3)ala!", want: "3ala"},
		{name: "collapse long runs", in: "ashooofik", want: "ashoofik"},
		{name: "keep doubled letters", in: "mabrook", want: "mabrook"},
		{name: "collapse very long runs", in: "yallaaaaaa", want: "yallaa"},
		{name: "run split by punctuation", in: "sha.aa", want: "shaa"},
		{name: "dash separates words", in: "Ar-Rahmān", want: "ar rahman"},
		{name: "latin diacritics", in: "Al-Ḥakīm", want: "al hakim"},
		{name: "arabic harakat", in: "كِتَابٌ", want: "كتاب"},
		{name: "arabic tatweel", in: "شـــكرا", want: "شكرا"},
		{name: "arabic letter variants", in: "أنا إسلام آمين مدرسة على", want: "انا اسلام امين مدرسه علي"},
		{name: "arabic punctuation", in: "كيف حالك؟", want: "كيف حالك"},
		{name: "invisible marks", in: "\u200eashoofik\u200f", want: "ashoofik"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, arabizi.Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Ashoofik",
		"ASHOOOOFIK  ",
		"aa.a",
		"a - b -- c",
		"Ar-Rahmān",
		"كِتَابٌ جَمِيلٌ",
		"7abibiii!!! 3aaala",
		"tshoofha , tshoofah",
		"\u200e  mixed تشوفه text ",
	}

	for _, in := range inputs {
		once := arabizi.Normalize(in)
		assert.Equal(t, once, arabizi.Normalize(once), "input %q", in)
	}
}

func TestNormalize_CaseAndWhitespaceInvariance(t *testing.T) {
	t.Parallel()

	want := arabizi.Normalize("Ashoofik")
	assert.Equal(t, want, arabizi.Normalize("ashoofik  "))
	assert.Equal(t, want, arabizi.Normalize("ASHOOFIK"))
}

func TestNormalize_RepeatedLetterCollapse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, arabizi.Normalize("ashoofik"), arabizi.Normalize("ashooofik"))
	assert.Equal(t, "ashoofik", arabizi.Normalize("ashoofik"))
}

func TestContainsArabic(t *testing.T) {
	t.Parallel()

	assert.True(t, arabizi.ContainsArabic("تشوفه"))
	assert.True(t, arabizi.ContainsArabic("ana تشوفه"))
	assert.False(t, arabizi.ContainsArabic("tshoofah"))
	assert.False(t, arabizi.ContainsArabic("٣"))
	assert.False(t, arabizi.ContainsArabic(""))
}

func TestTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"asawee", "lik", "gahwa"}, arabizi.Tokens(" Asawee, lik gahwa? "))
	assert.Empty(t, arabizi.Tokens("?!"))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, arabizi.Equal("Tshoofah!", "tshoofah"))
	assert.False(t, arabizi.Equal("", ""))
	assert.False(t, arabizi.Equal("tshoofah", "tshoofha"))
}
