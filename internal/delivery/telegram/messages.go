// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/service"
)

// Error messages.
const (
	msgNoActivePrompt      = "There is no word waiting for an answer. Send /practice to get one."
	msgEmptyAnswer         = "Send the word you said, written in Latin letters or Arabic script."
	msgNoWords             = "The lexicon is empty, there is nothing to practice yet."
	msgStatsUnavailable    = "Could not load your stats. Please try again later."
	msgSettingsUnavailable = "Could not load your settings. Please try again later."
	msgInternalError       = "Something went wrong. Please try again later."
	msgUnknownCommand      = "Unknown command. Send /help to see what I can do."
)

const (
	msgResetAsk       = "This deletes all your attempts and word progress. Continue?"
	msgResetDone      = "Your progress has been reset. Send /practice to start over."
	msgResetCancelled = "Reset cancelled."
	msgNoHistory      = "No attempts yet. Send /practice to start."
)

const (
	lrm             = "\u200E"
	progressBarSize = 20
	historyLimit    = 10
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func welcomeMessage() string {
	var sb strings.Builder

	sb.WriteString(lrm + md("أهلا وسهلا!"))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Arabizi Coach"))
	sb.WriteString(md(" helps you practice Gulf Arabic words the way people actually write them in chat: "))
	sb.WriteString(italic("7abibi"))
	sb.WriteString(md(", "))
	sb.WriteString(italic("shlonak"))
	sb.WriteString(md(", "))
	sb.WriteString(italic("ana ta3baan"))
	sb.WriteString(md("."))
	sb.WriteString("\n\n")
	sb.WriteString(md("I show you a word, you answer with how you say it. Spelling variants like gahwa and qahwa are accepted, and near misses get a hint."))
	sb.WriteString("\n\n")
	sb.WriteString(helpMessage())

	return sb.String()
}

func helpMessage() string {
	lines := []string{
		"/practice — get a word to say",
		"/repeat — show the current word again",
		"/skip — reveal the answer and move on",
		"/stats — see how you are doing",
		"/history — your last attempts (/history misses for mistakes only)",
		"/mode — prompt with English or Arabic script",
		"/reset — start from scratch",
	}

	var sb strings.Builder
	sb.WriteString(bold("Commands"))
	sb.WriteString("\n\n")
	for _, l := range lines {
		sb.WriteString(md(l))
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatPrompt formats a practice question.
func formatPrompt(p *entities.PracticePrompt) string {
	hint := "How do you say it?"
	if p.Mode == entities.PromptModeArabic && p.Entry.ArabicScript != "" {
		hint = "How do you read it?"
	}

	return fmt.Sprintf(
		"%s\n\n%s%s\n\n%s",
		md("🗣 "+hint),
		lrm,
		bold(p.Question()),
		italic("Reply with your answer in Latin letters or Arabic script."),
	)
}

// formatAnswer formats the verdict of an answer.
func formatAnswer(res *service.AnswerResult) string {
	v := res.Attempt.Verdict
	entry := res.Prompt.Entry

	var sb strings.Builder

	switch v.Feedback() {
	case entities.FeedbackPerfect:
		sb.WriteString(md("✅ Perfect!"))
	case entities.FeedbackAccepted:
		sb.WriteString(md(fmt.Sprintf("✅ Accepted (%d%%).", v.SimilarityScore)))
		if v.MatchedItem != nil && v.MatchedItem.Transliteration != entry.Transliteration {
			sb.WriteString(md(" You said "))
			sb.WriteString(bold(v.MatchedItem.Transliteration))
			sb.WriteString(md(", which means the same."))
		}
	case entities.FeedbackClose:
		sb.WriteString(md(fmt.Sprintf("🟡 Close (%d%%). Try again!", v.SimilarityScore)))
	default:
		sb.WriteString(md(fmt.Sprintf("❌ Not quite (%d%%). Try again or /skip.", v.SimilarityScore)))
	}

	if t := res.TypedEntry; t != nil {
		sb.WriteString("\n\n")
		sb.WriteString(md("You wrote "))
		sb.WriteString(lrm + bold(t.ArabicScript))
		sb.WriteString(md(", that is "))
		sb.WriteString(bold(t.Transliteration))
		if t.EnglishGloss != "" {
			sb.WriteString(md(" (" + t.EnglishGloss + ")"))
		}
		sb.WriteString(md("."))
	}

	if res.Finished {
		sb.WriteString("\n\n")
		sb.WriteString(formatEntry(entry))

		if res.Progress != nil && res.Progress.Mastered {
			sb.WriteString("\n\n")
			sb.WriteString(md("🏆 Word mastered!"))
		}
	}

	if len(res.Suggestions) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(md("Did you mean:"))
		for _, s := range res.Suggestions {
			sb.WriteString("\n")
			sb.WriteString(md("• "))
			sb.WriteString(bold(s.Entry.Transliteration))
			if s.Entry.EnglishGloss != "" {
				sb.WriteString(md(" — " + s.Entry.EnglishGloss))
			}
		}
	}

	return sb.String()
}

// formatEntry formats all forms of a lexicon entry.
func formatEntry(e entities.LexiconEntry) string {
	var sb strings.Builder

	if e.ArabicScript != "" {
		sb.WriteString(lrm + bold(e.ArabicScript))
		sb.WriteString("\n")
	}
	sb.WriteString(md("Chat: "))
	sb.WriteString(bold(e.Transliteration))
	if len(e.AlternateForms) > 0 {
		sb.WriteString(md(" (also " + strings.Join(e.AlternateForms, ", ") + ")"))
	}
	if e.EnglishGloss != "" {
		sb.WriteString("\n")
		sb.WriteString(md("Meaning: " + e.EnglishGloss))
	}

	return sb.String()
}

// formatSkip formats the revealed answer of a skipped prompt.
func formatSkip(p *entities.PracticePrompt) string {
	return md("⏭ The answer was:") + "\n\n" + formatEntry(p.Entry)
}

// formatStats formats the practice summary.
func formatStats(s *entities.PracticeStats) string {
	if s.TotalAttempts == 0 {
		return md(msgNoHistory)
	}

	lines := []string{
		buildProgressBar(s.Correct, s.TotalAttempts, progressBarSize),
		"",
		fmt.Sprintf("Attempts: %d", s.TotalAttempts),
		fmt.Sprintf("Accuracy: %.1f%%", s.Accuracy()),
		fmt.Sprintf("Average score: %.1f", s.AverageScore),
		"",
		fmt.Sprintf("Exact / alternate / close / miss: %d / %d / %d / %d", s.Exact, s.Alternate, s.Partial, s.None),
		"",
		fmt.Sprintf("Words practiced: %d", s.WordsPracticed),
		fmt.Sprintf("Words mastered: %d", s.WordsMastered),
	}

	return bold("📊 Your stats") + "\n\n" + md(strings.Join(lines, "\n"))
}

// formatHistory formats a list of attempts, newest first.
func formatHistory(attempts []*entities.PracticeAttempt) string {
	if len(attempts) == 0 {
		return md(msgNoHistory)
	}

	var sb strings.Builder
	sb.WriteString(bold("🕘 Recent attempts"))
	sb.WriteString("\n")

	for _, a := range attempts {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("%s %s → %q (%d%%)",
			verdictIcon(a.Verdict.MatchType),
			a.Expected.Transliteration,
			a.RecognizedText,
			a.Verdict.SimilarityScore,
		)))
	}

	return sb.String()
}

func verdictIcon(t entities.MatchType) string {
	switch t {
	case entities.MatchExact, entities.MatchAlternate:
		return "✅"
	case entities.MatchPartial:
		return "🟡"
	default:
		return "❌"
	}
}

func formatMode(mode entities.PromptMode) string {
	text := "Prompts show the English meaning."
	if mode == entities.PromptModeArabic {
		text = "Prompts show the Arabic script."
	}
	return bold("⚙️ Prompt mode") + "\n\n" + md(text)
}

// buildProgressBar creates ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := min(int(float64(current)/float64(total)*float64(length)), length)
	filled = max(filled, 0)

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", length-filled) + "]"
}
