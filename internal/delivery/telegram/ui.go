package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
)

// buildPromptKeyboard builds keyboard shown under a practice prompt.
func buildPromptKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", buildPracticeSkipCallback()),
		),
	)
}

// buildNextKeyboard builds keyboard shown after a prompt is finished.
func buildNextKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Next word", buildPracticeNextCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My stats", buildStatsCallback()),
		),
	)
}

// buildModeKeyboard builds keyboard for choosing the prompt mode.
// The active mode is marked.
func buildModeKeyboard(current entities.PromptMode) tgbotapi.InlineKeyboardMarkup {
	label := func(mode entities.PromptMode, text string) string {
		if mode == current {
			return "✅ " + text
		}
		return text
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label(entities.PromptModeEnglish, "🇬🇧 English"), buildModeCallback(entities.PromptModeEnglish)),
			tgbotapi.NewInlineKeyboardButtonData(label(entities.PromptModeArabic, "🔤 Arabic script"), buildModeCallback(entities.PromptModeArabic)),
		),
	)
}

// buildResetKeyboard builds confirmation keyboard for /reset.
func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Yes, reset", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCancelCallback()),
		),
	)
}
