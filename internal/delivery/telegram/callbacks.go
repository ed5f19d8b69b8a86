package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer h.answerCallback(cb.ID, "")

	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	userID := cb.From.ID
	data := decodeCallback(cb.Data)

	var fn HandlerFunc
	switch data.Action {
	case actionPractice:
		switch data.param(0) {
		case practiceNext:
			fn = h.handlePractice(userID)
		case practiceSkip:
			fn = h.handleSkip(userID)
		}
	case actionStats:
		fn = h.handleStats(userID)
	case actionMode:
		fn = h.handleModeCallback(userID, cb.Message.MessageID, entities.PromptMode(data.param(0)))
	case actionReset:
		fn = h.handleResetCallback(userID, cb.Message.MessageID, data.param(0))
	}

	if fn == nil {
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) handleModeCallback(userID int64, messageID int, mode entities.PromptMode) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if !mode.IsValid() {
			h.logger.Warn("invalid prompt mode in callback", zap.String("mode", string(mode)))
			return nil
		}

		if err := h.settingsService.UpdatePromptMode(ctx, userID, mode); err != nil {
			return err
		}

		edit := newEdit(chatID, messageID, formatMode(mode))
		kb := buildModeKeyboard(mode)
		edit.ReplyMarkup = &kb
		return h.send(edit)
	}
}

func (h *Handler) handleResetCallback(userID int64, messageID int, choice string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if choice != resetConfirm {
			return h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgResetCancelled))
		}

		if err := h.resetService.ResetUser(ctx, userID); err != nil {
			return err
		}

		h.logger.Info("progress reset", zap.Int64("user_id", userID))

		return h.send(tgbotapi.NewEditMessageText(chatID, messageID, msgResetDone))
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}
