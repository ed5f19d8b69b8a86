package telegram

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/arabizi-coach/internal/service"
)

func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, welcomeMessage()))
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, helpMessage()))
	}
}

func (h *Handler) handleUnknown() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// handlePractice asks the user for the next word.
func (h *Handler) handlePractice(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		prompt, err := h.practiceService.NextPrompt(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrNoWords) {
				return h.send(newPlainMessage(chatID, msgNoWords))
			}
			return err
		}

		h.logger.Debug("prompt issued",
			zap.Int64("user_id", userID),
			zap.String("transliteration", prompt.Entry.Transliteration),
			zap.String("mode", string(prompt.Mode)),
		)

		msg := newMessage(chatID, formatPrompt(prompt))
		msg.ReplyMarkup = buildPromptKeyboard()
		return h.send(msg)
	}
}

// handleRepeat shows the pending prompt again.
func (h *Handler) handleRepeat(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		prompt, err := h.practiceService.CurrentPrompt(userID)
		if err != nil {
			if errors.Is(err, service.ErrNoActivePrompt) {
				return h.send(newPlainMessage(chatID, msgNoActivePrompt))
			}
			return err
		}

		msg := newMessage(chatID, formatPrompt(prompt))
		msg.ReplyMarkup = buildPromptKeyboard()
		return h.send(msg)
	}
}

// handleAnswer grades a plain text message against the pending prompt.
func (h *Handler) handleAnswer(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		res, err := h.practiceService.SubmitAnswer(ctx, userID, text)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoActivePrompt):
				return h.send(newPlainMessage(chatID, msgNoActivePrompt))
			case errors.Is(err, service.ErrEmptyAnswer):
				return h.send(newPlainMessage(chatID, msgEmptyAnswer))
			default:
				return err
			}
		}

		h.logger.Info("answer graded",
			zap.Int64("user_id", userID),
			zap.String("expected", res.Prompt.Entry.Transliteration),
			zap.String("match_type", string(res.Attempt.Verdict.MatchType)),
			zap.Int("score", res.Attempt.Verdict.SimilarityScore),
			zap.Int("attempts", res.Prompt.Attempts),
		)

		msg := newMessage(chatID, formatAnswer(res))
		if res.Finished {
			msg.ReplyMarkup = buildNextKeyboard()
		} else {
			msg.ReplyMarkup = buildPromptKeyboard()
		}
		return h.send(msg)
	}
}

// handleSkip reveals the answer of the pending prompt.
func (h *Handler) handleSkip(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		prompt, err := h.practiceService.Skip(userID)
		if err != nil {
			if errors.Is(err, service.ErrNoActivePrompt) {
				return h.send(newPlainMessage(chatID, msgNoActivePrompt))
			}
			return err
		}

		msg := newMessage(chatID, formatSkip(prompt))
		msg.ReplyMarkup = buildNextKeyboard()
		return h.send(msg)
	}
}

func (h *Handler) handleStats(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		stats, err := h.statsService.GetSummary(ctx, userID)
		if err != nil {
			h.logger.Error("failed to get stats", zap.Int64("user_id", userID), zap.Error(err))
			return h.send(newPlainMessage(chatID, msgStatsUnavailable))
		}

		return h.send(newMessage(chatID, formatStats(stats)))
	}
}

// handleHistory lists recent attempts. "/history misses" keeps only the
// partial and failed ones.
func (h *Handler) handleHistory(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		onlyMisses := strings.EqualFold(strings.TrimSpace(args), "misses")

		attempts, err := h.statsService.History(ctx, userID, onlyMisses, historyLimit)
		if err != nil {
			h.logger.Error("failed to get history", zap.Int64("user_id", userID), zap.Error(err))
			return h.send(newPlainMessage(chatID, msgStatsUnavailable))
		}

		return h.send(newMessage(chatID, formatHistory(attempts)))
	}
}

func (h *Handler) handleMode(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		settings, err := h.settingsService.GetOrCreate(ctx, userID)
		if err != nil {
			h.logger.Error("failed to get settings", zap.Int64("user_id", userID), zap.Error(err))
			return h.send(newPlainMessage(chatID, msgSettingsUnavailable))
		}

		msg := newMessage(chatID, formatMode(settings.PromptMode))
		msg.ReplyMarkup = buildModeKeyboard(settings.PromptMode)
		return h.send(msg)
	}
}

func (h *Handler) handleReset() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newPlainMessage(chatID, msgResetAsk)
		msg.ReplyMarkup = buildResetKeyboard()
		return h.send(msg)
	}
}
