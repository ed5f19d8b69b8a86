package telegram

import (
	"context"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/service"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64) (bool, error)
}

type PracticeService interface {
	NextPrompt(ctx context.Context, userID int64) (*entities.PracticePrompt, error)
	CurrentPrompt(userID int64) (*entities.PracticePrompt, error)
	SubmitAnswer(ctx context.Context, userID int64, text string) (*service.AnswerResult, error)
	Skip(userID int64) (*entities.PracticePrompt, error)
}

type StatsService interface {
	GetSummary(ctx context.Context, userID int64) (*entities.PracticeStats, error)
	History(ctx context.Context, userID int64, onlyMisses bool, limit int) ([]*entities.PracticeAttempt, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdatePromptMode(ctx context.Context, userID int64, mode entities.PromptMode) error
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}
