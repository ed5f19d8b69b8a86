package service

import (
	"context"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres/repository"
)

// Transactor runs a function inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx postgres.DBTX) error) error
}

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
}

type SettingsRepository interface {
	Create(ctx context.Context, userID int64) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdatePromptMode(ctx context.Context, userID int64, mode entities.PromptMode) error
}

type LexiconRepository interface {
	Lexicon() entities.Lexicon
	FindByArabic(ctx context.Context, arabic string) (*entities.LexiconEntry, error)
}

// Matcher grades a recognized utterance against an expected entry.
type Matcher interface {
	Check(recognized string, expected entities.LexiconEntry, lexicon entities.Lexicon) entities.MatchVerdict
}

type PromptStorage interface {
	Store(userID int64, prompt entities.PracticePrompt)
	Get(userID int64) (entities.PracticePrompt, bool)
	IncrementAttempts(userID int64) int
	Delete(userID int64)
}

type ProgressRepository interface {
	MasteredKeys(ctx context.Context, userID int64) ([]entities.EntryKey, error)
	CountWords(ctx context.Context, userID int64) (practiced, mastered int, err error)
}

type AttemptRepository interface {
	Stats(ctx context.Context, userID int64) (*repository.AttemptStats, error)
	ListRecent(ctx context.Context, filter repository.AttemptFilter) ([]*entities.PracticeAttempt, error)
}

type PromptModeProvider interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
}
