package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres"
)

type ResetRepository struct {
	db postgres.DBTX
}

func NewResetRepository(db postgres.DBTX) *ResetRepository {
	return &ResetRepository{db: db}
}

func (s *ResetRepository) ResetUser(ctx context.Context, userID int64) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM practice_attempts WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete practice_attempts: %w", err)
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM word_progress WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete word_progress: %w", err)
	}

	return nil
}
