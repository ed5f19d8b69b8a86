package service

import (
	"context"

	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres/repository"
)

type ResetService struct {
	tr      Transactor
	prompts PromptStorage
}

func NewResetService(
	tr Transactor,
	prompts PromptStorage,
) *ResetService {
	return &ResetService{
		tr:      tr,
		prompts: prompts,
	}
}

// ResetUser deletes the practice history and word progress of a user and
// drops the pending prompt.
func (s *ResetService) ResetUser(ctx context.Context, userID int64) error {
	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
		return repository.NewResetRepository(tx).ResetUser(ctx, userID)
	})
	if err != nil {
		return err
	}

	s.prompts.Delete(userID)

	return nil
}
