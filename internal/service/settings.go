package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres/repository"
)

var ErrInvalidPromptMode = errors.New("invalid prompt mode")

type SettingsService struct {
	repository SettingsRepository
}

func NewSettingsService(repository SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// Create default settings.
			if err := s.repository.Create(ctx, userID); err != nil {
				return nil, err
			}
			// Retrieve newly created settings.
			return s.repository.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return settings, nil
}

func (s *SettingsService) UpdatePromptMode(ctx context.Context, userID int64, mode entities.PromptMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPromptMode, mode)
	}

	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return err
	}

	return s.repository.UpdatePromptMode(ctx, userID, mode)
}
