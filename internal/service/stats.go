package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres/repository"
)

const defaultHistoryLimit = 10

type StatsService struct {
	attempts AttemptRepository
	progress ProgressRepository
}

func NewStatsService(attempts AttemptRepository, progress ProgressRepository) *StatsService {
	return &StatsService{
		attempts: attempts,
		progress: progress,
	}
}

// GetSummary aggregates all practice attempts and word progress of a user.
func (s *StatsService) GetSummary(ctx context.Context, userID int64) (*entities.PracticeStats, error) {
	st, err := s.attempts.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get attempt stats: %w", err)
	}

	practiced, mastered, err := s.progress.CountWords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}

	return &entities.PracticeStats{
		TotalAttempts:  st.Total,
		Correct:        st.Correct,
		Exact:          st.Exact,
		Alternate:      st.Alternate,
		Partial:        st.Partial,
		None:           st.None,
		AverageScore:   st.AverageScore,
		WordsPracticed: practiced,
		WordsMastered:  mastered,
	}, nil
}

// History returns the most recent attempts of a user, newest first.
// With onlyMisses set, only partial and failed attempts are returned.
func (s *StatsService) History(ctx context.Context, userID int64, onlyMisses bool, limit int) ([]*entities.PracticeAttempt, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	filter := repository.AttemptFilter{
		UserID: userID,
		Limit:  limit,
	}
	if onlyMisses {
		filter.MatchTypes = []entities.MatchType{entities.MatchPartial, entities.MatchNone}
	}

	attempts, err := s.attempts.ListRecent(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	return attempts, nil
}
