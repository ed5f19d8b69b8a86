package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres/repository"
	"github.com/aliskhannn/arabizi-coach/internal/service"
)

type fakeAttempts struct {
	stats    *repository.AttemptStats
	attempts []*entities.PracticeAttempt
	err      error

	lastFilter repository.AttemptFilter
}

func (f *fakeAttempts) Stats(context.Context, int64) (*repository.AttemptStats, error) {
	return f.stats, f.err
}

func (f *fakeAttempts) ListRecent(_ context.Context, filter repository.AttemptFilter) ([]*entities.PracticeAttempt, error) {
	f.lastFilter = filter
	return f.attempts, f.err
}

func TestStatsService_GetSummary(t *testing.T) {
	attempts := &fakeAttempts{stats: &repository.AttemptStats{
		Total: 8, Correct: 6, Exact: 4, Alternate: 2, Partial: 1, None: 1, AverageScore: 82.5,
	}}
	svc := service.NewStatsService(attempts, &fakeProgress{practiced: 5, done: 2})

	got, err := svc.GetSummary(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 8, got.TotalAttempts)
	assert.Equal(t, 6, got.Correct)
	assert.Equal(t, 1, got.None)
	assert.Equal(t, 5, got.WordsPracticed)
	assert.Equal(t, 2, got.WordsMastered)
	assert.InDelta(t, 75.0, got.Accuracy(), 0.001)
}

func TestStatsService_GetSummaryErrors(t *testing.T) {
	svc := service.NewStatsService(&fakeAttempts{err: errors.New("boom")}, &fakeProgress{})
	_, err := svc.GetSummary(context.Background(), 42)
	assert.ErrorContains(t, err, "get attempt stats")

	svc = service.NewStatsService(
		&fakeAttempts{stats: &repository.AttemptStats{}},
		&fakeProgress{err: errors.New("boom")},
	)
	_, err = svc.GetSummary(context.Background(), 42)
	assert.ErrorContains(t, err, "count words")
}

func TestStatsService_History(t *testing.T) {
	attempts := &fakeAttempts{attempts: []*entities.PracticeAttempt{
		entities.NewPracticeAttempt(42, lexicon[0], "kaso", entities.NewVerdict(entities.MatchPartial, &lexicon[0], 65)),
	}}
	svc := service.NewStatsService(attempts, &fakeProgress{})

	got, err := svc.History(context.Background(), 42, true, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, int64(42), attempts.lastFilter.UserID)
	assert.Equal(t, 10, attempts.lastFilter.Limit)
	assert.Equal(t, []entities.MatchType{entities.MatchPartial, entities.MatchNone}, attempts.lastFilter.MatchTypes)

	_, err = svc.History(context.Background(), 42, false, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, attempts.lastFilter.Limit)
	assert.Empty(t, attempts.lastFilter.MatchTypes)
}
