package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres/repository"
)

func TestProgressRepository_Get(t *testing.T) {
	key := entities.EntryKey{ArabicScript: "كلب", Transliteration: "kalb"}
	practiced := time.Now()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
		check   func(t *testing.T, p *entities.WordProgress)
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM word_progress")).
					WithArgs(int64(42), "كلب", "kalb").
					WillReturnRows(pgxmock.NewRows([]string{
						"user_id", "arabic_script", "transliteration", "attempts", "correct_count",
						"best_score", "mastered", "last_practiced_at",
					}).AddRow(int64(42), "كلب", "kalb", 4, 3, 100, true, &practiced))
			},
			check: func(t *testing.T, p *entities.WordProgress) {
				assert.Equal(t, key, p.Entry)
				assert.Equal(t, 4, p.Attempts)
				assert.Equal(t, 3, p.CorrectCount)
				assert.True(t, p.Mastered)
				require.NotNil(t, p.LastPracticedAt)
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM word_progress")).
					WithArgs(int64(42), "كلب", "kalb").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: repository.ErrProgressNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := repository.NewProgressRepository(mock)
			tt.setup(mock)

			got, err := repo.Get(context.Background(), 42, key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestProgressRepository_Upsert(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewProgressRepository(mock)

	now := time.Now()
	p := entities.NewWordProgress(42, entities.EntryKey{ArabicScript: "كلب", Transliteration: "kalb"})
	p.Record(entities.NewVerdict(entities.MatchExact, &entities.LexiconEntry{Transliteration: "kalb"}, 100), 3, now)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO word_progress")).
		WithArgs(int64(42), "كلب", "kalb", 1, 1, 100, false, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(context.Background(), p))
}

func TestProgressRepository_MasteredKeys(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewProgressRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND mastered")).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"arabic_script", "transliteration"}).
			AddRow("كلب", "kalb").
			AddRow("", "ahwa"))

	keys, err := repo.MasteredKeys(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []entities.EntryKey{
		{ArabicScript: "كلب", Transliteration: "kalb"},
		{Transliteration: "ahwa"},
	}, keys)
}

func TestProgressRepository_CountWords(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewProgressRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) FILTER (WHERE mastered)")).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"practiced", "mastered"}).AddRow(12, 5))

	practiced, mastered, err := repo.CountWords(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 12, practiced)
	assert.Equal(t, 5, mastered)
}

func TestSettingsRepository_UpdatePromptMode(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewSettingsRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_settings")).
		WithArgs("arabic", pgxmock.AnyArg(), int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.UpdatePromptMode(context.Background(), 42, entities.PromptModeArabic))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_settings")).
		WithArgs("english", pgxmock.AnyArg(), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := repo.UpdatePromptMode(context.Background(), 7, entities.PromptModeEnglish)
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)
}

func TestResetRepository_ResetUser(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewResetRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM practice_attempts")).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM word_progress")).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	require.NoError(t, repo.ResetUser(context.Background(), 42))
}
