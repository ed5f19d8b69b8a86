package repository_test

import (
	"context"
	"errors"
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

func TestUserRepository_Save(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewUserRepository(mock)

	u := entities.NewUser(42, 100)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(int64(42), int64(100), true, u.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"created"}).AddRow(true))

	created, err := repo.Save(context.Background(), u)
	require.NoError(t, err)
	assert.True(t, created)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(int64(42), int64(100), true, u.CreatedAt).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.Save(context.Background(), u)
	assert.ErrorContains(t, err, "save user")
}

func TestSettingsRepository_CreateAndGet(t *testing.T) {
	mock := newMock(t)
	repo := repository.NewSettingsRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_settings")).
		WithArgs(int64(42), "english").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.Create(context.Background(), 42))

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_settings")).
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "prompt_mode", "created_at", "updated_at"}).
			AddRow(int64(42), "arabic", now, now))

	s, err := repo.GetByUserID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, entities.PromptModeArabic, s.PromptMode)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_settings")).
		WithArgs(int64(7)).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByUserID(context.Background(), 7)
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)
}
