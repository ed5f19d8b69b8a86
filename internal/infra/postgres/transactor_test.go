package postgres_test

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres"
)

func TestTransactor_WithinTx(t *testing.T) {
	tests := []struct {
		name    string
		fnErr   error
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr bool
	}{
		{
			name: "commit on success",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM word_progress").
					WithArgs(int64(1)).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			},
		},
		{
			name:  "rollback on error",
			fnErr: errors.New("boom"),
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM word_progress").
					WithArgs(int64(1)).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "begin fails",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("no connection"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tt.setup(mock)

			tr := postgres.NewTransactor(mock)
			err = tr.WithinTx(context.Background(), func(ctx context.Context, tx postgres.DBTX) error {
				if _, err := tx.Exec(ctx, "DELETE FROM word_progress WHERE user_id = $1", int64(1)); err != nil {
					return err
				}
				return tt.fnErr
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
