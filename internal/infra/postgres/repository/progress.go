package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres"
)

var ErrProgressNotFound = errors.New("progress not found")

// ProgressRepository provides access to per-word practice progress.
type ProgressRepository struct {
	db postgres.DBTX
}

// NewProgressRepository creates a new ProgressRepository with the provided database pool.
func NewProgressRepository(db postgres.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Get retrieves the progress of a user on a single entry.
func (r *ProgressRepository) Get(ctx context.Context, userID int64, key entities.EntryKey) (*entities.WordProgress, error) {
	query := `
		SELECT user_id, arabic_script, transliteration, attempts, correct_count,
		       best_score, mastered, last_practiced_at
		FROM word_progress
		WHERE user_id = $1 AND arabic_script = $2 AND transliteration = $3
	`

	var p entities.WordProgress
	err := r.db.QueryRow(ctx, query, userID, key.ArabicScript, key.Transliteration).Scan(
		&p.UserID,
		&p.Entry.ArabicScript,
		&p.Entry.Transliteration,
		&p.Attempts,
		&p.CorrectCount,
		&p.BestScore,
		&p.Mastered,
		&p.LastPracticedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}

	return &p, nil
}

// Upsert creates or updates a progress record.
func (r *ProgressRepository) Upsert(ctx context.Context, p *entities.WordProgress) error {
	query := `
		INSERT INTO word_progress (
			user_id, arabic_script, transliteration, attempts, correct_count,
			best_score, mastered, last_practiced_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, arabic_script, transliteration) DO UPDATE SET
			attempts = EXCLUDED.attempts,
			correct_count = EXCLUDED.correct_count,
			best_score = EXCLUDED.best_score,
			mastered = EXCLUDED.mastered,
			last_practiced_at = EXCLUDED.last_practiced_at
	`

	_, err := r.db.Exec(
		ctx,
		query,
		p.UserID,
		p.Entry.ArabicScript,
		p.Entry.Transliteration,
		p.Attempts,
		p.CorrectCount,
		p.BestScore,
		p.Mastered,
		p.LastPracticedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}

	return nil
}

// MasteredKeys returns the entries a user has mastered.
func (r *ProgressRepository) MasteredKeys(ctx context.Context, userID int64) ([]entities.EntryKey, error) {
	query := `
		SELECT arabic_script, transliteration
		FROM word_progress
		WHERE user_id = $1 AND mastered
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get mastered words: %w", err)
	}
	defer rows.Close()

	var keys []entities.EntryKey
	for rows.Next() {
		var k entities.EntryKey
		if err := rows.Scan(&k.ArabicScript, &k.Transliteration); err != nil {
			return nil, fmt.Errorf("scan mastered word: %w", err)
		}
		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mastered words: %w", err)
	}

	return keys, nil
}

// CountWords returns how many words a user practiced and mastered.
func (r *ProgressRepository) CountWords(ctx context.Context, userID int64) (practiced, mastered int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE mastered)
		FROM word_progress
		WHERE user_id = $1
	`

	if err := r.db.QueryRow(ctx, query, userID).Scan(&practiced, &mastered); err != nil {
		return 0, 0, fmt.Errorf("count words: %w", err)
	}

	return practiced, mastered, nil
}
