package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres"
)

const defaultHistoryLimit = 20

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// AttemptFilter narrows the practice history returned by ListRecent.
type AttemptFilter struct {
	UserID     int64
	MatchTypes []entities.MatchType // empty means all
	Since      *time.Time
	Limit      int
}

// AttemptStats aggregates a user's graded attempts.
type AttemptStats struct {
	Total        int
	Correct      int
	Exact        int
	Alternate    int
	Partial      int
	None         int
	AverageScore float64
}

// AttemptRepository stores graded practice attempts.
type AttemptRepository struct {
	db postgres.DBTX
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(db postgres.DBTX) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Save inserts an attempt and returns its ID.
func (r *AttemptRepository) Save(ctx context.Context, a *entities.PracticeAttempt) (int64, error) {
	query := `
		INSERT INTO practice_attempts (
			user_id, arabic_script, transliteration, recognized_text,
			match_type, is_correct, similarity_score, matched_transliteration, attempted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		a.UserID,
		a.Expected.ArabicScript,
		a.Expected.Transliteration,
		a.RecognizedText,
		string(a.Verdict.MatchType),
		a.Verdict.IsCorrect,
		a.Verdict.SimilarityScore,
		a.MatchedTransliteration(),
		a.AttemptedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save attempt: %w", err)
	}

	return id, nil
}

// ListRecent returns the newest attempts matching filter.
func (r *AttemptRepository) ListRecent(ctx context.Context, filter AttemptFilter) ([]*entities.PracticeAttempt, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	q := psql.
		Select(
			"id", "user_id", "arabic_script", "transliteration", "recognized_text",
			"match_type", "similarity_score", "matched_transliteration", "attempted_at",
		).
		From("practice_attempts").
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("attempted_at DESC", "id DESC").
		Limit(uint64(limit))

	if len(filter.MatchTypes) > 0 {
		types := make([]string, 0, len(filter.MatchTypes))
		for _, t := range filter.MatchTypes {
			types = append(types, string(t))
		}
		q = q.Where(sq.Eq{"match_type": types})
	}
	if filter.Since != nil {
		q = q.Where(sq.GtOrEq{"attempted_at": *filter.Since})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*entities.PracticeAttempt
	for rows.Next() {
		var (
			a         entities.PracticeAttempt
			matchType string
			score     int
			matched   string
		)
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Expected.ArabicScript,
			&a.Expected.Transliteration,
			&a.RecognizedText,
			&matchType,
			&score,
			&matched,
			&a.AttemptedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}

		var item *entities.LexiconEntry
		if matched != "" {
			item = &entities.LexiconEntry{Transliteration: matched}
		}
		a.Verdict = entities.NewVerdict(entities.MatchType(matchType), item, score)

		attempts = append(attempts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}

	return attempts, nil
}

// Stats aggregates all attempts of a user.
func (r *AttemptRepository) Stats(ctx context.Context, userID int64) (*AttemptStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_correct),
			COUNT(*) FILTER (WHERE match_type = 'exact'),
			COUNT(*) FILTER (WHERE match_type = 'alternate'),
			COUNT(*) FILTER (WHERE match_type = 'partial'),
			COUNT(*) FILTER (WHERE match_type = 'none'),
			COALESCE(AVG(similarity_score), 0)::float8
		FROM practice_attempts
		WHERE user_id = $1
	`

	var s AttemptStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.Total,
		&s.Correct,
		&s.Exact,
		&s.Alternate,
		&s.Partial,
		&s.None,
		&s.AverageScore,
	)
	if err != nil {
		return nil, fmt.Errorf("get attempt stats: %w", err)
	}

	return &s, nil
}
