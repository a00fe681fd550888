package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
)

// rateLimitRepository keeps one counter row per client id. Writes are
// upserts; ON CONFLICT ... DO UPDATE is understood by both dialects.
type rateLimitRepository struct {
	*DB
	logger *logger.Logger
}

func NewRateLimitRepository(db *DB, logger *logger.Logger) RateLimitRepository {
	logger.Debug().Msg("creating rate limit repository")
	return &rateLimitRepository{DB: db, logger: logger}
}

func (r *rateLimitRepository) GetRateLimit(ctx context.Context, clientID string) (models.RateLimit, error) {
	query, args, err := r.sb.Select("client_id", "attempt_count", "window_start", "blocked_until").
		From("rate_limits").
		Where(sq.Eq{"client_id": clientID}).
		ToSql()
	if err != nil {
		return models.RateLimit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		rl           models.RateLimit
		windowStart  int64
		blockedUntil sql.NullInt64
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(&rl.ClientID, &rl.AttemptCount, &windowStart, &blockedUntil)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RateLimit{}, ErrRateLimitNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*rateLimitRepository.GetRateLimit").
			Str("client_id", clientID).
			Msg("error selecting rate limit")
		return models.RateLimit{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rl.WindowStart = fromMillis(windowStart)
	rl.BlockedUntil = fromNullMillis(blockedUntil)

	return rl, nil
}

func (r *rateLimitRepository) SaveRateLimit(ctx context.Context, rl models.RateLimit) error {
	query, args, err := r.sb.Insert("rate_limits").
		Columns("client_id", "attempt_count", "window_start", "blocked_until").
		Values(rl.ClientID, rl.AttemptCount, toMillis(rl.WindowStart), nullMillis(rl.BlockedUntil)).
		Suffix("ON CONFLICT (client_id) DO UPDATE SET " +
			"attempt_count = excluded.attempt_count, " +
			"window_start = excluded.window_start, " +
			"blocked_until = excluded.blocked_until").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*rateLimitRepository.SaveRateLimit").
			Str("client_id", rl.ClientID).
			Msg("error saving rate limit")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *rateLimitRepository) DeleteRateLimit(ctx context.Context, clientID string) error {
	query, args, err := r.sb.Delete("rate_limits").Where(sq.Eq{"client_id": clientID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*rateLimitRepository.DeleteRateLimit").
			Str("client_id", clientID).
			Msg("error deleting rate limit")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
