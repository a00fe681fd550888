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

// sessionRepository stores login sessions keyed by the sha256 of the token.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{DB: db, logger: logger}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	query, args, err := r.sb.Insert("sessions").
		Columns("token_hash", "user_id", "created_at", "expires_at").
		Values(session.TokenHash, session.UserID, toMillis(session.CreatedAt), toMillis(session.ExpiresAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Str("user_id", session.UserID).
			Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context, tokenHash string) (models.Session, error) {
	query, args, err := r.sb.Select("token_hash", "user_id", "created_at", "expires_at").
		From("sessions").
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session              models.Session
		createdAt, expiresAt int64
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(&session.TokenHash, &session.UserID, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.GetSession").Msg("error selecting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	session.CreatedAt = fromMillis(createdAt)
	session.ExpiresAt = fromMillis(expiresAt)

	return session, nil
}

// DeleteSession is idempotent: deleting an unknown token is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	return r.deleteWhere(ctx, "*sessionRepository.DeleteSession", sq.Eq{"token_hash": tokenHash})
}

func (r *sessionRepository) DeleteUserSessions(ctx context.Context, userID string) error {
	return r.deleteWhere(ctx, "*sessionRepository.DeleteUserSessions", sq.Eq{"user_id": userID})
}

func (r *sessionRepository) deleteWhere(ctx context.Context, fn string, where sq.Eq) error {
	query, args, err := r.sb.Delete("sessions").Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error deleting sessions")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
