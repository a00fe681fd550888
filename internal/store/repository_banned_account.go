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

type bannedAccountRepository struct {
	*DB
	logger *logger.Logger
}

func NewBannedAccountRepository(db *DB, logger *logger.Logger) BannedAccountRepository {
	logger.Debug().Msg("creating banned account repository")
	return &bannedAccountRepository{DB: db, logger: logger}
}

// BanAccount records a ban. Banning an already banned account refreshes the
// reason and the audit columns.
func (r *bannedAccountRepository) BanAccount(ctx context.Context, ban models.BannedAccount) error {
	query, args, err := r.sb.Insert(ban.TableName()).
		Columns("google_id", "email", "reason", "banned_by", "banned_at").
		Values(ban.GoogleID, ban.Email, ban.Reason, ban.BannedBy, toMillis(ban.BannedAt)).
		Suffix("ON CONFLICT (google_id) DO UPDATE SET " +
			"email = excluded.email, reason = excluded.reason, " +
			"banned_by = excluded.banned_by, banned_at = excluded.banned_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*bannedAccountRepository.BanAccount").
			Str("google_id", ban.GoogleID).
			Msg("error saving ban")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *bannedAccountRepository) UnbanAccount(ctx context.Context, googleID string) error {
	query, args, err := r.sb.Delete("banned_google_accounts").Where(sq.Eq{"google_id": googleID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*bannedAccountRepository.UnbanAccount").
			Str("google_id", googleID).
			Msg("error deleting ban")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrBanNotFound)
}

func (r *bannedAccountRepository) IsBanned(ctx context.Context, googleID string) (bool, error) {
	query, args, err := r.sb.Select("1").
		From("banned_google_accounts").
		Where(sq.Eq{"google_id": googleID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*bannedAccountRepository.IsBanned").
			Str("google_id", googleID).
			Msg("error checking ban")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *bannedAccountRepository) ListBannedAccounts(ctx context.Context) ([]models.BannedAccount, error) {
	query, args, err := r.sb.Select("google_id", "email", "reason", "banned_by", "banned_at").
		From("banned_google_accounts").
		OrderBy("banned_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bannedAccountRepository.ListBannedAccounts").Msg("error listing bans")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bans := make([]models.BannedAccount, 0)
	for rows.Next() {
		var (
			ban      models.BannedAccount
			bannedAt int64
		)
		if err := rows.Scan(&ban.GoogleID, &ban.Email, &ban.Reason, &ban.BannedBy, &bannedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ban.BannedAt = fromMillis(bannedAt)
		bans = append(bans, ban)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bans, nil
}
