package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
)

var userColumns = []string{
	"id", "email", "name", "password_hash", "google_id",
	"is_admin", "is_super_admin",
	"banned_from_pending_tests", "banned_from_public_collections", "banned_from_engine",
	"engine_usage_count", "engine_reset_month", "created_at",
}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account. Emails are stored lower-cased. A taken
// email or Google subject yields [ErrUserAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = strings.ToLower(user.Email)

	query, args, err := r.sb.Insert(user.TableName()).
		Columns(userColumns...).
		Values(
			user.ID, user.Email, user.Name, nullString(user.PasswordHash), nullString(user.GoogleID),
			user.IsAdmin, user.IsSuperAdmin,
			user.BannedFromPendingTests, user.BannedFromPublicCollections, user.BannedFromEngine,
			user.EngineUsageCount, user.EngineResetMonth, toMillis(user.CreatedAt),
		).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.wrapExecError(err, ErrUserAlreadyExists)
	}

	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.getUserBy(ctx, sq.Eq{"id": userID})
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUserBy(ctx, sq.Eq{"email": strings.ToLower(email)})
}

func (r *userRepository) GetUserByGoogleID(ctx context.Context, googleID string) (models.User, error) {
	return r.getUserBy(ctx, sq.Eq{"google_id": googleID})
}

func (r *userRepository) getUserBy(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.getUserBy").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// LinkGoogleID binds a Google subject to an existing account.
func (r *userRepository) LinkGoogleID(ctx context.Context, userID, googleID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Update("users").
		Set("google_id", googleID).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.LinkGoogleID").Str("user_id", userID).Msg("error linking google id")
		return r.wrapExecError(err, ErrUserAlreadyExists)
	}

	return expectAffected(res, ErrUserNotFound)
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Select(userColumns...).From("users").OrderBy("created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// UpdateUserFlags writes only the flags that are set in update.
func (r *userRepository) UpdateUserFlags(ctx context.Context, userID string, update models.UserFlagsUpdate) error {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return nil
	}

	builder := r.sb.Update("users")
	if update.IsAdmin != nil {
		builder = builder.Set("is_admin", *update.IsAdmin)
	}
	if update.BannedFromPendingTests != nil {
		builder = builder.Set("banned_from_pending_tests", *update.BannedFromPendingTests)
	}
	if update.BannedFromPublicCollections != nil {
		builder = builder.Set("banned_from_public_collections", *update.BannedFromPublicCollections)
	}
	if update.BannedFromEngine != nil {
		builder = builder.Set("banned_from_engine", *update.BannedFromEngine)
	}

	query, args, err := builder.Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserFlags").Str("user_id", userID).Msg("error updating flags")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrUserNotFound)
}

func (r *userRepository) IncrementEngineUsage(ctx context.Context, userID string, month int) error {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.Update("users").
		Set("engine_usage_count", sq.Expr("CASE WHEN engine_reset_month = ? THEN engine_usage_count + 1 ELSE 1 END", month)).
		Set("engine_reset_month", month).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.IncrementEngineUsage").Str("user_id", userID).Msg("error incrementing engine usage")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrUserNotFound)
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user                   models.User
		passwordHash, googleID sql.NullString
		createdAt              int64
	)

	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &passwordHash, &googleID,
		&user.IsAdmin, &user.IsSuperAdmin,
		&user.BannedFromPendingTests, &user.BannedFromPublicCollections, &user.BannedFromEngine,
		&user.EngineUsageCount, &user.EngineResetMonth, &createdAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.PasswordHash = passwordHash.String
	user.GoogleID = googleID.String
	user.CreatedAt = fromMillis(createdAt)

	return user, nil
}

// expectAffected turns a zero-row write into notFound.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
