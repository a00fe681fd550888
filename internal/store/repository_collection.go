package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
)

var collectionColumns = []string{
	"id", "owner_id", "name", "description", "is_public", "share_slug", "created_at", "updated_at",
}

type collectionRepository struct {
	*DB
	logger *logger.Logger
}

func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return &collectionRepository{DB: db, logger: logger}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, c models.Collection) error {
	query, args, err := r.sb.Insert(c.TableName()).
		Columns(collectionColumns...).
		Values(c.ID, c.OwnerID, c.Name, c.Description, c.IsPublic, c.ShareSlug, toMillis(c.CreatedAt), toMillis(c.UpdatedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*collectionRepository.CreateCollection").
			Str("collection_id", c.ID).
			Msg("error inserting collection")
		return r.wrapExecError(err, ErrShareSlugTaken)
	}

	return nil
}

func (r *collectionRepository) GetCollection(ctx context.Context, collectionID string) (models.Collection, error) {
	return r.getCollectionBy(ctx, sq.Eq{"id": collectionID})
}

func (r *collectionRepository) GetCollectionBySlug(ctx context.Context, slug string) (models.Collection, error) {
	return r.getCollectionBy(ctx, sq.Eq{"share_slug": slug})
}

func (r *collectionRepository) getCollectionBy(ctx context.Context, where sq.Eq) (models.Collection, error) {
	query, args, err := r.sb.Select(collectionColumns...).From("collections").Where(where).ToSql()
	if err != nil {
		return models.Collection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanCollection(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Collection{}, ErrCollectionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionRepository.getCollectionBy").Msg("error selecting collection")
		return models.Collection{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return c, nil
}

func (r *collectionRepository) UpdateCollection(ctx context.Context, c models.Collection) error {
	query, args, err := r.sb.Update("collections").
		Set("name", c.Name).
		Set("description", c.Description).
		Set("is_public", c.IsPublic).
		Set("updated_at", toMillis(c.UpdatedAt)).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "*collectionRepository.UpdateCollection", query, args, nil)
}

func (r *collectionRepository) UpdateShareSlug(ctx context.Context, collectionID, slug string, now time.Time) error {
	query, args, err := r.sb.Update("collections").
		Set("share_slug", slug).
		Set("updated_at", toMillis(now)).
		Where(sq.Eq{"id": collectionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execUpdate(ctx, "*collectionRepository.UpdateShareSlug", query, args, ErrShareSlugTaken)
}

func (r *collectionRepository) execUpdate(ctx context.Context, fn, query string, args []any, alreadyExists error) error {
	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error updating collection")
		return r.wrapExecError(err, alreadyExists)
	}
	return expectAffected(res, ErrCollectionNotFound)
}

func (r *collectionRepository) DeleteCollection(ctx context.Context, collectionID string) error {
	log := logger.FromContext(ctx)

	membershipsQuery, membershipsArgs, err := r.sb.Delete("collection_tests").Where(sq.Eq{"collection_id": collectionID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	collectionQuery, collectionArgs, err := r.sb.Delete("collections").Where(sq.Eq{"id": collectionID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.DeleteCollection").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, membershipsQuery, membershipsArgs...); err != nil {
		log.Err(err).Str("func", "*collectionRepository.DeleteCollection").Msg("error deleting memberships")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	res, err := tx.ExecContext(ctx, collectionQuery, collectionArgs...)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.DeleteCollection").Msg("error deleting collection")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if err = expectAffected(res, ErrCollectionNotFound); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*collectionRepository.DeleteCollection").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *collectionRepository) ListCollectionsByOwner(ctx context.Context, ownerID string) ([]models.Collection, error) {
	query, args, err := r.sb.Select(collectionColumns...).
		From("collections").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionRepository.ListCollectionsByOwner").Msg("error listing collections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	collections := make([]models.Collection, 0)
	for rows.Next() {
		c, scanErr := scanCollection(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		collections = append(collections, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return collections, nil
}

// AddTest inserts a membership; the (collection_id, test_id) primary key
// turns a duplicate into [ErrAlreadyInCollection].
func (r *collectionRepository) AddTest(ctx context.Context, m models.CollectionTest) error {
	query, args, err := r.sb.Insert("collection_tests").
		Columns("collection_id", "test_id", "added_at").
		Values(m.CollectionID, m.TestID, toMillis(m.AddedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*collectionRepository.AddTest").
			Str("collection_id", m.CollectionID).
			Str("test_id", m.TestID).
			Msg("error inserting membership")
		return r.wrapExecError(err, ErrAlreadyInCollection)
	}

	return nil
}

func (r *collectionRepository) RemoveTest(ctx context.Context, collectionID, testID string) error {
	query, args, err := r.sb.Delete("collection_tests").
		Where(sq.Eq{"collection_id": collectionID, "test_id": testID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionRepository.RemoveTest").Msg("error deleting membership")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrMembershipNotFound)
}

// ListCollectionTests returns member tests in the order they were added.
func (r *collectionRepository) ListCollectionTests(ctx context.Context, collectionID string) ([]models.Test, error) {
	columns := make([]string, len(testColumns))
	for i, c := range testColumns {
		columns[i] = "t." + c
	}

	query, args, err := r.sb.Select(columns...).
		From("collection_tests ct").
		Join("tests t ON t.id = ct.test_id").
		Where(sq.Eq{"ct.collection_id": collectionID}).
		OrderBy("ct.added_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionRepository.ListCollectionTests").Msg("error listing collection tests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTests(rows)
}

func (r *collectionRepository) PruneOrphanMemberships(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Delete("collection_tests").
		Where("NOT EXISTS (SELECT 1 FROM tests t WHERE t.id = collection_tests.test_id)" +
			" OR NOT EXISTS (SELECT 1 FROM collections c WHERE c.id = collection_tests.collection_id)").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*collectionRepository.PruneOrphanMemberships").Msg("error pruning memberships")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

func scanCollection(row rowScanner) (models.Collection, error) {
	var (
		c                    models.Collection
		createdAt, updatedAt int64
	)
	if err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.IsPublic, &c.ShareSlug, &createdAt, &updatedAt); err != nil {
		return models.Collection{}, err
	}
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	return c, nil
}
