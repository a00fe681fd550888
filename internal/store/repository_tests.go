package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
)

var testColumns = []string{
	"id", "name", "description", "board", "game", "turn", "you_id", "expected_safe_moves",
	"status", "perma_rejected", "rejection_reason", "owner_id", "approved_by", "approved_at",
	"created_at", "updated_at",
}

// testRepository stores scenarios in the "tests" table. Board, game and the
// expected move set are JSON documents in TEXT columns.
type testRepository struct {
	*DB
	logger *logger.Logger
}

func NewTestRepository(db *DB, logger *logger.Logger) TestRepository {
	logger.Debug().Msg("creating test repository")
	return &testRepository{DB: db, logger: logger}
}

func (r *testRepository) CreateTest(ctx context.Context, test models.Test) error {
	log := logger.FromContext(ctx)

	enc, err := encodeTest(test)
	if err != nil {
		return err
	}

	query, args, err := r.sb.Insert(test.TableName()).
		Columns(testColumns...).
		Values(
			test.ID, test.Name, test.Description, enc.board, enc.game, test.Turn, test.YouID, enc.moves,
			string(test.Status), test.PermaRejected, nullString(test.RejectionReason), nullString(test.OwnerID),
			nullString(test.ApprovedBy), nullMillis(test.ApprovedAt),
			toMillis(test.CreatedAt), toMillis(test.UpdatedAt),
		).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*testRepository.CreateTest").Str("test_id", test.ID).Msg("error inserting test")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *testRepository) GetTest(ctx context.Context, testID string) (models.Test, error) {
	query, args, err := r.sb.Select(testColumns...).From("tests").Where(sq.Eq{"id": testID}).ToSql()
	if err != nil {
		return models.Test{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	test, err := scanTest(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Test{}, ErrTestNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*testRepository.GetTest").Str("test_id", testID).Msg("error selecting test")
		return models.Test{}, err
	}

	return test, nil
}

// UpdateTest overwrites every mutable column of the row.
func (r *testRepository) UpdateTest(ctx context.Context, test models.Test) error {
	log := logger.FromContext(ctx)

	enc, err := encodeTest(test)
	if err != nil {
		return err
	}

	query, args, err := r.sb.Update("tests").
		Set("name", test.Name).
		Set("description", test.Description).
		Set("board", enc.board).
		Set("game", enc.game).
		Set("turn", test.Turn).
		Set("you_id", test.YouID).
		Set("expected_safe_moves", enc.moves).
		Set("status", string(test.Status)).
		Set("perma_rejected", test.PermaRejected).
		Set("rejection_reason", nullString(test.RejectionReason)).
		Set("approved_by", nullString(test.ApprovedBy)).
		Set("approved_at", nullMillis(test.ApprovedAt)).
		Set("updated_at", toMillis(test.UpdatedAt)).
		Where(sq.Eq{"id": test.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*testRepository.UpdateTest").Str("test_id", test.ID).Msg("error updating test")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expectAffected(res, ErrTestNotFound)
}

// DeleteTest removes memberships first and the test second in one
// transaction. Runs are kept as history.
func (r *testRepository) DeleteTest(ctx context.Context, testID string) error {
	log := logger.FromContext(ctx)

	membershipsQuery, membershipsArgs, err := r.sb.Delete("collection_tests").Where(sq.Eq{"test_id": testID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	testQuery, testArgs, err := r.sb.Delete("tests").Where(sq.Eq{"id": testID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*testRepository.DeleteTest").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, membershipsQuery, membershipsArgs...); err != nil {
		log.Err(err).Str("func", "*testRepository.DeleteTest").Str("test_id", testID).Msg("error deleting memberships")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	res, err := tx.ExecContext(ctx, testQuery, testArgs...)
	if err != nil {
		log.Err(err).Str("func", "*testRepository.DeleteTest").Str("test_id", testID).Msg("error deleting test")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if err = expectAffected(res, ErrTestNotFound); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*testRepository.DeleteTest").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ListTestsByStatus returns tests in one moderation state, newest first.
// Rows written before statuses existed carry an empty status and are
// listed under legacy.
func (r *testRepository) ListTestsByStatus(ctx context.Context, status models.TestStatus) ([]models.Test, error) {
	var where sq.Sqlizer = sq.Eq{"status": string(status)}
	if status == models.TestStatusLegacy {
		where = sq.Eq{"status": []string{string(models.TestStatusLegacy), ""}}
	}
	return r.listTests(ctx, "*testRepository.ListTestsByStatus", where)
}

func (r *testRepository) ListTestsByOwner(ctx context.Context, ownerID string) ([]models.Test, error) {
	return r.listTests(ctx, "*testRepository.ListTestsByOwner", sq.Eq{"owner_id": ownerID})
}

func (r *testRepository) listTests(ctx context.Context, fn string, where sq.Sqlizer) ([]models.Test, error) {
	query, args, err := r.sb.Select(testColumns...).
		From("tests").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error listing tests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanTests(rows)
}

type encodedTest struct {
	board string
	game  any
	moves string
}

func encodeTest(test models.Test) (encodedTest, error) {
	var enc encodedTest

	board, err := json.Marshal(test.Board)
	if err != nil {
		return enc, fmt.Errorf("%w: board: %w", ErrEncodingColumn, err)
	}
	enc.board = string(board)

	if test.Game != nil {
		game, err := json.Marshal(test.Game)
		if err != nil {
			return enc, fmt.Errorf("%w: game: %w", ErrEncodingColumn, err)
		}
		enc.game = string(game)
	}

	moves := test.ExpectedSafeMoves
	if moves == nil {
		moves = []string{}
	}
	movesJSON, err := json.Marshal(moves)
	if err != nil {
		return enc, fmt.Errorf("%w: expected_safe_moves: %w", ErrEncodingColumn, err)
	}
	enc.moves = string(movesJSON)

	return enc, nil
}

func scanTest(row rowScanner) (models.Test, error) {
	var (
		test                              models.Test
		board, moves, status              string
		game, reason, ownerID, approvedBy sql.NullString
		approvedAt                        sql.NullInt64
		createdAt, updatedAt              int64
	)

	err := row.Scan(
		&test.ID, &test.Name, &test.Description, &board, &game, &test.Turn, &test.YouID, &moves,
		&status, &test.PermaRejected, &reason, &ownerID, &approvedBy, &approvedAt,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Test{}, err
		}
		return models.Test{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(board), &test.Board); err != nil {
		return models.Test{}, fmt.Errorf("%w: board: %w", ErrEncodingColumn, err)
	}
	if game.Valid && game.String != "" {
		test.Game = new(models.Game)
		if err = json.Unmarshal([]byte(game.String), test.Game); err != nil {
			return models.Test{}, fmt.Errorf("%w: game: %w", ErrEncodingColumn, err)
		}
	}
	if err = json.Unmarshal([]byte(moves), &test.ExpectedSafeMoves); err != nil {
		return models.Test{}, fmt.Errorf("%w: expected_safe_moves: %w", ErrEncodingColumn, err)
	}

	// unknown values are read as legacy rather than failing the whole listing
	if test.Status, err = models.ParseTestStatus(status); err != nil {
		test.Status = models.TestStatusLegacy
	}

	test.RejectionReason = reason.String
	test.OwnerID = ownerID.String
	test.ApprovedBy = approvedBy.String
	test.ApprovedAt = fromNullMillis(approvedAt)
	test.CreatedAt = fromMillis(createdAt)
	test.UpdatedAt = fromMillis(updatedAt)

	return test, nil
}

func scanTests(rows *sql.Rows) ([]models.Test, error) {
	tests := make([]models.Test, 0)
	for rows.Next() {
		test, err := scanTest(rows)
		if err != nil {
			return nil, err
		}
		tests = append(tests, test)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return tests, nil
}
