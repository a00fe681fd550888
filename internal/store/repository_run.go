// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

var runColumns = []string{
	"id", "test_id", "user_id", "bot_url", "status",
	"move", "shout", "passed", "error", "http_status", "raw_response", "response_time_ms",
	"started_at", "completed_at",
}

// runRepository stores test runs. A run leaves the running state exactly
// once: ClaimRun and CompleteRun are both conditional on status = 'running'.
// A claim whose executor died can be taken over once it is stale.
type runRepository struct {
	*DB
	logger *logger.Logger
}

func NewRunRepository(db *DB, logger *logger.Logger) RunRepository {
	logger.Debug().Msg("creating run repository")
	return &runRepository{DB: db, logger: logger}
}

func (r *runRepository) CreateRun(ctx context.Context, run models.TestRun) error {
	query, args, err := r.sb.Insert(run.TableName()).
		Columns("id", "test_id", "user_id", "bot_url", "status", "started_at").
		Values(run.ID, run.TestID, run.UserID, run.BotURL, string(run.Status), toMillis(run.StartedAt)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*runRepository.CreateRun").
			Str("run_id", run.ID).
			Msg("error inserting run")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *runRepository) GetRun(ctx context.Context, runID string) (models.TestRun, error) {
	query, args, err := r.sb.Select(runColumns...).From("test_runs").Where(sq.Eq{"id": runID}).ToSql()
	if err != nil {
		return models.TestRun{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	run, err := scanRun(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TestRun{}, ErrRunNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*runRepository.GetRun").
			Str("run_id", runID).
			Msg("error selecting run")
		return models.TestRun{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return run, nil
}

func (r *runRepository) ClaimRun(ctx context.Context, runID string, now, staleBefore time.Time) (bool, error) {
	query, args, err := r.sb.Update("test_runs").
		Set("claimed_at", toMillis(now)).
		Where(sq.Eq{"id": runID, "status": string(models.RunStatusRunning)}).
		Where(sq.Or{sq.Eq{"claimed_at": nil}, sq.Lt{"claimed_at": toMillis(staleBefore)}}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execConditional(ctx, "*runRepository.ClaimRun", runID, query, args)
}

func (r *runRepository) CompleteRun(ctx context.Context, runID string, result models.RunResult) (bool, error) {
	query, args, err := r.sb.Update("test_runs").
		Set("status", string(result.Status)).
		Set("move", result.Move).
		Set("shout", result.Shout).
		Set("passed", result.Passed).
		Set("error", result.Error).
		Set("http_status", result.HTTPStatus).
		Set("raw_response", result.RawResponse).
		Set("response_time_ms", result.ResponseTimeMs).
		Set("completed_at", toMillis(result.CompletedAt)).
		Where(sq.Eq{"id": runID, "status": string(models.RunStatusRunning)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execConditional(ctx, "*runRepository.CompleteRun", runID, query, args)
}

// execConditional runs a guarded UPDATE, retrying transient failures, and
// reports whether the guard matched.
func (r *runRepository) execConditional(ctx context.Context, fn, runID, query string, args []any) (bool, error) {
	var affected int64
	err := r.withRetry(ctx, func() error {
		res, err := r.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("run_id", runID).Msg("error updating run")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected == 1, nil
}

// ListRuns returns the caller's runs of one test, newest first.
func (r *runRepository) ListRuns(ctx context.Context, testID, userID string) ([]models.TestRun, error) {
	query, args, err := r.sb.Select(runColumns...).
		From("test_runs").
		Where(sq.Eq{"test_id": testID, "user_id": userID}).
		OrderBy("started_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*runRepository.ListRuns").Msg("error listing runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.TestRun, 0)
	for rows.Next() {
		run, scanErr := scanRun(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		runs = append(runs, run)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return runs, nil
}

func scanRun(row rowScanner) (models.TestRun, error) {
	var (
		run                       models.TestRun
		status                    string
		move, shout, errMsg, raw  sql.NullString
		passed                    sql.NullBool
		httpStatus                sql.NullInt64
		responseTime, completedAt sql.NullInt64
		startedAt                 int64
	)

	err := row.Scan(
		&run.ID, &run.TestID, &run.UserID, &run.BotURL, &status,
		&move, &shout, &passed, &errMsg, &httpStatus, &raw, &responseTime,
		&startedAt, &completedAt,
	)
	if err != nil {
		return models.TestRun{}, err
	}

	run.Status = models.RunStatus(status)
	if move.Valid {
		run.Move = &move.String
	}
	if shout.Valid {
		run.Shout = &shout.String
	}
	if passed.Valid {
		run.Passed = &passed.Bool
	}
	if errMsg.Valid {
		run.Error = &errMsg.String
	}
	if httpStatus.Valid {
		code := int(httpStatus.Int64)
		run.HTTPStatus = &code
	}
	if raw.Valid {
		run.RawResponse = &raw.String
	}
	if responseTime.Valid {
		run.ResponseTimeMs = &responseTime.Int64
	}
	run.StartedAt = fromMillis(startedAt)
	run.CompletedAt = fromNullMillis(completedAt)

	return run, nil
}
