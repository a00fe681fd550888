// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-snake-bench/internal/config"
	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/migrations"
)

// Dialect names the SQL backend behind a [DB]. Values double as goose
// dialect names.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// ErrorClassification tells withRetry whether a failed statement may succeed
// on another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator inspects driver errors for a specific backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// DB wraps a connection pool together with its dialect-aware query builder
// and error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	sb                 sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.sb = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.sb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnect opens the backend selected by the DSN: postgres:// and
// postgresql:// URLs use pgx, everything else is treated as a SQLite DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// DialectFromDSN reports which backend a DSN addresses.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=") {
		return DialectPostgres
	}
	return DialectSQLite
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// wrapExecError maps a driver error to a store sentinel. Unique violations
// become alreadyExists, anything else is an execution failure.
func (db *DB) wrapExecError(err error, alreadyExists error) error {
	if alreadyExists != nil && db.errorClassificator.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", alreadyExists, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// retryAttempts bounds withRetry. Delays grow linearly from retryBaseDelay.
const (
	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
)

// withRetry runs fn again while the classifier reports a transient failure.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) != Retryable || attempt == retryAttempts {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("retrying transient database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBaseDelay):
		}
	}
	return err
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func nullMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}

func fromNullMillis(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromMillis(v.Int64)
	return &t
}

// nullString stores empty strings as NULL so optional unique columns do not
// collide.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
