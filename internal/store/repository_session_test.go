package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snake-bench/internal/logger"
	"github.com/MKhiriev/go-snake-bench/models"
)

func TestSessionRepository_CreateAndGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	expires := created.Add(24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions (token_hash,user_id,created_at,expires_at) VALUES ($1,$2,$3,$4)")).
		WithArgs("hash", "u-1", created.UnixMilli(), expires.UnixMilli()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE token_hash = $1")).
		WithArgs("hash").
		WillReturnRows(sqlmock.NewRows([]string{"token_hash", "user_id", "created_at", "expires_at"}).
			AddRow("hash", "u-1", created.UnixMilli(), expires.UnixMilli()))

	err := repo.CreateSession(context.Background(), models.Session{TokenHash: "hash", UserID: "u-1", CreatedAt: created, ExpiresAt: expires})
	require.NoError(t, err)

	got, err := repo.GetSession(context.Background(), "hash")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)
	assert.True(t, got.ExpiresAt.Equal(expires))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectQuery("FROM sessions").
		WillReturnRows(sqlmock.NewRows([]string{"token_hash", "user_id", "created_at", "expires_at"}))

	_, err := repo.GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_Deletes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE token_hash = $1")).
		WithArgs("hash").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE user_id = $1")).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteSession(context.Background(), "hash"))
	require.NoError(t, repo.DeleteUserSessions(context.Background(), "u-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
